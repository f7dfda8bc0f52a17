package app

import (
	"time"

	"elastic-carousel/inspect"
	"elastic-carousel/log"
	"elastic-carousel/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type tickInspectMsg struct{}

// inspectInterval is how often a UI snapshot is written in inspect mode.
const inspectInterval = time.Second

var inspectEnabled = inspect.IsEnabled

var tickInspectCmd = func() tea.Msg {
	time.Sleep(inspectInterval)
	return tickInspectMsg{}
}

func (m *home) writeSnapshot() {
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("failed to write ui snapshot: %v", err)
	}
}

func menuStateName(s ui.MenuState) string {
	switch s {
	case ui.StateEmpty:
		return "empty"
	case ui.StateOverlay:
		return "overlay"
	default:
		return "default"
	}
}

// snapshot describes what is on screen.
func (m *home) snapshot() *inspect.Snapshot {
	c := m.constraints
	info := inspect.AppStateInfo{
		State:        menuStateName(m.menu.State()),
		HasOverlay:   m.state != stateDefault,
		FirstItem:    m.carousel.FirstItem(),
		Page:         m.carousel.ActivePage(),
		PageCount:    m.carousel.PageCount(),
		ErrorMessage: m.errBox.Message(),
	}
	if m.state != stateDefault {
		info.OverlayType = m.state.String()
	}
	if m.deck != nil {
		info.DeckPath = m.deck.Path
		info.DeckTitle = m.deck.Title
		info.CardCount = len(m.deck.Cards)
	}

	root := inspect.NewNode("App").WithBounds(0, 0, c.TerminalWidth, c.TerminalHeight)
	y := 0
	if c.StatusHeight > 0 {
		root.AddChild(inspect.NewNode("StatusBar").
			WithBounds(0, y, c.StatusWidth, c.StatusHeight).
			WithState("autoplay", m.carousel.AutoPlaying()).
			WithState("reloaded", m.reloadedAt != nil))
		y += c.StatusHeight
	}
	root.AddChild(m.carousel.InspectNode())
	y += c.CarouselHeight
	root.AddChild(inspect.NewNode("Menu").
		WithBounds(0, y, c.MenuWidth, c.MenuHeight).
		WithState("state", menuStateName(m.menu.State())).
		WithState("single_line", m.degradation.SingleLineMenu))
	y += c.MenuHeight
	if msg := m.errBox.Message(); msg != "" {
		root.AddChild(inspect.NewNode("ErrBox").
			WithBounds(0, y, c.ErrBoxWidth, c.ErrBoxHeight).
			WithContent(msg))
	}
	if m.state != stateDefault {
		root.AddChild(inspect.NewNode("Overlay").WithID(m.state.String()))
	}

	return inspect.NewSnapshot().
		WithTerminal(c.TerminalWidth, c.TerminalHeight).
		WithAppState(info).
		WithLayout(c, m.degradation).
		WithCarouselBreakpoints(m.carousel.Config().Breakpoints, m.carousel.Breakpoint()).
		WithComponents(root)
}
