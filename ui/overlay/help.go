package overlay

import (
	"strings"

	"elastic-carousel/keys"
	"elastic-carousel/ui"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay lists every key binding. Any key closes it.
type HelpOverlay struct {
	title string
	intro string
	help  help.Model
	width int
}

// NewHelpOverlay creates a help screen. intro is shown above the bindings
// and may be empty.
func NewHelpOverlay(title, intro string) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(ui.Primary).Bold(true)
	h.Styles.FullDesc = ui.TextStyles.Secondary
	h.Styles.FullSeparator = ui.TextStyles.Muted
	return &HelpOverlay{title: title, intro: intro, help: h, width: 60}
}

// HandleKeyPress closes the overlay on any key.
func (h *HelpOverlay) HandleKeyPress(tea.KeyMsg) bool {
	return true
}

func (h *HelpOverlay) SetWidth(width int) {
	h.width = width
	h.help.Width = width - 6
}

func (h *HelpOverlay) Render() string {
	var b strings.Builder
	b.WriteString(ui.Gradient(h.title, ui.TitleFrom, ui.TitleTo))
	b.WriteString("\n\n")
	if h.intro != "" {
		b.WriteString(ui.TextStyles.Secondary.Width(h.width - 6).Render(h.intro))
		b.WriteString("\n\n")
	}
	b.WriteString(h.help.View(keys.HelpKeyMap{}))
	b.WriteString("\n\n")
	b.WriteString(ui.TextStyles.Muted.Render("press any key to close"))

	return ui.OverlayStyle().Width(h.width).Render(b.String())
}
