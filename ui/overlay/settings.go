package overlay

import (
	"fmt"
	"strings"

	"elastic-carousel/config"
	"elastic-carousel/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// setting is one adjustable row of the settings overlay. change moves the
// value by delta steps; booleans flip for any delta.
type setting struct {
	name   string
	desc   string
	value  func(c *config.Config) string
	change func(c *config.Config, delta int)
}

var easings = []string{
	"cubic-bezier(.76,.57,.73,1)",
	"ease",
	"ease-in",
	"ease-out",
	"ease-in-out",
	"linear",
}

var positions = []string{"start", "center", "end"}

func toggle(name, desc string, field func(c *config.Config) *bool) setting {
	return setting{
		name:   name,
		desc:   desc,
		value:  func(c *config.Config) string { return onOff(*field(c)) },
		change: func(c *config.Config, _ int) { *field(c) = !*field(c) },
	}
}

func stepper(name, desc, unit string, step, lo, hi int, field func(c *config.Config) *int) setting {
	return setting{
		name:  name,
		desc:  desc,
		value: func(c *config.Config) string { return fmt.Sprintf("%d%s", *field(c), unit) },
		change: func(c *config.Config, delta int) {
			*field(c) = max(lo, min(hi, *field(c)+delta*step))
		},
	}
}

func cycle(name, desc string, options []string, field func(c *config.Config) *string) setting {
	return setting{
		name:  name,
		desc:  desc,
		value: func(c *config.Config) string { return *field(c) },
		change: func(c *config.Config, delta int) {
			i := 0
			for j, o := range options {
				if o == *field(c) {
					i = j
				}
			}
			i = ((i+delta)%len(options) + len(options)) % len(options)
			*field(c) = options[i]
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func defaultSettings() []setting {
	return []setting{
		{
			name: "Responsive",
			desc: "Pick the number of cards from the terminal width",
			value: func(c *config.Config) string {
				return onOff(len(c.Breakpoints) > 0)
			},
			change: func(c *config.Config, _ int) {
				if len(c.Breakpoints) > 0 {
					c.Breakpoints = nil
				} else {
					c.Breakpoints = config.DefaultBreakpoints()
				}
			},
		},
		stepper("Cards shown", "Used when responsive is off", "", 1, 1, 8, func(c *config.Config) *int { return &c.ItemsToShow }),
		stepper("Cards scrolled", "Cards moved per step", "", 1, 1, 8, func(c *config.Config) *int { return &c.ItemsToScroll }),
		toggle("Right to left", "Mirror the carousel", func(c *config.Config) *bool { return &c.RTL }),
		toggle("Autoplay", "Advance automatically", func(c *config.Config) *bool { return &c.EnableAutoPlay }),
		stepper("Autoplay speed", "Delay between steps", "ms", 250, 250, 10000, func(c *config.Config) *int { return &c.AutoPlaySpeedMs }),
		stepper("Transition", "Slide duration", "ms", 50, 0, 2000, func(c *config.Config) *int { return &c.TransitionMs }),
		cycle("Easing", "Slide timing curve", easings, func(c *config.Config) *string { return &c.Easing }),
		toggle("Tilt", "Bounce at the first and last card", func(c *config.Config) *bool { return &c.EnableTilt }),
		toggle("Swipe", "Horizontal scroll wheel navigates", func(c *config.Config) *bool { return &c.EnableSwipe }),
		toggle("Mouse drag", "Drag the track to navigate", func(c *config.Config) *bool { return &c.EnableMouseSwipe }),
		toggle("Pagination", "Show page dots", func(c *config.Config) *bool { return &c.Pagination }),
		toggle("Arrows", "Show arrow buttons", func(c *config.Config) *bool { return &c.ShowArrows }),
		toggle("Focus on select", "Clicking a card scrolls to it", func(c *config.Config) *bool { return &c.FocusOnSelect }),
		cycle("Card alignment", "Position of a card in its slot", positions, func(c *config.Config) *string { return &c.ItemPosition }),
		toggle("Watch deck", "Reload the deck when the file changes", func(c *config.Config) *bool { return &c.WatchDeck }),
	}
}

// SettingsOverlay edits a copy of the configuration. Changes are applied
// live; Esc keeps them and closes.
type SettingsOverlay struct {
	Dismissed bool
	// Changed is set once any value was modified.
	Changed bool

	cfg      *config.Config
	settings []setting
	cursor   int
	width    int
}

// NewSettingsOverlay edits a copy of cfg.
func NewSettingsOverlay(cfg *config.Config) *SettingsOverlay {
	c := *cfg
	return &SettingsOverlay{
		cfg:      &c,
		settings: defaultSettings(),
		width:    60,
	}
}

// Config returns the edited configuration.
func (s *SettingsOverlay) Config() *config.Config {
	return s.cfg
}

// HandleKeyPress processes a key press and reports whether the overlay
// should close.
func (s *SettingsOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		s.cursor = (s.cursor - 1 + len(s.settings)) % len(s.settings)
	case "down", "j":
		s.cursor = (s.cursor + 1) % len(s.settings)
	case "left", "h", "-":
		s.adjust(-1)
	case "right", "l", "+", "=", "enter", " ":
		s.adjust(1)
	case "esc", "q", "s":
		s.Dismissed = true
		return true
	}
	return false
}

func (s *SettingsOverlay) adjust(delta int) {
	st := s.settings[s.cursor]
	before := st.value(s.cfg)
	st.change(s.cfg, delta)
	if st.value(s.cfg) != before {
		s.Changed = true
	}
}

func (s *SettingsOverlay) SetWidth(width int) {
	s.width = width
}

func (s *SettingsOverlay) Render() string {
	nameStyle := ui.TextStyles.Primary
	valueStyle := lipgloss.NewStyle().Foreground(ui.Primary)
	selected := ui.SelectedStyle()

	inner := s.width - 6
	valueWidth := 0
	for _, st := range s.settings {
		valueWidth = max(valueWidth, lipgloss.Width(st.value(s.cfg)))
	}

	var b strings.Builder
	b.WriteString(ui.Gradient("Settings", ui.TitleFrom, ui.TitleTo))
	b.WriteString("\n\n")

	for i, st := range s.settings {
		name := ui.TruncateTitle(st.name, inner-valueWidth-4)
		value := "‹ " + st.value(s.cfg) + " ›"
		gap := max(1, inner-lipgloss.Width(name)-lipgloss.Width(value))
		if i == s.cursor {
			b.WriteString(selected.Render(name + strings.Repeat(" ", gap) + value))
		} else {
			b.WriteString(nameStyle.Render(name) + strings.Repeat(" ", gap) + valueStyle.Render(value))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.TextStyles.Muted.Render(ui.TruncateTitle(s.settings[s.cursor].desc, inner)))
	b.WriteString("\n\n")
	b.WriteString(ui.TextStyles.Muted.Render("[↑/↓] Move  [←/→] Change  [Esc] Close"))

	return ui.OverlayStyle().Width(s.width).Render(b.String())
}
