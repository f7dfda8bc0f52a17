// Package button renders the carousel's borderless arrow button.
package button

import (
	"github.com/charmbracelet/lipgloss"
)

// Width is the fixed cell width of a button.
const Width = 5

var (
	foreground         = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	hoverForeground    = lipgloss.Color("#D8D8D8")
	disabledForeground = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#3C3C3C"}
)

// Model is a single button. It has no internal state beyond what the
// owner sets before rendering.
type Model struct {
	Label    string
	Height   int
	Hovered  bool
	Disabled bool

	Style         lipgloss.Style
	HoverStyle    lipgloss.Style
	DisabledStyle lipgloss.Style
}

// New returns a button with the default styles.
func New(label string) Model {
	base := lipgloss.NewStyle().Bold(true)
	return Model{
		Label:         label,
		Height:        1,
		Style:         base.Foreground(foreground),
		HoverStyle:    base.Foreground(hoverForeground),
		DisabledStyle: base.Foreground(disabledForeground),
	}
}

// View renders the label centred in a Width x Height block.
func (m Model) View() string {
	style := m.Style
	switch {
	case m.Disabled:
		style = m.DisabledStyle
	case m.Hovered:
		style = m.HoverStyle
	}
	label := style.Render(m.Label)
	return lipgloss.Place(Width, max(m.Height, 1), lipgloss.Center, lipgloss.Center, label)
}

// Contains reports whether the cell (x, y), relative to the button's top
// left corner, is inside it.
func (m Model) Contains(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < max(m.Height, 1)
}
