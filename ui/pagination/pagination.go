// Package pagination renders the carousel's page dots.
package pagination

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	dot = "●"
	// cellsPerDot is one dot plus the gap after it.
	cellsPerDot = 2
)

var (
	inactiveDot = lipgloss.Color("#D8D8D8")
	activeDot   = lipgloss.Color("#515151")
	hoveredDot  = lipgloss.Color("#8A8A8A")
)

// Model renders Pages dots with the Active one highlighted. It stores no
// navigation state; the owner sets Pages and Active before every render.
type Model struct {
	Pages  int
	Active int

	hovered int

	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
	HoverStyle    lipgloss.Style
}

// New returns an indicator with the default dot colours.
func New() Model {
	return Model{
		hovered:       -1,
		ActiveStyle:   lipgloss.NewStyle().Foreground(activeDot),
		InactiveStyle: lipgloss.NewStyle().Foreground(inactiveDot),
		HoverStyle:    lipgloss.NewStyle().Foreground(hoveredDot),
	}
}

// Width is the rendered width in cells.
func (m Model) Width() int {
	if m.Pages <= 0 {
		return 0
	}
	return m.Pages*cellsPerDot - 1
}

// View renders the dots on one line.
func (m Model) View() string {
	if m.Pages <= 0 {
		return ""
	}

	dots := make([]string, m.Pages)
	for i := range dots {
		style := m.InactiveStyle
		switch {
		case i == m.Active:
			style = m.ActiveStyle
		case i == m.hovered:
			style = m.HoverStyle
		}
		dots[i] = style.Render(dot)
	}
	return strings.Join(dots, strings.Repeat(" ", cellsPerDot-1))
}

// PageAt returns the page whose dot is at column x of the rendered view.
// Gaps between dots belong to the dot on their left.
func (m Model) PageAt(x int) (int, bool) {
	if x < 0 || x >= m.Width() {
		return 0, false
	}
	return x / cellsPerDot, true
}

// SetHovered highlights the dot at column x; any other column clears it.
func (m *Model) SetHovered(x int) {
	if page, ok := m.PageAt(x); ok {
		m.hovered = page
		return
	}
	m.hovered = -1
}

// Hovered returns the hovered page or -1.
func (m Model) Hovered() int {
	return m.hovered
}
