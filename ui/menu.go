package ui

import (
	"strings"

	"elastic-carousel/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	StateEmpty
	StateOverlay
)

// menuGroup is a run of options rendered between vertical separators.
type menuGroup struct {
	options []keys.KeyName
	action  bool
}

type Menu struct {
	groups        []menuGroup
	height, width int
	state         MenuState
	singleLine    bool

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

var defaultMenuGroups = []menuGroup{
	{options: []keys.KeyName{keys.KeyLeft, keys.KeyRight, keys.KeyFirst, keys.KeyLast}},
	{options: []keys.KeyName{keys.KeyAutoPlay, keys.KeyJump, keys.KeySettings, keys.KeyCopy}, action: true},
	{options: []keys.KeyName{keys.KeyOpen, keys.KeyHelp, keys.KeyQuit}},
}

var emptyMenuGroups = []menuGroup{
	{options: []keys.KeyName{keys.KeyOpen, keys.KeyReload}, action: true},
	{options: []keys.KeyName{keys.KeyHelp, keys.KeyQuit}},
}

var overlayMenuGroups = []menuGroup{
	{options: []keys.KeyName{keys.KeyUp, keys.KeyDown, keys.KeyEnter, keys.KeyEsc}, action: true},
}

// compactMenuGroups is used when the menu only has one line.
var compactMenuGroups = []menuGroup{
	{options: []keys.KeyName{keys.KeyLeft, keys.KeyRight}},
	{options: []keys.KeyName{keys.KeyJump, keys.KeyHelp, keys.KeyQuit}, action: true},
}

func NewMenu() *Menu {
	m := &Menu{
		state:   StateEmpty,
		keyDown: -1,
	}
	m.updateOptions()
	return m
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.updateOptions()
}

// State returns the current menu state.
func (m *Menu) State() MenuState {
	return m.state
}

// SetSingleLine switches to the short option set for cramped terminals.
func (m *Menu) SetSingleLine(single bool) {
	m.singleLine = single
	m.updateOptions()
}

func (m *Menu) updateOptions() {
	switch {
	case m.state == StateOverlay:
		m.groups = overlayMenuGroups
	case m.state == StateEmpty:
		m.groups = emptyMenuGroups
	case m.singleLine:
		m.groups = compactMenuGroups
	default:
		m.groups = defaultMenuGroups
	}
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	for gi, group := range m.groups {
		for i, k := range group.options {
			binding := keys.GlobalkeyBindings[k]

			var (
				localKeyStyle  = keyStyle
				localDescStyle = descStyle
			)
			if group.action {
				localKeyStyle = actionGroupStyle
				localDescStyle = actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))

			if i != len(group.options)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if gi != len(m.groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}

	text := s.String()
	if m.width > 0 && lipgloss.Width(text) > m.width {
		text = truncate(text, m.width)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}
