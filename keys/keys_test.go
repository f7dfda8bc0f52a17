package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestEveryNameHasBinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		b, ok := GlobalkeyBindings[name]
		if assert.True(t, ok, "no binding for %q", s) {
			assert.Contains(t, b.Keys(), s, "binding for %q does not list it", s)
		}
	}
}

func TestBindingsMatchKeyMessages(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want KeyName
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, KeyRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, KeyLeft},
		{tea.KeyMsg{Type: tea.KeyEnd}, KeyLast},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, KeyAutoPlay},
	}

	for _, tt := range tests {
		name, ok := GlobalKeyStringsMap[tt.msg.String()]
		assert.True(t, ok, "%q not mapped", tt.msg.String())
		assert.Equal(t, tt.want, name)
		assert.True(t, key.Matches(tt.msg, GlobalkeyBindings[tt.want]))
	}
}

func TestHelpKeyMap(t *testing.T) {
	var km HelpKeyMap
	assert.NotEmpty(t, km.ShortHelp())

	seen := 0
	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
			seen++
		}
	}
	assert.Equal(t, 16, seen)
}
