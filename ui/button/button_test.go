package button

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestViewDimensions(t *testing.T) {
	tests := []struct {
		name   string
		height int
		lines  int
	}{
		{"single line", 1, 1},
		{"tall track", 7, 7},
		{"zero height is one line", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("❯")
			b.Height = tt.height

			lines := strings.Split(b.View(), "\n")
			assert.Len(t, lines, tt.lines)
			for _, line := range lines {
				assert.Equal(t, Width, lipgloss.Width(line))
			}
		})
	}
}

func TestLabelIsCentred(t *testing.T) {
	b := New("❮")
	b.Height = 3

	lines := strings.Split(b.View(), "\n")
	assert.Equal(t, "  ❮  ", lines[1])
	assert.Equal(t, strings.Repeat(" ", Width), lines[0])
}

func TestStatesKeepLabel(t *testing.T) {
	for _, b := range []Model{
		New("❯"),
		func() Model { b := New("❯"); b.Hovered = true; return b }(),
		func() Model { b := New("❯"); b.Disabled = true; return b }(),
	} {
		assert.Contains(t, b.View(), "❯")
	}
}

func TestContains(t *testing.T) {
	b := New("❯")
	b.Height = 2

	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(Width-1, 1))
	assert.False(t, b.Contains(Width, 0))
	assert.False(t, b.Contains(0, 2))
	assert.False(t, b.Contains(-1, 0))
}
