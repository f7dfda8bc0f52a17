package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"color", "\x1b[31mred\x1b[0m", "red"},
		{"bold and reset", "\x1b[1mbold\x1b[22m text", "bold text"},
		{"hyperlink", "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripANSI(tt.input))
		})
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, 1, Lines(""))
	assert.Equal(t, 1, Lines("one"))
	assert.Equal(t, 3, Lines("one\ntwo\nthree"))
	assert.Equal(t, 2, Lines("\x1b[31mone\x1b[0m\ntwo"))
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"single line", "hello", 5},
		{"widest line wins", "short\nlonger line\nmed", 11},
		{"escape codes", "\x1b[31mhello world\x1b[0m", 11},
		{"box drawing", "╭───╮\n│ ▶ │\n╰───╯", 5},
		{"wide runes", "カード", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Width(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	result := Normalize("line with trailing spaces   \n\x1b[31mcolored\x1b[0m\r\n")

	assert.Equal(t, "line with trailing spaces\ncolored\n", result)
}

func TestSnapAssertions(t *testing.T) {
	s := New(t)
	frame := "\x1b[1m Talk \x1b[0m  cards 1-2 of 6   \n╭──╮"

	s.AssertContains(frame, "cards 1-2 of 6")
	s.AssertNotContains(frame, "page")
	s.AssertFits(frame, 30, 2)
}
