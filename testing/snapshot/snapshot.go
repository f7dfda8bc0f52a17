// Package snapshot inspects rendered frames in tests: it strips escape
// codes and measures frames in terminal cells.
package snapshot

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/ansi"
)

// Snap checks rendered frames for a test.
type Snap struct {
	t *testing.T
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains checks that the frame shows substr.
func (s *Snap) AssertContains(frame, substr string) {
	s.t.Helper()
	normalized := Normalize(frame)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("frame does not contain %q\n%s", substr, normalized)
	}
}

// AssertNotContains checks that the frame does not show substr.
func (s *Snap) AssertNotContains(frame, substr string) {
	s.t.Helper()
	normalized := Normalize(frame)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("frame unexpectedly contains %q\n%s", substr, normalized)
	}
}

// AssertFits checks that the frame is at most width cells wide and height
// lines tall.
func (s *Snap) AssertFits(frame string, width, height int) {
	s.t.Helper()
	if w := Width(frame); w > width {
		s.t.Errorf("frame is %d cells wide, want at most %d\n%s", w, width, Normalize(frame))
	}
	if h := Lines(frame); h > height {
		s.t.Errorf("frame is %d lines tall, want at most %d\n%s", h, height, Normalize(frame))
	}
}

// Normalize strips escape codes, line feeds and trailing whitespace.
func Normalize(frame string) string {
	frame = strings.ReplaceAll(StripANSI(frame), "\r\n", "\n")
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes escape sequences, hyperlinks included.
func StripANSI(s string) string {
	return xansi.Strip(s)
}

// Lines returns the number of lines in the frame.
func Lines(s string) int {
	return strings.Count(s, "\n") + 1
}

// Width returns the width of the widest line in terminal cells. Wide runes
// count twice.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		maxWidth = max(maxWidth, ansi.PrintableRuneWidth(line))
	}
	return maxWidth
}
