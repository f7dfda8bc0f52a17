package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"elastic-carousel/keys"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"minutes", 5 * time.Minute, "5 minutes ago"},
		{"hours", 3 * time.Hour, "3 hours ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(now.Add(-tt.ago), now))
		})
	}
}

func TestFormatReloaded(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "never", FormatReloaded(nil, now))
	assert.Equal(t, "just now", FormatReloaded(&now, now))
}

func TestGradientKeepsText(t *testing.T) {
	assert.Equal(t, "", Gradient("", TitleFrom, TitleTo))
	assert.Equal(t, "deck", Gradient("deck", TitleFrom, TitleTo))
	assert.Equal(t, "日本", Gradient("日本", TitleFrom, lipgloss.Color("212")))
}

func TestGradientColorsEachCluster(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	out := Gradient("abc", TitleFrom, TitleTo)
	assert.Equal(t, 3, strings.Count(out, "\x1b[0m"), "each grapheme is styled separately")
	assert.Equal(t, 3, lipgloss.Width(out))
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "hello", TruncateTitle("hello", 10))
	assert.Equal(t, "hel…", TruncateTitle("hello", 4))
	assert.Equal(t, "", TruncateTitle("hello", 0))
}

func TestMenuStates(t *testing.T) {
	m := NewMenu()
	m.SetSize(120, 1)
	assert.Equal(t, StateEmpty, m.State())
	assert.Contains(t, m.String(), "open")
	assert.NotContains(t, m.String(), "jump")

	m.SetState(StateDefault)
	out := m.String()
	assert.Contains(t, out, "jump")
	assert.Contains(t, out, "│")

	m.SetSingleLine(true)
	assert.NotContains(t, m.String(), "settings")

	m.SetState(StateOverlay)
	assert.Contains(t, m.String(), "close")
}

func TestMenuFitsWidth(t *testing.T) {
	m := NewMenu()
	m.SetState(StateDefault)
	m.SetSize(30, 1)

	assert.LessOrEqual(t, lipgloss.Width(m.String()), 30)
}

func TestMenuKeydown(t *testing.T) {
	m := NewMenu()
	m.SetState(StateDefault)
	m.SetSize(120, 1)

	m.Keydown(keys.KeyJump)
	assert.Contains(t, m.String(), "jump")
	m.ClearKeydown()
	assert.Contains(t, m.String(), "jump")
}

func TestErrBox(t *testing.T) {
	e := NewErrBox()
	e.SetSize(40, 1)
	assert.Equal(t, "", strings.TrimSpace(e.String()))

	e.SetError(errors.Join(errors.New("first"), errors.New("second")))
	assert.Equal(t, "first\nsecond", e.Message())
	out := e.String()
	assert.Contains(t, out, IconError+" first second")
	assert.Equal(t, 40, lipgloss.Width(out))

	e.SetInfo("copied card 2")
	assert.Contains(t, e.String(), IconSuccess+" copied card 2")

	e.Clear()
	assert.Equal(t, "", e.Message())
}

func TestErrBoxTruncates(t *testing.T) {
	e := NewErrBox()
	e.SetSize(12, 1)
	e.SetError(errors.New("a very long failure message"))

	assert.LessOrEqual(t, lipgloss.Width(e.String()), 12)
	assert.Contains(t, e.String(), "…")
}

func TestCardRange(t *testing.T) {
	tests := []struct {
		info StatusInfo
		want string
	}{
		{StatusInfo{}, "no cards"},
		{StatusInfo{FirstItem: 0, Visible: 1, Cards: 5}, "card 1 of 5"},
		{StatusInfo{FirstItem: 3, Visible: 3, Cards: 12}, "cards 4-6 of 12"},
		{StatusInfo{FirstItem: 4, Visible: 3, Cards: 6}, "cards 5-6 of 6"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, cardRange(tt.info))
		})
	}
}

func TestStatusBar(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	reloaded := now.Add(-5 * time.Minute)

	s := NewStatusBar()
	s.now = func() time.Time { return now }
	s.SetWidth(100)

	out := s.Render(StatusInfo{
		Title:     "Talk",
		FirstItem: 2,
		Visible:   2,
		Cards:     6,
		Page:      1,
		Pages:     3,
		AutoPlay:  true,
		RTL:       true,
		Reloaded:  &reloaded,
	})
	assert.Equal(t, 100, lipgloss.Width(out))
	assert.Contains(t, out, "Talk")
	assert.Contains(t, out, "cards 3-4 of 6")
	assert.Contains(t, out, IconAutoPlay+" autoplay")
	assert.Contains(t, out, "rtl")
	assert.Contains(t, out, "page 2/3")
	assert.Contains(t, out, "reloaded 5 minutes ago")
}

func TestStatusBarNarrow(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(20)

	out := s.Render(StatusInfo{Title: "A rather long deck title", Cards: 6, Visible: 1, Pages: 6})
	assert.LessOrEqual(t, lipgloss.Width(out), 20)
}
