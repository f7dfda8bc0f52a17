package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status bar shows about the open deck.
type StatusInfo struct {
	Title string
	// FirstItem is zero based; Visible is the number of cards on screen.
	FirstItem int
	Visible   int
	Cards     int
	Page      int
	Pages     int

	AutoPlay bool
	// Spinner is the current spinner frame shown while autoplay runs.
	Spinner string
	RTL     bool
	// Reloaded is nil until the deck was reloaded from disk.
	Reloaded *time.Time
}

// StatusBar is the line above the carousel.
type StatusBar struct {
	width int
	now   func() time.Time
}

func NewStatusBar() *StatusBar {
	return &StatusBar{now: time.Now}
}

func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// cardRange formats the visible cards, e.g. "cards 4-6 of 12".
func cardRange(info StatusInfo) string {
	if info.Cards == 0 {
		return "no cards"
	}
	first := info.FirstItem + 1
	last := min(info.FirstItem+max(info.Visible, 1), info.Cards)
	if first == last {
		return fmt.Sprintf("card %d of %d", first, info.Cards)
	}
	return fmt.Sprintf("cards %d-%d of %d", first, last, info.Cards)
}

func (s *StatusBar) Render(info StatusInfo) string {
	var right []string
	if info.AutoPlay {
		right = append(right, TextStyles.Running.Render(strings.TrimSpace(info.Spinner+" "+IconAutoPlay+" autoplay")))
	}
	if info.RTL {
		right = append(right, TextStyles.Secondary.Render(IconRTL+" rtl"))
	}
	if info.Pages > 0 {
		right = append(right, TextStyles.Secondary.Render(fmt.Sprintf("page %d/%d", info.Page+1, info.Pages)))
	}
	if info.Reloaded != nil {
		right = append(right, TextStyles.Muted.Render("reloaded "+FormatReloaded(info.Reloaded, s.now())))
	}
	rightText := strings.Join(right, TextStyles.Muted.Render("  ·  "))

	counts := TextStyles.Muted.Render("  " + cardRange(info))
	room := s.width - lipgloss.Width(rightText) - lipgloss.Width(counts) - 2
	title := Gradient(TruncateTitle(info.Title, max(room, 1)), TitleFrom, TitleTo)
	left := " " + title + counts

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(rightText) - 1
	if gap < 1 {
		return truncate(left, s.width)
	}
	return left + strings.Repeat(" ", gap) + rightText + " "
}
