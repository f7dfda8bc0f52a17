package ui

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatRelativeTime formats t relative to now.
// Examples: "just now", "5 minutes ago", "3 hours ago".
func FormatRelativeTime(t, now time.Time) string {
	if d := now.Sub(t); d < time.Minute && d > -time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatReloaded formats the last deck reload, handling nil (never reloaded).
func FormatReloaded(t *time.Time, now time.Time) string {
	if t == nil {
		return "never"
	}
	return FormatRelativeTime(*t, now)
}
