package ui

import (
	"github.com/mattn/go-runewidth"
	rtruncate "github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// truncate cuts styled text to width cells, keeping escape sequences intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return rtruncate.StringWithTail(s, uint(width), ellipsis)
}

// TruncateTitle cuts plain text, such as a card title, to width cells.
func TruncateTitle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}
