// Package overlay contains the modal dialogs of the deck viewer and the
// compositor that draws them over the main view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var shadowStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#222222"})

const (
	shadowChar = "░"
	resetStyle = "\x1b[0m"
)

// PlaceOverlay draws fg over bg with its top left corner at (x, y). With
// center set, x and y are offsets from the centered position. A shadow
// one cell right and below is drawn when shadow is set. Cells of bg that
// are not covered keep their styling.
func PlaceOverlay(x, y int, fg, bg string, shadow, center bool) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	fgWidth := lipgloss.Width(fg)
	bgWidth := lipgloss.Width(bg)

	if center {
		x += (bgWidth - fgWidth) / 2
		y += (len(bgLines) - len(fgLines)) / 2
	}
	x = max(0, min(x, bgWidth-fgWidth))
	y = max(0, min(y, len(bgLines)-len(fgLines)))

	if shadow {
		sh := make([]string, len(fgLines))
		for i := range sh {
			sh[i] = shadowStyle.Render(strings.Repeat(shadowChar, fgWidth))
		}
		bg = PlaceOverlay(x+1, y+1, strings.Join(sh, "\n"), bg, false, false)
		bgLines = strings.Split(bg, "\n")
	}

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLines[row] = spliceLine(bgLines[row], line, x, fgWidth)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLine replaces width cells of bg starting at x with fg.
func spliceLine(bg, fg string, x, width int) string {
	bgWidth := ansi.StringWidth(bg)
	if bgWidth < x {
		bg += strings.Repeat(" ", x-bgWidth)
	}

	left := ansi.Truncate(bg, x, "")
	if strings.Contains(left, "\x1b[") {
		// A style cut in half would bleed into fg.
		left += resetStyle
	}
	right := ansi.TruncateLeft(bg, x+width, "")
	if pad := width - ansi.StringWidth(fg); pad > 0 {
		fg += strings.Repeat(" ", pad)
	}
	return left + fg + right
}
