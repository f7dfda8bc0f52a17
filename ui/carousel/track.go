package carousel

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// swipeThreshold is the drag distance, in cells, that counts as a swipe
// rather than a click.
const swipeThreshold = 3

// track is the rendered strip of all items, laid out side by side.
type track struct {
	lines      []string
	width      int
	childWidth int
	rtl        bool
}

// height is the natural height of the strip: its tallest item.
func (t track) height() int {
	return len(t.lines)
}

// renderTrack lays items out in slots of childWidth cells. In RTL the
// strip is reversed so item 0 sits at the right edge.
func renderTrack(items []Item, childWidth int, cfg Config) track {
	t := track{childWidth: childWidth, rtl: cfg.IsRTL, width: childWidth * len(items)}
	if len(items) == 0 || childWidth <= 0 {
		return t
	}

	slots := make([]string, len(items))
	for i, item := range items {
		slots[i] = renderSlot(item, childWidth, cfg)
	}
	if cfg.IsRTL {
		slices.Reverse(slots)
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, slots...)
	t.lines = strings.Split(strip, "\n")
	return t
}

func renderSlot(item Item, childWidth int, cfg Config) string {
	top, right, bottom, left := cfg.ItemPadding[0], cfg.ItemPadding[1], cfg.ItemPadding[2], cfg.ItemPadding[3]
	inner := childWidth - left - right
	if inner <= 0 {
		return strings.Repeat(" ", childWidth)
	}

	lines := strings.Split(item.Render(inner), "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > inner {
			lines[i] = ansi.Truncate(line, inner, "")
		}
	}
	content := lipgloss.PlaceHorizontal(inner, cfg.ItemPosition.lipgloss(), strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Padding(top, right, bottom, left).
		Render(content)
}

// window cuts the visible part of the strip for a track offset of pos
// (zero or negative, positive while tilting at the start). The result is
// exactly width cells wide and height lines tall.
func (t track) window(pos, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	start := -pos
	if t.rtl {
		start = t.width - width + pos
	}

	blank := strings.Repeat(" ", width)
	out := make([]string, height)
	for i := range out {
		if i < len(t.lines) {
			out[i] = cutCells(t.lines[i], start, width)
		} else {
			out[i] = blank
		}
	}
	return strings.Join(out, "\n")
}

// cutCells returns width cells of line starting at cell start, padding
// with spaces where the range leaves the line.
func cutCells(line string, start, width int) string {
	var b strings.Builder
	if start < 0 {
		lead := min(-start, width)
		b.WriteString(strings.Repeat(" ", lead))
		width -= lead
		start = 0
	}
	if width <= 0 {
		return b.String()
	}

	seg := ansi.TruncateLeft(ansi.Truncate(line, start+width, ""), start, "")
	b.WriteString(seg)
	if pad := width - ansi.StringWidth(seg); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// itemAt maps column x of a width-cell window, at track offset pos, to an
// item index.
func (t track) itemAt(x, pos, width, count int) (int, bool) {
	if x < 0 || x >= width || t.childWidth <= 0 {
		return 0, false
	}

	cell := x - pos
	if t.rtl {
		cell = width - 1 - x - pos
	}
	if cell < 0 {
		return 0, false
	}
	index := cell / t.childWidth
	if index >= count {
		return 0, false
	}
	return index, true
}

// drag is an in-progress mouse press on the track.
type drag struct {
	active bool
	startX int
	lastX  int
}

// swipeDirection classifies a finished drag: -1 swiped left, +1 swiped
// right, 0 a click.
func (d drag) swipeDirection() int {
	switch dx := d.lastX - d.startX; {
	case dx <= -swipeThreshold:
		return -1
	case dx >= swipeThreshold:
		return 1
	}
	return 0
}
