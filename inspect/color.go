package inspect

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var namedBorders = []struct {
	name   string
	border lipgloss.Border
}{
	{"rounded", lipgloss.RoundedBorder()},
	{"normal", lipgloss.NormalBorder()},
	{"thick", lipgloss.ThickBorder()},
	{"double", lipgloss.DoubleBorder()},
	{"hidden", lipgloss.HiddenBorder()},
}

// ExtractStyleInfo extracts style information from a lipgloss style.
func ExtractStyleInfo(style lipgloss.Style, styleNames ...string) *StyleInfo {
	info := &StyleInfo{
		Foreground:    colorToString(style.GetForeground()),
		Background:    colorToString(style.GetBackground()),
		Bold:          style.GetBold(),
		Italic:        style.GetItalic(),
		Underline:     style.GetUnderline(),
		AppliedStyles: styleNames,
	}

	top, right, bottom, left := style.GetPadding()
	if top > 0 || right > 0 || bottom > 0 || left > 0 {
		info.Padding = []int{top, right, bottom, left}
	}

	if style.GetBorderTop() || style.GetBorderRight() || style.GetBorderBottom() || style.GetBorderLeft() {
		info.Border = borderName(style.GetBorderStyle())
		info.BorderColor = colorToString(style.GetBorderTopForeground())
	}

	return info
}

func borderName(b lipgloss.Border) string {
	for _, nb := range namedBorders {
		if nb.border == b {
			return nb.name
		}
	}
	return "custom"
}

// colorToString converts a lipgloss.TerminalColor to a string representation.
func colorToString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("adaptive(light=%s, dark=%s)", v.Light, v.Dark)
	case lipgloss.CompleteColor:
		return fmt.Sprintf("complete(true=%s, ansi=%s, ansi256=%s)", v.TrueColor, v.ANSI, v.ANSI256)
	case lipgloss.CompleteAdaptiveColor:
		return fmt.Sprintf("complete_adaptive(light=%s, dark=%s)", v.Light.TrueColor, v.Dark.TrueColor)
	default:
		return fmt.Sprintf("%v", c)
	}
}
