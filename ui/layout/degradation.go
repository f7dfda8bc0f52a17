package layout

// Degradation holds flags indicating which UI features should be hidden
// or simplified. Features are listed in order of degradation priority.
type Degradation struct {
	HideStatusBar  bool // Drop the deck status line (height < 12)
	HidePagination bool // Drop the pagination dots (height < 14)
	SingleLineMenu bool // Key hints on one line (height < 20)
	HideArrows     bool // Drop the arrow buttons (width < 50)
	ShowMinWarning bool // Terminal too small warning
}

// Threshold constants for degradation
const (
	StatusHideHeight     = 12
	PaginationHideHeight = 14
	SingleLineMenuHeight = 20
	ArrowHideWidth       = 50
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideStatusBar:  c.TerminalHeight < StatusHideHeight,
		HidePagination: c.TerminalHeight < PaginationHideHeight,
		SingleLineMenu: c.TerminalHeight < SingleLineMenuHeight,
		HideArrows:     c.TerminalWidth < ArrowHideWidth,
		ShowMinWarning: c.ShowMinWarning,
	}
}

// IsCompactMode returns true if any chrome is hidden.
func (d Degradation) IsCompactMode() bool {
	return d.HideStatusBar || d.HidePagination || d.HideArrows
}

// ShouldShowPagination reports whether pagination dots fit.
func (d Degradation) ShouldShowPagination() bool {
	return !d.HidePagination
}

// ShouldShowArrows reports whether arrow buttons fit.
func (d Degradation) ShouldShowArrows() bool {
	return !d.HideArrows
}
