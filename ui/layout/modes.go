// Package layout provides responsive layout calculations for the deck
// viewer and the breakpoint resolver used by the carousel.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 140w x 36h).
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 100w x 24h).
	LayoutStandard

	// LayoutCompact is for small terminals (>= 40w x 10h).
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the layout mode for the given dimensions.
// The more restrictive of the width and height modes wins.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}
	return max(modeFor(width, FullWidth, StandardWidth), modeFor(height, FullHeight, StandardHeight))
}

func modeFor(size, full, standard int) LayoutMode {
	switch {
	case size >= full:
		return LayoutFull
	case size >= standard:
		return LayoutStandard
	default:
		return LayoutCompact
	}
}
