package layout

import "sort"

// Terminal width breakpoints for the application shell.
const (
	// MinWidth is the narrowest terminal the deck viewer supports.
	MinWidth = 40

	// CompactWidth is the threshold for compact layout.
	CompactWidth = 60

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 100

	// FullWidth is the threshold for full layout.
	FullWidth = 140
)

// Terminal height breakpoints for the application shell.
const (
	// MinHeight is the shortest terminal the deck viewer supports.
	MinHeight = 10

	// CompactHeight is the threshold for compact layout.
	CompactHeight = 16

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 36
)

// Menu constraints
const (
	// MenuMinHeight is a single line of key hints.
	MenuMinHeight = 1

	// MenuStandardHeight leaves a blank line above the key hints.
	MenuStandardHeight = 2

	// MenuMaxHeight is the menu height in full mode.
	MenuMaxHeight = 3
)

// Component constraints
const (
	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1

	// StatusBarHeight is the height of the deck status line.
	StatusBarHeight = 1
)

// Overlay constraints
const (
	OverlayMaxWidth  = 72
	OverlayMaxHeight = 24
	OverlayMinWidth  = 30
	OverlayMinHeight = 8
	OverlayMargin    = 2
)

// Breakpoint maps a minimum container width to the number of items the
// carousel shows and scrolls at that width.
type Breakpoint struct {
	Width         int `json:"width" yaml:"width" toml:"width"`
	ItemsToShow   int `json:"items_to_show" yaml:"items_to_show" toml:"items_to_show"`
	ItemsToScroll int `json:"items_to_scroll,omitempty" yaml:"items_to_scroll,omitempty" toml:"items_to_scroll,omitempty"`
}

// ResolveBreakpoint returns the breakpoint that applies to containerWidth.
//
// Breakpoints are read in authored order. The widest entry whose Width is
// not greater than containerWidth wins; when the container is narrower than
// every entry the first authored entry is used. With no breakpoints the
// fallback is returned. Zero counts in the chosen entry inherit the
// fallback's counts, and both counts are at least 1.
func ResolveBreakpoint(breakpoints []Breakpoint, containerWidth int, fallback Breakpoint) Breakpoint {
	resolved := fallback
	if len(breakpoints) > 0 {
		resolved = breakpoints[0]
		for i := len(breakpoints) - 1; i >= 0; i-- {
			if breakpoints[i].Width <= containerWidth {
				resolved = breakpoints[i]
				break
			}
		}
		if resolved.ItemsToShow <= 0 {
			resolved.ItemsToShow = fallback.ItemsToShow
		}
		if resolved.ItemsToScroll <= 0 {
			resolved.ItemsToScroll = fallback.ItemsToScroll
		}
	}
	resolved.ItemsToShow = max(resolved.ItemsToShow, 1)
	resolved.ItemsToScroll = max(resolved.ItemsToScroll, 1)
	return resolved
}

// SortBreakpoints returns a copy of breakpoints ordered by ascending width.
// ResolveBreakpoint trusts authored order, so config loaders sort first.
func SortBreakpoints(breakpoints []Breakpoint) []Breakpoint {
	sorted := make([]Breakpoint, len(breakpoints))
	copy(sorted, breakpoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width < sorted[j].Width
	})
	return sorted
}
