package inspect

import (
	"fmt"
	"strings"
	"time"

	"elastic-carousel/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	// Version of the snapshot format.
	Version string `json:"version"`

	Terminal TerminalInfo `json:"terminal"`
	AppState AppStateInfo `json:"app_state"`
	Layout   LayoutInfo   `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints lists the shell degradation thresholds.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
	// CarouselBreakpoints lists the carousel breakpoints in authored order.
	CarouselBreakpoints []CarouselBreakpointInfo `json:"carousel_breakpoints,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is "default", "empty" or "overlay".
	State       string `json:"state"`
	HasOverlay  bool   `json:"has_overlay"`
	OverlayType string `json:"overlay_type,omitempty"`

	DeckPath  string `json:"deck_path,omitempty"`
	DeckTitle string `json:"deck_title,omitempty"`
	CardCount int    `json:"card_count"`
	FirstItem int    `json:"first_item"`
	Page      int    `json:"page"`
	PageCount int    `json:"page_count"`

	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	Mode           string          `json:"mode"`
	CarouselWidth  int             `json:"carousel_width"`
	CarouselHeight int             `json:"carousel_height"`
	StatusHeight   int             `json:"status_height"`
	MenuHeight     int             `json:"menu_height"`
	Degradation    DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideStatusBar  bool `json:"hide_status_bar"`
	HidePagination bool `json:"hide_pagination"`
	SingleLineMenu bool `json:"single_line_menu"`
	HideArrows     bool `json:"hide_arrows"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// CarouselBreakpointInfo is one carousel breakpoint and whether it applies
// to the current container width.
type CarouselBreakpointInfo struct {
	Width         int  `json:"width"`
	ItemsToShow   int  `json:"items_to_show"`
	ItemsToScroll int  `json:"items_to_scroll"`
	Active        bool `json:"active"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets the application state.
func (s *Snapshot) WithAppState(info AppStateInfo) *Snapshot {
	s.AppState = info
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:           c.Mode.String(),
		CarouselWidth:  c.CarouselWidth,
		CarouselHeight: c.CarouselHeight,
		StatusHeight:   c.StatusHeight,
		MenuHeight:     c.MenuHeight,
		Degradation: DegradationInfo{
			HideStatusBar:  d.HideStatusBar,
			HidePagination: d.HidePagination,
			SingleLineMenu: d.SingleLineMenu,
			HideArrows:     d.HideArrows,
			ShowMinWarning: d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_status_bar", Threshold: layout.StatusHideHeight, Active: d.HideStatusBar, Dimension: "height"},
		{Name: "hide_pagination", Threshold: layout.PaginationHideHeight, Active: d.HidePagination, Dimension: "height"},
		{Name: "single_line_menu", Threshold: layout.SingleLineMenuHeight, Active: d.SingleLineMenu, Dimension: "height"},
		{Name: "hide_arrows", Threshold: layout.ArrowHideWidth, Active: d.HideArrows, Dimension: "width"},
	}
	return s
}

// WithCarouselBreakpoints records the carousel breakpoints, marking the one
// equal to active.
func (s *Snapshot) WithCarouselBreakpoints(bps []layout.Breakpoint, active layout.Breakpoint) *Snapshot {
	s.CarouselBreakpoints = make([]CarouselBreakpointInfo, len(bps))
	for i, bp := range bps {
		s.CarouselBreakpoints[i] = CarouselBreakpointInfo{
			Width:         bp.Width,
			ItemsToShow:   bp.ItemsToShow,
			ItemsToScroll: bp.ItemsToScroll,
			Active:        bp.Width == active.Width && bp.ItemsToShow == active.ItemsToShow,
		}
	}
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	fmt.Fprintf(&b, "Time: %s\n", s.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height)
	fmt.Fprintf(&b, "State: %s\n", s.AppState.State)
	if s.AppState.DeckPath != "" {
		fmt.Fprintf(&b, "Deck: %s (%d cards, page %d/%d)\n",
			s.AppState.DeckPath, s.AppState.CardCount, s.AppState.Page+1, s.AppState.PageCount)
	}

	b.WriteString("\n--- Layout ---\n")
	fmt.Fprintf(&b, "Mode: %s\n", s.Layout.Mode)
	fmt.Fprintf(&b, "Carousel: %dx%d\n", s.Layout.CarouselWidth, s.Layout.CarouselHeight)

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		fmt.Fprintf(&b, "  %s %s (threshold: %d %s)\n", checkbox(bp.Active), bp.Name, bp.Threshold, bp.Dimension)
	}
	for _, bp := range s.CarouselBreakpoints {
		fmt.Fprintf(&b, "  %s carousel >= %d: show %d, scroll %d\n", checkbox(bp.Active), bp.Width, bp.ItemsToShow, bp.ItemsToScroll)
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[X]"
	}
	return "[ ]"
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(node.Type)
	if node.ID != "" {
		fmt.Fprintf(b, " [%s]", node.ID)
	}
	fmt.Fprintf(b, " (%dx%d)", node.Bounds.Width, node.Bounds.Height)

	if node.Truncated != nil {
		fmt.Fprintf(b, " TRUNCATED(%d->%d)", node.Truncated.OriginalLength, node.Truncated.DisplayLength)
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
