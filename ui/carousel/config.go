package carousel

import (
	"time"

	"elastic-carousel/ui/layout"

	"github.com/charmbracelet/lipgloss"
)

// Direction is the direction of a navigation request.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// ItemPosition aligns an item inside its slot.
type ItemPosition string

const (
	PositionStart  ItemPosition = "start"
	PositionCenter ItemPosition = "center"
	PositionEnd    ItemPosition = "end"
)

func (p ItemPosition) lipgloss() lipgloss.Position {
	switch p {
	case PositionStart:
		return lipgloss.Left
	case PositionEnd:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// Item is a single child of the carousel.
type Item interface {
	// Render draws the item for a slot of the given inner width.
	Render(width int) string
}

// ItemInfo identifies an item in navigation callbacks.
type ItemInfo struct {
	Item  Item
	Index int
}

// ArrowProps is passed to a custom arrow renderer.
type ArrowProps struct {
	Type     Direction
	Disabled bool
	Hovered  bool
	Height   int
}

// Callbacks are notified about navigation and resize. Nil callbacks are no-ops.
type Callbacks struct {
	OnNextStart func(prev, next ItemInfo)
	OnPrevStart func(prev, next ItemInfo)
	OnNextEnd   func(current ItemInfo)
	OnPrevEnd   func(current ItemInfo)
	OnResize    func(current layout.Breakpoint)
}

// Config is the configuration surface of the carousel. It is treated as
// immutable for one render pass; replace it with Model.SetConfig.
type Config struct {
	ItemsToShow   int
	ItemsToScroll int
	Breakpoints   []layout.Breakpoint

	IsRTL      bool
	Pagination bool
	ShowArrows bool

	Transition time.Duration
	Easing     string
	TiltEasing string
	EnableTilt bool

	EnableSwipe      bool
	EnableMouseSwipe bool

	EnableAutoPlay bool
	AutoPlaySpeed  time.Duration

	InitialFirstItem int
	FocusOnSelect    bool

	ItemPosition ItemPosition
	// ItemPadding is [top, right, bottom, left] in cells.
	ItemPadding [4]int

	// RenderArrow replaces the default arrow buttons when set.
	RenderArrow func(ArrowProps) string

	// ClassName identifies the carousel in inspection snapshots.
	ClassName string
	// Style is applied to the whole carousel.
	Style lipgloss.Style

	Callbacks Callbacks
}

// Tilt and transition constants.
const (
	DefaultTransition    = 500 * time.Millisecond
	DefaultAutoPlaySpeed = 2000 * time.Millisecond
	DefaultEasing        = "cubic-bezier(.76,.57,.73,1)"
	DefaultTiltEasing    = "cubic-bezier(.58,0,.81,1.32)"

	// TiltDistance is how far the track bounces at a boundary, in cells.
	TiltDistance = 2
	// TiltDuration is how long the bounce holds before reverting.
	TiltDuration = 150 * time.Millisecond
	// SwipeTransition replaces Transition while the track is bouncing.
	SwipeTransition = 250 * time.Millisecond
)

// DefaultConfig returns the default carousel configuration.
func DefaultConfig() Config {
	return Config{
		ItemsToShow:      1,
		ItemsToScroll:    1,
		Pagination:       true,
		ShowArrows:       true,
		Transition:       DefaultTransition,
		Easing:           DefaultEasing,
		TiltEasing:       DefaultTiltEasing,
		EnableTilt:       true,
		EnableSwipe:      true,
		EnableMouseSwipe: true,
		AutoPlaySpeed:    DefaultAutoPlaySpeed,
		ItemPosition:     PositionCenter,
		Style:            lipgloss.NewStyle(),
	}
}

// fallbackBreakpoint is the breakpoint implied by the plain count props.
func (c Config) fallbackBreakpoint() layout.Breakpoint {
	return layout.Breakpoint{ItemsToShow: c.ItemsToShow, ItemsToScroll: c.ItemsToScroll}
}
