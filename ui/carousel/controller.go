package carousel

import (
	"elastic-carousel/log"
	"elastic-carousel/ui/layout"
)

// Phase is the main state of the slide controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTransitioning
)

func (p Phase) String() string {
	if p == PhaseTransitioning {
		return "transitioning"
	}
	return "idle"
}

// State is the positional state of the carousel. Positions are in cells.
type State struct {
	FirstItem       int
	ChildWidth      int
	SliderPosition  int
	SwipedPosition  int
	IsSwiping       bool
	IsTransitioning bool
	ActivePage      int
	ContainerWidth  int
	RootHeight      int
}

// Effect tells the shell what a controller transition needs scheduled.
type Effect int

const (
	// EffectNone means the request changed nothing.
	EffectNone Effect = iota
	// EffectTransition means the track must animate to SliderPosition and
	// report completion through TransitionEnd with the pending hook id.
	EffectTransition
	// EffectTilt means the track must bounce to SwipedPosition and call
	// TiltEnd with the tilt id after TiltDuration.
	EffectTilt
)

// transitionHook is the one-shot completion hook of a running transition.
type transitionHook struct {
	id        int
	direction Direction
}

// Controller owns the carousel's positional state. It holds no timers:
// every method is a synchronous transition and the caller schedules the
// returned Effect.
type Controller struct {
	cfg   Config
	items []Item
	state State

	hook    *transitionHook
	hookSeq int
	tiltSeq int

	trace *log.ComponentTrace
}

// NewController creates a controller positioned at cfg.InitialFirstItem.
func NewController(cfg Config, items []Item) *Controller {
	c := &Controller{
		cfg:   normalizeConfig(cfg),
		items: items,
		trace: log.TraceComponent("carousel"),
	}
	c.state.FirstItem = clampIndex(c.cfg.InitialFirstItem, len(items)-1)
	c.relayout()
	return c
}

func normalizeConfig(cfg Config) Config {
	cfg.ItemsToShow = max(cfg.ItemsToShow, 1)
	cfg.ItemsToScroll = max(cfg.ItemsToScroll, 1)
	cfg.Transition = max(cfg.Transition, 0)
	if cfg.AutoPlaySpeed <= 0 {
		cfg.AutoPlaySpeed = DefaultAutoPlaySpeed
	}
	for i, p := range cfg.ItemPadding {
		cfg.ItemPadding[i] = max(p, 0)
	}
	return cfg
}

func clampIndex(i, hi int) int {
	return max(min(i, hi), 0)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Config returns the normalized configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Items returns the carousel children.
func (c *Controller) Items() []Item {
	return c.items
}

// Phase reports whether a transition is running.
func (c *Controller) Phase() Phase {
	if c.state.IsTransitioning {
		return PhaseTransitioning
	}
	return PhaseIdle
}

// Breakpoint resolves the breakpoint for the current container width.
func (c *Controller) Breakpoint() layout.Breakpoint {
	return layout.ResolveBreakpoint(c.cfg.Breakpoints, c.state.ContainerWidth, c.cfg.fallbackBreakpoint())
}

// VisibleItems is the number of slots in the window.
func (c *Controller) VisibleItems() int {
	return c.Breakpoint().ItemsToShow
}

// ItemsToScroll is the step of one arrow navigation.
func (c *Controller) ItemsToScroll() int {
	return c.Breakpoint().ItemsToScroll
}

// PageCount is ceil(childCount / visibleItems); zero without children.
func (c *Controller) PageCount() int {
	visible := c.VisibleItems()
	return (len(c.items) + visible - 1) / visible
}

// NextIndex returns the first item a navigation in dir would land on.
func (c *Controller) NextIndex(dir Direction) int {
	return c.indexFrom(c.state.FirstItem, dir, c.ItemsToScroll())
}

func (c *Controller) indexFrom(current int, dir Direction, step int) int {
	if dir == Prev {
		return FirstItemReducer(current, PrevItemAction(0, step))
	}
	return FirstItemReducer(current, NextItemAction(len(c.items)-c.VisibleItems(), step))
}

// AutoPlayExhausted reports whether a Next navigation would be a no-op.
func (c *Controller) AutoPlayExhausted() bool {
	return len(c.items) == 0 || c.NextIndex(Next) == c.state.FirstItem
}

// PendingHook returns the id of the registered completion hook.
func (c *Controller) PendingHook() (int, bool) {
	if c.hook == nil {
		return 0, false
	}
	return c.hook.id, true
}

// TiltID returns the id the next TiltEnd must carry.
func (c *Controller) TiltID() int {
	return c.tiltSeq
}

// Navigate moves one step in dir. At a boundary it starts the tilt
// bounce when enabled. Requests during a transition are dropped.
func (c *Controller) Navigate(dir Direction) Effect {
	if len(c.items) == 0 || c.state.IsTransitioning {
		return EffectNone
	}

	next := c.NextIndex(dir)
	if next != c.state.FirstItem {
		return c.moveTo(next, dir)
	}
	if !c.cfg.EnableTilt || c.state.IsSwiping {
		return EffectNone
	}

	c.tiltSeq++
	c.state.IsSwiping = true
	if dir == Next {
		c.state.SwipedPosition = c.state.SliderPosition - TiltDistance
	} else {
		c.state.SwipedPosition = TiltDistance
	}
	c.trace.Event("tilt", dir.String(), c.state.SwipedPosition)
	return EffectTilt
}

// GoTo moves directly to index. The index is clamped to the navigable
// range [0, childCount-visibleItems]; out-of-range requests are never
// rejected. Requests during a transition are dropped.
func (c *Controller) GoTo(index int) Effect {
	if len(c.items) == 0 || c.state.IsTransitioning {
		return EffectNone
	}

	current := c.state.FirstItem
	target := clampIndex(index, len(c.items)-c.VisibleItems())
	if target == current {
		return EffectNone
	}

	dir := Next
	step := target - current
	if target < current {
		dir = Prev
		step = current - target
	}
	return c.moveTo(c.indexFrom(current, dir, step), dir)
}

// GoToPage moves to the first item of page.
func (c *Controller) GoToPage(page int) Effect {
	return c.GoTo(page * c.VisibleItems())
}

func (c *Controller) moveTo(next int, dir Direction) Effect {
	prev := c.state.FirstItem
	prevInfo, nextInfo := c.itemInfo(prev), c.itemInfo(next)

	switch dir {
	case Next:
		if cb := c.cfg.Callbacks.OnNextStart; cb != nil {
			cb(prevInfo, nextInfo)
		}
	case Prev:
		if cb := c.cfg.Callbacks.OnPrevStart; cb != nil {
			cb(prevInfo, nextInfo)
		}
	}

	// A stale hook must never fire for this transition.
	c.hook = nil

	c.state.SliderPosition -= c.state.ChildWidth * (next - prev)
	c.state.FirstItem = next
	c.state.SwipedPosition = 0
	c.state.IsSwiping = false
	c.state.IsTransitioning = true
	c.tiltSeq++
	c.updateActivePage()

	c.hookSeq++
	c.hook = &transitionHook{id: c.hookSeq, direction: dir}

	c.trace.Event("navigate", dir.String(), prev, next)
	return EffectTransition
}

// TransitionEnd is the animation-end signal for hook id. Unknown or
// already-consumed ids are ignored, so duplicate signals are harmless.
func (c *Controller) TransitionEnd(id int) bool {
	if c.hook == nil || c.hook.id != id {
		return false
	}
	dir := c.hook.direction
	c.hook = nil
	c.state.IsTransitioning = false

	info := c.itemInfo(c.state.FirstItem)
	switch dir {
	case Next:
		if cb := c.cfg.Callbacks.OnNextEnd; cb != nil {
			cb(info)
		}
	case Prev:
		if cb := c.cfg.Callbacks.OnPrevEnd; cb != nil {
			cb(info)
		}
	}
	c.trace.Event("transition end", dir.String(), c.state.FirstItem)
	return true
}

// TiltEnd reverts the tilt bounce started with id.
func (c *Controller) TiltEnd(id int) bool {
	if !c.state.IsSwiping || id != c.tiltSeq {
		return false
	}
	c.state.IsSwiping = false
	c.state.SwipedPosition = 0
	return true
}

// ResizeContainer applies a new container width, shifts the window left
// when it would leave empty trailing slots, and notifies OnResize.
func (c *Controller) ResizeContainer(width int) layout.Breakpoint {
	c.state.ContainerWidth = max(width, 0)
	c.relayout()

	bp := c.Breakpoint()
	log.LayoutTrace("carousel container=%d child=%d first=%d show=%d",
		c.state.ContainerWidth, c.state.ChildWidth, c.state.FirstItem, bp.ItemsToShow)
	if cb := c.cfg.Callbacks.OnResize; cb != nil {
		cb(bp)
	}
	return bp
}

// ResizeSlider records the natural height of the track.
func (c *Controller) ResizeSlider(height int) {
	c.state.RootHeight = max(height, 0)
}

// SetItems replaces the children and re-clamps the position.
func (c *Controller) SetItems(items []Item) {
	c.items = items
	if len(items) == 0 {
		c.hook = nil
		c.state.IsTransitioning = false
		c.state.IsSwiping = false
		c.state.SwipedPosition = 0
	}
	c.relayout()
}

// SetConfig replaces the configuration and re-clamps the position.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = normalizeConfig(cfg)
	if !c.cfg.EnableTilt && c.state.IsSwiping {
		c.state.IsSwiping = false
		c.state.SwipedPosition = 0
	}
	c.relayout()
}

// Teardown drops the completion hook and any tilt so late signals from a
// destroyed carousel are ignored.
func (c *Controller) Teardown() {
	c.hook = nil
	c.state.IsTransitioning = false
	c.state.IsSwiping = false
	c.state.SwipedPosition = 0
	c.tiltSeq++
}

func (c *Controller) relayout() {
	visible := c.VisibleItems()
	c.state.ChildWidth = c.state.ContainerWidth / visible

	first := clampIndex(c.state.FirstItem, len(c.items)-1)
	if emptySlots := visible - (len(c.items) - first); emptySlots > 0 {
		first = max(first-emptySlots, 0)
	}
	c.state.FirstItem = first
	c.state.SliderPosition = -c.state.ChildWidth * first
	c.updateActivePage()
}

func (c *Controller) updateActivePage() {
	visible := c.VisibleItems()
	c.state.ActivePage = (c.state.FirstItem + visible - 1) / visible
}

func (c *Controller) itemInfo(index int) ItemInfo {
	info := ItemInfo{Index: index}
	if index >= 0 && index < len(c.items) {
		info.Item = c.items[index]
	}
	return info
}
