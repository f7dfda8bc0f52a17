// Package carousel is a responsive, swipeable Bubble Tea carousel.
//
// The Model lays its items out in equal slots, shows as many as the active
// breakpoint allows and slides between them with an eased animation. It
// reacts to arrow buttons, keys, pagination dots, mouse drags and
// horizontal wheel swipes, and can advance on its own with autoplay.
package carousel

import (
	"strings"
	"sync/atomic"
	"time"

	"elastic-carousel/inspect"
	"elastic-carousel/log"
	"elastic-carousel/ui/button"
	"elastic-carousel/ui/layout"
	"elastic-carousel/ui/pagination"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TiltEndMsg reverts the boundary bounce of carousel ID.
type TiltEndMsg struct {
	ID   int
	Tilt int
}

// AutoPlayMsg is one autoplay tick of carousel ID.
type AutoPlayMsg struct {
	ID    int
	Timer int
}

// KeyMap defines the carousel's keyboard bindings. Left and Right act like
// the arrow on that side of the screen, so they follow the writing mode.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	First key.Binding
	Last  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces the time source of the animation.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.keys = km
	}
}

type autoplayTimer struct {
	id    int
	armed bool
}

// Model is the carousel component.
type Model struct {
	id   int
	ctrl *Controller
	keys KeyMap
	now  func() time.Time

	observer *resizeObserver
	anim     animator
	autoplay autoplayTimer
	mounted  bool

	easing     EasingFunc
	tiltEasing EasingFunc

	track      track
	pagination pagination.Model

	width, height    int
	originX, originY int

	drag       drag
	hoverLeft  bool
	hoverRight bool
}

// New creates a carousel. It does nothing until Init mounts it.
func New(cfg Config, items []Item, opts ...Option) *Model {
	m := &Model{
		id:         nextID(),
		ctrl:       NewController(cfg, items),
		keys:       DefaultKeyMap(),
		now:        time.Now,
		observer:   newResizeObserver(),
		pagination: pagination.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.parseEasings()
	m.anim.snap(m.ctrl.State().SliderPosition)
	return m
}

// ID is the id carried by this carousel's messages.
func (m *Model) ID() int {
	return m.id
}

// Controller exposes the positional state machine.
func (m *Model) Controller() *Controller {
	return m.ctrl
}

// Init mounts the carousel: it starts observing its container and track
// and arms autoplay when enabled.
func (m *Model) Init() tea.Cmd {
	m.mounted = true
	m.observer.observe(targetContainer)
	m.observer.observe(targetSlider)
	m.measure()
	return m.syncAutoplay()
}

// Teardown unmounts the carousel. Pending animation frames, tilt and
// autoplay ticks are ignored afterwards.
func (m *Model) Teardown() {
	m.mounted = false
	m.observer.disconnect()
	m.autoplay.armed = false
	m.autoplay.id++
	m.anim.stop()
	m.ctrl.Teardown()
	m.anim.snap(m.ctrl.State().SliderPosition)
	m.drag = drag{}
}

// Mounted reports whether Init ran without a later Teardown.
func (m *Model) Mounted() bool {
	return m.mounted
}

// SetSize sets the space the carousel may use, arrows and pagination
// included.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width, m.height = max(width, 0), max(height, 0)
	m.measure()
	return m.syncAutoplay()
}

// SetOrigin sets the screen position of the top left corner, used to map
// mouse events.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetItems replaces the children.
func (m *Model) SetItems(items []Item) tea.Cmd {
	m.ctrl.SetItems(items)
	if len(items) == 0 {
		m.anim.stop()
	}
	m.anim.retarget(m.target(), m.now())
	m.measure()
	return m.syncAutoplay()
}

// SetConfig replaces the configuration.
func (m *Model) SetConfig(cfg Config) tea.Cmd {
	m.ctrl.SetConfig(cfg)
	m.parseEasings()
	m.anim.retarget(m.target(), m.now())
	m.measure()
	return m.syncAutoplay()
}

// Config returns the active configuration.
func (m *Model) Config() Config {
	return m.ctrl.Config()
}

// Breakpoint is the breakpoint resolved for the current width.
func (m *Model) Breakpoint() layout.Breakpoint {
	return m.ctrl.Breakpoint()
}

// FirstItem is the index of the first visible item.
func (m *Model) FirstItem() int {
	return m.ctrl.State().FirstItem
}

// ActivePage is the page of the first visible item.
func (m *Model) ActivePage() int {
	return m.ctrl.State().ActivePage
}

// PageCount is the number of pagination dots.
func (m *Model) PageCount() int {
	return m.ctrl.PageCount()
}

// AutoPlaying reports whether an autoplay timer is armed.
func (m *Model) AutoPlaying() bool {
	return m.autoplay.armed
}

// Animating reports whether the track is moving.
func (m *Model) Animating() bool {
	return m.anim.running
}

// Next navigates forward.
func (m *Model) Next() tea.Cmd {
	return m.apply(m.ctrl.Navigate(Next))
}

// Prev navigates backward.
func (m *Model) Prev() tea.Cmd {
	return m.apply(m.ctrl.Navigate(Prev))
}

// GoTo moves to item index, clamped to the navigable range.
func (m *Model) GoTo(index int) tea.Cmd {
	return m.apply(m.ctrl.GoTo(index))
}

// GoToPage moves to the first item of page.
func (m *Model) GoToPage(page int) tea.Cmd {
	return m.apply(m.ctrl.GoToPage(page))
}

// PressArrow activates the arrow on the left or right side of the screen.
func (m *Model) PressArrow(left bool) tea.Cmd {
	return m.apply(m.ctrl.Navigate(m.arrowDirection(left)))
}

// Swipe handles a finished swipe gesture.
func (m *Model) Swipe(swipedLeft bool) tea.Cmd {
	dir := Prev
	if swipedLeft != m.ctrl.Config().IsRTL {
		dir = Next
	}
	return m.apply(m.ctrl.Navigate(dir))
}

func (m *Model) arrowDirection(left bool) Direction {
	if left != m.ctrl.Config().IsRTL {
		return Prev
	}
	return Next
}

func (m *Model) parseEasings() {
	cfg := m.ctrl.Config()
	m.easing = easingOrDefault(cfg.Easing, DefaultEasing)
	m.tiltEasing = easingOrDefault(cfg.TiltEasing, DefaultTiltEasing)
}

// target is where the track should rest given the controller state.
func (m *Model) target() int {
	st := m.ctrl.State()
	if st.IsSwiping {
		return st.SwipedPosition
	}
	return st.SliderPosition
}

// measure feeds the current container and track sizes to the observer and
// applies the entries it produces.
func (m *Model) measure() {
	for _, e := range m.observer.report(targetContainer, m.containerWidth(), m.height) {
		bp := m.ctrl.ResizeContainer(e.Width)
		m.anim.retarget(m.target(), m.now())
		log.LayoutTrace("carousel %d container %dx%d show=%d scroll=%d", m.id, e.Width, e.Height, bp.ItemsToShow, bp.ItemsToScroll)
	}

	st := m.ctrl.State()
	m.track = renderTrack(m.ctrl.Items(), st.ChildWidth, m.ctrl.Config())
	for _, e := range m.observer.report(targetSlider, m.track.width, m.track.height()) {
		m.ctrl.ResizeSlider(e.Height)
	}
}

func (m *Model) arrowsWidth() int {
	if !m.ctrl.Config().ShowArrows {
		return 0
	}
	return button.Width
}

func (m *Model) containerWidth() int {
	return max(m.width-2*m.arrowsWidth(), 0)
}

func (m *Model) paginationRows() int {
	if m.ctrl.Config().Pagination && m.ctrl.PageCount() > 0 {
		return 1
	}
	return 0
}

func (m *Model) rowHeight() int {
	h := m.ctrl.State().RootHeight
	if m.height > 0 {
		h = min(h, m.height-m.paginationRows())
	}
	return max(h, 1)
}

// apply schedules what a controller transition asked for.
func (m *Model) apply(effect Effect) tea.Cmd {
	st := m.ctrl.State()
	cfg := m.ctrl.Config()

	var cmds []tea.Cmd
	switch effect {
	case EffectNone:
		return nil
	case EffectTransition:
		hook, _ := m.ctrl.PendingHook()
		anim := m.anim.animate(st.SliderPosition, cfg.Transition, m.easing, hook, m.now())
		cmds = append(cmds, frameCmd(m.id, anim, frameInterval))
	case EffectTilt:
		anim := m.anim.animate(st.SwipedPosition, SwipeTransition, m.tiltEasing, 0, m.now())
		id, tilt := m.id, m.ctrl.TiltID()
		cmds = append(cmds,
			frameCmd(m.id, anim, frameInterval),
			tea.Tick(TiltDuration, func(time.Time) tea.Msg {
				return TiltEndMsg{ID: id, Tilt: tilt}
			}),
		)
	}
	cmds = append(cmds, m.syncAutoplay())
	return tea.Batch(cmds...)
}

// syncAutoplay arms the timer when autoplay is enabled and could still
// move, and cancels it otherwise.
func (m *Model) syncAutoplay() tea.Cmd {
	enabled := m.mounted && m.ctrl.Config().EnableAutoPlay && !m.ctrl.AutoPlayExhausted()
	switch {
	case !enabled && m.autoplay.armed:
		m.autoplay.armed = false
		m.autoplay.id++
	case enabled && !m.autoplay.armed:
		m.autoplay.armed = true
		m.autoplay.id++
		return m.autoplayTick()
	}
	return nil
}

func (m *Model) autoplayTick() tea.Cmd {
	id, timer := m.id, m.autoplay.id
	return tea.Tick(m.ctrl.Config().AutoPlaySpeed, func(time.Time) tea.Msg {
		return AutoPlayMsg{ID: id, Timer: timer}
	})
}

// Update handles carousel messages, keys and mouse events. Messages of
// other carousels are ignored.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.SetSize(msg.Width, msg.Height)
	case FrameMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m, m.handleFrame(msg)
	case TiltEndMsg:
		if msg.ID != m.id || !m.ctrl.TiltEnd(msg.Tilt) {
			return m, nil
		}
		cfg := m.ctrl.Config()
		anim := m.anim.animate(m.ctrl.State().SliderPosition, cfg.Transition, m.easing, 0, m.now())
		return m, frameCmd(m.id, anim, frameInterval)
	case AutoPlayMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m, m.handleAutoPlay(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleFrame(msg FrameMsg) tea.Cmd {
	ok, done := m.anim.step(msg.Anim, m.now())
	if !ok {
		return nil
	}
	if !done {
		return frameCmd(m.id, msg.Anim, frameInterval)
	}

	hook := m.anim.hook
	m.anim.hook = 0
	if hook != 0 && m.ctrl.TransitionEnd(hook) {
		return m.syncAutoplay()
	}
	return nil
}

func (m *Model) handleAutoPlay(msg AutoPlayMsg) tea.Cmd {
	if !m.autoplay.armed || msg.Timer != m.autoplay.id {
		return nil
	}

	var cmd tea.Cmd
	if m.ctrl.Phase() == PhaseIdle {
		cmd = m.apply(m.ctrl.Navigate(Next))
	} else {
		cmd = m.syncAutoplay()
	}
	if m.autoplay.armed && msg.Timer == m.autoplay.id {
		return tea.Batch(cmd, m.autoplayTick())
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		return m.PressArrow(true)
	case key.Matches(msg, m.keys.Right):
		return m.PressArrow(false)
	case key.Matches(msg, m.keys.First):
		return m.GoTo(0)
	case key.Matches(msg, m.keys.Last):
		return m.GoTo(len(m.ctrl.Items()))
	}
	return nil
}

type zone int

const (
	zoneNone zone = iota
	zoneLeftArrow
	zoneRightArrow
	zoneTrack
	zonePagination
)

// zoneAt maps a point relative to the carousel to the part under it and
// the column inside that part.
func (m *Model) zoneAt(x, y int) (zone, int) {
	aw, cw := m.arrowsWidth(), m.ctrl.State().ContainerWidth
	rowH := m.rowHeight()

	switch {
	case y >= 0 && y < rowH:
		switch {
		case x < 0:
			return zoneNone, 0
		case x < aw:
			return zoneLeftArrow, x
		case x < aw+cw:
			return zoneTrack, x - aw
		case x < 2*aw+cw:
			return zoneRightArrow, x - aw - cw
		}
	case y == rowH && m.paginationRows() > 0:
		p := m.pages()
		return zonePagination, x - (m.totalWidth()-p.Width())/2
	}
	return zoneNone, 0
}

func (m *Model) totalWidth() int {
	return m.ctrl.State().ContainerWidth + 2*m.arrowsWidth()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	cfg := m.ctrl.Config()
	z, x := m.zoneAt(msg.X-m.originX, msg.Y-m.originY)

	if msg.Action == tea.MouseActionMotion {
		m.hoverLeft = z == zoneLeftArrow
		m.hoverRight = z == zoneRightArrow
		if z == zonePagination {
			m.pagination.SetHovered(x)
		} else {
			m.pagination.SetHovered(-1)
		}
		if m.drag.active {
			m.drag.lastX = msg.X - m.originX
		}
		return nil
	}

	if msg.Action == tea.MouseActionRelease {
		if !m.drag.active {
			return nil
		}
		d := m.drag
		d.lastX = msg.X - m.originX
		m.drag = drag{}
		return m.finishDrag(d)
	}

	switch msg.Button {
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		if z != zoneTrack || !cfg.EnableSwipe {
			return nil
		}
		log.InputTrace("carousel %d wheel swipe %v", m.id, msg.Button)
		return m.Swipe(msg.Button == tea.MouseButtonWheelRight)
	case tea.MouseButtonLeft:
		switch z {
		case zoneLeftArrow:
			return m.PressArrow(true)
		case zoneRightArrow:
			return m.PressArrow(false)
		case zonePagination:
			if page, ok := m.pages().PageAt(x); ok {
				return m.GoToPage(page)
			}
		case zoneTrack:
			m.drag = drag{active: true, startX: msg.X - m.originX, lastX: msg.X - m.originX}
		}
	}
	return nil
}

func (m *Model) finishDrag(d drag) tea.Cmd {
	cfg := m.ctrl.Config()
	switch dir := d.swipeDirection(); {
	case dir != 0 && cfg.EnableMouseSwipe:
		log.InputTrace("carousel %d mouse swipe %d", m.id, dir)
		return m.Swipe(dir < 0)
	case dir == 0 && cfg.FocusOnSelect:
		st := m.ctrl.State()
		x := d.startX - m.arrowsWidth()
		if index, ok := m.track.itemAt(x, m.anim.position(), st.ContainerWidth, len(m.ctrl.Items())); ok {
			return m.GoTo(index)
		}
	}
	return nil
}

func (m *Model) pages() pagination.Model {
	p := m.pagination
	p.Pages = m.ctrl.PageCount()
	p.Active = m.ctrl.State().ActivePage
	return p
}

func (m *Model) renderArrow(left bool, height int) string {
	dir := m.arrowDirection(left)
	disabled := m.ctrl.NextIndex(dir) == m.ctrl.State().FirstItem
	hovered := m.hoverRight
	if left {
		hovered = m.hoverLeft
	}

	if render := m.ctrl.Config().RenderArrow; render != nil {
		custom := render(ArrowProps{Type: dir, Disabled: disabled, Hovered: hovered, Height: height})
		lines := strings.Split(custom, "\n")
		for i, line := range lines {
			lines[i] = cutCells(line, 0, button.Width)
		}
		return lipgloss.PlaceVertical(height, lipgloss.Center, strings.Join(lines, "\n"))
	}

	label := "❯"
	if left {
		label = "❮"
	}
	b := button.New(label)
	b.Height = height
	b.Disabled = disabled
	b.Hovered = hovered
	return b.View()
}

// View renders the arrows, the visible window of the track and the
// pagination dots.
func (m *Model) View() string {
	defer log.GetProfiler().StartRender("carousel")()

	cfg := m.ctrl.Config()
	st := m.ctrl.State()
	rowH := m.rowHeight()

	row := m.track.window(m.anim.position(), st.ContainerWidth, rowH)
	if cfg.ShowArrows {
		row = lipgloss.JoinHorizontal(lipgloss.Top, m.renderArrow(true, rowH), row, m.renderArrow(false, rowH))
	}

	parts := []string{row}
	if m.paginationRows() > 0 {
		parts = append(parts, lipgloss.PlaceHorizontal(m.totalWidth(), lipgloss.Center, m.pages().View()))
	}
	return cfg.Style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// InspectNode describes the carousel for UI snapshots.
func (m *Model) InspectNode() *inspect.Node {
	st := m.ctrl.State()
	bp := m.ctrl.Breakpoint()
	id := m.ctrl.Config().ClassName
	if id == "" {
		id = "carousel"
	}

	node := inspect.NewNode("Carousel").
		WithID(id).
		WithBounds(m.originX, m.originY, m.totalWidth(), m.rowHeight()+m.paginationRows()).
		WithState("first_item", st.FirstItem).
		WithState("child_width", st.ChildWidth).
		WithState("slider_position", st.SliderPosition).
		WithState("rendered_position", m.anim.position()).
		WithState("phase", m.ctrl.Phase().String()).
		WithState("swiping", st.IsSwiping).
		WithState("active_page", st.ActivePage).
		WithState("page_count", m.ctrl.PageCount()).
		WithState("items", len(m.ctrl.Items())).
		WithState("items_to_show", bp.ItemsToShow).
		WithState("items_to_scroll", bp.ItemsToScroll).
		WithState("autoplay", m.autoplay.armed).
		WithState("rtl", m.ctrl.Config().IsRTL).
		WithStyles(inspect.ExtractStyleInfo(m.ctrl.Config().Style, "carousel"))

	if m.paginationRows() > 0 {
		p := m.pages()
		node.AddChild(inspect.NewNode("Pagination").
			WithBounds(m.originX+(m.totalWidth()-p.Width())/2, m.originY+m.rowHeight(), p.Width(), 1).
			WithState("pages", p.Pages).
			WithState("active", p.Active).
			WithStyles(inspect.ExtractStyleInfo(p.ActiveStyle, "pagination.active")))
	}
	return node
}
