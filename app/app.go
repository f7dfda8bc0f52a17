package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"elastic-carousel/config"
	"elastic-carousel/deck"
	"elastic-carousel/keys"
	"elastic-carousel/log"
	"elastic-carousel/ui"
	"elastic-carousel/ui/carousel"
	"elastic-carousel/ui/layout"
	"elastic-carousel/ui/overlay"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxItemsToShow bounds the +/- keys.
const maxItemsToShow = 8

// Run is the main entrypoint into the application. An empty deckPath
// starts with the deck browser.
func Run(ctx context.Context, deckPath string, cfg *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, deckPath, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Arrow hover and track drags
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the help screen is displayed.
	stateHelp
	// stateSettings is the state when the settings overlay is displayed.
	stateSettings
	// stateJump is the state when the user is searching for a card.
	stateJump
	// stateBrowse is the state when the user is picking a deck file.
	stateBrowse
	// stateLoading is the state while a deck is being opened.
	stateLoading
)

func (s state) String() string {
	switch s {
	case stateHelp:
		return "help"
	case stateSettings:
		return "settings"
	case stateJump:
		return "jump"
	case stateBrowse:
		return "browse"
	case stateLoading:
		return "loading"
	default:
		return "default"
	}
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig is the live configuration. Key toggles change it for the
	// session; the settings overlay also saves it.
	appConfig *config.Config
	// appState stores remembered deck positions and seen help screens
	appState *config.State

	// -- Deck --

	// deckPath is the last deck the user asked for, even if it failed to load.
	deckPath string
	deck     *deck.Deck
	renderer *deck.Renderer
	watcher  *deck.Watcher
	// reloadedAt is set when the open deck was reloaded from disk.
	reloadedAt *time.Time
	// loadSeq identifies the newest deck load; older results are dropped.
	loadSeq int

	// -- State --

	state state
	// pendingSave indicates that a position save is queued (for debouncing)
	pendingSave bool
	// positionDirty is set by the carousel callbacks after a move.
	positionDirty bool
	errSeq        int

	constraints layout.Constraints
	degradation layout.Degradation

	// -- UI Components --

	carousel *carousel.Model
	menu     *ui.Menu
	status   *ui.StatusBar
	errBox   *ui.ErrBox
	// global spinner instance, shared by the status bar and the loading overlay
	spinner spinner.Model

	helpOverlay     *overlay.HelpOverlay
	settingsOverlay *overlay.SettingsOverlay
	jumpOverlay     *overlay.JumpOverlay
	browserOverlay  *overlay.FileBrowserOverlay
	loadingOverlay  *overlay.LoadingOverlay

	// copyText writes to the system clipboard.
	copyText func(string) error
	now      func() time.Time
}

func newHome(ctx context.Context, deckPath string, cfg *config.Config) *home {
	if cfg == nil {
		cfg = config.LoadConfig()
	}

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		appState:  config.LoadState(),
		deckPath:  deckPath,
		renderer:  deck.NewRenderer(cfg.MarkdownStyle),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		menu:      ui.NewMenu(),
		status:    ui.NewStatusBar(),
		errBox:    ui.NewErrBox(),
		state:     stateDefault,
		copyText:  clipboard.WriteAll,
		now:       time.Now,
	}
	h.carousel = carousel.New(h.carouselConfig(), nil)
	return h
}

// carouselConfig builds the carousel props from the configuration, the
// open deck and the space available.
func (m *home) carouselConfig() carousel.Config {
	cc := m.appConfig.CarouselConfig()
	// A deck's own breakpoints win while responsive mode is on.
	if m.deck != nil && len(m.deck.Breakpoints) > 0 && len(cc.Breakpoints) > 0 {
		cc.Breakpoints = append([]layout.Breakpoint(nil), m.deck.Breakpoints...)
	}
	if m.degradation.HideArrows {
		cc.ShowArrows = false
	}
	if m.degradation.HidePagination {
		cc.Pagination = false
	}
	cc.Callbacks = carousel.Callbacks{
		OnNextEnd: m.onMoved,
		OnPrevEnd: m.onMoved,
		OnResize: func(bp layout.Breakpoint) {
			log.LayoutTrace("deck shows %d, scrolls %d", bp.ItemsToShow, bp.ItemsToScroll)
		},
	}
	return cc
}

func (m *home) onMoved(carousel.ItemInfo) {
	m.positionDirty = true
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) tea.Cmd {
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height)
	prev := m.degradation
	m.degradation = layout.ComputeDegradation(m.constraints)

	m.status.SetWidth(msg.Width)
	m.errBox.SetSize(msg.Width, m.constraints.ErrBoxHeight)
	m.menu.SetSingleLine(m.degradation.SingleLineMenu)
	m.menu.SetSize(msg.Width, m.constraints.MenuHeight)
	m.sizeOverlays()

	var cmds []tea.Cmd
	if prev != m.degradation {
		cmds = append(cmds, m.carousel.SetConfig(m.carouselConfig()))
	}
	cmds = append(cmds, m.layoutCarousel())
	return tea.Batch(cmds...)
}

// carouselTop is the blank space above the carousel.
func (m *home) carouselTop() int {
	if m.constraints.CarouselHeight > 12 {
		return 1
	}
	return 0
}

func (m *home) carouselLeft() int {
	return (m.constraints.TerminalWidth - m.constraints.CarouselWidth) / 2
}

func (m *home) layoutCarousel() tea.Cmd {
	c := m.constraints
	m.carousel.SetOrigin(m.carouselLeft(), c.StatusHeight+m.carouselTop())
	return m.carousel.SetSize(c.CarouselWidth, c.CarouselHeight-m.carouselTop())
}

func (m *home) sizeOverlays() {
	w, h := m.constraints.TerminalWidth, m.constraints.TerminalHeight
	if m.helpOverlay != nil {
		ow, _ := layout.ComputeOverlaySize(w, h, 72, 24)
		m.helpOverlay.SetWidth(ow)
	}
	if m.settingsOverlay != nil {
		ow, _ := layout.ComputeOverlaySize(w, h, 60, 24)
		m.settingsOverlay.SetWidth(ow)
	}
	if m.jumpOverlay != nil {
		ow, oh := layout.ComputeOverlaySize(w, h, 64, 20)
		m.jumpOverlay.SetSize(ow, oh-9)
	}
	if m.browserOverlay != nil {
		ow, oh := layout.ComputeOverlaySize(w, h, 72, 24)
		m.browserOverlay.SetSize(ow, oh)
	}
	if m.loadingOverlay != nil {
		ow, _ := layout.ComputeOverlaySize(w, h, 50, 8)
		m.loadingOverlay.SetWidth(ow)
	}
}

func (m *home) Init() tea.Cmd {
	// The spinner keeps ticking for the life of the program; it drives the
	// autoplay indicator and the loading overlay.
	cmds := []tea.Cmd{m.spinner.Tick, m.carousel.Init()}
	if m.deckPath != "" {
		cmds = append(cmds, m.openDeck(m.deckPath))
	} else {
		cmds = append(cmds, m.showBrowser())
	}
	if inspectEnabled() {
		cmds = append(cmds, tickInspectCmd)
	}
	return tea.Batch(cmds...)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		if msg.seq == m.errSeq {
			m.errBox.Clear()
		}
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case saveDebounceMsg:
		m.pendingSave = false
		m.savePosition()
		return m, nil
	case deckLoadedMsg:
		return m, m.handleDeckLoaded(msg)
	case deck.ChangedMsg:
		if m.watcher == nil || msg.Path != m.watcher.Path() {
			return m, nil
		}
		cmds := []tea.Cmd{m.watcher.Wait()}
		// An explicit open in flight wins over a reload of the old deck.
		if m.deck != nil && m.state != stateLoading {
			log.InfoLog.Printf("deck %s changed on disk, reloading", msg.Path)
			cmds = append(cmds, m.reloadDeck())
		}
		return m, tea.Batch(cmds...)
	case deck.WatchErrMsg:
		if m.watcher == nil {
			return m, nil
		}
		return m, tea.Batch(m.handleError(fmt.Errorf("failed to watch deck: %w", msg.Err)), m.watcher.Wait())
	case tickInspectMsg:
		m.writeSnapshot()
		return m, tickInspectCmd
	case carousel.FrameMsg, carousel.TiltEndMsg, carousel.AutoPlayMsg:
		return m, m.updateCarousel(msg)
	case tea.MouseMsg:
		if m.state != stateDefault {
			return m, nil
		}
		return m, m.updateCarousel(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m, m.updateHandleWindowSizeEvent(msg)
	case error:
		return m, m.handleError(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateCarousel forwards msg to the carousel and queues a position save
// when the carousel finished a move.
func (m *home) updateCarousel(msg tea.Msg) tea.Cmd {
	_, cmd := m.carousel.Update(msg)
	if m.positionDirty {
		m.positionDirty = false
		return tea.Batch(cmd, m.requestSave())
	}
	return cmd
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.savePosition()
	m.stopWatching()
	m.carousel.Teardown()
	log.GetProfiler().LogStats()
	return m, tea.Quit
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Get the menu highlight command - this is batched with the action command later
	highlightCmd := m.handleMenuHighlighting(msg)

	switch m.state {
	case stateHelp:
		if m.helpOverlay.HandleKeyPress(msg) {
			m.helpOverlay = nil
			m.closeOverlay()
		}
		return m, nil
	case stateSettings:
		return m, m.handleSettingsKey(msg)
	case stateJump:
		return m, m.handleJumpKey(msg)
	case stateBrowse:
		return m, m.handleBrowseKey(msg)
	case stateLoading:
		if msg.String() == "ctrl+c" {
			return m.handleQuit()
		}
		return m, nil
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyLeft, keys.KeyRight, keys.KeyFirst, keys.KeyLast:
		return m, tea.Batch(highlightCmd, m.updateCarousel(msg))
	case keys.KeyHelp:
		m.showHelp("")
		return m, nil
	case keys.KeyOpen:
		return m, tea.Batch(highlightCmd, m.showBrowser())
	case keys.KeyReload:
		switch {
		case m.deck != nil:
			return m, tea.Batch(highlightCmd, m.reloadDeck())
		case m.deckPath != "":
			return m, tea.Batch(highlightCmd, m.openDeck(m.deckPath))
		}
		return m, nil
	case keys.KeyAutoPlay:
		return m, tea.Batch(highlightCmd, m.adjustConfig(func(c *config.Config) {
			c.EnableAutoPlay = !c.EnableAutoPlay
		}))
	case keys.KeyRTL:
		return m, tea.Batch(highlightCmd, m.adjustConfig(func(c *config.Config) {
			c.RTL = !c.RTL
		}))
	case keys.KeyTilt:
		cmd := m.adjustConfig(func(c *config.Config) {
			c.EnableTilt = !c.EnableTilt
		})
		return m, tea.Batch(highlightCmd, cmd, m.showInfo("tilt "+onOff(m.appConfig.EnableTilt)))
	case keys.KeyMoreItems, keys.KeyFewerItems:
		delta := 1
		if name == keys.KeyFewerItems {
			delta = -1
		}
		return m, tea.Batch(highlightCmd, m.changeItemsToShow(delta))
	case keys.KeyJump:
		return m, tea.Batch(highlightCmd, m.showJump())
	case keys.KeySettings:
		m.showSettings()
		return m, highlightCmd
	case keys.KeyCopy:
		return m, tea.Batch(highlightCmd, m.copyCurrentCard())
	default:
		return m, nil
	}
}

// adjustConfig changes the configuration for this session.
func (m *home) adjustConfig(fn func(c *config.Config)) tea.Cmd {
	fn(m.appConfig)
	return m.carousel.SetConfig(m.carouselConfig())
}

// changeItemsToShow switches off responsive mode and shows delta more or
// fewer cards than are visible now.
func (m *home) changeItemsToShow(delta int) tea.Cmd {
	visible := m.carousel.Controller().VisibleItems()
	next := max(1, min(maxItemsToShow, visible+delta))
	if next == visible && len(m.appConfig.Breakpoints) == 0 {
		return nil
	}
	cmd := m.adjustConfig(func(c *config.Config) {
		c.Breakpoints = nil
		c.ItemsToShow = next
		c.ItemsToScroll = min(max(c.ItemsToScroll, 1), next)
	})
	return tea.Batch(cmd, m.showInfo(fmt.Sprintf("cards shown: %d", next)))
}

// applyConfig replaces the configuration with cfg, e.g. from the
// settings overlay.
func (m *home) applyConfig(cfg *config.Config) tea.Cmd {
	c := *cfg
	watchChanged := c.WatchDeck != m.appConfig.WatchDeck
	m.appConfig = &c

	cmds := []tea.Cmd{m.carousel.SetConfig(m.carouselConfig())}
	if watchChanged && m.deck != nil {
		cmds = append(cmds, m.watch(m.deck.Path))
	}
	return tea.Batch(cmds...)
}

func (m *home) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	shouldClose := m.settingsOverlay.HandleKeyPress(msg)

	var cmds []tea.Cmd
	// Settings apply live so the carousel behind the overlay follows.
	if m.settingsOverlay.Changed && !shouldClose {
		cmds = append(cmds, m.applyConfig(m.settingsOverlay.Config()))
	}
	if shouldClose {
		if m.settingsOverlay.Changed {
			if err := config.SaveConfig(m.appConfig); err != nil {
				cmds = append(cmds, m.handleError(err))
			}
		}
		m.settingsOverlay = nil
		m.closeOverlay()
	}
	return tea.Batch(cmds...)
}

func (m *home) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	if !m.jumpOverlay.HandleKeyPress(msg) {
		return nil
	}
	idx := m.jumpOverlay.Selected()
	m.jumpOverlay = nil
	m.closeOverlay()
	if idx < 0 {
		return nil
	}
	log.InfoLog.Printf("jump to card %d", idx+1)
	return m.carousel.GoTo(idx)
}

func (m *home) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	if !m.browserOverlay.HandleKeyPress(msg) {
		return nil
	}
	fb := m.browserOverlay
	m.browserOverlay = nil
	m.closeOverlay()
	if !fb.Submitted {
		return nil
	}
	return m.openDeck(fb.SelectedPath)
}

func (m *home) openOverlay(s state) {
	m.state = s
	m.menu.SetState(ui.StateOverlay)
	m.sizeOverlays()
}

func (m *home) closeOverlay() {
	m.state = stateDefault
	m.updateMenuState()
}

func (m *home) updateMenuState() {
	switch {
	case m.state != stateDefault:
		m.menu.SetState(ui.StateOverlay)
	case m.deck == nil || len(m.deck.Cards) == 0:
		m.menu.SetState(ui.StateEmpty)
	default:
		m.menu.SetState(ui.StateDefault)
	}
}

func (m *home) showHelp(intro string) {
	title := "elastic-carousel"
	if m.deck != nil {
		title = m.deck.Title
	}
	m.helpOverlay = overlay.NewHelpOverlay(title, intro)
	m.openOverlay(stateHelp)
}

// showFirstStartHelp shows the help screen once, the first time a deck
// is opened.
func (m *home) showFirstStartHelp() tea.Cmd {
	if m.appState.HelpScreenSeen {
		return nil
	}
	m.showHelp("Cards slide left and right. Use the arrows, the mouse or the " +
		"keys below. The layout adapts to the width of your terminal.")
	if err := m.appState.MarkHelpSeen(); err != nil {
		log.WarningLog.Printf("failed to save state: %v", err)
	}
	return nil
}

func (m *home) showSettings() {
	m.settingsOverlay = overlay.NewSettingsOverlay(m.appConfig)
	m.openOverlay(stateSettings)
}

func (m *home) showJump() tea.Cmd {
	if m.deck == nil || len(m.deck.Cards) == 0 {
		return nil
	}
	search := m.deck.Search()
	targets := make([]overlay.JumpTarget, len(m.deck.Cards))
	for i, c := range m.deck.Cards {
		targets[i] = overlay.JumpTarget{Title: c.Title, Search: search[i]}
	}
	m.jumpOverlay = overlay.NewJumpOverlay(targets)
	m.openOverlay(stateJump)
	return nil
}

func (m *home) showBrowser() tea.Cmd {
	start := "."
	switch {
	case m.deck != nil:
		start = filepath.Dir(m.deck.Path)
	case m.deckPath != "":
		start = filepath.Dir(m.deckPath)
	}

	fb, err := overlay.NewFileBrowserOverlay(start)
	if err != nil {
		log.WarningLog.Printf("deck browser: %v", err)
		if fb, err = overlay.NewFileBrowserOverlay("~"); err != nil {
			return m.handleError(err)
		}
	}
	m.browserOverlay = fb
	m.openOverlay(stateBrowse)
	return nil
}

// currentCard is the first visible card.
func (m *home) currentCard() (deck.Card, int, bool) {
	if m.deck == nil || len(m.deck.Cards) == 0 {
		return deck.Card{}, 0, false
	}
	idx := m.carousel.FirstItem()
	if idx < 0 || idx >= len(m.deck.Cards) {
		return deck.Card{}, 0, false
	}
	return m.deck.Cards[idx], idx, true
}

func (m *home) copyCurrentCard() tea.Cmd {
	card, idx, ok := m.currentCard()
	if !ok {
		return nil
	}
	text := card.Body
	if card.Title != "" && !card.Markdown {
		text = card.Title + "\n\n" + card.Body
	}
	if err := m.copyText(text); err != nil {
		return m.handleError(fmt.Errorf("failed to copy card: %w", err))
	}
	return m.showInfo(fmt.Sprintf("copied card %d to the clipboard", idx+1))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen
// unless a newer message replaced it.
type hideErrMsg struct {
	seq int
}

// saveDebounceMsg is sent after a debounce delay to trigger a save
type saveDebounceMsg struct{}

// saveDebounceDelay is how long to wait before saving after the carousel moved
const saveDebounceDelay = 500 * time.Millisecond

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter(3 * time.Second)
}

// showInfo shows a short confirmation in the error box.
func (m *home) showInfo(msg string) tea.Cmd {
	m.errBox.SetInfo(msg)
	return m.hideErrAfter(3 * time.Second)
}

func (m *home) hideErrAfter(d time.Duration) tea.Cmd {
	m.errSeq++
	seq := m.errSeq
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(d):
		}

		return hideErrMsg{seq: seq}
	}
}

// requestSave schedules a debounced save operation.
// If a save is already pending, this does nothing (the pending save will include all changes).
func (m *home) requestSave() tea.Cmd {
	if m.pendingSave || !m.appConfig.RememberPosition {
		return nil
	}
	m.pendingSave = true
	return func() tea.Msg {
		time.Sleep(saveDebounceDelay)
		return saveDebounceMsg{}
	}
}

func (m *home) View() string {
	start := time.Now()
	defer func() {
		log.GetProfiler().RecordFrame(time.Since(start))
	}()
	defer log.GetProfiler().StartRender("app")()

	c := m.constraints
	if c.TerminalWidth == 0 {
		return ""
	}
	if m.degradation.ShowMinWarning {
		return m.minSizeView()
	}

	var parts []string
	if c.StatusHeight > 0 {
		parts = append(parts, m.status.Render(m.statusInfo()))
	}
	parts = append(parts, m.carouselView(), m.menu.String(), m.errBox.String())
	mainView := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if fg := m.overlayView(); fg != "" {
		return overlay.PlaceOverlay(0, 0, fg, mainView, true, true)
	}
	return mainView
}

func (m *home) overlayView() string {
	switch {
	case m.state == stateHelp && m.helpOverlay != nil:
		return m.helpOverlay.Render()
	case m.state == stateSettings && m.settingsOverlay != nil:
		return m.settingsOverlay.Render()
	case m.state == stateJump && m.jumpOverlay != nil:
		return m.jumpOverlay.Render()
	case m.state == stateBrowse && m.browserOverlay != nil:
		return m.browserOverlay.Render()
	case m.state == stateLoading && m.loadingOverlay != nil:
		return m.loadingOverlay.Render()
	case m.state != stateDefault:
		log.ErrorLog.Printf("%s overlay is nil", m.state)
	}
	return ""
}

func (m *home) statusInfo() ui.StatusInfo {
	info := ui.StatusInfo{
		Title:    "elastic-carousel",
		AutoPlay: m.carousel.AutoPlaying(),
		Spinner:  m.spinner.View(),
		RTL:      m.appConfig.RTL,
		Reloaded: m.reloadedAt,
	}
	if m.deck != nil {
		info.Title = m.deck.Title
		info.Cards = len(m.deck.Cards)
		info.FirstItem = m.carousel.FirstItem()
		info.Visible = m.carousel.Controller().VisibleItems()
		info.Page = m.carousel.ActivePage()
		info.Pages = m.carousel.PageCount()
	}
	return info
}

func (m *home) carouselView() string {
	c := m.constraints
	if m.deck == nil || len(m.deck.Cards) == 0 {
		return lipgloss.Place(c.TerminalWidth, c.CarouselHeight, lipgloss.Center, lipgloss.Center, m.emptyView())
	}

	block := lipgloss.NewStyle().
		PaddingTop(m.carouselTop()).
		PaddingLeft(m.carouselLeft()).
		Render(m.carousel.View())
	return lipgloss.Place(c.TerminalWidth, c.CarouselHeight, lipgloss.Left, lipgloss.Top, block)
}

func (m *home) emptyView() string {
	switch {
	case m.state == stateLoading:
		return ""
	case m.deck != nil:
		return ui.TextStyles.Secondary.Render(fmt.Sprintf("%s has no cards yet", m.deck.Title)) + "\n" +
			ui.TextStyles.Muted.Render("add some and they will show up here")
	default:
		return ui.Gradient("elastic-carousel", ui.TitleFrom, ui.TitleTo) + "\n\n" +
			ui.TextStyles.Muted.Render("no deck open, press o to open one")
	}
}

func (m *home) minSizeView() string {
	c := m.constraints
	msg := ui.TextStyles.Error.Render("terminal too small") + "\n" +
		ui.TextStyles.Muted.Render(fmt.Sprintf("need %dx%d, have %dx%d",
			layout.MinWidth, layout.MinHeight, c.TerminalWidth, c.TerminalHeight))
	return lipgloss.Place(c.TerminalWidth, c.TerminalHeight, lipgloss.Center, lipgloss.Center, msg)
}
