package app

import (
	"errors"
	"path/filepath"

	"elastic-carousel/deck"
	"elastic-carousel/log"
	"elastic-carousel/ui/carousel"
	"elastic-carousel/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
)

// deckLoadedMsg carries the result of reading a deck off the UI goroutine.
type deckLoadedMsg struct {
	seq  int
	path string
	deck *deck.Deck
	err  error
	// open is set for a newly opened deck, as opposed to a reload.
	open bool
}

func loadDeckCmd(seq int, path string, open bool) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(path)
		return deckLoadedMsg{seq: seq, path: path, deck: d, err: err, open: open}
	}
}

// openDeck shows the loading overlay and reads path in the background.
func (m *home) openDeck(path string) tea.Cmd {
	m.loadSeq++
	m.deckPath = path
	m.loadingOverlay = overlay.NewLoadingOverlay("Opening deck", &m.spinner)
	m.loadingOverlay.SetStatus(filepath.Base(path))
	m.openOverlay(stateLoading)
	return loadDeckCmd(m.loadSeq, path, true)
}

// reloadDeck reads the open deck again, keeping the carousel position.
func (m *home) reloadDeck() tea.Cmd {
	if m.deck == nil {
		return nil
	}
	m.loadSeq++
	return loadDeckCmd(m.loadSeq, m.deck.Path, false)
}

func (m *home) handleDeckLoaded(msg deckLoadedMsg) tea.Cmd {
	if msg.seq != m.loadSeq {
		log.InfoLog.Printf("dropping stale load of %s", msg.path)
		return nil
	}
	if msg.open {
		m.loadingOverlay = nil
		m.closeOverlay()
	}

	if msg.deck == nil {
		// The previous deck, if any, stays open.
		return m.handleError(msg.err)
	}

	var cmds []tea.Cmd
	if msg.err != nil {
		if !errors.Is(msg.err, deck.ErrEmptyDeck) {
			log.WarningLog.Printf("deck loaded with error: %v", msg.err)
		}
		cmds = append(cmds, m.handleError(msg.err))
	}

	if msg.open {
		cmds = append(cmds, m.mountDeck(msg.deck))
	} else {
		cmds = append(cmds, m.refreshDeck(msg.deck))
	}
	m.updateMenuState()
	return tea.Batch(cmds...)
}

// mountDeck replaces the carousel with a new one for d, positioned where
// the user left d last time.
func (m *home) mountDeck(d *deck.Deck) tea.Cmd {
	m.savePosition()

	m.deck = d
	m.reloadedAt = nil
	m.renderer.Reset()

	cfg := m.carouselConfig()
	if m.appConfig.RememberPosition {
		if first, ok := m.appState.Position(d.Path); ok {
			cfg.InitialFirstItem = first
		}
	}

	m.carousel.Teardown()
	m.carousel = carousel.New(cfg, deck.Items(d, m.renderer))
	// Size before mounting so the first measurement already sees the real
	// width and the remembered position is not clamped away.
	sizeCmd := m.layoutCarousel()
	log.InfoLog.Printf("opened deck %s (%d cards) at card %d", d.Path, len(d.Cards), m.carousel.FirstItem()+1)

	return tea.Batch(
		sizeCmd,
		m.carousel.Init(),
		m.watch(d.Path),
		m.showFirstStartHelp(),
	)
}

// refreshDeck swaps the cards of the open deck after a reload.
func (m *home) refreshDeck(d *deck.Deck) tea.Cmd {
	m.deck = d
	now := m.now()
	m.reloadedAt = &now
	m.renderer.Reset()

	return tea.Batch(
		m.carousel.SetConfig(m.carouselConfig()),
		m.carousel.SetItems(deck.Items(d, m.renderer)),
	)
}

// watch replaces the deck watcher. It returns the first wait command, or
// nil when watching is off.
func (m *home) watch(path string) tea.Cmd {
	m.stopWatching()
	if !m.appConfig.WatchDeck {
		return nil
	}

	w, err := deck.NewWatcher(path, deck.DefaultDebounce)
	if err != nil {
		return m.handleError(err)
	}
	m.watcher = w
	return w.Wait()
}

func (m *home) stopWatching() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		log.WarningLog.Printf("failed to close deck watcher: %v", err)
	}
	m.watcher = nil
}

// savePosition remembers the first visible card of the open deck. Changes
// saved by another running viewer are merged in first.
func (m *home) savePosition() {
	if m.deck == nil || !m.appConfig.RememberPosition {
		return
	}
	if _, err := m.appState.RefreshFromDisk(); err != nil {
		log.WarningLog.Printf("failed to refresh state: %v", err)
	}
	if err := m.appState.SetPosition(m.deck.Path, m.carousel.FirstItem()); err != nil {
		log.WarningLog.Printf("failed to save deck position: %v", err)
	}
}
