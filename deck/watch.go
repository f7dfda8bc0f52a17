package deck

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"elastic-carousel/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 250 * time.Millisecond

// debouncer runs only the last of a burst of callbacks, once the burst has
// been quiet for the debounce duration.
type debouncer struct {
	duration time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newDebouncer(d time.Duration) *debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &debouncer{duration: d}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A timer that fired while being replaced must not run.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Watcher reports changes to a single deck file. It watches the parent
// directory so editors that replace the file on save are still seen.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher
	deb  *debouncer

	changes chan struct{}
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. Bursts of writes within debounce are
// reported as one change.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		deb:     newDebouncer(debounce),
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.deb.trigger(w.notify)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.WarningLog.Printf("deck watcher: %v", err)
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// Changes delivers one value per settled burst of changes. Changes that
// arrive while a previous one is unread are merged into it.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers watcher errors. Only the latest unread error is kept.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.deb.cancel()
		err = w.fsw.Close()
	})
	return err
}

// ChangedMsg is sent when the watched deck file changed on disk.
type ChangedMsg struct {
	Path string
}

// WatchErrMsg is sent when the watcher reported an error.
type WatchErrMsg struct {
	Err error
}

// Wait returns a command that blocks until the next change or error.
// The receiver re-issues it after handling the message. It returns nil
// once the watcher is closed.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.done:
			return nil
		case <-w.changes:
			return ChangedMsg{Path: w.path}
		case err := <-w.errs:
			return WatchErrMsg{Err: err}
		}
	}
}
