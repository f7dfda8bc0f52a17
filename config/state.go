package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"elastic-carousel/log"
)

const StateFileName = "state.json"

// maxRecentDecks bounds the number of decks whose position is remembered.
const maxRecentDecks = 50

// DeckPosition is the remembered view of one deck.
type DeckPosition struct {
	FirstItem  int       `json:"first_item"`
	LastOpened time.Time `json:"last_opened"`
}

// State represents the application state that persists between sessions
type State struct {
	// HelpScreenSeen is set once the help overlay was shown on first start.
	HelpScreenSeen bool `json:"help_screen_seen"`
	// Decks maps an absolute deck path to its last position.
	Decks map[string]DeckPosition `json:"decks"`

	// lastModTime tracks when we last read the state file (not serialized)
	lastModTime time.Time `json:"-"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{Decks: make(map[string]DeckPosition)}
}

func statePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, StateFileName), nil
}

// LoadState loads the state from disk. If it cannot be done, we return the default state.
// This function acquires a shared lock to allow concurrent reads.
func LoadState() *State {
	path, err := statePath()
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		return DefaultState()
	}

	state, err := readState(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to load state: %v", err)
		}
		return DefaultState()
	}
	return state
}

func readState(path string) (*State, error) {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return nil, err
	}

	lock := NewFileLock(path)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	state := DefaultState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.Decks == nil {
		state.Decks = make(map[string]DeckPosition)
	}
	state.lastModTime = info.ModTime()
	return state, nil
}

// SaveState saves the state to disk.
// This function acquires an exclusive lock to prevent concurrent writes.
func SaveState(state *State) error {
	path, err := statePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	state.prune()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil {
		state.lastModTime = info.ModTime()
	}
	return nil
}

// Position returns the remembered first item for a deck path.
func (s *State) Position(deckPath string) (int, bool) {
	p, ok := s.Decks[deckKey(deckPath)]
	return p.FirstItem, ok
}

// SetPosition records the first visible item of a deck and saves the state.
func (s *State) SetPosition(deckPath string, firstItem int) error {
	s.Decks[deckKey(deckPath)] = DeckPosition{FirstItem: firstItem, LastOpened: time.Now()}
	return SaveState(s)
}

// MarkHelpSeen records that the first start help was shown.
func (s *State) MarkHelpSeen() error {
	s.HelpScreenSeen = true
	return SaveState(s)
}

// prune drops the least recently opened decks beyond maxRecentDecks.
func (s *State) prune() {
	for len(s.Decks) > maxRecentDecks {
		var oldest string
		var oldestAt time.Time
		for k, p := range s.Decks {
			if oldest == "" || p.LastOpened.Before(oldestAt) {
				oldest, oldestAt = k, p.LastOpened
			}
		}
		delete(s.Decks, oldest)
	}
}

func deckKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// GetLastModTime returns the modification time when this state was last read from disk.
func (s *State) GetLastModTime() time.Time {
	return s.lastModTime
}

// RefreshFromDisk reloads the state if another process changed it since it
// was last read. It reports whether the state was refreshed.
func (s *State) RefreshFromDisk() (bool, error) {
	path, err := statePath()
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil || !info.ModTime().After(s.lastModTime) {
		return false, nil
	}

	fresh, err := readState(path)
	if err != nil {
		return false, err
	}
	s.HelpScreenSeen = fresh.HelpScreenSeen
	s.Decks = fresh.Decks
	s.lastModTime = fresh.lastModTime
	return true, nil
}
