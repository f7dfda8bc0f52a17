package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"elastic-carousel/ui/carousel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), configDirName)
	configDirOverride = dir
	t.Cleanup(func() { configDirOverride = "" })
	return dir
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := useTempConfigDir(t)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, filepath.Join(dir, ConfigFileName))
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := useTempConfigDir(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"rtl": true, "transition_ms": 200}`), 0644))

	cfg := LoadConfig()
	assert.True(t, cfg.RTL)
	assert.Equal(t, 200, cfg.TransitionMs)
	assert.Equal(t, DefaultBreakpoints(), cfg.Breakpoints, "missing fields keep defaults")
	assert.True(t, cfg.Pagination)
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	dir := useTempConfigDir(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	backups, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.EnableAutoPlay = true
	cfg.AutoPlaySpeedMs = 750
	require.NoError(t, SaveConfig(cfg))

	assert.Equal(t, cfg, LoadConfig())
}

func TestCarouselConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RTL = true
	cfg.TransitionMs = 300
	cfg.AutoPlaySpeedMs = 1500
	cfg.ItemPosition = "end"
	cfg.Easing = ""

	cc := cfg.CarouselConfig()
	assert.True(t, cc.IsRTL)
	assert.Equal(t, 300*time.Millisecond, cc.Transition)
	assert.Equal(t, 1500*time.Millisecond, cc.AutoPlaySpeed)
	assert.Equal(t, carousel.PositionEnd, cc.ItemPosition)
	assert.Equal(t, carousel.DefaultEasing, cc.Easing, "empty easing keeps the default")
	assert.Equal(t, cfg.Breakpoints, cc.Breakpoints)
	assert.Equal(t, "deck", cc.ClassName)

	cfg.Breakpoints[0].ItemsToShow = 9
	assert.Equal(t, 1, cc.Breakpoints[0].ItemsToShow, "breakpoints are copied")

	cfg.ItemPosition = "sideways"
	assert.Equal(t, carousel.PositionCenter, cfg.CarouselConfig().ItemPosition)
}

func TestStatePositions(t *testing.T) {
	useTempConfigDir(t)

	s := LoadState()
	_, ok := s.Position("talk.yaml")
	assert.False(t, ok)

	require.NoError(t, s.SetPosition("talk.yaml", 4))
	got, ok := LoadState().Position("talk.yaml")
	assert.True(t, ok)
	assert.Equal(t, 4, got)

	abs, err := filepath.Abs("talk.yaml")
	require.NoError(t, err)
	got, ok = LoadState().Position(abs)
	assert.True(t, ok, "paths are normalized")
	assert.Equal(t, 4, got)
}

func TestStatePrune(t *testing.T) {
	s := DefaultState()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < maxRecentDecks+2; i++ {
		s.Decks[filepath.Join("/decks", string(rune('a'+i)))] = DeckPosition{LastOpened: base.Add(time.Duration(i) * time.Hour)}
	}

	s.prune()
	assert.Len(t, s.Decks, maxRecentDecks)
	_, ok := s.Decks["/decks/a"]
	assert.False(t, ok, "oldest deck is dropped")
	_, ok = s.Decks[filepath.Join("/decks", string(rune('a'+maxRecentDecks+1)))]
	assert.True(t, ok)
}

func TestStateRefreshFromDisk(t *testing.T) {
	useTempConfigDir(t)

	a := LoadState()
	require.NoError(t, a.SetPosition("/deck.md", 1))

	b := LoadState()
	refreshed, err := b.RefreshFromDisk()
	require.NoError(t, err)
	assert.False(t, refreshed, "nothing changed since b was read")

	require.NoError(t, a.MarkHelpSeen())
	// Some filesystems have coarse mtimes; force the file to look newer.
	path, err := statePath()
	require.NoError(t, err)
	future := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	refreshed, err = b.RefreshFromDisk()
	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.True(t, b.HelpScreenSeen)
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, StateFileName)

	l := NewFileLock(path)
	require.NoError(t, l.RLock())
	assert.Error(t, l.RLock(), "lock already held")

	other := NewFileLock(path)
	require.NoError(t, other.RLock(), "shared locks coexist")
	require.NoError(t, other.Unlock())

	require.NoError(t, l.Unlock())
	assert.NoError(t, l.Unlock())

	require.NoError(t, l.Lock())
	require.NoError(t, l.Unlock())
	assert.FileExists(t, filepath.Join(dir, lockFileName))
}

func TestReset(t *testing.T) {
	dir := useTempConfigDir(t)
	LoadConfig()
	require.NoError(t, LoadState().SetPosition("/a.md", 2))

	require.NoError(t, Reset())
	assert.NoFileExists(t, filepath.Join(dir, ConfigFileName))
	assert.NoFileExists(t, filepath.Join(dir, StateFileName))
	assert.NoError(t, Reset(), "resetting twice is fine")
}
