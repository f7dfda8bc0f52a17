package overlay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"elastic-carousel/config"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(j *JumpOverlay, s string) {
	for _, r := range s {
		j.HandleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPlaceOverlay(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := PlaceOverlay(2, 1, "ab\ncd", bg, false, false)
	assert.Equal(t, "..........\n..ab......\n..cd......", got)

	got = PlaceOverlay(0, 0, "XX", bg, false, true)
	assert.Equal(t, "..........\n....XX....\n..........", got)

	got = PlaceOverlay(20, 20, "XX", bg, false, false)
	assert.Equal(t, "..........\n..........\n........XX", got, "clamped inside the background")
}

func TestPlaceOverlayShadow(t *testing.T) {
	bg := "......\n......\n......"
	got := PlaceOverlay(1, 0, "ab\ncd", bg, true, false)
	lines := strings.Split(got, "\n")
	assert.Equal(t, ".ab...", lines[0])
	assert.Equal(t, ".cd"+shadowChar+"..", lines[1])
	assert.Equal(t, ".."+shadowChar+shadowChar+"..", lines[2])
}

func TestPlaceOverlayShortBackgroundLine(t *testing.T) {
	got := PlaceOverlay(3, 0, "X", "ab\n......", false, false)
	assert.Equal(t, "ab X\n......", got)
}

func TestHelpOverlay(t *testing.T) {
	h := NewHelpOverlay("deck", "Welcome")
	h.SetWidth(70)
	out := h.Render()
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "autoplay")
	assert.Contains(t, out, "press any key to close")
	assert.True(t, h.HandleKeyPress(key("x")))
}

func TestSettingsOverlay(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSettingsOverlay(cfg)

	// Responsive is first; turning it off clears the breakpoints.
	assert.False(t, s.HandleKeyPress(key("enter")))
	assert.Empty(t, s.Config().Breakpoints)
	assert.NotEmpty(t, cfg.Breakpoints, "the original config is untouched")
	assert.True(t, s.Changed)

	s.HandleKeyPress(key("down"))
	s.HandleKeyPress(key("right"))
	assert.Equal(t, cfg.ItemsToShow+1, s.Config().ItemsToShow)

	for i := 0; i < 20; i++ {
		s.HandleKeyPress(key("left"))
	}
	assert.Equal(t, 1, s.Config().ItemsToShow, "steppers are clamped")

	s.HandleKeyPress(key("up"))
	s.HandleKeyPress(key("up"))
	assert.Contains(t, s.Render(), "Reload the deck when the file changes", "cursor wraps to the last row")

	assert.True(t, s.HandleKeyPress(key("esc")))
	assert.True(t, s.Dismissed)
}

func TestSettingsCycle(t *testing.T) {
	cfg := config.DefaultConfig()
	st := cycle("Card alignment", "", positions, func(c *config.Config) *string { return &c.ItemPosition })

	st.change(cfg, 1)
	assert.Equal(t, "end", cfg.ItemPosition)
	st.change(cfg, 1)
	assert.Equal(t, "start", cfg.ItemPosition)
	st.change(cfg, -1)
	assert.Equal(t, "end", cfg.ItemPosition)
}

func TestSettingsUnchangedWhenClamped(t *testing.T) {
	s := NewSettingsOverlay(config.DefaultConfig())
	s.cursor = 1 // cards shown
	s.cfg.ItemsToShow = 1
	s.HandleKeyPress(key("left"))
	assert.False(t, s.Changed)
}

func TestJumpOverlay(t *testing.T) {
	j := NewJumpOverlay([]JumpTarget{
		{Title: "Intro", Search: "Intro hello"},
		{Title: "Architecture", Search: "Architecture boxes"},
		{Title: "Questions", Search: "Questions q&a"},
	})
	j.SetSize(60, 5)
	assert.Contains(t, j.Render(), "3/3")

	typeText(j, "arch")
	assert.Contains(t, j.Render(), "Architecture")
	assert.NotContains(t, j.Render(), "Questions")
	assert.Equal(t, "arch", j.Query())

	assert.Equal(t, -1, j.Selected(), "nothing selected before enter")
	assert.True(t, j.HandleKeyPress(key("enter")))
	assert.Equal(t, 1, j.Selected())
}

func TestJumpOverlayNoMatches(t *testing.T) {
	j := NewJumpOverlay([]JumpTarget{{Title: "a", Search: "a"}})
	typeText(j, "zzz")
	assert.Contains(t, j.Render(), "no matching cards")
	assert.False(t, j.HandleKeyPress(key("enter")))

	assert.True(t, j.HandleKeyPress(key("esc")))
	assert.True(t, j.Canceled)
	assert.Equal(t, -1, j.Selected())
}

func TestJumpOverlayCursor(t *testing.T) {
	j := NewJumpOverlay([]JumpTarget{{Title: "a"}, {Title: "b"}, {Title: ""}})
	j.HandleKeyPress(key("down"))
	j.HandleKeyPress(key("down"))
	j.HandleKeyPress(key("down"))
	assert.Contains(t, j.Render(), "untitled")
	j.HandleKeyPress(key("enter"))
	assert.Equal(t, 2, j.Selected())
}

func newBrowserDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "talks"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "talks", "inner.md"), []byte("# x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("cards: []"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	return dir
}

func TestFileBrowserOverlay(t *testing.T) {
	dir := newBrowserDir(t)
	fb, err := NewFileBrowserOverlay(dir)
	require.NoError(t, err)
	fb.SetSize(70, 24)

	out := fb.Render()
	assert.Contains(t, out, "talks/")
	assert.Contains(t, out, "a.yaml")
	assert.Contains(t, out, "9 B")
	assert.NotContains(t, out, "notes.txt")

	// Enter the directory, open the deck inside.
	assert.False(t, fb.HandleKeyPress(key("enter")))
	assert.Equal(t, filepath.Join(dir, "talks"), fb.Dir())
	assert.True(t, fb.HandleKeyPress(key("enter")))
	assert.True(t, fb.Submitted)
	assert.Equal(t, filepath.Join(dir, "talks", "inner.md"), fb.SelectedPath)
}

func TestFileBrowserGoUpSelectsPrevious(t *testing.T) {
	dir := newBrowserDir(t)
	fb, err := NewFileBrowserOverlay(filepath.Join(dir, "talks"))
	require.NoError(t, err)

	fb.HandleKeyPress(key("-"))
	assert.Equal(t, dir, fb.Dir())
	assert.Equal(t, filepath.Join(dir, "talks"), fb.entries[fb.selectedIdx].Path)
}

func TestFileBrowserRightOnDeckShowsHint(t *testing.T) {
	dir := newBrowserDir(t)
	fb, err := NewFileBrowserOverlay(dir)
	require.NoError(t, err)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fb.now = func() time.Time { return now }

	fb.HandleKeyPress(key("down"))
	assert.False(t, fb.HandleKeyPress(key("right")))
	assert.Contains(t, fb.Render(), "Press Enter to open a deck")

	now = now.Add(3 * time.Second)
	assert.NotContains(t, fb.Render(), "Press Enter to open a deck")

	assert.True(t, fb.HandleKeyPress(key("esc")))
	assert.True(t, fb.Canceled)
}

func TestFileBrowserMissingDir(t *testing.T) {
	_, err := NewFileBrowserOverlay(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadingOverlay(t *testing.T) {
	s := spinner.New()
	l := NewLoadingOverlay("Loading deck", &s)
	l.SetStatus("talk.yaml")
	out := l.Render()
	assert.Contains(t, out, "Loading deck")
	assert.Contains(t, out, "talk.yaml")
}
