package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"elastic-carousel/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"a.toml", FormatTOML},
		{"notes.md", FormatMarkdown},
		{"notes.markdown", FormatMarkdown},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatOf("deck.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "talk.yaml", `
title: Talk
breakpoints:
  - width: 1
    items_to_show: 1
  - width: 80
    items_to_show: 3
    items_to_scroll: 2
cards:
  - title: One
    body: first card
  - title: Two
    body: "# second"
    markdown: true
`)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Talk", d.Title)
	assert.Equal(t, FormatYAML, d.Format)
	assert.Equal(t, path, d.Path)
	assert.False(t, d.LoadedAt.IsZero())
	require.Len(t, d.Cards, 2)
	assert.Equal(t, Card{Title: "One", Body: "first card"}, d.Cards[0])
	assert.True(t, d.Cards[1].Markdown)
	assert.Equal(t, []layout.Breakpoint{
		{Width: 1, ItemsToShow: 1},
		{Width: 80, ItemsToShow: 3, ItemsToScroll: 2},
	}, d.Breakpoints)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "talk.toml", `
[[cards]]
title = "One"
body = "first"

[[cards]]
title = "Two"
body = "second"
`)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "talk", d.Title, "title falls back to the file name")
	assert.Equal(t, FormatTOML, d.Format)
	require.Len(t, d.Cards, 2)
	assert.Equal(t, "second", d.Cards[1].Body)
}

func TestLoadMarkdown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.md", "# Notes\n---\n## Intro\nhello\n\n---\n\n---\nno heading here\r\n")

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Notes", d.Title)
	require.Len(t, d.Cards, 2, "empty chunks are skipped")
	assert.Equal(t, "Intro", d.Cards[0].Title)
	assert.Equal(t, "## Intro\nhello", d.Cards[0].Body)
	assert.True(t, d.Cards[0].Markdown)
	assert.Equal(t, "", d.Cards[1].Title)
	assert.Equal(t, "no heading here", d.Cards[1].Body)
}

func TestLoadMarkdownSingleHeading(t *testing.T) {
	d, err := Parse([]byte("# Only"), FormatMarkdown)
	require.NoError(t, err)
	require.Len(t, d.Cards, 1, "a lone heading is a card, not a deck title")
	assert.Equal(t, "Only", d.Cards[0].Title)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "deck.txt", "x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, dir, "bad.yaml", "cards: [oops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse yaml deck")

	_, err = Load(writeFile(t, dir, "bad.toml", "cards = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse toml deck")
}

func TestLoadEmptyDeck(t *testing.T) {
	d, err := Load(writeFile(t, t.TempDir(), "empty.yaml", "title: Nothing\n"))
	assert.True(t, errors.Is(err, ErrEmptyDeck))
	require.NotNil(t, d, "empty decks are still returned")
	assert.Equal(t, "Nothing", d.Title)
	assert.Empty(t, d.Cards)
}

func TestSearch(t *testing.T) {
	d := &Deck{Cards: []Card{{Title: "a", Body: "b"}, {Title: "c"}}}
	assert.Equal(t, []string{"a b", "c "}, d.Search())
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "cards: []")
	writeFile(t, dir, "a.md", "# a")
	writeFile(t, dir, "readme.txt", "x")
	writeFile(t, dir, ".hidden.yaml", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries, err := List(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"sub", "a.md", "b.yaml"}, names)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, FormatMarkdown, entries[1].Format)
	assert.Equal(t, int64(3), entries[1].Size)

	_, err = List(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestCardItemRender(t *testing.T) {
	r := NewRenderer("notty")
	d := &Deck{Cards: []Card{
		{Title: "Plain card", Body: "some words that need wrapping inside the card"},
		{Body: "# Heading\n\nSome *text*", Markdown: true},
	}}
	items := Items(d, r)
	require.Len(t, items, 2)

	out := items[0].Render(20)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 20, lipgloss.Width(line), "line %q", line)
	}
	assert.Contains(t, out, "Plain card")
	assert.Contains(t, out, "1/2")
	assert.True(t, strings.HasPrefix(out, "╭"))

	md := items[1].Render(40)
	assert.Contains(t, md, "Heading")
	assert.Contains(t, md, "text")
	assert.Contains(t, md, "2/2")

	assert.Equal(t, "", items[0].Render(cardChrome), "no room for content")
}

func TestRendererCache(t *testing.T) {
	r := NewRenderer("notty")
	item := CardItem{Card: Card{Body: "x"}, Index: 0, Total: 1, renderer: r}

	first := item.Render(12)
	assert.Len(t, r.cache, 1)
	assert.Equal(t, first, item.Render(12))
	assert.Len(t, r.cache, 1)

	item.Render(14)
	assert.Len(t, r.cache, 2)

	r.Reset()
	assert.Empty(t, r.cache)
}

func TestDebouncerRunsLast(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	got := make(chan int, 3)

	for i := 1; i <= 3; i++ {
		i := i
		d.trigger(func() { got <- i })
	}

	select {
	case v := <-got:
		assert.Equal(t, 3, v)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced callback never ran")
	}
	select {
	case v := <-got:
		t.Fatalf("unexpected extra callback %d", v)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	ran := make(chan struct{}, 1)
	d.trigger(func() { ran <- struct{}{} })
	d.cancel()

	select {
	case <-ran:
		t.Fatal("cancelled callback ran")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deck.yaml", "cards: []")

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// Writes to other files in the directory are ignored.
	writeFile(t, dir, "other.yaml", "x")
	select {
	case <-w.Changes():
		t.Fatal("change reported for another file")
	case <-time.After(100 * time.Millisecond):
	}

	msgs := make(chan any, 1)
	go func() { msgs <- w.Wait()() }()
	require.NoError(t, os.WriteFile(path, []byte("cards: [{title: a}]"), 0644))

	select {
	case msg := <-msgs:
		changed, ok := msg.(ChangedMsg)
		require.True(t, ok, "got %T", msg)
		assert.Equal(t, w.Path(), changed.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherClose(t *testing.T) {
	path := writeFile(t, t.TempDir(), "deck.yaml", "cards: []")
	w, err := NewWatcher(path, 0)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Nil(t, w.Wait()())
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "deck.yaml"), 0)
	assert.Error(t, err)
}
