// Package deck loads card decks from YAML, TOML and Markdown files and
// renders their cards for the carousel.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"elastic-carousel/ui/layout"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for files that are not decks.
	ErrUnsupportedFormat = errors.New("unsupported deck format")
	// ErrEmptyDeck is returned together with a deck that has no cards.
	ErrEmptyDeck = errors.New("deck has no cards")
)

// Format is the on-disk format of a deck.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatMarkdown Format = "markdown"
)

// Card is one slide of a deck.
type Card struct {
	Title string `yaml:"title" toml:"title"`
	Body  string `yaml:"body" toml:"body"`
	// Markdown renders Body with glamour instead of plain word wrapping.
	Markdown bool `yaml:"markdown" toml:"markdown"`
}

// Deck is a titled list of cards. A deck may carry its own breakpoints,
// which replace the configured ones while it is open.
type Deck struct {
	Title       string              `yaml:"title" toml:"title"`
	Breakpoints []layout.Breakpoint `yaml:"breakpoints,omitempty" toml:"breakpoints,omitempty"`
	Cards       []Card              `yaml:"cards" toml:"cards"`

	Path     string    `yaml:"-" toml:"-"`
	Format   Format    `yaml:"-" toml:"-"`
	LoadedAt time.Time `yaml:"-" toml:"-"`
}

// FormatOf returns the deck format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Load reads and parses the deck at path. A deck without cards is returned
// together with ErrEmptyDeck.
func Load(path string) (*Deck, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	d.LoadedAt = time.Now()
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if len(d.Cards) == 0 {
		return d, fmt.Errorf("%s: %w", path, ErrEmptyDeck)
	}
	return d, nil
}

// Parse decodes a deck from data.
func Parse(data []byte, format Format) (*Deck, error) {
	d := &Deck{Format: format}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("failed to parse yaml deck: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("failed to parse toml deck: %w", err)
		}
	case FormatMarkdown:
		parseMarkdown(data, d)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	d.Format = format
	return d, nil
}

// parseMarkdown splits a document into cards at lines consisting of
// "---". A leading chunk holding only a level one heading names the deck.
// Each card's first heading becomes its title.
func parseMarkdown(data []byte, d *Deck) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	var chunks [][]string
	var cur []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "---" {
			chunks = append(chunks, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	chunks = append(chunks, cur)

	for i, chunk := range chunks {
		body := strings.TrimSpace(strings.Join(chunk, "\n"))
		if body == "" {
			continue
		}
		if i == 0 && !strings.Contains(body, "\n") && strings.HasPrefix(body, "# ") && len(chunks) > 1 {
			d.Title = strings.TrimSpace(strings.TrimPrefix(body, "# "))
			continue
		}
		d.Cards = append(d.Cards, Card{Title: headingOf(body), Body: body, Markdown: true})
	}
}

func headingOf(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

// Search returns the strings the jump overlay matches against, one per card.
func (d *Deck) Search() []string {
	out := make([]string, len(d.Cards))
	for i, c := range d.Cards {
		out[i] = c.Title + " " + c.Body
	}
	return out
}
