package deck

import (
	"fmt"
	"strings"
	"sync"

	"elastic-carousel/log"
	"elastic-carousel/ui"
	"elastic-carousel/ui/carousel"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// cardChrome is the horizontal space taken by a card's border and padding.
const cardChrome = 4

var cardTitle = lipgloss.NewStyle().Bold(true)

type renderKey struct {
	card  int
	width int
}

// Renderer renders card bodies and caches the result per card and width.
// Glamour renderers are created lazily, one per wrap width.
type Renderer struct {
	style string

	mu       sync.Mutex
	cache    map[renderKey]string
	glamours map[int]*glamour.TermRenderer
}

// NewRenderer returns a renderer using the named glamour style, e.g.
// "dark" or "notty". "auto" or an empty name picks dark or light from the
// terminal background.
func NewRenderer(style string) *Renderer {
	return &Renderer{
		style:    resolveStyle(style),
		cache:    make(map[renderKey]string),
		glamours: make(map[int]*glamour.TermRenderer),
	}
}

func resolveStyle(name string) string {
	if name != "" && name != "auto" {
		return name
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Reset drops all cached renders, e.g. after the deck was reloaded.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.cache)
}

// body renders the body of a card for a wrap width. Callers hold r.mu.
func (r *Renderer) body(c Card, width int) string {
	if width <= 0 {
		return ""
	}
	if !c.Markdown {
		return wrap.String(wordwrap.String(c.Body, width), width)
	}

	tr, err := r.termRenderer(width)
	if err == nil {
		var out string
		if out, err = tr.Render(c.Body); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	log.WarningLog.Printf("markdown render failed, falling back to plain text: %v", err)
	return wrap.String(wordwrap.String(c.Body, width), width)
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.glamours[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.glamours[width] = tr
	return tr, nil
}

// CardItem is a deck card shown in the carousel.
type CardItem struct {
	Card  Card
	Index int
	Total int

	renderer *Renderer
}

// Items wraps the cards of d for the carousel.
func Items(d *Deck, r *Renderer) []carousel.Item {
	items := make([]carousel.Item, len(d.Cards))
	for i, c := range d.Cards {
		items[i] = CardItem{Card: c, Index: i, Total: len(d.Cards), renderer: r}
	}
	return items
}

// Render draws the card framed to exactly width cells.
func (c CardItem) Render(width int) string {
	inner := width - cardChrome
	if inner <= 0 {
		return ""
	}

	r := c.renderer
	r.mu.Lock()
	defer r.mu.Unlock()

	k := renderKey{card: c.Index, width: width}
	if out, ok := r.cache[k]; ok {
		return out
	}

	var parts []string
	if c.Card.Title != "" && !c.Card.Markdown {
		parts = append(parts, cardTitle.Render(ui.TruncateTitle(c.Card.Title, inner)), "")
	}
	parts = append(parts, r.body(c.Card, inner))
	footer := fmt.Sprintf("%d/%d", c.Index+1, c.Total)
	parts = append(parts, "", lipgloss.PlaceHorizontal(inner, lipgloss.Right, ui.TextStyles.Muted.Render(footer)))

	out := ui.CardStyle().Width(inner + 2).Render(strings.Join(parts, "\n"))
	r.cache[k] = out
	return out
}
