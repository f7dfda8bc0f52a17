package overlay

import (
	"fmt"
	"strings"

	"elastic-carousel/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// JumpTarget is a card the jump overlay can select.
type JumpTarget struct {
	Title string
	// Search is the text matched against the query.
	Search string
}

// JumpOverlay fuzzy searches the cards of the open deck.
type JumpOverlay struct {
	Submitted bool
	Canceled  bool

	input   textinput.Model
	targets []JumpTarget
	search  []string
	// matches are indexes into targets, best first.
	matches []int
	cursor  int
	width   int
	rows    int
}

// NewJumpOverlay creates a jump overlay over targets.
func NewJumpOverlay(targets []JumpTarget) *JumpOverlay {
	ti := textinput.New()
	ti.Placeholder = "Jump to card..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Focus()

	search := make([]string, len(targets))
	for i, t := range targets {
		search[i] = t.Search
	}

	j := &JumpOverlay{
		input:   ti,
		targets: targets,
		search:  search,
		width:   60,
		rows:    8,
	}
	j.filter()
	return j
}

func (j *JumpOverlay) filter() {
	query := strings.TrimSpace(j.input.Value())
	j.matches = j.matches[:0]
	if query == "" {
		for i := range j.targets {
			j.matches = append(j.matches, i)
		}
	} else {
		for _, m := range fuzzy.Find(query, j.search) {
			j.matches = append(j.matches, m.Index)
		}
	}
	j.cursor = max(0, min(j.cursor, len(j.matches)-1))
}

// HandleKeyPress processes a key press and reports whether the overlay
// should close.
func (j *JumpOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		j.Canceled = true
		return true
	case tea.KeyEnter:
		if len(j.matches) == 0 {
			return false
		}
		j.Submitted = true
		return true
	case tea.KeyUp, tea.KeyCtrlP:
		if j.cursor > 0 {
			j.cursor--
		}
		return false
	case tea.KeyDown, tea.KeyCtrlN:
		if j.cursor < len(j.matches)-1 {
			j.cursor++
		}
		return false
	}

	j.input, _ = j.input.Update(msg)
	j.filter()
	return false
}

// Selected returns the index of the chosen target, or -1.
func (j *JumpOverlay) Selected() int {
	if !j.Submitted || len(j.matches) == 0 {
		return -1
	}
	return j.matches[j.cursor]
}

// Query returns the current search text.
func (j *JumpOverlay) Query() string {
	return j.input.Value()
}

// SetSize sets the overlay width and the number of result rows shown.
func (j *JumpOverlay) SetSize(width, rows int) {
	j.width = width
	j.rows = max(1, rows)
	j.input.Width = width - 10
}

func (j *JumpOverlay) Render() string {
	inner := j.width - 6
	selected := ui.SelectedStyle().Width(inner)

	var b strings.Builder
	b.WriteString(j.input.View())
	b.WriteString("\n\n")

	if len(j.matches) == 0 {
		b.WriteString(ui.TextStyles.Muted.Render("no matching cards"))
		b.WriteString("\n")
	}

	start := 0
	if j.cursor >= j.rows {
		start = j.cursor - j.rows + 1
	}
	end := min(len(j.matches), start+j.rows)
	for i := start; i < end; i++ {
		idx := j.matches[i]
		title := j.targets[idx].Title
		if title == "" {
			title = "untitled"
		}
		label := fmt.Sprintf("%3d  %s", idx+1, title)
		label = ui.TruncateTitle(label, inner)
		if i == j.cursor {
			b.WriteString(selected.Render(label))
		} else {
			b.WriteString(ui.TextStyles.Primary.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.TextStyles.Muted.Render(fmt.Sprintf("%d/%d  [↑/↓] Move  [Enter] Jump  [Esc] Cancel", len(j.matches), len(j.targets))))

	return ui.OverlayStyle().Width(j.width).Render(b.String())
}
