package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"elastic-carousel/deck"
	"elastic-carousel/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// FileBrowserOverlay lets the user pick a deck file. Directories are
// entered in place; only deck files can be selected.
type FileBrowserOverlay struct {
	Submitted    bool
	Canceled     bool
	SelectedPath string

	dir           string
	entries       []deck.Entry
	selectedIdx   int
	scrollOffset  int
	width, height int

	message     string
	messageTime time.Time
	now         func() time.Time
}

// NewFileBrowserOverlay creates a browser starting at startPath. A leading
// "~" is expanded to the home directory.
func NewFileBrowserOverlay(startPath string) (*FileBrowserOverlay, error) {
	fb := &FileBrowserOverlay{width: 60, height: 20, now: time.Now}
	if err := fb.NavigateToPath(startPath); err != nil {
		return nil, err
	}
	return fb, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// NavigateToPath shows the contents of path.
func (fb *FileBrowserOverlay) NavigateToPath(path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	entries, err := deck.List(absPath)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", absPath, err)
	}

	fb.dir = absPath
	fb.entries = entries
	fb.selectedIdx = 0
	fb.scrollOffset = 0
	return nil
}

// GoUp navigates to the parent directory and selects the one we left.
func (fb *FileBrowserOverlay) GoUp() error {
	parentPath := filepath.Dir(fb.dir)
	if parentPath == fb.dir {
		return nil
	}

	from := fb.dir
	if err := fb.NavigateToPath(parentPath); err != nil {
		return err
	}
	for i, e := range fb.entries {
		if e.Path == from {
			fb.selectedIdx = i
			fb.adjustScroll()
			break
		}
	}
	return nil
}

// Dir returns the directory being shown.
func (fb *FileBrowserOverlay) Dir() string {
	return fb.dir
}

func (fb *FileBrowserOverlay) SetSize(width, height int) {
	fb.width = width
	fb.height = height
	fb.adjustScroll()
}

func (fb *FileBrowserOverlay) setMessage(msg string) {
	fb.message = msg
	fb.messageTime = fb.now()
}

// getMessage returns the feedback message while it is younger than 2s.
func (fb *FileBrowserOverlay) getMessage() string {
	if fb.message != "" && fb.now().Sub(fb.messageTime) < 2*time.Second {
		return fb.message
	}
	fb.message = ""
	return ""
}

func (fb *FileBrowserOverlay) move(delta int) {
	if len(fb.entries) == 0 {
		return
	}
	fb.selectedIdx = max(0, min(len(fb.entries)-1, fb.selectedIdx+delta))
	fb.adjustScroll()
}

// HandleKeyPress processes a key press and reports whether the overlay
// should close.
func (fb *FileBrowserOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		fb.move(-1)
	case "down", "j":
		fb.move(1)
	case "pgup":
		fb.move(-fb.getVisibleRows())
	case "pgdown":
		fb.move(fb.getVisibleRows())
	case "g", "home":
		fb.selectedIdx = 0
		fb.scrollOffset = 0
	case "G", "end":
		fb.move(len(fb.entries))
	case "left", "h", "-", "u", "backspace":
		if err := fb.GoUp(); err != nil {
			fb.setMessage(err.Error())
		}
	case "~":
		if err := fb.NavigateToPath("~"); err != nil {
			fb.setMessage(err.Error())
		}
	case "right", "l", "enter":
		if len(fb.entries) == 0 {
			return false
		}
		entry := fb.entries[fb.selectedIdx]
		if entry.IsDir {
			if err := fb.NavigateToPath(entry.Path); err != nil {
				fb.setMessage(err.Error())
			}
			return false
		}
		if msg.String() != "enter" {
			fb.setMessage("Press Enter to open a deck")
			return false
		}
		fb.SelectedPath = entry.Path
		fb.Submitted = true
		return true
	case "esc", "q":
		fb.Canceled = true
		return true
	}
	return false
}

// adjustScroll keeps the selected entry visible.
func (fb *FileBrowserOverlay) adjustScroll() {
	visibleRows := fb.getVisibleRows()
	if fb.selectedIdx < fb.scrollOffset {
		fb.scrollOffset = fb.selectedIdx
	} else if fb.selectedIdx >= fb.scrollOffset+visibleRows {
		fb.scrollOffset = fb.selectedIdx - visibleRows + 1
	}
}

// getVisibleRows is the height left after the title, path, separators,
// border, padding, message and help lines.
func (fb *FileBrowserOverlay) getVisibleRows() int {
	return max(1, fb.height-12)
}

func (fb *FileBrowserOverlay) Render() string {
	pathStyle := ui.TextStyles.Muted
	deckStyle := lipgloss.NewStyle().Foreground(ui.StatusSuccess).Bold(true)
	dirStyle := ui.TextStyles.Secondary
	separatorStyle := lipgloss.NewStyle().Foreground(ui.Border)
	messageStyle := ui.TextStyles.Error.Italic(true)

	inner := fb.width - 6
	rule := separatorStyle.Render(strings.Repeat("─", max(0, inner)))

	var b strings.Builder
	b.WriteString(ui.Gradient("Open a deck", ui.TitleFrom, ui.TitleTo) + "\n")
	b.WriteString(pathStyle.Render(ui.TruncateTitle(fb.dir, inner)) + "\n")
	b.WriteString(rule + "\n")

	visibleRows := fb.getVisibleRows()
	endIdx := min(len(fb.entries), fb.scrollOffset+visibleRows)

	if len(fb.entries) == 0 {
		b.WriteString(ui.TextStyles.Muted.Render("no decks or folders here") + "\n")
	}

	now := fb.now()
	for i := fb.scrollOffset; i < endIdx; i++ {
		entry := fb.entries[i]

		var name, meta string
		if entry.IsDir {
			name = "▸ " + entry.Name + "/"
		} else {
			name = "  " + entry.Name
			meta = fmt.Sprintf("%s  %s", humanize.Bytes(uint64(entry.Size)), ui.FormatRelativeTime(entry.ModTime, now))
		}

		name = ui.TruncateTitle(name, max(1, inner-lipgloss.Width(meta)-2))
		gap := max(1, inner-lipgloss.Width(name)-lipgloss.Width(meta))
		line := name + strings.Repeat(" ", gap) + meta

		switch {
		case i == fb.selectedIdx:
			line = ui.SelectedStyle().Render(line)
		case entry.IsDir:
			line = dirStyle.Render(line)
		default:
			line = deckStyle.Render(name) + strings.Repeat(" ", gap) + ui.TextStyles.Muted.Render(meta)
		}
		b.WriteString(line + "\n")
	}

	if len(fb.entries) > visibleRows {
		b.WriteString(ui.TextStyles.Muted.Render(fmt.Sprintf("  (%d-%d of %d)", fb.scrollOffset+1, endIdx, len(fb.entries))) + "\n")
	} else {
		b.WriteString("\n")
	}

	if msg := fb.getMessage(); msg != "" {
		b.WriteString(messageStyle.Render(msg) + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString(ui.TextStyles.Muted.Render("[↑/↓] Move  [Enter] Open  [-] Parent  [~] Home  [Esc] Cancel"))

	return ui.OverlayStyle().Width(fb.width).Render(b.String())
}
