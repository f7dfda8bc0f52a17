package overlay

import (
	"elastic-carousel/ui"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// LoadingOverlay is shown while a deck is read and parsed.
type LoadingOverlay struct {
	title   string
	status  string
	spinner *spinner.Model

	width int
}

// NewLoadingOverlay creates a loading overlay that renders the shared
// spinner. The caller keeps ticking it.
func NewLoadingOverlay(title string, spinner *spinner.Model) *LoadingOverlay {
	return &LoadingOverlay{
		title:   title,
		spinner: spinner,
		width:   50,
	}
}

func (l *LoadingOverlay) SetStatus(status string) {
	l.status = status
}

func (l *LoadingOverlay) SetWidth(width int) {
	l.width = width
}

func (l *LoadingOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)

	content := titleStyle.Render(l.title) + "\n\n"
	if l.spinner != nil {
		content += l.spinner.View() + " "
	}
	content += ui.TextStyles.Secondary.Render(ui.TruncateTitle(l.status, l.width-8))

	return ui.OverlayStyle().Width(l.width).Render(content)
}
