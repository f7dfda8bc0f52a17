package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette

// Status colors
var (
	// StatusSuccess marks a completed reload or copy.
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusRunning marks autoplay.
	StatusRunning = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// StatusWarning marks a deck that loaded with problems.
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusError marks errors/failures.
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for cards, overlays, etc.
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	// BackgroundSelected is for selected rows
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#3C3C4C"}
)

// Title gradient endpoints. Gradients need hex colors.
var (
	TitleFrom = lipgloss.Color("#7D56F4")
	TitleTo   = lipgloss.Color("#F25D94")
)

const (
	IconAutoPlay = "▶"
	IconPaused   = "⏸"
	IconRTL      = "⇠"
	IconError    = "×"
	IconSuccess  = "+"
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Running   lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Error:     lipgloss.NewStyle().Foreground(StatusError),
	Success:   lipgloss.NewStyle().Foreground(StatusSuccess),
	Running:   lipgloss.NewStyle().Foreground(StatusRunning),
}

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus).
		Padding(1, 2)
}

// CardStyle frames a single deck card.
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}

// SelectedStyle highlights the selected row of a list overlay.
func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(BackgroundSelected).
		Foreground(TextPrimary).
		Bold(true)
}
