package layout

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Component dimensions (computed)
	StatusWidth    int
	StatusHeight   int
	CarouselWidth  int
	CarouselHeight int
	MenuWidth      int
	MenuHeight     int
	ErrBoxWidth    int
	ErrBoxHeight   int

	// ShowMinWarning is set when the terminal is below the supported size.
	ShowMinWarning bool
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
	}
	c.ShowMinWarning = width < MinWidth || height < MinHeight

	c.ErrBoxHeight = ErrBoxHeight
	c.ErrBoxWidth = width
	c.MenuHeight = computeMenuHeight(c.Mode)
	c.MenuWidth = width

	if height >= StatusHideHeight {
		c.StatusHeight = StatusBarHeight
		c.StatusWidth = width
	}

	c.CarouselWidth = width - 2*carouselMargin(c.Mode)
	c.CarouselHeight = height - c.StatusHeight - c.MenuHeight - c.ErrBoxHeight

	c.CarouselWidth = max(c.CarouselWidth, 1)
	c.CarouselHeight = max(c.CarouselHeight, 1)
	return c
}

// carouselMargin is the horizontal gap between the terminal edge and the carousel.
func carouselMargin(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return 4
	case LayoutStandard:
		return 2
	default:
		return 0
	}
}

// computeMenuHeight calculates the menu height based on mode.
func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return MenuMaxHeight
	case LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// ComputeOverlaySize calculates constrained overlay dimensions.
func ComputeOverlaySize(termWidth, termHeight int, preferredWidth, preferredHeight int) (int, int) {
	maxW := termWidth - OverlayMargin*2
	maxH := termHeight - OverlayMargin*2

	w := clamp(preferredWidth, OverlayMinWidth, min(maxW, OverlayMaxWidth))
	h := clamp(preferredHeight, OverlayMinHeight, min(maxH, OverlayMaxHeight))

	return w, h
}

// clamp bounds value to [minVal, maxVal]; minVal wins when the range is empty.
func clamp(value, minVal, maxVal int) int {
	if value > maxVal {
		value = maxVal
	}
	if value < minVal {
		value = minVal
	}
	return value
}
