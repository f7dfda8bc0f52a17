package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{name: "full mode - large terminal", width: 140, height: 36, want: LayoutFull},
		{name: "standard mode - at standard thresholds", width: 100, height: 24, want: LayoutStandard},
		{name: "compact mode - small terminal", width: 80, height: 20, want: LayoutCompact},
		{name: "exact minimum is compact", width: 40, height: 10, want: LayoutCompact},
		{name: "minimal - below minimum width", width: 30, height: 20, want: LayoutMinimal},
		{name: "minimal - below minimum height", width: 100, height: 8, want: LayoutMinimal},
		{name: "wide but short uses height mode", width: 150, height: 20, want: LayoutCompact},
		{name: "tall but narrow uses width mode", width: 110, height: 60, want: LayoutStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineMode(tt.width, tt.height)
			assert.Equal(t, tt.want, got, "DetermineMode(%d, %d)", tt.width, tt.height)
		})
	}
}

func TestComputeConstraints(t *testing.T) {
	tests := []struct {
		name               string
		width, height      int
		wantMode           LayoutMode
		wantCarouselWidth  int
		wantCarouselHeight int
		wantStatusHeight   int
		wantMenuHeight     int
		wantMinWarning     bool
	}{
		{
			name:               "standard terminal",
			width:              120,
			height:             30,
			wantMode:           LayoutStandard,
			wantCarouselWidth:  116,
			wantCarouselHeight: 26,
			wantStatusHeight:   1,
			wantMenuHeight:     2,
		},
		{
			name:               "minimum terminal drops the status bar",
			width:              40,
			height:             10,
			wantMode:           LayoutCompact,
			wantCarouselWidth:  40,
			wantCarouselHeight: 8,
			wantStatusHeight:   0,
			wantMenuHeight:     1,
		},
		{
			name:               "below minimum still lays out",
			width:              30,
			height:             8,
			wantMode:           LayoutMinimal,
			wantCarouselWidth:  30,
			wantCarouselHeight: 6,
			wantStatusHeight:   0,
			wantMenuHeight:     1,
			wantMinWarning:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, tt.height)
			assert.Equal(t, tt.wantMode, c.Mode, "Mode")
			assert.Equal(t, tt.wantCarouselWidth, c.CarouselWidth, "CarouselWidth")
			assert.Equal(t, tt.wantCarouselHeight, c.CarouselHeight, "CarouselHeight")
			assert.Equal(t, tt.wantStatusHeight, c.StatusHeight, "StatusHeight")
			assert.Equal(t, tt.wantMenuHeight, c.MenuHeight, "MenuHeight")
			assert.Equal(t, tt.wantMinWarning, c.ShowMinWarning, "ShowMinWarning")

			total := c.StatusHeight + c.CarouselHeight + c.MenuHeight + c.ErrBoxHeight
			assert.LessOrEqual(t, total, tt.height, "heights must fit the terminal")
			assert.LessOrEqual(t, c.CarouselWidth, tt.width)
		})
	}
}

func TestComputeDegradation(t *testing.T) {
	tests := []struct {
		name               string
		width, height      int
		wantHideStatus     bool
		wantHidePagination bool
		wantSingleLineMenu bool
		wantHideArrows     bool
	}{
		{name: "roomy terminal - no degradation", width: 120, height: 30},
		{
			name:               "short and narrow",
			width:              45,
			height:             13,
			wantHidePagination: true,
			wantSingleLineMenu: true,
			wantHideArrows:     true,
		},
		{
			name:               "very short",
			width:              120,
			height:             11,
			wantHideStatus:     true,
			wantHidePagination: true,
			wantSingleLineMenu: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDegradation(ComputeConstraints(tt.width, tt.height))
			assert.Equal(t, tt.wantHideStatus, d.HideStatusBar, "HideStatusBar")
			assert.Equal(t, tt.wantHidePagination, d.HidePagination, "HidePagination")
			assert.Equal(t, tt.wantSingleLineMenu, d.SingleLineMenu, "SingleLineMenu")
			assert.Equal(t, tt.wantHideArrows, d.HideArrows, "HideArrows")
			assert.Equal(t, !tt.wantHidePagination, d.ShouldShowPagination())
			assert.Equal(t, !tt.wantHideArrows, d.ShouldShowArrows())
		})
	}
}

func TestIsCompactMode(t *testing.T) {
	assert.False(t, Degradation{}.IsCompactMode())
	assert.True(t, Degradation{HideArrows: true}.IsCompactMode())
	assert.True(t, Degradation{HidePagination: true}.IsCompactMode())
	assert.False(t, Degradation{SingleLineMenu: true}.IsCompactMode())
}

func TestLayoutModeString(t *testing.T) {
	tests := []struct {
		mode LayoutMode
		want string
	}{
		{LayoutFull, "full"},
		{LayoutStandard, "standard"},
		{LayoutCompact, "compact"},
		{LayoutMinimal, "minimal"},
		{LayoutMode(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestComputeOverlaySize(t *testing.T) {
	tests := []struct {
		name                  string
		termWidth, termHeight int
		prefWidth, prefHeight int
		wantWidth, wantHeight int
	}{
		{name: "large terminal - capped at max", termWidth: 150, termHeight: 50, prefWidth: 100, prefHeight: 40, wantWidth: 72, wantHeight: 24},
		{name: "small terminal - constrained by margin", termWidth: 40, termHeight: 12, prefWidth: 60, prefHeight: 20, wantWidth: 36, wantHeight: 8},
		{name: "preferred size fits", termWidth: 120, termHeight: 40, prefWidth: 50, prefHeight: 12, wantWidth: 50, wantHeight: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ComputeOverlaySize(tt.termWidth, tt.termHeight, tt.prefWidth, tt.prefHeight)
			assert.Equal(t, tt.wantWidth, w, "width")
			assert.Equal(t, tt.wantHeight, h, "height")
		})
	}
}

// TestResponsiveBreakpoints verifies the breakpoint thresholds are sensible
func TestResponsiveBreakpoints(t *testing.T) {
	assert.Less(t, MinWidth, CompactWidth)
	assert.Less(t, CompactWidth, StandardWidth)
	assert.Less(t, StandardWidth, FullWidth)

	assert.Less(t, MinHeight, CompactHeight)
	assert.Less(t, CompactHeight, StandardHeight)
	assert.Less(t, StandardHeight, FullHeight)

	assert.Less(t, StatusHideHeight, PaginationHideHeight)
	assert.Less(t, PaginationHideHeight, SingleLineMenuHeight)
}
