package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wikijump/engine"
	"github.com/lixenwraith/wikijump/engine/fsm"
)

// RGB color definitions; the page is drawn as dark ink on paper
var (
	RgbPaper    = tcell.NewRGBColor(250, 248, 240) // Off-white page
	RgbRule     = tcell.NewRGBColor(160, 160, 160) // Gray dividers
	RgbTrail    = tcell.NewRGBColor(200, 200, 200) // Light gray after-images
	RgbPlayer   = tcell.NewRGBColor(255, 140, 0)   // Orange body
	RgbBoosted  = tcell.NewRGBColor(255, 60, 160)  // Pink while a link boost is armed
	RgbOverlay  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbOverlayF = tcell.NewRGBColor(255, 255, 255) // White overlay text

	// Status bar backgrounds
	RgbStatePlayingBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStateLoadingBg  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStateTravelBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStateTerminalBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbStatusBg        = tcell.NewRGBColor(40, 40, 40)    // Dark bar
	RgbStatusText      = tcell.NewRGBColor(0, 0, 0)       // Dark text on state badge
	RgbStatusInfo      = tcell.NewRGBColor(230, 230, 230) // Light text on bar
	RgbStatusLink      = tcell.NewRGBColor(100, 150, 255) // Link under feet
)

// HexColor converts a 0xRRGGBB word color
func HexColor(c uint32) tcell.Color {
	return tcell.NewHexColor(int32(c & 0xFFFFFF))
}

// GetStateColor returns the status badge background for a session state
func GetStateColor(state fsm.StateID) tcell.Color {
	switch state {
	case engine.StatePlaying:
		return RgbStatePlayingBg
	case engine.StateLoading:
		return RgbStateLoadingBg
	case engine.StateTransitioning:
		return RgbStateTravelBg
	case engine.StateTerminated:
		return RgbStateTerminalBg
	}
	return RgbStatusBg
}
