package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/constants"
)

// RGB color definitions for fixed UI elements
var (
	RgbBackground   = tcell.NewRGBColor(0, 0, 0)       // Black play field
	RgbSnakeHead    = tcell.NewRGBColor(255, 255, 255) // White head
	RgbHUDLabel     = tcell.NewRGBColor(120, 120, 140) // Dim labels
	RgbHUDValue     = tcell.NewRGBColor(0, 255, 255)   // Cyan values
	RgbHUDPaused    = tcell.NewRGBColor(255, 255, 0)   // Yellow pause flag
	RgbOverlayTitle = tcell.NewRGBColor(255, 0, 255)   // Magenta title
	RgbOverlayText  = tcell.NewRGBColor(200, 200, 200) // Light gray prompts
	RgbGameOver     = tcell.NewRGBColor(255, 0, 128)   // Hot pink game over
)

var black = colorful.Color{}

// neonPalette caches the parsed palette
var neonPalette = func() map[components.NeonColor]colorful.Color {
	m := make(map[components.NeonColor]colorful.Color)
	for c := components.NeonMagenta; c <= components.NeonGreen; c++ {
		col, err := colorful.Hex(c.Hex())
		if err != nil {
			col = colorful.Color{R: 1, G: 0, B: 1}
		}
		m[c] = col
	}
	return m
}()

// Neon returns the display color of a semantic neon color
func Neon(c components.NeonColor) colorful.Color {
	if col, ok := neonPalette[c]; ok {
		return col
	}
	return neonPalette[components.NeonMagenta]
}

// ToTcell converts a colorful color to a terminal RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends c toward the black background by alpha (1 = full color, 0 = background)
func Fade(c colorful.Color, alpha float64) colorful.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return black.BlendRgb(c, alpha)
}

// SnakeSegmentColor returns the gradient color of the segment at index (0 = head)
func SnakeSegmentColor(index int) colorful.Color {
	hue := math.Mod(constants.SnakeBaseHue+float64(index)*constants.SnakeHueStep, 360)
	return colorful.Hsl(hue, 1, 0.5)
}

// GridColor returns the dim grid color after elapsed animation time
func GridColor(elapsed time.Duration) colorful.Color {
	hue := math.Mod(elapsed.Seconds()*constants.GridHueRate, 360)
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsl(hue, 1, constants.GridLightness)
}

// FoodPulse returns the food brightness in [0.6, 1] after elapsed animation time
func FoodPulse(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return 0.8 + 0.2*math.Sin(ms*constants.FoodPulseRate)
}
