package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-snake/components"
)

func TestNeonPalette(t *testing.T) {
	tests := []struct {
		name string
		c    components.NeonColor
		want tcell.Color
	}{
		{"Magenta", components.NeonMagenta, tcell.NewRGBColor(255, 0, 255)},
		{"Cyan", components.NeonCyan, tcell.NewRGBColor(0, 255, 255)},
		{"Yellow", components.NeonYellow, tcell.NewRGBColor(255, 255, 0)},
		{"Pink", components.NeonPink, tcell.NewRGBColor(255, 0, 128)},
		{"Mint", components.NeonMint, tcell.NewRGBColor(0, 255, 128)},
		{"Violet", components.NeonViolet, tcell.NewRGBColor(128, 0, 255)},
		{"Tracer green", components.NeonGreen, tcell.NewRGBColor(0, 255, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToTcell(Neon(tt.c)); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFade(t *testing.T) {
	c := Neon(components.NeonMagenta)

	if got := ToTcell(Fade(c, 0)); got != RgbBackground {
		t.Errorf("Expected fully faded color to match background, got %v", got)
	}
	if got := ToTcell(Fade(c, 1)); got != ToTcell(c) {
		t.Errorf("Expected full alpha to keep the color, got %v", got)
	}
	// Out-of-range alpha is clamped
	if ToTcell(Fade(c, 2)) != ToTcell(c) || ToTcell(Fade(c, -1)) != RgbBackground {
		t.Error("Expected alpha clamped to [0,1]")
	}

	r, _, _ := Fade(c, 0.5).RGB255()
	if r < 126 || r > 129 {
		t.Errorf("Expected half-faded red near 128, got %d", r)
	}
}

func TestSnakeSegmentColor(t *testing.T) {
	if got := ToTcell(SnakeSegmentColor(0)); got != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("Expected hue 120 to be pure green, got %v", got)
	}
	// Hue 240 is pure blue
	if got := ToTcell(SnakeSegmentColor(12)); got != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Expected segment 12 to be blue, got %v", got)
	}
	// 36 segments wrap the hue back to the head's
	if ToTcell(SnakeSegmentColor(36)) != ToTcell(SnakeSegmentColor(0)) {
		t.Error("Expected gradient hue to wrap at 360")
	}
}

func TestGridColor(t *testing.T) {
	start := GridColor(0)
	if h, _, _ := start.Hsl(); h > 1e-6 && h < 360-1e-6 {
		t.Errorf("Expected hue 0 at start, got %v", h)
	}
	// 12s at 30 degrees per second is one full cycle
	if ToTcell(GridColor(12*time.Second)) != ToTcell(start) {
		t.Error("Expected grid hue to cycle every 12s")
	}
	if _, _, l := GridColor(5 * time.Second).Hsl(); l > 0.25 {
		t.Errorf("Expected dim grid, got lightness %v", l)
	}
}

func TestFoodPulse(t *testing.T) {
	if p := FoodPulse(0); p != 0.8 {
		t.Errorf("Expected pulse 0.8 at zero, got %v", p)
	}
	for _, d := range []time.Duration{0, 157 * time.Millisecond, time.Second, time.Minute} {
		if p := FoodPulse(d); p < 0.6 || p > 1.0 {
			t.Errorf("Expected pulse in [0.6,1], got %v", p)
		}
	}
}
