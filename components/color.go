package components

// NeonColor is the semantic color of food and effects
// Decouples components from the render package; render maps it to terminal colors
type NeonColor uint8

const (
	NeonMagenta NeonColor = iota
	NeonCyan
	NeonYellow
	NeonPink
	NeonMint
	NeonViolet
	NeonGreen // tracer trail, not part of the random palette
	neonColorCount
)

// NeonPaletteSize is the number of colors eligible for random picks
const NeonPaletteSize = int(NeonGreen)

var neonHex = [neonColorCount]string{
	NeonMagenta: "#ff00ff",
	NeonCyan:    "#00ffff",
	NeonYellow:  "#ffff00",
	NeonPink:    "#ff0080",
	NeonMint:    "#00ff80",
	NeonViolet:  "#8000ff",
	NeonGreen:   "#00ff00",
}

// Hex returns the #rrggbb form of the color
func (c NeonColor) Hex() string {
	if c >= neonColorCount {
		return neonHex[NeonMagenta]
	}
	return neonHex[c]
}
