package engine

import (
	"math"

	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/constants"
)

// Viewport describes the play field supplied by the display collaborator
// Width and Height are logical pixels; GridSize is the pixel edge of one cell
// The core treats it as read-only bounds, replaced wholesale on resize
type Viewport struct {
	Width    int
	Height   int
	GridSize int
}

// NewViewport sizes the grid for a pixel play field, using the narrow grid on small widths
func NewViewport(width, height int) Viewport {
	grid := constants.GridSize
	if width < constants.NarrowWidth {
		grid = constants.GridSizeNarrow
	}
	return Viewport{Width: width, Height: height, GridSize: grid}
}

// ViewportForCells builds a viewport whose grid is exactly cols x rows cells
// Used by the terminal where one cell is a fixed block of character columns
func ViewportForCells(cols, rows int) Viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	grid := constants.GridSize
	if cols*constants.GridSize < constants.NarrowWidth {
		grid = constants.GridSizeNarrow
	}
	return Viewport{Width: cols * grid, Height: rows * grid, GridSize: grid}
}

// Cols returns the number of addressable columns
// A partial trailing cell is addressable, matching a pixel bound check of x >= width
func (v Viewport) Cols() int {
	if v.GridSize <= 0 || v.Width <= 0 {
		return 0
	}
	return (v.Width + v.GridSize - 1) / v.GridSize
}

// Rows returns the number of addressable rows
func (v Viewport) Rows() int {
	if v.GridSize <= 0 || v.Height <= 0 {
		return 0
	}
	return (v.Height + v.GridSize - 1) / v.GridSize
}

// Contains reports whether c lies inside the play field on both axes
func (v Viewport) Contains(c components.Cell) bool {
	return c.X >= 0 && c.X < v.Cols() && c.Y >= 0 && c.Y < v.Rows()
}

// Center returns the cell holding the pixel center of the field
func (v Viewport) Center() components.Cell {
	if v.GridSize <= 0 {
		return components.Cell{}
	}
	return components.Cell{X: v.Width / 2 / v.GridSize, Y: v.Height / 2 / v.GridSize}
}

// CellToPixel returns the top-left pixel of c
func (v Viewport) CellToPixel(c components.Cell) (float64, float64) {
	g := float64(v.GridSize)
	return float64(c.X) * g, float64(c.Y) * g
}

// CellCenter returns the pixel center of c
func (v Viewport) CellCenter(c components.Cell) (float64, float64) {
	x, y := v.CellToPixel(c)
	half := float64(v.GridSize) / 2
	return x + half, y + half
}

// PixelToCell returns the cell containing pixel (x, y)
func (v Viewport) PixelToCell(x, y float64) components.Cell {
	if v.GridSize <= 0 {
		return components.Cell{}
	}
	g := float64(v.GridSize)
	return components.Cell{X: int(math.Floor(x / g)), Y: int(math.Floor(y / g))}
}

// PixelCenter returns the pixel center of the whole field
func (v Viewport) PixelCenter() (float64, float64) {
	return float64(v.Width) / 2, float64(v.Height) / 2
}
