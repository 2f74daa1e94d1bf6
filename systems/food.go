package systems

import (
	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/engine"
)

// FoodSystem places food on the play field
type FoodSystem struct {
	ctx *engine.GameContext
}

// NewFoodSystem creates a new food system
func NewFoodSystem(ctx *engine.GameContext) *FoodSystem {
	return &FoodSystem{ctx: ctx}
}

// Spawn draws a uniformly random cell and neon color from the seeded source
// The snake body is not excluded; food may land under it
func (s *FoodSystem) Spawn() components.Food {
	vp := s.ctx.Viewport
	cols, rows := vp.Cols(), vp.Rows()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	rng := s.ctx.Rand
	x := rng.Intn(cols)
	y := rng.Intn(rows)
	color := components.NeonColor(rng.Intn(components.NeonPaletteSize))

	return components.Food{
		Cell:  components.Cell{X: x, Y: y},
		Color: color,
	}
}
