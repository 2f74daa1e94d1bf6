package engine

import "github.com/lixenwraith/neon-snake/components"

// Snapshot is a read-only copy of everything a renderer needs for one frame
// Slices are copies; mutating them never reaches the game state
type Snapshot struct {
	Phase      Phase
	Paused     bool
	Viewport   Viewport
	Snake      []components.Cell
	Direction  components.Direction
	Food       components.Food
	Score      int
	Level      int
	Speed      float64
	FinalScore int
	Intensity  int
	Tick       uint64

	Particles  []components.Particle
	Sparks     []components.Particle
	Tracers    []components.Tracer
	Shockwaves []components.Shockwave
}

// Snapshot captures the current state
func (g *GameContext) Snapshot() *Snapshot {
	s := g.State
	return &Snapshot{
		Phase:      s.Phase,
		Paused:     g.Clock.IsPaused(),
		Viewport:   g.Viewport,
		Snake:      s.Snake.Cells(),
		Direction:  s.Direction,
		Food:       s.Food,
		Score:      s.Score(),
		Level:      s.Level(),
		Speed:      s.Speed(),
		FinalScore: s.FinalScore,
		Intensity:  s.Intensity,
		Tick:       s.Ticks,
		Particles:  append([]components.Particle(nil), s.Effects.Particles...),
		Sparks:     append([]components.Particle(nil), s.Effects.Sparks...),
		Tracers:    append([]components.Tracer(nil), s.Effects.Tracers...),
		Shockwaves: append([]components.Shockwave(nil), s.Effects.Shockwaves...),
	}
}
