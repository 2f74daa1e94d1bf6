package systems

import (
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/neon-snake/engine"
)

// SnakeSystem advances the snake by one cell per tick while playing
type SnakeSystem struct {
	ctx  *engine.GameContext
	food *FoodSystem
}

// NewSnakeSystem creates a new snake system
func NewSnakeSystem(ctx *engine.GameContext, food *FoodSystem) *SnakeSystem {
	return &SnakeSystem{ctx: ctx, food: food}
}

// Update runs one movement tick
//
//  1. Adopt the latched direction if the axis-lock rule allows it
//  2. No direction yet: the snake waits
//  3. Next head outside the field or on the body: game over
//  4. Push the head and leave a tracer
//  5. Head on food: score, respawn food; otherwise drop the tail
func (s *SnakeSystem) Update() {
	gs := s.ctx.State
	if gs.Phase != engine.PhasePlaying {
		return
	}

	if want := s.ctx.Intent.Direction(); gs.Direction.CanTurnTo(want) {
		gs.Direction = want
	}
	if gs.Direction.IsNone() {
		return
	}

	next := gs.Snake.Advance(gs.Direction)
	if !s.ctx.Viewport.Contains(next) || gs.Snake.Contains(next) {
		s.die()
		return
	}

	gs.Snake.PushHead(next)
	hx, hy := s.ctx.Viewport.CellCenter(next)
	s.ctx.PushEvent(engine.EventSnakeMoved, hx, hy)

	if next != gs.Food.Cell {
		gs.Snake.DropTail()
		return
	}

	levelUp := gs.AddFoodScore()
	gs.Food = s.food.Spawn()
	fx, fy := s.ctx.Viewport.CellCenter(gs.Food.Cell)
	s.ctx.PushEvent(engine.EventFoodEaten, fx, fy)

	if levelUp {
		cx, cy := s.ctx.Viewport.PixelCenter()
		s.ctx.PushEvent(engine.EventLevelUp, cx, cy)
		log.WithFields(log.Fields{"level": gs.Level(), "speed": gs.Speed()}).Debug("level up")
	}
}

func (s *SnakeSystem) die() {
	gs := s.ctx.State
	gs.Phase = engine.PhaseGameOver
	gs.FinalScore = gs.Score()

	x, y := s.ctx.Viewport.CellCenter(gs.Snake.Head())
	s.ctx.PushEvent(engine.EventGameOver, x, y)
	log.WithFields(log.Fields{
		"score":  gs.FinalScore,
		"length": gs.Snake.Len(),
		"tick":   gs.Ticks,
	}).Info("game over")
}
