package systems

import (
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/engine"
)

// SessionSystem drives the phase machine from the latched start signal
type SessionSystem struct {
	ctx  *engine.GameContext
	food *FoodSystem
}

// NewSessionSystem creates a new session system
func NewSessionSystem(ctx *engine.GameContext, food *FoodSystem) *SessionSystem {
	return &SessionSystem{ctx: ctx, food: food}
}

// Update consumes the start signal; it starts from Start, restarts from GameOver,
// and is dropped while Playing
func (s *SessionSystem) Update() {
	if !s.ctx.Intent.TakeStart() {
		return
	}

	switch s.ctx.State.Phase {
	case engine.PhaseStart:
		s.Start()
	case engine.PhaseGameOver:
		s.Restart()
	}
}

// Start begins the first round: centered one-segment snake, no direction, fresh food
func (s *SessionSystem) Start() {
	s.beginRound()
	x, y := s.ctx.Viewport.PixelCenter()
	s.ctx.PushEvent(engine.EventGameStarted, x, y)
	log.WithField("viewport", s.ctx.Viewport).Debug("game started")
}

// Restart resets score, level, speed and effects, then begins a new round
func (s *SessionSystem) Restart() {
	gs := s.ctx.State
	gs.ResetScore()
	gs.FinalScore = 0
	gs.Effects.Clear()

	s.beginRound()
	x, y := s.ctx.Viewport.PixelCenter()
	s.ctx.PushEvent(engine.EventGameRestarted, x, y)
	log.Debug("game restarted")
}

func (s *SessionSystem) beginRound() {
	gs := s.ctx.State
	gs.Snake = components.NewSnake(s.ctx.Viewport.Center())
	gs.Direction = components.DirNone
	gs.Food = s.food.Spawn()
	gs.Phase = engine.PhasePlaying
}
