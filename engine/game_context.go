package engine

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/neon-snake/components"
)

const fxSeedSalt = 0x9e3779b97f4a7c15

// GameContext holds all game state and the collaborators the systems share
type GameContext struct {
	// Central game state
	State *GameState

	// Play field bounds from the display collaborator
	Viewport Viewport

	// Latched player intent
	Intent *Intent

	// Events produced during a step
	Events *EventQueue

	// Seeded source for food placement
	Rand *rand.Rand

	// Seeded source for cosmetic effects, separate so visuals never shift food placement
	FXRand *rand.Rand

	// Game time; frozen while paused
	Clock *PausableClock
}

// NewGameContext creates a context in the Start phase with the snake at the field center
func NewGameContext(vp Viewport, seed uint64, source TimeProvider) *GameContext {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &GameContext{
		State:    NewGameState(vp.Center()),
		Viewport: vp,
		Intent:   &Intent{},
		Events:   NewEventQueue(),
		Rand:     rand.New(rand.NewSource(seed)),
		FXRand:   rand.New(rand.NewSource(seed ^ fxSeedSalt)),
		Clock:    NewPausableClock(source),
	}
}

// PushEvent queues an event stamped with the current tick, level and score
func (g *GameContext) PushEvent(t EventType, x, y float64) {
	g.Events.Push(GameEvent{
		Type:  t,
		X:     x,
		Y:     y,
		Level: g.State.Level(),
		Score: g.State.Score(),
		Tick:  g.State.Ticks,
	})
}

// Resize replaces the viewport; the snake keeps its cells and dies on its next move
// if it is now outside the field
func (g *GameContext) Resize(vp Viewport) {
	g.Viewport = vp
	if g.State.Phase == PhaseStart {
		g.State.Snake = components.NewSnake(vp.Center())
	}
}

// TogglePause pauses or resumes game time while playing and returns the new state
// Outside Playing the clock always runs so idle effects keep fading
func (g *GameContext) TogglePause() bool {
	if g.State.Phase != PhasePlaying {
		g.Clock.Resume()
		return false
	}
	return g.Clock.Toggle()
}

// IsPaused reports whether game time is frozen
func (g *GameContext) IsPaused() bool {
	return g.Clock.IsPaused()
}
