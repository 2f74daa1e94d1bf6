// Package systems implements the per-tick simulation of neon-snake.
//
// Each system owns one concern and talks to the others only through the shared
// GameContext and its event queue. Simulation.Step runs them in a fixed order:
// session signals, snake movement, event dispatch, effect aging.
package systems

import (
	"github.com/lixenwraith/neon-snake/engine"
)

// Simulation wires the systems together and implements engine.Stepper
type Simulation struct {
	ctx    *engine.GameContext
	router *engine.EventRouter

	Food    *FoodSystem
	Session *SessionSystem
	Snake   *SnakeSystem
	Effects *EffectsSystem
	Audio   *AudioSystem
}

// NewSimulation creates the systems over ctx and registers the event handlers
// player may be nil for silent play
func NewSimulation(ctx *engine.GameContext, player SoundPlayer) *Simulation {
	food := NewFoodSystem(ctx)
	sim := &Simulation{
		ctx:     ctx,
		router:  engine.NewEventRouter(ctx.Events),
		Food:    food,
		Session: NewSessionSystem(ctx, food),
		Snake:   NewSnakeSystem(ctx, food),
		Effects: NewEffectsSystem(ctx),
		Audio:   NewAudioSystem(player),
	}

	sim.router.Register(sim.Effects)
	sim.router.Register(sim.Audio)
	return sim
}

// Step runs one simulation tick
// Gameplay state only changes while Playing; effects keep aging in every phase
func (s *Simulation) Step() {
	s.Session.Update()
	s.Snake.Update()
	s.router.DispatchAll()
	s.Effects.Update()
	s.ctx.State.Ticks++
}
