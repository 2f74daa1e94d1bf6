package systems

import (
	"math"

	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

// EffectsSystem spawns cosmetic effects in reaction to gameplay events and ages them every tick
// Spawn counts, speeds, sizes and lifetimes scale with the particle intensity
type EffectsSystem struct {
	ctx *engine.GameContext
}

// NewEffectsSystem creates a new effects system
func NewEffectsSystem(ctx *engine.GameContext) *EffectsSystem {
	return &EffectsSystem{ctx: ctx}
}

// EventTypes returns the event types EffectsSystem handles
func (s *EffectsSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventGameStarted,
		engine.EventGameRestarted,
		engine.EventSnakeMoved,
		engine.EventFoodEaten,
		engine.EventLevelUp,
		engine.EventGameOver,
	}
}

// HandleEvent spawns the effects for one event
func (s *EffectsSystem) HandleEvent(event engine.GameEvent) {
	fx := s.ctx.State.Intensity

	switch event.Type {
	case engine.EventGameStarted:
		s.Shockwave(event.X, event.Y, constants.StartShockwaveRadius)

	case engine.EventGameRestarted:
		s.Shockwave(event.X, event.Y, constants.RestartShockwaveRadius)

	case engine.EventSnakeMoved:
		s.Trail(event.X, event.Y)

	case engine.EventFoodEaten:
		s.Explosion(event.X, event.Y, constants.FoodExplosionPerFX*fx)
		s.SparkStorm(event.X, event.Y, constants.FoodSparksPerFX*fx)
		s.Shockwave(event.X, event.Y, constants.FoodShockwaveRadius)

	case engine.EventLevelUp:
		s.Shockwave(event.X, event.Y, constants.LevelUpShockwaveRadius)
		s.SparkStorm(event.X, event.Y, constants.LevelUpSparksPerFX*fx)

	case engine.EventGameOver:
		s.Explosion(event.X, event.Y, constants.DeathExplosionPerFX*fx)
		s.SparkStorm(event.X, event.Y, constants.DeathSparksPerFX*fx)
	}
}

// Update ages every effect by one tick
func (s *EffectsSystem) Update() {
	s.ctx.State.Effects.Age()
}

// Explosion emits count particles on evenly spaced angles
func (s *EffectsSystem) Explosion(x, y float64, count int) {
	if count <= 0 {
		return
	}
	fx := float64(s.ctx.State.Intensity)
	rng := s.ctx.FXRand
	life := constants.ParticleBaseLife + s.ctx.State.Intensity*constants.ParticleLifePerFX

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := rng.Float64()*(fx*3) + 2
		if !s.ctx.State.Effects.AddParticle(components.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Color:   s.randomColor(),
			Size:    rng.Float64()*(fx*2) + 1,
		}) {
			return
		}
	}
}

// SparkStorm emits count fast sparks on random angles
func (s *EffectsSystem) SparkStorm(x, y float64, count int) {
	fx := float64(s.ctx.State.Intensity)
	rng := s.ctx.FXRand
	life := constants.SparkStormBaseLife + s.ctx.State.Intensity*constants.SparkStormLifePerFX

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*8 + 3
		if !s.ctx.State.Effects.AddSpark(components.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Color:   s.randomColor(),
			Size:    rng.Float64()*(fx*3) + 2,
		}) {
			return
		}
	}
}

// Shockwave emits an expanding ring
func (s *EffectsSystem) Shockwave(x, y, maxRadius float64) {
	s.ctx.State.Effects.AddShockwave(components.NewShockwave(x, y, maxRadius, constants.ShockwaveLife, s.randomColor()))
}

// Trail leaves a tracer at the head and occasionally a small drifting spark
func (s *EffectsSystem) Trail(x, y float64) {
	effects := s.ctx.State.Effects
	effects.AddTracer(components.Tracer{
		X:       x,
		Y:       y,
		Life:    constants.TracerLife,
		MaxLife: constants.TracerLife,
		Color:   components.NeonGreen,
	})

	rng := s.ctx.FXRand
	if rng.Float64() >= constants.SparkTrailChance {
		return
	}
	effects.AddSpark(components.Particle{
		X:       x + (rng.Float64()-0.5)*constants.SparkTrailJitter,
		Y:       y + (rng.Float64()-0.5)*constants.SparkTrailJitter,
		VX:      (rng.Float64() - 0.5) * 2 * constants.SparkTrailVelocity,
		VY:      (rng.Float64() - 0.5) * 2 * constants.SparkTrailVelocity,
		Life:    constants.SparkTrailLife,
		MaxLife: constants.SparkTrailLife,
		Color:   s.randomColor(),
		Size:    rng.Float64()*2 + 1,
	})
}

func (s *EffectsSystem) randomColor() components.NeonColor {
	return components.NeonColor(s.ctx.FXRand.Intn(components.NeonPaletteSize))
}
