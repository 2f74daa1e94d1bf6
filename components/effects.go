package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Particle is a drifting effect point used for explosions and sparks
// Position and velocity are in logical pixels, life in ticks
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   NeonColor
	Size    float64
}

// Alpha returns the remaining life fraction used for fading
func (p Particle) Alpha() float64 {
	return lifeAlpha(p.Life, p.MaxLife)
}

// Tracer is a static afterglow left at each head position
type Tracer struct {
	X, Y    float64
	Life    int
	MaxLife int
	Color   NeonColor
}

// Alpha returns the remaining life fraction used for fading
func (t Tracer) Alpha() float64 {
	return lifeAlpha(t.Life, t.MaxLife)
}

// Shockwave is an expanding ring whose radius grows linearly to MaxRadius over its life
type Shockwave struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      int
	MaxLife   int
	Color     NeonColor

	tween *gween.Tween
}

// NewShockwave creates a ring at (x, y) that reaches maxRadius after life ticks
func NewShockwave(x, y, maxRadius float64, life int, color NeonColor) Shockwave {
	return Shockwave{
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		Life:      life,
		MaxLife:   life,
		Color:     color,
		tween:     gween.New(0, float32(maxRadius), float32(life), ease.Linear),
	}
}

// Alpha returns the remaining life fraction used for fading
func (w Shockwave) Alpha() float64 {
	return lifeAlpha(w.Life, w.MaxLife)
}

func (w *Shockwave) grow() {
	if w.tween == nil {
		if w.MaxLife > 0 {
			w.Radius += w.MaxRadius / float64(w.MaxLife)
		}
		return
	}
	r, _ := w.tween.Update(1)
	w.Radius = float64(r)
}

func lifeAlpha(life, maxLife int) float64 {
	if maxLife <= 0 || life <= 0 {
		return 0
	}
	if life >= maxLife {
		return 1
	}
	return float64(life) / float64(maxLife)
}

// Effects owns every ephemeral effect collection
// Entries never outlive the collection; Age prunes expired ones in place
type Effects struct {
	Particles  []Particle
	Sparks     []Particle
	Tracers    []Tracer
	Shockwaves []Shockwave

	// Cap bounds each collection; zero means unbounded
	Cap int

	particleDamping float64
	sparkDamping    float64
}

// NewEffects creates empty collections with the given per-tick dampings and cap
func NewEffects(particleDamping, sparkDamping float64, limit int) *Effects {
	return &Effects{
		Cap:             limit,
		particleDamping: particleDamping,
		sparkDamping:    sparkDamping,
	}
}

func (e *Effects) full(n int) bool {
	return e.Cap > 0 && n >= e.Cap
}

// AddParticle appends an explosion particle, dropping it when the collection is full
func (e *Effects) AddParticle(p Particle) bool {
	if e.full(len(e.Particles)) {
		return false
	}
	e.Particles = append(e.Particles, p)
	return true
}

// AddSpark appends a spark, dropping it when the collection is full
func (e *Effects) AddSpark(p Particle) bool {
	if e.full(len(e.Sparks)) {
		return false
	}
	e.Sparks = append(e.Sparks, p)
	return true
}

// AddTracer appends a tracer, dropping it when the collection is full
func (e *Effects) AddTracer(t Tracer) bool {
	if e.full(len(e.Tracers)) {
		return false
	}
	e.Tracers = append(e.Tracers, t)
	return true
}

// AddShockwave appends a ring, dropping it when the collection is full
func (e *Effects) AddShockwave(w Shockwave) bool {
	if e.full(len(e.Shockwaves)) {
		return false
	}
	e.Shockwaves = append(e.Shockwaves, w)
	return true
}

// Age advances every effect by one tick and removes those whose life reached zero
func (e *Effects) Age() {
	e.Particles = ageParticles(e.Particles, e.particleDamping)
	e.Sparks = ageParticles(e.Sparks, e.sparkDamping)

	tracers := e.Tracers[:0]
	for _, t := range e.Tracers {
		t.Life--
		if t.Life > 0 {
			tracers = append(tracers, t)
		}
	}
	e.Tracers = tracers

	waves := e.Shockwaves[:0]
	for _, w := range e.Shockwaves {
		w.grow()
		w.Life--
		if w.Life > 0 {
			waves = append(waves, w)
		}
	}
	e.Shockwaves = waves
}

func ageParticles(ps []Particle, damping float64) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= damping
		p.VY *= damping
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}

// Clear drops every effect
func (e *Effects) Clear() {
	e.Particles = e.Particles[:0]
	e.Sparks = e.Sparks[:0]
	e.Tracers = e.Tracers[:0]
	e.Shockwaves = e.Shockwaves[:0]
}

// Count returns the total number of live effects
func (e *Effects) Count() int {
	return len(e.Particles) + len(e.Sparks) + len(e.Tracers) + len(e.Shockwaves)
}
