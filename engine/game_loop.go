package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/neon-snake/constants"
)

// Stepper runs one simulation tick
type Stepper interface {
	Step()
}

// Renderer draws one frame from a snapshot; it never mutates game state
type Renderer interface {
	Render(snap *Snapshot)
}

// EventHandlerFunc consumes one terminal event; returning false ends the loop
type EventHandlerFunc func(ev tcell.Event) bool

// GameLoop is the fixed-timestep driver
//
// Each Frame adds the game time elapsed since the previous Frame to an accumulator,
// runs as many steps as whole ticks fit (tick = BaseTick / speed), and renders once.
// Game speed therefore follows the wall clock regardless of frame rate, and a stalled
// frame is caught up with several steps.
type GameLoop struct {
	ctx      *GameContext
	stepper  Stepper
	renderer Renderer

	// BaseTick is the tick length at speed 1.0
	BaseTick time.Duration

	// MaxFrameDelta caps the elapsed time credited per frame; zero disables the cap
	MaxFrameDelta time.Duration

	// FrameInterval is the render cadence used by Run
	FrameInterval time.Duration

	accumulator time.Duration
	lastFrame   time.Time
	started     bool

	frames uint64
	steps  uint64
}

// NewGameLoop creates a driver over ctx with the default cadence
func NewGameLoop(ctx *GameContext, stepper Stepper, renderer Renderer) *GameLoop {
	return &GameLoop{
		ctx:           ctx,
		stepper:       stepper,
		renderer:      renderer,
		BaseTick:      constants.BaseTickDuration,
		FrameInterval: constants.FrameUpdateInterval,
	}
}

// TickDuration returns the current tick length derived from the speed multiplier
func (gl *GameLoop) TickDuration() time.Duration {
	speed := gl.ctx.State.Speed()
	if speed <= 0 {
		speed = constants.BaseSpeed
	}
	return time.Duration(float64(gl.BaseTick) / speed)
}

// Accumulator returns the unconsumed game time carried to the next frame
func (gl *GameLoop) Accumulator() time.Duration {
	return gl.accumulator
}

// Stats returns frames rendered and steps run since creation
func (gl *GameLoop) Stats() (frames, steps uint64) {
	return gl.frames, gl.steps
}

// Frame runs zero or more simulation steps and renders exactly once
// Returns the number of steps run
func (gl *GameLoop) Frame() int {
	now := gl.ctx.Clock.Now()
	if !gl.started {
		gl.lastFrame = now
		gl.started = true
	}

	elapsed := now.Sub(gl.lastFrame)
	gl.lastFrame = now
	if elapsed < 0 {
		elapsed = 0
	}
	if gl.MaxFrameDelta > 0 && elapsed > gl.MaxFrameDelta {
		elapsed = gl.MaxFrameDelta
	}
	gl.accumulator += elapsed

	steps := 0
	for gl.accumulator >= gl.TickDuration() {
		gl.stepper.Step()
		// Speed may have changed during the step; drain by the current tick
		gl.accumulator -= gl.TickDuration()
		steps++
	}
	if gl.accumulator < 0 {
		gl.accumulator = 0
	}

	gl.renderer.Render(gl.ctx.Snapshot())

	gl.frames++
	gl.steps += uint64(steps)
	if steps > 1 {
		log.WithFields(log.Fields{"steps": steps, "elapsed": elapsed}).Debug("frame caught up")
	}
	return steps
}

// Run drives Frame from a ticker and applies terminal events between frames
// Events and frames are serialized on the calling goroutine, which owns all game state
// Returns nil when the handler asks to quit or the event source closes
func (gl *GameLoop) Run(ctx context.Context, events <-chan tcell.Event, handle EventHandlerFunc) error {
	interval := gl.FrameInterval
	if interval <= 0 {
		interval = constants.FrameUpdateInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.WithField("interval", interval).Info("game loop started")
	defer func() {
		log.WithFields(log.Fields{"frames": gl.frames, "steps": gl.steps}).Info("game loop stopped")
	}()

	gl.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handle(ev) {
				return nil
			}

		case <-ticker.C:
			gl.Frame()
		}
	}
}
