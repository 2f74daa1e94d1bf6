package systems

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

const testSeed = 7

// newTestSimulation creates a silent simulation on a 20x15 field
func newTestSimulation(t *testing.T) (*Simulation, *engine.GameContext) {
	t.Helper()
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := engine.NewGameContext(engine.ViewportForCells(20, 15), testSeed, mock)
	return NewSimulation(ctx, nil), ctx
}

// playing puts the game mid-round with the given body moving in dir
func playing(ctx *engine.GameContext, dir components.Direction, body ...components.Cell) {
	gs := ctx.State
	gs.Phase = engine.PhasePlaying
	gs.Snake = components.Snake{Body: append([]components.Cell(nil), body...)}
	gs.Direction = dir
	ctx.Intent.SetDirection(dir)
	// Park food away from the action
	gs.Food = components.Food{Cell: components.Cell{X: 0, Y: 14}}
}

func countWaves(e *components.Effects, maxRadius float64) int {
	n := 0
	for _, w := range e.Shockwaves {
		if w.MaxRadius == maxRadius {
			n++
		}
	}
	return n
}

// TestStartWaitsForDirection covers Start -> Playing without input
func TestStartWaitsForDirection(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	center := ctx.Viewport.Center()

	ctx.Intent.RequestStart()
	sim.Step()

	gs := ctx.State
	if gs.Phase != engine.PhasePlaying {
		t.Fatalf("Expected Playing after start, got %v", gs.Phase)
	}
	if gs.Snake.Len() != 1 || gs.Snake.Head() != center {
		t.Errorf("Expected single segment at %v, got %v", center, gs.Snake.Body)
	}
	if !gs.Direction.IsNone() {
		t.Errorf("Expected no direction, got %v", gs.Direction)
	}
	if countWaves(gs.Effects, constants.StartShockwaveRadius) != 1 {
		t.Error("Expected start shockwave")
	}

	for i := 0; i < 10; i++ {
		sim.Step()
	}
	if gs.Snake.Head() != center {
		t.Errorf("Expected snake to wait at %v, got %v", center, gs.Snake.Head())
	}

	ctx.Intent.SetDirection(components.DirUp)
	sim.Step()
	if want := center.Add(components.DirUp); gs.Snake.Head() != want {
		t.Errorf("Expected head %v after first input, got %v", want, gs.Snake.Head())
	}
}

// TestDirectionBeforeFirstTickSurvivesStart covers an arrow pressed between the start key and the next tick
func TestDirectionBeforeFirstTickSurvivesStart(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	center := ctx.Viewport.Center()

	ctx.Intent.RequestStart()
	ctx.Intent.SetDirection(components.DirRight)
	sim.Step()
	sim.Step()

	gs := ctx.State
	if gs.Phase != engine.PhasePlaying {
		t.Fatalf("Expected Playing, got %v", gs.Phase)
	}
	if gs.Direction != components.DirRight {
		t.Errorf("Expected direction right, got %v", gs.Direction)
	}
	if want := center.Add(components.DirRight); gs.Snake.Head() != want {
		t.Errorf("Expected head %v, got %v", want, gs.Snake.Head())
	}
}

// TestRestartForgetsOldDirection verifies the previous round's direction does not carry over
func TestRestartForgetsOldDirection(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirLeft, components.Cell{X: 0, Y: 2})

	sim.Step()
	if ctx.State.Phase != engine.PhaseGameOver {
		t.Fatalf("Expected GameOver, got %v", ctx.State.Phase)
	}

	ctx.Intent.RequestStart()
	sim.Step()
	sim.Step()
	if head := ctx.State.Snake.Head(); head != ctx.Viewport.Center() {
		t.Errorf("Expected snake to wait at center, got %v", head)
	}
}

// TestEatFoodAhead covers a pickup directly in front of the head
func TestEatFoodAhead(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirRight, components.Cell{X: 5, Y: 5}, components.Cell{X: 4, Y: 5})
	ctx.State.Food = components.Food{Cell: components.Cell{X: 6, Y: 5}}

	// Food placement is the next draw of the seeded gameplay source
	twin := rand.New(rand.NewSource(testSeed))
	want := components.Food{
		Cell:  components.Cell{X: twin.Intn(20), Y: twin.Intn(15)},
		Color: components.NeonColor(twin.Intn(components.NeonPaletteSize)),
	}

	sim.Step()

	gs := ctx.State
	if gs.Snake.Head() != (components.Cell{X: 6, Y: 5}) {
		t.Errorf("Expected head on food cell, got %v", gs.Snake.Head())
	}
	if gs.Snake.Len() != 3 {
		t.Errorf("Expected length 3, got %d", gs.Snake.Len())
	}
	if gs.Score() != 10 {
		t.Errorf("Expected score 10, got %d", gs.Score())
	}
	if gs.Food != want {
		t.Errorf("Expected new food %+v, got %+v", want, gs.Food)
	}
	if !ctx.Viewport.Contains(gs.Food.Cell) {
		t.Errorf("Expected food inside the field, got %v", gs.Food.Cell)
	}

	fx := gs.Intensity
	// One aging pass has run; counts are unaffected
	if len(gs.Effects.Particles) != constants.FoodExplosionPerFX*fx {
		t.Errorf("Expected %d particles, got %d", constants.FoodExplosionPerFX*fx, len(gs.Effects.Particles))
	}
	if countWaves(gs.Effects, constants.FoodShockwaveRadius) != 1 {
		t.Error("Expected food shockwave")
	}
	if len(gs.Effects.Tracers) != 1 {
		t.Errorf("Expected 1 tracer, got %d", len(gs.Effects.Tracers))
	}
}

// TestWallCollision covers running off the right edge
func TestWallCollision(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirRight, components.Cell{X: 19, Y: 3}, components.Cell{X: 18, Y: 3})
	gs := ctx.State
	gs.AddFoodScore()
	gs.AddFoodScore()

	sim.Step()

	if gs.Phase != engine.PhaseGameOver {
		t.Fatalf("Expected GameOver, got %v", gs.Phase)
	}
	if gs.FinalScore != 20 {
		t.Errorf("Expected final score 20, got %d", gs.FinalScore)
	}
	if gs.Snake.Head() != (components.Cell{X: 19, Y: 3}) || gs.Snake.Len() != 2 {
		t.Errorf("Expected snake untouched by the fatal move, got %v", gs.Snake.Body)
	}
	if len(gs.Effects.Particles) != constants.DeathExplosionPerFX*gs.Intensity {
		t.Errorf("Expected death explosion, got %d particles", len(gs.Effects.Particles))
	}

	// Frozen after death
	sim.Step()
	if gs.Snake.Head() != (components.Cell{X: 19, Y: 3}) {
		t.Errorf("Expected snake frozen in GameOver, got %v", gs.Snake.Head())
	}
}

func TestTopWallCollision(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirUp, components.Cell{X: 4, Y: 0})

	sim.Step()
	if ctx.State.Phase != engine.PhaseGameOver {
		t.Errorf("Expected GameOver leaving through the top, got %v", ctx.State.Phase)
	}
}

// TestSelfCollision covers turning into the body
func TestSelfCollision(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	// Head at (5,5) moving up, body curls around to (5,4)
	playing(ctx, components.DirUp,
		components.Cell{X: 5, Y: 5},
		components.Cell{X: 6, Y: 5},
		components.Cell{X: 6, Y: 4},
		components.Cell{X: 5, Y: 4},
		components.Cell{X: 4, Y: 4},
	)

	sim.Step()
	if ctx.State.Phase != engine.PhaseGameOver {
		t.Errorf("Expected GameOver on self collision, got %v", ctx.State.Phase)
	}
}

// TestReversalIgnored verifies an opposite input never changes the direction
func TestReversalIgnored(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirRight, components.Cell{X: 5, Y: 5}, components.Cell{X: 4, Y: 5})

	ctx.Intent.SetDirection(components.DirLeft)
	sim.Step()

	gs := ctx.State
	if gs.Direction != components.DirRight {
		t.Errorf("Expected direction right, got %v", gs.Direction)
	}
	if gs.Snake.Head() != (components.Cell{X: 6, Y: 5}) {
		t.Errorf("Expected head (6,5), got %v", gs.Snake.Head())
	}
	if gs.Phase != engine.PhasePlaying {
		t.Errorf("Expected reversal not to kill the snake, got %v", gs.Phase)
	}
}

// TestLevelUpInSameTick covers a pickup crossing a multiple of 100
func TestLevelUpInSameTick(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirRight, components.Cell{X: 5, Y: 5})
	gs := ctx.State
	for i := 0; i < 9; i++ {
		gs.AddFoodScore()
	}
	if gs.Score() != 90 || gs.Level() != 1 {
		t.Fatalf("Expected 90 at level 1, got %d at %d", gs.Score(), gs.Level())
	}
	gs.Food = components.Food{Cell: components.Cell{X: 6, Y: 5}}

	sim.Step()

	if gs.Score() != 100 || gs.Level() != 2 {
		t.Errorf("Expected 100 at level 2, got %d at %d", gs.Score(), gs.Level())
	}
	if gs.Speed() != 2.0 {
		t.Errorf("Expected speed 2.0, got %v", gs.Speed())
	}
	if countWaves(gs.Effects, constants.LevelUpShockwaveRadius) != 1 {
		t.Error("Expected level-up shockwave")
	}
	if len(gs.Effects.Sparks) < constants.LevelUpSparksPerFX*gs.Intensity {
		t.Errorf("Expected at least %d sparks, got %d", constants.LevelUpSparksPerFX*gs.Intensity, len(gs.Effects.Sparks))
	}
}

// TestRestartResets covers GameOver -> Playing
func TestRestartResets(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirLeft, components.Cell{X: 0, Y: 2})
	gs := ctx.State
	for i := 0; i < 12; i++ {
		gs.AddFoodScore()
	}

	sim.Step()
	if gs.Phase != engine.PhaseGameOver {
		t.Fatalf("Expected GameOver, got %v", gs.Phase)
	}

	ctx.Intent.RequestStart()
	sim.Step()

	if gs.Phase != engine.PhasePlaying {
		t.Fatalf("Expected Playing after restart, got %v", gs.Phase)
	}
	if gs.Score() != 0 || gs.Level() != 1 || gs.Speed() != 1.0 || gs.FinalScore != 0 {
		t.Errorf("Expected full reset, got score %d level %d speed %v final %d", gs.Score(), gs.Level(), gs.Speed(), gs.FinalScore)
	}
	if !gs.Direction.IsNone() || !ctx.Intent.Direction().IsNone() {
		t.Error("Expected direction cleared on restart")
	}
	if len(gs.Effects.Particles) != 0 {
		t.Errorf("Expected death particles cleared, got %d", len(gs.Effects.Particles))
	}
	if countWaves(gs.Effects, constants.RestartShockwaveRadius) != 1 {
		t.Error("Expected restart shockwave")
	}
}

// TestStartSignalDroppedWhilePlaying verifies a stray start does nothing mid-round
func TestStartSignalDroppedWhilePlaying(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirDown, components.Cell{X: 3, Y: 3})
	ctx.State.AddFoodScore()

	ctx.Intent.RequestStart()
	sim.Step()

	if ctx.State.Score() != 10 {
		t.Errorf("Expected score kept, got %d", ctx.State.Score())
	}
	if ctx.Intent.StartPending() {
		t.Error("Expected start signal consumed")
	}
}

// TestSnakeInvariantsOverRandomPlay drives random inputs and checks growth and uniqueness
func TestSnakeInvariantsOverRandomPlay(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	gs := ctx.State
	dirs := []components.Direction{components.DirUp, components.DirDown, components.DirLeft, components.DirRight}
	inputs := rand.New(rand.NewSource(99))

	for tick := 0; tick < 2000; tick++ {
		if gs.Phase != engine.PhasePlaying {
			ctx.Intent.RequestStart()
			sim.Step()
			continue
		}
		if inputs.Intn(4) == 0 {
			ctx.Intent.SetDirection(dirs[inputs.Intn(len(dirs))])
		}

		before := gs.Snake.Len()
		score := gs.Score()
		sim.Step()
		if gs.Phase != engine.PhasePlaying {
			continue
		}

		ate := gs.Score() > score
		switch {
		case ate && gs.Snake.Len() != before+1:
			t.Fatalf("Tick %d: expected growth to %d, got %d", tick, before+1, gs.Snake.Len())
		case !ate && gs.Snake.Len() != before:
			t.Fatalf("Tick %d: expected length %d, got %d", tick, before, gs.Snake.Len())
		}

		seen := make(map[components.Cell]bool, gs.Snake.Len())
		for _, c := range gs.Snake.Body {
			if seen[c] {
				t.Fatalf("Tick %d: duplicate cell %v", tick, c)
			}
			seen[c] = true
		}
		if gs.Level() != gs.Score()/100+1 {
			t.Fatalf("Tick %d: level %d does not match score %d", tick, gs.Level(), gs.Score())
		}
	}
}

// TestEffectsAgeInIdlePhases verifies effects fade on the game over screen
func TestEffectsAgeInIdlePhases(t *testing.T) {
	sim, ctx := newTestSimulation(t)
	playing(ctx, components.DirRight, components.Cell{X: 19, Y: 0})
	sim.Step()

	gs := ctx.State
	if gs.Effects.Count() == 0 {
		t.Fatal("Expected death effects")
	}
	for i := 0; i < 200; i++ {
		sim.Step()
	}
	if gs.Effects.Count() != 0 {
		t.Errorf("Expected all effects expired, got %d", gs.Effects.Count())
	}
	if gs.Ticks != 201 {
		t.Errorf("Expected 201 ticks, got %d", gs.Ticks)
	}
}

type cue struct {
	kind string
	freq float64
	wave audio.WaveType
}

type recordingPlayer struct {
	cues []cue
}

func (p *recordingPlayer) Tone(freq float64, _ time.Duration, wave audio.WaveType) {
	p.cues = append(p.cues, cue{"tone", freq, wave})
}

func (p *recordingPlayer) MultiTone(base float64, _ time.Duration) {
	p.cues = append(p.cues, cue{"multi", base, audio.WaveSquare})
}

func (p *recordingPlayer) LowSweep() {
	p.cues = append(p.cues, cue{kind: "sweep"})
}

// TestAudioCues verifies the event to cue mapping through a full round
func TestAudioCues(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	ctx := engine.NewGameContext(engine.ViewportForCells(20, 15), testSeed, mock)
	player := &recordingPlayer{}
	sim := NewSimulation(ctx, player)

	ctx.Intent.RequestStart()
	sim.Step()
	if len(player.cues) != 1 || player.cues[0] != (cue{"multi", constants.StartCueFreq, audio.WaveSquare}) {
		t.Fatalf("Expected start cue, got %+v", player.cues)
	}

	// Eat, then die on the wall
	head := ctx.State.Snake.Head()
	ctx.State.Food = components.Food{Cell: head.Add(components.DirLeft)}
	ctx.Intent.SetDirection(components.DirLeft)
	player.cues = nil
	sim.Step()
	if len(player.cues) != 1 || player.cues[0].freq != constants.FoodCueFreq {
		t.Fatalf("Expected food cue, got %+v", player.cues)
	}

	player.cues = nil
	for ctx.State.Phase == engine.PhasePlaying {
		ctx.State.Food = components.Food{Cell: components.Cell{X: 19, Y: 14}}
		sim.Step()
	}
	if len(player.cues) != 2 {
		t.Fatalf("Expected death tone and sweep, got %+v", player.cues)
	}
	if player.cues[0] != (cue{"tone", constants.DeathCueFreq, audio.WaveSaw}) || player.cues[1].kind != "sweep" {
		t.Errorf("Expected saw tone then sweep, got %+v", player.cues)
	}

	player.cues = nil
	ctx.Intent.RequestStart()
	sim.Step()
	if len(player.cues) != 1 || player.cues[0].freq != constants.RestartCueFreq {
		t.Errorf("Expected restart cue, got %+v", player.cues)
	}
}

func TestAudioSystemNilPlayer(t *testing.T) {
	s := NewAudioSystem(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Nil player panicked: %v", r)
		}
	}()
	s.HandleEvent(engine.GameEvent{Type: engine.EventGameOver})
}

// TestIntensityScalesEffects verifies spawn counts follow the intensity
func TestIntensityScalesEffects(t *testing.T) {
	_, ctx := newTestSimulation(t)
	fxs := NewEffectsSystem(ctx)

	ctx.State.SetIntensity(1)
	fxs.HandleEvent(engine.GameEvent{Type: engine.EventGameOver})
	low := len(ctx.State.Effects.Particles)

	ctx.State.Effects.Clear()
	ctx.State.SetIntensity(5)
	fxs.HandleEvent(engine.GameEvent{Type: engine.EventGameOver})
	high := len(ctx.State.Effects.Particles)

	if low != constants.DeathExplosionPerFX || high != constants.DeathExplosionPerFX*5 {
		t.Errorf("Expected %d and %d particles, got %d and %d", constants.DeathExplosionPerFX, constants.DeathExplosionPerFX*5, low, high)
	}
	for _, p := range ctx.State.Effects.Particles {
		if p.MaxLife != constants.ParticleBaseLife+5*constants.ParticleLifePerFX {
			t.Fatalf("Expected life %d, got %d", constants.ParticleBaseLife+5*constants.ParticleLifePerFX, p.MaxLife)
		}
	}
}

// TestFoodSpawnInBounds checks many draws stay on the field
func TestFoodSpawnInBounds(t *testing.T) {
	_, ctx := newTestSimulation(t)
	food := NewFoodSystem(ctx)

	for i := 0; i < 1000; i++ {
		f := food.Spawn()
		if !ctx.Viewport.Contains(f.Cell) {
			t.Fatalf("Expected food inside the field, got %v", f.Cell)
		}
		if int(f.Color) >= components.NeonPaletteSize {
			t.Fatalf("Expected palette color, got %d", f.Color)
		}
	}
}
