package engine

import (
	"math"

	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/constants"
)

// Phase is the top-level game state machine position
//
//	Start    --(start signal)----------> Playing
//	Playing  --(wall or self collision)-> GameOver
//	GameOver --(start signal)----------> Playing (full reset)
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the name of the phase for debugging
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// LevelForScore derives the level from a score: floor(score/100) + 1
func LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return score/constants.PointsPerLevel + 1
}

// SpeedForLevel derives the speed multiplier from a level: min(5, 1 + level*0.5)
func SpeedForLevel(level int) float64 {
	return math.Min(constants.MaxSpeed, constants.BaseSpeed+float64(level)*constants.SpeedPerLevel)
}

// GameState is the single aggregate holding all simulation state
// Mutated only by systems during a step; collaborators read it through Snapshot
type GameState struct {
	Phase     Phase
	Snake     components.Snake
	Direction components.Direction
	Food      components.Food
	Effects   *components.Effects

	// FinalScore is recorded on the transition to GameOver
	FinalScore int

	// Intensity scales effect counts, sizes and lifetimes
	Intensity int

	// Ticks counts simulation steps since launch
	Ticks uint64

	// Score, level and speed move together; see AddFoodScore and ResetScore
	score int
	level int
	speed float64
}

// NewGameState creates the idle Start state with a one-segment snake at head
func NewGameState(head components.Cell) *GameState {
	gs := &GameState{
		Phase:     PhaseStart,
		Snake:     components.NewSnake(head),
		Direction: components.DirNone,
		Effects: components.NewEffects(
			constants.ParticleDamping,
			constants.SparkDamping,
			constants.MaxEffectsPerKind,
		),
		Intensity: constants.DefaultParticleIntensity,
	}
	gs.ResetScore()
	return gs
}

// Score returns the current score
func (gs *GameState) Score() int { return gs.score }

// Level returns the current level
func (gs *GameState) Level() int { return gs.level }

// Speed returns the current speed multiplier
func (gs *GameState) Speed() float64 { return gs.speed }

// AddFoodScore credits one food pickup: score grows by 10 x level, then level and speed
// are recomputed from the new score. Returns true when the level rose.
func (gs *GameState) AddFoodScore() bool {
	oldLevel := gs.level
	gs.score += constants.PointsPerFood * gs.level
	gs.level = LevelForScore(gs.score)
	gs.speed = SpeedForLevel(gs.level)
	return gs.level > oldLevel
}

// ResetScore returns score, level and speed to their initial values
// Initial speed is the base multiplier; the level curve applies from the first pickup
func (gs *GameState) ResetScore() {
	gs.score = 0
	gs.level = 1
	gs.speed = constants.BaseSpeed
}

// SetIntensity clamps and stores the particle intensity
func (gs *GameState) SetIntensity(n int) {
	gs.Intensity = clampInt(n, constants.MinParticleIntensity, constants.MaxParticleIntensity)
}

// AdjustIntensity shifts the particle intensity by delta within bounds
func (gs *GameState) AdjustIntensity(delta int) int {
	gs.SetIntensity(gs.Intensity + delta)
	return gs.Intensity
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
