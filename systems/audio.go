package systems

import (
	"time"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

// SoundPlayer is the procedural audio collaborator
// audio.SoundManager satisfies it
type SoundPlayer interface {
	Tone(freq float64, duration time.Duration, wave audio.WaveType)
	MultiTone(base float64, duration time.Duration)
	LowSweep()
}

// AudioSystem maps gameplay events to sound cues
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	player SoundPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventGameStarted,
		engine.EventGameRestarted,
		engine.EventFoodEaten,
		engine.EventLevelUp,
		engine.EventGameOver,
	}
}

// HandleEvent plays the cue for an event
func (s *AudioSystem) HandleEvent(event engine.GameEvent) {
	if s.player == nil {
		return
	}

	switch event.Type {
	case engine.EventGameStarted:
		s.player.MultiTone(constants.StartCueFreq, constants.StartCueDuration)
	case engine.EventGameRestarted:
		s.player.MultiTone(constants.RestartCueFreq, constants.RestartCueDuration)
	case engine.EventFoodEaten:
		s.player.MultiTone(constants.FoodCueFreq, constants.FoodCueDuration)
	case engine.EventLevelUp:
		s.player.MultiTone(constants.LevelUpCueFreq, constants.LevelUpCueDuration)
	case engine.EventGameOver:
		s.player.Tone(constants.DeathCueFreq, constants.DeathCueDuration, audio.WaveSaw)
		s.player.LowSweep()
	}
}
