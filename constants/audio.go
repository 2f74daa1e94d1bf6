package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Tone Shaping
const (
	// ToneGain is the peak gain of a single tone
	ToneGain = 0.1

	// ToneAttack is the ramp-in of every tone to avoid clicks
	ToneAttack = 5 * time.Millisecond

	// MultiToneStagger is the delay between consecutive notes of a multi-tone cue
	MultiToneStagger = 50 * time.Millisecond

	// MultiToneNoteFraction is each note's share of the cue duration
	MultiToneNoteFraction = 0.3
)

// Low Sweep (death rumble)
const (
	LowSweepDuration    = 500 * time.Millisecond
	LowSweepStartFreq   = 400.0
	LowSweepEndFreq     = 100.0
	LowSweepStartCutoff = 2000.0
	LowSweepEndCutoff   = 200.0
	LowSweepStartGain   = 0.05
	LowSweepEndGain     = 0.01
)

// Cue Table
const (
	StartCueFreq       = 440.0
	StartCueDuration   = 200 * time.Millisecond
	RestartCueFreq     = 880.0
	RestartCueDuration = 200 * time.Millisecond
	FoodCueFreq        = 660.0
	FoodCueDuration    = 150 * time.Millisecond
	LevelUpCueFreq     = 880.0
	LevelUpCueDuration = 300 * time.Millisecond
	DeathCueFreq       = 200.0
	DeathCueDuration   = 500 * time.Millisecond
)
