package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/neon-snake/constants"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "NEON_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "NEON_SNAKE_MASTER_VOLUME"
	EnvSampleRate   = "NEON_SNAKE_SAMPLE_RATE"
)

// AudioConfig holds the sound output settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultAudioConfig returns audio enabled at full volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.AudioSampleRate,
	}
}

// LoadAudioConfig applies environment overrides on top of base
// A nil base starts from DefaultAudioConfig; unparsable values are ignored
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		c := *base
		cfg = &c
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
