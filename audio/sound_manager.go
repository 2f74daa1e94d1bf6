package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/neon-snake/constants"
)

// SoundManager plays procedural cues through the speaker
// Every cue is a one-shot streamer added to a shared mixer; calls before a
// successful Initialize, or after Cleanup, are silently skipped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager; a nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrapf(err, "initialize speaker at %d Hz", sm.cfg.SampleRate)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.WithFields(log.Fields{"rate": sm.cfg.SampleRate, "volume": sm.cfg.MasterVolume}).Info("audio initialized")
	return nil
}

// IsInitialized reports whether cues reach the speaker
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the speaker open for the process; an empty mixer leaves it silent
	sm.initialized = false
}

// Tone plays a single enveloped tone
func (sm *SoundManager) Tone(freq float64, duration time.Duration, wave WaveType) {
	sm.play(func(cfg *AudioConfig) beep.Streamer {
		return CreateTone(cfg, freq, duration, wave)
	})
}

// MultiTone plays three staggered square notes at base, 1.5x and 2x
func (sm *SoundManager) MultiTone(base float64, duration time.Duration) {
	sm.play(func(cfg *AudioConfig) beep.Streamer {
		return CreateMultiTone(cfg, base, duration)
	})
}

// LowSweep plays the falling filtered rumble
func (sm *SoundManager) LowSweep() {
	sm.play(CreateLowSweep)
}

func (sm *SoundManager) play(build func(cfg *AudioConfig) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := build(sm.cfg)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
