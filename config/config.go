// Package config loads user settings from an optional TOML file and the environment.
package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/constants"
)

// Environment variables read by Load
const (
	EnvSeed      = "NEON_SNAKE_SEED"
	EnvIntensity = "NEON_SNAKE_INTENSITY"
)

// Config holds user settings
type Config struct {
	// Seed for food placement and effects; 0 picks one from the clock at startup
	Seed uint64 `toml:"seed"`

	// Intensity is the initial particle intensity
	Intensity int `toml:"intensity"`

	// MaxFrameDelta caps the game time credited per frame; 0 disables the cap
	MaxFrameDelta time.Duration `toml:"max_frame_delta"`

	// Keys maps action names to key names, overriding the default bindings
	Keys map[string][]string `toml:"keys"`

	Audio AudioSection `toml:"audio"`
}

// AudioSection is the [audio] table
type AudioSection struct {
	Enabled    bool `toml:"enabled"`
	Volume     int  `toml:"volume"` // 0-100
	SampleRate int  `toml:"sample_rate"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Intensity: constants.DefaultParticleIntensity,
		Keys:      map[string][]string{},
		Audio: AudioSection{
			Enabled:    true,
			Volume:     100,
			SampleRate: constants.AudioSampleRate,
		},
	}
}

// Load reads the TOML file at path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := cfg.decode(string(data)); err != nil {
			return nil, errors.Wrapf(err, "config %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates, without environment overrides
func Parse(data string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvIntensity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvIntensity)
		}
		c.Intensity = n
	}
	return nil
}

// Validate rejects out-of-range values
func (c *Config) Validate() error {
	if c.Intensity < constants.MinParticleIntensity || c.Intensity > constants.MaxParticleIntensity {
		return errors.Errorf("intensity %d out of range [%d, %d]",
			c.Intensity, constants.MinParticleIntensity, constants.MaxParticleIntensity)
	}
	if c.MaxFrameDelta < 0 {
		return errors.Errorf("max_frame_delta %v must not be negative", c.MaxFrameDelta)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return errors.Errorf("audio.volume %d out of range [0, 100]", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Errorf("audio.sample_rate %d must be positive", c.Audio.SampleRate)
	}
	return nil
}

// AudioConfig converts the [audio] table; audio environment overrides are applied on top
func (c *Config) AudioConfig() *audio.AudioConfig {
	return audio.LoadAudioConfig(&audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		MasterVolume: float64(c.Audio.Volume) / 100.0,
		SampleRate:   c.Audio.SampleRate,
	})
}
