package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}
	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected default sample rate 48000, got %d", cfg.SampleRate)
	}
}

func clearAudioEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSampleRate, "")
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	clearAudioEnv(t)

	cfg := LoadAudioConfig(nil)
	def := DefaultAudioConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

// TestLoadAudioConfigKeepsBase verifies env overrides apply on top of a base without mutating it
func TestLoadAudioConfigKeepsBase(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvMasterVolume, "25")

	base := &AudioConfig{Enabled: false, MasterVolume: 0.8, SampleRate: 22050}
	cfg := LoadAudioConfig(base)

	if cfg.Enabled || cfg.SampleRate != 22050 {
		t.Errorf("Expected base values kept, got %+v", cfg)
	}
	if cfg.MasterVolume != 0.25 {
		t.Errorf("Expected env volume 0.25, got %f", cfg.MasterVolume)
	}
	if base.MasterVolume != 0.8 {
		t.Errorf("Expected base untouched, got %f", base.MasterVolume)
	}
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvAudioEnabled, tc.value)
			cfg := LoadAudioConfig(nil)

			if cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume verifies loading and clamping master volume
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"100", 1.0},
		{"75", 0.75},
		{"-50", 0.0},
		{"150", 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvMasterVolume, tc.value)
			cfg := LoadAudioConfig(nil)

			if cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigSampleRate verifies loading sample rate
func TestLoadAudioConfigSampleRate(t *testing.T) {
	defaultRate := DefaultAudioConfig().SampleRate

	testCases := []struct {
		value    string
		expected int
	}{
		{"22050", 22050},
		{"44100", 44100},
		{"invalid", defaultRate},
		{"-1000", defaultRate},
		{"0", defaultRate},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvSampleRate, tc.value)
			cfg := LoadAudioConfig(nil)

			if cfg.SampleRate != tc.expected {
				t.Errorf("Expected SampleRate=%d for value %s, got %d", tc.expected, tc.value, cfg.SampleRate)
			}
		})
	}
}
