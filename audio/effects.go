package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/neon-snake/constants"
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample returns the wave value at phase in [0, 1)
func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return 0
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sweep is a saw wave gliding exponentially between two frequencies through a
// one-pole low-pass whose cutoff glides the same way, with an exponential gain fade
type sweep struct {
	rate     beep.SampleRate
	position int
	total    int
	phase    float64
	lowpass  float64

	startFreq, endFreq     float64
	startCutoff, endCutoff float64
	startGain, endGain     float64
}

// NewSweep creates a filtered saw sweep
func NewSweep(duration time.Duration, startFreq, endFreq, startCutoff, endCutoff, startGain, endGain float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:        rate,
		total:       rate.N(duration),
		startFreq:   startFreq,
		endFreq:     endFreq,
		startCutoff: startCutoff,
		endCutoff:   endCutoff,
		startGain:   startGain,
		endGain:     endGain,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		t := float64(s.position) / float64(s.total)
		freq := expGlide(s.startFreq, s.endFreq, t)
		cutoff := expGlide(s.startCutoff, s.endCutoff, t)
		gain := expGlide(s.startGain, s.endGain, t)

		raw := waveSample(WaveSaw, s.phase)
		alpha := 1 - math.Exp(-2*math.Pi*cutoff/float64(s.rate))
		s.lowpass += alpha * (raw - s.lowpass)

		val := s.lowpass * gain
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// expGlide interpolates exponentially from a to b at t in [0, 1]
// Falls back to linear when either end is not positive
func expGlide(a, b, t float64) float64 {
	if a <= 0 || b <= 0 {
		return a + (b-a)*t
	}
	return a * math.Pow(b/a, t)
}

// Cue generators

// CreateTone generates a single enveloped tone peaking at the tone gain
func CreateTone(cfg *AudioConfig, freq float64, duration time.Duration, wave WaveType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	attack := constants.ToneAttack
	if attack > duration {
		attack = duration
	}
	osc := NewOscillator(freq, duration, wave, rate)
	shaped := NewEnvelope(osc, duration, attack, duration-attack, rate)

	return newVolume(shaped, constants.ToneGain*cfg.MasterVolume)
}

// MultiToneIntervals returns the frequency ratios of a multi-tone cue
func MultiToneIntervals() []float64 {
	return []float64{1.0, 1.5, 2.0}
}

// MultiToneNoteDuration returns the length of each note of a multi-tone cue
func MultiToneNoteDuration(duration time.Duration) time.Duration {
	return time.Duration(float64(duration) * constants.MultiToneNoteFraction)
}

// MultiToneLength returns the total length of a multi-tone cue
func MultiToneLength(duration time.Duration) time.Duration {
	notes := len(MultiToneIntervals())
	return time.Duration(notes-1)*constants.MultiToneStagger + MultiToneNoteDuration(duration)
}

// CreateMultiTone generates a rising arpeggio of square notes, each starting one stagger after the previous
func CreateMultiTone(cfg *AudioConfig, base float64, duration time.Duration) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noteDur := MultiToneNoteDuration(duration)

	intervals := MultiToneIntervals()
	voices := make([]beep.Streamer, 0, len(intervals))
	for i, ratio := range intervals {
		note := CreateTone(cfg, base*ratio, noteDur, WaveSquare)
		delay := rate.N(time.Duration(i) * constants.MultiToneStagger)
		if delay > 0 {
			note = beep.Seq(beep.Silence(delay), note)
		}
		voices = append(voices, note)
	}
	return beep.Mix(voices...)
}

// CreateLowSweep generates the falling filtered rumble used on death
func CreateLowSweep(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	s := NewSweep(
		constants.LowSweepDuration,
		constants.LowSweepStartFreq, constants.LowSweepEndFreq,
		constants.LowSweepStartCutoff, constants.LowSweepEndCutoff,
		constants.LowSweepStartGain, constants.LowSweepEndGain,
		rate,
	)
	return newVolume(s, cfg.MasterVolume)
}
