// Package audio synthesizes the game's sound cues procedurally with beep and
// hands them to a Sink for playback. Nothing here is loaded from disk; every
// cue is a short mix of enveloped oscillators.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	// DefaultSampleRate is the playback rate for every sink.
	DefaultSampleRate = beep.SampleRate(44100)

	// DefaultVolume is the master gain applied on top of each cue.
	DefaultVolume = 0.7
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// leg is one segment of a frequency sweep: glide linearly to Hz over dur.
type leg struct {
	hz  float64
	dur time.Duration
}

// tone is an oscillator whose frequency follows a piecewise-linear sweep.
type tone struct {
	wave  Wave
	rate  beep.SampleRate
	noise *rand.Rand

	start float64
	legs  []leg
	ends  []int // cumulative sample index at the end of each leg

	pos   int
	phase float64
}

func newTone(wave Wave, rate beep.SampleRate, noise *rand.Rand, start float64, legs ...leg) *tone {
	t := &tone{wave: wave, rate: rate, noise: noise, start: start, legs: legs}
	end := 0
	for _, l := range legs {
		end += rate.N(l.dur)
		t.ends = append(t.ends, end)
	}
	return t
}

func (t *tone) length() int {
	if len(t.ends) == 0 {
		return 0
	}
	return t.ends[len(t.ends)-1]
}

func (t *tone) freq() float64 {
	from, begin := t.start, 0
	for i, end := range t.ends {
		if t.pos < end {
			frac := float64(t.pos-begin) / float64(end-begin)
			return from + (t.legs[i].hz-from)*frac
		}
		from, begin = t.legs[i].hz, end
	}
	return from
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	total := t.length()
	for i := range samples {
		if t.pos >= total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(t.phase-0.5) - 1
		case WaveNoise:
			val = t.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq() / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	attack = min(attack, total)
	release = min(release, total-attack)
	return &envelope{streamer: s, attack: attack, release: release, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. effects.Volume works in exponent form,
// so a zero gain maps to Silent rather than log2(0).
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// Synth builds cue streamers. It is not safe for concurrent use; each
// returned streamer is independent and may be played on any goroutine.
type Synth struct {
	rate   beep.SampleRate
	volume float64
	rng    *rand.Rand
}

// NewSynth creates a synthesizer. rng picks between cue variations.
func NewSynth(rate beep.SampleRate, volume float64, rng *rand.Rand) *Synth {
	return &Synth{rate: rate, volume: math.Max(0, math.Min(1, volume)), rng: rng}
}

// Rate returns the sample rate cues are rendered at.
func (s *Synth) Rate() beep.SampleRate {
	return s.rate
}

// voice is one enveloped oscillator, silent for delay before it starts.
type voice struct {
	wave    Wave
	gain    float64
	delay   time.Duration
	attack  time.Duration
	release time.Duration
	start   float64
	legs    []leg
}

func (s *Synth) render(v voice) beep.Streamer {
	var noise *rand.Rand
	if v.wave == WaveNoise {
		noise = rand.New(rand.NewSource(s.rng.Int63()))
	}
	t := newTone(v.wave, s.rate, noise, v.start, v.legs...)
	out := newVolume(newEnvelope(t, t.length(), s.rate.N(v.attack), s.rate.N(v.release)), v.gain)
	if v.delay > 0 {
		out = beep.Seq(beep.Silence(s.rate.N(v.delay)), out)
	}
	return out
}

func (s *Synth) mix(voices ...voice) beep.Streamer {
	streams := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		streams[i] = s.render(v)
	}
	return newVolume(beep.Mix(streams...), s.volume)
}

// hold is a single leg that keeps the start frequency.
func hold(hz float64, dur time.Duration) []leg {
	return []leg{{hz: hz, dur: dur}}
}

func ms(n float64) time.Duration {
	return time.Duration(n * float64(time.Millisecond))
}
