package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueTreat Cue = iota
	CueCat
	CueBone
	CuePowerUp
	CueSquirrel
	CueCombo
	CueLevelComplete
	CueVictory
	CueBark
	CueMeow
)

func (c Cue) String() string {
	switch c {
	case CueTreat:
		return "treat"
	case CueCat:
		return "cat"
	case CueBone:
		return "bone"
	case CuePowerUp:
		return "powerup"
	case CueSquirrel:
		return "squirrel"
	case CueCombo:
		return "combo"
	case CueLevelComplete:
		return "levelcomplete"
	case CueVictory:
		return "victory"
	case CueBark:
		return "bark"
	case CueMeow:
		return "meow"
	default:
		return "unknown"
	}
}

// Cue builds the streamer for a sound effect. multiplier only affects
// CueCombo, which plays one rising note per multiplier step up to five.
// Unknown cues return nil.
func (s *Synth) Cue(c Cue, multiplier int) beep.Streamer {
	switch c {
	case CueTreat:
		return s.treat()
	case CueCat:
		return s.cat()
	case CueBone:
		return s.bone()
	case CuePowerUp:
		return s.powerUp()
	case CueSquirrel:
		return s.squirrel()
	case CueCombo:
		return s.combo(multiplier)
	case CueLevelComplete:
		return s.levelComplete()
	case CueVictory:
		return s.victory()
	case CueBark:
		return s.bark()
	case CueMeow:
		return s.meow()
	default:
		return nil
	}
}

var treatChords = [][3]float64{
	{261.63, 329.63, 392.00},
	{293.66, 369.99, 440.00},
	{329.63, 415.30, 493.88},
	{392.00, 493.88, 587.33},
	{440.00, 554.37, 659.25},
}

// treat is a quick rolled major chord, slightly detuned each time.
func (s *Synth) treat() beep.Streamer {
	chord := treatChords[s.rng.Intn(len(treatChords))]
	voices := make([]voice, len(chord))
	for i, hz := range chord {
		hz *= 1 + s.rng.Float64()*0.02
		voices[i] = voice{
			wave: WaveSquare, gain: 0.25,
			delay:  ms(50 * float64(i)),
			attack: ms(10), release: ms(100),
			start: hz, legs: hold(hz, ms(200-50*float64(i))),
		}
	}
	return s.mix(voices...)
}

func (s *Synth) cat() beep.Streamer {
	switch s.rng.Intn(3) {
	case 0:
		return s.mix(voice{
			wave: WaveSine, gain: 0.4, attack: ms(50), release: ms(150),
			start: 600, legs: []leg{{1000, ms(100)}, {700, ms(200)}},
		})
	case 1:
		return s.mix(voice{
			wave: WaveSine, gain: 0.3, attack: ms(10), release: ms(50),
			start: 1200, legs: []leg{{1400, ms(75)}, {1000, ms(75)}},
		})
	default:
		return s.mix(voice{
			wave: WaveSaw, gain: 0.2, attack: ms(100), release: ms(100),
			start: 25, legs: hold(25, ms(400)),
		})
	}
}

func (s *Synth) bone() beep.Streamer {
	if s.rng.Intn(2) == 0 {
		return s.mix(voice{
			wave: WaveNoise, gain: 0.3, attack: ms(1), release: ms(90),
			legs: hold(0, ms(100)),
		})
	}
	return s.mix(
		voice{wave: WaveSquare, gain: 0.3, attack: ms(1), release: ms(40), start: 200, legs: []leg{{50, ms(50)}}},
		voice{wave: WaveSine, gain: 0.3, attack: ms(1), release: ms(40), start: 100, legs: []leg{{25, ms(50)}}},
	)
}

// powerUp is a rising two-oscillator sweep, detuned by half a hertz.
func (s *Synth) powerUp() beep.Streamer {
	sweep := func(offset float64) []leg {
		return []leg{
			{400 + offset, ms(240)},
			{800 + offset, ms(240)},
			{800 + offset, ms(160)},
			{1600 + offset, ms(160)},
		}
	}
	return s.mix(
		voice{wave: WaveSaw, gain: 0.2, attack: ms(20), release: ms(150), start: 100, legs: sweep(0)},
		voice{wave: WaveSaw, gain: 0.2, attack: ms(20), release: ms(150), start: 100.5, legs: sweep(0.5)},
	)
}

func (s *Synth) squirrel() beep.Streamer {
	if s.rng.Intn(2) == 0 {
		voices := make([]voice, 5)
		for i := range voices {
			hz := 1000 + s.rng.Float64()*1000
			voices[i] = voice{
				wave: WaveSquare, gain: 0.2,
				delay:  ms(50 * float64(i)),
				attack: ms(10), release: ms(30),
				start: hz, legs: hold(hz, ms(40)),
			}
		}
		return s.mix(voices...)
	}
	return s.mix(voice{
		wave: WaveSine, gain: 0.3, attack: ms(10), release: ms(100),
		start: 1500, legs: []leg{{3000, ms(50)}, {2000, ms(150)}},
	})
}

// combo climbs a ladder of notes 20% apart, one per multiplier step.
func (s *Synth) combo(multiplier int) beep.Streamer {
	steps := max(1, min(multiplier, 5))
	voices := make([]voice, steps)
	for i := range voices {
		hz := 300 * math.Pow(1.2, float64(i))
		voices[i] = voice{
			wave: WaveTriangle, gain: 0.3,
			delay:  ms(80 * float64(i)),
			attack: ms(10), release: ms(20),
			start: hz, legs: hold(hz, ms(150)),
		}
	}
	return s.mix(voices...)
}

func (s *Synth) levelComplete() beep.Streamer {
	notes := []float64{261.63, 329.63, 392.00, 523.25}
	var voices []voice
	for i, hz := range notes {
		delay := ms(100 * float64(i))
		voices = append(voices,
			voice{wave: WaveSine, gain: 0.5, delay: delay, attack: ms(10), release: ms(80), start: hz, legs: hold(hz, ms(150))},
			voice{wave: WaveTriangle, gain: 0.1, delay: delay, attack: ms(10), release: ms(140), start: hz * 2, legs: hold(hz*2, ms(150))},
		)
	}
	return s.mix(voices...)
}

var fanfare = []struct {
	hz         float64
	at, length float64 // milliseconds
}{
	{523.25, 0, 200},
	{523.25, 200, 200},
	{523.25, 400, 200},
	{523.25, 600, 400},
	{415.30, 1000, 200},
	{466.16, 1200, 200},
	{523.25, 1400, 400},
	{466.16, 1800, 200},
	{523.25, 2000, 600},
}

func (s *Synth) victory() beep.Streamer {
	var voices []voice
	for _, n := range fanfare {
		voices = append(voices,
			voice{wave: WaveSquare, gain: 0.25, delay: ms(n.at), attack: ms(10), release: ms(50), start: n.hz, legs: hold(n.hz, ms(n.length))},
			voice{wave: WaveTriangle, gain: 0.1, delay: ms(n.at), attack: ms(10), release: ms(50), start: n.hz * 1.5, legs: hold(n.hz*1.5, ms(n.length))},
		)
	}
	return s.mix(voices...)
}

func (s *Synth) bark() beep.Streamer {
	switch s.rng.Intn(3) {
	case 0:
		return s.mix(
			voice{wave: WaveSaw, gain: 0.4, attack: ms(5), release: ms(150), start: 200, legs: []leg{{100, ms(100)}, {100, ms(150)}}},
			voice{wave: WaveSine, gain: 0.3, attack: ms(5), release: ms(150), start: 100, legs: []leg{{50, ms(100)}, {50, ms(150)}}},
		)
	case 1:
		var voices []voice
		for b := 0; b < 2; b++ {
			delay := ms(150 * float64(b))
			fb := float64(b)
			voices = append(voices,
				voice{wave: WaveSquare, gain: 0.3, delay: delay, attack: ms(5), release: ms(100), start: 300 - fb*50, legs: []leg{{150 - fb*30, ms(120)}}},
				voice{wave: WaveSaw, gain: 0.2, delay: delay, attack: ms(5), release: ms(100), start: 150 - fb*25, legs: []leg{{75 - fb*15, ms(120)}}},
			)
		}
		return s.mix(voices...)
	default:
		return s.mix(voice{
			wave: WaveSquare, gain: 0.3, attack: ms(5), release: ms(80),
			start: 600, legs: []leg{{300, ms(100)}},
		})
	}
}

func (s *Synth) meow() beep.Streamer {
	switch s.rng.Intn(3) {
	case 0:
		return s.mix(
			voice{wave: WaveSine, gain: 0.4, attack: ms(50), release: ms(200), start: 400, legs: []leg{{600, ms(100)}, {500, ms(100)}, {350, ms(300)}}},
			voice{wave: WaveSine, gain: 0.15, attack: ms(50), release: ms(200), start: 800, legs: []leg{{1200, ms(100)}, {1000, ms(100)}, {700, ms(300)}}},
		)
	case 1:
		return s.mix(voice{
			wave: WaveSine, gain: 0.3, attack: ms(10), release: ms(60),
			start: 700, legs: []leg{{1000, ms(50)}, {600, ms(100)}},
		})
	default:
		var voices []voice
		for i := 0; i < 3; i++ {
			fi := float64(i)
			voices = append(voices, voice{
				wave: WaveSine, gain: 0.3,
				delay:  ms(150 * fi),
				attack: ms(10), release: ms(50),
				start: 500 + fi*100, legs: []leg{{800 + fi*100, ms(50)}, {400 + fi*50, ms(70)}},
			})
		}
		return s.mix(voices...)
	}
}
