package audio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"chosenoffset.com/fetchfrenzy/internal/entity"
	"chosenoffset.com/fetchfrenzy/internal/session"
)

var allCues = []Cue{
	CueTreat, CueCat, CueBone, CuePowerUp, CueSquirrel,
	CueCombo, CueLevelComplete, CueVictory, CueBark, CueMeow,
}

func TestToneSweepsAndDrains(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := newTone(WaveSine, rate, nil, 100, leg{hz: 300, dur: 100 * time.Millisecond})

	if tn.length() != 100 {
		t.Fatalf("Expected 100 samples, got %d", tn.length())
	}
	if f := tn.freq(); f != 100 {
		t.Errorf("Expected sweep to begin at 100Hz, got %v", f)
	}
	tn.pos = 50
	if f := tn.freq(); f != 200 {
		t.Errorf("Expected 200Hz halfway through the sweep, got %v", f)
	}
	tn.pos = 0

	buf := make([][2]float64, 64)
	total := 0
	for {
		n, ok := tn.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 100 {
		t.Errorf("Expected 100 samples streamed, got %d", total)
	}
}

func TestToneStaysInRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise} {
		tn := newTone(wave, rate, rand.New(rand.NewSource(1)), 440, hold(440, 50*time.Millisecond)...)
		buf := make([][2]float64, 400)
		n, _ := tn.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -1 || v > 1 || buf[i][1] != v {
				t.Fatalf("Wave %d sample %d out of range or unbalanced: %v", wave, i, buf[i])
			}
		}
	}
}

func TestEnvelopeFadesInAndOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := newTone(WaveSquare, rate, nil, 1, hold(1, 100*time.Millisecond)...)
	env := newEnvelope(tn, 100, 10, 20)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full level mid-note, got %v", buf[50][0])
	}
	if v := buf[99][0]; v <= 0 || v > 0.1 {
		t.Errorf("Expected nearly silent last sample, got %v", v)
	}
}

func TestEveryCueRendersFinitePCM(t *testing.T) {
	synth := NewSynth(beep.SampleRate(8000), DefaultVolume, rand.New(rand.NewSource(3)))

	for _, c := range allCues {
		for i := 0; i < 4; i++ {
			s := synth.Cue(c, 3)
			if s == nil {
				t.Fatalf("Cue %s returned nil", c)
			}
			pcm := Encode(s, synth.Rate())
			if len(pcm) == 0 || len(pcm)%4 != 0 {
				t.Fatalf("Cue %s rendered %d bytes, want a non-empty multiple of 4", c, len(pcm))
			}
			if limit := 4 * synth.Rate().N(maxCueLength); len(pcm) > limit {
				t.Fatalf("Cue %s rendered %d bytes, over the %d byte limit", c, len(pcm), limit)
			}
		}
	}
	if synth.Cue(Cue(99), 1) != nil {
		t.Error("Expected nil for an unknown cue")
	}
}

func TestComboCueGrowsWithMultiplier(t *testing.T) {
	synth := NewSynth(beep.SampleRate(8000), 1, rand.New(rand.NewSource(1)))

	short := len(Encode(synth.Cue(CueCombo, 2), synth.Rate()))
	long := len(Encode(synth.Cue(CueCombo, 5), synth.Rate()))
	capped := len(Encode(synth.Cue(CueCombo, 9), synth.Rate()))

	if long <= short {
		t.Errorf("Expected x5 combo longer than x2, got %d <= %d", long, short)
	}
	if capped != long {
		t.Errorf("Expected combo capped at five notes, got %d vs %d bytes", capped, long)
	}
}

func TestRequests(t *testing.T) {
	tests := []struct {
		name  string
		event session.Event
		want  []Request
	}{
		{"treat", session.Event{Type: session.EventCollected, Kind: entity.KindTreat, Multiplier: 1}, []Request{{Cue: CueTreat}}},
		{"cat combo", session.Event{Type: session.EventCollected, Kind: entity.KindCat, Multiplier: 3}, []Request{{Cue: CueCat}, {Cue: CueCombo, Multiplier: 3}}},
		{"powerup", session.Event{Type: session.EventSpeedBoost}, []Request{{Cue: CuePowerUp}}},
		{"bark", session.Event{Type: session.EventBark}, []Request{{Cue: CueBark}}},
		{"meow", session.Event{Type: session.EventMeow}, []Request{{Cue: CueMeow}}},
		{"level complete", session.Event{Type: session.EventStateChanged, To: session.StateLevelComplete}, []Request{{Cue: CueLevelComplete}}},
		{"winner", session.Event{Type: session.EventStateChanged, To: session.StateWinner}, []Request{{Cue: CueVictory}}},
		{"start", session.Event{Type: session.EventStateChanged, To: session.StatePlaying}, nil},
		{"level ended", session.Event{Type: session.EventLevelEnded}, nil},
	}
	for _, tt := range tests {
		got := Requests(tt.event)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: request %d = %+v, want %+v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

type recordingSink struct {
	played int
}

func (r *recordingSink) Play(beep.Streamer) { r.played++ }

type brokenSink struct{}

func (brokenSink) Play(beep.Streamer) { panic("device gone") }

func TestHooksPlayAndMute(t *testing.T) {
	sink := &recordingSink{}
	h := NewHooks(NewSynth(beep.SampleRate(8000), 1, rand.New(rand.NewSource(1))), sink)

	events := []session.Event{
		{Type: session.EventCollected, Kind: entity.KindBone, Multiplier: 2},
		{Type: session.EventBark},
	}
	h.Handle(events)
	if sink.played != 3 {
		t.Errorf("Expected 3 cues played, got %d", sink.played)
	}

	h.SetMuted(true)
	h.Handle(events)
	if sink.played != 3 {
		t.Errorf("Expected no cues while muted, got %d", sink.played)
	}

	var none *Hooks
	none.Handle(events)
}

func TestHooksSwallowSinkFailures(t *testing.T) {
	h := NewHooks(NewSynth(beep.SampleRate(8000), 1, rand.New(rand.NewSource(1))), brokenSink{})

	h.Handle([]session.Event{{Type: session.EventMeow}, {Type: session.EventSpeedBoost}})
}
