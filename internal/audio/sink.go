package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// maxCueLength bounds how much of a streamer Encode renders.
const maxCueLength = 5 * time.Second

// Sink plays finished cue streamers.
type Sink interface {
	Play(s beep.Streamer)
}

// Encode renders a streamer into 16-bit little-endian stereo PCM, the format
// Ebiten's audio context consumes. Rendering stops when the streamer drains
// or after five seconds, whichever comes first.
func Encode(s beep.Streamer, rate beep.SampleRate) []byte {
	limited := beep.Take(rate.N(maxCueLength), s)

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := limited.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				x := int16(v * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// EbitenSink plays cues through Ebiten's audio context. Each cue is rendered
// up front and handed to a fresh player.
type EbitenSink struct {
	ctx  *ebaudio.Context
	rate beep.SampleRate
}

// NewEbitenSink returns a sink on the process audio context, creating the
// context at rate if none exists yet.
func NewEbitenSink(rate beep.SampleRate) *EbitenSink {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(rate))
	}
	return &EbitenSink{ctx: ctx, rate: beep.SampleRate(ctx.SampleRate())}
}

// Play renders s and starts it immediately.
func (e *EbitenSink) Play(s beep.Streamer) {
	e.ctx.NewPlayerFromBytes(Encode(s, e.rate)).Play()
}

// SpeakerSink plays cues through beep's speaker, mixing overlapping cues.
type SpeakerSink struct {
	mixer *beep.Mixer
}

// NewSpeakerSink opens the default output device at rate.
func NewSpeakerSink(rate beep.SampleRate) (*SpeakerSink, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to open speaker: %w", err)
	}
	sink := &SpeakerSink{mixer: &beep.Mixer{}}
	speaker.Play(sink.mixer)
	return sink, nil
}

// Play adds s to the running mix.
func (s *SpeakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (s *SpeakerSink) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
