package audio

import (
	"log"

	"chosenoffset.com/fetchfrenzy/internal/entity"
	"chosenoffset.com/fetchfrenzy/internal/session"
)

// Request is one cue to play with its combo multiplier.
type Request struct {
	Cue        Cue
	Multiplier int
}

// Requests maps a session event to the cues it triggers. A scored collection
// plays the item's cue, followed by the combo cue when a multiplier applied.
func Requests(e session.Event) []Request {
	switch e.Type {
	case session.EventCollected:
		var reqs []Request
		switch e.Kind {
		case entity.KindTreat:
			reqs = append(reqs, Request{Cue: CueTreat})
		case entity.KindCat:
			reqs = append(reqs, Request{Cue: CueCat})
		case entity.KindBone:
			reqs = append(reqs, Request{Cue: CueBone})
		case entity.KindSquirrel:
			reqs = append(reqs, Request{Cue: CueSquirrel})
		}
		if e.Multiplier > 1 {
			reqs = append(reqs, Request{Cue: CueCombo, Multiplier: e.Multiplier})
		}
		return reqs
	case session.EventSpeedBoost:
		return []Request{{Cue: CuePowerUp}}
	case session.EventBark:
		return []Request{{Cue: CueBark}}
	case session.EventMeow:
		return []Request{{Cue: CueMeow}}
	case session.EventStateChanged:
		switch e.To {
		case session.StateLevelComplete:
			return []Request{{Cue: CueLevelComplete}}
		case session.StateWinner:
			return []Request{{Cue: CueVictory}}
		}
	}
	return nil
}

// Hooks turns session events into sound. Playback is best effort: a failing
// sink is logged and never reaches the caller. A nil *Hooks is silent.
type Hooks struct {
	synth *Synth
	sink  Sink
	muted bool
}

// NewHooks creates event hooks that synthesize with synth and play on sink.
func NewHooks(synth *Synth, sink Sink) *Hooks {
	return &Hooks{synth: synth, sink: sink}
}

// SetMuted enables or disables playback.
func (h *Hooks) SetMuted(muted bool) {
	h.muted = muted
}

// Muted reports whether playback is disabled.
func (h *Hooks) Muted() bool {
	return h.muted
}

// Handle plays the cues for a batch of events.
func (h *Hooks) Handle(events []session.Event) {
	if h == nil || h.muted {
		return
	}
	for _, e := range events {
		for _, req := range Requests(e) {
			h.Play(req.Cue, req.Multiplier)
		}
	}
}

// Play synthesizes and plays one cue.
func (h *Hooks) Play(c Cue, multiplier int) {
	if h == nil || h.muted || h.sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Sound cue %s failed: %v", c, r)
		}
	}()

	s := h.synth.Cue(c, multiplier)
	if s == nil {
		return
	}
	h.sink.Play(s)
}
