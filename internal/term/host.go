// Package term is the terminal host. It runs the same session as the desktop
// build, projecting the arena onto character cells with tcell.
package term

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/fetchfrenzy/internal/audio"
	"chosenoffset.com/fetchfrenzy/internal/session"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
	"chosenoffset.com/fetchfrenzy/internal/ui/fx"
)

// frame is the tick interval, about 60 per second.
const frame = 16 * time.Millisecond

var errQuit = errors.New("quit requested")

// Host drives a session on a terminal screen.
type Host struct {
	screen  tcell.Screen
	session *session.Session
	hooks   *audio.Hooks
	fx      *fx.Layer
	keys    *holds

	status     string
	statusLeft float64
}

// NewHost creates a host for an initialized screen. hooks may be nil.
func NewHost(screen tcell.Screen, cfg *simulation.Config, rng *rand.Rand, hooks *audio.Hooks) *Host {
	return &Host{
		screen:  screen,
		session: session.New(cfg, rng),
		hooks:   hooks,
		fx:      fx.NewLayer(rand.New(rand.NewSource(rng.Int63()))),
		keys:    newHolds(simulation.PlayerCount),
	}
}

// Session returns the hosted session.
func (h *Host) Session() *session.Session {
	return h.session
}

// Run polls terminal events and ticks the session until ctx is cancelled or
// the player quits. Quitting is not an error.
func (h *Host) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	eg.Go(func() error {
		for {
			ev := h.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		// Wake the poller so it sees the cancelled context
		defer func() { _ = h.screen.PostEvent(tcell.NewEventInterrupt(nil)) }()

		ticker := time.NewTicker(frame)
		defer ticker.Stop()
		last := time.Now()

		h.Draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if h.HandleEvent(ev) {
					return errQuit
				}
			case now := <-ticker.C:
				h.Step(now.Sub(last).Seconds())
				last = now
				h.Draw()
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// HandleEvent applies one terminal event and reports whether the player
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEscape:
			if h.session.Abandon() {
				log.Println("Game abandoned")
			}
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'm', 'M':
				h.toggleMute()
				return false
			}
		}
		if b, ok := lookup(ev); ok {
			h.keys.press(b)
		}
	}
	return false
}

// Step advances the session and effects by dt seconds.
func (h *Host) Step(dt float64) {
	h.keys.advance(dt)
	if h.statusLeft > 0 {
		h.statusLeft -= dt
	}

	h.session.Tick(dt, h.keys.inputs())

	events := h.session.Events()
	players := h.session.Players()
	h.hooks.Handle(events)
	h.fx.Handle(events, players)
	h.fx.Update(dt, h.session.State(), players, h.session.Arena())
}

func (h *Host) toggleMute() {
	if h.hooks == nil {
		h.say("No sound device")
		return
	}
	muted := !h.hooks.Muted()
	h.hooks.SetMuted(muted)
	if muted {
		h.say("Sound off")
	} else {
		h.say("Sound on")
	}
}

func (h *Host) say(text string) {
	h.status = text
	h.statusLeft = 3
	log.Printf("Message: %s", text)
}
