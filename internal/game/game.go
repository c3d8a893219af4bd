// Package game is the desktop host. It owns the session and glues it to
// controllers, sound, effects and the HUD behind the render interfaces.
package game

import (
	"log"
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/audio"
	"chosenoffset.com/fetchfrenzy/internal/input"
	"chosenoffset.com/fetchfrenzy/internal/render"
	"chosenoffset.com/fetchfrenzy/internal/session"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
	"chosenoffset.com/fetchfrenzy/internal/ui/fx"
	"chosenoffset.com/fetchfrenzy/internal/ui/hud"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Session  *session.Session
	Renderer render.Renderer
	InputMgr render.InputManager
	Engine   render.Engine

	// Controller to player slot assignment
	Slots      *input.Slots[render.GamepadID]
	KeySchemes []KeyScheme
	Keyboard   bool

	// Presentation, never feeds back into the session
	Audio   *audio.Hooks
	FX      *fx.Layer
	GameHUD *hud.HUD

	// UI state
	Messages []Message
}

// New creates a game with a fresh session sized to the screen. hooks may be
// nil to run silently; engine may be nil when fullscreen toggling is unavailable.
func New(cfg *simulation.Config, rng *rand.Rand, r render.Renderer, in render.InputManager, engine render.Engine, hooks *audio.Hooks) *Game {
	s := session.New(cfg, rng)
	arena := s.Arena()
	w, h := int(arena.Width), int(arena.Height)

	return &Game{
		ScreenWidth:  w,
		ScreenHeight: h,
		Session:      s,
		Renderer:     r,
		InputMgr:     in,
		Engine:       engine,
		Slots:        input.NewSlots[render.GamepadID](simulation.PlayerCount),
		KeySchemes:   DefaultKeySchemes,
		Keyboard:     cfg.Input.KeyboardFallback,
		Audio:        hooks,
		FX:           fx.NewLayer(rand.New(rand.NewSource(rng.Int63()))),
		GameHUD:      hud.New(hud.DefaultConfig(), r, w, h),
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0

	g.updateMessages(dt)
	g.pollGamepads()
	g.handleHotkeys()

	g.Session.Tick(dt, g.readInputs())

	events := g.Session.Events()
	players := g.Session.Players()
	g.Audio.Handle(events)
	g.FX.Handle(events, players)
	g.FX.Update(dt, g.Session.State(), players, g.Session.Arena())
	g.GameHUD.Update(dt)

	return nil
}

// Layout resizes the arena to the window so the play field always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.Session.Resize(outsideWidth, outsideHeight)
		arena := g.Session.Arena()
		g.ScreenWidth, g.ScreenHeight = int(arena.Width), int(arena.Height)
		g.GameHUD.SetScreenSize(g.ScreenWidth, g.ScreenHeight)
	}
	return g.ScreenWidth, g.ScreenHeight
}

// pollGamepads assigns newly connected pads to free slots and releases the
// slots of pads that went away.
func (g *Game) pollGamepads() {
	for _, id := range g.InputMgr.JustConnectedGamepads() {
		if slot, ok := g.Slots.Connect(id); ok {
			g.ShowMessage(playerName(slot) + " controller connected")
		}
	}
	for slot := 0; slot < g.Slots.Len(); slot++ {
		id, ok := g.Slots.Controller(slot)
		if ok && g.InputMgr.IsGamepadJustDisconnected(id) {
			g.Slots.Disconnect(id)
			g.ShowMessage(playerName(slot) + " controller disconnected")
		}
	}
}

// readInputs builds one Input per slot from its gamepad, or from its keyboard
// scheme when the slot has no pad and the fallback is enabled.
func (g *Game) readInputs() []session.Input {
	inputs := make([]session.Input, g.Slots.Len())
	for slot := range inputs {
		if id, ok := g.Slots.Controller(slot); ok {
			inputs[slot] = session.Input{
				Connected: true,
				X:         g.InputMgr.GamepadAxis(id, render.AxisLeftX),
				Y:         g.InputMgr.GamepadAxis(id, render.AxisLeftY),
				Confirm:   g.InputMgr.IsGamepadConfirmPressed(id),
			}
			continue
		}
		if !g.Keyboard || slot >= len(g.KeySchemes) {
			continue
		}
		k := g.KeySchemes[slot]
		x, y := input.KeyAxes(
			g.InputMgr.IsKeyPressed(k.Up),
			g.InputMgr.IsKeyPressed(k.Down),
			g.InputMgr.IsKeyPressed(k.Left),
			g.InputMgr.IsKeyPressed(k.Right),
		)
		inputs[slot] = session.Input{
			Connected: true,
			X:         x,
			Y:         y,
			Confirm:   g.InputMgr.IsKeyPressed(k.Confirm),
		}
	}
	return inputs
}

func (g *Game) handleHotkeys() {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) && g.Session.Abandon() {
		log.Println("Game abandoned")
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyM) && g.Audio != nil {
		muted := !g.Audio.Muted()
		g.Audio.SetMuted(muted)
		if muted {
			g.ShowMessage("Sound off")
		} else {
			g.ShowMessage("Sound on")
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyF) && g.Engine != nil {
		g.Engine.SetFullscreen(!g.Engine.IsFullscreen())
	}
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	log.Printf("Message: %s", text)
}

func playerName(slot int) string {
	if slot == 1 {
		return "Player 2"
	}
	return "Player 1"
}
