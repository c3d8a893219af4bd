// Package hud provides the heads-up display: per-player score panels, the
// level timer and indicator, combo and boost readouts, and the full-screen
// overlays shown between levels.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/fetchfrenzy/internal/render"
	"chosenoffset.com/fetchfrenzy/internal/session"
	"chosenoffset.com/fetchfrenzy/internal/ui/fx"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowCombo bool    `json:"show_combo"` // Show the running combo under each score
	ShowBoost bool    `json:"show_boost"` // Show the speed boost bar
	ShowLevel bool    `json:"show_level"` // Show the level indicator
	Opacity   float64 `json:"opacity"`    // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowCombo: true,
		ShowBoost: true,
		ShowLevel: true,
		Opacity:   0.7,
	}
}

// View is the read-only session state the HUD draws from.
type View interface {
	State() session.State
	Level() int
	TimeLeft() float64
	Players() []session.PlayerView
	History() []session.LevelResult
	Leader() (slot int, tie bool)
}

var (
	gold  = color.RGBA{255, 215, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	pink  = color.RGBA{255, 105, 180, 255}
	sky   = color.RGBA{135, 206, 235, 255}
)

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	// Seconds since the HUD was created, drives pulsing and bouncing
	clock float64
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, renderer render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     renderer,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Update advances the animation clock.
func (h *HUD) Update(dt float64) {
	h.clock += dt
}

// Clock returns the animation clock in seconds.
func (h *HUD) Clock() float64 {
	return h.clock
}

// Draw renders the HUD and any overlay for the current state, laid out for
// the size of screen.
func (h *HUD) Draw(screen render.Image, v View) {
	h.SetScreenSize(screen.Size())
	switch v.State() {
	case session.StatePlaying:
		h.drawPlaying(screen, v)
	case session.StateStart:
		h.drawStart(screen)
	case session.StateLevelComplete:
		h.drawLevelComplete(screen, v)
	case session.StateWinner:
		h.drawWinner(screen, v)
	case session.StateGameOver:
		h.drawGameOver(screen, v)
	}
}

func (h *HUD) drawPlaying(screen render.Image, v View) {
	w := float64(h.screenWidth)
	panel := color.RGBA{0, 0, 0, uint8(h.config.Opacity * 255)}

	for _, p := range v.Players() {
		x := 5.0
		if p.Slot == 1 {
			x = w - 105
		}
		h.renderer.FillRect(screen, float32(x), 5, 100, 40, panel)

		label := ScoreLabel(p.Slot, p.Score)
		lw, _ := h.renderer.MeasureText(label, 18)
		tx := x + 10
		if p.Slot == 1 {
			tx = x + 90 - lw
		}
		h.drawText(screen, label, tx, 15, gold, 18)

		y := 50.0
		if h.config.ShowCombo && p.Combo > 1 {
			h.drawText(screen, fmt.Sprintf("Combo x%d", p.Multiplier), tx, y, pink, 14)
			y += 18
		}
		if h.config.ShowBoost && p.Boosted {
			h.drawBoostBar(screen, x, y, p.BoostRemaining)
		}
	}

	if h.config.ShowLevel {
		h.drawCentered(screen, fmt.Sprintf("LEVEL %d", v.Level()), 20, gold, 32)
	}

	timerY := 80.0
	h.renderer.FillRect(screen, float32(w/2-50), float32(timerY), 100, 40, panel)
	size := 20.0
	if v.TimeLeft() <= 5 {
		size = 24 * (1 + 0.2*math.Sin(h.clock*10))
	}
	h.drawCentered(screen, TimerLabel(v.TimeLeft()), timerY+20-size/2, TimerColor(v.TimeLeft()), size)
}

// drawBoostBar draws the remaining speed boost as a draining bar
func (h *HUD) drawBoostBar(screen render.Image, x, y, remaining float64) {
	const barWidth, barHeight = 90.0, 8.0
	frac := math.Max(0, math.Min(1, remaining/5))
	h.renderer.FillRect(screen, float32(x+5), float32(y), barWidth, barHeight, color.RGBA{60, 60, 20, 200})
	h.renderer.FillRect(screen, float32(x+5), float32(y), float32(barWidth*frac), barHeight, color.RGBA{255, 255, 0, 255})
}

func (h *HUD) drawStart(screen render.Image) {
	h.dim(screen, 0.5)
	cy := float64(h.screenHeight) / 2
	bounce := math.Sin(h.clock*3) * 10

	h.drawCentered(screen, "FETCH FRENZY", cy-120+bounce, gold, 60)
	h.drawCentered(screen, "Press A / Space / Enter to Start!", float64(h.screenHeight)-120, white, 28)
	h.drawCentered(screen, "Collect treats  Find cats  Grab bones  Chase squirrels", float64(h.screenHeight)-80, sky, 18)
	h.drawCentered(screen, "2 Players: gamepads, or WASD and arrow keys", float64(h.screenHeight)-50, sky, 18)
}

func (h *HUD) drawLevelComplete(screen render.Image, v View) {
	h.dim(screen, 0.3)
	h.drawConfetti(screen)

	slot, tie := v.Leader()
	h.drawCentered(screen, LevelTitle(v.Level()), 80, fx.Hue(h.clock*60), 60)
	if !tie {
		h.drawCentered(screen, WinnerLine(slot, false), 150, gold, 40)
	}

	cx, cy := float64(h.screenWidth)/2, float64(h.screenHeight)/2+50
	for _, p := range v.Players() {
		x := cx - 150
		if p.Slot == 1 {
			x = cx + 150
		}
		lead := !tie && p.Slot == slot
		jump := 0.0
		if lead {
			jump = math.Abs(math.Sin(h.clock*3)) * 30
		}
		h.drawCelebrationDog(screen, x, cy-jump, p.Slot, lead)

		c := white
		if lead {
			c = green
		}
		label := fmt.Sprintf("Player %d: %d", p.Slot+1, p.Score)
		lw, _ := h.renderer.MeasureText(label, 36)
		h.drawText(screen, label, x-lw/2, cy+100, c, 36)
	}

	h.drawCentered(screen, NextLevelPrompt(v.Level()), float64(h.screenHeight)-60, gold, 24)
}

func (h *HUD) drawWinner(screen render.Image, v View) {
	h.dim(screen, 0.7)
	h.drawConfetti(screen)
	cy := float64(h.screenHeight) / 2

	slot, tie := v.Leader()
	pulse := 1 + 0.1*math.Sin(h.clock*4)
	h.drawCentered(screen, WinnerLine(slot, tie), cy-150, gold, 60*pulse)
	h.drawCentered(screen, "Final Scores:", cy-60, white, 36)

	y := cy - 10
	for _, p := range v.Players() {
		c := white
		if !tie && p.Slot == slot {
			c = green
		}
		h.drawCentered(screen, fmt.Sprintf("Player %d: %d", p.Slot+1, p.Score), y, c, 36)
		y += 50
	}
	for _, line := range HistoryLines(v.History()) {
		h.drawCentered(screen, line, y, sky, 16)
		y += 20
	}
	h.drawCentered(screen, "Press A to play again", y+20, white, 24)
}

func (h *HUD) drawGameOver(screen render.Image, v View) {
	h.dim(screen, 0.7)
	cy := float64(h.screenHeight) / 2

	h.drawCentered(screen, "GAME OVER", cy-80, gold, 60)

	slot, tie := v.Leader()
	y := cy
	for _, p := range v.Players() {
		c := white
		if !tie && p.Slot == slot {
			c = green
		}
		h.drawCentered(screen, fmt.Sprintf("Player %d: %d", p.Slot+1, p.Score), y, c, 36)
		y += 50
	}
	c := green
	if tie {
		c = gold
	}
	h.drawCentered(screen, WinnerLine(slot, tie), y+10, c, 40)
	h.drawCentered(screen, "Press A to play again", y+70, white, 24)
}

// drawCelebrationDog draws a big happy dog face, with a party hat for the leader
func (h *HUD) drawCelebrationDog(screen render.Image, x, y float64, slot int, winner bool) {
	const size = 80.0
	body := color.RGBA{139, 69, 19, 255}
	if slot == 1 {
		body = color.RGBA{210, 105, 30, 255}
	}
	r := h.renderer
	r.FillCircle(screen, float32(x), float32(y), size/2, body)
	r.StrokeLine(screen, float32(x-22), float32(y-10), float32(x-8), float32(y-10), 3, color.Black)
	r.StrokeLine(screen, float32(x+8), float32(y-10), float32(x+22), float32(y-10), 3, color.Black)
	r.StrokeLine(screen, float32(x-20), float32(y+10), float32(x+20), float32(y+10), 3, color.Black)
	r.FillCircle(screen, float32(x+10), float32(y+18), 8, pink)

	if winner {
		top := y - size/2 - 40
		for i := 0; i < 40; i += 4 {
			half := float32(i) / 2
			r.FillRect(screen, float32(x)-half, float32(top)+float32(i), half*2, 4, fx.Hue(float64(i)*9))
		}
	}
}

// drawConfetti scatters drifting colored squares across the screen
func (h *HUD) drawConfetti(screen render.Image) {
	w, ht := float64(h.screenWidth), float64(h.screenHeight)
	t := h.clock * 10
	for i := 0; i < 50; i++ {
		fi := float64(i)
		x := math.Mod(fi*137+t*30, w)
		y := math.Mod(math.Sin(fi+t/10)*100+ht/2+fi*10, ht)
		if y < 0 {
			y += ht
		}
		c := fx.Hue(fi*7.2 + t*10)
		if i%3 == 0 {
			h.renderer.FillCircle(screen, float32(x), float32(y), 15, c)
			h.renderer.StrokeLine(screen, float32(x), float32(y+15), float32(x), float32(y+40), 1, color.RGBA{0, 0, 0, 50})
		} else {
			h.renderer.FillRect(screen, float32(x-5), float32(y-5), 10, 10, c)
		}
	}
}

func (h *HUD) dim(screen render.Image, alpha float64) {
	h.renderer.FillRect(screen, 0, 0, float32(h.screenWidth), float32(h.screenHeight), color.RGBA{0, 0, 0, uint8(alpha * 255)})
}

// drawCentered draws text horizontally centered with its top at y
func (h *HUD) drawCentered(screen render.Image, text string, y float64, clr color.Color, size float64) {
	w, _ := h.renderer.MeasureText(text, size)
	h.drawText(screen, text, (float64(h.screenWidth)-w)/2, y, clr, size)
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y float64, clr color.Color, size float64) {
	offset := math.Max(1, size/12)
	h.renderer.DrawText(screen, text, x+offset, y+offset, color.RGBA{0, 0, 0, 128}, size)
	h.renderer.DrawText(screen, text, x, y, clr, size)
}
