// Package fx holds the purely cosmetic effects layered over the arena:
// floating text, particle bursts, power-up trail puffs, and the occasional
// random silly callout. It reacts to session events and never feeds back
// into the simulation.
package fx

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/entity"
	"chosenoffset.com/fetchfrenzy/internal/session"
)

const (
	textLife      = 1.5
	textRise      = 50.0 // pixels per second
	particleDecay = 2.0  // life units per second
	gravity       = 300.0
	puffCount     = 3
	puffSpacing   = 0.1 // seconds between trail puffs
	sillyChance   = 0.003
)

// Text is a floating label that drifts upward and fades.
type Text struct {
	Pos   geom.Point
	Text  string
	Color color.RGBA
	Size  float64 // Nominal pixel height
	Life  float64 // Seconds left
}

// Alpha returns the current opacity in [0, 1].
func (t Text) Alpha() float64 {
	return math.Max(0, math.Min(1, t.Life))
}

// Particle is one spark of a collection burst.
type Particle struct {
	Pos   geom.Point
	Vel   geom.Point
	Color color.RGBA
	Size  float64
	Life  float64 // 1 at birth, gone at 0
}

// Radius returns the drawn radius, shrinking as the particle dies.
func (p Particle) Radius() float64 {
	return p.Size * (0.5 + math.Max(0, p.Life)*0.5)
}

// puff is a trail label waiting to appear behind a boosted player.
type puff struct {
	slot  int
	index int
	delay float64
}

// Layer owns every live effect.
type Layer struct {
	rng       *rand.Rand
	texts     []Text
	particles []Particle
	puffs     []puff
}

// NewLayer creates an empty effects layer drawing randomness from rng.
func NewLayer(rng *rand.Rand) *Layer {
	return &Layer{rng: rng}
}

// Texts returns the live floating labels.
func (l *Layer) Texts() []Text {
	return l.texts
}

// Particles returns the live particles.
func (l *Layer) Particles() []Particle {
	return l.particles
}

// Clear removes every effect, including pending puffs.
func (l *Layer) Clear() {
	l.texts = l.texts[:0]
	l.particles = l.particles[:0]
	l.puffs = l.puffs[:0]
}

// Handle reacts to a batch of session events. players supplies positions
// for labels that hover over the collecting dog.
func (l *Layer) Handle(events []session.Event, players []session.PlayerView) {
	for _, e := range events {
		switch e.Type {
		case session.EventCollected:
			p, ok := playerAt(players, e.Slot)
			l.collected(e, p, ok)
		case session.EventSpeedBoost:
			l.burst(e.Pos, rgb(0xFFFF00), 25)
			l.say(e.Pos.Add(geom.Point{Y: -30}), l.pick(powerUpShouts), rgb(0xFFFF00), 30)
			for i := 0; i < puffCount; i++ {
				l.puffs = append(l.puffs, puff{slot: e.Slot, index: i, delay: float64(i) * puffSpacing})
			}
		case session.EventStateChanged:
			// Every new level or restart starts with a clean field
			if e.To == session.StatePlaying {
				l.Clear()
			}
		}
	}
}

// Update advances every effect by dt. Puffs that come due while the session
// is not playing are dropped; silly callouts only appear during play.
func (l *Layer) Update(dt float64, state session.State, players []session.PlayerView, arena geom.Arena) {
	texts := l.texts[:0]
	for _, t := range l.texts {
		t.Pos.Y -= textRise * dt
		t.Life -= dt
		if t.Life > 0 {
			texts = append(texts, t)
		}
	}
	clear(l.texts[len(texts):])
	l.texts = texts

	particles := l.particles[:0]
	for _, p := range l.particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y += gravity * dt
		p.Life -= particleDecay * dt
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	l.particles = particles

	puffs := l.puffs[:0]
	for _, pf := range l.puffs {
		pf.delay -= dt
		if pf.delay > 0 {
			puffs = append(puffs, pf)
			continue
		}
		if state != session.StatePlaying {
			continue
		}
		if p, ok := playerAt(players, pf.slot); ok {
			pos := p.Pos.Add(geom.Point{
				X: -40 - float64(pf.index)*20,
				Y: (l.rng.Float64() - 0.5) * 60,
			})
			l.say(pos, "~~~", rgb(0xFFFFFF), 25+float64(pf.index)*5)
		}
	}
	l.puffs = puffs

	if state == session.StatePlaying && l.rng.Float64() < sillyChance {
		s := sillyEvents[l.rng.Intn(len(sillyEvents))]
		pos := geom.Point{X: l.rng.Float64() * arena.Width, Y: l.rng.Float64() * arena.Height}
		l.say(pos, s.text, Hue(l.rng.Float64()*360), s.size)
	}
}

func (l *Layer) collected(e session.Event, p session.PlayerView, ok bool) {
	over := func(dy float64) geom.Point {
		if ok {
			return p.Pos.Add(geom.Point{Y: dy})
		}
		return e.Pos.Add(geom.Point{Y: dy})
	}

	switch e.Kind {
	case entity.KindTreat:
		l.burst(e.Pos, rgb(0xDEB887), 10)
		l.say(e.Pos.Add(geom.Point{Y: -20}), l.pick(treatShouts), rgb(0xFFD700), 20)
		if l.rng.Float64() < 0.15 {
			l.say(over(-60), l.pick(treatReactions), rgb(0xFF69B4), 22)
		}
		if l.rng.Float64() < 0.1 {
			l.say(over(-20), l.pick(treatFunnies), rgb(0xFF69B4), 18)
		}
	case entity.KindCat:
		l.burst(e.Pos, rgb(0xFFD700), 20)
		l.say(e.Pos.Add(geom.Point{Y: -30}), l.pick(catShouts), rgb(0xFF1493), 28)
		if l.rng.Float64() < 0.3 {
			l.say(over(-50), l.pick(catReactions), rgb(0x87CEEB), 20)
		}
	case entity.KindBone:
		l.burst(e.Pos, rgb(0xF5DEB3), 15)
		l.say(e.Pos.Add(geom.Point{Y: -25}), l.pick(boneShouts), rgb(0x8B4513), 22)
		if l.rng.Float64() < 0.2 {
			l.say(over(-70), "Gonna bury this later!", rgb(0xD2691E), 16)
		}
	case entity.KindSquirrel:
		l.burst(e.Pos, rgb(0x8B4513), 30)
		l.say(e.Pos.Add(geom.Point{Y: -30}), l.pick(squirrelShouts), rgb(0x8B4513), 24)
		l.say(over(-50), l.pick(squirrelReactions), rgb(0xFFD700), 26)
	}

	if e.Multiplier > 1 {
		l.say(over(-40), ComboLabel(e.Multiplier), rgb(0xFF69B4), 28)
	}
}

func (l *Layer) say(pos geom.Point, text string, c color.RGBA, size float64) {
	l.texts = append(l.texts, Text{Pos: pos, Text: text, Color: c, Size: size, Life: textLife})
}

// burst spawns count particles that fly up and fall back under gravity.
func (l *Layer) burst(pos geom.Point, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		l.particles = append(l.particles, Particle{
			Pos:   pos,
			Vel:   geom.Point{X: (l.rng.Float64() - 0.5) * 200, Y: -l.rng.Float64()*200 - 50},
			Color: c,
			Size:  l.rng.Float64()*4 + 2,
			Life:  1,
		})
	}
}

func (l *Layer) pick(options []string) string {
	return options[l.rng.Intn(len(options))]
}

// ComboLabel formats the combo callout for a multiplier.
func ComboLabel(multiplier int) string {
	return fmt.Sprintf("x%d Combo!", multiplier)
}

func playerAt(players []session.PlayerView, slot int) (session.PlayerView, bool) {
	for _, p := range players {
		if p.Slot == slot {
			return p, true
		}
	}
	return session.PlayerView{}, false
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xFF}
}

// Hue returns a fully saturated color at h degrees.
func Hue(h float64) color.RGBA {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g = 1, x
	case 1:
		r, g = x, 1
	case 2:
		g, b = 1, x
	case 3:
		g, b = x, 1
	case 4:
		r, b = x, 1
	default:
		r, b = 1, x
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 0xFF}
}
