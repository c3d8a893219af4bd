package entity

import (
	"math"
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

// Axes holds one tick of analog stick input, each axis in [-1, 1].
type Axes struct {
	X, Y float64
}

// ScoreResult describes a single scored collection.
type ScoreResult struct {
	Points     int // Points actually added (base value times multiplier)
	Multiplier int // Applied multiplier, saturated at the combo cap
	Combo      int // Uncapped combo count after this collection
}

// Player is one of the two controllable dogs.
type Player struct {
	Body
	Slot  int
	Score int

	// Last non-zero displacement, used for facing
	Heading geom.Point

	boostTime  float64
	comboCount int
	comboTimer float64
	happyTime  float64
	barkTimer  float64
	moving     bool

	rules       simulation.PlayerConfig
	comboWindow float64
	comboCap    int
}

// NewPlayer creates a player for the given slot at pos.
func NewPlayer(slot int, pos geom.Point, cfg *simulation.Config) *Player {
	return &Player{
		Body:        Body{Pos: pos, Size: cfg.Player.Size},
		Slot:        slot,
		Heading:     geom.Point{X: 1},
		rules:       cfg.Player,
		comboWindow: cfg.Session.ComboWindow,
		comboCap:    cfg.Session.ComboCap,
	}
}

// Advance runs the player's timers: speed boost, combo decay, happiness and
// bark cooldown. It runs every playing tick whether or not a controller is bound.
func (p *Player) Advance(dt float64) {
	if p.barkTimer > 0 {
		p.barkTimer -= dt
	}
	if p.boostTime > 0 {
		p.boostTime = math.Max(0, p.boostTime-dt)
	}
	if p.comboTimer > 0 {
		p.comboTimer -= dt
		if p.comboTimer <= 0 {
			p.comboTimer = 0
			p.comboCount = 0
		}
	}
	if p.happyTime > 0 {
		p.happyTime = math.Max(0, p.happyTime-dt)
	}
}

// Move applies one tick of stick input. Each axis inside the deadzone is
// ignored independently; the result is clamped to the arena.
func (p *Player) Move(dt float64, in Axes, arena geom.Arena) {
	speed := p.rules.Speed
	if p.boostTime > 0 {
		speed = p.rules.BoostSpeed
	}

	var d geom.Point
	if x := axis(in.X); math.Abs(x) > p.rules.Deadzone {
		d.X = x * speed * dt
	}
	if y := axis(in.Y); math.Abs(y) > p.rules.Deadzone {
		d.Y = y * speed * dt
	}

	p.Pos = arena.Clamp(p.Pos.Add(d), p.Size)
	p.moving = math.Abs(d.X) > p.rules.MoveEpsilon || math.Abs(d.Y) > p.rules.MoveEpsilon
	if d != (geom.Point{}) {
		p.Heading = d
	}
}

// Collides reports whether the player overlaps the given body.
func (p *Player) Collides(b Body) bool {
	return p.Body.Overlaps(b)
}

// AddScore awards a collection worth points. A collection while the previous
// combo is still hot extends the combo; otherwise the combo restarts at 1.
func (p *Player) AddScore(points int) ScoreResult {
	p.happyTime = p.rules.HappyDuration

	if p.comboTimer > 0 {
		p.comboCount++
	} else {
		p.comboCount = 1
	}
	p.comboTimer = p.comboWindow

	multiplier := min(p.comboCount, p.comboCap)
	awarded := points * multiplier
	p.Score += awarded

	return ScoreResult{Points: awarded, Multiplier: multiplier, Combo: p.comboCount}
}

// ActivateSpeedBoost starts (or restarts) the timed speed buff.
func (p *Player) ActivateSpeedBoost() {
	p.boostTime = p.rules.BoostDuration
}

// ShouldBark decides whether the dog barks this tick. Once the cooldown has
// lapsed a moving dog barks occasionally and a happy dog barks often.
func (p *Player) ShouldBark(rng *rand.Rand) bool {
	if p.barkTimer > 0 {
		return false
	}
	if (p.moving && rng.Float64() < p.rules.BarkMoveChance) ||
		(p.happyTime > 0 && rng.Float64() < p.rules.BarkHappyChance) {
		p.barkTimer = between(rng, p.rules.BarkCooldownMin, p.rules.BarkCooldownMax)
		return true
	}
	return false
}

// Reset clears score and every timer for a fresh game. Position is kept.
func (p *Player) Reset() {
	p.Score = 0
	p.boostTime = 0
	p.comboCount = 0
	p.comboTimer = 0
	p.happyTime = 0
	p.barkTimer = 0
	p.moving = false
}

// Clamp pulls the player back inside the arena.
func (p *Player) Clamp(arena geom.Arena) {
	p.Pos = arena.Clamp(p.Pos, p.Size)
}

func (p *Player) Moving() bool { return p.moving }
func (p *Player) Boosted() bool { return p.boostTime > 0 }
func (p *Player) BoostRemaining() float64 { return p.boostTime }
func (p *Player) Happy() bool { return p.happyTime > 0 }
func (p *Player) ComboCount() int { return p.comboCount }
func (p *Player) ComboTimeLeft() float64 { return p.comboTimer }

// ComboMultiplier returns the multiplier of the running combo, 1 when idle.
func (p *Player) ComboMultiplier() int {
	if p.comboCount < 1 {
		return 1
	}
	return min(p.comboCount, p.comboCap)
}

// axis sanitizes a raw stick value.
func axis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
