package entity

import (
	"math"
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

// Cat is a collectible that prowls the arena on its own.
type Cat struct {
	Body
	Vel       geom.Point
	Direction float64 // Radians

	moveTimer float64 // Seconds until the next direction decision
	meowTimer float64
	points    int
	rules     simulation.CatConfig
}

// NewCat creates a cat at a random position heading in a random direction.
func NewCat(rule simulation.ItemRule, cfg simulation.CatConfig, arena geom.Arena, rng *rand.Rand) *Cat {
	c := &Cat{
		Body:   Body{Pos: arena.RandomPoint(rule.Size, rng.Float64), Size: rule.Size},
		points: rule.Points,
		rules:  cfg,
	}
	c.meowTimer = rng.Float64() * cfg.InitialMeowMax
	c.Direction = rng.Float64() * 2 * math.Pi
	c.Vel = geom.FromAngle(c.Direction, cfg.InitialSpeed)
	c.moveTimer = between(rng, cfg.TurnMin, cfg.TurnMax)
	return c
}

func (c *Cat) Kind() Kind { return KindCat }
func (c *Cat) Shape() Body { return c.Body }
func (c *Cat) Points() int { return c.points }

// Clamp pulls the cat back inside the arena.
func (c *Cat) Clamp(arena geom.Arena) {
	c.Pos = arena.Clamp(c.Pos, c.Size)
}

// Update advances the cat by one tick and reports whether it should meow.
//
// When the decision timer lapses the cat either picks a brand new heading or
// makes a sharp turn of up to 90 degrees, and redraws its speed. Hitting an
// edge reflects the velocity on that axis and re-derives the heading.
func (c *Cat) Update(dt float64, arena geom.Arena, rng *rand.Rand) (meow bool) {
	c.meowTimer -= dt
	c.moveTimer -= dt

	if c.moveTimer <= 0 {
		c.moveTimer = between(rng, c.rules.TurnMin, c.rules.TurnMax)

		if rng.Float64() < c.rules.NewDirectionChance {
			c.Direction = rng.Float64() * 2 * math.Pi
		} else {
			c.Direction += (rng.Float64() - 0.5) * math.Pi
		}

		speed := between(rng, c.rules.SpeedMin, c.rules.SpeedMax)
		c.Vel = geom.FromAngle(c.Direction, speed)
	}

	c.Pos = c.Pos.Add(c.Vel.Scale(dt))

	if hitX, hitY := arena.Reflect(&c.Pos, &c.Vel, c.Size); hitX || hitY {
		c.Direction = c.Vel.Angle()
	}

	if c.meowTimer <= 0 {
		c.meowTimer = between(rng, c.rules.MeowMin, c.rules.MeowMax)
		return true
	}
	return false
}
