package entity

import (
	"math"
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

// SquirrelMode names the behavior a squirrel chose on its last update.
type SquirrelMode int

const (
	SquirrelWander SquirrelMode = iota
	SquirrelFlee
	SquirrelCooldown
)

// Squirrel is a fast, skittish collectible that bolts away from nearby dogs.
type Squirrel struct {
	Body
	Vel    geom.Point
	Target geom.Point // Wander destination
	Panic  float64    // Seconds of panic left after the threat leaves
	Mode   SquirrelMode

	points int
	rules  simulation.SquirrelConfig
}

// NewSquirrel creates a squirrel at a random position with a random drift.
func NewSquirrel(rule simulation.ItemRule, cfg simulation.SquirrelConfig, arena geom.Arena, rng *rand.Rand) *Squirrel {
	pos := arena.RandomPoint(rule.Size, rng.Float64)
	return &Squirrel{
		Body: Body{Pos: pos, Size: rule.Size},
		Vel: geom.Point{
			X: (rng.Float64()*2 - 1) * cfg.InitialSpeed,
			Y: (rng.Float64()*2 - 1) * cfg.InitialSpeed,
		},
		Target: pos,
		points: rule.Points,
		rules:  cfg,
	}
}

func (s *Squirrel) Kind() Kind { return KindSquirrel }
func (s *Squirrel) Shape() Body { return s.Body }
func (s *Squirrel) Points() int { return s.points }

// Clamp pulls the squirrel back inside the arena.
func (s *Squirrel) Clamp(arena geom.Arena) {
	s.Pos = arena.Clamp(s.Pos, s.Size)
}

// Update advances the squirrel by one tick given the current player positions.
//
// Within the threat radius of the nearest player it flees straight away at
// full speed and re-arms its panic timer. Once clear it keeps its flee
// velocity until the panic timer lapses, then wanders toward a target that
// it occasionally re-rolls.
func (s *Squirrel) Update(dt float64, threats []geom.Point, arena geom.Arena, rng *rand.Rand) {
	nearest, dist := geom.Point{}, math.Inf(1)
	for _, t := range threats {
		if d := geom.Distance(s.Pos, t); d < dist {
			nearest, dist = t, d
		}
	}

	switch {
	case dist < s.rules.ThreatRadius:
		s.Mode = SquirrelFlee
		s.Panic = s.rules.PanicDuration
		if away, ok := s.Pos.Sub(nearest).Unit(); ok {
			s.Vel = away.Scale(s.rules.FleeSpeed)
		}
	case s.Panic > 0:
		s.Mode = SquirrelCooldown
		s.Panic = math.Max(0, s.Panic-dt)
	default:
		s.Mode = SquirrelWander
		if rng.Float64() < s.rules.RetargetChance {
			s.Target = arena.RandomPoint(s.Size, rng.Float64)
		}
		toTarget := s.Target.Sub(s.Pos)
		if toTarget.Len() > s.rules.ArriveRadius {
			if dir, ok := toTarget.Unit(); ok {
				s.Vel = dir.Scale(s.rules.WanderSpeed)
			}
		}
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	arena.Reflect(&s.Pos, &s.Vel, s.Size)
}
