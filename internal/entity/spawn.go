package entity

import (
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

// Spawner creates collectibles at random positions from the rules config.
type Spawner struct {
	cfg *simulation.Config
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *simulation.Config, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Rule returns the configured size, points and floor for a kind.
func (s *Spawner) Rule(kind Kind) simulation.ItemRule {
	switch kind {
	case KindTreat:
		return s.cfg.Items.Treat
	case KindCat:
		return s.cfg.Items.Cat
	case KindBone:
		return s.cfg.Items.Bone
	case KindPowerUp:
		return s.cfg.Items.PowerUp
	case KindSquirrel:
		return s.cfg.Items.Squirrel
	default:
		return simulation.ItemRule{}
	}
}

// Spawn creates one item of the given kind somewhere inside the arena.
func (s *Spawner) Spawn(kind Kind, arena geom.Arena) Item {
	rule := s.Rule(kind)
	switch kind {
	case KindCat:
		return NewCat(rule, s.cfg.Cat, arena, s.rng)
	case KindSquirrel:
		return NewSquirrel(rule, s.cfg.Squirrel, arena, s.rng)
	default:
		return NewStatic(kind, rule.Size, rule.Points, arena, s.rng)
	}
}
