// Package entity provides the creatures and pickups that populate the arena:
// the two player dogs, static pickups, wandering cats and skittish squirrels.
//
// Every entity shares a circular Body. Collectible kinds implement Item; the
// mobile kinds (Cat, Squirrel) additionally expose an Update step that the
// session calls once per tick.
package entity

import (
	"math/rand"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
)

// Kind identifies a collectible variant.
type Kind int

const (
	KindTreat Kind = iota
	KindCat
	KindBone
	KindPowerUp
	KindSquirrel

	KindCount // must stay last
)

// Kinds lists every collectible kind in collision-pass order.
var Kinds = [KindCount]Kind{KindTreat, KindCat, KindBone, KindPowerUp, KindSquirrel}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTreat:
		return "treat"
	case KindCat:
		return "cat"
	case KindBone:
		return "bone"
	case KindPowerUp:
		return "powerup"
	case KindSquirrel:
		return "squirrel"
	default:
		return "unknown"
	}
}

// Body is the circular collision shape shared by every entity.
type Body struct {
	Pos  geom.Point
	Size float64 // Diameter
}

// Overlaps reports whether two bodies collide: their centers are closer than
// the sum of their radii.
func (b Body) Overlaps(o Body) bool {
	return geom.Distance(b.Pos, o.Pos) < b.Size/2+o.Size/2
}

// Item is anything a player can collect.
type Item interface {
	Kind() Kind
	Shape() Body
	Points() int
	// Clamp pulls the item back inside the arena after a resize.
	Clamp(arena geom.Arena)
}

// Static is a pickup that never moves: treats, bones and speed power-ups.
type Static struct {
	Body
	kind   Kind
	points int
}

// NewStatic creates a static pickup at a random position in the arena.
func NewStatic(kind Kind, size float64, points int, arena geom.Arena, rng *rand.Rand) *Static {
	return &Static{
		Body:   Body{Pos: arena.RandomPoint(size, rng.Float64), Size: size},
		kind:   kind,
		points: points,
	}
}

func (s *Static) Kind() Kind { return s.kind }
func (s *Static) Shape() Body { return s.Body }
func (s *Static) Points() int { return s.points }

// Clamp pulls the pickup back inside the arena.
func (s *Static) Clamp(arena geom.Arena) {
	s.Pos = arena.Clamp(s.Pos, s.Size)
}

// between returns a uniform random value in [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
