package entity

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

func newTestCat(rng *rand.Rand, arena geom.Arena) *Cat {
	cfg := simulation.DefaultConfig()
	return NewCat(cfg.Items.Cat, cfg.Cat, arena, rng)
}

func newTestSquirrel(rng *rand.Rand, arena geom.Arena) *Squirrel {
	cfg := simulation.DefaultConfig()
	return NewSquirrel(cfg.Items.Squirrel, cfg.Squirrel, arena, rng)
}

func TestCatReflectsAtRightEdge(t *testing.T) {
	arena := geom.Arena{Width: 800, Height: 600}
	c := newTestCat(rand.New(rand.NewSource(7)), arena)
	c.Pos = geom.Point{X: 779, Y: 300}
	c.Vel = geom.Point{X: 100, Y: 0}
	c.Direction = 0
	c.moveTimer = 10

	c.Update(0.1, arena, rand.New(rand.NewSource(7)))

	if c.Vel.X != -100 {
		t.Errorf("Expected x velocity flipped to -100, got %v", c.Vel.X)
	}
	if c.Pos.X != 780 {
		t.Errorf("Expected cat clamped to x=780, got %v", c.Pos.X)
	}
	if math.Abs(c.Direction-math.Pi) > 1e-9 {
		t.Errorf("Expected direction recomputed to pi, got %v", c.Direction)
	}
}

func TestCatDirectionDecision(t *testing.T) {
	arena := geom.Arena{Width: 800, Height: 600}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		c := newTestCat(rng, arena)
		c.Pos = geom.Point{X: 400, Y: 300}
		c.moveTimer = 0.01

		c.Update(0.02, arena, rng)

		if c.moveTimer < 1 || c.moveTimer >= 3 {
			t.Fatalf("Expected decision timer in [1,3), got %v", c.moveTimer)
		}
		speed := c.Vel.Len()
		if speed < 80-1e-9 || speed >= 120+1e-9 {
			t.Fatalf("Expected speed in [80,120), got %v", speed)
		}
	}
}

func TestCatMeowsOncePerCountdown(t *testing.T) {
	arena := geom.Arena{Width: 800, Height: 600}
	rng := rand.New(rand.NewSource(3))
	c := newTestCat(rng, arena)
	c.meowTimer = 0.01

	if !c.Update(0.02, arena, rng) {
		t.Fatal("Expected meow when countdown lapses")
	}
	if c.meowTimer < 8 || c.meowTimer >= 20 {
		t.Errorf("Expected meow countdown reset into [8,20), got %v", c.meowTimer)
	}
	if c.Update(0.02, arena, rng) {
		t.Error("Expected no second meow right after the first")
	}
}

func TestCatStaysInBounds(t *testing.T) {
	arena := geom.Arena{Width: 300, Height: 200}
	rng := rand.New(rand.NewSource(11))
	c := newTestCat(rng, arena)

	for i := 0; i < 2000; i++ {
		c.Update(1.0/30, arena, rng)
		if !arena.Contains(c.Pos, c.Size) {
			t.Fatalf("Tick %d: cat escaped to %+v", i, c.Pos)
		}
	}
}

func TestSquirrelFleesFromNearestPlayer(t *testing.T) {
	arena := geom.Arena{Width: 1000, Height: 1000}
	rng := rand.New(rand.NewSource(5))
	s := newTestSquirrel(rng, arena)
	s.Pos = geom.Point{X: 500, Y: 500}
	player := geom.Point{X: 440, Y: 420} // distance 100

	s.Update(1.0/60, []geom.Point{player, {X: 0, Y: 0}}, arena, rng)

	if s.Mode != SquirrelFlee {
		t.Fatalf("Expected flee mode, got %v", s.Mode)
	}
	away, _ := geom.Point{X: 60, Y: 80}.Unit()
	dir, ok := s.Vel.Unit()
	if !ok {
		t.Fatal("Expected non-zero flee velocity")
	}
	if dot := away.Dot(dir); math.Abs(dot-1) > 1e-9 {
		t.Errorf("Expected velocity pointing away from player (dot 1), got %v", dot)
	}
	if math.Abs(s.Vel.Len()-400) > 1e-9 {
		t.Errorf("Expected flee speed 400, got %v", s.Vel.Len())
	}
	if s.Panic != 1 {
		t.Errorf("Expected panic timer 1, got %v", s.Panic)
	}
}

func TestSquirrelCooldownKeepsVelocity(t *testing.T) {
	arena := geom.Arena{Width: 2000, Height: 2000}
	rng := rand.New(rand.NewSource(5))
	s := newTestSquirrel(rng, arena)
	s.Pos = geom.Point{X: 1000, Y: 1000}

	s.Update(0.1, []geom.Point{{X: 900, Y: 1000}}, arena, rng)
	fleeVel := s.Vel

	s.Update(0.1, []geom.Point{{X: 100, Y: 100}}, arena, rng)

	if s.Mode != SquirrelCooldown {
		t.Fatalf("Expected cooldown mode, got %v", s.Mode)
	}
	if s.Vel != fleeVel {
		t.Errorf("Expected velocity %+v kept during cooldown, got %+v", fleeVel, s.Vel)
	}
	if math.Abs(s.Panic-0.9) > 1e-9 {
		t.Errorf("Expected panic 0.9, got %v", s.Panic)
	}
}

func TestSquirrelWandersTowardTarget(t *testing.T) {
	arena := geom.Arena{Width: 1000, Height: 1000}
	rng := rand.New(rand.NewSource(9))
	s := newTestSquirrel(rng, arena)
	s.rules.RetargetChance = 0
	s.Pos = geom.Point{X: 100, Y: 100}
	s.Target = geom.Point{X: 100, Y: 400}

	s.Update(0.1, nil, arena, rng)

	if s.Mode != SquirrelWander {
		t.Fatalf("Expected wander mode, got %v", s.Mode)
	}
	if s.Vel != (geom.Point{X: 0, Y: 100}) {
		t.Errorf("Expected velocity (0,100) toward target, got %+v", s.Vel)
	}
	if math.Abs(s.Pos.Y-110) > 1e-9 {
		t.Errorf("Expected y=110 after one tick, got %v", s.Pos.Y)
	}
}

func TestSquirrelOnTopOfPlayerKeepsVelocity(t *testing.T) {
	arena := geom.Arena{Width: 1000, Height: 1000}
	rng := rand.New(rand.NewSource(9))
	s := newTestSquirrel(rng, arena)
	s.Pos = geom.Point{X: 500, Y: 500}
	s.Vel = geom.Point{X: 10, Y: 0}

	s.Update(0, []geom.Point{s.Pos}, arena, rng)

	if s.Vel != (geom.Point{X: 10, Y: 0}) {
		t.Errorf("Expected velocity untouched for zero-length flee vector, got %+v", s.Vel)
	}
	if math.IsNaN(s.Pos.X) || math.IsNaN(s.Pos.Y) {
		t.Error("Expected no NaN position")
	}
}

func TestBodyOverlaps(t *testing.T) {
	a := Body{Pos: geom.Point{X: 0, Y: 0}, Size: 50}
	tests := []struct {
		other Body
		want  bool
	}{
		{Body{Pos: geom.Point{X: 37, Y: 0}, Size: 25}, true},
		{Body{Pos: geom.Point{X: 37.5, Y: 0}, Size: 25}, false},
		{Body{Pos: geom.Point{X: 100, Y: 100}, Size: 25}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.other); got != tt.want {
			t.Errorf("Overlaps(%+v) = %v, want %v", tt.other.Pos, got, tt.want)
		}
	}
}

func TestSpawnerCreatesEveryKindInBounds(t *testing.T) {
	cfg := simulation.DefaultConfig()
	arena := geom.Arena{Width: 640, Height: 480}
	sp := NewSpawner(cfg, rand.New(rand.NewSource(1)))

	for _, kind := range Kinds {
		item := sp.Spawn(kind, arena)
		if item.Kind() != kind {
			t.Errorf("Spawn(%v) returned kind %v", kind, item.Kind())
		}
		if item.Points() != sp.Rule(kind).Points {
			t.Errorf("Spawn(%v) has %d points, want %d", kind, item.Points(), sp.Rule(kind).Points)
		}
		b := item.Shape()
		if !arena.Contains(b.Pos, b.Size) {
			t.Errorf("Spawn(%v) placed item off-screen at %+v", kind, b.Pos)
		}
	}
}
