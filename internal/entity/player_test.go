package entity

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/fetchfrenzy/internal/core/geom"
	"chosenoffset.com/fetchfrenzy/internal/simulation"
)

func newTestPlayer() *Player {
	return NewPlayer(0, geom.Point{X: 200, Y: 200}, simulation.DefaultConfig())
}

func TestAddScoreFirstCollection(t *testing.T) {
	p := newTestPlayer()

	res := p.AddScore(10)

	if res.Multiplier != 1 {
		t.Errorf("Expected multiplier 1, got %d", res.Multiplier)
	}
	if res.Points != 10 || p.Score != 10 {
		t.Errorf("Expected 10 points awarded, got %d (score %d)", res.Points, p.Score)
	}
}

func TestAddScoreComboEscalatesAndSaturates(t *testing.T) {
	p := newTestPlayer()

	wantMultipliers := []int{1, 2, 3, 4, 5, 5, 5}
	total := 0
	for i, want := range wantMultipliers {
		res := p.AddScore(10)
		if res.Multiplier != want {
			t.Errorf("Collection %d: expected multiplier %d, got %d", i+1, want, res.Multiplier)
		}
		if res.Combo != i+1 {
			t.Errorf("Collection %d: expected uncapped combo %d, got %d", i+1, i+1, res.Combo)
		}
		total += 10 * want
		p.Advance(0.5)
	}

	if p.Score != total {
		t.Errorf("Expected score %d, got %d", total, p.Score)
	}
}

func TestComboDecaysAfterWindow(t *testing.T) {
	p := newTestPlayer()
	p.AddScore(10)

	for i := 0; i < 5; i++ {
		p.Advance(0.5)
	}

	res := p.AddScore(10)
	if res.Multiplier != 1 {
		t.Errorf("Expected combo to reset to multiplier 1, got %d", res.Multiplier)
	}
	if p.Score != 20 {
		t.Errorf("Expected score 20, got %d", p.Score)
	}
}

func TestMoveDeadzoneAndBoost(t *testing.T) {
	arena := geom.Arena{Width: 1000, Height: 1000}
	p := newTestPlayer()

	p.Move(0.1, Axes{X: 0.2, Y: -0.15}, arena)
	if p.Pos != (geom.Point{X: 200, Y: 200}) {
		t.Errorf("Expected no movement inside deadzone, got %+v", p.Pos)
	}
	if p.Moving() {
		t.Error("Expected player not moving inside deadzone")
	}

	p.Move(0.1, Axes{X: 1, Y: 0.1}, arena)
	if p.Pos.X != 230 || p.Pos.Y != 200 {
		t.Errorf("Expected (230,200) at base speed, got %+v", p.Pos)
	}
	if !p.Moving() {
		t.Error("Expected player moving")
	}

	p.ActivateSpeedBoost()
	if !p.Boosted() {
		t.Fatal("Expected boost active")
	}
	p.Move(0.1, Axes{X: 0, Y: 1}, arena)
	if p.Pos.Y != 250 {
		t.Errorf("Expected boosted move to y=250, got %v", p.Pos.Y)
	}

	p.Advance(5)
	if p.Boosted() {
		t.Error("Expected boost to expire after its duration")
	}
}

func TestMoveClampsToArena(t *testing.T) {
	arena := geom.Arena{Width: 400, Height: 300}
	p := newTestPlayer()

	for i := 0; i < 20; i++ {
		p.Move(0.1, Axes{X: 1, Y: 1}, arena)
	}

	if p.Pos.X != 375 || p.Pos.Y != 275 {
		t.Errorf("Expected player clamped to (375,275), got %+v", p.Pos)
	}
}

func TestMoveIgnoresNaNAxes(t *testing.T) {
	arena := geom.Arena{Width: 400, Height: 300}
	p := newTestPlayer()
	p.Move(0.1, Axes{X: math.NaN(), Y: 0}, arena)
	if p.Pos != (geom.Point{X: 200, Y: 200}) {
		t.Errorf("Expected NaN input to be ignored, got %+v", p.Pos)
	}
}

func TestShouldBarkRespectsCooldown(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Player.BarkHappyChance = 1
	p := NewPlayer(0, geom.Point{X: 100, Y: 100}, cfg)
	rng := rand.New(rand.NewSource(1))

	if p.ShouldBark(rng) {
		t.Error("A calm, still dog should not bark")
	}

	p.AddScore(10)
	if !p.ShouldBark(rng) {
		t.Fatal("A happy dog with bark chance 1 should bark")
	}
	if p.ShouldBark(rng) {
		t.Error("Expected bark cooldown to suppress a second bark")
	}

	p.Advance(cfg.Player.BarkCooldownMax)
	p.AddScore(10)
	if !p.ShouldBark(rng) {
		t.Error("Expected bark after cooldown lapsed")
	}
}

func TestResetClearsScoreAndCombo(t *testing.T) {
	p := newTestPlayer()
	p.AddScore(10)
	p.AddScore(10)
	p.ActivateSpeedBoost()

	p.Reset()

	if p.Score != 0 || p.ComboCount() != 0 || p.Boosted() {
		t.Errorf("Expected clean player, got score=%d combo=%d boosted=%v", p.Score, p.ComboCount(), p.Boosted())
	}
	if p.ComboMultiplier() != 1 {
		t.Errorf("Expected idle multiplier 1, got %d", p.ComboMultiplier())
	}
}
