package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	d := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	if d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestUnitZeroVector(t *testing.T) {
	u, ok := Point{}.Unit()
	if ok {
		t.Error("Expected zero vector to have no unit direction")
	}
	if u != (Point{}) {
		t.Errorf("Expected zero point, got %+v", u)
	}

	u, ok = Point{X: 0, Y: -2}.Unit()
	if !ok || u != (Point{X: 0, Y: -1}) {
		t.Errorf("Expected (0,-1), got %+v ok=%v", u, ok)
	}
}

func TestNewArenaRaisesSmallDimensions(t *testing.T) {
	a := NewArena(0, -10, 160)
	if a.Width != 160 || a.Height != 160 {
		t.Errorf("Expected 160x160 arena, got %vx%v", a.Width, a.Height)
	}
}

func TestClamp(t *testing.T) {
	a := Arena{Width: 100, Height: 50}

	tests := []struct {
		name string
		in   Point
		size float64
		want Point
	}{
		{"inside", Point{X: 50, Y: 25}, 10, Point{X: 50, Y: 25}},
		{"left", Point{X: -20, Y: 25}, 10, Point{X: 5, Y: 25}},
		{"bottom right", Point{X: 200, Y: 200}, 10, Point{X: 95, Y: 45}},
		{"body taller than arena", Point{X: 10, Y: 10}, 80, Point{X: 40, Y: 25}},
		{"nan", Point{X: math.NaN(), Y: 25}, 10, Point{X: 50, Y: 25}},
	}

	for _, tt := range tests {
		got := a.Clamp(tt.in, tt.size)
		if got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestClampCentersOversizedBody(t *testing.T) {
	a := Arena{Width: 60, Height: 50}

	got := a.Clamp(Point{X: 10, Y: 45}, 80)
	if got != (Point{X: 30, Y: 25}) {
		t.Errorf("Expected body centered on both axes, got %+v", got)
	}
}

func TestReflectAtRightEdge(t *testing.T) {
	a := Arena{Width: 100, Height: 100}
	pos := Point{X: 97, Y: 50}
	vel := Point{X: 40, Y: 5}

	hitX, hitY := a.Reflect(&pos, &vel, 10)

	if !hitX || hitY {
		t.Fatalf("Expected only X reflection, got hitX=%v hitY=%v", hitX, hitY)
	}
	if vel.X != -40 {
		t.Errorf("Expected x velocity -40, got %f", vel.X)
	}
	if vel.Y != 5 {
		t.Errorf("Expected y velocity untouched, got %f", vel.Y)
	}
	if pos.X != 95 {
		t.Errorf("Expected x clamped to 95, got %f", pos.X)
	}
}

func TestReflectOnEdgeMovingInward(t *testing.T) {
	a := Arena{Width: 100, Height: 100}
	pos := Point{X: 5, Y: 50}
	vel := Point{X: 30, Y: 0}

	hitX, _ := a.Reflect(&pos, &vel, 10)
	if hitX {
		t.Error("Body on the edge heading inward should not be reflected")
	}
	if vel.X != 30 {
		t.Errorf("Expected velocity unchanged, got %f", vel.X)
	}
}

func TestRandomPointStaysInside(t *testing.T) {
	a := Arena{Width: 300, Height: 200}
	for _, r := range []float64{0, 0.5, 0.999999} {
		p := a.RandomPoint(40, func() float64 { return r })
		if !a.Contains(p, 40) {
			t.Errorf("RandomPoint(%v) = %+v is outside the inset arena", r, p)
		}
	}
}
