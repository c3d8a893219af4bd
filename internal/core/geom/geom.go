// Package geom provides the small amount of 2D math the arena simulation needs:
// points and vectors, distances, and an Arena that keeps bodies inside its edges.
package geom

import "math"

// Point represents a 2D point (or vector) in arena space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the length of p as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns p scaled to length 1. ok is false for a zero-length vector,
// in which case the zero Point is returned.
func (p Point) Unit() (u Point, ok bool) {
	l := p.Len()
	if l == 0 || math.IsNaN(l) {
		return Point{}, false
	}
	return Point{X: p.X / l, Y: p.Y / l}, true
}

// Angle returns the direction of p in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// FromAngle returns the vector of the given length pointing at theta radians.
func FromAngle(theta, length float64) Point {
	return Point{X: math.Cos(theta) * length, Y: math.Sin(theta) * length}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Arena is the rectangular play field. The origin is the top-left corner.
type Arena struct {
	Width  float64
	Height float64
}

// NewArena builds an arena, raising each dimension to at least minSize.
func NewArena(width, height, minSize int) Arena {
	if minSize < 1 {
		minSize = 1
	}
	if width < minSize {
		width = minSize
	}
	if height < minSize {
		height = minSize
	}
	return Arena{Width: float64(width), Height: float64(height)}
}

// Clamp returns p moved inside the arena inset by size/2 on every side.
func (a Arena) Clamp(p Point, size float64) Point {
	return Point{
		X: clampAxis(p.X, size/2, a.Width-size/2),
		Y: clampAxis(p.Y, size/2, a.Height-size/2),
	}
}

// Contains reports whether a body of the given size centered on p lies
// fully inside the arena.
func (a Arena) Contains(p Point, size float64) bool {
	return a.Clamp(p, size) == p
}

// Reflect keeps a moving body inside the arena. When the body sits on or past
// an edge while heading outward (or lies outside the inset range at all), the
// velocity component for that axis is pointed back inward and the position is
// clamped to the edge. hitX and hitY report which axes were reflected.
func (a Arena) Reflect(pos, vel *Point, size float64) (hitX, hitY bool) {
	hitX = reflectAxis(&pos.X, &vel.X, size/2, a.Width-size/2)
	hitY = reflectAxis(&pos.Y, &vel.Y, size/2, a.Height-size/2)
	return hitX, hitY
}

// RandomPoint returns a uniformly random position for a body of the given
// size, inset so the body never starts off-screen. rnd must return values in [0,1).
func (a Arena) RandomPoint(size float64, rnd func() float64) Point {
	w := math.Max(0, a.Width-size)
	h := math.Max(0, a.Height-size)
	return a.Clamp(Point{X: rnd()*w + size/2, Y: rnd()*h + size/2}, size)
}

func reflectAxis(p, v *float64, lo, hi float64) bool {
	if hi < lo {
		*p = (lo + hi) / 2
		return false
	}
	switch {
	case *p < lo || (*p == lo && *v < 0):
		*v = math.Abs(*v)
		*p = lo
		return true
	case *p > hi || (*p == hi && *v > 0):
		*v = -math.Abs(*v)
		*p = hi
		return true
	}
	return false
}

func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if math.IsNaN(v) {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
