// Package geom provides the axis-aligned geometry shared by every collision check.
package geom

import "math"

// Vec2 is a 2D vector in world units (pixels, y grows downward)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp returns the point at t along v -> o
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Normalize returns the unit vector in the direction of v.
// ok is false for a zero-length vector, in which case the zero vector is returned.
func (v Vec2) Normalize() (unit Vec2, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// FromAngle returns a vector of the given length pointing at angle radians
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rect
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Expand grows the rect by d on every side
func (r Rect) Expand(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.W + 2*d, r.H + 2*d}
}

// Contains reports whether p lies strictly inside the rect
func (r Rect) Contains(p Vec2) bool {
	return p.X > r.Left() && p.X < r.Right() && p.Y > r.Top() && p.Y < r.Bottom()
}

// PointRect returns a zero-size rect at p
func PointRect(p Vec2) Rect {
	return Rect{X: p.X, Y: p.Y}
}

// Overlaps reports strict intersection; touching edges do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() && a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// SamplePoints returns n evenly spaced points on the segment from -> to,
// both endpoints included. n < 2 yields just the start point.
func SamplePoints(from, to Vec2, n int) []Vec2 {
	if n < 2 {
		return []Vec2{from}
	}
	points := make([]Vec2, n)
	for i := range n {
		points[i] = from.Lerp(to, float64(i)/float64(n-1))
	}
	return points
}
