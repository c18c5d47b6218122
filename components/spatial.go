package components

import "math"

// Vec2 is a point or vector in canvas coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Size is a canvas extent.
type Size struct {
	W, H float64
}

// Contains reports whether p lies inside the [0,W)x[0,H) rectangle.
func (s Size) Contains(p Vec2) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Rotation holds the two flutter axes of a particle.
// Angles are unbounded and never wrapped.
type Rotation struct {
	X      float64 // pitch, radians
	Y      float64 // yaw, radians
	XSpeed float64 // base pitch rate, radians/sec
	YSpeed float64 // base yaw rate, radians/sec
}
