package gg

import "math"

// Vec2 is a 2D displacement (direction + magnitude), as distinct from
// Point which names a position. Keeping the two types distinct makes
// curve-geometry code read unambiguously even though the underlying
// fields are identical.
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) Div(s float64) Vec2 { return Vec2{X: v.X / s, Y: v.Y / s} }
func (v Vec2) Neg() Vec2          { return Vec2{X: -v.X, Y: -v.Y} }

func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3D cross product of v and w with
// z=0 — a signed scalar whose sign gives the turn direction from v to w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vec2) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize returns v scaled to unit length, or the zero vector if v
// already is zero.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return v.Div(length)
}

func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return v.Add(w.Sub(v).Mul(t))
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

func (v Vec2) Atan2() float64 {
	return math.Atan2(v.Y, v.X)
}

// Angle returns the signed angle from v to w in radians.
func (v Vec2) Angle(w Vec2) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx reports whether v and w differ by less than epsilon on each
// axis.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// ToPoint reinterprets v as a position.
func (v Vec2) ToPoint() Point {
	return Point(v)
}

// PointToVec2 reinterprets p as a displacement.
func PointToVec2(p Point) Vec2 {
	return Vec2(p)
}
