package gg

import "math"

// Point is a 2D coordinate, or equivalently the vector from the origin
// to that coordinate — the same struct serves both roles depending on
// the operation applied to it.
type Point struct {
	X, Y float64
}

// Pt builds a Point from its coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q, treating both as vectors.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q, treating both as vectors.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div divides p by s; callers are responsible for s != 0.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product of p and q
// extended into the xy-plane — positive when q is counter-clockwise
// from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// LengthSquared returns |p|^2, avoiding the sqrt in Length.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the Euclidean length of p as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in p's direction, or the zero vector
// if p itself is zero.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Div(l)
}

// Rotate returns p rotated by angle radians counter-clockwise around the
// origin.
func (p Point) Rotate(angle float64) Point {
	s, c := math.Sincos(angle)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// Lerp linearly interpolates between p (t=0) and q (t=1); t outside
// [0,1] extrapolates.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}
