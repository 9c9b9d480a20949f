package gg

import (
	"math"
	"sort"
)

// Curve primitives — lines and Bezier curves — and the rectangle type
// used to describe their bounds. The curve math follows kurbo's approach
// (de Casteljau evaluation/subdivision, closed-form extrema), expressed
// through this package's Point vector methods instead of kurbo's own
// vector type.

// Rect is an axis-aligned rectangle with Min at the top-left (smallest
// coordinates) and Max at the bottom-right (largest coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect builds a Rect from two corner points in any order, normalizing
// them so Min is componentwise <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the rectangle's vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains reports whether p falls within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine builds a line segment between two points.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval returns the point at parameter t; t=0 is P0, t=1 is P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Start returns P0.
func (l Line) Start() Point { return l.P0 }

// End returns P1.
func (l Line) End() Point { return l.P1 }

// Subdivide splits l at its midpoint into two halves.
func (l Line) Subdivide() (Line, Line) {
	mid := l.Eval(0.5)
	return Line{P0: l.P0, P1: mid}, Line{P0: mid, P1: l.P1}
}

// Subsegment returns the portion of l spanning [t0, t1].
func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{P0: l.Eval(t0), P1: l.Eval(t1)}
}

// BoundingBox returns l's axis-aligned bounds.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Length returns the segment's Euclidean length.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Midpoint returns the point halfway between P0 and P1.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// Reversed returns l with its endpoints swapped.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// QuadBez is a quadratic Bezier curve: P0 and P2 are the endpoints, P1 is
// the single control point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez builds a quadratic Bezier from its three control points.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at t via its Bernstein form
// (1-t)^2 P0 + 2(1-t)t P1 + t^2 P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Start returns P0.
func (q QuadBez) Start() Point { return q.P0 }

// End returns P2.
func (q QuadBez) End() Point { return q.P2 }

// Subdivide splits q at t=0.5 via de Casteljau's algorithm, returning
// the two half-curves in order.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, 0.5)
	p12 := q.P1.Lerp(q.P2, 0.5)
	mid := p01.Lerp(p12, 0.5)
	return QuadBez{P0: q.P0, P1: p01, P2: mid}, QuadBez{P0: mid, P1: p12, P2: q.P2}
}

// Subsegment returns the portion of q spanning [t0, t1], reconstructing
// the control point from the control-polygon tangent at t0.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)

	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dt := t1 - t0

	tangent := d0.Add(d1.Sub(d0).Mul(t0))
	p1 := p0.Add(tangent.Mul(dt))

	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Extrema returns, in increasing order, the interior parameter values
// where q's tangent is horizontal or vertical — the points a tight
// bounding box must include beyond the endpoints.
func (q QuadBez) Extrema() []float64 {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	accel := d1.Sub(d0) // second derivative direction, constant for a quadratic

	var result []float64
	if t, ok := linearRootInUnitInterval(accel.X, d0.X); ok {
		result = append(result, t)
	}
	if t, ok := linearRootInUnitInterval(accel.Y, d0.Y); ok {
		result = append(result, t)
	}
	sort.Float64s(result)
	return result
}

// linearRootInUnitInterval solves accel*t + d0 = 0 for t, reporting ok
// only when accel is nonzero and the root lies strictly inside (0, 1).
func linearRootInUnitInterval(accel, d0 float64) (float64, bool) {
	if accel == 0 {
		return 0, false
	}
	t := -d0 / accel
	return t, t > 0 && t < 1
}

// BoundingBox returns q's tight axis-aligned bounds, covering both
// endpoints and any interior extrema.
func (q QuadBez) BoundingBox() Rect {
	box := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		p := q.Eval(t)
		box = box.Union(NewRect(p, p))
	}
	return box
}

// cubicElevationFactor is 2/3, the weight applied when lifting a
// quadratic's control point into the two control points of an exactly
// equivalent cubic.
const cubicElevationFactor = 2.0 / 3.0

// Raise returns the cubic Bezier that traces exactly the same curve as q.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(cubicElevationFactor)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(cubicElevationFactor)),
		P3: q.P2,
	}
}

// CubicBez is a cubic Bezier curve: P0 and P3 are the endpoints, P1 and
// P2 are the control points.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez builds a cubic Bezier from its four control points.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at t via its Bernstein form
// (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Start returns P0.
func (c CubicBez) Start() Point { return c.P0 }

// End returns P3.
func (c CubicBez) End() Point { return c.P3 }

// Subdivide splits c at t=0.5 via de Casteljau's algorithm, returning
// the two half-curves in order.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// cubicTangentAt evaluates the cubic's derivative (unnormalized) at t
// from the control-polygon edge vectors d0, d1, d2.
func cubicTangentAt(d0, d1, d2 Point, t float64) Point {
	mt := 1 - t
	return d0.Mul(mt * mt).Add(d1.Mul(2 * mt * t)).Add(d2.Mul(t * t)).Mul(3)
}

// Subsegment returns the portion of c spanning [t0, t1], reconstructing
// control points from the curve's derivative at each endpoint.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	scale := (t1 - t0) / 3.0
	p1 := p0.Add(cubicTangentAt(d0, d1, d2, t0).Mul(scale))
	p2 := p3.Sub(cubicTangentAt(d0, d1, d2, t1).Mul(scale))

	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Extrema returns, in increasing order, the interior parameter values
// where c's tangent is horizontal or vertical — up to four values, since
// each axis's derivative is a quadratic with up to two roots.
func (c CubicBez) Extrema() []float64 {
	const maxExtrema = 4
	result := make([]float64, 0, maxExtrema)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, SolveQuadraticInUnitInterval(
		d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, SolveQuadraticInUnitInterval(
		d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns c's tight axis-aligned bounds, covering both
// endpoints and any interior extrema.
func (c CubicBez) BoundingBox() Rect {
	box := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		box = box.Union(NewRect(p, p))
	}
	return box
}

// Inflections returns, in increasing order, the parameter values in
// [0, 1] where c's curvature changes sign — at most two for a cubic.
// See https://www.caffeineowl.com/graphics/2d/vectorial/cubic-inflexion.html.
func (c CubicBez) Inflections() []float64 {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1).Sub(a)
	d := c.P3.Sub(c.P0).Sub(c.P2.Sub(c.P1).Mul(3))

	crossAB := a.Cross(b)
	crossAD := a.Cross(d)
	crossBD := b.Cross(d)

	roots := SolveQuadratic(crossBD, crossAD, crossAB)

	var result []float64
	for _, t := range roots {
		if t >= 0 && t <= 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// Deriv returns c's derivative as a quadratic Bezier — its control
// points give the tangent direction scaled by 3 at any point.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: c.P1.Sub(c.P0).Mul(3),
		P1: c.P2.Sub(c.P1).Mul(3),
		P2: c.P3.Sub(c.P2).Mul(3),
	}
}

// Tangent returns the (unnormalized) tangent vector at parameter t.
func (c CubicBez) Tangent(t float64) Vec2 {
	return PointToVec2(c.Deriv().Eval(t))
}

// Normal returns the unit vector perpendicular to the tangent at t.
func (c CubicBez) Normal(t float64) Vec2 {
	return c.Tangent(t).Perp().Normalize()
}
