package gg

import "math"

// Path analysis: signed area, winding number / containment, bounding box,
// flattening to polylines, direction reversal, and arc length.

const (
	defaultFlattenTolerance = 0.1
	defaultLengthAccuracy   = 0.001
)

// Area returns the signed area enclosed by the path's closed subpaths,
// via Green's theorem applied segment-by-segment (the shoelace formula,
// extended to curves). Positive for clockwise winding, negative for
// counter-clockwise. Open subpaths do not contribute.
func (p *Path) Area() float64 {
	var area float64
	var start, current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start, current = e.Point, e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
		}
	}
	return area
}

// lineArea is the shoelace contribution of segment p0->p1.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea is the closed-form integral of x*dy along a quadratic Bezier
// B(t) = (1-t)^2 P0 + 2(1-t)t P1 + t^2 P2.
func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + p1.X*(p2.Y-p0.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6.0
}

// cubicArea is the closed-form integral of x*dy along a cubic Bezier,
// following the formula used by kurbo for the same purpose.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Winding returns pt's winding number against the path, computed by
// casting a ray to the right and counting signed crossings. Zero means
// outside; any non-zero value means inside under the non-zero fill rule.
func (p *Path) Winding(pt Point) int {
	var winding int
	var start, current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start, current = e.Point, e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case QuadTo:
			winding += quadWinding(current, e.Control, e.Point, pt)
			current = e.Point
		case CubicTo:
			winding += cubicWinding(current, e.Control1, e.Control2, e.Point, pt)
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
		}
	}
	return winding
}

// lineWinding returns the ±1 crossing contribution of segment p0->p1
// against a rightward ray from pt, or 0 if the segment doesn't cross it.
func lineWinding(p0, p1, pt Point) int {
	switch {
	case p0.Y <= pt.Y && p1.Y > pt.Y:
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	case p0.Y > pt.Y && p1.Y <= pt.Y:
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive when pt lies left of the directed line p0->p1,
// negative when right, zero when collinear.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// curveWindingTolerance is the chord-flatness threshold used when
// approximating a curve's winding contribution with line segments.
const curveWindingTolerance = 0.1

// quadWinding bounds-checks before flattening the quadratic into
// segments whose winding contributions are summed against pt.
func quadWinding(p0, p1, p2, pt Point) int {
	if outsideVerticalRange(pt, p0.Y, p1.Y, p2.Y) {
		return 0
	}
	if pt.X > maxOf(p0.X, p1.X, p2.X) {
		return 0
	}

	var winding int
	accumulateQuadWinding(NewQuadBez(p0, p1, p2), pt, curveWindingTolerance, &winding)
	return winding
}

func accumulateQuadWinding(q QuadBez, pt Point, tolerance float64, winding *int) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Sub(mid).Length() <= tolerance {
		*winding += lineWinding(q.P0, q.P2, pt)
		return
	}
	q1, q2 := q.Subdivide()
	accumulateQuadWinding(q1, pt, tolerance, winding)
	accumulateQuadWinding(q2, pt, tolerance, winding)
}

// cubicWinding bounds-checks before flattening the cubic into segments
// whose winding contributions are summed against pt.
func cubicWinding(p0, p1, p2, p3, pt Point) int {
	if outsideVerticalRange(pt, p0.Y, p1.Y, p2.Y, p3.Y) {
		return 0
	}
	if pt.X > maxOf(p0.X, p1.X, p2.X, p3.X) {
		return 0
	}

	var winding int
	accumulateCubicWinding(NewCubicBez(p0, p1, p2, p3), pt, curveWindingTolerance, &winding)
	return winding
}

func accumulateCubicWinding(c CubicBez, pt Point, tolerance float64, winding *int) {
	if cubicFlatness(c) <= tolerance {
		*winding += lineWinding(c.P0, c.P3, pt)
		return
	}
	c1, c2 := c.Subdivide()
	accumulateCubicWinding(c1, pt, tolerance, winding)
	accumulateCubicWinding(c2, pt, tolerance, winding)
}

func outsideVerticalRange(pt Point, ys ...float64) bool {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	return pt.Y < lo || pt.Y > hi
}

func maxOf(xs ...float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		m = math.Max(m, x)
	}
	return m
}

// cubicFlatness measures how far a cubic's control points stray from the
// chord P0-P3, the larger of the two endpoint deviations (tiny-skia's
// metric, scaled): a perfectly straight cubic evaluates to zero.
func cubicFlatness(c CubicBez) float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// Contains reports whether pt lies inside the path under the non-zero
// fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// BoundingBox returns the tight axis-aligned bounding box of the path,
// using each curve's true extrema rather than its control-point hull.
func (p *Path) BoundingBox() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}

	box := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			box = expandBBox(box, e.Point)
			current = e.Point
		case LineTo:
			box = expandBBox(box, e.Point)
			current = e.Point
		case QuadTo:
			box = box.Union(NewQuadBez(current, e.Control, e.Point).BoundingBox())
			current = e.Point
		case CubicTo:
			box = box.Union(NewCubicBez(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		case Close:
		}
	}

	if box.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return box
}

func expandBBox(box Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(box.Min.X, pt.X), Y: math.Min(box.Min.Y, pt.Y)},
		Max: Point{X: math.Max(box.Max.X, pt.X), Y: math.Max(box.Max.Y, pt.Y)},
	}
}

// Flatten returns the path as a sequence of points with curves replaced
// by line segments accurate to within tolerance. Flatten allocates;
// FlattenCallback avoids that cost for callers that can consume points
// as they're produced.
func (p *Path) Flatten(tolerance float64) []Point {
	if len(p.elements) == 0 {
		return nil
	}
	const pointsPerElementHint = 4
	points := make([]Point, 0, len(p.elements)*pointsPerElementHint)
	p.FlattenCallback(tolerance, func(pt Point) {
		points = append(points, pt)
	})
	return points
}

// FlattenCallback invokes fn once per vertex of the flattened path, in
// order, including the leading point of every subpath.
func (p *Path) FlattenCallback(tolerance float64, fn func(pt Point)) {
	if tolerance <= 0 {
		tolerance = defaultFlattenTolerance
	}

	var start, current Point
	var inSubpath bool

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if inSubpath {
				fn(current)
			}
			fn(e.Point)
			start, current = e.Point, e.Point
			inSubpath = true
		case LineTo:
			fn(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(current, e.Control, e.Point, tolerance, fn)
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, fn)
			current = e.Point
		case Close:
			if current != start {
				fn(start)
			}
			current = start
		}
	}
}

func flattenQuad(p0, p1, p2 Point, tolerance float64, fn func(pt Point)) {
	flattenQuadRecursive(NewQuadBez(p0, p1, p2), tolerance*tolerance, fn)
}

func flattenQuadRecursive(q QuadBez, toleranceSq float64, fn func(pt Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Sub(mid).LengthSquared() <= toleranceSq {
		fn(q.P2)
		return
	}
	q1, q2 := q.Subdivide()
	flattenQuadRecursive(q1, toleranceSq, fn)
	flattenQuadRecursive(q2, toleranceSq, fn)
}

func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, fn func(pt Point)) {
	flattenCubicRecursive(NewCubicBez(p0, p1, p2, p3), tolerance*tolerance, fn)
}

// cubicFlatnessScale accounts for cubicFlatness's metric running roughly
// 16x a squared-distance tolerance at the same perceptual accuracy.
const cubicFlatnessScale = 16

func flattenCubicRecursive(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	if cubicFlatness(c) <= toleranceSq*cubicFlatnessScale {
		fn(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubicRecursive(c1, toleranceSq, fn)
	flattenCubicRecursive(c2, toleranceSq, fn)
}

// subpath is one MoveTo-to-Close (or MoveTo-to-end) run of elements,
// isolated so Reversed can flip each independently.
type subpath struct {
	elements []PathElement
	closed   bool
}

// Reversed returns a new path in which every subpath traces the same
// geometry in the opposite direction; p is left unmodified.
func (p *Path) Reversed() *Path {
	if len(p.elements) == 0 {
		return NewPath()
	}

	out := NewPath()
	for _, sp := range p.collectSubpaths() {
		reverseSubpath(sp, out)
	}
	return out
}

// collectSubpaths splits p's element stream at each MoveTo/Close boundary.
func (p *Path) collectSubpaths() []subpath {
	var subpaths []subpath
	var cur subpath

	flush := func() {
		if len(cur.elements) > 0 {
			subpaths = append(subpaths, cur)
		}
	}

	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo:
			flush()
			cur = subpath{elements: []PathElement{elem}}
		case Close:
			cur.closed = true
			subpaths = append(subpaths, cur)
			cur = subpath{}
		default:
			cur.elements = append(cur.elements, elem)
		}
	}
	flush()

	return subpaths
}

// reverseSubpath walks sp's elements back to front, swapping each
// segment's direction (and a cubic's control points), and appends the
// result to result.
func reverseSubpath(sp subpath, result *Path) {
	if len(sp.elements) == 0 {
		return
	}

	end := subpathEndpoint(sp)
	result.MoveTo(end.X, end.Y)

	for i := len(sp.elements) - 1; i >= 0; i-- {
		prev := elementStartPoint(sp, i)
		switch e := sp.elements[i].(type) {
		case MoveTo:
			continue
		case LineTo:
			result.LineTo(prev.X, prev.Y)
		case QuadTo:
			result.QuadraticTo(e.Control.X, e.Control.Y, prev.X, prev.Y)
		case CubicTo:
			result.CubicTo(e.Control2.X, e.Control2.Y, e.Control1.X, e.Control1.Y, prev.X, prev.Y)
		}
	}

	if sp.closed {
		result.Close()
	}
}

// elementEndpoint returns where elem leaves the pen, or ok=false for
// elements (none currently) with no endpoint.
func elementEndpoint(elem PathElement) (Point, bool) {
	switch e := elem.(type) {
	case MoveTo:
		return e.Point, true
	case LineTo:
		return e.Point, true
	case QuadTo:
		return e.Point, true
	case CubicTo:
		return e.Point, true
	default:
		return Point{}, false
	}
}

// subpathEndpoint returns the final drawn point of sp, scanning backward
// past trailing elements with no endpoint of their own.
func subpathEndpoint(sp subpath) Point {
	for i := len(sp.elements) - 1; i >= 0; i-- {
		if pt, ok := elementEndpoint(sp.elements[i]); ok {
			return pt
		}
	}
	return Point{}
}

// elementStartPoint returns the pen position just before element i: the
// subpath's MoveTo point for i==0, otherwise element i-1's endpoint.
func elementStartPoint(sp subpath, i int) Point {
	if i == 0 {
		if m, ok := sp.elements[0].(MoveTo); ok {
			return m.Point
		}
		return Point{}
	}
	pt, _ := elementEndpoint(sp.elements[i-1])
	return pt
}

// Length returns the path's total arc length, approximating curves via
// adaptive subdivision to within accuracy.
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = defaultLengthAccuracy
	}

	var length float64
	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
		case LineTo:
			length += current.Distance(e.Point)
			current = e.Point
		case QuadTo:
			length += quadLength(current, e.Control, e.Point, accuracy)
			current = e.Point
		case CubicTo:
			length += cubicLength(current, e.Control1, e.Control2, e.Point, accuracy)
			current = e.Point
		case Close:
		}
	}
	return length
}

func quadLength(p0, p1, p2 Point, accuracy float64) float64 {
	return quadLengthRecursive(NewQuadBez(p0, p1, p2), accuracy*accuracy)
}

// quadLengthRecursive averages chord and control-polygon length once
// they're close enough to agree within accuracySq, else subdivides.
func quadLengthRecursive(q QuadBez, accuracySq float64) float64 {
	chord := q.P0.Distance(q.P2)
	polygon := q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
	if diff := polygon - chord; diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}
	q1, q2 := q.Subdivide()
	return quadLengthRecursive(q1, accuracySq) + quadLengthRecursive(q2, accuracySq)
}

func cubicLength(p0, p1, p2, p3 Point, accuracy float64) float64 {
	return cubicLengthRecursive(NewCubicBez(p0, p1, p2, p3), accuracy*accuracy)
}

func cubicLengthRecursive(c CubicBez, accuracySq float64) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if diff := polygon - chord; diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}
	c1, c2 := c.Subdivide()
	return cubicLengthRecursive(c1, accuracySq) + cubicLengthRecursive(c2, accuracySq)
}
