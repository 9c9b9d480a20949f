package gg

import "math"

// PathElement is one instruction in a Path's recorded command stream.
// The concrete types below are the only implementations.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve through Control to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve through Control1 and Control2 to
// Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close draws a straight segment back to the subpath's starting point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of MoveTo/LineTo/QuadTo/CubicTo/Close
// commands describing one or more subpaths, independent of how it will
// eventually be filled or stroked.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

const pathElementCapHint = 16

// NewPath returns an empty path ready for commands.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, pathElementCapHint)}
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo appends a quadratic Bezier curve with control point (cx, cy)
// ending at (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo appends a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close appends a segment back to the current subpath's start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear discards every recorded command, leaving p empty.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements exposes the recorded command stream in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns where the next command would start from.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether any command has been recorded yet.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Transform returns a new path with every coordinate of p mapped through
// m; p itself is left unmodified.
func (p *Path) Transform(m Matrix) *Path {
	out := NewPath()
	for _, elem := range p.elements {
		appendTransformedElement(out, m, elem)
	}
	return out
}

func appendTransformedElement(out *Path, m Matrix, elem PathElement) {
	switch e := elem.(type) {
	case MoveTo:
		pt := m.TransformPoint(e.Point)
		out.MoveTo(pt.X, pt.Y)
	case LineTo:
		pt := m.TransformPoint(e.Point)
		out.LineTo(pt.X, pt.Y)
	case QuadTo:
		ctrl := m.TransformPoint(e.Control)
		pt := m.TransformPoint(e.Point)
		out.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
	case CubicTo:
		c1 := m.TransformPoint(e.Control1)
		c2 := m.TransformPoint(e.Control2)
		pt := m.TransformPoint(e.Point)
		out.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
	case Close:
		out.Close()
	}
}

// Rectangle appends an axis-aligned closed rectangle with corner (x, y)
// and size (w, h).
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// kappa is the cubic-Bezier control-point offset ratio (4/3)(sqrt(2)-1)
// that best approximates a quarter circle of unit radius.
const kappa = 0.5522847498307936

// Circle appends a closed circle of radius r centered at (cx, cy), built
// from four cubic Bezier quadrants.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse appends a closed ellipse with radii (rx, ry) centered at
// (cx, cy), built from four cubic Bezier quadrants.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// maxArcSegmentAngle bounds each cubic Bezier approximation of an arc to
// a quarter turn, past which the single-segment error grows too large.
const maxArcSegmentAngle = math.Pi / 2

// Arc appends a circular arc of radius r around (cx, cy), sweeping
// counter-clockwise from angle1 to angle2 (radians), split into enough
// cubic Bezier segments to keep each one under a quarter turn.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	segments := int(math.Ceil((angle2 - angle1) / maxArcSegmentAngle))
	step := (angle2 - angle1) / float64(segments)

	for i := 0; i < segments; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

// arcSegment appends one cubic Bezier approximating the arc from a1 to a2
// (at most a quarter turn), using the tangent-length formula from
// "Drawing an elliptical arc using polylines, quadratic or cubic Bezier
// curves" (Maisonobe).
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	half := (a2 - a1) / 2
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan(half)*math.Tan(half)) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	c1x, c1y := x1-alpha*r*sin1, y1+alpha*r*cos1
	c2x, c2y := x2+alpha*r*sin2, y2-alpha*r*cos2

	if !p.HasCurrentPoint() {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// RoundedRectangle appends a closed rectangle with corner (x, y), size
// (w, h), and corner radius r, clamped so opposing rounds never overlap.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	if maxR := math.Min(w, h) / 2; r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}

// Clone returns an independent copy of p; mutating the clone never
// affects p and vice versa.
func (p *Path) Clone() *Path {
	out := NewPath()
	out.elements = append(out.elements[:0], p.elements...)
	out.start = p.start
	out.current = p.current
	return out
}
