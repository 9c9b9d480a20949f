package gg

import "math"

// RadialGradientBrush paints colors radiating outward from a focal point
// within a circle bounded by StartRadius and EndRadius, following the
// vello/peniko gradient model. A focus offset from the center produces a
// spotlight-style asymmetric gradient.
//
// Example:
//
//	// Simple radial gradient
//	gradient := gg.NewRadialGradientBrush(50, 50, 0, 50).
//	    AddColorStop(0, gg.White).
//	    AddColorStop(1, gg.Black)
//
//	// Focal gradient (spotlight effect)
//	spotlight := gg.NewRadialGradientBrush(50, 50, 0, 50).
//	    SetFocus(30, 30).
//	    AddColorStop(0, gg.White).
//	    AddColorStop(1, gg.Black)
type RadialGradientBrush struct {
	Center      Point
	Focus       Point
	StartRadius float64
	EndRadius   float64
	Stops       []ColorStop
	Extend      ExtendMode
}

// NewRadialGradientBrush builds a radial gradient centered at (cx, cy)
// transitioning from startRadius (t=0) to endRadius (t=1), with Focus
// defaulting to the center.
func NewRadialGradientBrush(cx, cy, startRadius, endRadius float64) *RadialGradientBrush {
	center := Point{X: cx, Y: cy}
	return &RadialGradientBrush{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
	}
}

// SetFocus moves the focal point away from the center, producing an
// asymmetric gradient, and returns g for chaining.
func (g *RadialGradientBrush) SetFocus(fx, fy float64) *RadialGradientBrush {
	g.Focus = Point{X: fx, Y: fy}
	return g
}

// AddColorStop appends a color at the given offset (expected in
// [0, 1]) and returns g for chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets how the gradient samples beyond EndRadius and returns g
// for chaining.
func (g *RadialGradientBrush) SetExtend(mode ExtendMode) *RadialGradientBrush {
	g.Extend = mode
	return g
}

func (RadialGradientBrush) brushMarker() {}

// ColorAt returns the gradient's color at (x, y).
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.EndRadius-g.StartRadius == 0 {
		return firstStopColor(g.Stops)
	}
	return colorAtOffset(g.Stops, g.computeT(x, y), g.Extend)
}

// computeT dispatches to the cheap concentric-circle formula when Focus
// coincides with Center, or to ray-circle intersection otherwise.
func (g *RadialGradientBrush) computeT(x, y float64) float64 {
	if g.Focus == g.Center {
		return g.computeTSimple(x, y)
	}
	return g.computeTFocal(x, y)
}

// computeTSimple maps a point's distance from Center linearly between
// StartRadius and EndRadius.
func (g *RadialGradientBrush) computeTSimple(x, y float64) float64 {
	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return 0
	}
	distance := Pt(x, y).Distance(g.Center)
	return (distance - g.StartRadius) / radiusDiff
}

// computeTFocal solves for where the ray from Focus through (x, y)
// crosses the EndRadius circle around Center, then expresses the point's
// position as a fraction of that ray's length — the standard SVG/CSS
// focal-radial-gradient construction.
func (g *RadialGradientBrush) computeTFocal(x, y float64) float64 {
	// Ray: P(t) = Focus + t*(point - Focus).
	// Circle: |P - Center|^2 = EndRadius^2.
	rayDir := Pt(x, y).Sub(g.Focus)
	focusToCenter := g.Center.Sub(g.Focus)

	a := rayDir.LengthSquared()
	if a == 0 {
		return 0
	}
	b := -2 * rayDir.Dot(focusToCenter)
	c := focusToCenter.LengthSquared() - g.EndRadius*g.EndRadius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1 // outside the gradient circle entirely
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	intersectT, ok := smallestPositive(t1, t2)
	if !ok {
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := intersectT * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}

// smallestPositive returns the smaller of t1, t2 that is positive,
// falling back to whichever one is positive if only one is.
func smallestPositive(t1, t2 float64) (float64, bool) {
	switch {
	case t1 > 0 && t2 > 0:
		return math.Min(t1, t2), true
	case t1 > 0:
		return t1, true
	case t2 > 0:
		return t2, true
	default:
		return 0, false
	}
}
