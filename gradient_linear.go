package gg

// LinearGradientBrush paints a straight-line color transition between
// two points, following the vello/peniko gradient model: multiple color
// stops, linear-sRGB interpolation, and a configurable extend mode for
// samples outside the Start/End span.
//
// Example:
//
//	gradient := gg.NewLinearGradientBrush(0, 0, 100, 0).
//	    AddColorStop(0, gg.Red).
//	    AddColorStop(0.5, gg.Yellow).
//	    AddColorStop(1, gg.Blue)
//	ctx.SetFillBrush(gradient)
type LinearGradientBrush struct {
	Start  Point
	End    Point
	Stops  []ColorStop
	Extend ExtendMode
}

// NewLinearGradientBrush builds a linear gradient running from
// (x0, y0) to (x1, y1), with no stops yet and ExtendPad behavior.
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddColorStop appends a color at the given offset (expected in
// [0, 1]) and returns g for chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets how the gradient samples outside [Start, End] and
// returns g for chaining.
func (g *LinearGradientBrush) SetExtend(mode ExtendMode) *LinearGradientBrush {
	g.Extend = mode
	return g
}

func (LinearGradientBrush) brushMarker() {}

// ColorAt returns the gradient's color at (x, y), projecting the point
// onto the Start-End axis to get its parameter t.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	axis := g.End.Sub(g.Start)
	lengthSq := axis.LengthSquared()
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	t := Pt(x, y).Sub(g.Start).Dot(axis) / lengthSq
	return colorAtOffset(g.Stops, t, g.Extend)
}

// firstStopColor returns the color of the stop with the smallest
// offset, or Transparent if there are none.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}
