package gg

import "math"

// SweepGradientBrush paints an angular (conic) color transition around a
// center point, sweeping from StartAngle to EndAngle, following the
// vello/peniko gradient model. Useful for color wheels, pie charts, and
// radar-style displays.
//
// Example:
//
//	wheel := gg.NewSweepGradientBrush(50, 50, 0).
//	    AddColorStop(0, gg.Red).
//	    AddColorStop(0.166, gg.Yellow).
//	    AddColorStop(0.333, gg.Green).
//	    AddColorStop(0.5, gg.Cyan).
//	    AddColorStop(0.666, gg.Blue).
//	    AddColorStop(0.833, gg.Magenta).
//	    AddColorStop(1, gg.Red)
type SweepGradientBrush struct {
	Center     Point
	StartAngle float64
	EndAngle   float64
	Stops      []ColorStop
	Extend     ExtendMode
}

// NewSweepGradientBrush builds a sweep gradient centered at (cx, cy)
// starting at startAngle radians and running a full turn by default.
func NewSweepGradientBrush(cx, cy, startAngle float64) *SweepGradientBrush {
	return &SweepGradientBrush{
		Center:     Point{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		Extend:     ExtendPad,
	}
}

// SetEndAngle sets where the sweep stops and returns g for chaining.
func (g *SweepGradientBrush) SetEndAngle(endAngle float64) *SweepGradientBrush {
	g.EndAngle = endAngle
	return g
}

// AddColorStop appends a color at the given offset (expected in
// [0, 1]) and returns g for chaining.
func (g *SweepGradientBrush) AddColorStop(offset float64, c RGBA) *SweepGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets how the gradient samples outside [StartAngle, EndAngle]
// and returns g for chaining.
func (g *SweepGradientBrush) SetExtend(mode ExtendMode) *SweepGradientBrush {
	g.Extend = mode
	return g
}

func (SweepGradientBrush) brushMarker() {}

// ColorAt returns the gradient's color at (x, y); the center itself has
// no defined angle, so it resolves to the first stop's color.
func (g *SweepGradientBrush) ColorAt(x, y float64) RGBA {
	offset := Pt(x, y).Sub(g.Center)
	if offset.X == 0 && offset.Y == 0 {
		return firstStopColor(g.Stops)
	}

	angle := math.Atan2(offset.Y, offset.X)
	return colorAtOffset(g.Stops, g.angleToT(angle), g.Extend)
}

// angleToT maps angle (radians) into the gradient's [0, 1] parameter
// space relative to StartAngle/EndAngle.
func (g *SweepGradientBrush) angleToT(angle float64) float64 {
	sweep := g.EndAngle - g.StartAngle
	if sweep == 0 {
		return 0
	}

	relative := wrapToSweep(angle-g.StartAngle, sweep)
	return relative / sweep
}

// wrapToSweep normalizes angle into [0, 2π) when sweep is positive, or
// into (-2π, 0] when sweep is negative — matching the direction the
// gradient is defined to travel.
func wrapToSweep(angle, sweep float64) float64 {
	const twoPi = 2 * math.Pi

	if sweep > 0 {
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
		return angle
	}

	for angle > 0 {
		angle -= twoPi
	}
	for angle <= -twoPi {
		angle += twoPi
	}
	return angle
}
