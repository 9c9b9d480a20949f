package gg

import (
	"math"
	"sort"

	"github.com/gogpu/gg/internal/color"
)

// ExtendMode controls how a gradient's color is determined once the
// sampled parameter falls outside its defined [0, 1] span.
type ExtendMode int

const (
	// ExtendPad clamps to the nearest edge stop (the default).
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the gradient pattern indefinitely.
	ExtendRepeat
	// ExtendReflect mirrors the pattern at each boundary.
	ExtendReflect
)

// ColorStop pins a color to a position along a gradient's [0, 1] span.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// sortStops returns stops ordered by ascending offset, leaving the
// input slice untouched.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := append([]ColorStop(nil), stops...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode maps t into [0, 1] according to mode.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		return wrapUnit(t)
	case ExtendReflect:
		return reflectUnit(t)
	default:
		return clamp01(t)
	}
}

// wrapUnit reduces t modulo 1 into [0, 1).
func wrapUnit(t float64) float64 {
	t -= math.Floor(t)
	if t < 0 {
		t++
	}
	return t
}

// reflectUnit folds t into [0, 1], bouncing back at each integer boundary
// so every other period runs in reverse.
func reflectUnit(t float64) float64 {
	t = math.Abs(t)
	period := math.Floor(t)
	t -= period
	if int(period)%2 == 1 {
		t = 1 - t
	}
	return t
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// interpolateColorLinear blends c1 and c2 by converting to linear sRGB
// first, so the midpoint of a gradient between two saturated colors
// doesn't look darker than either endpoint.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	linear1 := color.SRGBToLinearColor(rgbaToColorF32(c1))
	linear2 := color.SRGBToLinearColor(rgbaToColorF32(c2))

	t32 := float32(t)
	blended := color.ColorF32{
		R: linear1.R + t32*(linear2.R-linear1.R),
		G: linear1.G + t32*(linear2.G-linear1.G),
		B: linear1.B + t32*(linear2.B-linear1.B),
		A: linear1.A + t32*(linear2.A-linear1.A),
	}

	return colorF32ToRGBA(color.LinearToSRGBColor(blended))
}

func rgbaToColorF32(c RGBA) color.ColorF32 {
	return color.ColorF32{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

func colorF32ToRGBA(c color.ColorF32) RGBA {
	return RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// colorAtOffset samples a gradient's stops at parameter t, handling the
// degenerate no-stop and single-stop cases before falling back to
// locating and interpolating between the bracketing pair.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	lo, hi := sorted[idx-1], sorted[idx]
	if hi.Offset == lo.Offset {
		return lo.Color
	}

	localT := (t - lo.Offset) / (hi.Offset - lo.Offset)
	return interpolateColorLinear(lo.Color, hi.Color, localT)
}
