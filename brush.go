package gg

// Brush is what a fill or stroke paints with. It is a sealed interface —
// brushMarker is unexported, so only types in this package can implement
// it — following the vello/peniko convention of a closed brush enum
// (solid color, gradients, custom functions) rather than an open one.
//
// Example:
//
//	ctx.SetFillBrush(gg.Solid(gg.Red))
//	ctx.SetStrokeBrush(gg.SolidRGB(0.5, 0.5, 0.5))
//	brush := gg.SolidHex("#FF5733")
type Brush interface {
	brushMarker()

	// ColorAt returns the brush's color at (x, y). A solid brush ignores
	// its arguments; a gradient or pattern brush samples at that point.
	ColorAt(x, y float64) RGBA
}

// SolidBrush paints every point the same color.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt always returns b.Color.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid builds a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB builds an opaque SolidBrush from RGB channels in [0, 1].
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}

// SolidRGBA builds a SolidBrush from RGBA channels in [0, 1].
func SolidRGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: RGBA2(r, g, b, a)}
}

// SolidHex builds a SolidBrush by parsing a hex color string (see Hex
// for accepted forms).
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a copy of b with alpha replaced, keeping its RGB
// channels.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	c := b.Color
	c.A = alpha
	return SolidBrush{Color: c}
}

// Opaque returns a copy of b with alpha set to 1.
func (b SolidBrush) Opaque() SolidBrush {
	return b.WithAlpha(1.0)
}

// Transparent returns a copy of b with alpha set to 0.
func (b SolidBrush) Transparent() SolidBrush {
	return b.WithAlpha(0.0)
}

// Lerp returns a SolidBrush whose color interpolates between b and other.
func (b SolidBrush) Lerp(other SolidBrush, t float64) SolidBrush {
	return SolidBrush{Color: b.Color.Lerp(other.Color, t)}
}

// BrushFromPattern adapts a legacy Pattern to the Brush interface: a
// SolidPattern becomes a SolidBrush directly, anything else is wrapped in
// a CustomBrush that forwards to the pattern's ColorAt.
//
// Deprecated: construct a Brush type directly instead of going through
// Pattern.
func BrushFromPattern(p Pattern) Brush {
	if sp, ok := p.(*SolidPattern); ok {
		return SolidBrush{Color: sp.Color}
	}
	return CustomBrush{Func: p.ColorAt, Name: "pattern"}
}

// PatternFromBrush adapts a Brush to the legacy Pattern interface: a
// SolidBrush becomes a SolidPattern directly, anything else is wrapped.
//
// Deprecated: consume Brush types directly instead of going through
// Pattern.
func PatternFromBrush(b Brush) Pattern {
	if sb, ok := b.(SolidBrush); ok {
		return NewSolidPattern(sb.Color)
	}
	return &brushPattern{brush: b}
}

// brushPattern adapts a Brush to the Pattern interface by forwarding
// ColorAt.
type brushPattern struct {
	brush Brush
}

func (p *brushPattern) ColorAt(x, y float64) RGBA {
	return p.brush.ColorAt(x, y)
}
