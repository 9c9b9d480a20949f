package gg

// Painter generates colors for a rendering pass. Implementing Pattern is
// usually enough — PainterFromPaint wraps it automatically. Implement
// Painter directly only when a custom span-based fast path matters.
type Painter interface {
	// PaintSpan writes length colors into dest for the pixel row
	// starting at (x, y).
	PaintSpan(dest []RGBA, x, y, length int)
}

// SolidPainter fills every pixel of a span with the same color — the
// cheapest Painter there is.
type SolidPainter struct {
	Color RGBA
}

func (p *SolidPainter) PaintSpan(dest []RGBA, _, _ int, length int) {
	n := min(length, len(dest))
	for i := 0; i < n; i++ {
		dest[i] = p.Color
	}
}

// FuncPainter samples a ColorAt-shaped function once per pixel center.
type FuncPainter struct {
	Fn func(x, y float64) RGBA
}

func (p *FuncPainter) PaintSpan(dest []RGBA, x, y, length int) {
	const pixelCenterOffset = 0.5
	fy := float64(y) + pixelCenterOffset
	n := min(length, len(dest))
	for i := 0; i < n; i++ {
		dest[i] = p.Fn(float64(x+i)+pixelCenterOffset, fy)
	}
}

// PainterFromPaint picks the cheapest Painter that can render paint:
// a solid Brush or Pattern becomes SolidPainter; a Brush that already
// implements Painter is used directly; anything else falls back to a
// FuncPainter sampling ColorAt per pixel. Brush takes precedence over
// the legacy Pattern field when both are set.
func PainterFromPaint(paint *Paint) Painter {
	if paint.Brush != nil {
		return painterFromBrush(paint.Brush)
	}
	if paint.Pattern != nil {
		return painterFromPattern(paint.Pattern)
	}
	return &SolidPainter{Color: Black}
}

func painterFromBrush(b Brush) Painter {
	if sb, ok := b.(SolidBrush); ok {
		return &SolidPainter{Color: sb.Color}
	}
	if p, ok := b.(Painter); ok {
		return p
	}
	return &FuncPainter{Fn: b.ColorAt}
}

func painterFromPattern(p Pattern) Painter {
	if sp, ok := p.(*SolidPattern); ok {
		return &SolidPainter{Color: sp.Color}
	}
	return &FuncPainter{Fn: p.ColorAt}
}
