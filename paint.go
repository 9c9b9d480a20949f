package gg

// LineCap is the shape drawn at the open ends of a stroked line.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape drawn where two stroked segments meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// FillRule decides which regions of a self-intersecting or multi-subpath
// fill count as "inside".
type FillRule int

const (
	// FillRuleNonZero fills where the winding number is nonzero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills where the winding number is odd.
	FillRuleEvenOdd
)

// Paint bundles every style attribute that affects how a path is filled
// or stroked. Brush is the current way to specify color; Pattern is kept
// in step with it by SetBrush for code that still reads Pattern
// directly.
type Paint struct {
	Brush      Brush
	Pattern    Pattern
	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
	FillRule   FillRule
	Antialias  bool
}

const (
	defaultLineWidth  = 1.0
	defaultMiterLimit = 10.0
)

// NewPaint returns a Paint with the package's defaults: opaque black,
// 1-unit butt-capped miter-joined strokes, non-zero fill, antialiased.
func NewPaint() *Paint {
	return &Paint{
		Brush:      Solid(Black),
		Pattern:    NewSolidPattern(Black),
		LineWidth:  defaultLineWidth,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		FillRule:   FillRuleNonZero,
		Antialias:  true,
	}
}

// Clone returns an independent copy of p.
func (p *Paint) Clone() *Paint {
	clone := *p
	return &clone
}

// SetBrush sets p's Brush and mirrors it into Pattern (via
// PatternFromBrush) so call sites that still read Pattern directly see
// a consistent value.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
	p.Pattern = PatternFromBrush(b)
}

// GetBrush returns p's effective brush: Brush if set, otherwise Pattern
// adapted via BrushFromPattern, otherwise opaque black.
func (p *Paint) GetBrush() Brush {
	switch {
	case p.Brush != nil:
		return p.Brush
	case p.Pattern != nil:
		return BrushFromPattern(p.Pattern)
	default:
		return Solid(Black)
	}
}

// ColorAt returns p's effective color at (x, y), sampling whichever of
// Brush or Pattern is set (Brush takes precedence), or opaque black if
// neither is.
func (p *Paint) ColorAt(x, y float64) RGBA {
	switch {
	case p.Brush != nil:
		return p.Brush.ColorAt(x, y)
	case p.Pattern != nil:
		return p.Pattern.ColorAt(x, y)
	default:
		return Black
	}
}
