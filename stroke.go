package gg

// Stroke bundles every attribute needed to outline a path, in the
// tiny-skia/kurbo style of a single immutable-by-convention value type
// with fluent With* setters that return a modified copy.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Dash is nil for a solid line.
	Dash *Dash
}

const defaultMiterLimitRatio = 4.0

// DefaultStroke returns a solid 1-pixel stroke with butt caps, miter
// joins, and the SVG-standard miter limit.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: defaultMiterLimitRatio,
	}
}

func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit sets the ratio between miter length and stroke width
// above which a miter join is converted to a bevel. 1.0 effectively
// disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy carrying its own clone of dash, or a solid
// stroke if dash is nil.
func (s Stroke) WithDash(dash *Dash) Stroke {
	s.Dash = cloneDashOrNil(dash)
	return s
}

func cloneDashOrNil(dash *Dash) *Dash {
	if dash == nil {
		return nil
	}
	return dash.Clone()
}

// WithDashPattern builds a Dash from lengths and attaches it.
//
//	stroke.WithDashPattern(5, 3) // 5 units on, 3 units off
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset shifts the existing dash pattern's phase; a no-op when
// there is no dash set.
func (s Stroke) WithDashOffset(offset float64) Stroke {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

func (s Stroke) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone deep-copies s, including its Dash if any.
func (s Stroke) Clone() Stroke {
	clone := s
	clone.Dash = cloneDashOrNil(s.Dash)
	return clone
}

func Thin() Stroke  { return DefaultStroke().WithWidth(0.5) }
func Thick() Stroke { return DefaultStroke().WithWidth(3.0) }
func Bold() Stroke  { return DefaultStroke().WithWidth(5.0) }

func RoundStroke() Stroke {
	return DefaultStroke().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

func SquareStroke() Stroke {
	return DefaultStroke().WithCap(LineCapSquare)
}

func DashedStroke(lengths ...float64) Stroke {
	return DefaultStroke().WithDashPattern(lengths...)
}

// DottedStroke is a round-capped 2px stroke with a near-zero dash and a
// 4-unit gap, giving evenly spaced round dots.
func DottedStroke() Stroke {
	return Stroke{
		Width:      2.0,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: defaultMiterLimitRatio,
		Dash:       NewDash(0.1, 4),
	}
}
