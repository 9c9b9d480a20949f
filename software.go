package gg

import (
	"github.com/gogpu/gg/internal/raster"
	"github.com/gogpu/gg/internal/stroke"
)

// SoftwareRenderer is a CPU-based scanline rasterizer. It rasterizes paths
// with the analytic-AA scan-converter in internal/raster: edges are built
// directly from path geometry (curves chopped at their Y extrema, never
// flattened to lines), and coverage is computed by exact trapezoidal area
// rather than supersampling.
type SoftwareRenderer struct {
	builder *raster.EdgeBuilder
	filler  *raster.AnalyticFiller

	width, height int
}

// analyticAAShift is the AA-quality shift passed to EdgeBuilder; it controls
// the sub-pixel precision used for fixed-point edge coordinates, not a
// supersampling factor.
const analyticAAShift = 2

// NewSoftwareRenderer creates a new software renderer for a surface of the
// given pixel dimensions.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		builder: raster.NewEdgeBuilder(analyticAAShift),
		filler:  raster.NewAnalyticFiller(width, height),
		width:   width,
		height:  height,
	}
}

// Resize rebuilds the renderer's internal coverage buffers for a new target
// size. The edge builder is reused as-is; it carries no per-size state.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.filler = raster.NewAnalyticFiller(width, height)
}

// pathAdapter exposes a gg.Path as raster.PathLike. Coordinates are already
// in device space by the time Context hands the path to the renderer, so
// the builder is always driven with raster.IdentityTransform.
type pathAdapter struct {
	verbs  []raster.PathVerb
	points []float32
}

func newPathAdapter(p *Path) *pathAdapter {
	a := &pathAdapter{
		verbs:  make([]raster.PathVerb, 0, len(p.Elements())),
		points: make([]float32, 0, len(p.Elements())*2),
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			a.verbs = append(a.verbs, raster.VerbMoveTo)
			a.points = append(a.points, float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			a.verbs = append(a.verbs, raster.VerbLineTo)
			a.points = append(a.points, float32(e.Point.X), float32(e.Point.Y))
		case QuadTo:
			a.verbs = append(a.verbs, raster.VerbQuadTo)
			a.points = append(a.points,
				float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			a.verbs = append(a.verbs, raster.VerbCubicTo)
			a.points = append(a.points,
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case Close:
			a.verbs = append(a.verbs, raster.VerbClose)
		}
	}
	return a
}

func (a *pathAdapter) IsEmpty() bool          { return len(a.verbs) == 0 }
func (a *pathAdapter) Verbs() []raster.PathVerb { return a.verbs }
func (a *pathAdapter) Points() []float32      { return a.points }

// getColorFromPaint extracts the solid color from the paint.
// Returns Black if no solid pattern is found.
func (r *SoftwareRenderer) getColorFromPaint(paint *Paint) RGBA {
	solidPattern, ok := paint.Pattern.(*SolidPattern)
	if !ok {
		return Black
	}
	return solidPattern.Color
}

// Fill implements Renderer.Fill, rasterizing the path with analytic
// anti-aliasing and compositing the paint's color source-over the pixmap.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	color := r.getColorFromPaint(paint)

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	r.builder.Reset()
	r.builder.BuildFromPath(newPathAdapter(p), raster.IdentityTransform{})
	r.filler.Reset()

	r.filler.Fill(r.builder, fillRule, func(y int, runs *raster.AlphaRuns) {
		r.blendAlphaRuns(pixmap, y, runs, color)
	})

	return nil
}

// blendAlphaRuns composites a scanline's run-length coverage against the
// pixmap using source-over compositing.
func (r *SoftwareRenderer) blendAlphaRuns(pixmap *Pixmap, y int, runs *raster.AlphaRuns, color RGBA) {
	if y < 0 || y >= pixmap.Height() || runs == nil {
		return
	}

	for x, alpha := range runs.Iter() {
		if x >= 0 && x < pixmap.Width() {
			blendPixelSourceOver(pixmap, x, y, color, alpha)
		}
	}
}

// blendPixelSourceOver composites color, scaled by an 8-bit coverage value,
// over the existing pixel using source-over compositing.
func blendPixelSourceOver(pixmap *Pixmap, x, y int, color RGBA, coverage uint8) {
	if coverage == 255 && color.A == 1.0 {
		pixmap.SetPixel(x, y, color)
		return
	}

	existing := pixmap.GetPixel(x, y)

	srcAlpha := color.A * float64(coverage) / 255.0
	invSrcAlpha := 1.0 - srcAlpha

	outA := srcAlpha + existing.A*invSrcAlpha
	if outA > 0 {
		outR := (color.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA
		outG := (color.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA
		outB := (color.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA
		pixmap.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
	}
}

// FillNoAA fills without anti-aliasing: coverage values below full are
// treated as fully covered or fully uncovered at the 50% threshold.
func (r *SoftwareRenderer) FillNoAA(pixmap *Pixmap, p *Path, paint *Paint) error {
	solidPattern, ok := paint.Pattern.(*SolidPattern)
	if !ok {
		return nil
	}
	color := solidPattern.Color

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	r.builder.Reset()
	r.builder.BuildFromPath(newPathAdapter(p), raster.IdentityTransform{})
	r.filler.Reset()

	r.filler.Fill(r.builder, fillRule, func(y int, runs *raster.AlphaRuns) {
		if y < 0 || y >= pixmap.Height() || runs == nil {
			return
		}
		for x, alpha := range runs.Iter() {
			if alpha >= 128 && x >= 0 && x < pixmap.Width() {
				pixmap.SetPixel(x, y, color)
			}
		}
	})

	return nil
}

// Stroke implements Renderer.Stroke with anti-aliasing support.
// Strokes are expanded to fill paths and rendered with the Fill method
// to get smooth anti-aliased edges.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	// Convert gg.Path to stroke.PathElement
	strokeElements := convertPathToStrokeElements(p)

	// Create stroke style from paint
	strokeStyle := stroke.Stroke{
		Width:      paint.LineWidth,
		Cap:        convertLineCap(paint.LineCap),
		Join:       convertLineJoin(paint.LineJoin),
		MiterLimit: paint.MiterLimit,
	}
	if strokeStyle.MiterLimit <= 0 {
		strokeStyle.MiterLimit = 4.0 // Default
	}

	// Create stroke expander with sub-pixel tolerance for smooth curves
	expander := stroke.NewStrokeExpander(strokeStyle)
	expander.SetTolerance(0.1) // Balance between smoothness and performance

	// Expand stroke to fill path
	expandedElements := expander.Expand(strokeElements)

	// Convert back to gg.Path
	strokePath := convertStrokeElementsToPath(expandedElements)

	// Fill the stroke path - this gives us anti-aliased strokes
	return r.Fill(pixmap, strokePath, paint)
}

// convertPathToStrokeElements converts gg.Path elements to stroke.PathElement.
func convertPathToStrokeElements(p *Path) []stroke.PathElement {
	var elements []stroke.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, stroke.MoveTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, stroke.LineTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, stroke.QuadTo{
				Control: stroke.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, stroke.CubicTo{
				Control1: stroke.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: stroke.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, stroke.Close{})
		}
	}
	return elements
}

// convertStrokeElementsToPath converts stroke.PathElement back to gg.Path.
func convertStrokeElementsToPath(elements []stroke.PathElement) *Path {
	p := NewPath()
	for _, elem := range elements {
		switch e := elem.(type) {
		case stroke.MoveTo:
			p.MoveTo(e.Point.X, e.Point.Y)
		case stroke.LineTo:
			p.LineTo(e.Point.X, e.Point.Y)
		case stroke.QuadTo:
			p.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case stroke.CubicTo:
			p.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case stroke.Close:
			p.Close()
		}
	}
	return p
}

// convertLineCap converts gg.LineCap to stroke.LineCap.
func convertLineCap(cap LineCap) stroke.LineCap {
	switch cap {
	case LineCapButt:
		return stroke.LineCapButt
	case LineCapRound:
		return stroke.LineCapRound
	case LineCapSquare:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

// convertLineJoin converts gg.LineJoin to stroke.LineJoin.
func convertLineJoin(join LineJoin) stroke.LineJoin {
	switch join {
	case LineJoinMiter:
		return stroke.LineJoinMiter
	case LineJoinRound:
		return stroke.LineJoinRound
	case LineJoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}
