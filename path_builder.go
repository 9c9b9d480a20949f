package gg

import "math"

// PathBuilder is a fluent wrapper around Path: every method appends to
// the underlying path and returns the builder so calls can be chained.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new builder over an empty path.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo appends a straight segment to (x, y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo appends a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadraticTo(cx, cy, x, y)
	return b
}

// CubicTo appends a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect appends a closed rectangle with corner (x, y) and size (w, h).
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// builderKappa matches path.go's kappa constant but is kept local since
// the builder favors a radius-scaled k over the (ox, oy) pair Path uses.
const builderKappa = 0.5522847498

// RoundRect appends a rounded rectangle with corner (x, y), size (w, h),
// and corner radius r, clamped so opposing rounds never overlap.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = min(r, min(w, h)/2)
	k := builderKappa * r

	b.path.MoveTo(x+r, y)
	b.path.LineTo(x+w-r, y)
	b.path.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	b.path.LineTo(x+w, y+h-r)
	b.path.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	b.path.LineTo(x+r, y+h)
	b.path.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	b.path.LineTo(x, y+r)
	b.path.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	b.path.Close()
	return b
}

// Circle appends a circle of radius r centered at (cx, cy).
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse appends an ellipse with radii (rx, ry) centered at (cx, cy).
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	kx := builderKappa * rx
	ky := builderKappa * ry

	b.path.MoveTo(cx+rx, cy)
	b.path.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.path.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.path.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.path.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	b.path.Close()
	return b
}

// Polygon appends a regular polygon with the given number of sides,
// circumscribed by radius and starting at the top; fewer than 3 sides is
// not a polygon, so the builder is returned unchanged.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}
	b.starPoints(cx, cy, sides, 1, func(int) float64 { return radius })
	b.path.Close()
	return b
}

// Star appends a points-pointed star alternating between outerRadius and
// innerRadius; fewer than 3 points is not a star, so the builder is
// returned unchanged.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	if points < 3 {
		return b
	}
	b.starPoints(cx, cy, points, 2, func(i int) float64 {
		if i%2 == 1 {
			return innerRadius
		}
		return outerRadius
	})
	b.path.Close()
	return b
}

// starPoints walks a vertex count evenly spaced around a full turn
// starting from the top, calling radiusAt for each vertex's distance from
// center; it underlies both Polygon (vertexMultiplier 1) and Star
// (vertexMultiplier 2, alternating radii).
func (b *PathBuilder) starPoints(cx, cy float64, count, vertexMultiplier int, radiusAt func(i int) float64) {
	total := count * vertexMultiplier
	var angleStep float64
	if vertexMultiplier == 1 {
		angleStep = 2 * math.Pi / float64(count)
	} else {
		angleStep = math.Pi / float64(count)
	}
	const startAngle = -math.Pi / 2

	for i := 0; i < total; i++ {
		angle := startAngle + float64(i)*angleStep
		r := radiusAt(i)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
}

// Build returns the path constructed so far.
func (b *PathBuilder) Build() *Path {
	return b.path
}

// Path is an alias of Build for call sites that read better naming the
// type they expect back.
func (b *PathBuilder) Path() *Path {
	return b.path
}
