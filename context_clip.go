package gg

import (
	"math"

	"github.com/gogpu/gg/internal/clip"
)

// Clip intersects the current clip region with the current path
// (antialiased), then clears the path.
func (c *Context) Clip() {
	c.pushPathClip()
	c.path.Clear()
}

// ClipPreserve is Clip without clearing the path afterward, so the same
// path can be clipped and then filled or stroked.
func (c *Context) ClipPreserve() {
	c.pushPathClip()
}

func (c *Context) pushPathClip() {
	c.ensureClipStack()
	_ = c.clipStack.PushPath(convertPathElements(c.path.Elements()), true)
}

// ClipRect intersects the current clip region with an axis-aligned
// rectangle in user space — cheaper than building a rectangular path
// and calling Clip.
func (c *Context) ClipRect(x, y, w, h float64) {
	c.ensureClipStack()

	p1 := c.matrix.TransformPoint(Pt(x, y))
	p2 := c.matrix.TransformPoint(Pt(x+w, y+h))

	c.clipStack.PushRect(clip.NewRect(
		math.Min(p1.X, p2.X),
		math.Min(p1.Y, p2.Y),
		math.Abs(p2.X-p1.X),
		math.Abs(p2.Y-p1.Y),
	))
}

// ResetClip discards every clip region, making the whole canvas
// drawable again.
func (c *Context) ResetClip() {
	if c.clipStack == nil {
		return
	}
	c.clipStack.Reset(c.canvasBounds())
}

func (c *Context) ensureClipStack() {
	if c.clipStack == nil {
		c.clipStack = clip.NewClipStack(c.canvasBounds())
	}
}

func (c *Context) canvasBounds() clip.Rect {
	return clip.NewRect(0, 0, float64(c.width), float64(c.height))
}

// convertPathElements translates gg's path element types into the
// internal/clip package's equivalents, which carry plain clip.Point
// values instead of gg.Point.
func convertPathElements(elements []PathElement) []clip.PathElement {
	result := make([]clip.PathElement, len(elements))
	for i, elem := range elements {
		result[i] = convertPathElement(elem)
	}
	return result
}

func convertPathElement(elem PathElement) clip.PathElement {
	switch e := elem.(type) {
	case MoveTo:
		return clip.MoveTo{Point: clipPt(e.Point)}
	case LineTo:
		return clip.LineTo{Point: clipPt(e.Point)}
	case QuadTo:
		return clip.QuadTo{Control: clipPt(e.Control), Point: clipPt(e.Point)}
	case CubicTo:
		return clip.CubicTo{
			Control1: clipPt(e.Control1),
			Control2: clipPt(e.Control2),
			Point:    clipPt(e.Point),
		}
	case Close:
		return clip.Close{}
	default:
		return nil
	}
}

func clipPt(p Point) clip.Point {
	return clip.Pt(p.X, p.Y)
}
