package gg

import "github.com/gogpu/gg/text"

// Text rendering sits on top of the text package's font loading and
// glyph-outline extraction. Shaping (turning a string into positioned
// glyph IDs) is the one piece text.Face doesn't expose publicly yet, so
// DrawString and MeasureString stay no-ops until that lands; LoadFontFace
// is already real, since FontSource/Face parsing needs no shaping.

const defaultFaceHinting = text.HintingFull

// LoadFontFace parses the font file at path and makes it the context's
// current font at the given point size.
func (c *Context) LoadFontFace(path string, points float64) error {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	c.face = source.Face(points, text.WithHinting(defaultFaceHinting))
	return nil
}

// DrawString draws s with its baseline at (x, y) using the context's
// current font face.
//
// TODO: wire to text.Shape once Face exposes a public shaping entry
// point; today only LoadFontFace is real.
func (c *Context) DrawString(s string, x, y float64) {
	_ = s
	_ = x
	_ = y
}

// DrawStringAnchored draws s with its bounding box positioned relative
// to (x, y): ax, ay in [0, 1] choose the anchor point within the text
// (0,0 is the top-left, 0.5,0.5 is the center, 1,1 is the bottom-right).
//
// TODO: depends on DrawString/MeasureString.
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) {
	_ = s
	_ = x
	_ = y
	_ = ax
	_ = ay
}

// MeasureString returns the width and height s would occupy if drawn
// with the context's current font face.
//
// TODO: depends on Face exposing glyph advances/metrics publicly.
func (c *Context) MeasureString(s string) (w, h float64) {
	_ = s
	return 0, 0
}
