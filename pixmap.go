package gg

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

var (
	_ image.Image = (*Pixmap)(nil)
	_ draw.Image  = (*Pixmap)(nil)
)

const bytesPerPixel = 4

// Pixmap is a rectangular 8-bit-per-channel RGBA pixel buffer. It
// satisfies both image.Image and draw.Image, so it drops straight into
// the standard image ecosystem (decoders, encoders, golang.org/x/image
// font rasterization) without a conversion step.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap allocates a transparent-black pixmap of the given size.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
}

func (p *Pixmap) Width() int  { return p.width }
func (p *Pixmap) Height() int { return p.height }

// Data exposes the raw RGBA byte buffer backing the pixmap.
func (p *Pixmap) Data() []uint8 { return p.data }

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *Pixmap) offset(x, y int) int {
	return (y*p.width + x) * bytesPerPixel
}

// SetPixel writes a single pixel's color, converting from [0,1] float
// channels to 8-bit. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !p.inBounds(x, y) {
		return
	}
	putRGBABytes(p.data[p.offset(x, y):], c)
}

// GetPixel reads a single pixel's color. Out-of-bounds coordinates
// return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !p.inBounds(x, y) {
		return Transparent
	}
	return rgbaFromBytes(p.data[p.offset(x, y):])
}

func putRGBABytes(dst []uint8, c RGBA) {
	dst[0] = channelByte(c.R)
	dst[1] = channelByte(c.G)
	dst[2] = channelByte(c.B)
	dst[3] = channelByte(c.A)
}

func rgbaFromBytes(src []uint8) RGBA {
	const inv255 = 1.0 / 255
	return RGBA{
		R: float64(src[0]) * inv255,
		G: float64(src[1]) * inv255,
		B: float64(src[2]) * inv255,
		A: float64(src[3]) * inv255,
	}
}

// Clear overwrites every pixel with c.
func (p *Pixmap) Clear(c RGBA) {
	var px [bytesPerPixel]uint8
	putRGBABytes(px[:], c)
	for i := 0; i < len(p.data); i += bytesPerPixel {
		copy(p.data[i:i+bytesPerPixel], px[:])
	}
}

// ToImage copies the pixmap into a standard image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage builds a pixmap from any image.Image, converting pixel by
// pixel through FromColor.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// SavePNG encodes the pixmap and writes it to path.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements draw.Image, letting Pixmap act as a destination for
// standard image drawing operations, including x/image/font glyph
// rendering.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

const spanDoublingThreshold = 16

// clipSpan clamps [x1, x2) to the pixmap's width and the row to its
// height, returning ok=false when nothing remains to fill.
func (p *Pixmap) clipSpan(x1, x2, y int) (int, int, bool) {
	if y < 0 || y >= p.height || x1 >= x2 {
		return 0, 0, false
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	if x1 >= x2 {
		return 0, 0, false
	}
	return x1, x2, true
}

// FillSpan overwrites pixels [x1, x2) on row y with c, with no
// blending. Spans of spanDoublingThreshold pixels or more are filled by
// repeatedly doubling an already-written prefix rather than looping
// per-pixel.
func (p *Pixmap) FillSpan(x1, x2, y int, c RGBA) {
	x1, x2, ok := p.clipSpan(x1, x2, y)
	if !ok {
		return
	}

	var px [bytesPerPixel]uint8
	putRGBABytes(px[:], c)

	start := p.offset(x1, y)
	length := x2 - x1
	row := p.data[start : start+length*bytesPerPixel]

	if length < spanDoublingThreshold {
		for i := 0; i < length; i++ {
			copy(row[i*bytesPerPixel:], px[:])
		}
		return
	}

	copy(row, px[:])
	filled := 1
	for filled < length {
		n := min(filled, length-filled)
		copy(row[filled*bytesPerPixel:], row[:n*bytesPerPixel])
		filled += n
	}
}

// FillSpanBlend composites c over pixels [x1, x2) on row y using
// source-over blending (Result = S + D*(1-Sa)). Fully opaque colors
// skip blending entirely and defer to FillSpan.
func (p *Pixmap) FillSpanBlend(x1, x2, y int, c RGBA) {
	x1, x2, ok := p.clipSpan(x1, x2, y)
	if !ok {
		return
	}

	const opaqueThreshold = 0.9999
	if c.A >= opaqueThreshold {
		p.FillSpan(x1, x2, y, c)
		return
	}

	sr := channelByte(c.R * c.A)
	sg := channelByte(c.G * c.A)
	sb := channelByte(c.B * c.A)
	sa := channelByte(c.A)
	invSa := uint32(255 - sa)

	start := p.offset(x1, y)
	length := x2 - x1
	row := p.data[start : start+length*bytesPerPixel]

	for i := 0; i < length; i++ {
		idx := i * bytesPerPixel
		row[idx+0] = sr + blendOver(row[idx+0], invSa)
		row[idx+1] = sg + blendOver(row[idx+1], invSa)
		row[idx+2] = sb + blendOver(row[idx+2], invSa)
		row[idx+3] = sa + blendOver(row[idx+3], invSa)
	}
}

// blendOver applies the (1-Sa) term of source-over compositing to a
// single destination channel, rounding to nearest.
func blendOver(dst uint8, invSa uint32) uint8 {
	return uint8((uint32(dst)*invSa + 127) / 255) //nolint:gosec // bounded by 255
}
