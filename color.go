package gg

import (
	"image/color"
	"math"
)

// RGBA is a color with red, green, blue, and alpha channels, each stored
// unpremultiplied in the range [0, 1]. It satisfies color.Color directly
// through its RGBA method, and separately offers Color for callers that
// want a standard library color.Color value to hand off.
type RGBA struct {
	R, G, B, A float64
}

// RGB builds an opaque color from its red, green, and blue channels.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 builds a color from all four channels. Named to avoid colliding
// with the RGBA type itself.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

const channelMax = 65535

// RGBA implements color.Color: it returns the alpha-premultiplied channels
// scaled to the 16-bit range the interface expects.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clampUnit(c.A) * channelMax)
	r = uint32(clampUnit(c.R) * clampUnit(c.A) * channelMax)
	g = uint32(clampUnit(c.G) * clampUnit(c.A) * channelMax)
	b = uint32(clampUnit(c.B) * clampUnit(c.A) * channelMax)
	return
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Color converts c to a color.NRGBA with 8-bit unpremultiplied channels,
// the form most image.Image-backed code expects.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(c.A),
	}
}

func channelByte(v float64) uint8 {
	return uint8(clamp255(v * 255))
}

// FromColor converts any color.Color into an RGBA in the [0,1] range.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / channelMax,
		G: float64(g) / channelMax,
		B: float64(b) / channelMax,
		A: float64(a) / channelMax,
	}
}

// Hex parses a CSS-style hex color string into an RGBA. Accepted forms are
// "RGB", "RGBA", "RRGGBB", and "RRGGBBAA", with an optional leading "#".
// An unrecognized length returns opaque black rather than erroring, since
// Hex has no error return.
func Hex(hex string) RGBA {
	hex = trimHash(hex)

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		r, g, b = hexNibble(hex, 0), hexNibble(hex, 1), hexNibble(hex, 2)
		r, g, b = r*17, g*17, b*17
	case 4:
		r, g, b, a = hexNibble(hex, 0), hexNibble(hex, 1), hexNibble(hex, 2), hexNibble(hex, 3)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		r, g, b = hexByte(hex, 0), hexByte(hex, 2), hexByte(hex, 4)
	case 8:
		r, g, b, a = hexByte(hex, 0), hexByte(hex, 2), hexByte(hex, 4), hexByte(hex, 6)
	default:
		return RGBA{A: 1}
	}

	const maxByte = 255
	return RGBA{
		R: float64(r) / maxByte,
		G: float64(g) / maxByte,
		B: float64(b) / maxByte,
		A: float64(a) / maxByte,
	}
}

func trimHash(hex string) string {
	if len(hex) > 0 && hex[0] == '#' {
		return hex[1:]
	}
	return hex
}

func hexNibble(s string, i int) uint32 {
	return parseHexDigits(s[i : i+1])
}

func hexByte(s string, i int) uint32 {
	return parseHexDigits(s[i : i+2])
}

// parseHexDigits reads hex characters left to right, stopping at the
// first non-hex byte; a malformed input just yields a truncated value
// rather than an error, matching Hex's no-error contract.
func parseHexDigits(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexDigitValue(s[i])
		if !ok {
			break
		}
		v = v*16 + d
	}
	return v
}

func hexDigitValue(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Premultiply scales the color channels by alpha, the form most blending
// math expects.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply reverses Premultiply. A fully transparent color has no
// well-defined unpremultiplied channels, so it returns transparent black
// rather than dividing by zero.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// Lerp interpolates channel-wise between c (t=0) and other (t=1).
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
		A: lerpChannel(c.A, other.A, t),
	}
}

func lerpChannel(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp255(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	default:
		return x
	}
}

// Named colors covering the basic additive/subtractive primaries plus
// fully transparent black.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

// HSL builds a color from hue h (degrees, wrapped to [0,360)), saturation
// s, and lightness l (both [0,1]), following the standard HSL-to-RGB
// conversion.
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - chroma/2

	r, g, b := hslSector(h, chroma, x)
	return RGB(r+m, g+m, b+m)
}

// hslSector returns the unshifted (r,g,b) triple for the 60-degree sector
// h falls into, before the lightness offset m is added back in.
func hslSector(h, chroma, x float64) (r, g, b float64) {
	switch {
	case h < 1.0/6:
		return chroma, x, 0
	case h < 2.0/6:
		return x, chroma, 0
	case h < 3.0/6:
		return 0, chroma, x
	case h < 4.0/6:
		return 0, x, chroma
	case h < 5.0/6:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}
