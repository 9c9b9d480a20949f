package gg

import "math"

// DrawRegularPolygon appends a closed n-sided regular polygon centered
// at (x, y) with circumradius r, with its first vertex at rotation
// radians from the positive x-axis.
func (c *Context) DrawRegularPolygon(n int, x, y, r, rotation float64) {
	step := 2.0 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(rotation + step*float64(i))
		vx, vy := x+r*cos, y+r*sin
		if i == 0 {
			c.MoveTo(vx, vy)
			continue
		}
		c.LineTo(vx, vy)
	}
	c.ClosePath()
}
