package canvas

import (
	"image/color"
	"math"

	"tinygo.org/x/tinydraw"
)

// FillRect fills the axis-aligned rectangle with its top-left corner at (x, y).
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	_ = tinydraw.FilledRectangle(c, i16(float64(x)), i16(float64(y)), i16(float64(w)), i16(float64(h)), col)
}

// Line draws a straight segment. Thick lines are parallel passes offset
// across the minor axis, so each pixel is touched once per call.
func (c *Canvas) Line(x0, y0, x1, y1 float64, thickness int, col color.RGBA) {
	if thickness < 1 {
		thickness = 1
	}
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	lo := -(thickness - 1) / 2

	for o := lo; o < lo+thickness; o++ {
		dx, dy := 0.0, float64(o)
		if steep {
			dx, dy = float64(o), 0
		}
		tinydraw.Line(c, i16(x0+dx), i16(y0+dy), i16(x1+dx), i16(y1+dy), col)
	}
}

// Circle strokes a circle outline. Additional thickness is drawn inward.
func (c *Canvas) Circle(cx, cy, r float64, thickness int, col color.RGBA) {
	if thickness < 1 {
		thickness = 1
	}
	x, y := i16(cx), i16(cy)
	for i := 0; i < thickness; i++ {
		ri := int(math.Round(r)) - i
		if ri < 0 {
			break
		}
		if ri == 0 {
			c.SetPixel(x, y, col)
			break
		}
		tinydraw.Circle(c, x, y, int16(ri), col)
	}
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	x, y := i16(cx), i16(cy)
	ri := i16(r)
	if ri <= 0 {
		c.SetPixel(x, y, col)
		return
	}
	tinydraw.FilledCircle(c, x, y, ri, col)
}

// i16 rounds v to the nearest display coordinate.
func i16(v float64) int16 {
	v = math.Round(v)
	return int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, v)))
}
