package canvas

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Canvas is an opaque RGBA framebuffer. Shapes and text reach it through
// SetPixel, which blends using the color's alpha.
type Canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*Canvas)(nil)

// New allocates a black canvas.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	c.Clear(color.RGBA{A: 0xff})
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing image for presentation.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pix returns the raw RGBA bytes, row-major.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// Clear fills the whole canvas with an opaque color.
func (c *Canvas) Clear(col color.RGBA) {
	col.A = 0xff
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 0xff
	}
}

// At returns the pixel at (x, y), or transparent black outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return color.RGBA{}
	}
	off := c.img.PixOffset(x, y)
	p := c.img.Pix[off : off+4 : off+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	return int16(c.Width()), int16(c.Height())
}

// SetPixel implements drivers.Displayer. It composites col over the pixel
// at (x, y) using col's alpha; out-of-bounds writes are ignored.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if col.A == 0 || !(image.Point{X: int(x), Y: int(y)}).In(c.img.Rect) {
		return
	}
	off := c.img.PixOffset(int(x), int(y))
	p := c.img.Pix[off : off+4 : off+4]
	if col.A == 0xff {
		p[0], p[1], p[2] = col.R, col.G, col.B
		return
	}
	a := uint32(col.A)
	inv := 255 - a
	p[0] = uint8((uint32(col.R)*a + uint32(p[0])*inv) / 255)
	p[1] = uint8((uint32(col.G)*a + uint32(p[1])*inv) / 255)
	p[2] = uint8((uint32(col.B)*a + uint32(p[2])*inv) / 255)
}

// Display implements drivers.Displayer. The canvas has nothing to flush.
func (c *Canvas) Display() error {
	return nil
}

// WithAlpha returns col with its alpha replaced.
func WithAlpha(col color.RGBA, a uint8) color.RGBA {
	col.A = a
	return col
}
