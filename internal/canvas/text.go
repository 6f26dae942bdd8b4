package canvas

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

// Face selects one of the bitmap fonts.
type Face int

const (
	Small Face = iota
	Large
)

func (f Face) fonter() tinyfont.Fonter {
	if f == Large {
		return &freemono.Bold9pt7b
	}
	return &proggy.TinySZ8pt7b
}

// Ascent is the distance from the top of a line to its baseline.
func (f Face) Ascent() int {
	if f == Large {
		return 12
	}
	return 9
}

// Text draws s with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, face Face, col color.RGBA) {
	tinyfont.WriteLine(c, face.fonter(), int16(x), int16(y+face.Ascent()), s, col)
}

// ShadowText draws s over a one-pixel offset shadow.
func (c *Canvas) ShadowText(x, y int, s string, face Face, col, shadow color.RGBA) {
	c.Text(x+1, y+1, s, face, shadow)
	c.Text(x, y, s, face, col)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string, face Face) int {
	_, outbox := tinyfont.LineWidth(face.fonter(), s)
	return int(outbox)
}
