package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock shows the upper pixel as foreground and the lower as background.
const halfBlock = "▀"

// RenderFrame converts an image into terminal cells, two pixel rows per
// line. Runs of identical cells share one style.
func RenderFrame(img *image.RGBA) string {
	b := img.Bounds()
	black := color.RGBA{A: 0xff}

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}

		var top, bot color.RGBA
		n := 0
		flush := func() {
			if n == 0 {
				return
			}
			switch {
			case top == black && bot == black:
				sb.WriteString(strings.Repeat(" ", n))
			default:
				style := lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bot))
				sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
			}
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			t := pixel(img, x, y)
			u := black
			if y+1 < b.Max.Y {
				u = pixel(img, x, y+1)
			}
			if n > 0 && t == top && u == bot {
				n++
				continue
			}
			flush()
			top, bot, n = t, u, 1
		}
		flush()
	}
	return sb.String()
}

func pixel(img *image.RGBA, x, y int) color.RGBA {
	off := img.PixOffset(x, y)
	p := img.Pix[off : off+4 : off+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
}
