package radar

import (
	"image/color"
	"time"

	"serial-radar.klederson.com/internal/config"
)

var (
	colorBlack       = color.RGBA{A: 0xff}
	colorGreen       = color.RGBA{G: 255, A: 0xff}
	colorBrightGreen = color.RGBA{G: 255, B: 100, A: 0xff}
	colorDarkGreen   = color.RGBA{G: 80, A: 0xff}
	colorShadow      = color.RGBA{G: 50, A: 0xff}
	colorTitleShadow = color.RGBA{G: 80, A: 0xff}
	colorSweepCore   = color.RGBA{R: 150, G: 255, B: 150, A: 0xff}
	colorRed         = color.RGBA{R: 255, G: 50, B: 50, A: 0xff}
	colorOrange      = color.RGBA{R: 255, G: 150, A: 0xff}
	colorYellow      = color.RGBA{R: 255, G: 255, A: 0xff}
	colorGray        = color.RGBA{R: 30, G: 30, B: 30, A: 0xff}
	colorPanel       = color.RGBA{R: 10, G: 10, B: 10, A: 200}
	colorDotCore     = color.RGBA{R: 255, G: 255, B: 255, A: 0xff}

	colorDotNear = color.RGBA{R: 255, G: 77, A: 0xff}
	colorDotMid  = color.RGBA{R: 255, G: 178, A: 0xff}
	colorDotFar  = color.RGBA{R: 128, G: 255, A: 0xff}
)

// Band classifies a distance for coloring and the status label.
type Band int

const (
	BandNone Band = iota // No echo or beyond range
	BandNear
	BandMid
	BandFar
)

// BandFor classifies distance against the fixed near/mid thresholds.
func BandFor(distance, maxRange int) Band {
	switch {
	case distance <= 0 || distance >= maxRange:
		return BandNone
	case distance < config.NearBand:
		return BandNear
	case distance < config.MidBand:
		return BandMid
	default:
		return BandFar
	}
}

func (b Band) String() string {
	switch b {
	case BandNear:
		return "CLOSE"
	case BandMid:
		return "MEDIUM"
	case BandFar:
		return "FAR"
	default:
		return "---"
	}
}

// Color is the readout color for the band.
func (b Band) Color() color.RGBA {
	switch b {
	case BandNear:
		return colorRed
	case BandMid:
		return colorOrange
	case BandFar:
		return colorYellow
	default:
		return colorGray
	}
}

// DotColor is the detection glow color for the band: red-orange, then
// orange-yellow, then yellow-green with distance.
func (b Band) DotColor() color.RGBA {
	switch b {
	case BandNear:
		return colorDotNear
	case BandMid:
		return colorDotMid
	default:
		return colorDotFar
	}
}

// Opacity is the fade of a detection captured age ago: 255 when fresh,
// falling linearly to 0 at config.FadeWindow.
func Opacity(age time.Duration) uint8 {
	if age <= 0 {
		return 255
	}
	if age >= config.FadeWindow {
		return 0
	}
	a := 255 - int(255*int64(age)/int64(config.FadeWindow))
	if a < 0 {
		return 0
	}
	return uint8(a)
}

// TrailStyle returns the brightness and stroke width of trail entry i of n,
// ramping linearly from the oldest (i=0) to the newest (i=n-1).
func TrailStyle(i, n int) (brightness uint8, thickness int) {
	if n <= 0 {
		return 0, 1
	}
	frac := float64(i+1) / float64(n)
	thickness = int(3 * frac)
	if thickness < 1 {
		thickness = 1
	}
	return uint8(255 * frac), thickness
}
