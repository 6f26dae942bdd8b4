package radar

import (
	"math"

	"serial-radar.klederson.com/internal/config"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Layout places the half-disc radar on a canvas.
type Layout struct {
	Width    int
	Height   int
	CenterX  int
	CenterY  int
	Radius   float64 // Display radius in pixels
	MaxRange int     // Centimeters mapped onto Radius
	Scale    float64 // Size multiplier for dots, glows and strokes
}

// NewLayout is the window layout: the sensor sits near the bottom edge with
// room for angle labels around the arc.
func NewLayout(width, height, maxRange int) Layout {
	cx := width / 2
	cy := height - 80
	r := min(cx-50, cy-100)
	if r < 1 {
		r = 1
	}
	return Layout{
		Width:    width,
		Height:   height,
		CenterX:  cx,
		CenterY:  cy,
		Radius:   float64(r),
		MaxRange: maxRange,
		Scale:    1,
	}
}

// CompactLayout fills a small canvas edge to edge, for terminal cells.
func CompactLayout(width, height, maxRange int) Layout {
	cx := width / 2
	cy := height - 2
	r := min(cx-2, cy-1)
	if r < 1 {
		r = 1
	}
	scale := float64(r) / 400
	scale = math.Max(0.25, math.Min(1, scale))
	return Layout{
		Width:    width,
		Height:   height,
		CenterX:  cx,
		CenterY:  cy,
		Radius:   float64(r),
		MaxRange: maxRange,
		Scale:    scale,
	}
}

// Center returns the sensor position.
func (l Layout) Center() Point {
	return Point{X: float64(l.CenterX), Y: float64(l.CenterY)}
}

// ScaleDistance converts centimeters into display pixels.
func (l Layout) ScaleDistance(distance float64) float64 {
	if l.MaxRange <= 0 {
		return 0
	}
	return distance * l.Radius / float64(l.MaxRange)
}

// Project maps a polar reading onto the canvas. Angles follow the sensor
// convention: 0 and 180 degrees lie on the horizontal through the center,
// mirrored so that 0 is drawn on the viewer's left and 90 straight up.
func (l Layout) Project(angleDeg, distance float64) Point {
	return l.polar(angleDeg, l.ScaleDistance(distance))
}

// Edge returns the point on the display arc for angleDeg.
func (l Layout) Edge(angleDeg float64) Point {
	return l.polar(angleDeg, l.Radius)
}

func (l Layout) polar(angleDeg, r float64) Point {
	theta := math.Pi - angleDeg*math.Pi/180
	return Point{
		X: float64(l.CenterX) + r*math.Cos(theta),
		Y: float64(l.CenterY) - r*math.Sin(theta),
	}
}

// RingRadii returns the display radius of each range ring, innermost first.
func (l Layout) RingRadii() []float64 {
	radii := make([]float64, config.RingCount)
	for i := range radii {
		radii[i] = l.Radius * float64(i+1) / float64(config.RingCount)
	}
	return radii
}

// RingLabels returns the real-world distance of each range ring.
func (l Layout) RingLabels() []int {
	labels := make([]int, config.RingCount)
	for i := range labels {
		labels[i] = l.MaxRange / config.RingCount * (i + 1)
	}
	return labels
}
