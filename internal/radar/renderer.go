package radar

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"serial-radar.klederson.com/internal/canvas"
	"serial-radar.klederson.com/internal/config"
)

const (
	panelX, panelY = 10, 10
	panelW, panelH = 280, 120
	title          = "RADAR SCANNER"
	exitHint       = "Press ESC to exit"
)

// Renderer draws a State onto a canvas. It holds no frame-to-frame state;
// the sweep trail lives in State.
type Renderer struct {
	// Text enables labels, the readout panel, title and hint. Terminal
	// output disables it and shows the readout with styled text instead.
	Text bool
}

// Render draws one complete frame for time now.
func (r Renderer) Render(c *canvas.Canvas, st *State, now time.Time) {
	c.Clear(colorBlack)
	r.background(c, st.Layout)
	r.detections(c, st, now)
	r.particles(c, st)
	r.sweep(c, st)
	if r.Text {
		r.panel(c, ReadoutFor(st.History, st.Layout.MaxRange))
		r.chrome(c, st.Layout)
	}
}

func (r Renderer) background(c *canvas.Canvas, l Layout) {
	center := l.Center()

	// Outer glow
	for i := 5; i > 0; i-- {
		glow := colorGreen
		glow.G = uint8(40 - i*5)
		c.Circle(center.X, center.Y, l.Radius+float64(i)*3*l.Scale, stroke(2, l), glow)
	}

	radii := l.RingRadii()
	labels := l.RingLabels()
	for i, radius := range radii {
		c.Circle(center.X, center.Y, radius, 1, colorDarkGreen)
		if r.Text {
			c.ShadowText(l.CenterX+5, l.CenterY-int(radius)-6, fmt.Sprintf("%dcm", labels[i]),
				canvas.Small, colorBrightGreen, colorShadow)
		}
	}

	for angle := 0; angle <= config.SweepMaxDeg; angle += config.AngleStepDeg {
		end := l.Edge(float64(angle))
		if angle%config.MajorAngleDeg == 0 {
			c.Line(center.X, center.Y, end.X, end.Y, stroke(2, l), colorDarkGreen)
		} else {
			c.Line(center.X, center.Y, end.X, end.Y, 1, colorGray)
		}
	}

	if r.Text {
		for angle := 0; angle <= config.SweepMaxDeg; angle += config.MajorAngleDeg {
			pos := l.polar(float64(angle), l.Radius+30)
			label := fmt.Sprintf("%d", angle)
			w := canvas.TextWidth(label, canvas.Large)
			x := int(pos.X) - w/2
			y := int(pos.Y) - 10
			c.ShadowText(x, y, label, canvas.Large, colorBrightGreen, colorShadow)
			c.Circle(float64(x+w+3), float64(y+2), 2, 1, colorBrightGreen)
		}
	}

	c.FillCircle(center.X, center.Y, 5*l.Scale, colorBrightGreen)
	c.FillCircle(center.X, center.Y, 3*l.Scale, colorGreen)
}

func (r Renderer) detections(c *canvas.Canvas, st *State, now time.Time) {
	l := st.Layout
	for _, s := range st.History.Samples() {
		if !s.InRange(l.MaxRange) {
			continue
		}
		alpha := Opacity(s.Age(now))
		if alpha == 0 {
			continue
		}

		pos := l.Project(float64(s.Angle), float64(s.Distance))
		size := math.Max(2, float64(int(6*float64(alpha)/255))) * l.Scale
		glow := canvas.WithAlpha(BandFor(s.Distance, l.MaxRange).DotColor(), alpha)
		c.FillCircle(pos.X, pos.Y, size+2*l.Scale, glow)
		c.FillCircle(pos.X, pos.Y, size, canvas.WithAlpha(colorDotCore, alpha))
	}
}

func (r Renderer) particles(c *canvas.Canvas, st *State) {
	radius := 2 * st.Layout.Scale
	for _, p := range st.Particles.Items() {
		if p.Life <= 0 {
			continue
		}
		c.FillCircle(p.Pos.X, p.Pos.Y, radius, p.Color())
	}
}

func (r Renderer) sweep(c *canvas.Canvas, st *State) {
	l := st.Layout
	center := l.Center()
	end := st.Sweep.Advance(l)

	trail := st.Sweep.Trail()
	for i, p := range trail {
		brightness, thickness := TrailStyle(i, len(trail))
		c.Line(center.X, center.Y, p.X, p.Y, stroke(thickness, l), trailColor(brightness))
	}

	c.Line(center.X, center.Y, end.X, end.Y, stroke(3, l), colorBrightGreen)
	c.Line(center.X, center.Y, end.X, end.Y, 1, colorSweepCore)
}

func (r Renderer) panel(c *canvas.Canvas, ro Readout) {
	c.FillRect(panelX, panelY, panelW, panelH, colorPanel)
	if !ro.Valid {
		return
	}
	c.Text(panelX+10, panelY+10, ro.AngleText(), canvas.Large, colorBrightGreen)

	col := ro.Band.Color()
	c.Text(panelX+10, panelY+45, ro.DistanceText(), canvas.Large, col)
	c.Text(panelX+10, panelY+75, ro.StatusText(), canvas.Small, col)
}

func (r Renderer) chrome(c *canvas.Canvas, l Layout) {
	w := canvas.TextWidth(title, canvas.Large)
	c.ShadowText(l.Width/2-w/2, 10, title, canvas.Large, colorBrightGreen, colorTitleShadow)

	hw := canvas.TextWidth(exitHint, canvas.Small)
	c.Text(l.Width-hw-10, l.Height-30, exitHint, canvas.Small, colorDarkGreen)
}

// stroke scales a stroke width for the layout, never below one pixel.
func stroke(width int, l Layout) int {
	return max(1, int(math.Round(float64(width)*l.Scale)))
}

func trailColor(g uint8) color.RGBA {
	return color.RGBA{G: g, A: 0xff}
}
