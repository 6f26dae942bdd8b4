package radar

import (
	"serial-radar.klederson.com/internal/config"
	"serial-radar.klederson.com/internal/ring"
)

// Sweep tracks where the sensor points and where the sweep line was drawn
// on recent frames.
type Sweep struct {
	angle int
	trail *ring.Buffer[Point]
}

// NewSweep creates a sweep at 0 degrees with an empty trail.
func NewSweep() *Sweep {
	return &Sweep{trail: ring.New[Point](config.TrailSize)}
}

// Set moves the sweep to angle degrees.
func (s *Sweep) Set(angle int) {
	s.angle = angle
}

// Degrees returns the current sweep angle.
func (s *Sweep) Degrees() int {
	return s.angle
}

// Advance records this frame's sweep endpoint in the trail and returns it.
func (s *Sweep) Advance(l Layout) Point {
	end := l.Edge(float64(s.angle))
	s.trail.Push(end)
	return end
}

// Trail returns recent endpoints, oldest first.
func (s *Sweep) Trail() []Point {
	return s.trail.Values()
}

// ResetTrail forgets trail points, e.g. after the layout changed.
func (s *Sweep) ResetTrail() {
	s.trail = ring.New[Point](config.TrailSize)
}
