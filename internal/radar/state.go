package radar

import (
	"serial-radar.klederson.com/internal/config"
	"serial-radar.klederson.com/internal/sensor"
)

// State is everything a frame reads and writes. The frame loop owns it and
// passes it by reference; nothing else keeps a copy.
type State struct {
	Layout    Layout
	History   *History
	Sweep     *Sweep
	Particles *Particles

	Accepted int // Samples applied since startup
}

// NewState creates empty state for layout. seed drives particle motion.
func NewState(layout Layout, seed int64) *State {
	return &State{
		Layout:    layout,
		History:   NewHistory(),
		Sweep:     NewSweep(),
		Particles: NewParticles(seed),
	}
}

// Apply records a sample: history, sweep angle and, for close targets,
// a burst of particles at the projected position.
func (s *State) Apply(sample sensor.Sample) {
	s.History.Push(sample)
	s.Sweep.Set(sample.Angle)
	s.Accepted++

	if sample.Distance > 0 && sample.Distance < config.ParticleRange {
		pos := s.Layout.Project(float64(sample.Angle), float64(sample.Distance))
		s.Particles.Spawn(pos, config.ParticlesPerHit)
	}
}

// Tick advances time-driven state by one frame.
func (s *State) Tick() {
	s.Particles.Tick()
}

// Resize switches to a new layout. Trail points are in the old coordinates
// and are dropped.
func (s *State) Resize(layout Layout) {
	if layout == s.Layout {
		return
	}
	s.Layout = layout
	s.Sweep.ResetTrail()
}
