package radar

import (
	"image/color"
	"math/rand"

	"serial-radar.klederson.com/internal/config"
)

// Particle is a short-lived decorative spark.
type Particle struct {
	Pos  Point
	Vel  Point
	Life int
}

// Color fades from bright yellow to transparent red as life runs out.
func (p Particle) Color() color.RGBA {
	life := max(0, min(p.Life, 255))
	return color.RGBA{R: 255, G: uint8(life), A: uint8(life)}
}

// Particles owns the live particle set and its random source.
type Particles struct {
	rng   *rand.Rand
	items []Particle
}

// NewParticles creates an empty set whose velocities derive from seed.
func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))}
}

// Spawn adds count particles at pos, each drifting at most
// config.ParticleMaxSpeed per axis per tick.
func (p *Particles) Spawn(pos Point, count int) {
	for i := 0; i < count; i++ {
		p.items = append(p.items, Particle{
			Pos:  pos,
			Vel:  Point{X: p.velocity(), Y: p.velocity()},
			Life: config.ParticleLife,
		})
	}
}

func (p *Particles) velocity() float64 {
	return (p.rng.Float64()*2 - 1) * config.ParticleMaxSpeed
}

// Tick moves every particle, decays its life and removes the expired.
func (p *Particles) Tick() {
	live := p.items[:0]
	for _, pt := range p.items {
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Life -= config.ParticleDecay
		if pt.Life > 0 {
			live = append(live, pt)
		}
	}
	clear(p.items[len(live):])
	p.items = live
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Items returns a copy of the live particles.
func (p *Particles) Items() []Particle {
	out := make([]Particle, len(p.items))
	copy(out, p.items)
	return out
}
