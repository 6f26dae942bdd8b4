package sensor

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"serial-radar.klederson.com/internal/config"
)

type simTarget struct {
	from, to  int     // Angular span in degrees
	distance  float64 // Centimeters
	amplitude float64 // Slow drift in centimeters
	phase     float64
}

// Simulator stands in for the serial port in demo mode. It emulates a servo
// sweeping back and forth across 0-180 degrees with an ultrasonic sensor
// mounted on it, producing protocol lines at config.DemoStepsPerSec.
// Lines are generated lazily inside Read from the elapsed clock time.
type Simulator struct {
	rng      *rand.Rand
	clock    func() time.Time
	last     time.Time
	maxRange int
	angle    int
	dir      int
	t        float64
	targets  []simTarget
	out      []byte
	closed   bool
}

// NewSimulator builds a scene of a handful of objects, at least one of them
// close enough to trigger particles.
func NewSimulator(seed int64, maxRange int, clock func() time.Time) *Simulator {
	if clock == nil {
		clock = time.Now
	}
	rng := rand.New(rand.NewSource(seed))

	count := 4 + rng.Intn(3)
	targets := make([]simTarget, count)
	for i := range targets {
		from := rng.Intn(config.SweepMaxDeg - 20)
		width := 5 + rng.Intn(16)
		dist := 30 + rng.Float64()*float64(maxRange)*0.85
		if i == 0 {
			dist = 40 + rng.Float64()*float64(config.ParticleRange-60)
		}
		targets[i] = simTarget{
			from:      from,
			to:        from + width,
			distance:  dist,
			amplitude: 2 + rng.Float64()*10,
			phase:     rng.Float64() * 2 * math.Pi,
		}
	}

	return &Simulator{
		rng:      rng,
		clock:    clock,
		last:     clock(),
		maxRange: maxRange,
		dir:      1,
		targets:  targets,
	}
}

// Read copies pending protocol bytes into p. It returns 0, nil when the
// sweep has not advanced since the previous call.
func (s *Simulator) Read(p []byte) (int, error) {
	if s.closed {
		return 0, io.ErrClosedPipe
	}

	now := s.clock()
	step := time.Second / config.DemoStepsPerSec
	steps := int(now.Sub(s.last) / step)
	if steps > 0 {
		s.last = s.last.Add(time.Duration(steps) * step)
		// After a long stall only the most recent second matters.
		if steps > config.DemoStepsPerSec {
			steps = config.DemoStepsPerSec
		}
		for i := 0; i < steps; i++ {
			s.out = append(s.out, s.step()...)
		}
	}

	n := copy(p, s.out)
	s.out = append(s.out[:0], s.out[n:]...)
	return n, nil
}

// Close stops the simulator. Subsequent reads fail.
func (s *Simulator) Close() error {
	s.closed = true
	return nil
}

func (s *Simulator) step() []byte {
	s.angle += s.dir * config.DemoStepDeg
	if s.angle >= config.SweepMaxDeg {
		s.angle = config.SweepMaxDeg
		s.dir = -1
	} else if s.angle <= 0 {
		s.angle = 0
		s.dir = 1
	}
	s.t += 1.0 / config.DemoStepsPerSec

	// The occasional corrupted record, as a noisy link would deliver.
	if s.rng.Float64() < 0.01 {
		return []byte("E#R\n")
	}

	return []byte(fmt.Sprintf("%d,%d\n", s.angle, s.distanceAt(s.angle)))
}

func (s *Simulator) distanceAt(angle int) int {
	best := -1.0
	for _, tg := range s.targets {
		if angle < tg.from || angle > tg.to {
			continue
		}
		d := tg.distance + tg.amplitude*math.Sin(s.t*0.5+tg.phase) + (s.rng.Float64()-0.5)*4
		if best < 0 || d < best {
			best = d
		}
	}
	if best >= 1 {
		return int(best)
	}

	// No echo: the sensor either times out (0) or hits something far away.
	if s.rng.Float64() < 0.5 {
		return 0
	}
	return s.maxRange + s.rng.Intn(s.maxRange/2+1)
}
