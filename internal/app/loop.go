package app

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"serial-radar.klederson.com/internal/canvas"
	"serial-radar.klederson.com/internal/logging"
	"serial-radar.klederson.com/internal/radar"
	"serial-radar.klederson.com/internal/sensor"
)

// Phase is the frame loop lifecycle.
type Phase int

const (
	Running Phase = iota
	Terminating
)

func (p Phase) String() string {
	if p == Terminating {
		return "terminating"
	}
	return "running"
}

// Stats are the counters shown in the status bar.
type Stats struct {
	Accepted  int
	Dropped   int
	Faults    int
	Particles int
	SweepDeg  int
}

// Loop owns the serial port, the radar state and the canvas for the
// lifetime of the process. Display backends call Frame once per tick.
type Loop struct {
	port     io.ReadCloser
	reader   *sensor.Reader
	state    *radar.State
	renderer radar.Renderer
	canvas   *canvas.Canvas
	log      zerolog.Logger
	faultLog zerolog.Logger
	phase    Phase
	faults   int
}

// NewLoop wires port into a reader and allocates a canvas matching the
// state's layout.
func NewLoop(port io.ReadCloser, state *radar.State, renderer radar.Renderer, log zerolog.Logger) *Loop {
	return &Loop{
		port:     port,
		reader:   sensor.NewReader(port, log),
		state:    state,
		renderer: renderer,
		canvas:   canvas.New(state.Layout.Width, state.Layout.Height),
		log:      log,
		faultLog: logging.Sampled(log, 3, time.Second),
	}
}

// Step polls the sensor, applies new samples and advances particles.
// Read faults are logged and counted; the loop keeps running.
func (l *Loop) Step(now time.Time) {
	if l.phase != Running {
		return
	}

	samples, err := l.reader.Poll(now)
	if err != nil {
		l.faults++
		l.faultLog.Error().Err(err).Int("faults", l.faults).Msg("Error reading serial")
	}
	for _, s := range samples {
		l.state.Apply(s)
	}
	l.state.Tick()
}

// Draw renders the current state into the canvas and returns it.
func (l *Loop) Draw(now time.Time) *canvas.Canvas {
	l.renderer.Render(l.canvas, l.state, now)
	return l.canvas
}

// Frame runs one full iteration: Step then Draw.
func (l *Loop) Frame(now time.Time) *canvas.Canvas {
	l.Step(now)
	return l.Draw(now)
}

// Resize switches layout and reallocates the canvas when its size changed.
func (l *Loop) Resize(layout radar.Layout) {
	l.state.Resize(layout)
	if l.canvas.Width() != layout.Width || l.canvas.Height() != layout.Height {
		l.canvas = canvas.New(layout.Width, layout.Height)
	}
}

// Stop moves the loop to Terminating and releases the serial port. Only the
// first call has an effect.
func (l *Loop) Stop() error {
	if l.phase == Terminating {
		return nil
	}
	l.phase = Terminating
	l.log.Info().Msg("Radar closed")
	return l.port.Close()
}

// Phase reports the lifecycle phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// State exposes the radar state for presentation.
func (l *Loop) State() *radar.State {
	return l.state
}

// Stats snapshots the loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Accepted:  l.state.Accepted,
		Dropped:   l.reader.Dropped(),
		Faults:    l.faults,
		Particles: l.state.Particles.Len(),
		SweepDeg:  l.state.Sweep.Degrees(),
	}
}
