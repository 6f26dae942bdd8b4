package app

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"serial-radar.klederson.com/internal/radar"
)

// fakePort serves one chunk per Read and counts Close calls.
type fakePort struct {
	chunks []string
	errs   []error
	calls  int
	closed int
}

func (p *fakePort) Read(b []byte) (int, error) {
	i := p.calls
	p.calls++
	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	if i >= len(p.chunks) {
		return 0, err
	}
	return copy(b, p.chunks[i]), err
}

func (p *fakePort) Close() error {
	p.closed++
	return nil
}

func newTestLoop(port *fakePort) *Loop {
	state := radar.NewState(radar.NewLayout(400, 300, 400), 1)
	return NewLoop(port, state, radar.Renderer{}, zerolog.Nop())
}

func TestLoop_AppliesSample(t *testing.T) {
	loop := newTestLoop(&fakePort{chunks: []string{"90,50\n"}})

	loop.Step(time.Now())

	st := loop.State()
	assert.Equal(t, 1, st.History.Len())
	assert.Equal(t, 90, st.Sweep.Degrees())
	assert.Equal(t, 3, st.Particles.Len())

	s := loop.Stats()
	assert.Equal(t, 1, s.Accepted)
	assert.Equal(t, 0, s.Faults)
	assert.Equal(t, 90, s.SweepDeg)
}

func TestLoop_FarSampleSpawnsNoParticles(t *testing.T) {
	loop := newTestLoop(&fakePort{chunks: []string{"45,250\n"}})

	loop.Step(time.Now())

	assert.Equal(t, 1, loop.State().History.Len())
	assert.Equal(t, 0, loop.State().Particles.Len())
}

func TestLoop_MalformedLineIgnored(t *testing.T) {
	loop := newTestLoop(&fakePort{chunks: []string{"garbage\n"}})

	loop.Step(time.Now())

	st := loop.State()
	assert.Equal(t, 0, st.History.Len())
	assert.Equal(t, 0, st.Sweep.Degrees())
	assert.Equal(t, 1, loop.Stats().Dropped)
}

func TestLoop_ReadFaultKeepsRunning(t *testing.T) {
	port := &fakePort{
		chunks: []string{"", "30,80\n"},
		errs:   []error{errors.New("device unplugged")},
	}
	loop := newTestLoop(port)

	loop.Step(time.Now())
	assert.Equal(t, 1, loop.Stats().Faults)
	assert.Equal(t, Running, loop.Phase())

	loop.Step(time.Now())
	assert.Equal(t, 1, loop.State().History.Len())
}

func TestLoop_ParticlesAgeWithoutInput(t *testing.T) {
	loop := newTestLoop(&fakePort{chunks: []string{"90,50\n"}})

	loop.Step(time.Now())
	require.Equal(t, 3, loop.State().Particles.Len())

	// Life starts at 255 and drops by 8 per frame.
	for i := 0; i < 32; i++ {
		loop.Step(time.Now())
	}
	assert.Equal(t, 0, loop.State().Particles.Len())
}

func TestLoop_FrameRendersCanvas(t *testing.T) {
	loop := newTestLoop(&fakePort{chunks: []string{"90,50\n"}})

	c := loop.Frame(time.Now())
	require.NotNil(t, c)
	assert.Equal(t, 400, c.Width())
	assert.Equal(t, 300, c.Height())
	assert.Len(t, loop.State().Sweep.Trail(), 1)
}

func TestLoop_Resize(t *testing.T) {
	loop := newTestLoop(&fakePort{})

	loop.Resize(radar.CompactLayout(60, 40, 400))
	c := loop.Draw(time.Now())

	assert.Equal(t, 60, c.Width())
	assert.Equal(t, 40, c.Height())
	assert.Equal(t, 60, loop.State().Layout.Width)
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	port := &fakePort{chunks: []string{"90,50\n"}}
	loop := newTestLoop(port)

	require.NoError(t, loop.Stop())
	require.NoError(t, loop.Stop())

	assert.Equal(t, Terminating, loop.Phase())
	assert.Equal(t, "terminating", loop.Phase().String())
	assert.Equal(t, 1, port.closed)

	loop.Step(time.Now())
	assert.Equal(t, 0, port.calls, "no reads after stop")
	assert.Equal(t, 0, loop.State().History.Len())
}
