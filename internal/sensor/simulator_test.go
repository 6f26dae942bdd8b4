package sensor

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSimulator_NoTimeNoData(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	sim := NewSimulator(1, 400, clk.Now)

	buf := make([]byte, 64)
	n, err := sim.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSimulator_EmitsParseableSweep(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	sim := NewSimulator(42, 400, clk.Now)
	r := NewReader(sim, zerolog.Nop())

	var got []Sample
	for i := 0; i < 240; i++ {
		clk.Advance(time.Second / 60)
		samples, err := r.Poll(clk.Now())
		require.NoError(t, err)
		got = append(got, samples...)
	}

	require.NotEmpty(t, got)
	assert.GreaterOrEqual(t, len(got)+r.Dropped(), 230, "roughly one line per step")

	near := false
	for i, s := range got {
		assert.GreaterOrEqual(t, s.Angle, 0)
		assert.LessOrEqual(t, s.Angle, 180)
		if i > 0 {
			diff := s.Angle - got[i-1].Angle
			assert.LessOrEqual(t, diff*diff, 25, "servo moves a few steps at most between accepted samples")
		}
		if s.InRange(150) {
			near = true
		}
	}
	assert.True(t, near, "scene always contains a close target")
}

func TestSimulator_Deterministic(t *testing.T) {
	run := func() []byte {
		clk := &fakeClock{now: time.Unix(0, 0)}
		sim := NewSimulator(7, 300, clk.Now)
		clk.Advance(2 * time.Second)
		buf := make([]byte, 4096)
		n, err := sim.Read(buf)
		require.NoError(t, err)
		require.Positive(t, n)
		return buf[:n]
	}
	assert.Equal(t, run(), run())
}

func TestSimulator_Close(t *testing.T) {
	sim := NewSimulator(1, 400, nil)
	require.NoError(t, sim.Close())

	_, err := sim.Read(make([]byte, 8))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
