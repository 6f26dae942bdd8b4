package radar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		distance int
		want     Band
		label    string
	}{
		{0, BandNone, "---"},
		{-3, BandNone, "---"},
		{1, BandNear, "CLOSE"},
		{99, BandNear, "CLOSE"},
		{100, BandMid, "MEDIUM"},
		{199, BandMid, "MEDIUM"},
		{200, BandFar, "FAR"},
		{399, BandFar, "FAR"},
		{400, BandNone, "---"},
		{999, BandNone, "---"},
	}

	for _, tt := range tests {
		got := BandFor(tt.distance, 400)
		assert.Equal(t, tt.want, got, "distance %d", tt.distance)
		assert.Equal(t, tt.label, got.String())
	}
}

func TestBandColors(t *testing.T) {
	assert.Equal(t, colorRed, BandNear.Color())
	assert.Equal(t, colorOrange, BandMid.Color())
	assert.Equal(t, colorYellow, BandFar.Color())
	assert.Equal(t, colorGray, BandNone.Color())

	near := BandNear.DotColor()
	mid := BandMid.DotColor()
	far := BandFar.DotColor()
	assert.Equal(t, uint8(255), near.R)
	assert.Less(t, near.G, mid.G, "near is redder than mid")
	assert.Less(t, far.R, mid.R, "far shifts toward green")
}

func TestOpacity(t *testing.T) {
	assert.Equal(t, uint8(255), Opacity(0))
	assert.Equal(t, uint8(255), Opacity(-time.Second))
	assert.InDelta(t, 128, int(Opacity(1500*time.Millisecond)), 1)
	assert.Equal(t, uint8(0), Opacity(3*time.Second))
	assert.Equal(t, uint8(0), Opacity(10*time.Second))

	prev := Opacity(0)
	for ms := 50; ms <= 3000; ms += 50 {
		cur := Opacity(time.Duration(ms) * time.Millisecond)
		assert.LessOrEqual(t, cur, prev, "fade is monotonic at %dms", ms)
		prev = cur
	}
}

func TestTrailStyle(t *testing.T) {
	n := 20
	prevB, prevT := uint8(0), 0
	for i := 0; i < n; i++ {
		b, th := TrailStyle(i, n)
		assert.GreaterOrEqual(t, b, prevB)
		assert.GreaterOrEqual(t, th, prevT)
		assert.GreaterOrEqual(t, th, 1)
		prevB, prevT = b, th
	}
	b, th := TrailStyle(n-1, n)
	assert.Equal(t, uint8(255), b)
	assert.Equal(t, 3, th)

	// Oldest entry is 1/n of full brightness, not zero.
	b, th = TrailStyle(0, n)
	assert.Equal(t, uint8(12), b)
	assert.Equal(t, 1, th)

	_, th = TrailStyle(0, 0)
	assert.Equal(t, 1, th)
}
