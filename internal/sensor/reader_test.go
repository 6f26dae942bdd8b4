package sensor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPort returns one chunk per Read, then reports no data.
type scriptedPort struct {
	chunks []string
	errs   []error
	calls  int
}

func (p *scriptedPort) Read(b []byte) (int, error) {
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

func TestReader_SingleLine(t *testing.T) {
	now := time.Now()
	r := NewReader(&scriptedPort{chunks: []string{"90,50\n"}}, zerolog.Nop())

	samples, err := r.Poll(now)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, Sample{Angle: 90, Distance: 50, At: now}, samples[0])
	assert.Equal(t, 0, r.Dropped())
}

func TestReader_NoDataDefers(t *testing.T) {
	r := NewReader(&scriptedPort{}, zerolog.Nop())

	samples, err := r.Poll(time.Now())
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestReader_PartialLineAcrossReads(t *testing.T) {
	r := NewReader(&scriptedPort{chunks: []string{"12", "0,3", "3\r\n"}}, zerolog.Nop())

	samples, err := r.Poll(time.Now())
	require.NoError(t, err)
	assert.Empty(t, samples)

	samples, err = r.Poll(time.Now())
	require.NoError(t, err)
	assert.Empty(t, samples)

	samples, err = r.Poll(time.Now())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 120, samples[0].Angle)
	assert.Equal(t, 33, samples[0].Distance)
}

func TestReader_MalformedLinesAreDropped(t *testing.T) {
	r := NewReader(&scriptedPort{chunks: []string{"garbage\n10,20\n\nx,y\n30,40\n"}}, zerolog.Nop())

	samples, err := r.Poll(time.Now())
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 10, samples[0].Angle)
	assert.Equal(t, 30, samples[1].Angle)
	assert.Equal(t, 3, r.Dropped())
}

func TestReader_OverlongLineIsDropped(t *testing.T) {
	junk := strings.Repeat("9", 300)
	r := NewReader(&scriptedPort{chunks: []string{junk, "\n5,6\n"}}, zerolog.Nop())

	samples, err := r.Poll(time.Now())
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Equal(t, 1, r.Dropped())

	samples, err = r.Poll(time.Now())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, Sample{Angle: 5, Distance: 6, At: samples[0].At}, samples[0])
}

func TestReader_OverlongLineTailIsSkipped(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []Sample
	}{
		{
			name:   "tail ends in next chunk",
			chunks: []string{strings.Repeat("x", 300), "90,50\n", "10,20\n"},
			want:   []Sample{{Angle: 10, Distance: 20}},
		},
		{
			name:   "tail spans several chunks",
			chunks: []string{strings.Repeat("x", 300), "xxxx", "1,2\n3,4\n"},
			want:   []Sample{{Angle: 3, Distance: 4}},
		},
		{
			name:   "tail and next record share a chunk",
			chunks: []string{strings.Repeat("x", 300), "7,8\n45,60\n"},
			want:   []Sample{{Angle: 45, Distance: 60}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(&scriptedPort{chunks: tt.chunks}, zerolog.Nop())

			var got []Sample
			for range tt.chunks {
				samples, err := r.Poll(time.Time{})
				require.NoError(t, err)
				got = append(got, samples...)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, r.Dropped(), "the broken line counts once")
		})
	}
}

func TestReader_ReadErrorIsNotFatal(t *testing.T) {
	boom := errors.New("device reports I/O error")
	port := &scriptedPort{
		chunks: []string{"1,2\n3,", "", "4\n"},
		errs:   []error{nil, boom, nil},
	}
	r := NewReader(port, zerolog.Nop())

	samples, err := r.Poll(time.Now())
	require.NoError(t, err)
	require.Len(t, samples, 1)

	samples, err = r.Poll(time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, samples)

	samples, err = r.Poll(time.Now())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 3, samples[0].Angle)
	assert.Equal(t, 4, samples[0].Distance)
}
