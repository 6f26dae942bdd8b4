package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn", false)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Int("angle", 90).Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, float64(90), entry["angle"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", true)
	require.NoError(t, err)

	log.Debug().Msg("dropping malformed line")
	assert.Contains(t, buf.String(), "dropping malformed line")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestSampled_LimitsBurst(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", false)
	require.NoError(t, err)

	sampled := Sampled(log, 2, time.Hour)
	for i := 0; i < 10; i++ {
		sampled.Error().Msg("serial read failed")
	}
	assert.Equal(t, 2, strings.Count(buf.String(), "serial read failed"))
}

func TestOpen(t *testing.T) {
	w, err := Open("")
	require.NoError(t, err)
	_, err = w.Write([]byte("discarded"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "radar.log")
	w, err = Open(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("kept\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kept\n", string(data))

	_, err = Open(filepath.Join(t.TempDir(), "missing", "radar.log"))
	assert.Error(t, err)
}
