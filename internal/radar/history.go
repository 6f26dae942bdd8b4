package radar

import (
	"serial-radar.klederson.com/internal/config"
	"serial-radar.klederson.com/internal/ring"
	"serial-radar.klederson.com/internal/sensor"
)

// History keeps the most recent samples in arrival order.
type History struct {
	buf *ring.Buffer[sensor.Sample]
}

// NewHistory creates an empty history holding config.HistorySize samples.
func NewHistory() *History {
	return &History{buf: ring.New[sensor.Sample](config.HistorySize)}
}

// Push records a sample, evicting the oldest when full.
func (h *History) Push(s sensor.Sample) {
	h.buf.Push(s)
}

// Latest returns the most recently pushed sample.
func (h *History) Latest() (sensor.Sample, bool) {
	return h.buf.Last()
}

// Samples returns the stored samples, oldest first.
func (h *History) Samples() []sensor.Sample {
	return h.buf.Values()
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.buf.Len()
}
