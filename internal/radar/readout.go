package radar

import "fmt"

// Readout is the content of the latest-reading panel.
type Readout struct {
	Valid    bool // False until the first sample arrives
	Angle    int
	Distance int
	Band     Band
}

// ReadoutFor summarizes the latest sample in h.
func ReadoutFor(h *History, maxRange int) Readout {
	s, ok := h.Latest()
	if !ok {
		return Readout{}
	}
	return Readout{
		Valid:    true,
		Angle:    s.Angle,
		Distance: s.Distance,
		Band:     BandFor(s.Distance, maxRange),
	}
}

// InRange reports whether the latest sample is a target.
func (r Readout) InRange() bool {
	return r.Band != BandNone
}

func (r Readout) AngleText() string {
	return fmt.Sprintf("Angle: %ddeg", r.Angle)
}

func (r Readout) DistanceText() string {
	if !r.InRange() {
		return "Distance: OUT OF RANGE"
	}
	return fmt.Sprintf("Distance: %dcm", r.Distance)
}

func (r Readout) StatusText() string {
	return "[" + r.Band.String() + "]"
}
