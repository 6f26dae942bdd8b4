package sensor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"serial-radar.klederson.com/internal/config"
)

// Sample is one (angle, distance) observation stamped with its capture time.
type Sample struct {
	Angle    int // Degrees, 0=left, 90=up, 180=right on screen
	Distance int // Centimeters, 0 means no echo
	At       time.Time
}

// InRange reports whether the sample is a target inside the radar range.
func (s Sample) InRange(maxRange int) bool {
	return s.Distance > 0 && s.Distance < maxRange
}

// Age returns how long ago the sample was captured.
func (s Sample) Age(now time.Time) time.Duration {
	return now.Sub(s.At)
}

var (
	ErrDecode      = errors.New("line is not valid UTF-8")
	ErrNoSeparator = errors.New("missing ',' separator")
	ErrFieldCount  = errors.New("expected exactly two fields")
	ErrNotNumeric  = errors.New("field is not an integer")
	ErrAngleRange  = errors.New("angle out of range")
)

// ParseLine decodes one "<angle>,<distance>" record.
func ParseLine(line string, at time.Time) (Sample, error) {
	if !utf8.ValidString(line) {
		return Sample{}, ErrDecode
	}
	line = strings.TrimSpace(line)
	if !strings.Contains(line, ",") {
		return Sample{}, ErrNoSeparator
	}

	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return Sample{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(parts))
	}

	angle, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Sample{}, fmt.Errorf("%w: angle %q", ErrNotNumeric, parts[0])
	}
	distance, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Sample{}, fmt.Errorf("%w: distance %q", ErrNotNumeric, parts[1])
	}
	if angle < 0 || angle > config.SweepMaxDeg {
		return Sample{}, fmt.Errorf("%w: %d", ErrAngleRange, angle)
	}

	return Sample{Angle: angle, Distance: distance, At: at}, nil
}
