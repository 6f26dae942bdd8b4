package sensor

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"serial-radar.klederson.com/internal/config"
)

// Reader frames newline-terminated records out of a polled byte stream.
// The underlying reader is expected to return quickly with n == 0 when no
// data is buffered, as a serial port with a short read timeout does.
type Reader struct {
	port    io.Reader
	buf     []byte
	pending []byte
	dropped int
	// discarding is set after an overlong line was dropped; bytes are
	// skipped through the next newline.
	discarding bool
	log     zerolog.Logger
}

// NewReader wraps port. Malformed lines are logged to log at debug level.
func NewReader(port io.Reader, log zerolog.Logger) *Reader {
	return &Reader{
		port:    port,
		buf:     make([]byte, config.ReadChunk),
		pending: make([]byte, 0, config.MaxLineLength),
		log:     log,
	}
}

// Poll performs a single read and returns a sample for every complete,
// well-formed line now available. Incomplete trailing data stays pending
// for the next call. A read error is returned alongside any samples that
// were already framed; it never invalidates the Reader.
func (r *Reader) Poll(now time.Time) ([]Sample, error) {
	n, err := r.port.Read(r.buf)
	if n > 0 {
		r.pending = append(r.pending, r.buf[:n]...)
	}

	samples := r.drain(now)
	if err != nil {
		return samples, fmt.Errorf("serial read: %w", err)
	}
	return samples, nil
}

func (r *Reader) drain(now time.Time) []Sample {
	var samples []Sample
	rest := r.pending
	if r.discarding {
		idx := bytes.IndexByte(rest, '\n')
		if idx < 0 {
			r.pending = r.pending[:0]
			return nil
		}
		rest = rest[idx+1:]
		r.discarding = false
	}
	for {
		idx := bytes.IndexByte(rest, '\n')
		if idx < 0 {
			break
		}
		line := string(rest[:idx])
		rest = rest[idx+1:]

		s, err := ParseLine(line, now)
		if err != nil {
			r.dropped++
			r.log.Debug().Err(err).Str("line", line).Msg("dropping malformed line")
			continue
		}
		samples = append(samples, s)
	}

	if len(rest) > config.MaxLineLength {
		r.dropped++
		r.log.Debug().Int("bytes", len(rest)).Msg("dropping overlong line")
		rest = rest[:0]
		r.discarding = true
	}
	r.pending = append(r.pending[:0], rest...)
	return samples
}

// Dropped returns the number of lines discarded so far.
func (r *Reader) Dropped() int {
	return r.dropped
}
