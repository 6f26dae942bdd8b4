package ring

// Buffer is a fixed-capacity FIFO. Pushing into a full buffer overwrites
// the oldest entry.
type Buffer[T any] struct {
	buf   []T
	pos   int
	count int
}

// New creates an empty buffer with the given capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{
		buf: make([]T, capacity),
	}
}

// Push appends a value, evicting the oldest one when full.
func (r *Buffer[T]) Push(val T) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in arrival order, oldest first.
func (r *Buffer[T]) Values() []T {
	if r.count == 0 {
		return nil
	}
	result := make([]T, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Last returns the most recent value. ok is false when the buffer is empty.
func (r *Buffer[T]) Last() (val T, ok bool) {
	if r.count == 0 {
		return val, false
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx], true
}

// Len returns the number of stored values.
func (r *Buffer[T]) Len() int {
	return r.count
}

// Cap returns the buffer capacity.
func (r *Buffer[T]) Cap() int {
	return len(r.buf)
}
