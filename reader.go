package turbopfor

import "slices"

// Reader is a thin cursor over an already-decoded, strictly increasing
// sequence of identifiers — typically the out slice a Decode call just
// filled. It does not decode anything itself; it exists so that callers
// walking posting-list-shaped output do not each reimplement the same
// forward-iteration and skip-to primitives.
//
// A Reader is not safe for concurrent use. Wrap the same values slice in
// multiple Readers if concurrent independent iteration is needed.
type Reader[T Id] struct {
	values []T
	pos    int
}

// NewReader wraps values, which must already be strictly increasing (as
// Decode's output always is), for sequential and skip-to iteration.
func NewReader[T Id](values []T) *Reader[T] {
	return &Reader[T]{values: values}
}

// Len returns the number of identifiers in the wrapped sequence.
func (r *Reader[T]) Len() int { return len(r.values) }

// Pos returns the current iteration position.
func (r *Reader[T]) Pos() int { return r.pos }

// Reset rewinds iteration to the start of the sequence.
func (r *Reader[T]) Reset() { r.pos = 0 }

// Get returns the value at pos without moving the cursor.
func (r *Reader[T]) Get(pos int) (value T, ok bool) {
	if pos < 0 || pos >= len(r.values) {
		return 0, false
	}
	return r.values[pos], true
}

// Next returns the next value in sequence order, or ok=false once the
// sequence is exhausted.
func (r *Reader[T]) Next() (value T, pos int, ok bool) {
	if r.pos >= len(r.values) {
		return 0, 0, false
	}
	value, pos = r.values[r.pos], r.pos
	r.pos++
	return value, pos, true
}

// SkipTo advances to and returns the first value >= req, searching forward
// from the current position. Because Decode's output is unconditionally
// sorted — there is no zigzag or otherwise non-monotonic mode in this
// format — this always uses binary search rather than a linear scan.
func (r *Reader[T]) SkipTo(req T) (value T, pos int, ok bool) {
	tail := r.values[r.pos:]
	idx, _ := slices.BinarySearch(tail, req)
	if idx == len(tail) {
		r.pos = len(r.values)
		return 0, 0, false
	}
	abs := r.pos + idx
	r.pos = abs + 1
	return r.values[abs], abs, true
}
