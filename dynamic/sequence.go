// SPDX-License-Identifier: MIT

// Package dynamic - Sequence storage, construction and safe accessors.
//
// Purpose:
//   - Own a fixed-length buffer exclusively; every copy is deep.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep copy-construction (CopyFrom) and assignment (Assign) as two distinct
//     operations with different self-reference handling.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); At/Set/Index/Len/Swap/Take: O(1); Assign: O(n).

package dynamic

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFrom     = "FromSlice"
	ctxCopy     = "CopyFrom"
	ctxAssign   = "Assign"
	ctxTake     = "Take"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxIndex    = "Index"
	ctxReadFrom = "ReadFrom"
)

// Sequence is a fixed-length vector of T with exclusive ownership of its storage.
// The zero value is an empty, unconstructed Sequence (Len() == 0); it is only
// useful as the target of CopyFrom, Assign or Take.
type Sequence[T Number] struct {
	buf store[T] // owned storage, len == Len()
}

// Compile-time assertions for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sequence[int])(nil)

// New creates a Sequence of n zero-valued elements.
// MAIN DESCRIPTION:
//   - Public constructor with strict length validation.
//
// Implementation:
//   - Stage 1: validate 0 < n <= MaxSequenceLength; else ErrSize.
//   - Stage 2: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Validation precedes allocation: a failed call allocates nothing.
//   - Negative n is rejected by the same bound check as oversized n.
//
// Errors:
//   - ErrSize (length contract violation).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](n int) (*Sequence[T], error) {
	if err := validateLength(n); err != nil {
		return nil, fmt.Errorf("Sequence.%s(%d): %w", ctxNew, n, err)
	}

	return &Sequence[T]{buf: newStore[T](n)}, nil
}

// NewDefault returns a zero-filled Sequence of DefaultLength elements.
func NewDefault[T Number]() *Sequence[T] {
	return &Sequence[T]{buf: newStore[T](DefaultLength)}
}

// FromSlice deep-copies the first n elements of src into a new Sequence.
// MAIN DESCRIPTION:
//   - Adopt externally owned data without aliasing it.
//
// Implementation:
//   - Stage 1: validate n (ErrSize).
//   - Stage 2: assert src is usable (programmer error otherwise).
//   - Stage 3: allocate and copy.
//
// Behavior highlights:
//   - Later writes to src never reach the Sequence and vice versa.
//
// Errors:
//   - ErrSize for an out-of-range n.
//
// Notes:
//   - A nil src, or one shorter than n, is a programmer error and panics.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice[T Number](src []T, n int) (*Sequence[T], error) {
	if err := validateLength(n); err != nil {
		return nil, fmt.Errorf("Sequence.%s(%d): %w", ctxFrom, n, err)
	}
	if src == nil {
		panic(panicNilSource)
	}
	if len(src) < n {
		panic(panicShortSource)
	}
	s := &Sequence[T]{buf: newStore[T](n)}
	copy(s.buf.data, src[:n])

	return s, nil
}

// NewCopy returns an independent deep copy of src.
// Errors: ErrInvalidArgument when src is nil.
func NewCopy[T Number](src *Sequence[T]) (*Sequence[T], error) {
	if src == nil {
		return nil, seqErrorf(ctxCopy, ErrInvalidArgument)
	}

	return src.Clone(), nil
}

// Clone returns a deep copy with its own storage.
// Complexity: O(n).
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{buf: s.buf.clone()}
}

// CopyFrom (re)constructs the receiver as a deep copy of src.
// MAIN DESCRIPTION:
//   - Copy-construction into an existing value, typically a zero Sequence.
//
// Behavior highlights:
//   - Copying from the receiver itself is rejected with ErrInvalidArgument.
//     Assign, by contrast, treats self-reference as a no-op.
//
// Errors:
//   - ErrInvalidArgument when src is nil or src == s.
//
// Complexity:
//   - Time O(n), Space O(n).
func (s *Sequence[T]) CopyFrom(src *Sequence[T]) error {
	if src == nil || src == s {
		return seqErrorf(ctxCopy, ErrInvalidArgument)
	}
	s.buf = src.buf.clone()

	return nil
}

// Assign replaces the receiver's contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Value assignment; the receiver's length becomes src.Len().
//
// Implementation:
//   - Stage 1: self-assignment returns immediately.
//   - Stage 2: build the copy off to the side.
//   - Stage 3: swap it in; the old buffer is dropped with the temporary.
//
// Errors:
//   - ErrInvalidArgument when src is nil.
//
// Complexity:
//   - Time O(n), Space O(n).
func (s *Sequence[T]) Assign(src *Sequence[T]) error {
	if src == nil {
		return seqErrorf(ctxAssign, ErrInvalidArgument)
	}
	if src == s {
		return nil
	}
	tmp := src.buf.clone()
	s.buf.swap(&tmp)

	return nil
}

// Take moves src's storage into the receiver and leaves src empty (Len() == 0).
// No elements are copied. Taking from the receiver itself is a no-op.
// Errors: ErrInvalidArgument when src is nil.
func (s *Sequence[T]) Take(src *Sequence[T]) error {
	if src == nil {
		return seqErrorf(ctxTake, ErrInvalidArgument)
	}
	if src == s {
		return nil
	}
	s.buf.take(&src.buf)

	return nil
}

// Swap exchanges length and storage with o in O(1). It never fails;
// a nil o is a no-op.
func (s *Sequence[T]) Swap(o *Sequence[T]) {
	if o == nil {
		return
	}
	s.buf.swap(&o.buf)
}

// Len returns the element count.
// Complexity: O(1).
func (s *Sequence[T]) Len() int { return s.buf.len() }

// Index returns a mutable reference to element i.
// The pointer stays valid until the next Assign, Take or Swap on s.
// Errors: ErrIndex unless 0 <= i < Len().
func (s *Sequence[T]) Index(i int) (*T, error) {
	if !s.buf.inRange(i) {
		return nil, seqIndexErrorf(ctxIndex, i, ErrIndex)
	}

	return &s.buf.data[i], nil
}

// At returns element i or ErrIndex.
// Complexity: O(1).
func (s *Sequence[T]) At(i int) (T, error) {
	if !s.buf.inRange(i) {
		var zero T
		return zero, seqIndexErrorf(ctxAt, i, ErrIndex)
	}

	return s.buf.data[i], nil
}

// Set stores v at index i or returns ErrIndex.
// Complexity: O(1).
func (s *Sequence[T]) Set(i int, v T) error {
	if !s.buf.inRange(i) {
		return seqIndexErrorf(ctxSet, i, ErrIndex)
	}
	s.buf.data[i] = v

	return nil
}

// Values returns a copy of the elements in index order.
func (s *Sequence[T]) Values() []T {
	out := make([]T, s.buf.len())
	copy(out, s.buf.data)

	return out
}

// Do visits each element in index order; it stops early when f returns false.
// Complexity: O(n), no allocations.
func (s *Sequence[T]) Do(f func(i int, v T) bool) {
	for i := 0; i < s.buf.n; i++ {
		if !f(i, s.buf.data[i]) {
			return
		}
	}
}

// Apply replaces each element with f(i, v) in place, in index order.
func (s *Sequence[T]) Apply(f func(i int, v T) T) {
	for i := 0; i < s.buf.n; i++ {
		s.buf.data[i] = f(i, s.buf.data[i])
	}
}

// Equal reports whether o has the same length and pairwise equal elements.
// A nil o is never equal. Differing lengths yield false, not an error.
// Complexity: O(n).
func (s *Sequence[T]) Equal(o *Sequence[T]) bool {
	if o == nil {
		return false
	}
	if s == o {
		return true
	}
	if s.buf.n != o.buf.n {
		return false
	}
	for i := 0; i < s.buf.n; i++ {
		if s.buf.data[i] != o.buf.data[i] {
			return false
		}
	}

	return true
}

// String renders the elements like a Go slice, e.g. "[1 2 3]".
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.buf.data)
}
