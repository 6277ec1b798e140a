// SPDX-License-Identifier: MIT
// Package: dynamic
//
// Purpose:
//   - Scalar and vector arithmetic on Sequence. Every operation allocates a
//     fresh result; operands are never mutated.
//   - Share the tight loops through two private kernels (mapScalar, zipWith)
//     instead of repeating them per operator.
//
// Determinism:
//   - Fixed 0..n-1 loop order; Dot accumulates left to right from T's zero value.

package dynamic

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
	ctxDot = "Dot"
)

// mapScalar returns out[i] = f(s[i], v).
// Time: O(n). Space: O(n).
func (s *Sequence[T]) mapScalar(v T, f func(a, b T) T) *Sequence[T] {
	out := &Sequence[T]{buf: newStore[T](s.buf.n)}
	for i := 0; i < s.buf.n; i++ {
		out.buf.data[i] = f(s.buf.data[i], v)
	}

	return out
}

// zipWith returns out[i] = f(s[i], o[i]) after validating o.
// Time: O(n). Space: O(n).
func (s *Sequence[T]) zipWith(method string, o *Sequence[T], f func(a, b T) T) (*Sequence[T], error) {
	if err := validatePair(s, o); err != nil {
		return nil, seqErrorf(method, err)
	}
	out := &Sequence[T]{buf: newStore[T](s.buf.n)}
	for i := 0; i < s.buf.n; i++ {
		out.buf.data[i] = f(s.buf.data[i], o.buf.data[i])
	}

	return out, nil
}

// dot is the unchecked kernel; callers guarantee len(a) == len(b).
func dot[T Number](a, b []T) T {
	var acc T
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }

// AddScalar returns a new Sequence with v added to every element.
func (s *Sequence[T]) AddScalar(v T) *Sequence[T] { return s.mapScalar(v, add[T]) }

// SubScalar returns a new Sequence with v subtracted from every element.
func (s *Sequence[T]) SubScalar(v T) *Sequence[T] { return s.mapScalar(v, sub[T]) }

// MulScalar returns a new Sequence with every element multiplied by v.
func (s *Sequence[T]) MulScalar(v T) *Sequence[T] { return s.mapScalar(v, mul[T]) }

// Add returns the elementwise sum s + o.
// Errors: ErrSizeMismatch when lengths differ; ErrInvalidArgument for nil o.
// Complexity: O(n).
func (s *Sequence[T]) Add(o *Sequence[T]) (*Sequence[T], error) {
	return s.zipWith(ctxAdd, o, add[T])
}

// Sub returns the elementwise difference s - o.
// Errors: ErrSizeMismatch when lengths differ; ErrInvalidArgument for nil o.
// Complexity: O(n).
func (s *Sequence[T]) Sub(o *Sequence[T]) (*Sequence[T], error) {
	return s.zipWith(ctxSub, o, sub[T])
}

// Dot returns Σ s[i]*o[i], accumulated from the zero value of T.
// MAIN DESCRIPTION:
//   - Inner product of two equal-length sequences.
//
// Errors:
//   - ErrSizeMismatch when lengths differ; ErrInvalidArgument for nil o.
//
// Notes:
//   - Integer overflow and float rounding follow T's own arithmetic.
//
// Complexity:
//   - Time O(n), Space O(1).
func (s *Sequence[T]) Dot(o *Sequence[T]) (T, error) {
	if err := validatePair(s, o); err != nil {
		var zero T
		return zero, seqErrorf(ctxDot, err)
	}

	return dot(s.buf.data, o.buf.data), nil
}
