// SPDX-License-Identifier: MIT
// Package dynamic: sentinel error set.
// All public operations MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. Panics are reserved for
// programmer errors (see panic* constants below).

package dynamic

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "dynamic: ..." for easy grepping.
// Call sites wrap with method context: fmt.Errorf("Sequence.At(%d): %w", i, ErrIndex).

var (
	// ErrSize is returned when a requested length or dimension is zero,
	// negative or above the package maximum (MaxSequenceLength / MaxMatrixDimension).
	ErrSize = errors.New("dynamic: size out of range")

	// ErrIndex indicates that an element or row index is outside [0, Len()).
	ErrIndex = errors.New("dynamic: index out of range")

	// ErrSizeMismatch indicates a binary operation on operands of different
	// length or dimension (Add, Sub, Dot, MulVec, Mul, SetRow).
	ErrSizeMismatch = errors.New("dynamic: size mismatch")

	// ErrInvalidArgument signals a disallowed argument: a nil operand, or a
	// copy-construction whose source is the receiver itself.
	ErrInvalidArgument = errors.New("dynamic: invalid argument")
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilSource   = "dynamic: FromSlice: source must not be nil"
	panicShortSource = "dynamic: FromSlice: source shorter than requested length"
)

// seqErrorf wraps err with a Sequence method tag.
func seqErrorf(method string, err error) error {
	return fmt.Errorf("Sequence.%s: %w", method, err)
}

// seqIndexErrorf wraps err with a Sequence method tag and the offending index.
func seqIndexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Sequence.%s(%d): %w", method, i, err)
}

// matErrorf wraps err with a SquareMatrix method tag.
func matErrorf(method string, err error) error {
	return fmt.Errorf("SquareMatrix.%s: %w", method, err)
}

// matIndexErrorf wraps err with a SquareMatrix method tag and coordinates.
func matIndexErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("SquareMatrix.%s(%d,%d): %w", method, i, j, err)
}
