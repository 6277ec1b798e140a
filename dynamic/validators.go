// SPDX-License-Identifier: MIT
// Package: dynamic
//
// Purpose:
//  - Single source of truth for length/dimension bounds and operand checks.
//  - Return plain sentinels (no wrapping) so call sites wrap uniformly with
//    their own method tag.
//
// Note:
//  - Lengths are signed. A negative length and a length above the maximum
//    fail the same way (ErrSize).

package dynamic

// validateLength checks 0 < n <= MaxSequenceLength.
// Complexity: O(1).
func validateLength(n int) error {
	if n <= 0 || n > MaxSequenceLength {
		return ErrSize
	}

	return nil
}

// validateDimension checks 0 < n <= MaxMatrixDimension.
// Complexity: O(1).
func validateDimension(n int) error {
	if n <= 0 || n > MaxMatrixDimension {
		return ErrSize
	}

	return nil
}

// validatePair ensures both sequences are present and of equal length.
// Order: nil → length.
func validatePair[T Number](a, b *Sequence[T]) error {
	if a == nil || b == nil {
		return ErrInvalidArgument
	}
	if a.buf.len() != b.buf.len() {
		return ErrSizeMismatch
	}

	return nil
}

// validateSquarePair ensures both matrices are present and of equal dimension.
func validateSquarePair[T Number](a, b *SquareMatrix[T]) error {
	if a == nil || b == nil {
		return ErrInvalidArgument
	}
	if a.rows.len() != b.rows.len() {
		return ErrSizeMismatch
	}

	return nil
}
