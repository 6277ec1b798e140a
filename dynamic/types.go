// SPDX-License-Identifier: MIT

// Package dynamic: element constraint and container limits.
// This file intentionally contains ONLY domain-facing types and constants;
// errors live in errors.go and validation in validators.go.
package dynamic

// Number is the element constraint shared by Sequence and SquareMatrix.
// The zero value of every member type is its additive identity, which is what
// zero-filled construction and Dot accumulation rely on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Limits (single source of truth).
const (
	// MaxSequenceLength is the largest length accepted by Sequence constructors.
	MaxSequenceLength = 100_000_000

	// MaxMatrixDimension is the largest dimension accepted by SquareMatrix constructors.
	MaxMatrixDimension = 10_000

	// DefaultLength is the length used by NewDefault.
	DefaultLength = 1
)

// Formatting literals for text output.
const (
	_fmtElemSep = " "  // written after every element
	_fmtRowEnd  = "\n" // written after every matrix row
)
