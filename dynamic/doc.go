// SPDX-License-Identifier: MIT

// Package dynamic provides fixed-length numeric containers with value semantics.
//
// The dynamic package provides:
//
//   - Sequence[T]: a fixed-length, bounds-checked vector that exclusively owns
//     its storage. Copies are deep; arithmetic (scalar ops, Add/Sub, Dot)
//     always returns fresh values.
//   - SquareMatrix[T]: an n×n matrix composed of n row sequences of length n.
//     Adds matrix-vector and matrix-matrix products on top of the row machinery.
//   - Whitespace-delimited text I/O for both containers (ReadFrom/WriteTo).
//
// Errors:
//
//	Every user-triggered failure is reported as one of four sentinels
//	(ErrSize, ErrIndex, ErrSizeMismatch, ErrInvalidArgument), wrapped with
//	method context and matchable via errors.Is.
//
// Concurrency:
//
//	Containers are plain values for single-threaded use. Guard shared
//	instances externally.
//
// Quick example:
//
//	a, _ := dynamic.FromSlice([]int{1, 4}, 2)
//	b, _ := dynamic.FromSlice([]int{7, 3}, 2)
//	d, _ := a.Dot(b) // 19
package dynamic
