// SPDX-License-Identifier: MIT
// Package dynamic_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by Sequence and SquareMatrix tests.
//   • Fail fast (t.Fatalf via require) so later steps may assume non-nil values.

package dynamic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tdynamic/dynamic"
)

// MustSeq BUILDS a Sequence from values or fails the test.
func MustSeq[T dynamic.Number](t *testing.T, values ...T) *dynamic.Sequence[T] {
	t.Helper()
	s, err := dynamic.FromSlice(values, len(values))
	require.NoError(t, err)

	return s
}

// MustNew ALLOCATES a zero Sequence of length n or fails the test.
func MustNew[T dynamic.Number](t *testing.T, n int) *dynamic.Sequence[T] {
	t.Helper()
	s, err := dynamic.New[T](n)
	require.NoError(t, err)

	return s
}

// MustSquare BUILDS a SquareMatrix from row-major data or fails the test.
func MustSquare[T dynamic.Number](t *testing.T, rows ...[]T) *dynamic.SquareMatrix[T] {
	t.Helper()
	m, err := dynamic.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS s[i] or fails the test.
func MustAt[T dynamic.Number](t *testing.T, s *dynamic.Sequence[T], i int) T {
	t.Helper()
	v, err := s.At(i)
	require.NoError(t, err)

	return v
}

// MustSet WRITES s[i] = v or fails the test.
func MustSet[T dynamic.Number](t *testing.T, s *dynamic.Sequence[T], i int, v T) {
	t.Helper()
	require.NoError(t, s.Set(i, v))
}

// Rows EXTRACTS a matrix as [][]T via Row copies, for cmp.Diff comparisons.
func Rows[T dynamic.Number](t *testing.T, m *dynamic.SquareMatrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Dim())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row.Values()
	}

	return out
}
