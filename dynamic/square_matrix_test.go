// SPDX-License-Identifier: MIT

package dynamic_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tdynamic/dynamic"
)

// TestNewSquare_Valid checks squareness and zero fill.
func TestNewSquare_Valid(t *testing.T) {
	for _, n := range []int{1, 3, 16} {
		m, err := dynamic.NewSquare[int](n)
		require.NoError(t, err)
		require.Equal(t, n, m.Dim())
		for i := 0; i < n; i++ {
			row, err := m.Row(i)
			require.NoError(t, err)
			require.Equal(t, n, row.Len())                 // every row has length n
			require.Equal(t, make([]int, n), row.Values()) // zero-filled
		}
	}
}

// TestNewSquare_InvalidDimension ensures ErrSize for 0, negative and oversized dimensions.
func TestNewSquare_InvalidDimension(t *testing.T) {
	for _, n := range []int{0, -3, dynamic.MaxMatrixDimension + 1} {
		m, err := dynamic.NewSquare[float64](n)
		require.ErrorIs(t, err, dynamic.ErrSize)
		require.Nil(t, m)
	}
}

// TestFromRows covers shape validation.
func TestFromRows(t *testing.T) {
	m := MustSquare(t, []int{1, 2}, []int{3, 4})
	if d := cmp.Diff([][]int{{1, 2}, {3, 4}}, Rows(t, m)); d != "" {
		t.Fatalf("FromRows mismatch (-want +got):\n%s", d)
	}

	_, err := dynamic.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, dynamic.ErrSizeMismatch)

	_, err = dynamic.FromRows([][]int{})
	require.ErrorIs(t, err, dynamic.ErrSize)
}

// TestIdentity checks diagonal ones.
func TestIdentity(t *testing.T) {
	id, err := dynamic.NewIdentity[float64](3)
	require.NoError(t, err)
	want := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	require.Equal(t, want, Rows(t, id))
}

// TestSquare_AtSetRow covers element and row accessors.
func TestSquare_AtSetRow(t *testing.T) {
	m, err := dynamic.NewSquare[int](2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, dynamic.ErrIndex)
	require.ErrorIs(t, m.Set(0, -1, 1), dynamic.ErrIndex)
	_, err = m.Row(5)
	require.ErrorIs(t, err, dynamic.ErrIndex)

	row, err := m.Row(1)
	require.NoError(t, err)
	MustSet(t, row, 0, 99) // copy, not a view
	v, _ = m.At(1, 0)
	require.Equal(t, 5, v)

	require.NoError(t, m.SetRow(0, MustSeq(t, 7, 8)))
	require.Equal(t, [][]int{{7, 8}, {5, 0}}, Rows(t, m))
	require.ErrorIs(t, m.SetRow(0, MustSeq(t, 1, 2, 3)), dynamic.ErrSizeMismatch)
	require.ErrorIs(t, m.SetRow(0, nil), dynamic.ErrInvalidArgument)
	require.ErrorIs(t, m.SetRow(2, MustSeq(t, 1, 2)), dynamic.ErrIndex)
}

// TestSquare_CopySemantics covers Clone, CopyFrom, Assign, Take and Swap.
func TestSquare_CopySemantics(t *testing.T) {
	m := MustSquare(t, []int{1, 2}, []int{3, 4})

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 0, 42))
	require.False(t, m.Equal(c)) // rows deep-copied

	cp, err := dynamic.NewSquareCopy(m)
	require.NoError(t, err)
	require.True(t, cp.Equal(m))
	_, err = dynamic.NewSquareCopy[int](nil)
	require.ErrorIs(t, err, dynamic.ErrInvalidArgument)

	require.ErrorIs(t, m.CopyFrom(m), dynamic.ErrInvalidArgument)
	require.NoError(t, m.Assign(m))

	big, err := dynamic.NewSquare[int](3)
	require.NoError(t, err)
	require.NoError(t, big.Assign(m))
	require.Equal(t, 2, big.Dim())
	require.True(t, big.Equal(m))

	var dst dynamic.SquareMatrix[int]
	require.NoError(t, dst.Take(big))
	require.Equal(t, 2, dst.Dim())
	require.Equal(t, 0, big.Dim())

	other := MustSquare(t, []int{9})
	dst.Swap(other)
	require.Equal(t, 1, dst.Dim())
	require.Equal(t, 2, other.Dim())

	require.NotPanics(t, func() { dst.Swap(nil) })
	require.Equal(t, [][]int{{9}}, Rows(t, &dst))
}

// TestSquare_Equal compares dimension first, then rows.
func TestSquare_Equal(t *testing.T) {
	a, _ := dynamic.NewSquare[int](2)
	b, _ := dynamic.NewSquare[int](3)
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
	require.True(t, a.Equal(a.Clone()))
}

// TestSquare_MulScalar_IsPure ensures the receiver is never modified.
func TestSquare_MulScalar_IsPure(t *testing.T) {
	m := MustSquare(t, []int{1, 2}, []int{3, 4})
	got := m.MulScalar(3)
	require.Equal(t, [][]int{{3, 6}, {9, 12}}, Rows(t, got))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, Rows(t, m))
}

// TestSquare_MulVec covers the standard product and mismatches.
func TestSquare_MulVec(t *testing.T) {
	zero, err := dynamic.NewSquare[int](3)
	require.NoError(t, err)
	got, err := zero.MulVec(MustSeq(t, 1, 0, 0))
	require.NoError(t, err)
	row0, _ := zero.Row(0)
	require.True(t, got.Equal(row0))

	m := MustSquare(t, []int{1, 2}, []int{3, 4})
	got, err = m.MulVec(MustSeq(t, 5, 6))
	require.NoError(t, err)
	require.Equal(t, []int{17, 39}, got.Values())

	for i := 0; i < m.Dim(); i++ { // result[i] == dot(row i, v)
		row, _ := m.Row(i)
		d, err := row.Dot(MustSeq(t, 5, 6))
		require.NoError(t, err)
		require.Equal(t, d, MustAt(t, got, i))
	}

	e0, err := m.MulVec(MustSeq(t, 1, 0)) // picks column 0
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, e0.Values())

	_, err = m.MulVec(MustSeq(t, 1, 2, 3))
	require.ErrorIs(t, err, dynamic.ErrSizeMismatch)
	_, err = m.MulVec(nil)
	require.ErrorIs(t, err, dynamic.ErrInvalidArgument)
}

// TestSquare_AddSub verifies rowwise sums/differences and mismatches.
func TestSquare_AddSub(t *testing.T) {
	a := MustSquare(t, []int{1, 2}, []int{3, 4})
	b := MustSquare(t, []int{5, 6}, []int{7, 8})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{6, 8}, {10, 12}}, Rows(t, sum))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{-4, -4}, {-4, -4}}, Rows(t, diff))

	m2, _ := dynamic.NewSquare[int](2)
	m3, _ := dynamic.NewSquare[int](3)
	_, err = m2.Add(m3)
	require.ErrorIs(t, err, dynamic.ErrSizeMismatch)
	_, err = m2.Sub(m3)
	require.ErrorIs(t, err, dynamic.ErrSizeMismatch)
	_, err = m2.Add(nil)
	require.ErrorIs(t, err, dynamic.ErrInvalidArgument)
}

// TestSquare_MulTranspose covers the product, identity and transpose.
func TestSquare_MulTranspose(t *testing.T) {
	a := MustSquare(t, []int{1, 2}, []int{3, 4})
	b := MustSquare(t, []int{5, 6}, []int{7, 8})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{19, 22}, {43, 50}}, Rows(t, p))

	id, _ := dynamic.NewIdentity[int](2)
	p, err = id.Mul(a)
	require.NoError(t, err)
	require.True(t, p.Equal(a))

	require.Equal(t, [][]int{{1, 3}, {2, 4}}, Rows(t, a.Transpose()))

	m3, _ := dynamic.NewSquare[int](3)
	_, err = a.Mul(m3)
	require.ErrorIs(t, err, dynamic.ErrSizeMismatch)
}

// TestSquare_String renders one bracketed row per line.
func TestSquare_String(t *testing.T) {
	m := MustSquare(t, []int{1, 0}, []int{0, 1})
	require.Equal(t, "[1 0]\n[0 1]\n", m.String())
}
