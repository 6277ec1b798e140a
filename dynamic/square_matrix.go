// SPDX-License-Identifier: MIT

// Package dynamic - SquareMatrix: an n×n matrix composed of n row Sequences.
//
// Purpose:
//   - Reuse Sequence machinery row by row; the matrix owns a store of rows.
//   - Keep squareness locally enforceable: rows are never handed out by
//     reference, only copied (Row) or replaced after a length check (SetRow).
//   - Every arithmetic operation is pure and returns a fresh matrix.
//
// Complexity quicksheet:
//   - NewSquare/Clone/Add/Sub/MulScalar/MulVec/Transpose: O(n²); Mul: O(n³);
//     At/Set/Dim/Swap: O(1).

package dynamic

import (
	"fmt"
	"strings"
)

const (
	ctxNewSquare = "NewSquare"
	ctxFromRows  = "FromRows"
	ctxRow       = "Row"
	ctxSetRow    = "SetRow"
	ctxMulVec    = "MulVec"
	ctxMul       = "Mul"
)

// SquareMatrix is an n×n matrix of T stored as n independently owned rows.
// Invariant: every row has length Dim().
type SquareMatrix[T Number] struct {
	rows store[Sequence[T]] // outer sequence; rows.data[i].Len() == rows.n
}

var _ fmt.Stringer = (*SquareMatrix[int])(nil)

// NewSquare creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: validate 0 < n <= MaxMatrixDimension; else ErrSize.
//   - Stage 2: allocate the outer store of n rows.
//   - Stage 3: give every row its own zero-filled store of n elements.
//
// Errors:
//   - ErrSize (dimension contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare[T Number](n int) (*SquareMatrix[T], error) {
	if err := validateDimension(n); err != nil {
		return nil, fmt.Errorf("SquareMatrix.%s(%d): %w", ctxNewSquare, n, err)
	}

	return newSquare[T](n), nil
}

// newSquare allocates without validation; callers have validated n.
func newSquare[T Number](n int) *SquareMatrix[T] {
	m := &SquareMatrix[T]{rows: newStore[Sequence[T]](n)}
	for i := 0; i < n; i++ {
		m.rows.data[i] = Sequence[T]{buf: newStore[T](n)}
	}

	return m
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrSize as NewSquare.
func NewIdentity[T Number](n int) (*SquareMatrix[T], error) {
	m, err := NewSquare[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows.data[i].buf.data[i] = 1
	}

	return m, nil
}

// FromRows deep-copies a row-major [][]T into a new matrix.
// Errors:
//   - ErrSize when len(rows) is out of range.
//   - ErrSizeMismatch when some row's length differs from len(rows).
func FromRows[T Number](rows [][]T) (*SquareMatrix[T], error) {
	n := len(rows)
	if err := validateDimension(n); err != nil {
		return nil, fmt.Errorf("SquareMatrix.%s(%d): %w", ctxFromRows, n, err)
	}
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("SquareMatrix.%s: row %d has %d elements: %w",
				ctxFromRows, i, len(rows[i]), ErrSizeMismatch)
		}
	}
	m := newSquare[T](n)
	for i := range rows {
		copy(m.rows.data[i].buf.data, rows[i])
	}

	return m, nil
}

// NewSquareCopy returns a deep copy of src, or ErrInvalidArgument for nil src.
func NewSquareCopy[T Number](src *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if src == nil {
		return nil, matErrorf(ctxCopy, ErrInvalidArgument)
	}

	return src.Clone(), nil
}

// copyRow deep-copies one row for store.cloneWith.
func copyRow[T Number](r Sequence[T]) Sequence[T] {
	return Sequence[T]{buf: r.buf.clone()}
}

// Clone returns a deep copy: a new outer store and a new store per row.
// Complexity: O(n²).
func (m *SquareMatrix[T]) Clone() *SquareMatrix[T] {
	return &SquareMatrix[T]{rows: m.rows.cloneWith(copyRow[T])}
}

// CopyFrom (re)constructs the receiver as a deep copy of src.
// Like Sequence.CopyFrom, self-copy is rejected with ErrInvalidArgument.
func (m *SquareMatrix[T]) CopyFrom(src *SquareMatrix[T]) error {
	if src == nil || src == m {
		return matErrorf(ctxCopy, ErrInvalidArgument)
	}
	m.rows = src.rows.cloneWith(copyRow[T])

	return nil
}

// Assign replaces the receiver with a deep copy of src; self-assignment is a no-op.
// The dimension may change. Errors: ErrInvalidArgument for nil src.
func (m *SquareMatrix[T]) Assign(src *SquareMatrix[T]) error {
	if src == nil {
		return matErrorf(ctxAssign, ErrInvalidArgument)
	}
	if src == m {
		return nil
	}
	tmp := src.rows.cloneWith(copyRow[T])
	m.rows.swap(&tmp)

	return nil
}

// Take moves src's rows into the receiver without copying and leaves src empty.
func (m *SquareMatrix[T]) Take(src *SquareMatrix[T]) error {
	if src == nil {
		return matErrorf(ctxTake, ErrInvalidArgument)
	}
	if src == m {
		return nil
	}
	m.rows.take(&src.rows)

	return nil
}

// Swap exchanges the contents of m and o in O(1). A nil o is a no-op.
func (m *SquareMatrix[T]) Swap(o *SquareMatrix[T]) {
	if o == nil {
		return
	}
	m.rows.swap(&o.rows)
}

// Dim returns the row (and column) count.
func (m *SquareMatrix[T]) Dim() int { return m.rows.len() }

// At returns element (i, j) or ErrIndex.
// Complexity: O(1).
func (m *SquareMatrix[T]) At(i, j int) (T, error) {
	if !m.rows.inRange(i) || !m.rows.inRange(j) {
		var zero T
		return zero, matIndexErrorf(ctxAt, i, j, ErrIndex)
	}

	return m.rows.data[i].buf.data[j], nil
}

// Set stores v at (i, j) or returns ErrIndex.
// Complexity: O(1).
func (m *SquareMatrix[T]) Set(i, j int, v T) error {
	if !m.rows.inRange(i) || !m.rows.inRange(j) {
		return matIndexErrorf(ctxSet, i, j, ErrIndex)
	}
	m.rows.data[i].buf.data[j] = v

	return nil
}

// Row returns a copy of row i. Mutating the copy does not affect m.
func (m *SquareMatrix[T]) Row(i int) (*Sequence[T], error) {
	if !m.rows.inRange(i) {
		return nil, fmt.Errorf("SquareMatrix.%s(%d): %w", ctxRow, i, ErrIndex)
	}
	row := copyRow(m.rows.data[i])

	return &row, nil
}

// SetRow replaces row i with a copy of row.
// Errors: ErrIndex for a bad i, ErrInvalidArgument for nil row,
// ErrSizeMismatch when row.Len() != Dim().
func (m *SquareMatrix[T]) SetRow(i int, row *Sequence[T]) error {
	if !m.rows.inRange(i) {
		return fmt.Errorf("SquareMatrix.%s(%d): %w", ctxSetRow, i, ErrIndex)
	}
	if row == nil {
		return matErrorf(ctxSetRow, ErrInvalidArgument)
	}
	if row.Len() != m.rows.n {
		return matErrorf(ctxSetRow, ErrSizeMismatch)
	}
	m.rows.data[i] = copyRow(*row)

	return nil
}

// Equal compares dimensions, then rows pairwise with Sequence.Equal.
func (m *SquareMatrix[T]) Equal(o *SquareMatrix[T]) bool {
	if o == nil {
		return false
	}
	if m.rows.n != o.rows.n {
		return false
	}
	for i := 0; i < m.rows.n; i++ {
		if !m.rows.data[i].Equal(&o.rows.data[i]) {
			return false
		}
	}

	return true
}

// MulScalar returns a new matrix with every element multiplied by v.
// The receiver is never modified.
// Complexity: O(n²).
func (m *SquareMatrix[T]) MulScalar(v T) *SquareMatrix[T] {
	out := &SquareMatrix[T]{rows: newStore[Sequence[T]](m.rows.n)}
	for i := 0; i < m.rows.n; i++ {
		out.rows.data[i] = *m.rows.data[i].MulScalar(v)
	}

	return out
}

// MulVec returns the matrix-vector product: result[i] = Dot(row i, v).
// MAIN DESCRIPTION:
//   - Standard matrix-vector multiplication, one row dot product per entry.
//
// Errors:
//   - ErrInvalidArgument for nil v; ErrSizeMismatch when v.Len() != Dim().
//
// Complexity:
//   - Time O(n²), Space O(n).
func (m *SquareMatrix[T]) MulVec(v *Sequence[T]) (*Sequence[T], error) {
	if v == nil {
		return nil, matErrorf(ctxMulVec, ErrInvalidArgument)
	}
	n := m.rows.n
	if v.Len() != n {
		return nil, matErrorf(ctxMulVec, ErrSizeMismatch)
	}
	out := &Sequence[T]{buf: newStore[T](n)}
	for i := 0; i < n; i++ {
		out.buf.data[i] = dot(m.rows.data[i].buf.data, v.buf.data)
	}

	return out, nil
}

// rowwise combines m and o row by row with a Sequence binary op.
func (m *SquareMatrix[T]) rowwise(method string, o *SquareMatrix[T],
	op func(a, b *Sequence[T]) (*Sequence[T], error)) (*SquareMatrix[T], error) {
	if err := validateSquarePair(m, o); err != nil {
		return nil, matErrorf(method, err)
	}
	out := &SquareMatrix[T]{rows: newStore[Sequence[T]](m.rows.n)}
	for i := 0; i < m.rows.n; i++ {
		row, err := op(&m.rows.data[i], &o.rows.data[i])
		if err != nil {
			return nil, fmt.Errorf("SquareMatrix.%s: row %d: %w", method, i, err)
		}
		out.rows.data[i] = *row
	}

	return out, nil
}

// Add returns the elementwise sum m + o.
// Errors: ErrSizeMismatch when dimensions differ; ErrInvalidArgument for nil o.
func (m *SquareMatrix[T]) Add(o *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return m.rowwise(ctxAdd, o, (*Sequence[T]).Add)
}

// Sub returns the elementwise difference m - o.
// Errors: ErrSizeMismatch when dimensions differ; ErrInvalidArgument for nil o.
func (m *SquareMatrix[T]) Sub(o *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return m.rowwise(ctxSub, o, (*Sequence[T]).Sub)
}

// Mul returns the matrix product m × o.
// Implementation:
//   - Stage 1: validate operands (nil, dimension).
//   - Stage 2: i→k→j loops so the inner loop walks contiguous rows of o and out.
//
// Errors:
//   - ErrSizeMismatch when dimensions differ; ErrInvalidArgument for nil o.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *SquareMatrix[T]) Mul(o *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if err := validateSquarePair(m, o); err != nil {
		return nil, matErrorf(ctxMul, err)
	}
	n := m.rows.n
	out := newSquare[T](n)
	var aik T
	for i := 0; i < n; i++ {
		dst := out.rows.data[i].buf.data
		src := m.rows.data[i].buf.data
		for k := 0; k < n; k++ {
			aik = src[k]
			bk := o.rows.data[k].buf.data
			for j := 0; j < n; j++ {
				dst[j] += aik * bk[j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns exchanged.
func (m *SquareMatrix[T]) Transpose() *SquareMatrix[T] {
	n := m.rows.n
	out := newSquare[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.rows.data[j].buf.data[i] = m.rows.data[i].buf.data[j]
		}
	}

	return out
}

// String renders one bracketed row per line, e.g. "[1 0]\n[0 1]\n".
func (m *SquareMatrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows.n; i++ {
		b.WriteString(m.rows.data[i].String())
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}
