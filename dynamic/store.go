// SPDX-License-Identifier: MIT

package dynamic

// store is the owned, fixed-length buffer behind both containers.
//   - n is the element count; data always has exactly n live elements.
//   - Sequence[T] holds a store[T]; SquareMatrix[T] holds a store[Sequence[T]],
//     so a matrix really is a sequence of sequences, by composition.
//
// A store never shares data with another store, except transiently inside swap.
type store[E any] struct {
	n    int // element count (== len(data))
	data []E // owned backing storage
}

// newStore allocates n zero-valued elements. Callers validate n beforehand,
// so no partially built store is ever observable.
// Complexity: O(n).
func newStore[E any](n int) store[E] {
	return store[E]{n: n, data: make([]E, n)}
}

// len returns the element count.
func (s *store[E]) len() int { return s.n }

// inRange reports whether 0 <= i < n.
func (s *store[E]) inRange(i int) bool { return i >= 0 && i < s.n }

// cloneWith returns an independent store whose elements are copyElem(data[i]).
// Plain element types pass an identity copier; nested containers pass a deep copier.
// Complexity: O(n) calls to copyElem.
func (s *store[E]) cloneWith(copyElem func(E) E) store[E] {
	out := store[E]{n: s.n, data: make([]E, s.n)}
	for i := 0; i < s.n; i++ {
		out.data[i] = copyElem(s.data[i])
	}

	return out
}

// clone is cloneWith for flat element types (single copy call).
func (s *store[E]) clone() store[E] {
	out := store[E]{n: s.n, data: make([]E, s.n)}
	copy(out.data, s.data)

	return out
}

// swap exchanges length and ownership in O(1).
func (s *store[E]) swap(o *store[E]) {
	s.n, o.n = o.n, s.n
	s.data, o.data = o.data, s.data
}

// take moves o's buffer into s and leaves o empty (n == 0, data == nil).
func (s *store[E]) take(o *store[E]) {
	s.n, s.data = o.n, o.data
	o.n, o.data = 0, nil
}
