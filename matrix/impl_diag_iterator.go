// SPDX-License-Identifier: MIT

// Package matrix - iterator geometry: diagonals (D) and mirrored diagonals (M).
//
// Diagonal model:
//   - A diagonal is addressed by its number nr ∈ [-(rows-1), cols-1].
//     D diagonals run down-right; diagonal 0 is the main diagonal through (0,0),
//     positive numbers start on row 0, negative numbers on column 0.
//     M diagonals run down-left; diagonal 0 passes through (0, cols-1) and the
//     column is read mirrored: col = cols-1-c', where c' is the D column.
//   - size(nr) = min(rows - max(0,-nr), cols - max(0,nr)).
//   - Element i of diagonal nr sits at row i+max(0,-nr), D column i+max(0,nr).
//
// Position model:
//   - Same as lines: k counts steps from begin in [0, size]; forward visits
//     diagonal index i = k, reverse i = size-1-k; k == size is the sentinel.

package matrix

import (
	"cmp"
	"iter"
)

// diagMirror selects the anchor corner of a diagonal iterator.
type diagMirror interface{ mirrored() bool }

type (
	topLeft  struct{}
	topRight struct{}
)

func (topLeft) mirrored() bool  { return false }
func (topRight) mirrored() bool { return true }

func isMirrored[G diagMirror]() bool {
	var g G
	return g.mirrored()
}

// hasDiagonal reports whether a rows x cols matrix has diagonal nr.
func hasDiagonal(rows, cols, nr int) bool {
	return rows > 0 && nr > -rows && nr < cols
}

// diagonalSize is the element count of diagonal nr.
func diagonalSize(rows, cols, nr int) int {
	return min(rows-max(0, -nr), cols-max(0, nr))
}

// diagonalOf maps (r, c) to its diagonal number and index.
func diagonalOf[G diagMirror](cols, r, c int) (nr, i int) {
	if isMirrored[G]() {
		c = cols - 1 - c
	}

	return c - r, min(r, c)
}

// diagCursor is the state shared by mutable and const diagonal iterators.
type diagCursor[T comparable, G diagMirror, D direction] struct {
	v    view[T]
	nr   int // diagonal number
	size int // element count of diagonal nr
	k    int // steps from begin, in [0, size]
}

// newDiagCursor links a cursor to the begin of diagonal nr of m. The caller
// has validated nr and moves k where needed.
func newDiagCursor[T comparable, G diagMirror, D direction](m *Matrix[T], nr int) diagCursor[T, G, D] {
	return diagCursor[T, G, D]{
		v:    m.view(),
		nr:   nr,
		size: diagonalSize(m.rows, m.cols, nr),
	}
}

func (c *diagCursor[T, G, D]) flip(x int) int {
	if isReversed[D]() {
		return c.size - 1 - x
	}

	return x
}

func (c *diagCursor[T, G, D]) family() string {
	name := "DIterator"
	if isMirrored[G]() {
		name = "MIterator"
	}
	if isReversed[D]() {
		name = "Reverse" + name
	}

	return name
}

// point maps diagonal index i to (row, col).
func (c *diagCursor[T, G, D]) point(i int) (r, col int) {
	r = i + max(0, -c.nr)
	col = i + max(0, c.nr)
	if isMirrored[G]() {
		col = c.v.cols - 1 - col
	}

	return r, col
}

// index returns the current diagonal index; the reverse sentinel has none.
func (c *diagCursor[T, G, D]) index() (int, bool) {
	if !c.v.linked() {
		return 0, false
	}
	i := c.flip(c.k)
	if i < 0 {
		return 0, false
	}

	return i, true
}

func (c *diagCursor[T, G, D]) position() (r, col int, ok bool) {
	i, ok := c.index()
	if !ok || i >= c.size {
		return 0, 0, false
	}
	r, col = c.point(i)

	return r, col, true
}

func (c *diagCursor[T, G, D]) advance(n int) {
	if !c.v.linked() {
		return
	}
	c.k = clampStep(c.k, n, c.size)
}

func (c *diagCursor[T, G, D]) offset(n int) int {
	if n > c.size-c.k || n < -c.k {
		return -1
	}

	return c.k + n
}

func (c *diagCursor[T, G, D]) ref(method string, k int) (*T, error) {
	if !c.v.linked() {
		return nil, iteratorErrorf(c.family(), method, ErrDereferenceEndIterator)
	}
	if !contiguous(k, c.size) {
		return nil, iteratorErrorf(c.family(), method, ErrIteratorIndexOutOfBounds)
	}
	if k == c.size {
		return nil, iteratorErrorf(c.family(), method, ErrDereferenceEndIterator)
	}
	r, col := c.point(c.flip(k))

	return c.v.cell(r, col), nil
}

func (c *diagCursor[T, G, D]) diff(method string, o *diagCursor[T, G, D]) (int, error) {
	if !c.v.compatible(&o.v) || c.nr != o.nr {
		return 0, iteratorErrorf(c.family(), method, ErrIncompatibleIterators)
	}

	return c.k - o.k, nil
}

func (c *diagCursor[T, G, D]) seq(end *diagCursor[T, G, D]) iter.Seq[T] {
	cur, to := *c, end.k
	ok := c.v.linked() && c.v.compatible(&end.v) && c.nr == end.nr

	return func(yield func(T) bool) {
		if !ok {
			return
		}
		for k := cur.k; k < to; k++ {
			r, col := cur.point(cur.flip(k))
			if !yield(*cur.v.cell(r, col)) {
				return
			}
		}
	}
}

// DiagIterator is a random-access iterator along one diagonal (D) or one
// mirrored diagonal (M). Use the DIterator/MIterator aliases and the
// factories on Matrix; the zero value is an unlinked iterator.
type DiagIterator[T comparable, G diagMirror, D direction] struct {
	c diagCursor[T, G, D]
}

// Linked reports whether the iterator is tied to a matrix.
func (it DiagIterator[T, G, D]) Linked() bool { return it.c.v.linked() }

// Next moves one step forward along the diagonal (clamped at end).
func (it *DiagIterator[T, G, D]) Next() { it.c.advance(1) }

// Prev moves one step back along the diagonal (clamped at begin).
func (it *DiagIterator[T, G, D]) Prev() { it.c.advance(-1) }

// Advance moves n steps, clamping silently to [begin, end].
func (it *DiagIterator[T, G, D]) Advance(n int) { it.c.advance(n) }

// Retreat moves n steps back, clamping silently to [begin, end].
func (it *DiagIterator[T, G, D]) Retreat(n int) { it.c.advance(negate(n)) }

// Add returns a copy advanced by n.
func (it DiagIterator[T, G, D]) Add(n int) DiagIterator[T, G, D] {
	it.c.advance(n)
	return it
}

// Sub returns a copy moved back by n.
func (it DiagIterator[T, G, D]) Sub(n int) DiagIterator[T, G, D] { return it.Add(negate(n)) }

// Diff returns the number of steps from o to it.
//
// Errors:
//   - ErrIncompatibleIterators when the iterators belong to different
//     matrices, shapes or diagonals, or only one of them is linked.
func (it DiagIterator[T, G, D]) Diff(o DiagIterator[T, G, D]) (int, error) {
	return it.c.diff("Diff", &o.c)
}

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it DiagIterator[T, G, D]) Compare(o DiagIterator[T, G, D]) (int, error) {
	d, err := it.c.diff("Compare", &o.c)
	return cmp.Compare(d, 0), err
}

// Less reports whether it comes before o.
func (it DiagIterator[T, G, D]) Less(o DiagIterator[T, G, D]) (bool, error) {
	d, err := it.c.diff("Less", &o.c)
	return d < 0, err
}

// Equal reports whether it and o point at the same position.
func (it DiagIterator[T, G, D]) Equal(o DiagIterator[T, G, D]) (bool, error) {
	d, err := it.c.diff("Equal", &o.c)
	return err == nil && d == 0, err
}

// Value returns the current element.
func (it DiagIterator[T, G, D]) Value() (T, error) {
	return deref(it.c.ref("Value", it.c.k))
}

// Ptr returns a pointer to the current element.
func (it DiagIterator[T, G, D]) Ptr() (*T, error) { return it.c.ref("Ptr", it.c.k) }

// Set overwrites the current element.
func (it DiagIterator[T, G, D]) Set(v T) error {
	p, err := it.c.ref("Set", it.c.k)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// At returns the element n steps away without moving the iterator.
//
// Errors:
//   - ErrIteratorIndexOutOfBounds when the target lies outside [begin, end].
//   - ErrDereferenceEndIterator when the target is the sentinel.
func (it DiagIterator[T, G, D]) At(n int) (T, error) {
	return deref(it.c.ref("At", it.c.offset(n)))
}

// DiagonalNr returns the diagonal number; ok is false when unlinked.
func (it DiagIterator[T, G, D]) DiagonalNr() (int, bool) { return it.c.nr, it.c.v.linked() }

// DiagonalIndex returns the position along the diagonal. The forward end
// reports DiagonalSize(); the reverse end has no index.
func (it DiagIterator[T, G, D]) DiagonalIndex() (int, bool) { return it.c.index() }

// DiagonalSize returns the element count of the diagonal (0 when unlinked).
func (it DiagIterator[T, G, D]) DiagonalSize() int {
	if !it.c.v.linked() {
		return 0
	}

	return it.c.size
}

// RowNr returns the current row; ok is false at a sentinel or when unlinked.
func (it DiagIterator[T, G, D]) RowNr() (int, bool) {
	r, _, ok := it.c.position()
	return r, ok
}

// ColumnNr returns the current column; ok is false at a sentinel or when unlinked.
func (it DiagIterator[T, G, D]) ColumnNr() (int, bool) {
	_, c, ok := it.c.position()
	return c, ok
}

// Const returns a read-only copy of the iterator.
func (it DiagIterator[T, G, D]) Const() ConstDiagIterator[T, G, D] {
	return ConstDiagIterator[T, G, D]{c: it.c}
}

// Seq ranges over the diagonal from it up to (excluding) end.
func (it DiagIterator[T, G, D]) Seq(end DiagIterator[T, G, D]) iter.Seq[T] {
	return it.c.seq(&end.c)
}
