// SPDX-License-Identifier: MIT

// Package matrix - iterator geometry: row-major (Z) and column-major (N) lines.
//
// Purpose:
//   - One generic cursor serves both families; the phantom axis parameter
//     swaps the roles of rows and columns, the phantom direction parameter
//     selects forward or reverse traversal.
//
// Position model:
//   - The cursor stores k, the number of steps taken from begin, in [0, n]
//     with n = rows*cols. Forward iterators visit the flattened index L = k,
//     reverse iterators L = n-1-k. Arithmetic, ordering and difference only
//     ever look at k, so both directions share them unchanged.
//   - k == n is the sentinel: one past the last element (forward) or one
//     before the first element (reverse).
//
// Sentinel coordinates:
//   - Z forward end: (rows-1, cols).   Z reverse end: (0, absent).
//   - N forward end: (rows, cols-1).   N reverse end: (absent, 0).
//
// AI-Hints:
//   - Advance/Retreat clamp to [begin, end]; At(n) fails outside [begin, end].

package matrix

import (
	"cmp"
	"iter"
	"math"
)

// lineAxis selects the flattening order of a line iterator.
type lineAxis interface{ transposed() bool }

type (
	rowMajor    struct{}
	columnMajor struct{}
)

func (rowMajor) transposed() bool    { return false }
func (columnMajor) transposed() bool { return true }

// direction selects forward or reverse traversal.
type direction interface{ reversed() bool }

type (
	forward  struct{}
	backward struct{}
)

func (forward) reversed() bool  { return false }
func (backward) reversed() bool { return true }

func isReversed[D direction]() bool {
	var d D
	return d.reversed()
}

func isTransposed[A lineAxis]() bool {
	var a A
	return a.transposed()
}

// lineCursor is the state shared by mutable and const line iterators.
type lineCursor[T comparable, A lineAxis, D direction] struct {
	v view[T]
	k int // steps from begin, in [0, rows*cols]
}

// newLineCursor links a cursor to m at flattened position pos ∈ [-1, n].
// An empty matrix yields an unlinked cursor.
func newLineCursor[T comparable, A lineAxis, D direction](m *Matrix[T], pos int) lineCursor[T, A, D] {
	c := lineCursor[T, A, D]{v: m.view()}
	if c.v.linked() {
		c.k = c.flip(pos)
	}

	return c
}

func (c *lineCursor[T, A, D]) size() int { return c.v.rows * c.v.cols }

// flip converts between steps and flattened positions (it is an involution).
func (c *lineCursor[T, A, D]) flip(x int) int {
	if isReversed[D]() {
		return c.size() - 1 - x
	}

	return x
}

func (c *lineCursor[T, A, D]) family() string {
	name := "ZIterator"
	if isTransposed[A]() {
		name = "NIterator"
	}
	if isReversed[D]() {
		name = "Reverse" + name
	}

	return name
}

// split maps a flattened position to (row, col).
func (c *lineCursor[T, A, D]) split(pos int) (r, col int) {
	if isTransposed[A]() {
		return pos % c.v.rows, pos / c.v.rows
	}

	return pos / c.v.cols, pos % c.v.cols
}

func (c *lineCursor[T, A, D]) position() (r, col int, rowOK, colOK bool) {
	if !c.v.linked() {
		return 0, 0, false, false
	}
	n := c.size()
	pos := c.flip(c.k)
	switch {
	case pos == n:
		if isTransposed[A]() {
			return c.v.rows, c.v.cols - 1, true, true
		}
		return c.v.rows - 1, c.v.cols, true, true
	case pos < 0:
		if isTransposed[A]() {
			return 0, 0, false, true
		}
		return 0, 0, true, false
	}
	r, col = c.split(pos)

	return r, col, true, true
}

// advance moves by n steps, clamping to [begin, end]. No-op when unlinked.
func (c *lineCursor[T, A, D]) advance(n int) {
	if !c.v.linked() {
		return
	}
	c.k = clampStep(c.k, n, c.size())
}

// ref resolves the element k steps from begin.
func (c *lineCursor[T, A, D]) ref(method string, k int) (*T, error) {
	if !c.v.linked() {
		return nil, iteratorErrorf(c.family(), method, ErrDereferenceEndIterator)
	}
	n := c.size()
	if !contiguous(k, n) {
		return nil, iteratorErrorf(c.family(), method, ErrIteratorIndexOutOfBounds)
	}
	if k == n {
		return nil, iteratorErrorf(c.family(), method, ErrDereferenceEndIterator)
	}
	r, col := c.split(c.flip(k))

	return c.v.cell(r, col), nil
}

// offset returns k+n, or an out-of-range marker when the sum would overflow.
func (c *lineCursor[T, A, D]) offset(n int) int {
	if n > c.size()-c.k || n < -c.k {
		return -1
	}

	return c.k + n
}

func (c *lineCursor[T, A, D]) diff(method string, o *lineCursor[T, A, D]) (int, error) {
	if !c.v.compatible(&o.v) {
		return 0, iteratorErrorf(c.family(), method, ErrIncompatibleIterators)
	}

	return c.k - o.k, nil
}

func (c *lineCursor[T, A, D]) seq(end *lineCursor[T, A, D]) iter.Seq[T] {
	cur, to := *c, end.k
	ok := c.v.linked() && c.v.compatible(&end.v)

	return func(yield func(T) bool) {
		if !ok {
			return
		}
		for k := cur.k; k < to; k++ {
			r, col := cur.split(cur.flip(k))
			if !yield(*cur.v.cell(r, col)) {
				return
			}
		}
	}
}

// LineIterator is a random-access iterator over a matrix in row-major (Z) or
// column-major (N) order. Use the ZIterator/NIterator aliases and the
// factories on Matrix; the zero value is an unlinked iterator.
type LineIterator[T comparable, A lineAxis, D direction] struct {
	c lineCursor[T, A, D]
}

// Linked reports whether the iterator is tied to a matrix.
func (it LineIterator[T, A, D]) Linked() bool { return it.c.v.linked() }

// Next moves one step forward in traversal order (clamped at end).
func (it *LineIterator[T, A, D]) Next() { it.c.advance(1) }

// Prev moves one step back in traversal order (clamped at begin).
func (it *LineIterator[T, A, D]) Prev() { it.c.advance(-1) }

// Advance moves n steps, clamping silently to [begin, end].
func (it *LineIterator[T, A, D]) Advance(n int) { it.c.advance(n) }

// Retreat moves n steps back, clamping silently to [begin, end].
func (it *LineIterator[T, A, D]) Retreat(n int) { it.c.advance(negate(n)) }

// Add returns a copy advanced by n.
func (it LineIterator[T, A, D]) Add(n int) LineIterator[T, A, D] {
	it.c.advance(n)
	return it
}

// Sub returns a copy moved back by n.
func (it LineIterator[T, A, D]) Sub(n int) LineIterator[T, A, D] { return it.Add(negate(n)) }

// Diff returns the number of steps from o to it.
//
// Errors:
//   - ErrIncompatibleIterators when the iterators belong to different matrices
//     or shapes, or only one of them is linked.
func (it LineIterator[T, A, D]) Diff(o LineIterator[T, A, D]) (int, error) {
	return it.c.diff("Diff", &o.c)
}

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it LineIterator[T, A, D]) Compare(o LineIterator[T, A, D]) (int, error) {
	d, err := it.c.diff("Compare", &o.c)
	return cmp.Compare(d, 0), err
}

// Less reports whether it comes before o.
func (it LineIterator[T, A, D]) Less(o LineIterator[T, A, D]) (bool, error) {
	d, err := it.c.diff("Less", &o.c)
	return d < 0, err
}

// Equal reports whether it and o point at the same position.
func (it LineIterator[T, A, D]) Equal(o LineIterator[T, A, D]) (bool, error) {
	d, err := it.c.diff("Equal", &o.c)
	return err == nil && d == 0, err
}

// Value returns the current element.
//
// Errors:
//   - ErrDereferenceEndIterator at a sentinel or when unlinked.
func (it LineIterator[T, A, D]) Value() (T, error) {
	return deref(it.c.ref("Value", it.c.k))
}

// Ptr returns a pointer to the current element.
func (it LineIterator[T, A, D]) Ptr() (*T, error) { return it.c.ref("Ptr", it.c.k) }

// Set overwrites the current element.
func (it LineIterator[T, A, D]) Set(v T) error {
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
func (it LineIterator[T, A, D]) At(n int) (T, error) {
	return deref(it.c.ref("At", it.c.offset(n)))
}

// RowNr returns the current row; ok is false when the row is absent.
func (it LineIterator[T, A, D]) RowNr() (int, bool) {
	r, _, ok, _ := it.c.position()
	return r, ok
}

// ColumnNr returns the current column; ok is false when the column is absent.
func (it LineIterator[T, A, D]) ColumnNr() (int, bool) {
	_, c, _, ok := it.c.position()
	return c, ok
}

// Const returns a read-only copy of the iterator.
func (it LineIterator[T, A, D]) Const() ConstLineIterator[T, A, D] {
	return ConstLineIterator[T, A, D]{c: it.c}
}

// Seq ranges over the elements from it up to (excluding) end. Incompatible
// or unlinked iterators yield nothing.
//
// Example:
//
//	begin, end := m.ZBegin(), m.ZEnd()
//	for v := range begin.Seq(end) {
//		fmt.Println(v)
//	}
func (it LineIterator[T, A, D]) Seq(end LineIterator[T, A, D]) iter.Seq[T] {
	return it.c.seq(&end.c)
}

// clampStep returns k+n clamped to [0, limit] without overflowing.
func clampStep(k, n, limit int) int {
	switch {
	case n > limit-k:
		return limit
	case n < -k:
		return 0
	default:
		return k + n
	}
}

// negate returns -n, mapping math.MinInt to math.MaxInt so that moving back
// by the most negative step still clamps towards end.
func negate(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}

	return -n
}
