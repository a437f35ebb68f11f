// SPDX-License-Identifier: MIT

// Package matrix - iterator geometry: read-only iterators.
//
// A const iterator shares the cursor of its mutable counterpart and exposes
// everything except Ptr and Set. Conversion is one-way: LineIterator.Const()
// and DiagIterator.Const() build a const copy; nothing converts back.

package matrix

import (
	"cmp"
	"iter"
)

// ConstLineIterator is the read-only form of LineIterator.
type ConstLineIterator[T comparable, A lineAxis, D direction] struct {
	c lineCursor[T, A, D]
}

// Linked reports whether the iterator is tied to a matrix.
func (it ConstLineIterator[T, A, D]) Linked() bool { return it.c.v.linked() }

// Next moves one step forward in traversal order (clamped at end).
func (it *ConstLineIterator[T, A, D]) Next() { it.c.advance(1) }

// Prev moves one step back in traversal order (clamped at begin).
func (it *ConstLineIterator[T, A, D]) Prev() { it.c.advance(-1) }

// Advance moves n steps, clamping silently to [begin, end].
func (it *ConstLineIterator[T, A, D]) Advance(n int) { it.c.advance(n) }

// Retreat moves n steps back, clamping silently to [begin, end].
func (it *ConstLineIterator[T, A, D]) Retreat(n int) { it.c.advance(negate(n)) }

// Add returns a copy advanced by n.
func (it ConstLineIterator[T, A, D]) Add(n int) ConstLineIterator[T, A, D] {
	it.c.advance(n)
	return it
}

// Sub returns a copy moved back by n.
func (it ConstLineIterator[T, A, D]) Sub(n int) ConstLineIterator[T, A, D] { return it.Add(negate(n)) }

// Diff returns the number of steps from o to it.
func (it ConstLineIterator[T, A, D]) Diff(o ConstLineIterator[T, A, D]) (int, error) {
	return it.c.diff("Diff", &o.c)
}

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it ConstLineIterator[T, A, D]) Compare(o ConstLineIterator[T, A, D]) (int, error) {
	d, err := it.c.diff("Compare", &o.c)
	return cmp.Compare(d, 0), err
}

// Less reports whether it comes before o.
func (it ConstLineIterator[T, A, D]) Less(o ConstLineIterator[T, A, D]) (bool, error) {
	d, err := it.c.diff("Less", &o.c)
	return d < 0, err
}

// Equal reports whether it and o point at the same position.
func (it ConstLineIterator[T, A, D]) Equal(o ConstLineIterator[T, A, D]) (bool, error) {
	d, err := it.c.diff("Equal", &o.c)
	return err == nil && d == 0, err
}

// Value returns the current element.
func (it ConstLineIterator[T, A, D]) Value() (T, error) {
	return deref(it.c.ref("Value", it.c.k))
}

// At returns the element n steps away without moving the iterator.
func (it ConstLineIterator[T, A, D]) At(n int) (T, error) {
	return deref(it.c.ref("At", it.c.offset(n)))
}

// RowNr returns the current row; ok is false when the row is absent.
func (it ConstLineIterator[T, A, D]) RowNr() (int, bool) {
	r, _, ok, _ := it.c.position()
	return r, ok
}

// ColumnNr returns the current column; ok is false when the column is absent.
func (it ConstLineIterator[T, A, D]) ColumnNr() (int, bool) {
	_, c, _, ok := it.c.position()
	return c, ok
}

// Seq ranges over the elements from it up to (excluding) end.
func (it ConstLineIterator[T, A, D]) Seq(end ConstLineIterator[T, A, D]) iter.Seq[T] {
	return it.c.seq(&end.c)
}

// ConstDiagIterator is the read-only form of DiagIterator.
type ConstDiagIterator[T comparable, G diagMirror, D direction] struct {
	c diagCursor[T, G, D]
}

func (it ConstDiagIterator[T, G, D]) Linked() bool { return it.c.v.linked() }

func (it *ConstDiagIterator[T, G, D]) Next() { it.c.advance(1) }

func (it *ConstDiagIterator[T, G, D]) Prev() { it.c.advance(-1) }

func (it *ConstDiagIterator[T, G, D]) Advance(n int) { it.c.advance(n) }

func (it *ConstDiagIterator[T, G, D]) Retreat(n int) { it.c.advance(negate(n)) }

func (it ConstDiagIterator[T, G, D]) Add(n int) ConstDiagIterator[T, G, D] {
	it.c.advance(n)
	return it
}

func (it ConstDiagIterator[T, G, D]) Sub(n int) ConstDiagIterator[T, G, D] { return it.Add(negate(n)) }

func (it ConstDiagIterator[T, G, D]) Diff(o ConstDiagIterator[T, G, D]) (int, error) {
	return it.c.diff("Diff", &o.c)
}

func (it ConstDiagIterator[T, G, D]) Compare(o ConstDiagIterator[T, G, D]) (int, error) {
	d, err := it.c.diff("Compare", &o.c)
	return cmp.Compare(d, 0), err
}

func (it ConstDiagIterator[T, G, D]) Less(o ConstDiagIterator[T, G, D]) (bool, error) {
	d, err := it.c.diff("Less", &o.c)
	return d < 0, err
}

func (it ConstDiagIterator[T, G, D]) Equal(o ConstDiagIterator[T, G, D]) (bool, error) {
	d, err := it.c.diff("Equal", &o.c)
	return err == nil && d == 0, err
}

func (it ConstDiagIterator[T, G, D]) Value() (T, error) {
	return deref(it.c.ref("Value", it.c.k))
}

func (it ConstDiagIterator[T, G, D]) At(n int) (T, error) {
	return deref(it.c.ref("At", it.c.offset(n)))
}

func (it ConstDiagIterator[T, G, D]) DiagonalNr() (int, bool) { return it.c.nr, it.c.v.linked() }

func (it ConstDiagIterator[T, G, D]) DiagonalIndex() (int, bool) { return it.c.index() }

func (it ConstDiagIterator[T, G, D]) DiagonalSize() int {
	if !it.c.v.linked() {
		return 0
	}

	return it.c.size
}

func (it ConstDiagIterator[T, G, D]) RowNr() (int, bool) {
	r, _, ok := it.c.position()
	return r, ok
}

func (it ConstDiagIterator[T, G, D]) ColumnNr() (int, bool) {
	_, c, ok := it.c.position()
	return c, ok
}

func (it ConstDiagIterator[T, G, D]) Seq(end ConstDiagIterator[T, G, D]) iter.Seq[T] {
	return it.c.seq(&end.c)
}

// deref reads through a resolved element pointer.
func deref[T any](p *T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}
