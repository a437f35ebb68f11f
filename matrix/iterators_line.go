// SPDX-License-Identifier: MIT

// Package matrix - Z and N iterator factories.
//
// Whole-matrix Begin/End never fail; on an empty matrix they return unlinked
// iterators that compare equal to each other. Row (Z) and column (N) scoped
// factories and IteratorAt validate their arguments.

package matrix

// ZBegin returns a Z iterator at the first element.
func (m *Matrix[T]) ZBegin() ZIterator[T] {
	return ZIterator[T]{c: wholeCursor[T, rowMajor, forward](m, false)}
}

// ZEnd returns the Z sentinel.
func (m *Matrix[T]) ZEnd() ZIterator[T] {
	return ZIterator[T]{c: wholeCursor[T, rowMajor, forward](m, true)}
}

// ZRowBegin returns a Z iterator at the first element of row r.
func (m *Matrix[T]) ZRowBegin(r int) (ZIterator[T], error) {
	return asLine(scopedCursor[T, rowMajor, forward](m, "ZRowBegin", r, false))
}

// ZRowEnd returns the Z iterator one step past row r.
func (m *Matrix[T]) ZRowEnd(r int) (ZIterator[T], error) {
	return asLine(scopedCursor[T, rowMajor, forward](m, "ZRowEnd", r, true))
}

// ZIteratorAt returns a Z iterator at (r, c).
func (m *Matrix[T]) ZIteratorAt(r, c int) (ZIterator[T], error) {
	return asLine(pointCursor[T, rowMajor, forward](m, "ZIteratorAt", r, c))
}

// ReverseZBegin returns a reverse Z iterator at the last element.
func (m *Matrix[T]) ReverseZBegin() ReverseZIterator[T] {
	return ReverseZIterator[T]{c: wholeCursor[T, rowMajor, backward](m, false)}
}

// ReverseZEnd returns the reverse Z sentinel.
func (m *Matrix[T]) ReverseZEnd() ReverseZIterator[T] {
	return ReverseZIterator[T]{c: wholeCursor[T, rowMajor, backward](m, true)}
}

// ReverseZRowBegin returns a reverse Z iterator at the last element of row r.
func (m *Matrix[T]) ReverseZRowBegin(r int) (ReverseZIterator[T], error) {
	return asLine(scopedCursor[T, rowMajor, backward](m, "ReverseZRowBegin", r, false))
}

// ReverseZRowEnd returns the reverse Z iterator one step past row r.
func (m *Matrix[T]) ReverseZRowEnd(r int) (ReverseZIterator[T], error) {
	return asLine(scopedCursor[T, rowMajor, backward](m, "ReverseZRowEnd", r, true))
}

// ReverseZIteratorAt returns a reverse Z iterator at (r, c).
func (m *Matrix[T]) ReverseZIteratorAt(r, c int) (ReverseZIterator[T], error) {
	return asLine(pointCursor[T, rowMajor, backward](m, "ReverseZIteratorAt", r, c))
}

// ConstZBegin returns a read-only Z iterator at the first element.
func (m *Matrix[T]) ConstZBegin() ConstZIterator[T] {
	return ConstZIterator[T]{c: wholeCursor[T, rowMajor, forward](m, false)}
}

// ConstZEnd returns the read-only Z sentinel.
func (m *Matrix[T]) ConstZEnd() ConstZIterator[T] {
	return ConstZIterator[T]{c: wholeCursor[T, rowMajor, forward](m, true)}
}

// ConstZRowBegin returns a read-only Z iterator at the first element of row r.
func (m *Matrix[T]) ConstZRowBegin(r int) (ConstZIterator[T], error) {
	return asConstLine(scopedCursor[T, rowMajor, forward](m, "ConstZRowBegin", r, false))
}

// ConstZRowEnd returns the read-only Z iterator one step past row r.
func (m *Matrix[T]) ConstZRowEnd(r int) (ConstZIterator[T], error) {
	return asConstLine(scopedCursor[T, rowMajor, forward](m, "ConstZRowEnd", r, true))
}

// ConstZIteratorAt returns a read-only Z iterator at (r, c).
func (m *Matrix[T]) ConstZIteratorAt(r, c int) (ConstZIterator[T], error) {
	return asConstLine(pointCursor[T, rowMajor, forward](m, "ConstZIteratorAt", r, c))
}

// ConstReverseZBegin returns a read-only reverse Z iterator at the last element.
func (m *Matrix[T]) ConstReverseZBegin() ConstReverseZIterator[T] {
	return ConstReverseZIterator[T]{c: wholeCursor[T, rowMajor, backward](m, false)}
}

// ConstReverseZEnd returns the read-only reverse Z sentinel.
func (m *Matrix[T]) ConstReverseZEnd() ConstReverseZIterator[T] {
	return ConstReverseZIterator[T]{c: wholeCursor[T, rowMajor, backward](m, true)}
}

// ConstReverseZRowBegin returns a read-only reverse Z iterator at the last element of row r.
func (m *Matrix[T]) ConstReverseZRowBegin(r int) (ConstReverseZIterator[T], error) {
	return asConstLine(scopedCursor[T, rowMajor, backward](m, "ConstReverseZRowBegin", r, false))
}

// ConstReverseZRowEnd returns the read-only reverse Z iterator one step past row r.
func (m *Matrix[T]) ConstReverseZRowEnd(r int) (ConstReverseZIterator[T], error) {
	return asConstLine(scopedCursor[T, rowMajor, backward](m, "ConstReverseZRowEnd", r, true))
}

// ConstReverseZIteratorAt returns a read-only reverse Z iterator at (r, c).
func (m *Matrix[T]) ConstReverseZIteratorAt(r, c int) (ConstReverseZIterator[T], error) {
	return asConstLine(pointCursor[T, rowMajor, backward](m, "ConstReverseZIteratorAt", r, c))
}

// NBegin returns a N iterator at the first element.
func (m *Matrix[T]) NBegin() NIterator[T] {
	return NIterator[T]{c: wholeCursor[T, columnMajor, forward](m, false)}
}

// NEnd returns the N sentinel.
func (m *Matrix[T]) NEnd() NIterator[T] {
	return NIterator[T]{c: wholeCursor[T, columnMajor, forward](m, true)}
}

// NColumnBegin returns a N iterator at the first element of column c.
func (m *Matrix[T]) NColumnBegin(c int) (NIterator[T], error) {
	return asLine(scopedCursor[T, columnMajor, forward](m, "NColumnBegin", c, false))
}

// NColumnEnd returns the N iterator one step past column c.
func (m *Matrix[T]) NColumnEnd(c int) (NIterator[T], error) {
	return asLine(scopedCursor[T, columnMajor, forward](m, "NColumnEnd", c, true))
}

// NIteratorAt returns a N iterator at (r, c).
func (m *Matrix[T]) NIteratorAt(r, c int) (NIterator[T], error) {
	return asLine(pointCursor[T, columnMajor, forward](m, "NIteratorAt", r, c))
}

// ReverseNBegin returns a reverse N iterator at the last element.
func (m *Matrix[T]) ReverseNBegin() ReverseNIterator[T] {
	return ReverseNIterator[T]{c: wholeCursor[T, columnMajor, backward](m, false)}
}

// ReverseNEnd returns the reverse N sentinel.
func (m *Matrix[T]) ReverseNEnd() ReverseNIterator[T] {
	return ReverseNIterator[T]{c: wholeCursor[T, columnMajor, backward](m, true)}
}

// ReverseNColumnBegin returns a reverse N iterator at the last element of column c.
func (m *Matrix[T]) ReverseNColumnBegin(c int) (ReverseNIterator[T], error) {
	return asLine(scopedCursor[T, columnMajor, backward](m, "ReverseNColumnBegin", c, false))
}

// ReverseNColumnEnd returns the reverse N iterator one step past column c.
func (m *Matrix[T]) ReverseNColumnEnd(c int) (ReverseNIterator[T], error) {
	return asLine(scopedCursor[T, columnMajor, backward](m, "ReverseNColumnEnd", c, true))
}

// ReverseNIteratorAt returns a reverse N iterator at (r, c).
func (m *Matrix[T]) ReverseNIteratorAt(r, c int) (ReverseNIterator[T], error) {
	return asLine(pointCursor[T, columnMajor, backward](m, "ReverseNIteratorAt", r, c))
}

// ConstNBegin returns a read-only N iterator at the first element.
func (m *Matrix[T]) ConstNBegin() ConstNIterator[T] {
	return ConstNIterator[T]{c: wholeCursor[T, columnMajor, forward](m, false)}
}

// ConstNEnd returns the read-only N sentinel.
func (m *Matrix[T]) ConstNEnd() ConstNIterator[T] {
	return ConstNIterator[T]{c: wholeCursor[T, columnMajor, forward](m, true)}
}

// ConstNColumnBegin returns a read-only N iterator at the first element of column c.
func (m *Matrix[T]) ConstNColumnBegin(c int) (ConstNIterator[T], error) {
	return asConstLine(scopedCursor[T, columnMajor, forward](m, "ConstNColumnBegin", c, false))
}

// ConstNColumnEnd returns the read-only N iterator one step past column c.
func (m *Matrix[T]) ConstNColumnEnd(c int) (ConstNIterator[T], error) {
	return asConstLine(scopedCursor[T, columnMajor, forward](m, "ConstNColumnEnd", c, true))
}

// ConstNIteratorAt returns a read-only N iterator at (r, c).
func (m *Matrix[T]) ConstNIteratorAt(r, c int) (ConstNIterator[T], error) {
	return asConstLine(pointCursor[T, columnMajor, forward](m, "ConstNIteratorAt", r, c))
}

// ConstReverseNBegin returns a read-only reverse N iterator at the last element.
func (m *Matrix[T]) ConstReverseNBegin() ConstReverseNIterator[T] {
	return ConstReverseNIterator[T]{c: wholeCursor[T, columnMajor, backward](m, false)}
}

// ConstReverseNEnd returns the read-only reverse N sentinel.
func (m *Matrix[T]) ConstReverseNEnd() ConstReverseNIterator[T] {
	return ConstReverseNIterator[T]{c: wholeCursor[T, columnMajor, backward](m, true)}
}

// ConstReverseNColumnBegin returns a read-only reverse N iterator at the last element of column c.
func (m *Matrix[T]) ConstReverseNColumnBegin(c int) (ConstReverseNIterator[T], error) {
	return asConstLine(scopedCursor[T, columnMajor, backward](m, "ConstReverseNColumnBegin", c, false))
}

// ConstReverseNColumnEnd returns the read-only reverse N iterator one step past column c.
func (m *Matrix[T]) ConstReverseNColumnEnd(c int) (ConstReverseNIterator[T], error) {
	return asConstLine(scopedCursor[T, columnMajor, backward](m, "ConstReverseNColumnEnd", c, true))
}

// ConstReverseNIteratorAt returns a read-only reverse N iterator at (r, c).
func (m *Matrix[T]) ConstReverseNIteratorAt(r, c int) (ConstReverseNIterator[T], error) {
	return asConstLine(pointCursor[T, columnMajor, backward](m, "ConstReverseNIteratorAt", r, c))
}
