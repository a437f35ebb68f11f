// SPDX-License-Identifier: MIT

// Package matrix - D and M iterator factories.
//
// Diagonals are addressed by number (d) or by any (r, c) point on them.
// Errors: ErrDiagonalDoesNotExist for a bad number (always on an empty
// matrix), ErrInvalidElementIndex for a bad point, ErrDiagonalIndexOutOfBounds
// for an index outside [0, diagonal size).

package matrix

// DBegin returns a D iterator at the begin of diagonal d.
func (m *Matrix[T]) DBegin(d int) (DIterator[T], error) {
	return asDiag(diagBound[T, topLeft, forward](m, "DBegin", d, false))
}

// DEnd returns the D sentinel of diagonal d.
func (m *Matrix[T]) DEnd(d int) (DIterator[T], error) {
	return asDiag(diagBound[T, topLeft, forward](m, "DEnd", d, true))
}

// DBeginAt returns the begin of the D diagonal through (r, c).
func (m *Matrix[T]) DBeginAt(r, c int) (DIterator[T], error) {
	return asDiag(diagAnchorBound[T, topLeft, forward](m, "DBeginAt", r, c, false))
}

// DEndAt returns the sentinel of the D diagonal through (r, c).
func (m *Matrix[T]) DEndAt(r, c int) (DIterator[T], error) {
	return asDiag(diagAnchorBound[T, topLeft, forward](m, "DEndAt", r, c, true))
}

// DIteratorAt returns a D iterator at index i of diagonal d.
func (m *Matrix[T]) DIteratorAt(d, i int) (DIterator[T], error) {
	return asDiag(diagIndexCursor[T, topLeft, forward](m, "DIteratorAt", d, i))
}

// DIteratorAtPoint returns a D iterator at (r, c).
func (m *Matrix[T]) DIteratorAtPoint(r, c int) (DIterator[T], error) {
	return asDiag(diagPointCursor[T, topLeft, forward](m, "DIteratorAtPoint", r, c))
}

// ReverseDBegin returns a reverse D iterator at the begin of diagonal d.
func (m *Matrix[T]) ReverseDBegin(d int) (ReverseDIterator[T], error) {
	return asDiag(diagBound[T, topLeft, backward](m, "ReverseDBegin", d, false))
}

// ReverseDEnd returns the reverse D sentinel of diagonal d.
func (m *Matrix[T]) ReverseDEnd(d int) (ReverseDIterator[T], error) {
	return asDiag(diagBound[T, topLeft, backward](m, "ReverseDEnd", d, true))
}

// ReverseDBeginAt returns the begin of the D diagonal through (r, c).
func (m *Matrix[T]) ReverseDBeginAt(r, c int) (ReverseDIterator[T], error) {
	return asDiag(diagAnchorBound[T, topLeft, backward](m, "ReverseDBeginAt", r, c, false))
}

// ReverseDEndAt returns the sentinel of the D diagonal through (r, c).
func (m *Matrix[T]) ReverseDEndAt(r, c int) (ReverseDIterator[T], error) {
	return asDiag(diagAnchorBound[T, topLeft, backward](m, "ReverseDEndAt", r, c, true))
}

// ReverseDIteratorAt returns a reverse D iterator at index i of diagonal d.
func (m *Matrix[T]) ReverseDIteratorAt(d, i int) (ReverseDIterator[T], error) {
	return asDiag(diagIndexCursor[T, topLeft, backward](m, "ReverseDIteratorAt", d, i))
}

// ReverseDIteratorAtPoint returns a reverse D iterator at (r, c).
func (m *Matrix[T]) ReverseDIteratorAtPoint(r, c int) (ReverseDIterator[T], error) {
	return asDiag(diagPointCursor[T, topLeft, backward](m, "ReverseDIteratorAtPoint", r, c))
}

// ConstDBegin returns a read-only D iterator at the begin of diagonal d.
func (m *Matrix[T]) ConstDBegin(d int) (ConstDIterator[T], error) {
	return asConstDiag(diagBound[T, topLeft, forward](m, "ConstDBegin", d, false))
}

// ConstDEnd returns the read-only D sentinel of diagonal d.
func (m *Matrix[T]) ConstDEnd(d int) (ConstDIterator[T], error) {
	return asConstDiag(diagBound[T, topLeft, forward](m, "ConstDEnd", d, true))
}

// ConstDBeginAt returns the begin of the D diagonal through (r, c).
func (m *Matrix[T]) ConstDBeginAt(r, c int) (ConstDIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topLeft, forward](m, "ConstDBeginAt", r, c, false))
}

// ConstDEndAt returns the sentinel of the D diagonal through (r, c).
func (m *Matrix[T]) ConstDEndAt(r, c int) (ConstDIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topLeft, forward](m, "ConstDEndAt", r, c, true))
}

// ConstDIteratorAt returns a read-only D iterator at index i of diagonal d.
func (m *Matrix[T]) ConstDIteratorAt(d, i int) (ConstDIterator[T], error) {
	return asConstDiag(diagIndexCursor[T, topLeft, forward](m, "ConstDIteratorAt", d, i))
}

// ConstDIteratorAtPoint returns a read-only D iterator at (r, c).
func (m *Matrix[T]) ConstDIteratorAtPoint(r, c int) (ConstDIterator[T], error) {
	return asConstDiag(diagPointCursor[T, topLeft, forward](m, "ConstDIteratorAtPoint", r, c))
}

// ConstReverseDBegin returns a read-only reverse D iterator at the begin of diagonal d.
func (m *Matrix[T]) ConstReverseDBegin(d int) (ConstReverseDIterator[T], error) {
	return asConstDiag(diagBound[T, topLeft, backward](m, "ConstReverseDBegin", d, false))
}

// ConstReverseDEnd returns the read-only reverse D sentinel of diagonal d.
func (m *Matrix[T]) ConstReverseDEnd(d int) (ConstReverseDIterator[T], error) {
	return asConstDiag(diagBound[T, topLeft, backward](m, "ConstReverseDEnd", d, true))
}

// ConstReverseDBeginAt returns the begin of the D diagonal through (r, c).
func (m *Matrix[T]) ConstReverseDBeginAt(r, c int) (ConstReverseDIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topLeft, backward](m, "ConstReverseDBeginAt", r, c, false))
}

// ConstReverseDEndAt returns the sentinel of the D diagonal through (r, c).
func (m *Matrix[T]) ConstReverseDEndAt(r, c int) (ConstReverseDIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topLeft, backward](m, "ConstReverseDEndAt", r, c, true))
}

// ConstReverseDIteratorAt returns a read-only reverse D iterator at index i of diagonal d.
func (m *Matrix[T]) ConstReverseDIteratorAt(d, i int) (ConstReverseDIterator[T], error) {
	return asConstDiag(diagIndexCursor[T, topLeft, backward](m, "ConstReverseDIteratorAt", d, i))
}

// ConstReverseDIteratorAtPoint returns a read-only reverse D iterator at (r, c).
func (m *Matrix[T]) ConstReverseDIteratorAtPoint(r, c int) (ConstReverseDIterator[T], error) {
	return asConstDiag(diagPointCursor[T, topLeft, backward](m, "ConstReverseDIteratorAtPoint", r, c))
}

// MBegin returns a M iterator at the begin of diagonal d.
func (m *Matrix[T]) MBegin(d int) (MIterator[T], error) {
	return asDiag(diagBound[T, topRight, forward](m, "MBegin", d, false))
}

// MEnd returns the M sentinel of diagonal d.
func (m *Matrix[T]) MEnd(d int) (MIterator[T], error) {
	return asDiag(diagBound[T, topRight, forward](m, "MEnd", d, true))
}

// MBeginAt returns the begin of the M diagonal through (r, c).
func (m *Matrix[T]) MBeginAt(r, c int) (MIterator[T], error) {
	return asDiag(diagAnchorBound[T, topRight, forward](m, "MBeginAt", r, c, false))
}

// MEndAt returns the sentinel of the M diagonal through (r, c).
func (m *Matrix[T]) MEndAt(r, c int) (MIterator[T], error) {
	return asDiag(diagAnchorBound[T, topRight, forward](m, "MEndAt", r, c, true))
}

// MIteratorAt returns a M iterator at index i of diagonal d.
func (m *Matrix[T]) MIteratorAt(d, i int) (MIterator[T], error) {
	return asDiag(diagIndexCursor[T, topRight, forward](m, "MIteratorAt", d, i))
}

// MIteratorAtPoint returns a M iterator at (r, c).
func (m *Matrix[T]) MIteratorAtPoint(r, c int) (MIterator[T], error) {
	return asDiag(diagPointCursor[T, topRight, forward](m, "MIteratorAtPoint", r, c))
}

// ReverseMBegin returns a reverse M iterator at the begin of diagonal d.
func (m *Matrix[T]) ReverseMBegin(d int) (ReverseMIterator[T], error) {
	return asDiag(diagBound[T, topRight, backward](m, "ReverseMBegin", d, false))
}

// ReverseMEnd returns the reverse M sentinel of diagonal d.
func (m *Matrix[T]) ReverseMEnd(d int) (ReverseMIterator[T], error) {
	return asDiag(diagBound[T, topRight, backward](m, "ReverseMEnd", d, true))
}

// ReverseMBeginAt returns the begin of the M diagonal through (r, c).
func (m *Matrix[T]) ReverseMBeginAt(r, c int) (ReverseMIterator[T], error) {
	return asDiag(diagAnchorBound[T, topRight, backward](m, "ReverseMBeginAt", r, c, false))
}

// ReverseMEndAt returns the sentinel of the M diagonal through (r, c).
func (m *Matrix[T]) ReverseMEndAt(r, c int) (ReverseMIterator[T], error) {
	return asDiag(diagAnchorBound[T, topRight, backward](m, "ReverseMEndAt", r, c, true))
}

// ReverseMIteratorAt returns a reverse M iterator at index i of diagonal d.
func (m *Matrix[T]) ReverseMIteratorAt(d, i int) (ReverseMIterator[T], error) {
	return asDiag(diagIndexCursor[T, topRight, backward](m, "ReverseMIteratorAt", d, i))
}

// ReverseMIteratorAtPoint returns a reverse M iterator at (r, c).
func (m *Matrix[T]) ReverseMIteratorAtPoint(r, c int) (ReverseMIterator[T], error) {
	return asDiag(diagPointCursor[T, topRight, backward](m, "ReverseMIteratorAtPoint", r, c))
}

// ConstMBegin returns a read-only M iterator at the begin of diagonal d.
func (m *Matrix[T]) ConstMBegin(d int) (ConstMIterator[T], error) {
	return asConstDiag(diagBound[T, topRight, forward](m, "ConstMBegin", d, false))
}

// ConstMEnd returns the read-only M sentinel of diagonal d.
func (m *Matrix[T]) ConstMEnd(d int) (ConstMIterator[T], error) {
	return asConstDiag(diagBound[T, topRight, forward](m, "ConstMEnd", d, true))
}

// ConstMBeginAt returns the begin of the M diagonal through (r, c).
func (m *Matrix[T]) ConstMBeginAt(r, c int) (ConstMIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topRight, forward](m, "ConstMBeginAt", r, c, false))
}

// ConstMEndAt returns the sentinel of the M diagonal through (r, c).
func (m *Matrix[T]) ConstMEndAt(r, c int) (ConstMIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topRight, forward](m, "ConstMEndAt", r, c, true))
}

// ConstMIteratorAt returns a read-only M iterator at index i of diagonal d.
func (m *Matrix[T]) ConstMIteratorAt(d, i int) (ConstMIterator[T], error) {
	return asConstDiag(diagIndexCursor[T, topRight, forward](m, "ConstMIteratorAt", d, i))
}

// ConstMIteratorAtPoint returns a read-only M iterator at (r, c).
func (m *Matrix[T]) ConstMIteratorAtPoint(r, c int) (ConstMIterator[T], error) {
	return asConstDiag(diagPointCursor[T, topRight, forward](m, "ConstMIteratorAtPoint", r, c))
}

// ConstReverseMBegin returns a read-only reverse M iterator at the begin of diagonal d.
func (m *Matrix[T]) ConstReverseMBegin(d int) (ConstReverseMIterator[T], error) {
	return asConstDiag(diagBound[T, topRight, backward](m, "ConstReverseMBegin", d, false))
}

// ConstReverseMEnd returns the read-only reverse M sentinel of diagonal d.
func (m *Matrix[T]) ConstReverseMEnd(d int) (ConstReverseMIterator[T], error) {
	return asConstDiag(diagBound[T, topRight, backward](m, "ConstReverseMEnd", d, true))
}

// ConstReverseMBeginAt returns the begin of the M diagonal through (r, c).
func (m *Matrix[T]) ConstReverseMBeginAt(r, c int) (ConstReverseMIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topRight, backward](m, "ConstReverseMBeginAt", r, c, false))
}

// ConstReverseMEndAt returns the sentinel of the M diagonal through (r, c).
func (m *Matrix[T]) ConstReverseMEndAt(r, c int) (ConstReverseMIterator[T], error) {
	return asConstDiag(diagAnchorBound[T, topRight, backward](m, "ConstReverseMEndAt", r, c, true))
}

// ConstReverseMIteratorAt returns a read-only reverse M iterator at index i of diagonal d.
func (m *Matrix[T]) ConstReverseMIteratorAt(d, i int) (ConstReverseMIterator[T], error) {
	return asConstDiag(diagIndexCursor[T, topRight, backward](m, "ConstReverseMIteratorAt", d, i))
}

// ConstReverseMIteratorAtPoint returns a read-only reverse M iterator at (r, c).
func (m *Matrix[T]) ConstReverseMIteratorAtPoint(r, c int) (ConstReverseMIterator[T], error) {
	return asConstDiag(diagPointCursor[T, topRight, backward](m, "ConstReverseMIteratorAtPoint", r, c))
}
