// SPDX-License-Identifier: MIT

// Package matrix - iterator families and their shared view of the storage.
//
// Families (each with Reverse, Const and ConstReverse forms):
//   - Z: row-major, row by row, left to right.
//   - N: column-major, column by column, top to bottom.
//   - D: one diagonal, down-right from the top/left edge.
//   - M: one mirrored diagonal, down-left from the top/right edge.
//
// Invalidation:
//   - Iterators borrow the matrix layout at creation time. Any operation that
//     reallocates, remaps or moves the matrix (Resize, Reserve, ShrinkToFit,
//     Insert*/Erase*, Cat*/Split*, Transpose, Clear, SwapRows, Move*, Copy*,
//     Release) invalidates every iterator obtained before it.

package matrix

// Row-major iterators.
type (
	ZIterator[T comparable]             = LineIterator[T, rowMajor, forward]
	ReverseZIterator[T comparable]      = LineIterator[T, rowMajor, backward]
	ConstZIterator[T comparable]        = ConstLineIterator[T, rowMajor, forward]
	ConstReverseZIterator[T comparable] = ConstLineIterator[T, rowMajor, backward]
)

// Column-major iterators.
type (
	NIterator[T comparable]             = LineIterator[T, columnMajor, forward]
	ReverseNIterator[T comparable]      = LineIterator[T, columnMajor, backward]
	ConstNIterator[T comparable]        = ConstLineIterator[T, columnMajor, forward]
	ConstReverseNIterator[T comparable] = ConstLineIterator[T, columnMajor, backward]
)

// Diagonal iterators.
type (
	DIterator[T comparable]             = DiagIterator[T, topLeft, forward]
	ReverseDIterator[T comparable]      = DiagIterator[T, topLeft, backward]
	ConstDIterator[T comparable]        = ConstDiagIterator[T, topLeft, forward]
	ConstReverseDIterator[T comparable] = ConstDiagIterator[T, topLeft, backward]
)

// Mirrored diagonal iterators.
type (
	MIterator[T comparable]             = DiagIterator[T, topRight, forward]
	ReverseMIterator[T comparable]      = DiagIterator[T, topRight, backward]
	ConstMIterator[T comparable]        = ConstDiagIterator[T, topRight, forward]
	ConstReverseMIterator[T comparable] = ConstDiagIterator[T, topRight, backward]
)

// view is the borrowed part of a matrix that iterators read: the row index
// already shifted past the leading row slack, the buffer, the column offset
// and the extents. The zero view is unlinked.
type view[T comparable] struct {
	owner      *Matrix[T]
	rowIdx     []int
	buf        []T
	colOff     int
	rows, cols int
}

// view snapshots m's layout; an empty matrix yields the unlinked view.
func (m *Matrix[T]) view() view[T] {
	if m.empty() {
		return view[T]{}
	}

	return view[T]{
		owner:  m,
		rowIdx: m.rowIdx[m.rowOff : m.rowOff+m.rows],
		buf:    m.buf,
		colOff: m.colOff,
		rows:   m.rows,
		cols:   m.cols,
	}
}

func (v *view[T]) linked() bool { return v.owner != nil }

func (v *view[T]) cell(r, c int) *T { return &v.buf[v.rowIdx[r]+v.colOff+c] }

// compatible reports whether two views may be combined: both unlinked, or
// the same matrix with the same extents.
func (v *view[T]) compatible(o *view[T]) bool {
	return v.owner == o.owner && v.rows == o.rows && v.cols == o.cols
}

// ---------- Generic cursor builders (shared by every factory) ----------

// spanCursor returns the begin or end cursor of the flattened span [lo, hi).
func spanCursor[T comparable, A lineAxis, D direction](m *Matrix[T], lo, hi int, end bool) lineCursor[T, A, D] {
	pos := lo
	switch {
	case end && isReversed[D]():
		pos = lo - 1
	case end:
		pos = hi
	case isReversed[D]():
		pos = hi - 1
	}

	return newLineCursor[T, A, D](m, pos)
}

// wholeCursor spans the whole matrix.
func wholeCursor[T comparable, A lineAxis, D direction](m *Matrix[T], end bool) lineCursor[T, A, D] {
	return spanCursor[T, A, D](m, 0, m.rows*m.cols, end)
}

// scopedCursor spans one row (Z) or one column (N).
func scopedCursor[T comparable, A lineAxis, D direction](m *Matrix[T], method string, j int, end bool) (lineCursor[T, A, D], error) {
	lines, n, missing := m.rows, m.cols, ErrRowDoesNotExist
	if isTransposed[A]() {
		lines, n, missing = m.cols, m.rows, ErrColumnDoesNotExist
	}
	if !inRange(j, lines) {
		return lineCursor[T, A, D]{}, matrixErrorf(method, missing, j)
	}

	return spanCursor[T, A, D](m, j*n, (j+1)*n, end), nil
}

// pointCursor sits on element (r, c).
func pointCursor[T comparable, A lineAxis, D direction](m *Matrix[T], method string, r, c int) (lineCursor[T, A, D], error) {
	if !m.inside(r, c) {
		return lineCursor[T, A, D]{}, matrixErrorf(method, ErrInvalidElementIndex, r, c)
	}
	pos := r*m.cols + c
	if isTransposed[A]() {
		pos = c*m.rows + r
	}

	return newLineCursor[T, A, D](m, pos), nil
}

// diagBound returns the begin or end cursor of diagonal nr.
func diagBound[T comparable, G diagMirror, D direction](m *Matrix[T], method string, nr int, end bool) (diagCursor[T, G, D], error) {
	if !hasDiagonal(m.rows, m.cols, nr) {
		return diagCursor[T, G, D]{}, matrixErrorf(method, ErrDiagonalDoesNotExist, nr)
	}
	c := newDiagCursor[T, G, D](m, nr)
	if end {
		c.k = c.size
	}

	return c, nil
}

// diagAnchorBound returns the begin or end cursor of the diagonal through (r, c).
func diagAnchorBound[T comparable, G diagMirror, D direction](m *Matrix[T], method string, r, c int, end bool) (diagCursor[T, G, D], error) {
	if !m.inside(r, c) {
		return diagCursor[T, G, D]{}, matrixErrorf(method, ErrInvalidElementIndex, r, c)
	}
	nr, _ := diagonalOf[G](m.cols, r, c)

	return diagBound[T, G, D](m, method, nr, end)
}

// diagIndexCursor sits on element i of diagonal nr.
func diagIndexCursor[T comparable, G diagMirror, D direction](m *Matrix[T], method string, nr, i int) (diagCursor[T, G, D], error) {
	c, err := diagBound[T, G, D](m, method, nr, false)
	if err != nil {
		return c, err
	}
	if !inRange(i, c.size) {
		return diagCursor[T, G, D]{}, matrixErrorf(method, ErrDiagonalIndexOutOfBounds, nr, i)
	}
	c.k = c.flip(i)

	return c, nil
}

// diagPointCursor sits on element (r, c) of its diagonal.
func diagPointCursor[T comparable, G diagMirror, D direction](m *Matrix[T], method string, r, c int) (diagCursor[T, G, D], error) {
	if !m.inside(r, c) {
		return diagCursor[T, G, D]{}, matrixErrorf(method, ErrInvalidElementIndex, r, c)
	}
	nr, i := diagonalOf[G](m.cols, r, c)

	return diagIndexCursor[T, G, D](m, method, nr, i)
}

func asLine[T comparable, A lineAxis, D direction](c lineCursor[T, A, D], err error) (LineIterator[T, A, D], error) {
	return LineIterator[T, A, D]{c: c}, err
}

func asConstLine[T comparable, A lineAxis, D direction](c lineCursor[T, A, D], err error) (ConstLineIterator[T, A, D], error) {
	return ConstLineIterator[T, A, D]{c: c}, err
}

func asDiag[T comparable, G diagMirror, D direction](c diagCursor[T, G, D], err error) (DiagIterator[T, G, D], error) {
	return DiagIterator[T, G, D]{c: c}, err
}

func asConstDiag[T comparable, G diagMirror, D direction](c diagCursor[T, G, D], err error) (ConstDiagIterator[T, G, D], error) {
	return ConstDiagIterator[T, G, D]{c: c}, err
}
