// SPDX-License-Identifier: MIT

// Package matrix - capacity/storage engine: reordering & bulk writes.
//
// Complexity quicksheet:
//   - SwapRows O(1); SwapColumns O(rows); SwapItems O(1);
//   - Transpose O(r*c) time and space; SetAll O(r*c); CopyBlock O(n*k).

package matrix

// SwapRows exchanges rows i and j by swapping their row index entries; no
// element moves.
//
// Errors:
//   - ErrRowDoesNotExist when either index is outside [0, Rows()).
func (m *Matrix[T]) SwapRows(i, j int) error {
	if !m.hasRow(i) || !m.hasRow(j) {
		return matrixErrorf("SwapRows", ErrRowDoesNotExist, i, j)
	}
	pi, pj := m.rowOff+i, m.rowOff+j
	m.rowIdx[pi], m.rowIdx[pj] = m.rowIdx[pj], m.rowIdx[pi]

	return nil
}

// SwapColumns exchanges columns i and j element by element (columns have no
// index indirection).
//
// Errors:
//   - ErrColumnDoesNotExist when either index is outside [0, Cols()).
func (m *Matrix[T]) SwapColumns(i, j int) error {
	if !m.hasColumn(i) || !m.hasColumn(j) {
		return matrixErrorf("SwapColumns", ErrColumnDoesNotExist, i, j)
	}
	if i == j {
		return nil
	}
	for r := range m.rows {
		b := m.rowBase(r)
		m.buf[b+i], m.buf[b+j] = m.buf[b+j], m.buf[b+i]
	}

	return nil
}

// SwapItems exchanges elements (r1,c1) and (r2,c2).
//
// Errors:
//   - ErrInvalidElementIndex when either position is outside the matrix.
func (m *Matrix[T]) SwapItems(r1, c1, r2, c2 int) error {
	if !m.inside(r1, c1) || !m.inside(r2, c2) {
		return matrixErrorf("SwapItems", ErrInvalidElementIndex, r1, c1, r2, c2)
	}
	s1, s2 := m.slot(r1, c1), m.slot(r2, c2)
	m.buf[s1], m.buf[s2] = m.buf[s2], m.buf[s1]

	return nil
}

// Transpose replaces m by its transpose, allocated with fresh growth slack.
// No-op on an empty matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() {
	if m.empty() {
		return
	}
	a := newArena[T](m.cols, m.rows, m.opts.grown(m.cols), m.opts.grown(m.rows))
	for r := range m.rows {
		b := m.rowBase(r)
		for c := range m.cols {
			a.buf[a.slot(c, r)] = m.buf[b+c]
		}
	}
	m.adopt(OpTranspose, a)
}

// SetAll assigns v to every element. No-op on an empty matrix.
func (m *Matrix[T]) SetAll(v T) {
	m.fillCells(0, 0, m.rows, m.cols, v)
}

// CopyBlock copies the n x k block of src starting at (srcRow, srcCol) into m
// starting at (dstRow, dstCol). src may be m itself; overlapping blocks are
// handled as if the source block were copied out first.
//
// Errors:
//   - ErrNullDimension when n or k is not positive.
//   - ErrInvalidElementIndex when either block does not fit its matrix.
//
// Complexity: Time O(n*k); Space O(n*k) only when src is m.
func (m *Matrix[T]) CopyBlock(src *Matrix[T], n, k, srcRow, srcCol, dstRow, dstCol int) error {
	if n <= 0 || k <= 0 {
		return matrixErrorf("CopyBlock", ErrNullDimension, n, k)
	}
	if !src.inside(srcRow, srcCol) || !src.inside(srcRow+n-1, srcCol+k-1) {
		return matrixErrorf("CopyBlock", ErrInvalidElementIndex, srcRow, srcCol, n, k)
	}
	if !m.inside(dstRow, dstCol) || !m.inside(dstRow+n-1, dstCol+k-1) {
		return matrixErrorf("CopyBlock", ErrInvalidElementIndex, dstRow, dstCol, n, k)
	}

	from := &src.arena
	if src == m {
		// snapshot the source block so overlapping writes cannot feed back
		snap := newArena[T](n, k, n, k)
		transfer(&snap, 0, 0, &m.arena, srcRow, srcCol, n, k)
		from, srcRow, srcCol = &snap, 0, 0
	}
	transfer(&m.arena, dstRow, dstCol, from, srcRow, srcCol, n, k)

	return nil
}
