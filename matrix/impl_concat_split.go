// SPDX-License-Identifier: MIT

// Package matrix - capacity/storage engine: concatenation & split.
//
// Purpose:
//   - CatByRow/CatByColumn append another matrix's lines, consuming it.
//   - SplitByRow/SplitByColumn move a suffix of lines into another matrix.
//   - Both reuse existing capacity first and reallocate only when it cannot hold the result.
//
// AI-Hints:
//   - SplitByRow(dest, k) followed by CatByRow(dest) restores the original matrix.
//   - m.CatByRow(m) doubles m against itself; the argument is not emptied then.

package matrix

// CatByRow appends the rows of o below the rows of m and empties o.
// MAIN DESCRIPTION:
//   - Vertical concatenation with capacity reuse.
//
// Implementation:
//   - Stage 1: an empty o is a no-op; an empty m takes o's buffers over.
//   - Stage 2: validate equal column counts and the row bound.
//   - Stage 3 (row capacity suffices): rotate the row index when the trailing
//     slack is too short, then copy o's rows behind the last row.
//   - Stage 4 (otherwise): allocate max(rowCap, newRows) rows and move both.
//   - Stage 5: empty o unless o is m.
//
// Errors:
//   - ErrMatrixesUnequalRowLength when Cols() differ.
//   - ErrMaxAllowedDimensionsExceeded when the result exceeds MaxDimension rows.
//
// Complexity:
//   - Time O(o.rows*cols) with reuse, O((rows+o.rows)*cols) otherwise.
func (m *Matrix[T]) CatByRow(o *Matrix[T]) error {
	if o.empty() {
		return nil
	}
	if m.empty() {
		m.MoveFrom(o)
		return nil
	}
	if o.cols != m.cols {
		return matrixErrorf("CatByRow", ErrMatrixesUnequalRowLength, m.cols, o.cols)
	}
	srcRows := o.rows
	newRows := m.rows + srcRows
	if newRows > MaxDimension {
		return matrixErrorf("CatByRow", ErrMaxAllowedDimensionsExceeded, m.rows, srcRows)
	}

	if newRows <= m.rowCap {
		if over := m.rowOff + newRows - m.rowCap; over > 0 {
			m.rotateAllRowsLeft(over)
			m.rowOff -= over
		}
		oldRows := m.rows
		m.rows = newRows
		for i := range srcRows {
			d := m.rowBase(oldRows + i)
			s := o.rowBase(i) // o may be m: rows [0,oldRows) are untouched
			copy(m.buf[d:d+m.cols], o.buf[s:s+m.cols])
		}
	} else {
		a := newArena[T](newRows, m.cols, max(m.rowCap, newRows), m.colCap)
		transfer(&a, 0, 0, &m.arena, 0, 0, m.rows, m.cols)
		transfer(&a, m.rows, 0, &o.arena, 0, 0, srcRows, m.cols)
		m.adopt(OpCatByRow, a)
	}

	if o != m {
		o.Clear()
	}

	return nil
}

// CatByColumn appends the columns of o to the right of m and empties o.
// Column capacity is reused first (shifting the live columns left when the
// right-side slack is too short).
//
// Errors:
//   - ErrMatrixesUnequalColumnLength when Rows() differ.
//   - ErrMaxAllowedDimensionsExceeded when the result exceeds MaxDimension columns.
func (m *Matrix[T]) CatByColumn(o *Matrix[T]) error {
	if o.empty() {
		return nil
	}
	if m.empty() {
		m.MoveFrom(o)
		return nil
	}
	if o.rows != m.rows {
		return matrixErrorf("CatByColumn", ErrMatrixesUnequalColumnLength, m.rows, o.rows)
	}
	srcCols := o.cols
	newCols := m.cols + srcCols
	if newCols > MaxDimension {
		return matrixErrorf("CatByColumn", ErrMaxAllowedDimensionsExceeded, m.cols, srcCols)
	}

	if newCols <= m.colCap {
		if over := m.colOff + newCols - m.colCap; over > 0 {
			m.shiftColumnsLeft(over)
		}
		oldCols := m.cols
		for r := range m.rows {
			d := m.rowBase(r) + oldCols
			s := o.rowBase(r)
			copy(m.buf[d:d+srcCols], o.buf[s:s+srcCols])
		}
		m.cols = newCols
	} else {
		a := newArena[T](m.rows, newCols, m.rowCap, max(m.colCap, newCols))
		transfer(&a, 0, 0, &m.arena, 0, 0, m.rows, m.cols)
		transfer(&a, 0, m.cols, &o.arena, 0, 0, m.rows, srcCols)
		m.adopt(OpCatByColumn, a)
	}

	if o != m {
		o.Clear()
	}

	return nil
}

// SplitByRow moves rows [k, Rows()) into dest and keeps rows [0, k) in m.
// dest's previous contents are discarded; its capacity is reused when it can
// hold the suffix, otherwise it is reallocated to fit exactly.
//
// Errors:
//   - ErrCurrentMatrixAsArgument when dest is m.
//   - ErrRowDoesNotExist when k < 0 or k ≥ Rows().
//   - ErrResultNoRows when k == 0.
func (m *Matrix[T]) SplitByRow(dest *Matrix[T], k int) error {
	if dest == m {
		return matrixErrorf("SplitByRow", ErrCurrentMatrixAsArgument, k)
	}
	if !m.hasRow(k) {
		return matrixErrorf("SplitByRow", ErrRowDoesNotExist, k)
	}
	if k == 0 {
		return matrixErrorf("SplitByRow", ErrResultNoRows, k)
	}

	n := m.rows - k
	dest.prepare(OpSplitByRow, n, m.cols)
	transfer(&dest.arena, 0, 0, &m.arena, k, 0, n, m.cols)
	m.zeroCells(k, 0, n, m.cols)
	m.rows = k

	return nil
}

// SplitByColumn moves columns [k, Cols()) into dest and keeps columns [0, k) in m.
//
// Errors:
//   - ErrCurrentMatrixAsArgument when dest is m.
//   - ErrColumnDoesNotExist when k < 0 or k ≥ Cols().
//   - ErrResultNoColumns when k == 0.
func (m *Matrix[T]) SplitByColumn(dest *Matrix[T], k int) error {
	if dest == m {
		return matrixErrorf("SplitByColumn", ErrCurrentMatrixAsArgument, k)
	}
	if !m.hasColumn(k) {
		return matrixErrorf("SplitByColumn", ErrColumnDoesNotExist, k)
	}
	if k == 0 {
		return matrixErrorf("SplitByColumn", ErrResultNoColumns, k)
	}

	n := m.cols - k
	dest.prepare(OpSplitByCol, m.rows, n)
	transfer(&dest.arena, 0, 0, &m.arena, 0, k, m.rows, n)
	m.zeroCells(0, k, m.rows, n)
	m.cols = k

	return nil
}

// prepare readies m to receive a rows x cols payload: the old contents are
// destructed and the existing capacity is reused when it fits, otherwise a
// fresh exact-fit arena is allocated.
func (m *Matrix[T]) prepare(op string, rows, cols int) {
	if m.empty() || rows > m.rowCap || cols > m.colCap {
		m.adopt(op, newArena[T](rows, cols, rows, cols))
		return
	}

	m.zeroCells(0, 0, m.rows, m.cols)
	m.rows, m.cols = rows, cols
	m.rowOff = (m.rowCap - rows) / 2
	m.colOff = (m.colCap - cols) / 2
	for pr := range m.rowIdx {
		m.rowIdx[pr] = pr * m.colCap
	}
}
