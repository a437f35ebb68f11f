// SPDX-License-Identifier: MIT

// Package matrix - capacity/storage engine: line insertion & removal.
//
// Purpose:
//   - Insert or erase one row/column at any position with bounded cost.
//   - Use the slack on either side of an axis before reallocating; reallocate
//     by doubling when an axis is full (amortised O(log n) reallocations for n
//     insertions) and reclaim memory when an axis drops to a quarter of its
//     capacity.
//
// Side choice (insertion, slack on both sides):
//   - grow towards the front when fewer lines sit before the position than
//     after it, otherwise towards the back. With slack on one side only, that
//     side is used.
//
// Complexity quicksheet:
//   - InsertRow/EraseRow in place: O(rows) index rotation + O(cols) init.
//   - InsertColumn/EraseColumn in place: O(rows*min(p, cols-p)) element moves.

package matrix

// InsertRow inserts a zero-valued row before row p (p == Rows() appends).
//
// Errors:
//   - ErrEmptyMatrix on an empty matrix.
//   - ErrInsertRowNoncontiguous when p < 0 or p > Rows().
//   - ErrMaxAllowedDimensionsExceeded when Rows() == MaxDimension.
func (m *Matrix[T]) InsertRow(p int) error {
	return m.insertRow("InsertRow", p, nil)
}

// InsertRowFill inserts a row of v values before row p.
func (m *Matrix[T]) InsertRowFill(p int, v T) error {
	return m.insertRow("InsertRowFill", p, &v)
}

// insertRow implements InsertRow/InsertRowFill.
// MAIN DESCRIPTION:
//   - Make room for one physical row at logical position p, then construct it.
//
// Implementation:
//   - Stage 1: validate (empty, position, bound).
//   - Stage 2 (row axis full): allocate double row capacity, move the rows
//     before p and from p onwards around the still-unconstructed new row.
//   - Stage 3 (slack available): extend the region by one row on the cheaper
//     side, rotate the row index so the spare row lands at p, then construct.
//
// Behavior highlights:
//   - The spare row is all zero slots before rotation; rotation moves only
//     row index entries, never elements.
//
// Complexity:
//   - Time O(rows + cols) in place; O(rows*cols) when reallocating.
func (m *Matrix[T]) insertRow(method string, p int, fill *T) error {
	if m.empty() {
		return matrixErrorf(method, ErrEmptyMatrix, p)
	}
	if !contiguous(p, m.rows) {
		return matrixErrorf(method, ErrInsertRowNoncontiguous, p)
	}
	if m.rows+1 > MaxDimension {
		return matrixErrorf(method, ErrMaxAllowedDimensionsExceeded, p)
	}

	if m.rows == m.rowCap {
		a := newArena[T](m.rows+1, m.cols, 2*m.rowCap, m.colCap)
		transfer(&a, 0, 0, &m.arena, 0, 0, p, m.cols)
		transfer(&a, p+1, 0, &m.arena, p, 0, m.rows-p, m.cols)
		a.initCells(p, 0, 1, m.cols, fill)
		m.adopt(OpInsertRow, a)

		return nil
	}

	front := m.rowOff > 0
	back := m.rowOff+m.rows < m.rowCap
	if front && (!back || p < m.rows-p) {
		m.rowOff--
		m.rows++
		m.rotateRowsLeft(m.rowOff, m.rowOff+p+1) // spare row: logical 0 -> p
	} else {
		m.rows++
		m.rotateRowsRight(m.rowOff+p, m.rowOff+m.rows) // spare row: last -> p
	}
	m.initCells(p, 0, 1, m.cols, fill)

	return nil
}

// InsertColumn inserts a zero-valued column before column p (p == Cols() appends).
//
// Errors:
//   - ErrEmptyMatrix on an empty matrix.
//   - ErrInsertColumnNoncontiguous when p < 0 or p > Cols().
//   - ErrMaxAllowedDimensionsExceeded when Cols() == MaxDimension.
func (m *Matrix[T]) InsertColumn(p int) error {
	return m.insertColumn("InsertColumn", p, nil)
}

// InsertColumnFill inserts a column of v values before column p.
func (m *Matrix[T]) InsertColumnFill(p int, v T) error {
	return m.insertColumn("InsertColumnFill", p, &v)
}

// insertColumn implements InsertColumn/InsertColumnFill. Columns have no
// index indirection, so the elements on the chosen side of p move by one slot.
func (m *Matrix[T]) insertColumn(method string, p int, fill *T) error {
	if m.empty() {
		return matrixErrorf(method, ErrEmptyMatrix, p)
	}
	if !contiguous(p, m.cols) {
		return matrixErrorf(method, ErrInsertColumnNoncontiguous, p)
	}
	if m.cols+1 > MaxDimension {
		return matrixErrorf(method, ErrMaxAllowedDimensionsExceeded, p)
	}

	if m.cols == m.colCap {
		a := newArena[T](m.rows, m.cols+1, m.rowCap, 2*m.colCap)
		transfer(&a, 0, 0, &m.arena, 0, 0, m.rows, p)
		transfer(&a, 0, p+1, &m.arena, 0, p, m.rows, m.cols-p)
		a.initCells(0, p, m.rows, 1, fill)
		m.adopt(OpInsertColumn, a)

		return nil
	}

	var zero T
	front := m.colOff > 0
	back := m.colOff+m.cols < m.colCap
	if front && (!back || p < m.cols-p) {
		m.colOff--
		for r := range m.rows {
			b := m.rowBase(r)
			copy(m.buf[b:b+p], m.buf[b+1:b+p+1])
			m.buf[b+p] = zero
		}
	} else {
		for r := range m.rows {
			b := m.rowBase(r)
			copy(m.buf[b+p+1:b+m.cols+1], m.buf[b+p:b+m.cols])
			m.buf[b+p] = zero
		}
	}
	m.cols++
	m.initCells(0, p, m.rows, 1, fill)

	return nil
}

// EraseRow removes row p. Erasing the last remaining row empties the matrix.
// MAIN DESCRIPTION:
//   - Reclaim memory when few rows survive, otherwise close the gap in place.
//
// Implementation:
//   - Stage 1: validate p.
//   - Stage 2: last row -> Clear.
//   - Stage 3: survivors ≤ rowCap/4 -> allocate 2*survivors rows and move both partitions.
//   - Stage 4: otherwise destruct row p and rotate the smaller partition over
//     the gap (index entries only); the freed physical row joins the slack.
//
// Errors:
//   - ErrRowDoesNotExist when p < 0 or p ≥ Rows().
//
// Complexity:
//   - Time O(rows + cols) in place; O(rows*cols) when reclaiming.
func (m *Matrix[T]) EraseRow(p int) error {
	if !m.hasRow(p) {
		return matrixErrorf("EraseRow", ErrRowDoesNotExist, p)
	}
	if m.rows == 1 {
		m.Clear()
		return nil
	}

	survivors := m.rows - 1
	if 4*survivors <= m.rowCap {
		a := newArena[T](survivors, m.cols, 2*survivors, m.colCap)
		transfer(&a, 0, 0, &m.arena, 0, 0, p, m.cols)
		transfer(&a, p, 0, &m.arena, p+1, 0, m.rows-p-1, m.cols)
		m.adopt(OpEraseRow, a)

		return nil
	}

	m.zeroCells(p, 0, 1, m.cols)
	if p < m.rows-1-p {
		m.rotateRowsRight(m.rowOff, m.rowOff+p+1) // erased row -> front slack
		m.rowOff++
	} else {
		m.rotateRowsLeft(m.rowOff+p, m.rowOff+m.rows) // erased row -> back slack
	}
	m.rows--

	return nil
}

// EraseColumn removes column p. Erasing the last remaining column empties
// the matrix. Reclaim rule and partition choice mirror EraseRow; here the
// smaller partition's elements are physically shifted.
//
// Errors:
//   - ErrColumnDoesNotExist when p < 0 or p ≥ Cols().
func (m *Matrix[T]) EraseColumn(p int) error {
	if !m.hasColumn(p) {
		return matrixErrorf("EraseColumn", ErrColumnDoesNotExist, p)
	}
	if m.cols == 1 {
		m.Clear()
		return nil
	}

	survivors := m.cols - 1
	if 4*survivors <= m.colCap {
		a := newArena[T](m.rows, survivors, m.rowCap, 2*survivors)
		transfer(&a, 0, 0, &m.arena, 0, 0, m.rows, p)
		transfer(&a, 0, p, &m.arena, 0, p+1, m.rows, m.cols-p-1)
		m.adopt(OpEraseColumn, a)

		return nil
	}

	var zero T
	if p < m.cols-1-p {
		for r := range m.rows {
			b := m.rowBase(r)
			copy(m.buf[b+1:b+p+1], m.buf[b:b+p])
			m.buf[b] = zero
		}
		m.colOff++
	} else {
		for r := range m.rows {
			b := m.rowBase(r)
			copy(m.buf[b+p:b+m.cols-1], m.buf[b+p+1:b+m.cols])
			m.buf[b+m.cols-1] = zero
		}
	}
	m.cols--

	return nil
}
