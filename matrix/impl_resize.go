// SPDX-License-Identifier: MIT

// Package matrix - capacity/storage engine: resize.
//
// Purpose:
//   - Change both logical extents at once, preserving the overlap between the
//     old and the new rectangle.
//   - Stay in place whenever the current capacity already covers the new
//     extents; only destruct the cells that fall out and construct the cells
//     that come in.
//
// Complexity quicksheet:
//   - In place: O(changed cells + rows*shift) ; reallocation: O(new rows*cols).

package matrix

import "slices"

// Resize changes the extents to rows x cols. Cells that come into existence
// hold the zero value of T.
//
// Errors:
//   - ErrNullDimension, ErrMaxAllowedDimensionsExceeded.
func (m *Matrix[T]) Resize(rows, cols int) error {
	return m.resize("Resize", rows, cols, nil)
}

// ResizeFill is Resize with newly created cells set to v.
func (m *Matrix[T]) ResizeFill(rows, cols int, v T) error {
	return m.resize("ResizeFill", rows, cols, &v)
}

// resize implements Resize/ResizeFill.
// MAIN DESCRIPTION:
//   - Keep the overlap [0,min(rows)) x [0,min(cols)).
//
// Implementation:
//   - Stage 1: validate the target shape before touching anything.
//   - Stage 2 (in place, both capacities suffice):
//     destruct excluded cells; shift the live columns left when the right-side
//     slack cannot hold the new width; rotate the row index so the region
//     starts at the top when the trailing row slack cannot hold the new height;
//     construct the included cells.
//   - Stage 3 (otherwise): allocate extent+slack per axis and move the overlap.
//
// Behavior highlights:
//   - Row re-centring only permutes the row index; column shifting moves elements.
//   - Resizing to the current shape is a no-op.
//
// Complexity:
//   - Time O(rows*cols) worst case, Space O(1) in place.
func (m *Matrix[T]) resize(method string, rows, cols int, fill *T) error {
	if err := validateExtents(method, rows, cols); err != nil {
		return err
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}

	keepR, keepC := min(m.rows, rows), min(m.cols, cols)

	if !m.empty() && rows <= m.rowCap && cols <= m.colCap {
		// destruct rows that fall out, then the columns that fall out of the kept rows
		m.zeroCells(keepR, 0, m.rows-keepR, m.cols)
		m.zeroCells(0, keepC, keepR, m.cols-keepC)
		m.rows, m.cols = keepR, keepC

		if over := m.colOff + cols - m.colCap; over > 0 {
			m.shiftColumnsLeft(over)
		}
		if m.rowOff+rows > m.rowCap {
			m.rotateAllRowsLeft(m.rowOff)
			m.rowOff = 0
		}

		m.rows, m.cols = rows, cols
		m.initCells(keepR, 0, rows-keepR, cols, fill)
		m.initCells(0, keepC, keepR, cols-keepC, fill)

		return nil
	}

	a := newArena[T](rows, cols, m.opts.grown(rows), m.opts.grown(cols))
	transfer(&a, 0, 0, &m.arena, 0, 0, keepR, keepC)
	a.initCells(keepR, 0, rows-keepR, cols, fill)
	a.initCells(0, keepC, keepR, cols-keepC, fill)
	m.adopt(OpResize, a)

	return nil
}

// rotateAllRowsLeft rotates the whole physical row index left by k entries.
func (a *arena[T]) rotateAllRowsLeft(k int) {
	if k <= 0 || k >= len(a.rowIdx) {
		return
	}
	slices.Reverse(a.rowIdx[:k])
	slices.Reverse(a.rowIdx[k:])
	slices.Reverse(a.rowIdx)
}
