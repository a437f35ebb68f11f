// SPDX-License-Identifier: MIT

// Package matrix - boundary/accessor layer: safe element access, equality,
// visitors and formatting.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Keep traversal orders deterministic (row-major) in visitors and String.
//
// Complexity quicksheet:
//   - At/Set/Ref: O(1); Equal/IsZero/Do/Apply/String: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// At returns the element at (row, col).
//
// Errors:
//   - ErrInvalidElementIndex when either index is outside [0, extent).
//
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if !m.inside(row, col) {
		var zero T
		return zero, matrixErrorf("At", ErrInvalidElementIndex, row, col)
	}

	return m.buf[m.slot(row, col)], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrInvalidElementIndex when either index is outside [0, extent).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if !m.inside(row, col) {
		return matrixErrorf("Set", ErrInvalidElementIndex, row, col)
	}
	m.buf[m.slot(row, col)] = v

	return nil
}

// Ref returns a pointer to the element at (row, col). The pointer is
// invalidated by any operation that reallocates or remaps the matrix.
//
// Errors:
//   - ErrInvalidElementIndex when either index is outside [0, extent).
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	if !m.inside(row, col) {
		return nil, matrixErrorf("Ref", ErrInvalidElementIndex, row, col)
	}

	return &m.buf[m.slot(row, col)], nil
}

// Equal reports whether m and o hold the same elements in the same shape.
// MAIN DESCRIPTION:
//   - Two empty matrices are equal; an empty and a non-empty one are not.
//   - Shapes are compared first, then elements in row-major order, stopping
//     at the first mismatch. Capacities and offsets are irrelevant.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for r := range m.rows {
		a, b := m.rowBase(r), o.rowBase(r)
		for c := range m.cols {
			if m.buf[a+c] != o.buf[b+c] {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every element equals the zero value of T
// (0 for numbers, "" for strings, nil for pointers). An empty matrix is zero.
func (m *Matrix[T]) IsZero() bool {
	var zero T
	for r := range m.rows {
		b := m.rowBase(r)
		for c := range m.cols {
			if m.buf[b+c] != zero {
				return false
			}
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	for i := range m.rows {
		b := m.rowBase(i)
		for j := range m.cols {
			if !f(i, j, m.buf[b+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v), in row-major order.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	for i := range m.rows {
		b := m.rowBase(i)
		for j := range m.cols {
			m.buf[b+j] = f(i, j, m.buf[b+j])
		}
	}
}

// All ranges over the elements in row-major order as ((row, col), value)
// pairs packed into a Cell.
//
// Example:
//
//	for cell, v := range m.All() {
//		fmt.Println(cell.Row, cell.Col, v)
//	}
func (m *Matrix[T]) All() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		m.Do(func(i, j int, v T) bool {
			return yield(Cell{Row: i, Col: j}, v)
		})
	}
}

// Cell is a (row, column) coordinate pair.
type Cell struct {
	Row int
	Col int
}

// String renders the matrix rows as lines of comma-separated values
// ("[1, 2]\n[3, 4]\n"). An empty matrix renders as "".
// Intended for diagnostics, not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := range m.rows {
		b.WriteString(_fmtRowOpen)
		base := m.rowBase(i)
		for j := range m.cols {
			fmt.Fprintf(&b, "%v", m.buf[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
