// SPDX-License-Identifier: MIT

package matrix

// Grid is the element-level surface of a two-dimensional container: shape
// plus checked reads and writes. *Matrix[T] implements it; consumers that
// only need cell access (renderers, comparers, adapters) should accept a
// Grid instead of the concrete type.
type Grid[T any] interface {
	// Rows returns the number of rows.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrInvalidElementIndex when (i, j) lies outside the grid.
	At(i, j int) (T, error)

	// Set assigns v at (i, j).
	// Returns ErrInvalidElementIndex when (i, j) lies outside the grid.
	Set(i, j int, v T) error
}

var _ Grid[int] = (*Matrix[int])(nil)
