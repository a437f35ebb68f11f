// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for index and shape checks.
//  - Keep operations minimal by delegating range guards here.
//  - Return plain booleans (or a wrapped sentinel for extents) so call sites
//    pick the sentinel and method tag themselves.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.
//
// Note:
//  - "Live" ranges are half-open: [0, Rows()), [0, Cols()).
//  - "Contiguous" positions include the one-past-the-end slot used for appends.

package matrix

// validateExtents checks a requested shape against the null and maximum bounds.
//
// Errors: ErrNullDimension (checked first), ErrMaxAllowedDimensionsExceeded.
// Complexity: O(1).
func validateExtents(method string, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return matrixErrorf(method, ErrNullDimension, rows, cols)
	}
	if rows > MaxDimension || cols > MaxDimension {
		return matrixErrorf(method, ErrMaxAllowedDimensionsExceeded, rows, cols)
	}

	return nil
}

// inRange reports whether x lies in [0, n).
func inRange(x, n int) bool { return x >= 0 && x < n }

// contiguous reports whether x lies in [0, n], i.e. is a valid insertion
// point or iterator step over n elements.
func contiguous(x, n int) bool { return x >= 0 && x <= n }

// hasRow reports whether r addresses a live row.
func (a *arena[T]) hasRow(r int) bool { return inRange(r, a.rows) }

// hasColumn reports whether c addresses a live column.
func (a *arena[T]) hasColumn(c int) bool { return inRange(c, a.cols) }

// inside reports whether (r, c) addresses a live element.
func (a *arena[T]) inside(r, c int) bool { return a.hasRow(r) && a.hasColumn(c) }
