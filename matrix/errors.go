// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns these sentinels (wrapped with call-site
// context) and tests MUST check them via errors.Is. Whether a failure is
// returned or aborts the program is decided once, by the failure policy
// selected at build time (see policy_return.go / policy_abort.go).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap the sentinel with the method
// name and its arguments, e.g. "Matrix.EraseRow(7): matrix: row does not exist";
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// self-as-argument -> emptiness -> index/range -> shape compatibility
// -> dimension bound (ErrMaxAllowedDimensionsExceeded).

// ---------- Dimension & construction ----------

var (
	// ErrNullDimension is returned when a constructor or resize asks for 0 rows or 0 columns.
	ErrNullDimension = errors.New("matrix: null dimension")

	// ErrMaxAllowedDimensionsExceeded is returned when rows or columns would exceed MaxDimension.
	ErrMaxAllowedDimensionsExceeded = errors.New("matrix: maximum allowed dimensions exceeded")

	// ErrInsufficientElementsForInit is returned when a flat source holds fewer than rows*cols values.
	ErrInsufficientElementsForInit = errors.New("matrix: insufficient elements for init")

	// ErrEmptyMatrix is returned by operations that require at least one element.
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")
)

// ---------- Index & range ----------

var (
	// ErrRowDoesNotExist indicates a row number outside [0, Rows()).
	ErrRowDoesNotExist = errors.New("matrix: row does not exist")

	// ErrColumnDoesNotExist indicates a column number outside [0, Cols()).
	ErrColumnDoesNotExist = errors.New("matrix: column does not exist")

	// ErrDiagonalDoesNotExist indicates a diagonal number outside [-(Rows()-1), Cols()-1].
	ErrDiagonalDoesNotExist = errors.New("matrix: diagonal does not exist")

	// ErrInvalidElementIndex indicates that a (row, col) pair lies outside the matrix.
	ErrInvalidElementIndex = errors.New("matrix: invalid element index")

	// ErrInsertRowNoncontiguous is returned when a row is inserted beyond Rows().
	ErrInsertRowNoncontiguous = errors.New("matrix: row insertion position is not contiguous")

	// ErrInsertColumnNoncontiguous is returned when a column is inserted beyond Cols().
	ErrInsertColumnNoncontiguous = errors.New("matrix: column insertion position is not contiguous")
)

// ---------- Shape compatibility between matrices ----------

var (
	// ErrMatrixesUnequalRowLength is returned by CatByRow when column counts differ.
	ErrMatrixesUnequalRowLength = errors.New("matrix: matrixes have unequal row length")

	// ErrMatrixesUnequalColumnLength is returned by CatByColumn when row counts differ.
	ErrMatrixesUnequalColumnLength = errors.New("matrix: matrixes have unequal column length")

	// ErrResultNoRows is returned by SplitByRow when the split would leave no rows behind.
	ErrResultNoRows = errors.New("matrix: result has no rows")

	// ErrResultNoColumns is returned by SplitByColumn when the split would leave no columns behind.
	ErrResultNoColumns = errors.New("matrix: result has no columns")

	// ErrCurrentMatrixAsArgument is returned when the receiver is passed where another matrix is required.
	ErrCurrentMatrixAsArgument = errors.New("matrix: current matrix passed as argument")
)

// ---------- Iterators ----------

var (
	// ErrDereferenceEndIterator is returned when a sentinel (end / reverse end) is dereferenced.
	ErrDereferenceEndIterator = errors.New("matrix: cannot dereference end iterator")

	// ErrIncompatibleIterators is returned when two iterators of different matrices
	// or different geometry (dims, diagonal) are combined.
	ErrIncompatibleIterators = errors.New("matrix: incompatible iterators")

	// ErrDiagonalIndexOutOfBounds is returned when a diagonal index lies outside [0, diagonal size).
	ErrDiagonalIndexOutOfBounds = errors.New("matrix: diagonal index out of bounds")

	// ErrIteratorIndexOutOfBounds is returned by At(n) when the target falls outside [begin, end].
	ErrIteratorIndexOutOfBounds = errors.New("matrix: iterator index out of bounds")
)

// matrixErrorf wraps a sentinel with the Matrix method tag and routes it
// through the failure policy.
func matrixErrorf(method string, err error, args ...int) error {
	return fail(fmt.Errorf("Matrix.%s%s: %w", method, formatArgs(args), err))
}

// iteratorErrorf wraps a sentinel with the iterator family tag and routes it
// through the failure policy.
func iteratorErrorf(family, method string, err error) error {
	return fail(fmt.Errorf("%s.%s: %w", family, method, err))
}

// formatArgs renders integer call arguments as "(a,b,...)" for error context.
func formatArgs(args []int) string {
	if len(args) == 0 {
		return "()"
	}
	b := make([]byte, 0, 4*len(args)+2)
	b = append(b, '(')
	for i, a := range args {
		if i > 0 {
			b = append(b, ',')
		}
		b = fmt.Appendf(b, "%d", a)
	}

	return string(append(b, ')'))
}
