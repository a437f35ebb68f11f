// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks; each facade delegates to the
//     canonical constructor or method and adds no policy of its own.
//   - Keep names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Use NewZeros/ZerosLike for scratch buffers, FromRows/ToRows to move data
//     in and out as nested slices (handy in tests and CLIs).

package matrix

// NewZeros returns a rows x cols matrix of zero values.
// It is a thin alias of NewFilled with the zero value of T.
// Complexity: O(rowCap*colCap) zeroing by the runtime.
func NewZeros[T comparable](rows, cols int, opts ...Option) (*Matrix[T], error) {
	var zero T
	return NewFilled(rows, cols, zero, opts...)
}

// ZerosLike returns a zero matrix with the same shape as m. An empty m
// yields an empty matrix.
func ZerosLike[T comparable](m *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if m.IsEmpty() {
		return New[T](opts...), nil
	}

	return NewZeros[T](m.Rows(), m.Cols(), opts...)
}

// CloneMatrix returns m.Clone(). Thin wrapper for discoverability.
func CloneMatrix[T comparable](m *Matrix[T]) *Matrix[T] {
	return m.Clone()
}

// FromRows builds a matrix from equally long rows. A nil or empty slice
// yields an empty matrix.
//
// Errors:
//   - ErrNullDimension when the first row is empty.
//   - ErrMatrixesUnequalRowLength when rows differ in length.
//   - ErrMaxAllowedDimensionsExceeded for oversized input.
func FromRows[T comparable](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 {
		return New[T](opts...), nil
	}
	cols := len(rows[0])
	if err := validateExtents("FromRows", len(rows), cols); err != nil {
		return nil, err
	}
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf("FromRows", ErrMatrixesUnequalRowLength, i, len(row), cols)
		}
		flat = append(flat, row...)
	}

	return NewFromSlice(len(rows), cols, flat, opts...)
}

// ToRows copies m into freshly allocated nested slices (nil when empty).
// Complexity: O(r*c).
func ToRows[T comparable](m *Matrix[T]) [][]T {
	if m.IsEmpty() {
		return nil
	}
	out := make([][]T, m.rows)
	for r := range out {
		b := m.rowBase(r)
		out[r] = append([]T(nil), m.buf[b:b+m.cols]...)
	}

	return out
}
