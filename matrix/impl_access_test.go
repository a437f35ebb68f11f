// SPDX-License-Identifier: MIT

//go:build !matrix_abort

// Package matrix_test contains unit tests for the accessor layer.
package matrix_test

import (
	"testing"

	"github.com/LiviuCP/Matrix-sub005/matrix"
	"github.com/stretchr/testify/require"
)

// TestAtSetOutOfBounds ensures At, Set and Ref return ErrInvalidElementIndex on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustSequence(t, 2, 2)

	_, err := m.At(-1, 0)                                  // negative row index
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex) // expect ErrInvalidElementIndex

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)

	err = m.Set(2, 0, 9) // row index out of range
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)

	_, err = m.Ref(0, -1) // negative column index
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)

	_, err = matrix.New[int]().At(0, 0) // empty matrix has no elements
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)
}

// TestSetGetRef validates Set followed by At, and writes through Ref.
func TestSetGetRef(t *testing.T) {
	m, err := matrix.NewZeros[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	p, err := m.Ref(0, 1)
	require.NoError(t, err)
	*p = 1.5
	val, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.5, val)
}

// TestEqual covers shape, content and empty cases; capacity is irrelevant.
func TestEqual(t *testing.T) {
	a := MustSequence(t, 2, 2)
	b := MustSequence(t, 2, 2, matrix.WithCapacity(7, 9))
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(a))

	require.NoError(t, b.Set(1, 1, 0))
	require.False(t, a.Equal(b))

	require.False(t, a.Equal(MustSequence(t, 1, 4)))
	require.True(t, matrix.New[int]().Equal(matrix.New[int]()))
	require.False(t, a.Equal(matrix.New[int]()))
}

// TestIsZero reports default-valued contents.
func TestIsZero(t *testing.T) {
	z, err := matrix.NewZeros[string](2, 2)
	require.NoError(t, err)
	require.True(t, z.IsZero())
	require.NoError(t, z.Set(0, 1, "x"))
	require.False(t, z.IsZero())
	require.True(t, matrix.New[string]().IsZero())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	require.Equal(t, "", matrix.New[int]().String())
}

// TestDoApplyAll covers the visitor, the mapper and the range adapter.
func TestDoApplyAll(t *testing.T) {
	m := MustSequence(t, 2, 3)

	var seen []int
	m.Do(func(i, j int, v int) bool {
		seen = append(seen, v)
		return v < 4 // stop after the first element of row 1
	})
	require.Equal(t, []int{1, 2, 3, 4}, seen)

	m.Apply(func(i, j int, v int) int { return 10*i + j })
	RequireRows(t, [][]int{{0, 1, 2}, {10, 11, 12}}, m)

	sum := 0
	for cell, v := range m.All() {
		require.Equal(t, 10*cell.Row+cell.Col, v)
		sum += v
	}
	require.Equal(t, 36, sum)
}

// TestFromRows_Errors rejects ragged and empty rows.
func TestFromRows_Errors(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrMatrixesUnequalRowLength)

	_, err = matrix.FromRows([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrNullDimension)

	m, err := matrix.FromRows[int](nil)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	require.Nil(t, matrix.ToRows(m))
}
