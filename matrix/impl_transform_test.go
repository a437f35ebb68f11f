// SPDX-License-Identifier: MIT

//go:build !matrix_abort

package matrix_test

import (
	"testing"

	"github.com/LiviuCP/Matrix-sub005/matrix"
	"github.com/stretchr/testify/require"
)

// TestSwapRows_RemapsIndexOnly verifies that swapping rows moves no element.
func TestSwapRows_RemapsIndexOnly(t *testing.T) {
	m := MustSequence(t, 3, 2)
	before := matrix.RowOrder_TestOnly(m)

	require.NoError(t, m.SwapRows(0, 2))
	RequireRows(t, [][]int{{5, 6}, {3, 4}, {1, 2}}, m)

	after := matrix.RowOrder_TestOnly(m)
	require.Equal(t, []int{before[2], before[1], before[0]}, after)
	RequireArena(t, m)

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrRowDoesNotExist)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrRowDoesNotExist)
}

// TestSwapColumns swaps two columns element by element.
func TestSwapColumns(t *testing.T) {
	m := MustSequence(t, 2, 3)
	require.NoError(t, m.SwapColumns(0, 2))
	RequireRows(t, [][]int{{3, 2, 1}, {6, 5, 4}}, m)

	require.NoError(t, m.SwapColumns(1, 1))
	RequireRows(t, [][]int{{3, 2, 1}, {6, 5, 4}}, m)

	require.ErrorIs(t, m.SwapColumns(0, 3), matrix.ErrColumnDoesNotExist)
}

// TestSwapItems exchanges two single elements.
func TestSwapItems(t *testing.T) {
	m := MustSequence(t, 2, 2)
	require.NoError(t, m.SwapItems(0, 0, 1, 1))
	RequireRows(t, [][]int{{4, 2}, {3, 1}}, m)

	require.ErrorIs(t, m.SwapItems(0, 0, 2, 0), matrix.ErrInvalidElementIndex)
}

// TestTranspose swaps the extents and reallocates with slack.
func TestTranspose(t *testing.T) {
	log := &reallocLog{}
	m := MustSequence(t, 2, 3, matrix.WithHooks(log))
	m.Transpose()
	RequireRows(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, m)
	require.Equal(t, 1, log.count(matrix.OpTranspose))
	RequireArena(t, m)

	m.Transpose()
	RequireRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m)

	e := matrix.New[int]()
	e.Transpose()
	require.True(t, e.IsEmpty())
}

// TestSetAll overwrites every element and leaves slack untouched.
func TestSetAll(t *testing.T) {
	m := MustSequence(t, 2, 2, matrix.WithCapacity(4, 4))
	m.SetAll(5)
	RequireRows(t, [][]int{{5, 5}, {5, 5}}, m)
	RequireArena(t, m)
}

// TestCopyBlock covers copies between matrices and overlapping self copies.
func TestCopyBlock(t *testing.T) {
	src := MustSequence(t, 3, 3)
	dst, err := matrix.NewZeros[int](2, 4)
	require.NoError(t, err)

	require.NoError(t, dst.CopyBlock(src, 2, 2, 1, 1, 0, 2))
	RequireRows(t, [][]int{{0, 0, 5, 6}, {0, 0, 8, 9}}, dst)

	// overlapping: shift the top-left 2x2 block one step down-right
	self := MustSequence(t, 3, 3)
	require.NoError(t, self.CopyBlock(self, 2, 2, 0, 0, 1, 1))
	RequireRows(t, [][]int{{1, 2, 3}, {4, 1, 2}, {7, 4, 5}}, self)

	require.ErrorIs(t, dst.CopyBlock(src, 0, 1, 0, 0, 0, 0), matrix.ErrNullDimension)
	require.ErrorIs(t, dst.CopyBlock(src, 3, 1, 1, 0, 0, 0), matrix.ErrInvalidElementIndex)
	require.ErrorIs(t, dst.CopyBlock(src, 2, 2, 0, 0, 1, 3), matrix.ErrInvalidElementIndex)
}
