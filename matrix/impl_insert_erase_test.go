// SPDX-License-Identifier: MIT

//go:build !matrix_abort

package matrix_test

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/LiviuCP/Matrix-sub005/matrix"
	"github.com/stretchr/testify/require"
)

// TestInsertRow_Errors checks the error priority: empty -> position -> bound.
func TestInsertRow_Errors(t *testing.T) {
	empty := matrix.New[int]()
	require.ErrorIs(t, empty.InsertRow(0), matrix.ErrEmptyMatrix)
	require.ErrorIs(t, empty.InsertColumn(0), matrix.ErrEmptyMatrix)

	m := MustSequence(t, 2, 2)
	require.ErrorIs(t, m.InsertRow(3), matrix.ErrInsertRowNoncontiguous)
	require.ErrorIs(t, m.InsertRow(-1), matrix.ErrInsertRowNoncontiguous)
	require.ErrorIs(t, m.InsertColumn(3), matrix.ErrInsertColumnNoncontiguous)
	RequireRows(t, [][]int{{1, 2}, {3, 4}}, m)
}

// TestInsertRow_Positions inserts at the front, middle and back.
func TestInsertRow_Positions(t *testing.T) {
	cases := []struct {
		p    int
		want [][]int
	}{
		{0, [][]int{{0, 0}, {1, 2}, {3, 4}, {5, 6}}},
		{1, [][]int{{1, 2}, {0, 0}, {3, 4}, {5, 6}}},
		{2, [][]int{{1, 2}, {3, 4}, {0, 0}, {5, 6}}},
		{3, [][]int{{1, 2}, {3, 4}, {5, 6}, {0, 0}}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("p=%d", tc.p), func(t *testing.T) {
			exact := MustSequence(t, 3, 2) // full axis: reallocates
			require.NoError(t, exact.InsertRow(tc.p))
			RequireRows(t, tc.want, exact)
			RequireArena(t, exact)

			roomy := MustSequence(t, 3, 2, matrix.WithCapacity(6, 2)) // slack on both sides
			require.NoError(t, roomy.InsertRow(tc.p))
			RequireRows(t, tc.want, roomy)
			RequireArena(t, roomy)
		})
	}
}

// TestInsertRow_DoublesWhenFull verifies the doubling reallocation.
func TestInsertRow_DoublesWhenFull(t *testing.T) {
	log := &reallocLog{}
	m := MustSequence(t, 3, 2, matrix.WithHooks(log))

	require.NoError(t, m.InsertRowFill(1, 7))
	RequireRows(t, [][]int{{1, 2}, {7, 7}, {3, 4}, {5, 6}}, m)
	require.Equal(t, 6, m.RowCapacity())
	require.Equal(t, 1, log.count(matrix.OpInsertRow))

	// remaining slack absorbs the next two insertions
	require.NoError(t, m.InsertRowFill(0, 8))
	require.NoError(t, m.InsertRowFill(5, 9))
	RequireRows(t, [][]int{{8, 8}, {1, 2}, {7, 7}, {3, 4}, {5, 6}, {9, 9}}, m)
	require.Equal(t, 1, log.count(matrix.OpInsertRow))
	RequireArena(t, m)
}

// TestInsertColumn_Positions inserts columns with and without slack.
func TestInsertColumn_Positions(t *testing.T) {
	cases := []struct {
		p    int
		want [][]int
	}{
		{0, [][]int{{7, 1, 2, 3}, {7, 4, 5, 6}}},
		{1, [][]int{{1, 7, 2, 3}, {4, 7, 5, 6}}},
		{2, [][]int{{1, 2, 7, 3}, {4, 5, 7, 6}}},
		{3, [][]int{{1, 2, 3, 7}, {4, 5, 6, 7}}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("p=%d", tc.p), func(t *testing.T) {
			exact := MustSequence(t, 2, 3)
			require.NoError(t, exact.InsertColumnFill(tc.p, 7))
			RequireRows(t, tc.want, exact)
			require.Equal(t, 6, exact.ColumnCapacity())
			RequireArena(t, exact)

			roomy := MustSequence(t, 2, 3, matrix.WithCapacity(2, 7))
			require.NoError(t, roomy.InsertColumnFill(tc.p, 7))
			RequireRows(t, tc.want, roomy)
			require.Equal(t, 7, roomy.ColumnCapacity())
			RequireArena(t, roomy)
		})
	}
}

// TestInsertErase_Inverse: inserting a line at p and erasing p restores the matrix.
func TestInsertErase_Inverse(t *testing.T) {
	for _, capacity := range []int{0, 6, 9} {
		orig := MustSequence(t, 4, 5, matrix.WithCapacity(capacity, capacity))
		for p := 0; p <= orig.Rows(); p++ {
			m := orig.Clone()
			require.NoError(t, m.InsertRowFill(p, -1))
			require.NoError(t, m.EraseRow(p))
			require.True(t, m.Equal(orig), "row p=%d cap=%d", p, capacity)
			RequireArena(t, m)
		}
		for p := 0; p <= orig.Cols(); p++ {
			m := orig.Clone()
			require.NoError(t, m.InsertColumnFill(p, -1))
			require.NoError(t, m.EraseColumn(p))
			require.True(t, m.Equal(orig), "column p=%d cap=%d", p, capacity)
			RequireArena(t, m)
		}
	}
}

// TestEraseRow covers positions, the last-row case and errors.
func TestEraseRow(t *testing.T) {
	m := MustSequence(t, 4, 2, matrix.WithCapacity(5, 2))
	require.ErrorIs(t, m.EraseRow(4), matrix.ErrRowDoesNotExist)
	require.ErrorIs(t, m.EraseRow(-1), matrix.ErrRowDoesNotExist)

	require.NoError(t, m.EraseRow(1))
	RequireRows(t, [][]int{{1, 2}, {5, 6}, {7, 8}}, m)
	RequireArena(t, m)

	require.NoError(t, m.EraseRow(2))
	RequireRows(t, [][]int{{1, 2}, {5, 6}}, m)
	RequireArena(t, m)

	require.NoError(t, m.EraseRow(0))
	require.NoError(t, m.EraseRow(0))
	require.True(t, m.IsEmpty())
	RequireArena(t, m)
}

// TestEraseColumn covers positions, the last-column case and errors.
func TestEraseColumn(t *testing.T) {
	m := MustSequence(t, 2, 4, matrix.WithCapacity(2, 5))
	require.ErrorIs(t, m.EraseColumn(4), matrix.ErrColumnDoesNotExist)

	require.NoError(t, m.EraseColumn(1))
	RequireRows(t, [][]int{{1, 3, 4}, {5, 7, 8}}, m)
	RequireArena(t, m)

	require.NoError(t, m.EraseColumn(2))
	RequireRows(t, [][]int{{1, 3}, {5, 7}}, m)
	RequireArena(t, m)

	require.NoError(t, m.EraseColumn(1))
	require.NoError(t, m.EraseColumn(0))
	require.True(t, m.IsEmpty())
}

// TestEraseRow_ReclaimsAtQuarter verifies the reclaim threshold on rows.
func TestEraseRow_ReclaimsAtQuarter(t *testing.T) {
	log := &reallocLog{}
	m := MustSequence(t, 8, 2, matrix.WithCapacity(16, 2), matrix.WithHooks(log))

	for range 3 { // 7, 6, 5 survivors: 4*s > 16, in place
		require.NoError(t, m.EraseRow(0))
	}
	require.Equal(t, 16, m.RowCapacity())
	require.Zero(t, log.count(matrix.OpEraseRow))

	require.NoError(t, m.EraseRow(0)) // 4 survivors: 4*4 <= 16, reclaim
	require.Equal(t, 8, m.RowCapacity())
	require.Equal(t, 1, log.count(matrix.OpEraseRow))
	RequireRows(t, [][]int{{9, 10}, {11, 12}, {13, 14}, {15, 16}}, m)
	RequireArena(t, m)
}

// TestEraseColumn_ReclaimsAtQuarter verifies the reclaim threshold on columns.
func TestEraseColumn_ReclaimsAtQuarter(t *testing.T) {
	log := &reallocLog{}
	m := MustSequence(t, 2, 8, matrix.WithCapacity(2, 16), matrix.WithHooks(log))

	for range 3 { // erase near the back: 7, 6, 5 survivors
		require.NoError(t, m.EraseColumn(m.Cols()-2))
	}
	require.Zero(t, log.count(matrix.OpEraseColumn))

	require.NoError(t, m.EraseColumn(0))
	require.Equal(t, 8, m.ColumnCapacity())
	require.Equal(t, 1, log.count(matrix.OpEraseColumn))
	RequireRows(t, [][]int{{2, 3, 4, 8}, {10, 11, 12, 16}}, m)
	RequireArena(t, m)
}

// TestInsertRow_LogarithmicReallocations: n appends cost O(log n) reallocations.
func TestInsertRow_LogarithmicReallocations(t *testing.T) {
	n := min(1000, matrix.MaxDimension)
	log := &reallocLog{}
	m, err := matrix.NewFilled(1, 2, 0, matrix.WithHooks(log))
	require.NoError(t, err)

	for m.Rows() < n {
		require.NoError(t, m.InsertRowFill(m.Rows(), m.Rows()))
	}
	require.LessOrEqual(t, log.count(matrix.OpInsertRow), bits.Len(uint(n)))

	// front insertions reuse the same doubling policy
	log.events = nil
	f, err := matrix.NewFilled(1, 1, 0, matrix.WithHooks(log))
	require.NoError(t, err)
	for f.Rows() < n {
		require.NoError(t, f.InsertRow(0))
	}
	require.LessOrEqual(t, log.count(matrix.OpInsertRow), bits.Len(uint(n)))
	RequireArena(t, f)
}

// TestInsertRow_MaxDimension rejects growth past the bound.
func TestInsertRow_MaxDimension(t *testing.T) {
	if matrix.MaxDimension > 1<<12 {
		t.Skip("bound too large to reach in a unit test")
	}
	m, err := matrix.NewFilled(matrix.MaxDimension, 1, 0)
	require.NoError(t, err)
	require.ErrorIs(t, m.InsertRow(0), matrix.ErrMaxAllowedDimensionsExceeded)
	require.Equal(t, matrix.MaxDimension, m.Rows())
}
