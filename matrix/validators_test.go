// SPDX-License-Identifier: MIT

//go:build !matrix_abort

package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidateExtents_Priority checks the null check runs before the bound check.
func TestValidateExtents_Priority(t *testing.T) {
	require.NoError(t, validateExtents("T", 1, MaxDimension))
	require.ErrorIs(t, validateExtents("T", 0, MaxDimension+1), ErrNullDimension)
	require.ErrorIs(t, validateExtents("T", -3, 2), ErrNullDimension)
	require.ErrorIs(t, validateExtents("T", MaxDimension+1, 1), ErrMaxAllowedDimensionsExceeded)
	require.EqualError(t, validateExtents("Resize", 0, 4), "Matrix.Resize(0,4): matrix: null dimension")
}

// TestRangeGuards pins the half-open and contiguous ranges.
func TestRangeGuards(t *testing.T) {
	cases := []struct {
		x, n           int
		live, cont bool
	}{
		{-1, 3, false, false},
		{0, 3, true, true},
		{2, 3, true, true},
		{3, 3, false, true},
		{4, 3, false, false},
		{0, 0, false, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.live, inRange(tc.x, tc.n), "inRange(%d,%d)", tc.x, tc.n)
		require.Equal(t, tc.cont, contiguous(tc.x, tc.n), "contiguous(%d,%d)", tc.x, tc.n)
	}

	a := newArena[int](2, 3, 4, 4)
	require.True(t, a.inside(1, 2))
	require.False(t, a.inside(2, 0)) // capacity rows are not live
	require.False(t, a.hasColumn(3))
	require.True(t, a.hasRow(0))

	var empty arena[int]
	require.False(t, empty.inside(0, 0))
}
