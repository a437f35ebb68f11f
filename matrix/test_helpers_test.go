// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for storage and iterator tests.
//   • Keep every helper fatal on unexpected errors so tests stay linear.

package matrix_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/LiviuCP/Matrix-sub005/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows BUILDS a matrix from nested rows or fails the test.
func MustFromRows[T comparable](t testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustSequence BUILDS an r×c int matrix holding 1..r*c in row-major order.
//
// AI-Hints:
//   - Distinct values make every element traceable after remapping operations.
func MustSequence(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.NewFromSlice(r, c, sequence(r*c), opts...)
	require.NoError(t, err)

	return m
}

// sequence returns 1..n.
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// RequireRows ASSERTS the exact contents (and therefore shape) of m.
func RequireRows[T comparable](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, want, matrix.ToRows(m))
}

// RequireArena ASSERTS the capacity invariant and the zero-slack invariant.
func RequireArena[T comparable](t testing.TB, m *matrix.Matrix[T]) {
	t.Helper()
	l := matrix.Layout_TestOnly(m)
	if m.IsEmpty() {
		require.Zero(t, l.RowCap)
		require.Zero(t, l.ColCap)
		_, ok := m.RowCapacityOffset()
		require.False(t, ok)
		_, ok = m.ColumnCapacityOffset()
		require.False(t, ok)
	} else {
		require.GreaterOrEqual(t, l.RowCap, l.Rows)
		require.GreaterOrEqual(t, l.ColCap, l.Cols)
		require.GreaterOrEqual(t, l.RowOff, 0)
		require.GreaterOrEqual(t, l.ColOff, 0)
		require.LessOrEqual(t, l.RowOff+l.Rows, l.RowCap)
		require.LessOrEqual(t, l.ColOff+l.Cols, l.ColCap)
	}
	require.True(t, matrix.CheckArena_TestOnly(m), "slack slots must hold zero values")
}

// Collect drains a sequence into a slice.
func Collect[T any](seq iter.Seq[T]) []T { return slices.Collect(seq) }

// reallocLog RECORDS every storage event (Hooks implementation).
type reallocLog struct {
	events []matrix.ReallocEvent
}

func (l *reallocLog) OnReallocate(ev matrix.ReallocEvent) { l.events = append(l.events, ev) }

// count returns how many events carry op.
func (l *reallocLog) count(op string) int {
	n := 0
	for _, ev := range l.events {
		if ev.Op == op {
			n++
		}
	}

	return n
}
