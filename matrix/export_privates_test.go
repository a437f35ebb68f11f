// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the storage layout and options snapshot.
//
// Purpose:
//   - Expose the unexported arena layout and the resolved Options to
//     matrix_test ONLY, without widening the production API.
//
// Provided Surface:
//   - RowOrder_TestOnly: physical start slot of every logical row.
//   - Layout_TestOnly: a read-only copy of extents, capacities and offsets.
//   - CheckArena_TestOnly: verifies the arena invariant (slack slots zero).
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly.
//
// AI-Hints:
//   - Keep OptionsSnapshot in sync with Options; tests catch drift.

// Layout is a snapshot of the arena geometry.
type Layout struct {
	Rows, Cols     int
	RowCap, ColCap int
	RowOff, ColOff int
	BufLen         int
}

// Layout_TestOnly snapshots m's geometry.
func Layout_TestOnly[T comparable](m *Matrix[T]) Layout {
	return Layout{
		Rows: m.rows, Cols: m.cols,
		RowCap: m.rowCap, ColCap: m.colCap,
		RowOff: m.rowOff, ColOff: m.colOff,
		BufLen: len(m.buf),
	}
}

// RowOrder_TestOnly returns the physical row starts of the logical rows.
func RowOrder_TestOnly[T comparable](m *Matrix[T]) []int { return m.rowOrder() }

// CheckArena_TestOnly reports whether every slot outside the live region
// holds the zero value and the row index is a permutation of row starts.
func CheckArena_TestOnly[T comparable](m *Matrix[T]) bool {
	if m.empty() {
		return m.buf == nil && m.rowIdx == nil && m.rowCap == 0 && m.colCap == 0
	}
	if len(m.rowIdx) != m.rowCap || len(m.buf) != m.rowCap*m.colCap {
		return false
	}
	seen := make(map[int]bool, m.rowCap)
	for _, start := range m.rowIdx {
		if start%m.colCap != 0 || start < 0 || start >= len(m.buf) || seen[start] {
			return false
		}
		seen[start] = true
	}

	var zero T
	for pr, start := range m.rowIdx {
		liveRow := pr >= m.rowOff && pr < m.rowOff+m.rows
		for pc := range m.colCap {
			liveCol := pc >= m.colOff && pc < m.colOff+m.cols
			if !(liveRow && liveCol) && m.buf[start+pc] != zero {
				return false
			}
		}
	}

	return true
}

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	RowCap, ColCap int
	SlackPercent   int
	HasHooks       bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	_, noop := o.hooks.(NoopHooks)

	return OptionsSnapshot{
		RowCap:       o.rowCap,
		ColCap:       o.colCap,
		SlackPercent: o.slackPercent,
		HasHooks:     !noop,
	}
}

// Grown_TestOnly exposes the growth rule for a resolved option set.
func Grown_TestOnly(extent int, opts ...Option) int {
	return gatherOptions(opts...).grown(extent)
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCapacityInvalid_TestOnly = panicCapacityInvalid
	PanicSlackInvalid_TestOnly    = panicSlackInvalid
	PanicHooksNil_TestOnly        = panicHooksNil
)
