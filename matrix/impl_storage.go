// SPDX-License-Identifier: MIT

// Package matrix - capacity/storage engine: arena layout, construction & ownership.
//
// Purpose:
//   - Own ONE flat buffer of rowCap*colCap slots plus a row index of rowCap
//     entries, each holding the first slot of a physical row.
//   - Keep slack capacity on both ends of each axis (rowOff/colOff before the
//     logical region, the remainder after it) so lines can be added or removed
//     near either end without reallocating.
//   - Decouple row identity from memory position: swapping or rotating rows
//     only permutes the row index, never the elements.
//
// Arena invariant:
//   - Only the rectangle [rowOff, rowOff+rows) x [colOff, colOff+cols) of
//     physical coordinates holds live elements; every other slot holds the zero
//     value of T. "Destructing" a slot resets it to zero, "moving" copies it and
//     zeroes the source, so dropped values never stay reachable.
//
// AI-Hints:
//   - Only the storage engine writes rowIdx/buf layout; iterators read a view.
//   - Every reallocating, remapping or moving operation invalidates iterators
//     and element references obtained before the call (not checked at runtime;
//     stale iterators stay memory-safe but read the old layout).
//
// Complexity quicksheet:
//   - At/Set: O(1); SwapRows: O(1); Clone/Transpose/ShrinkToFit: O(r*c).

package matrix

import "slices"

// arena is the raw layout behind a Matrix.
type arena[T any] struct {
	rows, cols     int   // logical extents
	rowCap, colCap int   // physical extents
	rowOff, colOff int   // unused capacity before the logical region
	rowIdx         []int // len rowCap: first slot of each physical row
	buf            []T   // len rowCap*colCap
}

// newArena allocates an arena for rows x cols with the requested capacities.
// MAIN DESCRIPTION:
//   - Clamp capacities to [extent, MaxDimension], centre the logical region
//     inside the slack, allocate both blocks and map physical rows in order.
//
// Inputs:
//   - rows, cols: validated extents (> 0, ≤ MaxDimension).
//   - rowCap, colCap: requested capacities (any value; clamped).
//
// Complexity:
//   - Time O(rowCap*colCap) (zeroing by the runtime), Space O(rowCap*colCap).
func newArena[T any](rows, cols, rowCap, colCap int) arena[T] {
	rowCap = clampCapacity(rowCap, rows)
	colCap = clampCapacity(colCap, cols)

	a := arena[T]{
		rows:   rows,
		cols:   cols,
		rowCap: rowCap,
		colCap: colCap,
		rowOff: (rowCap - rows) / 2, // slack split evenly front/back
		colOff: (colCap - cols) / 2,
		rowIdx: make([]int, rowCap),
		buf:    make([]T, rowCap*colCap),
	}
	for pr := range a.rowIdx {
		a.rowIdx[pr] = pr * colCap
	}

	return a
}

// clampCapacity returns c clamped to [extent, MaxDimension].
func clampCapacity(c, extent int) int {
	return min(max(c, extent), MaxDimension)
}

func (a *arena[T]) empty() bool { return a.rows == 0 }

// slot maps logical (r, c) to a buffer position.
func (a *arena[T]) slot(r, c int) int { return a.rowIdx[a.rowOff+r] + a.colOff + c }

// rowBase is the buffer position of logical cell (r, 0).
func (a *arena[T]) rowBase(r int) int { return a.rowIdx[a.rowOff+r] + a.colOff }

// canonical reports whether logical rows occupy the buffer in order, back to
// back, with no slack: the buffer is then a plain row-major rows*cols slice.
func (a *arena[T]) canonical() bool {
	if a.rowCap != a.rows || a.colCap != a.cols {
		return false
	}
	for pr, start := range a.rowIdx {
		if start != pr*a.colCap {
			return false
		}
	}

	return true
}

// transfer copies the logical block [sr, sr+n) x [sc, sc+k) of src into dst
// starting at (dr, dc). Used when src's buffer is about to be dropped, so the
// source slots are left as they are.
func transfer[T any](dst *arena[T], dr, dc int, src *arena[T], sr, sc, n, k int) {
	for i := 0; i < n; i++ {
		d := dst.rowBase(dr+i) + dc
		s := src.rowBase(sr+i) + sc
		copy(dst.buf[d:d+k], src.buf[s:s+k])
	}
}

// zeroCells destructs the logical block [r, r+n) x [c, c+k).
func (a *arena[T]) zeroCells(r, c, n, k int) {
	for i := 0; i < n; i++ {
		b := a.rowBase(r+i) + c
		clear(a.buf[b : b+k])
	}
}

// fillCells constructs the logical block [r, r+n) x [c, c+k) with v.
func (a *arena[T]) fillCells(r, c, n, k int, v T) {
	for i := 0; i < n; i++ {
		b := a.rowBase(r+i) + c
		for j := b; j < b+k; j++ {
			a.buf[j] = v
		}
	}
}

// initCells constructs the block with *fill, or leaves the zero value when
// fill is nil (slots outside the live region are already zero).
func (a *arena[T]) initCells(r, c, n, k int, fill *T) {
	if fill != nil && n > 0 && k > 0 {
		a.fillCells(r, c, n, k, *fill)
	}
}

// rotateRowsLeft rotates the physical row index [from, to) left by one:
// the entry at from moves to to-1. No element is touched.
func (a *arena[T]) rotateRowsLeft(from, to int) {
	if to-from < 2 {
		return
	}
	first := a.rowIdx[from]
	copy(a.rowIdx[from:to-1], a.rowIdx[from+1:to])
	a.rowIdx[to-1] = first
}

// rotateRowsRight rotates the physical row index [from, to) right by one:
// the entry at to-1 moves to from.
func (a *arena[T]) rotateRowsRight(from, to int) {
	if to-from < 2 {
		return
	}
	last := a.rowIdx[to-1]
	copy(a.rowIdx[from+1:to], a.rowIdx[from:to-1])
	a.rowIdx[from] = last
}

// shiftColumnsLeft moves every live element k physical columns to the left
// and lowers colOff by k. Requires k ≤ colOff.
func (a *arena[T]) shiftColumnsLeft(k int) {
	if k <= 0 {
		return
	}
	var zero T
	for r := 0; r < a.rows; r++ {
		b := a.rowBase(r)
		copy(a.buf[b-k:b-k+a.cols], a.buf[b:b+a.cols]) // memmove semantics
		for j := b - k + a.cols; j < b+a.cols; j++ {
			a.buf[j] = zero // vacated tail
		}
	}
	a.colOff -= k
}

// Matrix is a resizable two-dimensional container of T values.
//   - Elements live in a single flat arena reached through a row index.
//   - Each axis keeps independent slack capacity before and after the logical region.
//   - The zero value is NOT ready to use; build matrices with New, NewFilled,
//     NewFromSlice or NewDiagonal.
//
// A Matrix is not safe for concurrent mutation; concurrent read-only access
// is safe while no mutator runs.
type Matrix[T comparable] struct {
	arena[T]
	opts Options
}

// New returns an empty matrix (0x0, no capacity, offsets absent).
// Complexity: O(1).
func New[T comparable](opts ...Option) *Matrix[T] {
	return &Matrix[T]{opts: gatherOptions(opts...)}
}

// newSized allocates a rows x cols matrix honoring WithCapacity.
func newSized[T comparable](method string, rows, cols int, opts []Option) (*Matrix[T], error) {
	if err := validateExtents(method, rows, cols); err != nil {
		return nil, err
	}
	m := New[T](opts...)
	m.adopt(OpConstruct, newArena[T](rows, cols, m.opts.rowCap, m.opts.colCap))

	return m, nil
}

// NewFilled creates a rows x cols matrix with every element set to v.
// MAIN DESCRIPTION:
//   - Sized constructor; capacities default to the extents (see WithCapacity).
//
// Errors:
//   - ErrNullDimension when rows or cols is 0 (or negative).
//   - ErrMaxAllowedDimensionsExceeded when rows or cols exceeds MaxDimension.
//
// Complexity:
//   - Time O(rowCap*colCap), Space O(rowCap*colCap).
func NewFilled[T comparable](rows, cols int, v T, opts ...Option) (*Matrix[T], error) {
	m, err := newSized[T]("NewFilled", rows, cols, opts)
	if err != nil {
		return nil, err
	}
	var zero T
	if v != zero {
		m.fillCells(0, 0, rows, cols, v)
	}

	return m, nil
}

// NewFromSlice creates a rows x cols matrix from the first rows*cols values of
// src, read in row-major order. src is copied, never retained.
//
// Errors:
//   - ErrNullDimension, ErrMaxAllowedDimensionsExceeded (shape).
//   - ErrInsufficientElementsForInit when len(src) < rows*cols.
func NewFromSlice[T comparable](rows, cols int, src []T, opts ...Option) (*Matrix[T], error) {
	if err := validateExtents("NewFromSlice", rows, cols); err != nil {
		return nil, err
	}
	if len(src) < rows*cols {
		return nil, matrixErrorf("NewFromSlice", ErrInsufficientElementsForInit, rows, cols, len(src))
	}
	m, err := newSized[T]("NewFromSlice", rows, cols, opts)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		b := m.rowBase(r)
		copy(m.buf[b:b+cols], src[r*cols:(r+1)*cols])
	}

	return m, nil
}

// NewDiagonal creates a size x size matrix with mainDiag on the main diagonal
// and offDiag everywhere else.
func NewDiagonal[T comparable](size int, offDiag, mainDiag T, opts ...Option) (*Matrix[T], error) {
	m, err := newSized[T]("NewDiagonal", size, size, opts)
	if err != nil {
		return nil, err
	}
	var zero T
	if offDiag != zero {
		m.fillCells(0, 0, size, size, offDiag)
	}
	for i := 0; i < size; i++ {
		m.buf[m.slot(i, i)] = mainDiag
	}

	return m, nil
}

// adopt replaces the arena with a freshly allocated one and reports it.
func (m *Matrix[T]) adopt(op string, a arena[T]) {
	ev := ReallocEvent{
		Op:        op,
		OldRowCap: m.rowCap,
		OldColCap: m.colCap,
		NewRowCap: a.rowCap,
		NewColCap: a.colCap,
	}
	m.arena = a
	if m.opts.hooks != nil {
		m.opts.hooks.OnReallocate(ev)
	}
}

// Rows returns the logical row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the logical column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols(). Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// IsEmpty reports whether the matrix holds no elements.
func (m *Matrix[T]) IsEmpty() bool { return m.empty() }

// RowCapacity returns the allocated row count (≥ Rows()).
func (m *Matrix[T]) RowCapacity() int { return m.rowCap }

// ColumnCapacity returns the allocated column count (≥ Cols()).
func (m *Matrix[T]) ColumnCapacity() int { return m.colCap }

// RowCapacityOffset returns the unused row capacity kept before the first
// row; ok is false for an empty matrix.
func (m *Matrix[T]) RowCapacityOffset() (offset int, ok bool) {
	if m.empty() {
		return 0, false
	}

	return m.rowOff, true
}

// ColumnCapacityOffset returns the unused column capacity kept before the
// first column; ok is false for an empty matrix.
func (m *Matrix[T]) ColumnCapacityOffset() (offset int, ok bool) {
	if m.empty() {
		return 0, false
	}

	return m.colOff, true
}

// Clear destructs every element and releases both allocations.
// Complexity: O(1) (the buffers are dropped for the GC).
func (m *Matrix[T]) Clear() {
	m.arena = arena[T]{}
}

// Clone returns an independent copy sized with the growth slack on each axis.
// The options (hooks included) are copied.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{opts: m.opts}
	if m.empty() {
		return c
	}
	c.adopt(OpClone, newArena[T](m.rows, m.cols, m.opts.grown(m.rows), m.opts.grown(m.cols)))
	transfer(&c.arena, 0, 0, &m.arena, 0, 0, m.rows, m.cols)

	return c
}

// CopyFrom replaces the contents with an independent copy of src.
// Copying a matrix onto itself is a no-op. The receiver keeps its options.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) {
	if src == m {
		return
	}
	if src.empty() {
		m.Clear()
		return
	}
	m.Clear()
	m.adopt(OpClone, newArena[T](src.rows, src.cols, m.opts.grown(src.rows), m.opts.grown(src.cols)))
	transfer(&m.arena, 0, 0, &src.arena, 0, 0, src.rows, src.cols)
}

// Move returns a new matrix that owns the receiver's buffers and options;
// the receiver is left empty. Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{arena: m.arena, opts: m.opts}
	m.arena = arena[T]{}

	return out
}

// MoveFrom steals src's buffers, leaving src empty. The receiver keeps its
// options. Moving a matrix onto itself is a no-op. Complexity: O(1).
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) {
	if src == m {
		return
	}
	m.arena = src.arena
	src.arena = arena[T]{}
}

// SwapWith exchanges the contents of two matrices in O(1). Options stay put.
func (m *Matrix[T]) SwapWith(o *Matrix[T]) {
	m.arena, o.arena = o.arena, m.arena
}

// Reserve changes capacities without touching the logical contents.
// MAIN DESCRIPTION:
//   - Requested capacities are clamped to [extent, MaxDimension]; the buffers
//     are reallocated (and elements moved) only if either capacity changes.
//
// Behavior highlights:
//   - A request below the current capacity but above the extent shrinks it.
//   - No-op on an empty matrix (an empty matrix owns no capacity).
//
// Complexity:
//   - Time O(rowCap*colCap) when reallocating, O(1) otherwise.
func (m *Matrix[T]) Reserve(rowCap, colCap int) {
	if m.empty() {
		return
	}
	rowCap = clampCapacity(rowCap, m.rows)
	colCap = clampCapacity(colCap, m.cols)
	if rowCap == m.rowCap && colCap == m.colCap {
		return
	}
	m.reallocate(OpReserve, rowCap, colCap)
}

// ShrinkToFit reallocates so that capacities equal the extents (no slack).
// Calling it again is a no-op.
func (m *Matrix[T]) ShrinkToFit() {
	if m.empty() || (m.rowCap == m.rows && m.colCap == m.cols) {
		return
	}
	m.reallocate(OpShrinkToFit, m.rows, m.cols)
}

// reallocate moves the whole logical region into a fresh arena of the given
// capacities.
func (m *Matrix[T]) reallocate(op string, rowCap, colCap int) {
	a := newArena[T](m.rows, m.cols, rowCap, colCap)
	transfer(&a, 0, 0, &m.arena, 0, 0, m.rows, m.cols)
	m.adopt(op, a)
}

// Release hands the caller the element buffer and leaves the matrix empty.
// MAIN DESCRIPTION:
//   - Shrink to fit, make sure logical rows sit back to back in order, then
//     give away the flat row-major slice of exactly Rows()*Cols() elements.
//
// Returns:
//   - nil for an empty matrix.
//
// Notes:
//   - The matrix keeps no reference to the returned slice.
//
// Complexity:
//   - O(1) when the layout is already canonical, O(r*c) otherwise.
func (m *Matrix[T]) Release() []T {
	if m.empty() {
		return nil
	}
	m.ShrinkToFit()
	if !m.canonical() {
		// rows were swapped/rotated: compact them into logical order
		m.reallocate(OpRelease, m.rows, m.cols)
	}
	out := m.buf
	m.arena = arena[T]{}

	return out
}

// rowOrder snapshots the physical row start of every logical row.
func (m *Matrix[T]) rowOrder() []int {
	if m.empty() {
		return nil
	}

	return slices.Clone(m.rowIdx[m.rowOff : m.rowOff+m.rows])
}
