// Package matrix provides Matrix[T], a resizable two-dimensional container.
//
// The matrix package provides:
//
//   - A storage engine that keeps all elements in one flat buffer reached
//     through a row index, with spare capacity before and after the live
//     region on both axes. Rows and columns can be inserted, erased,
//     concatenated and split near either end without reallocating, and
//     SwapRows only swaps two index entries.
//   - Eight random-access iterator families: Z (row-major), N (column-major),
//     D (diagonals through the top-left corner) and M (mirrored diagonals
//     through the top-right corner), each forward and reverse, each mutable
//     and const.
//   - Bounds-checked accessors (At, Set, Ref), Equal, String and visitors.
//
// Failures are reported as wrapped sentinel errors (match them with
// errors.Is). Building with -tags matrix_abort turns every failure into a
// panic instead; -tags matrix_small caps both extents at 127.
//
// Any operation that reallocates, remaps or moves a matrix invalidates the
// iterators and element pointers obtained from it before the call.
//
// A Matrix is not safe for concurrent mutation.
package matrix
