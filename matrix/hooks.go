// SPDX-License-Identifier: MIT

// Package matrix: storage instrumentation hooks.
//
// The container never logs. Instead every fresh allocation made by the
// storage engine is reported to the Hooks attached with WithHooks, so callers
// can count reallocations, trace capacity growth or forward the events to a
// logger of their choice. The default sink is NoopHooks.

package matrix

// Storage operation tags reported in ReallocEvent.Op.
const (
	OpConstruct    = "Construct"
	OpClone        = "Clone"
	OpResize       = "Resize"
	OpReserve      = "Reserve"
	OpShrinkToFit  = "ShrinkToFit"
	OpInsertRow    = "InsertRow"
	OpInsertColumn = "InsertColumn"
	OpEraseRow     = "EraseRow"
	OpEraseColumn  = "EraseColumn"
	OpCatByRow     = "CatByRow"
	OpCatByColumn  = "CatByColumn"
	OpSplitByRow   = "SplitByRow"
	OpSplitByCol   = "SplitByColumn"
	OpTranspose    = "Transpose"
	OpRelease      = "Release"
)

// ReallocEvent describes one fresh allocation of the backing buffers.
// Old capacities are zero when the matrix was empty before the operation.
type ReallocEvent struct {
	Op        string // operation tag (Op* constants)
	OldRowCap int
	OldColCap int
	NewRowCap int
	NewColCap int
}

// Hooks receives storage events from a matrix. Implementations must not
// mutate the matrix that emitted the event.
type Hooks interface {
	OnReallocate(ev ReallocEvent)
}

// NoopHooks is the default, do-nothing Hooks implementation.
type NoopHooks struct{}

func (NoopHooks) OnReallocate(ReallocEvent) {}

// HooksFunc adapts a plain function to Hooks.
type HooksFunc func(ev ReallocEvent)

// OnReallocate calls f(ev).
func (f HooksFunc) OnReallocate(ev ReallocEvent) { f(ev) }
