// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for container construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - Options travel with the matrix: Clone copies them, Move carries them,
//     MoveFrom/CopyFrom keep the destination's own options.
//   - Build-time switches (index policy, failure policy) are NOT options; they
//     are selected with build tags, see limits_*.go and policy_*.go.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGrowthSlackPercent is the extra capacity (in percent of the
	// logical extent) reserved per axis whenever Clone, Resize or Transpose
	// allocates a fresh buffer.
	DefaultGrowthSlackPercent = 25

	// DefaultRowCapacity / DefaultColumnCapacity of zero mean "exactly the
	// requested extent" for sized constructors.
	DefaultRowCapacity    = 0
	DefaultColumnCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "matrix: WithCapacity: capacities must be non-negative"
	panicSlackInvalid    = "matrix: WithGrowthSlack: percent must be within [0,100]"
	panicHooksNil        = "matrix: WithHooks: hooks must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rowCap       int   // initial row capacity for sized constructors (0 = rows)
	colCap       int   // initial column capacity for sized constructors (0 = cols)
	slackPercent int   // growth slack for Clone/Resize/Transpose
	hooks        Hooks // storage event sink
}

// ---------- Constructors (WithX) ----------

// WithCapacity requests initial capacities for sized constructors.
// Implementation:
//   - Stage 1: validate rowCap ≥ 0 and colCap ≥ 0.
//   - Stage 2: return a setter storing both values.
//
// Behavior highlights:
//   - Requested capacities are clamped to [extent, MaxDimension] at allocation,
//     so a value smaller than the extent simply means "no slack".
//   - The slack is split evenly before and after the logical region.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCapacity(rowCap, colCap int) Option {
	if rowCap < 0 || colCap < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) {
		o.rowCap = rowCap
		o.colCap = colCap
	}
}

// WithGrowthSlack sets the per-axis slack (percent of the extent) used when a
// fresh buffer is allocated by Clone, Resize or Transpose.
// Panics when percent is outside [0,100].
func WithGrowthSlack(percent int) Option {
	if percent < 0 || percent > 100 {
		panic(panicSlackInvalid)
	}

	return func(o *Options) { o.slackPercent = percent }
}

// WithHooks attaches a storage event sink (see Hooks). Panics on nil.
func WithHooks(h Hooks) Option {
	if h == nil {
		panic(panicHooksNil)
	}

	return func(o *Options) { o.hooks = h }
}

// ---------- Resolution ----------

// defaultOptions returns the documented zero-configuration state.
func defaultOptions() Options {
	return Options{
		rowCap:       DefaultRowCapacity,
		colCap:       DefaultColumnCapacity,
		slackPercent: DefaultGrowthSlackPercent,
		hooks:        NoopHooks{},
	}
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// grown returns extent plus the configured slack, capped at MaxDimension.
func (o Options) grown(extent int) int {
	g := extent + extent*o.slackPercent/100

	return min(g, MaxDimension)
}
