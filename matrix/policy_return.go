// SPDX-License-Identifier: MIT

//go:build !matrix_abort

package matrix

// FailurePolicy names the failure-reporting mode compiled into this build.
// The default build returns every failure to the caller as an error value.
// Build with -tags matrix_abort to turn every failure into a panic instead.
const FailurePolicy = "return"

// abortOnFailure is the single switch consulted by fail.
const abortOnFailure = false
