// SPDX-License-Identifier: MIT

//go:build matrix_abort

package matrix

// FailurePolicy names the failure-reporting mode compiled into this build.
// Under -tags matrix_abort every failure panics with the wrapped sentinel,
// so a misuse terminates the program unless the caller recovers.
const FailurePolicy = "abort"

// abortOnFailure is the single switch consulted by fail.
const abortOnFailure = true
