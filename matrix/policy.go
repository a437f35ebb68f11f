// SPDX-License-Identifier: MIT

// Package matrix: failure policy.
//
// Every precondition check in the package ends in fail(err). The policy is a
// compile-time constant, so checks never branch on it themselves and the
// compiler drops the unused path.

package matrix

// fail applies the build's failure policy to an already wrapped error.
// Under the return policy it hands err back unchanged; under the abort
// policy it panics with err.
func fail(err error) error {
	if abortOnFailure {
		panic(err)
	}

	return err
}

// Must unwraps (v, err) pairs at call sites that treat any failure as fatal,
// regardless of the build's failure policy.
//
// Example:
//
//	m := matrix.Must(matrix.NewFilled(3, 3, 0))
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}
