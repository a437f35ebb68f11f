// SPDX-License-Identifier: MIT

//go:build !matrix_small

package matrix

import "math"

// IndexPolicy names the element-index width pair compiled into this build:
// a 32-bit unsigned size type with a 64-bit signed difference type.
const IndexPolicy = "standard"

// MaxDimension bounds Rows() and Cols() independently: half the range of the
// 32-bit size type, so rows*cols always fits the 64-bit difference type used
// by iterator arithmetic.
//
// The standard policy requires a 64-bit int. On 32-bit targets build with
// the matrix_small tag instead.
const MaxDimension = math.MaxUint32 / 2

// rows*cols must fit int; the conversion to uint fails to compile when int
// is narrower than 64 bits.
const _ uint = math.MaxInt/MaxDimension - MaxDimension
