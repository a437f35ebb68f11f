// SPDX-License-Identifier: MIT

//go:build matrix_small

package matrix

import "math"

// IndexPolicy names the element-index width pair compiled into this build:
// an 8-bit unsigned size type with a 16-bit signed difference type.
const IndexPolicy = "small"

// MaxDimension bounds Rows() and Cols() independently: half the range of the
// 8-bit size type, so rows*cols always fits the 16-bit difference type used
// by iterator arithmetic.
const MaxDimension = math.MaxUint8 / 2
