// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
package intmath

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPowerOfTwo reports whether `n` is a power of two. Zero is not a power of
// two.
func IsPowerOfTwo[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns the least power of two greater than or equal to
// `n`, treating zero as one. The result is undefined if it would overflow T.
func CeilToPowerOfTwo[T constraints.Unsigned](n T) T {
	if n <= 1 {
		return 1
	}
	return T(1) << bits.Len64(uint64(n-1))
}
