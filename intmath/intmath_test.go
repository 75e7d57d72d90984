// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

import (
	"math/rand/v2"
	"testing"
)

func TestCeilToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n, want uint
	}{
		{n: 0, want: 1},
		{n: 1, want: 1},
		{n: 2, want: 2},
		{n: 3, want: 4},
		{n: 4, want: 4},
		{n: 5, want: 8},
		{n: 63, want: 64},
		{n: 64, want: 64},
		{n: 65, want: 128},
		{n: 1<<20 - 1, want: 1 << 20},
		{n: 1<<20 + 1, want: 1 << 21},
	}

	for _, tt := range tests {
		if got := CeilToPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("CeilToPowerOfTwo[%T](%[1]d) got %d; want %d", tt.n, got, tt.want)
		}
	}
}

func TestCeilToPowerOfTwoRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0))

	for range 1000 {
		n := uint(rng.Uint64N(1 << 40))
		got := CeilToPowerOfTwo(n)

		switch {
		case !IsPowerOfTwo(got):
			t.Errorf("CeilToPowerOfTwo(%d) got %d; not a power of two", n, got)
		case got < n:
			t.Errorf("CeilToPowerOfTwo(%d) got %d < input", n, got)
		case n > 1 && got/2 >= n:
			t.Errorf("CeilToPowerOfTwo(%d) got %d; %d/2 also suffices", n, got, got)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    uint64
		want bool
	}{
		{n: 0, want: false},
		{n: 1, want: true},
		{n: 2, want: true},
		{n: 3, want: false},
		{n: 4, want: true},
		{n: 6, want: false},
		{n: 1 << 63, want: true},
		{n: 1<<63 + 1, want: false},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) got %t; want %t", tt.n, got, tt.want)
		}
	}
}
