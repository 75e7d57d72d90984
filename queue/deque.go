// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"fmt"

	"github.com/ava-labs/seq/intmath"
)

// A Deque is a double-ended queue over a ring buffer, with constant-time
// pushes and pops at both ends and amortised-constant growth. The zero value
// is an empty deque ready for use.
//
// A Deque reports absence with a boolean rather than an error; it is the
// building block for the fail-fast queue types in this package.
type Deque[T any] struct {
	ring  []T // len(ring) MUST == cap(ring) and be zero or a power of two
	start int // 0 <= start < len(ring)
	n     int // 0 <= n <= len(ring)
}

// cap returns the capacity of the deque's ring.
func (d *Deque[T]) cap() int {
	return len(d.ring)
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.n
}

// ringIndex maps the logical index `i` to an index in the ring. The ring's
// size is a power of two so the mask is equivalent to a Euclidean modulus,
// which also makes i = -1 (the slot in front of the first element) safe.
func (d *Deque[T]) ringIndex(i int) int {
	return (d.start + i) & (d.cap() - 1)
}

// PushBack appends `x` at the back of the deque, doubling the ring if it is
// full.
func (d *Deque[T]) PushBack(x T) {
	d.reserve(d.n + 1)
	d.ring[d.ringIndex(d.n)] = x
	d.n++
}

// PushFront inserts `x` at the front of the deque, doubling the ring if it
// is full.
func (d *Deque[T]) PushFront(x T) {
	d.reserve(d.n + 1)
	d.start = d.ringIndex(-1)
	d.ring[d.start] = x
	d.n++
}

// Front returns the first element without removing it, reporting whether the
// deque was non-empty.
func (d *Deque[T]) Front() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	return d.ring[d.start], true
}

// Back returns the last element without removing it, reporting whether the
// deque was non-empty.
func (d *Deque[T]) Back() (T, bool) {
	if d.n == 0 {
		return zero[T](), false
	}
	return d.peekAt(d.n - 1), true
}

// PopFront removes and returns the first element, reporting whether the
// deque was non-empty.
func (d *Deque[T]) PopFront() (T, bool) {
	x, ok := d.Front()
	if !ok {
		return x, false
	}
	d.clearAt(0)
	d.start = d.ringIndex(1)
	d.n--
	return x, true
}

// PopBack removes and returns the last element, reporting whether the deque
// was non-empty.
func (d *Deque[T]) PopBack() (T, bool) {
	x, ok := d.Back()
	if !ok {
		return x, false
	}
	d.clearAt(d.n - 1)
	d.n--
	return x, true
}

// peekAt returns the i'th element without removing it. It never panics but
// the returned value is undefined if `i` is not in `[0,d.Len())`.
func (d *Deque[T]) peekAt(i int) T {
	return d.ring[d.ringIndex(i)]
}

// clearAt zeroes the i'th slot so that popped values do not pin memory.
func (d *Deque[T]) clearAt(i int) {
	var zero T
	d.ring[d.ringIndex(i)] = zero
}

// reserve grows the ring, if necessary, for the deque to hold `n` elements.
func (d *Deque[T]) reserve(n int) {
	if n > d.cap() {
		d.Grow(n)
	}
}

// Grow increases the deque's capacity to hold at least `n` elements,
// rounding the ring up to a power of two so that [Deque.ringIndex] can mask
// instead of divide. This does not place a limit on the size of the deque,
// but pre-allocates memory. It is O(d.Len()).
func (d *Deque[T]) Grow(n int) {
	if n <= d.cap() {
		return
	}
	b := make([]T, intmath.CeilToPowerOfTwo(uint(n)))
	copy(b, d.ring[d.start:])
	copy(b[len(d.ring)-d.start:], d.ring[:d.start])

	d.ring = b
	d.start = 0
}

// String renders the deque front to back.
func (d *Deque[T]) String() string {
	elems := make([]T, 0, d.n)
	for i := range d.n {
		elems = append(elems, d.peekAt(i))
	}
	return fmt.Sprintf("%v", elems)
}
