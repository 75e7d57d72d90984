// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stack provides a generic last-in-first-out container.
package stack

import (
	"fmt"
	"slices"
)

// A Stack is a LIFO container over a contiguous, growable buffer. The zero
// value is an empty stack ready for use.
//
// A Stack reports absence with a boolean and never returns an error. It is
// not safe for concurrent use; callers mutating a Stack from multiple
// goroutines must synchronise externally.
type Stack[T any] struct {
	elems []T
}

// New constructs a [Stack] holding the initial elements in push order: the
// first ends up at the bottom and the last on top.
func New[T any](initial ...T) *Stack[T] {
	return &Stack[T]{elems: slices.Clone(initial)}
}

// Push places `x` on top of the stack. It is O(1) amortised and always
// succeeds.
func (s *Stack[T]) Push(x T) {
	s.elems = append(s.elems, x)
}

// Pop removes the top element, discarding it; popping an empty stack is a
// no-op. Callers that need the removed value should read [Stack.Top] first
// or use [Stack.PopValue]; the value-less form is the primary contract.
func (s *Stack[T]) Pop() {
	n := len(s.elems)
	if n == 0 {
		return
	}
	var zero T
	s.elems[n-1] = zero
	s.elems = s.elems[:n-1]
}

// PopValue removes and returns the top element, reporting whether the stack
// was non-empty.
func (s *Stack[T]) PopValue() (T, bool) {
	x, ok := s.Top()
	if ok {
		s.Pop()
	}
	return x, ok
}

// Top returns the top element without removing it, reporting whether the
// stack was non-empty.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	return s.elems[len(s.elems)-1], true
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return len(s.elems)
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.elems) == 0
}

// String renders the stack bottom to top, i.e. in insertion order.
func (s *Stack[T]) String() string {
	return fmt.Sprintf("%v", s.elems)
}
