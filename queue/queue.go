// Package queue provides generic FIFO and priority-ordered containers.
//
// Two error conventions coexist here, each part of its type's contract. The
// building blocks ([Deque], [Slice]) report absence with a boolean and never
// return an error. The queue types ([FIFO], [Typed], [Min], [Priority]) fail
// fast instead, returning [ErrEmpty] or [ErrTypeMismatch] for contractually
// invalid calls. The split is deliberate; consult the doc comment of the type
// at hand.
//
// Except for [Blocking], nothing in this package is safe for concurrent use.
package queue

import "errors"

var (
	// ErrEmpty is returned when the front of an empty queue is read or
	// removed.
	ErrEmpty = errors.New("queue is empty")

	// ErrTypeMismatch is returned by [Typed.Enqueue] when an element's
	// dynamic type differs from the queue's witness type.
	ErrTypeMismatch = errors.New("element type mismatch")
)

func zero[T any]() (z T) { return }
