package queue

import "fmt"

// A Slice is a FIFO queue over a bare slice, retained as a worked example of
// why that layout is the wrong one: every Dequeue shifts all remaining
// elements forward, costing O(n). The linear Dequeue is part of Slice's
// contract rather than an accident of implementation; prefer [FIFO], which
// has the same observable ordering with constant-time removal.
//
// A Slice reports absence with a boolean and never returns an error. The
// zero value is an empty queue ready for use.
type Slice[T any] struct {
	elems []T
}

// Enqueue appends `x` at the back of the queue. It is O(1) amortised.
func (q *Slice[T]) Enqueue(x T) {
	q.elems = append(q.elems, x)
}

// Dequeue removes and returns the front element, reporting whether the queue
// was non-empty. It is O(q.Len()).
func (q *Slice[T]) Dequeue() (T, bool) {
	if len(q.elems) == 0 {
		return zero[T](), false
	}
	x := q.elems[0]
	n := copy(q.elems, q.elems[1:])
	q.elems[n] = zero[T]()
	q.elems = q.elems[:n]
	return x, true
}

// Front returns the front element without removing it, reporting whether the
// queue was non-empty.
func (q *Slice[T]) Front() (T, bool) {
	if len(q.elems) == 0 {
		return zero[T](), false
	}
	return q.elems[0], true
}

// Len returns the number of elements in the queue.
func (q *Slice[T]) Len() int {
	return len(q.elems)
}

// Empty reports whether the queue holds no elements.
func (q *Slice[T]) Empty() bool {
	return len(q.elems) == 0
}

// String renders the queue front to back.
func (q *Slice[T]) String() string {
	return fmt.Sprintf("%v", q.elems)
}
