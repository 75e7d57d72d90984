package queue

// A FIFO is a first-in-first-out queue over a [Deque], giving constant-time
// operations at both ends. The zero value is an empty queue ready for use.
//
// A FIFO fails fast: reading or removing the front of an empty queue returns
// [ErrEmpty] and leaves the queue unchanged. The element type is fixed by
// the type parameter, so a mismatched element cannot be expressed; [Typed]
// provides the runtime-checked equivalent for type-erased callers.
type FIFO[T any] struct {
	d Deque[T]
}

// Enqueue appends `x` at the back of the queue. It is O(1) amortised.
func (q *FIFO[T]) Enqueue(x T) {
	q.d.PushBack(x)
}

// Dequeue removes and returns the front element in O(1). It returns
// [ErrEmpty] if the queue is empty.
func (q *FIFO[T]) Dequeue() (T, error) {
	x, ok := q.d.PopFront()
	if !ok {
		return x, ErrEmpty
	}
	return x, nil
}

// Front returns the front element without removing it, in O(1). It returns
// [ErrEmpty] if the queue is empty.
func (q *FIFO[T]) Front() (T, error) {
	x, ok := q.d.Front()
	if !ok {
		return x, ErrEmpty
	}
	return x, nil
}

// Empty reports whether the queue holds no elements.
func (q *FIFO[T]) Empty() bool {
	return q.d.Len() == 0
}

// Len returns the number of elements in the queue.
func (q *FIFO[T]) Len() int {
	return q.d.Len()
}

// Grow pre-allocates memory for up to `n` elements without limiting the size
// of the queue.
func (q *FIFO[T]) Grow(n int) {
	q.d.Grow(n)
}

// String renders the queue front to back.
func (q *FIFO[T]) String() string {
	return q.d.String()
}
