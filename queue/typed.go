package queue

import (
	"fmt"
	"reflect"
)

// A Typed queue is a [FIFO] for type-erased callers: the accepted element
// type is fixed at construction and enforced at runtime on every Enqueue.
//
// Most code should use [FIFO] directly, where the compiler enforces the
// element type and the mismatch path cannot be reached. Typed exists for
// boundaries where static types have been erased, such as decoded dynamic
// input or reflection-driven pipelines.
type Typed struct {
	witness reflect.Type
	q       FIFO[any]
}

// NewTyped constructs a queue accepting only elements whose dynamic type is
// exactly `witness`.
func NewTyped(witness reflect.Type) *Typed {
	return &Typed{witness: witness}
}

// TypedFor constructs a queue accepting only elements of dynamic type T.
func TypedFor[T any]() *Typed {
	return NewTyped(reflect.TypeFor[T]())
}

// Witness returns the element type fixed at construction.
func (q *Typed) Witness() reflect.Type {
	return q.witness
}

// Enqueue appends `x` at the back of the queue. If the dynamic type of `x`
// is not the witness type, which includes an untyped nil, it returns
// [ErrTypeMismatch] and leaves the queue unchanged.
func (q *Typed) Enqueue(x any) error {
	if t := reflect.TypeOf(x); t != q.witness {
		return fmt.Errorf("%w: cannot enqueue %v into queue of %v", ErrTypeMismatch, t, q.witness)
	}
	q.q.Enqueue(x)
	return nil
}

// Dequeue removes and returns the front element in O(1). It returns
// [ErrEmpty] if the queue is empty.
func (q *Typed) Dequeue() (any, error) {
	return q.q.Dequeue()
}

// Front returns the front element without removing it, in O(1). It returns
// [ErrEmpty] if the queue is empty.
func (q *Typed) Front() (any, error) {
	return q.q.Front()
}

// Empty reports whether the queue holds no elements.
func (q *Typed) Empty() bool {
	return q.q.Empty()
}

// Len returns the number of elements in the queue.
func (q *Typed) Len() int {
	return q.q.Len()
}

// String renders the queue front to back.
func (q *Typed) String() string {
	return q.q.String()
}
