package queue

import "container/heap"

// A LessThan implementation has a strict ordering.
type LessThan[T any] interface {
	LessThan(T) bool
}

// A Priority is a priority queue over values that order themselves. The zero
// value is valid. It wraps a [heap.Interface] over the package's ring deque
// and exposes methods with the same complexity as the [heap] package's
// functions.
//
// A Priority fails fast, returning [ErrEmpty] when an empty queue is peeked
// or popped. Values comparing equal under LessThan come back from Pop in
// unspecified relative order: binary heaps are not stable and no
// insertion-order tie-break is implied.
type Priority[T LessThan[T]] struct {
	p priority[T]
}

// Len returns the number of values in the queue.
func (p *Priority[T]) Len() int {
	return p.p.Len()
}

// Empty reports whether the queue holds no values.
func (p *Priority[T]) Empty() bool {
	return p.p.Len() == 0
}

// Push adds a value to the queue in O(log n).
func (p *Priority[T]) Push(x T) {
	heap.Push(&p.p, x)
}

// Peek returns the minimum value without removing it. It returns [ErrEmpty]
// if the queue is empty.
func (p *Priority[T]) Peek() (T, error) {
	x, ok := p.p.d.Front()
	if !ok {
		return x, ErrEmpty
	}
	return x, nil
}

// Pop removes and returns the minimum value in O(log n). It returns
// [ErrEmpty], leaving the queue unchanged, if the queue is empty.
func (p *Priority[T]) Pop() (T, error) {
	if p.p.Len() == 0 {
		return zero[T](), ErrEmpty
	}
	return heap.Pop(&p.p).(T), nil
}

// Fix reestablishes the queue's ordering if the i'th value's priority
// changes.
func (p *Priority[T]) Fix(i int) {
	heap.Fix(&p.p, i)
}

// Grow increases the queue's allocated buffer to hold up to `n` values. This
// does not place a limit on the size of the queue, but pre-allocates memory.
func (p *Priority[T]) Grow(n int) {
	p.p.d.Grow(n)
}

// String renders the queue in its internal heap layout, minimum first. Only
// the first element's position is meaningful.
func (p *Priority[T]) String() string {
	return p.p.d.String()
}

// priority implements [heap.Interface].
type priority[T LessThan[T]] struct {
	d Deque[T]
}

func (p *priority[T]) Len() int {
	return p.d.Len()
}

func (p *priority[T]) Less(i, j int) bool {
	return p.d.peekAt(i).LessThan(p.d.peekAt(j))
}

func (p *priority[T]) Swap(i, j int) {
	i = p.d.ringIndex(i)
	j = p.d.ringIndex(j)
	p.d.ring[i], p.d.ring[j] = p.d.ring[j], p.d.ring[i]
}

func (p *priority[T]) Push(x any) {
	p.d.PushBack(x.(T))
}

func (p *priority[T]) Pop() any {
	x, _ := p.d.PopBack()
	return x
}
