package queue

import "golang.org/x/exp/constraints"

// An Entry pairs a payload value with the priority that orders it.
type Entry[P constraints.Ordered, V any] struct {
	Priority P
	Value    V
}

// LessThan orders entries by priority alone; entries with equal priorities
// are unordered with respect to one another.
func (e Entry[P, V]) LessThan(f Entry[P, V]) bool {
	return e.Priority < f.Priority
}

// A Min is a minimum-first priority queue keyed by an ordered priority. The
// zero value is an empty queue ready for use.
//
// A Min fails fast: extracting from an empty queue returns [ErrEmpty]. Equal
// priorities extract in unspecified relative order. A Min is not safe for
// concurrent use; [Blocking] is the synchronised equivalent.
type Min[P constraints.Ordered, V any] struct {
	p Priority[Entry[P, V]]
}

// Insert adds a payload with the given priority in O(log n).
func (m *Min[P, V]) Insert(priority P, value V) {
	m.p.Push(Entry[P, V]{Priority: priority, Value: value})
}

// ExtractMin removes and returns an entry with the minimal priority among
// all currently held entries, in O(log n). It returns [ErrEmpty], leaving
// the queue unchanged, if the queue is empty.
func (m *Min[P, V]) ExtractMin() (Entry[P, V], error) {
	return m.p.Pop()
}

// PeekMin returns an entry with the minimal priority without removing it,
// reporting whether the queue was non-empty.
func (m *Min[P, V]) PeekMin() (Entry[P, V], bool) {
	e, err := m.p.Peek()
	return e, err == nil
}

// Len returns the number of entries in the queue.
func (m *Min[P, V]) Len() int {
	return m.p.Len()
}

// Empty reports whether the queue holds no entries.
func (m *Min[P, V]) Empty() bool {
	return m.p.Empty()
}

// Grow pre-allocates memory for up to `n` entries without limiting the size
// of the queue.
func (m *Min[P, V]) Grow(n int) {
	m.p.Grow(n)
}

// String renders the queue in its internal heap layout; see
// [Priority.String].
func (m *Min[P, V]) String() string {
	return m.p.String()
}
