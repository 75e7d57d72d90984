package queue

import (
	"context"
	"sync"

	"github.com/ava-labs/avalanchego/utils/lock"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// A Blocking queue has the same ordering contract as [Min] but is safe for
// use by any number of concurrent producers and consumers. All operations
// are serialised internally; no lock is exposed to callers.
//
// Unlike [Min], extraction from an empty queue does not fail: ExtractMin
// blocks until a producer inserts an entry or the caller's context ends.
// Callers select a bounded wait with [context.WithTimeout].
type Blocking[P constraints.Ordered, V any] struct {
	cond *lock.Cond
	min  Min[P, V] // guarded by cond.L
	log  logging.Logger
}

// NewBlocking constructs an empty [Blocking] queue. A nil `log` is replaced
// with a [logging.NoLog].
func NewBlocking[P constraints.Ordered, V any](log logging.Logger) *Blocking[P, V] {
	if log == nil {
		log = logging.NoLog{}
	}
	return &Blocking[P, V]{
		cond: lock.NewCond(&sync.Mutex{}),
		log:  log,
	}
}

// Insert adds a payload with the given priority, waking blocked extractors.
func (b *Blocking[P, V]) Insert(priority P, value V) {
	b.cond.L.Lock()
	b.min.Insert(priority, value)
	n := b.min.Len()
	b.cond.L.Unlock()
	b.cond.Broadcast()

	b.log.Debug("inserted into blocking queue",
		zap.Any("priority", priority),
		zap.Int("len", n),
	)
}

// ExtractMin removes and returns an entry with the minimal priority,
// blocking while the queue is empty. If `ctx` is cancelled or its deadline
// passes before an entry becomes available then the context's cause is
// returned, typically [context.DeadlineExceeded] for a timed-out bounded
// wait. ExtractMin never returns [ErrEmpty].
func (b *Blocking[P, V]) ExtractMin(ctx context.Context) (Entry[P, V], error) {
	b.cond.L.Lock()
	defer b.cond.L.Unlock()

	for b.min.Empty() {
		if b.cond.Wait(ctx) != nil {
			err := context.Cause(ctx)
			b.log.Debug("wait for entry abandoned", zap.Error(err))
			return zero[Entry[P, V]](), err
		}
	}
	return b.min.ExtractMin()
}

// TryExtractMin removes and returns an entry with the minimal priority,
// reporting whether the queue was non-empty. It never blocks.
func (b *Blocking[P, V]) TryExtractMin() (Entry[P, V], bool) {
	b.cond.L.Lock()
	defer b.cond.L.Unlock()

	e, err := b.min.ExtractMin()
	return e, err == nil
}

// Len returns the number of entries in the queue. By the time Len returns,
// concurrent producers and consumers may already have changed it.
func (b *Blocking[P, V]) Len() int {
	b.cond.L.Lock()
	defer b.cond.L.Unlock()
	return b.min.Len()
}
