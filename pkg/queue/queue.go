// Package queue provides a mutex guarded, unbounded FIFO.
package queue

import (
	"sync"

	"github.com/eapache/queue"
)

// Queue is safe for concurrent use. The lock is only held for the push or the
// pop itself, never while the caller uses the item.
type Queue[T any] struct {
	mu    sync.Mutex
	items *queue.Queue
}

func New[T any]() *Queue[T] {
	return &Queue[T]{items: queue.New()}
}

// Enqueue appends item at the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.mu.Lock()
	q.items.Add(item)
	q.mu.Unlock()
}

// TryDequeue removes the oldest item. It returns false when the queue is empty.
func (q *Queue[T]) TryDequeue() (T, bool) {
	q.mu.Lock()
	if q.items.Length() == 0 {
		q.mu.Unlock()
		var zero T
		return zero, false
	}
	item := q.items.Remove()
	q.mu.Unlock()

	// a nil interface stored as T would fail a plain assertion
	v, _ := item.(T)
	return v, true
}

// Size is the number of pending items. The value may be stale by the time the
// caller reads it and must only be used for diagnostics.
func (q *Queue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}
