package queue

import "github.com/gammazero/deque"

// Queue is a first-in-first-out queue on top of a ring-buffer deque.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	items deque.Deque[T]
}

// New creates a queue holding the given items, oldest first.
func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.Enqueue(items...)
	return q
}

// Enqueue appends items to the back of the queue.
func (q *Queue[T]) Enqueue(items ...T) {
	q.items.Grow(len(items))
	for _, item := range items {
		q.items.PushBack(item)
	}
}

// Dequeue removes and returns the oldest item.
// Returns (zero, false) when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.items.PopFront(), true
}

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.items.Front(), true
}

// Size returns the number of queued items.
func (q *Queue[T]) Size() int { return q.items.Len() }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.items.Len() == 0 }

// IsNotEmpty reports whether the queue holds at least one item.
func (q *Queue[T]) IsNotEmpty() bool { return !q.IsEmpty() }

// Items returns a copy of the queued items, oldest first.
// Mutating the returned slice does not affect the queue.
func (q *Queue[T]) Items() []T {
	return q.items.AppendToSlice(make([]T, 0, q.items.Len()))
}

// Clear discards every queued item.
func (q *Queue[T]) Clear() { q.items.Clear() }
