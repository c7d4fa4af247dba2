package queue

import (
	"errors"

	"github.com/katalvlaran/lvldsa/list"
)

// ErrUnderflow indicates Dequeue or Peek on an empty queue.
var ErrUnderflow = errors.New("queue: dequeue or peek on empty queue")

// Queue is a FIFO container of T backed by a list.List.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	items *list.List[T]
}

// New creates an empty Queue.
// Complexity: O(1)
func New[T any]() *Queue[T] {
	return &Queue[T]{items: list.New[T]()}
}

// Len returns the number of elements.
// Complexity: O(1)
func (q *Queue[T]) Len() int { return q.items.Len() }

// Enqueue places v at the back of the queue.
// Complexity: O(1)
func (q *Queue[T]) Enqueue(v T) {
	q.items.AddLast(v)
}

// Dequeue removes and returns the front element.
// Returns ErrUnderflow if the queue is empty.
// Complexity: O(1)
func (q *Queue[T]) Dequeue() (T, error) {
	v, ok := q.items.RemoveFirst()
	if !ok {
		var zero T
		return zero, ErrUnderflow
	}
	return v, nil
}

// Peek returns the front element without removing it.
// Returns ErrUnderflow if the queue is empty.
// Complexity: O(1)
func (q *Queue[T]) Peek() (T, error) {
	v, ok := q.items.Front()
	if !ok {
		var zero T
		return zero, ErrUnderflow
	}
	return v, nil
}
