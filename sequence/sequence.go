package sequence

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange indicates an index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("sequence: index out of range")

// Sequence is a growable ordered container of T.
// The zero value is not usable; construct with New.
type Sequence[T any] struct {
	data []T // len(data) is the logical length, cap(data) the physical capacity
}

// Option configures a Sequence at construction time.
type Option func(capacity *int)

// WithCapacity pre-allocates room for n elements, avoiding early regrowth.
// Non-positive n is ignored.
func WithCapacity(n int) Option {
	return func(capacity *int) {
		if n > 0 {
			*capacity = n
		}
	}
}

// New creates an empty Sequence.
// Complexity: O(1), or O(capacity) allocation with WithCapacity.
func New[T any](opts ...Option) *Sequence[T] {
	var capacity int
	for _, opt := range opts {
		opt(&capacity)
	}
	return &Sequence[T]{data: make([]T, 0, capacity)}
}

// Len returns the logical number of elements.
// Complexity: O(1)
func (s *Sequence[T]) Len() int { return len(s.data) }

// Cap returns the current physical capacity.
// Complexity: O(1)
func (s *Sequence[T]) Cap() int { return cap(s.data) }

// Append adds v after the last element, growing the backing array
// by doubling when full.
// Complexity: amortized O(1)
func (s *Sequence[T]) Append(v T) {
	if len(s.data) == cap(s.data) {
		s.grow()
	}
	s.data = append(s.data, v)
}

// grow reallocates the backing array at 2× capacity (minimum 1)
// and copies the existing elements.
func (s *Sequence[T]) grow() {
	newCap := cap(s.data) * 2
	if newCap == 0 {
		newCap = 1
	}
	next := make([]T, len(s.data), newCap)
	copy(next, s.data)
	s.data = next
}

// Get returns the element at index i.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
// Complexity: O(1)
func (s *Sequence[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d outside [0,%d)", ErrIndexOutOfRange, i, len(s.data))
	}
	return s.data[i], nil
}

// Set overwrites the element at index i with v.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
// Complexity: O(1)
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s.data) {
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrIndexOutOfRange, i, len(s.data))
	}
	s.data[i] = v
	return nil
}

// Swap exchanges the elements at indices i and j.
// Returns ErrIndexOutOfRange if either index is outside [0, Len()).
// Complexity: O(1)
func (s *Sequence[T]) Swap(i, j int) error {
	n := len(s.data)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%w: swap(%d,%d) with length %d", ErrIndexOutOfRange, i, j, n)
	}
	s.data[i], s.data[j] = s.data[j], s.data[i]
	return nil
}

// RemoveAt deletes and returns the element at index i, shifting every
// later element one slot left. Removing the last element shifts nothing.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
// Complexity: O(n - i)
func (s *Sequence[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d outside [0,%d)", ErrIndexOutOfRange, i, len(s.data))
	}
	v := s.data[i]
	copy(s.data[i:], s.data[i+1:])
	// clear the vacated slot so the backing array does not pin a reference
	var zero T
	s.data[len(s.data)-1] = zero
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Values returns a copy of the elements in insertion order.
// Complexity: O(n)
func (s *Sequence[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// All returns a lazy iterator over the elements in insertion order.
// The iterator reads the live backing array; do not mutate the
// Sequence while ranging over it.
// Complexity: O(1) to create, O(n) to drain
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.data {
			if !yield(v) {
				return
			}
		}
	}
}
