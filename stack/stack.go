package stack

import (
	"errors"

	"github.com/katalvlaran/lvldsa/sequence"
)

// ErrUnderflow indicates Pop or Peek on an empty stack.
var ErrUnderflow = errors.New("stack: pop or peek on empty stack")

// Stack is a LIFO container of T backed by a sequence.Sequence.
// The zero value is not usable; construct with New.
type Stack[T any] struct {
	items *sequence.Sequence[T]
}

// New creates an empty Stack.
// Complexity: O(1)
func New[T any]() *Stack[T] {
	return &Stack[T]{items: sequence.New[T]()}
}

// Len returns the number of elements.
// Complexity: O(1)
func (s *Stack[T]) Len() int { return s.items.Len() }

// Push places v on top of the stack.
// Complexity: amortized O(1)
func (s *Stack[T]) Push(v T) {
	s.items.Append(v)
}

// Pop removes and returns the top element.
// Returns ErrUnderflow if the stack is empty.
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, error) {
	n := s.items.Len()
	if n == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	// removing the last index never shifts
	v, _ := s.items.RemoveAt(n - 1)
	return v, nil
}

// Peek returns the top element without removing it.
// Returns ErrUnderflow if the stack is empty.
// Complexity: O(1)
func (s *Stack[T]) Peek() (T, error) {
	n := s.items.Len()
	if n == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	v, _ := s.items.Get(n - 1)
	return v, nil
}
