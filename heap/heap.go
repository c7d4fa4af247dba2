package heap

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/lvldsa/sequence"
)

// ErrUnderflow indicates Pop or Peek on an empty heap.
var ErrUnderflow = errors.New("heap: pop or peek on empty heap")

// Heap is a binary heap of T backed by a sequence.Sequence.
// before(a, b) reports whether a must sort nearer the root than b.
// The zero value is not usable; construct with NewMax, NewMin or NewFunc.
type Heap[T any] struct {
	items  *sequence.Sequence[T]
	before func(a, b T) bool
}

// NewMax creates an empty max-heap: Peek and Pop return the largest value.
// Complexity: O(1)
func NewMax[T cmp.Ordered]() *Heap[T] {
	return NewFunc[T](func(a, b T) bool { return a > b })
}

// NewMin creates an empty min-heap: Peek and Pop return the smallest value.
// Complexity: O(1)
func NewMin[T cmp.Ordered]() *Heap[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewFunc creates an empty heap ordered by before, which must be a
// strict ordering: before(a, b) true means a sorts nearer the root.
// Complexity: O(1)
func NewFunc[T any](before func(a, b T) bool) *Heap[T] {
	return &Heap[T]{items: sequence.New[T](), before: before}
}

// Len returns the number of elements.
// Complexity: O(1)
func (h *Heap[T]) Len() int { return h.items.Len() }

// Push inserts v, restoring the heap invariant by sifting up.
// Complexity: O(log n)
func (h *Heap[T]) Push(v T) {
	h.items.Append(v)
	h.siftUp(h.items.Len() - 1)
}

// Pop removes and returns the root (the extremum under the ordering):
// the root swaps with the last slot, the array shrinks by one, and the
// new root sifts down.
// Returns ErrUnderflow if the heap is empty.
// Complexity: O(log n)
func (h *Heap[T]) Pop() (T, error) {
	n := h.items.Len()
	if n == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	_ = h.items.Swap(0, n-1)
	v, _ := h.items.RemoveAt(n - 1)
	if n > 1 {
		h.siftDown(0)
	}
	return v, nil
}

// Peek returns the root without removing it.
// Returns ErrUnderflow if the heap is empty.
// Complexity: O(1)
func (h *Heap[T]) Peek() (T, error) {
	if h.items.Len() == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	v, _ := h.items.Get(0)
	return v, nil
}

// Values returns a copy of the backing array in level order.
// Only the root position is meaningful to callers; the rest is the
// internal complete-tree layout.
// Complexity: O(n)
func (h *Heap[T]) Values() []T {
	return h.items.Values()
}

// level-order index math for the complete binary tree.
func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// at reads index i. Indices passed here are maintained in-range by the
// heap invariant, so the sequence bounds check cannot fire.
func (h *Heap[T]) at(i int) T {
	v, _ := h.items.Get(i)
	return v
}

// siftUp bubbles the value at index i toward the root while it sorts
// before its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.before(h.at(i), h.at(p)) {
			return
		}
		_ = h.items.Swap(i, p)
		i = p
	}
}

// siftDown bubbles the value at index i toward the leaves, swapping
// with the foremost child until no child sorts before it.
func (h *Heap[T]) siftDown(i int) {
	n := h.items.Len()
	for {
		l, r := left(i), right(i)
		foremost := i
		if l < n && h.before(h.at(l), h.at(foremost)) {
			foremost = l
		}
		if r < n && h.before(h.at(r), h.at(foremost)) {
			foremost = r
		}
		if foremost == i {
			return
		}
		_ = h.items.Swap(i, foremost)
		i = foremost
	}
}
