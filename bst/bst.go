package bst

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// ErrDuplicate indicates an InsertStrict of a value already present.
var ErrDuplicate = errors.New("bst: duplicate value")

// node is one tree node. A node owns its left and right subtrees
// exclusively; there are no parent back-references.
type node[T cmp.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree over any ordered element type.
// The zero value is not usable; construct with New.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New creates an empty Tree.
// Complexity: O(1)
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of stored values.
// Complexity: O(1)
func (t *Tree[T]) Len() int { return t.size }

// Insert attaches v at the ordered position found by iterative descent.
// Returns false, with the tree unchanged, if v is already present.
// Complexity: O(h)
func (t *Tree[T]) Insert(v T) bool {
	n := &node[T]{value: v}
	if t.root == nil {
		t.root = n
		t.size++
		return true
	}

	cur := t.root
	for {
		switch {
		case v < cur.value:
			if cur.left == nil {
				cur.left = n
				t.size++
				return true
			}
			cur = cur.left
		case v > cur.value:
			if cur.right == nil {
				cur.right = n
				t.size++
				return true
			}
			cur = cur.right
		default:
			return false
		}
	}
}

// InsertStrict is Insert for callers that treat a duplicate as a
// failure. Returns ErrDuplicate wrapping the offending value.
// Complexity: O(h)
func (t *Tree[T]) InsertStrict(v T) error {
	if !t.Insert(v) {
		return fmt.Errorf("%w: %v", ErrDuplicate, v)
	}
	return nil
}

// Contains reports whether v is present, by iterative descent.
// A miss is a normal outcome, not an error.
// Complexity: O(h)
func (t *Tree[T]) Contains(v T) bool {
	for cur := t.root; cur != nil; {
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest stored value (leftmost node).
// The second result is false when the tree is empty.
// Complexity: O(h)
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.value, true
}

// Max returns the largest stored value (rightmost node).
// The second result is false when the tree is empty.
// Complexity: O(h)
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, true
}

// InOrder returns a lazy iterator over the values in ascending order.
// Iterative left-node-right traversal: descend left pushing pending
// nodes, yield the top, then descend into its right subtree. The
// pending stack never exceeds the tree height.
// Do not mutate the tree while ranging over it.
// Complexity: O(n) to drain, O(h) auxiliary space
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		pending := make([]*node[T], 0, 16)
		cur := t.root
		for cur != nil || len(pending) > 0 {
			for cur != nil {
				pending = append(pending, cur)
				cur = cur.left
			}
			cur = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			if !yield(cur.value) {
				return
			}
			cur = cur.right
		}
	}
}

// Values drains InOrder into a fresh ascending slice.
// Complexity: O(n)
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)
	for v := range t.InOrder() {
		out = append(out, v)
	}
	return out
}
