// Package bst provides a generic, unbalanced binary search tree.
//
// Ordering invariant: for every node n, all values in n's left subtree
// are < n.value and all values in n's right subtree are > n.value.
//
// Duplicate policy: duplicates are rejected. Insert returns false and
// leaves the tree unchanged when the value is already present;
// InsertStrict reports the same condition as ErrDuplicate for callers
// that treat it as a failure.
//
// Insert, Contains, Min and Max use iterative descent, costing O(h)
// where h is the tree height. No rebalancing is performed: h ranges
// from O(log n) for shuffled input down to O(n) for sorted-order
// insertion. Callers needing balanced guarantees should use a
// different structure.
//
// InOrder yields the values in ascending order as a lazy, finite,
// non-restartable iterator. The traversal is iterative, driven by an
// explicit node stack of at most h entries, so even a fully degenerate
// tree cannot exhaust the call stack.
//
// Tree is not safe for concurrent mutation.
package bst
