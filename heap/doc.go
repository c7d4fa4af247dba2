// Package heap provides a generic array-backed binary heap, usable as
// a priority queue.
//
// The heap stores a complete binary tree level-order inside a
// sequence.Sequence: the children of index i sit at 2i+1 and 2i+2.
// Invariant: every parent sorts at-or-before both of its children under
// the heap's ordering (for a max-heap, value[i] ≥ value[child]).
//
// Repair operations:
//
//   - sift-up   — after Push appends at the last slot, the new value is
//     swapped with its parent while it sorts before it, bubbling toward
//     the root.
//   - sift-down — after Pop swaps the root with the last slot and
//     shrinks, the new root is swapped with its foremost child while
//     one exists that sorts before it, bubbling toward the leaves.
//
// Push and Pop are O(log n); Peek is O(1). Pop and Peek on an empty
// heap return ErrUnderflow.
//
// NewMax and NewMin cover ordered element types; NewFunc accepts an
// arbitrary "sorts before" predicate for everything else.
// Heap is not safe for concurrent mutation.
package heap
