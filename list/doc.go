// Package list provides a generic singly linked list.
//
// Each node owns the next node, so the chain is strictly linear and
// cycle-free. A tail reference is maintained alongside the head, which
// upgrades AddLast from the naive O(n) walk to O(1).
//
// Operations and costs:
//
//   - AddFirst(v)    — O(1)
//   - AddLast(v)     — O(1) (tail reference)
//   - RemoveFirst()  — O(1)
//   - Front(), Back()— O(1)
//   - Search(match)  — O(n) walk
//   - Reverse()      — O(n) time, O(1) extra space, in-place
//
// Reverse uses the canonical three-pointer relink: it walks the chain
// once keeping prev/current/next, pointing each node back at its
// predecessor, then swaps the head and tail references. All values and
// the node count are preserved.
//
// List is the backing store for queue.Queue.
// It is not safe for concurrent mutation.
package list
