// Package sequence provides a generic, growable ordered container with
// O(1) indexed access and amortized O(1) append.
//
// A Sequence[T] keeps its elements in insertion order inside a single
// contiguous backing array. When an Append exhausts the physical
// capacity, the backing array is reallocated at twice its previous size
// (minimum 1) and the elements are copied over. Doubling guarantees
// that across any run of n appends the total copy work is O(n), so the
// amortized cost per append is O(1) even though an individual append
// occasionally pays for a full copy.
//
// Operations and costs:
//
//   - Append(v)      — amortized O(1)
//   - Get(i), Set(i) — O(1), ErrIndexOutOfRange outside [0, Len())
//   - Swap(i, j)     — O(1)
//   - RemoveAt(i)    — O(n), shifts the tail one slot left
//   - Values()       — O(n) copy; All() — lazy iteration, no copy
//
// Sequence is the backing store for stack.Stack and heap.Heap.
// It is not safe for concurrent mutation.
package sequence
