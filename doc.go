// Package lvldsa is an in-memory playground of generic data structures
// and the classic algorithms that operate on them — from growable
// sequences and linked chains up to search trees, heaps, graph
// traversals, stable sorting and memoized recursion.
//
// 🚀 What is lvldsa?
//
//	A small, pure-Go toolkit that brings together:
//		• Sequence: growable array with amortized O(1) append
//		• List: singly linked chain with O(1) head & tail insert and in-place reversal
//		• Stack / Queue: LIFO & FIFO adapters over the two containers above
//		• BST: unbalanced binary search tree with lazy in-order traversal
//		• Heap: array-backed binary heap / priority queue (max or min)
//		• Graph: adjacency-list graph with lazy BFS & DFS walkers
//		• Mergesort: stable O(n log n) comparison sort, top-down and bottom-up
//		• Memo: generic memoization for top-down dynamic programming
//
// ✨ Why choose lvldsa?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Transparent costs – every operation documents its complexity
//   - Pure Go – no cgo, generics throughout, lazy iter.Seq traversals
//   - Extensible – add custom hooks (OnVisit, FilterNeighbor…) for custom logic
//
// Everything is organized under small topical packages:
//
//	sequence/  — growable ordered container, the backing store for Stack and Heap
//	list/      — singly linked list, the backing store for Queue
//	stack/     — LIFO adapter + the monotonic-stack NextGreater helper
//	queue/     — FIFO adapter
//	bst/       — binary search tree with iterative in-order iteration
//	heap/      — binary max/min heap with sift-up / sift-down repair
//	graph/     — adjacency-list Graph keyed by any comparable ID
//	bfs/       — breadth-first traversal over graph.Graph
//	dfs/       — depth-first traversal over graph.Graph
//	mergesort/ — stable merge sort into a fresh slice, or in-place bottom-up
//	memo/      — memo cache, Memoize wrapper, Fibonacci worked examples
//
// Every structure is single-threaded by design: no locks, no goroutines,
// no hidden global state. Wrap operations in your own synchronization if
// you mutate one structure from several goroutines.
//
//	go get github.com/katalvlaran/lvldsa
package lvldsa
