// Package mergesort implements stable comparison sorting by merging.
//
// Algorithm outline (top-down):
//  1. A run of length ≤ 1 is already sorted (base case).
//  2. Split the run at the midpoint and sort each half.
//  3. Merge by repeatedly taking the lesser front of the two halves;
//     on ties the left half goes first, which makes the sort stable:
//     elements that compare equal keep their input order.
//
// Two modes, mirroring the usual time/space trade:
//
//   - Sort / SortFunc — out-of-place: the input is copied once and
//     never mutated; a fresh sorted slice is returned. Recursion depth
//     is ⌈log₂ n⌉, safe for any practical n.
//   - SortInPlace     — iterative bottom-up: merges runs of width
//     1, 2, 4, … directly inside the caller's slice, no recursion at
//     all.
//
// Both modes run in O(n log n) time with O(n) auxiliary buffer space.
package mergesort
