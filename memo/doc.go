// Package memo provides generic memoization for top-down dynamic
// programming, plus the classic Fibonacci worked example in both DP
// styles.
//
// 🚀 What is memoization?
//
//	Caching the result of a deterministic computation keyed by its
//	input, so repeated calls with the same input return the stored
//	result instead of recomputing. Applied to a recursive definition
//	it collapses exponential call trees into one call per distinct
//	sub-problem: naive Fibonacci is O(φⁿ), memoized it is O(n).
//
// Two DP styles, mirrored by the two Fibonacci entry points:
//
//   - Top-down  — Memoize wraps a recursive function; each sub-problem
//     is solved on first demand and cached. O(n) time, O(n) cache and
//     recursion depth.
//   - Bottom-up — FibonacciIterative iterates from the base cases
//     upward keeping only two trailing values. O(n) time, O(1) space,
//     no recursion; prefer it for large n.
//
// The cache grows monotonically and never evicts by default — its
// lifetime is the wrapped function's lifetime. For long-lived
// memoizers over unbounded key spaces, NewLRUStore swaps in a bounded
// LRU store (hashicorp/golang-lru); eviction then trades recomputation
// for memory, without affecting correctness.
//
// Cache and the functions Memoize returns are not safe for concurrent
// use.
package memo
