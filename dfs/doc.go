// Package dfs provides depth-first traversal over a graph.Graph, as a
// lazy vertex sequence (Walk) or an eager result with depths and
// parent links (DFS).
//
// The traversal is iterative, driven by an explicit LIFO stack backed
// by stack.Stack — no recursion, so a long chain cannot exhaust the
// call stack.
//
// Visited policy: a vertex is marked visited and yielded when it is
// popped, not when it is pushed. The same vertex may therefore sit on
// the pending stack several times before its first (and only) visit;
// later pops of stale entries are discarded. This is the chosen policy
// throughout the package — marking at push time is also a valid DFS
// but yields a different visit order, and the two must not be mixed.
//
// Neighbors are pushed in reverse insertion order, so the
// first-inserted neighbor is explored first, mirroring the recursive
// formulation.
//
// Complexity: O(V + E) time; pending stack holds O(E) entries in the
// worst case under mark-at-pop.
package dfs
