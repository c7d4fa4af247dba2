// Package bfs provides breadth-first traversal over a graph.Graph,
// as a lazy vertex sequence (Walk) or an eager result with distances
// and parent links (BFS).
//
// BFS explores vertices in increasing hop distance from a start
// vertex, using a FIFO frontier backed by queue.Queue. A vertex is
// marked visited at enqueue time, not at dequeue time, so each vertex
// is enqueued at most once and frontier memory stays O(V). Same-depth
// siblings are visited in edge-insertion order.
//
// Complexity: O(V + E) time; O(V) frontier and visited-set memory.
package bfs
