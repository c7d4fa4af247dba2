// Package graph provides a generic adjacency-list graph keyed by any
// comparable vertex identifier.
//
// The Graph G = (V,E) is undirected by default (WithDirected switches
// every edge to one-way). Adjacency is a per-vertex set, so parallel
// edges collapse into one; self-loops are allowed. For undirected
// graphs the symmetry invariant — v in u's adjacency iff u in v's — is
// written at edge-insertion time, never reconstructed lazily.
//
// Determinism: alongside each adjacency set the graph keeps the
// insertion order of neighbors, and Vertices keeps global insertion
// order. Traversals over the same graph therefore visit same-depth
// siblings in the order their edges were added.
//
// Costs: AddVertex, AddEdge, HasVertex, HasEdge are O(1); Neighbors
// and Vertices are O(k) copies of the kept order.
//
// Unlike a general-purpose concurrent graph, this structure is
// single-threaded: no locks are taken, and concurrent mutation from
// several goroutines requires external synchronization.
//
// Traversals live in the sibling packages bfs and dfs.
package graph
