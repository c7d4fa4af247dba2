// This file declares the Graph type, its construction options, and the
// sentinel error shared by graph queries.
package graph

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex that is
// not in the graph.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// Option configures a Graph before creation.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected makes every edge one-way: AddEdge(u, v) inserts v into
// u's adjacency only. By default edges are undirected and mirrored.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// adjacency is one vertex's neighbor set plus the neighbor insertion
// order, kept so traversal output is deterministic.
type adjacency[K comparable] struct {
	order []K
	set   map[K]struct{}
}

func newAdjacency[K comparable]() *adjacency[K] {
	return &adjacency[K]{set: make(map[K]struct{})}
}

// add inserts id once, preserving first-insertion order.
func (a *adjacency[K]) add(id K) bool {
	if _, dup := a.set[id]; dup {
		return false
	}
	a.set[id] = struct{}{}
	a.order = append(a.order, id)
	return true
}

// Graph is an in-memory adjacency-list graph with vertex keys of any
// comparable type K.
// The zero value is not usable; construct with New.
type Graph[K comparable] struct {
	directed bool

	order     []K                 // vertex insertion order
	adjacency map[K]*adjacency[K] // vertex ID → neighbor set
	edgeCount int
}

// New creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1)
func New[K comparable](opts ...Option) *Graph[K] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Graph[K]{
		directed:  c.directed,
		adjacency: make(map[K]*adjacency[K]),
	}
}
