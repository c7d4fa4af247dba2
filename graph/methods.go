package graph

// AddVertex inserts the vertex id if absent.
// Returns false if the vertex already exists (no-op).
// Complexity: O(1)
func (g *Graph[K]) AddVertex(id K) bool {
	if _, exists := g.adjacency[id]; exists {
		return false
	}
	g.adjacency[id] = newAdjacency[K]()
	g.order = append(g.order, id)
	return true
}

// AddEdge connects u and v, implicitly creating either vertex if it is
// unseen. For undirected graphs the mirror u-in-v's-adjacency is
// written in the same call. Duplicate edges are ignored (adjacency is
// a set); self-loops are allowed.
// Returns false if the edge was already present.
// Complexity: O(1)
func (g *Graph[K]) AddEdge(u, v K) bool {
	g.AddVertex(u)
	g.AddVertex(v)

	added := g.adjacency[u].add(v)
	if !g.directed && u != v {
		g.adjacency[v].add(u)
	}
	if added {
		g.edgeCount++
	}
	return added
}

// HasVertex reports whether id is in the graph.
// Complexity: O(1)
func (g *Graph[K]) HasVertex(id K) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether an edge u→v exists. For undirected graphs
// the direction of the query does not matter.
// A miss on either endpoint is a plain false, not an error.
// Complexity: O(1)
func (g *Graph[K]) HasEdge(u, v K) bool {
	adj, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = adj.set[v]
	return ok
}

// Neighbors returns the vertices adjacent to id, in edge-insertion
// order. Returns ErrVertexNotFound if id is absent.
// Complexity: O(k) for k neighbors (copy)
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]K, len(adj.order))
	copy(out, adj.order)
	return out, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V) copy
func (g *Graph[K]) Vertices() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)
	return out
}

// VertexCount returns |V|.
// Complexity: O(1)
func (g *Graph[K]) VertexCount() int { return len(g.order) }

// EdgeCount returns |E|. An undirected edge counts once.
// Complexity: O(1)
func (g *Graph[K]) EdgeCount() int { return g.edgeCount }

// Directed reports whether edges are one-way.
// Complexity: O(1)
func (g *Graph[K]) Directed() bool { return g.directed }
