package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvldsa/graph"
	"github.com/katalvlaran/lvldsa/stack"
)

// frame is one pending stack entry. Because visited is marked at pop,
// several frames for the same vertex may coexist on the stack; only
// the first popped one survives.
type frame[K comparable] struct {
	id      K
	depth   int
	parent  K
	hasPrev bool // false for tree roots
}

// walker encapsulates mutable DFS state.
type walker[K comparable] struct {
	graph   *graph.Graph[K]
	opts    Options[K]
	pending *stack.Stack[frame[K]]
	visited map[K]bool
	res     *Result[K]
}

// DFS performs depth-first search on g from start, applying any number
// of functional Options. With WithFullTraversal it continues into
// disconnected components after the start's tree is exhausted.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E)
func DFS[K comparable](g *graph.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		pending: stack.New[frame[K]](),
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	if err := w.explore(start); err != nil {
		return w.res, err
	}
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.visited[v] {
				continue
			}
			if err := w.explore(v); err != nil {
				return w.res, err
			}
		}
	}
	return w.res, nil
}

// explore drains one DFS tree rooted at root.
func (w *walker[K]) explore(root K) error {
	w.pending.Push(frame[K]{id: root})
	for w.pending.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f, err := w.pending.Pop()
		if err != nil {
			return err // unreachable: Len() was checked
		}
		// stale entry: the vertex was already visited via another frame
		if w.visited[f.id] {
			continue
		}
		if err = w.visit(f); err != nil {
			return err
		}
		w.pushNeighbors(f)
	}
	return nil
}

// visit marks f.id visited, records it, and calls OnVisit.
func (w *walker[K]) visit(f frame[K]) error {
	w.visited[f.id] = true
	w.res.Order = append(w.res.Order, f.id)
	w.res.Depth[f.id] = f.depth
	if f.hasPrev {
		w.res.Parent[f.id] = f.parent
	}
	if err := w.opts.OnVisit(f.id, f.depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %v: %w", f.id, err)
	}
	return nil
}

// pushNeighbors applies filtering and MaxDepth, then pushes unvisited
// neighbors in reverse insertion order so the first-inserted neighbor
// is popped first.
func (w *walker[K]) pushNeighbors(f frame[K]) {
	neighbors, err := w.graph.Neighbors(f.id)
	if err != nil {
		return // unreachable: f.id was visited, so it exists
	}
	nextDepth := f.depth + 1
	for i := len(neighbors) - 1; i >= 0; i-- {
		nbr := neighbors[i]
		if !w.opts.FilterNeighbor(f.id, nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.pending.Push(frame[K]{id: nbr, depth: nextDepth, parent: f.id, hasPrev: true})
		}
	}
}

// Walk returns the depth-first visit order from start as a lazy,
// finite, non-restartable sequence, under the same mark-at-pop policy
// as DFS.
// Complexity: O(V + E) to drain
func Walk[K comparable](g *graph.Graph[K], start K) (iter.Seq[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	return func(yield func(K) bool) {
		visited := map[K]bool{}
		pending := stack.New[K]()
		pending.Push(start)

		for pending.Len() > 0 {
			cur, err := pending.Pop()
			if err != nil {
				return // unreachable: Len() was checked
			}
			if visited[cur] {
				continue
			}
			visited[cur] = true
			if !yield(cur) {
				return
			}
			neighbors, _ := g.Neighbors(cur)
			for i := len(neighbors) - 1; i >= 0; i-- {
				if !visited[neighbors[i]] {
					pending.Push(neighbors[i])
				}
			}
		}
	}, nil
}
