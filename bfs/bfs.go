package bfs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvldsa/graph"
	"github.com/katalvlaran/lvldsa/queue"
)

// frame pairs a vertex ID with its BFS depth and its parent's ID.
type frame[K comparable] struct {
	id      K
	depth   int
	parent  K
	hasPrev bool // false for the start vertex, which has no parent
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph    *graph.Graph[K]
	opts     Options[K]
	frontier *queue.Queue[frame[K]]
	visited  map[K]bool
	res      *Result[K]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E)
func BFS[K comparable](g *graph.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
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
		graph:    g,
		opts:     o,
		frontier: queue.New[frame[K]](),
		visited:  make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed the frontier with the start vertex (no parent)
	w.enqueue(frame[K]{id: start})
	return w.res, w.loop()
}

// enqueue marks f.id visited at its depth, records its parent, calls
// OnEnqueue, and adds it to the frontier.
func (w *walker[K]) enqueue(f frame[K]) {
	w.visited[f.id] = true
	w.res.Depth[f.id] = f.depth
	if f.hasPrev {
		w.res.Parent[f.id] = f.parent
	}
	w.opts.OnEnqueue(f.id, f.depth)
	w.frontier.Enqueue(f)
}

// loop drains the frontier until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for w.frontier.Len() > 0 {
		// cancellation check (once per vertex)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f, err := w.frontier.Dequeue()
		if err != nil {
			return err // unreachable: Len() was checked
		}
		if err = w.visit(f); err != nil {
			return err
		}
		if err = w.enqueueNeighbors(f); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[K]) visit(f frame[K]) error {
	w.res.Order = append(w.res.Order, f.id)
	if err := w.opts.OnVisit(f.id, f.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", f.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in edge-insertion order.
func (w *walker[K]) enqueueNeighbors(f frame[K]) error {
	neighbors, err := w.graph.Neighbors(f.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", f.id, err)
	}
	nextDepth := f.depth + 1
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(f.id, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(frame[K]{id: nbr, depth: nextDepth, parent: f.id, hasPrev: true})
		}
	}
	return nil
}

// Walk returns the breadth-first visit order from start as a lazy,
// finite, non-restartable sequence. Vertices are marked visited at
// enqueue time, so each reachable vertex is yielded exactly once and
// memory stays proportional to the frontier plus the visited set.
// Complexity: O(V + E) to drain
func Walk[K comparable](g *graph.Graph[K], start K) (iter.Seq[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	return func(yield func(K) bool) {
		visited := map[K]bool{start: true}
		frontier := queue.New[K]()
		frontier.Enqueue(start)

		for frontier.Len() > 0 {
			cur, err := frontier.Dequeue()
			if errors.Is(err, queue.ErrUnderflow) {
				return // unreachable: Len() was checked
			}
			if !yield(cur) {
				return
			}
			neighbors, _ := g.Neighbors(cur)
			for _, nbr := range neighbors {
				if !visited[nbr] {
					visited[nbr] = true
					frontier.Enqueue(nbr)
				}
			}
		}
	}, nil
}
