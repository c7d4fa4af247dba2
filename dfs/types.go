// Package dfs types: tunable options, sentinel errors, and the
// traversal result.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize DFS execution.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is popped and visited. If it
	// returns an error, DFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor before pushing.
	FilterNeighbor func(curr, neighbor K) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex
	// in insertion order, covering disconnected components (forest
	// traversal). The start argument seeds the first tree.
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering, no-op visit hook
//   - single-source traversal.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnVisit:        func(K, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the DFS.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFullTraversal covers disconnected components: after the start's
// tree is exhausted, DFS restarts from every still-unvisited vertex in
// insertion order.
func WithFullTraversal[K comparable]() Option[K] {
	return func(o *Options[K]) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order: vertices visited, in visit (pop) sequence.
//   - Depth: vertex ID → depth at which it was first visited.
//   - Parent: vertex ID → predecessor in the DFS tree (absent for roots).
//   - SkippedNeighbors: how many neighbor edges FilterNeighbor rejected.
type Result[K comparable] struct {
	Order            []K
	Depth            map[K]int
	Parent           map[K]K
	SkippedNeighbors int
}
