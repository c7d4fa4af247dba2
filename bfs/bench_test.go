package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvldsa/bfs"
	"github.com/katalvlaran/lvldsa/graph"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10_000
	g := graph.New[int]()
	for i := 0; i < n; i++ {
		g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkWalk_BinaryTree drains the lazy walker over a complete
// binary tree of ~1k vertices.
func BenchmarkWalk_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices
	nodeCount := (1 << depth) - 1
	g := graph.New[int]()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		g.AddEdge(i, 2*i)
		g.AddEdge(i, 2*i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, _ := bfs.Walk(g, 1)
		count := 0
		for range seq {
			count++
		}
		if count != nodeCount {
			b.Fatalf("visited %d; want %d", count, nodeCount)
		}
	}
}
