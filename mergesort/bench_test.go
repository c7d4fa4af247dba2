package mergesort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvldsa/mergesort"
)

// BenchmarkSort measures the out-of-place top-down mode on 10k values.
func BenchmarkSort(b *testing.B) {
	in := rand.Perm(10_000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mergesort.Sort(in)
	}
}

// BenchmarkSortInPlace measures the bottom-up mode on 10k values.
func BenchmarkSortInPlace(b *testing.B) {
	in := rand.Perm(10_000)
	work := make([]int, len(in))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, in)
		mergesort.SortInPlace(work)
	}
}
