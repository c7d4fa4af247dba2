package memo_test

import (
	"testing"

	"github.com/katalvlaran/lvldsa/memo"
)

// BenchmarkFibonacciTopDown includes building a fresh cache each run.
func BenchmarkFibonacciTopDown(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = memo.Fibonacci(90)
	}
}

// BenchmarkFibonacciBottomUp is the O(1)-space rolling variant.
func BenchmarkFibonacciBottomUp(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = memo.FibonacciIterative(90)
	}
}
