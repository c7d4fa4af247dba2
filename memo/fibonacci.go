package memo

// Fibonacci returns the n-th Fibonacci number (F(1) = F(2) = 1),
// computed top-down through a Memoize-wrapped recursion: each F(k) is
// solved once and cached, collapsing the exponential call tree.
// n ≤ 0 returns 0. Values are exact up to n = 93 (uint64 overflow
// beyond that).
// Complexity: O(n) time and cache space, O(n) recursion depth
func Fibonacci(n int) uint64 {
	if n <= 0 {
		return 0
	}
	fib := Memoize(func(k int, recurse func(int) uint64) uint64 {
		if k <= 2 {
			return 1
		}
		return recurse(k-1) + recurse(k-2)
	})
	return fib(n)
}

// FibonacciIterative is the bottom-up variant: it iterates from the
// base cases upward keeping only the two trailing values, so no cache
// and no recursion are needed. Same results as Fibonacci for every n.
// Complexity: O(n) time, O(1) space
func FibonacciIterative(n int) uint64 {
	if n <= 0 {
		return 0
	}
	var prev, cur uint64 = 0, 1
	for i := 1; i < n; i++ {
		prev, cur = cur, prev+cur
	}
	return cur
}
