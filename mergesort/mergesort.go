package mergesort

import "cmp"

// Sort returns a new ascending slice with the elements of in.
// The input is never mutated; sorting an already-sorted input returns
// an equal slice. Stable.
// Complexity: O(n log n) time, O(n) auxiliary space
func Sort[T cmp.Ordered](in []T) []T {
	return SortFunc(in, cmp.Compare[T])
}

// SortFunc is Sort under a caller-supplied comparison: compare(a, b)
// must return a negative value when a sorts before b, zero when they
// are equal, positive otherwise. Ties keep input order (stable).
// Complexity: O(n log n) time, O(n) auxiliary space
func SortFunc[T any](in []T, compare func(a, b T) int) []T {
	out := make([]T, len(in))
	copy(out, in)
	if len(out) < 2 {
		return out
	}
	buf := make([]T, len(out))
	splitSort(out, buf, 0, len(out), compare)
	return out
}

// splitSort sorts out[lo:hi) recursively, using buf[lo:hi) as the
// merge buffer. Depth is ⌈log₂(hi-lo)⌉.
func splitSort[T any](out, buf []T, lo, hi int, compare func(a, b T) int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	splitSort(out, buf, lo, mid, compare)
	splitSort(out, buf, mid, hi, compare)
	merge(out, buf, lo, mid, hi, compare)
	copy(out[lo:hi], buf[lo:hi])
}

// merge combines the sorted runs out[lo:mid) and out[mid:hi) into
// buf[lo:hi). Ties take the left run first — the stability guarantee.
func merge[T any](out, buf []T, lo, mid, hi int, compare func(a, b T) int) {
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			buf[k] = out[j]
			j++
		case j >= hi:
			buf[k] = out[i]
			i++
		case compare(out[j], out[i]) < 0: // strictly less: right wins, equal keeps left
			buf[k] = out[j]
			j++
		default:
			buf[k] = out[i]
			i++
		}
	}
}

// SortInPlace sorts s ascending inside the caller's slice using
// iterative bottom-up merging: runs of width 1, 2, 4, … are merged
// until one run spans the whole slice. No recursion. Stable.
// Complexity: O(n log n) time, O(n) auxiliary space
func SortInPlace[T cmp.Ordered](s []T) {
	n := len(s)
	if n < 2 {
		return
	}
	buf := make([]T, n)
	compare := cmp.Compare[T]
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width
			hi := min(lo+2*width, n)
			merge(s, buf, lo, mid, hi, compare)
			copy(s[lo:hi], buf[lo:hi])
		}
	}
}
