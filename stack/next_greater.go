package stack

// NoGreater is the sentinel reported for positions whose next strictly
// greater element does not exist.
const NoGreater = -1

// NextGreater returns, for each position of values, the value of the
// next strictly greater element to its right, or NoGreater if none
// exists.
//
// Monotonic-stack scan: indices of values still waiting for a greater
// element sit on the stack in decreasing value order. Each new value
// resolves every waiting index with a smaller value, then joins the
// stack itself. Every index is pushed and popped at most once.
// Complexity: amortized O(n) time, O(n) space
func NextGreater(values []int) []int {
	out := NextGreaterIndex(values)
	for i, j := range out {
		if j != NoGreater {
			out[i] = values[j]
		}
	}
	return out
}

// NextGreaterIndex is NextGreater reporting indices instead of values:
// out[i] is the index of the next strictly greater element after i, or
// NoGreater if none exists.
// Complexity: amortized O(n) time, O(n) space
func NextGreaterIndex(values []int) []int {
	out := make([]int, len(values))
	for i := range out {
		out[i] = NoGreater
	}

	pending := New[int]() // indices with no greater element seen yet
	for i, v := range values {
		for pending.Len() > 0 {
			top, _ := pending.Peek()
			if values[top] >= v {
				break
			}
			out[top] = i
			_, _ = pending.Pop()
		}
		pending.Push(i)
	}
	return out
}
