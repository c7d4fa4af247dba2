package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/heap"
)

// TestMaxHeapScenario covers the push/pop ordering contract.
func TestMaxHeapScenario(t *testing.T) {
	require := require.New(t)
	h := heap.NewMax[int]()

	h.Push(5)
	h.Push(2)
	h.Push(9)

	v, err := h.Pop()
	require.NoError(err)
	require.Equal(9, v, "first pop must return the maximum")

	v, err = h.Pop()
	require.NoError(err)
	require.Equal(5, v)

	v, err = h.Pop()
	require.NoError(err)
	require.Equal(2, v)

	_, err = h.Pop()
	require.ErrorIs(err, heap.ErrUnderflow)
}

// TestPeek verifies Peek reports the extremum without mutation.
func TestPeek(t *testing.T) {
	require := require.New(t)
	h := heap.NewMax[int]()

	_, err := h.Peek()
	require.ErrorIs(err, heap.ErrUnderflow, "peek on empty heap must underflow")

	h.Push(3)
	h.Push(7)
	h.Push(1)

	v, err := h.Peek()
	require.NoError(err)
	require.Equal(7, v)
	require.Equal(3, h.Len(), "Peek must not remove")
}

// TestMinHeap verifies the inverted ordering.
func TestMinHeap(t *testing.T) {
	require := require.New(t)
	h := heap.NewMin[int]()
	for _, v := range []int{5, 2, 9, 2, 7} {
		h.Push(v)
	}

	var drained []int
	for h.Len() > 0 {
		v, err := h.Pop()
		require.NoError(err)
		drained = append(drained, v)
	}
	require.Equal([]int{2, 2, 5, 7, 9}, drained, "min-heap must drain ascending")
}

// TestNewFunc orders arbitrary payloads by a custom predicate.
func TestNewFunc(t *testing.T) {
	require := require.New(t)

	type job struct {
		name     string
		priority int
	}
	h := heap.NewFunc[job](func(a, b job) bool { return a.priority > b.priority })
	h.Push(job{"flush", 1})
	h.Push(job{"alert", 9})
	h.Push(job{"compact", 4})

	v, err := h.Pop()
	require.NoError(err)
	require.Equal("alert", v.name)

	v, err = h.Pop()
	require.NoError(err)
	require.Equal("compact", v.name)
}

// TestHeapInvariant pins the parent-dominance invariant over the raw
// level-order layout after a burst of pushes.
func TestHeapInvariant(t *testing.T) {
	require := require.New(t)
	h := heap.NewMax[int]()
	for _, v := range []int{4, 18, 2, 9, 11, 7, 3, 25, 1} {
		h.Push(v)
	}

	arr := h.Values()
	for i := range arr {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(arr) {
				require.GreaterOrEqual(arr[i], arr[c],
					"parent value[%d]=%d must dominate child value[%d]=%d", i, arr[i], c, arr[c])
			}
		}
	}
}
