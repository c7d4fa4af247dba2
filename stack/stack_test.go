package stack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/stack"
)

// TestLIFO covers the push/pop discipline and Underflow after draining.
func TestLIFO(t *testing.T) {
	require := require.New(t)
	s := stack.New[int]()

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(3, s.Len())

	v, err := s.Pop()
	require.NoError(err)
	require.Equal(3, v, "last pushed must pop first")

	v, err = s.Peek()
	require.NoError(err)
	require.Equal(2, v, "Peek must not remove")
	require.Equal(2, s.Len())

	v, err = s.Pop()
	require.NoError(err)
	require.Equal(2, v)
	v, err = s.Pop()
	require.NoError(err)
	require.Equal(1, v)

	_, err = s.Pop()
	require.ErrorIs(err, stack.ErrUnderflow, "pop on emptied stack must underflow")
	_, err = s.Peek()
	require.ErrorIs(err, stack.ErrUnderflow)
}

// TestNextGreater covers the worked monotonic-stack example.
func TestNextGreater(t *testing.T) {
	cases := []struct {
		name   string
		in     []int
		values []int
		index  []int
	}{
		{
			name:   "mixed",
			in:     []int{2, 1, 2, 4, 3},
			values: []int{4, 2, 4, stack.NoGreater, stack.NoGreater},
			index:  []int{3, 2, 3, stack.NoGreater, stack.NoGreater},
		},
		{
			name:   "strictly decreasing",
			in:     []int{5, 4, 3},
			values: []int{stack.NoGreater, stack.NoGreater, stack.NoGreater},
			index:  []int{stack.NoGreater, stack.NoGreater, stack.NoGreater},
		},
		{
			name:   "strictly increasing",
			in:     []int{1, 2, 3},
			values: []int{2, 3, stack.NoGreater},
			index:  []int{1, 2, stack.NoGreater},
		},
		{
			name:   "equal values are not greater",
			in:     []int{7, 7, 8},
			values: []int{8, 8, stack.NoGreater},
			index:  []int{2, 2, stack.NoGreater},
		},
		{
			name:   "empty",
			in:     nil,
			values: []int{},
			index:  []int{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tc.values, stack.NextGreater(tc.in))
			require.Equal(tc.index, stack.NextGreaterIndex(tc.in))
		})
	}
}

// TestNextGreaterDoesNotMutateInput pins the out-of-place contract.
func TestNextGreaterDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	_ = stack.NextGreater(in)
	require.Equal(t, []int{3, 1, 2}, in)
}
