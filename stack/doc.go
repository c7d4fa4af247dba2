// Package stack provides a generic LIFO adapter over sequence.Sequence,
// plus the classic monotonic-stack "next greater element" helper.
//
// Push, Pop and Peek are O(1) (amortized for Push, which may trigger
// the sequence's geometric regrowth). Pop and Peek on an empty stack
// return ErrUnderflow; emptiness is never signalled by a zero value.
//
// NextGreater / NextGreaterIndex scan the input once, left to right,
// keeping a stack of indices whose values have not yet seen a strictly
// greater element. Each index is pushed and popped at most once, so the
// whole scan is O(n) amortized despite the nested-looking pop loop.
package stack
