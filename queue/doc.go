// Package queue provides a generic FIFO adapter over list.List.
//
// The linked backing store gives true O(1) Enqueue (tail insert) and
// Dequeue (head removal) with no periodic compaction. Dequeue and Peek
// on an empty queue return ErrUnderflow.
package queue
