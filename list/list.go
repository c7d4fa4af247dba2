package list

import "iter"

// node is one link in the chain. The node owns next exclusively;
// nothing else references it.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list of T with head and tail references.
// The zero value is not usable; construct with New.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty List.
// Complexity: O(1)
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes.
// Complexity: O(1)
func (l *List[T]) Len() int { return l.size }

// AddFirst prepends v as the new head.
// Complexity: O(1)
func (l *List[T]) AddFirst(v T) {
	n := &node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// AddLast appends v as the new tail.
// Complexity: O(1) thanks to the tail reference
func (l *List[T]) AddLast(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// RemoveFirst detaches and returns the head value.
// The second result is false when the list is empty.
// Complexity: O(1)
func (l *List[T]) RemoveFirst() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.size--
	return n.value, true
}

// Front returns the head value without removing it.
// The second result is false when the list is empty.
// Complexity: O(1)
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the tail value without removing it.
// The second result is false when the list is empty.
// Complexity: O(1)
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Reverse relinks the chain in place so the nodes appear in the
// opposite order. Three-pointer walk: prev trails current, next saves
// the rest of the chain before each relink.
// Complexity: O(n) time, O(1) extra space
func (l *List[T]) Reverse() {
	var prev *node[T]
	current := l.head
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	l.head, l.tail = l.tail, l.head
}

// Search walks the chain from the head and returns the first value for
// which match reports true. The second result is false on a miss.
// Complexity: O(n)
func (l *List[T]) Search(match func(T) bool) (T, bool) {
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// All returns a lazy iterator over the values from head to tail.
// Do not mutate the list while ranging over it.
// Complexity: O(1) to create, O(n) to drain
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the values from head to tail as a fresh slice.
// Complexity: O(n)
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
