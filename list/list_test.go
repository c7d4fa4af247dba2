package list_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/lvldsa/list"
)

// TestAddFirstOrder verifies head insertion produces reverse order.
func TestAddFirstOrder(t *testing.T) {
	l := list.New[int]()
	for _, v := range []int{1, 2, 3} {
		l.AddFirst(v)
	}
	if got, want := l.Values(), []int{3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v; want %v", got, want)
	}
	if got := l.Len(); got != 3 {
		t.Errorf("Len = %d; want 3", got)
	}
}

// TestAddLastOrder verifies tail insertion preserves insertion order.
func TestAddLastOrder(t *testing.T) {
	l := list.New[string]()
	for _, v := range []string{"a", "b", "c"} {
		l.AddLast(v)
	}
	if got, want := l.Values(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v; want %v", got, want)
	}
	if front, ok := l.Front(); !ok || front != "a" {
		t.Errorf("Front = %q, %v; want \"a\", true", front, ok)
	}
	if back, ok := l.Back(); !ok || back != "c" {
		t.Errorf("Back = %q, %v; want \"c\", true", back, ok)
	}
}

// TestMixedInsert verifies head and tail inserts interleave correctly.
func TestMixedInsert(t *testing.T) {
	l := list.New[int]()
	l.AddLast(2)
	l.AddFirst(1)
	l.AddLast(3)
	if got, want := l.Values(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v; want %v", got, want)
	}
}

// TestRemoveFirst verifies FIFO removal and the empty signal.
func TestRemoveFirst(t *testing.T) {
	l := list.New[int]()
	l.AddLast(1)
	l.AddLast(2)

	v, ok := l.RemoveFirst()
	if !ok || v != 1 {
		t.Fatalf("RemoveFirst = %d, %v; want 1, true", v, ok)
	}
	v, ok = l.RemoveFirst()
	if !ok || v != 2 {
		t.Fatalf("RemoveFirst = %d, %v; want 2, true", v, ok)
	}
	if _, ok = l.RemoveFirst(); ok {
		t.Error("RemoveFirst on empty list: want ok == false")
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d; want 0", l.Len())
	}

	// list must be reusable after draining
	l.AddLast(7)
	if front, _ := l.Front(); front != 7 {
		t.Errorf("Front after refill = %d; want 7", front)
	}
	if back, _ := l.Back(); back != 7 {
		t.Errorf("Back after refill = %d; want 7", back)
	}
}

// TestReverse verifies the in-place three-pointer reversal.
func TestReverse(t *testing.T) {
	l := list.New[int]()
	for i := 1; i <= 5; i++ {
		l.AddLast(i)
	}
	l.Reverse()

	if got, want := l.Values(), []int{5, 4, 3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values after Reverse = %v; want %v", got, want)
	}
	if got := l.Len(); got != 5 {
		t.Errorf("Len after Reverse = %d; want 5", got)
	}
	if back, _ := l.Back(); back != 1 {
		t.Errorf("Back after Reverse = %d; want 1", back)
	}

	// tail must still accept appends after reversal
	l.AddLast(0)
	if got, want := l.Values(), []int{5, 4, 3, 2, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values after Reverse+AddLast = %v; want %v", got, want)
	}
}

// TestReverseEdgeCases covers empty and single-node lists.
func TestReverseEdgeCases(t *testing.T) {
	empty := list.New[int]()
	empty.Reverse()
	if empty.Len() != 0 {
		t.Errorf("empty Reverse: Len = %d; want 0", empty.Len())
	}

	single := list.New[int]()
	single.AddLast(42)
	single.Reverse()
	if got, want := single.Values(), []int{42}; !reflect.DeepEqual(got, want) {
		t.Errorf("single Reverse: Values = %v; want %v", got, want)
	}
}

// TestSearch verifies the linear walk and miss behavior.
func TestSearch(t *testing.T) {
	l := list.New[int]()
	for i := 1; i <= 4; i++ {
		l.AddLast(i * 10)
	}

	v, ok := l.Search(func(v int) bool { return v > 25 })
	if !ok || v != 30 {
		t.Errorf("Search(>25) = %d, %v; want 30, true", v, ok)
	}
	if _, ok = l.Search(func(v int) bool { return v > 100 }); ok {
		t.Error("Search(>100): want miss")
	}
}

// TestAll verifies lazy iteration and early break.
func TestAll(t *testing.T) {
	l := list.New[int]()
	for i := 1; i <= 4; i++ {
		l.AddLast(i)
	}

	var got []int
	for v := range l.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("All with break = %v; want %v", got, want)
	}
}
