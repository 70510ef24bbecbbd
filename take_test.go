package collectz

import (
	"fmt"
	"slices"
	"testing"
)

func TestTake(t *testing.T) {
	src := &naturals{}
	out := CollectFrom(src, NewTake(3, NewToSlice[int]()))

	if !equalSlices(out, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", out)
	}
	if src.pulled != 3 {
		t.Errorf("expected 3 pulls, got %d", src.pulled)
	}
}

func TestTakeZero(t *testing.T) {
	take := NewTake(0, NewCount[int]())

	if take.StopHint() != Stop {
		t.Error("expected Take(0) to hint Stop")
	}
	if got := Collect(slices.Values([]int{1, 2}), take); got != 0 {
		t.Errorf("expected 0 items, got %d", got)
	}
}

func TestTakeNegative(t *testing.T) {
	if got := Collect(slices.Values([]int{1, 2}), NewTake(-1, NewCount[int]())); got != 0 {
		t.Errorf("expected 0 items, got %d", got)
	}
}

func TestTakeInnerStopsFirst(t *testing.T) {
	inner := newRecorder[int]().stopAfter(2)
	take := NewTake(5, inner)

	signals := []Signal{take.Collect(1), take.Collect(2), take.Collect(3)}

	want := []Signal{Continue, Stop, Stop}
	if !equalSlices(signals, want) {
		t.Errorf("expected %v, got %v", want, signals)
	}
	if inner.calls() != 2 {
		t.Errorf("expected 2 deliveries, got %d", inner.calls())
	}
}

func TestTakeBorrowed(t *testing.T) {
	inner := newRefRecorder[int]()
	out := CollectSlice([]int{1, 2, 3}, NewTake[int, []int](2, inner))

	if inner.borrowed != 2 || !equalSlices(out, []int{1, 2}) {
		t.Errorf("expected 2 borrowed [1 2], got %d and %v", inner.borrowed, out)
	}
}

func TestTakeWhile(t *testing.T) {
	src := &naturals{}
	c := NewTakeWhile(NewToSlice[int](), func(n int) bool { return n < 4 })

	out := CollectFrom(src, c)

	if !equalSlices(out, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", out)
	}
	if src.pulled != 4 {
		t.Errorf("expected 4 pulls, got %d", src.pulled)
	}
}

func TestTakeWhileStaysStopped(t *testing.T) {
	c := NewTakeWhile(NewToSlice[int](), func(n int) bool { return n%2 == 1 })

	c.Collect(1)
	c.Collect(2)
	if s := c.Collect(3); s != Stop {
		t.Errorf("expected Stop after predicate failed, got %v", s)
	}
	if out := c.Finish(); !equalSlices(out, []int{1}) {
		t.Errorf("expected [1], got %v", out)
	}
}

// Example demonstrates limiting results to first N items.
func ExampleTake() {
	results := func(yield func(string) bool) {
		for page := 1; page <= 3; page++ {
			for i := 1; i <= 10; i++ {
				if !yield(fmt.Sprintf("Page %d, Result %d", page, i)) {
					return
				}
			}
		}
	}

	top := Collect(results, NewTake(2, NewToSlice[string]()))
	for _, r := range top {
		fmt.Println(r)
	}
	// Output:
	// Page 1, Result 1
	// Page 1, Result 2
}
