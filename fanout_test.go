package collectz

import (
	"fmt"
	"slices"
	"testing"
)

func TestFanOut(t *testing.T) {
	thresholds := []int{0, 5, 10}
	counters := make([]Collector[int, int], len(thresholds))
	for i, limit := range thresholds {
		counters[i] = NewFilter(NewCount[int](), func(v int) bool { return v > limit })
	}

	out := Collect(slices.Values([]int{1, 6, 12, 4, 11}), NewFanOut(counters...))

	want := []int{5, 3, 2}
	if !equalSlices(out, want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestFanOutBorrowingBranchesFirst(t *testing.T) {
	var log []string
	owned := newRecorder[int]().logTo(&log, "owned")
	borrowing := newRecorder[int]().logTo(&log, "ref")

	c := NewFanOut[int, []int](owned, refRecorder[int]{borrowing})
	c.Collect(1)

	want := []string{"ref:borrowed", "owned:owned"}
	if !equalSlices(log, want) {
		t.Errorf("expected %v, got %v", want, log)
	}
}

func TestFanOutStopsWhenAllStop(t *testing.T) {
	src := &naturals{}
	c := NewFanOut(
		Collector[int, []int](NewTake(1, NewToSlice[int]())),
		Collector[int, []int](NewTake(3, NewToSlice[int]())),
	)

	out := CollectFrom(src, c)

	if len(out[0]) != 1 || len(out[1]) != 3 {
		t.Errorf("expected branch lengths 1 and 3, got %d and %d", len(out[0]), len(out[1]))
	}
	if src.pulled != 3 {
		t.Errorf("expected 3 pulls, got %d", src.pulled)
	}
}

func TestFanOutEmpty(t *testing.T) {
	src := &naturals{}
	out := CollectFrom(src, NewFanOut[int, int]())

	if len(out) != 0 {
		t.Errorf("expected no results, got %v", out)
	}
	if src.pulled != 0 {
		t.Errorf("expected no pulls, got %d", src.pulled)
	}
}

func TestFanOutFinishesEachBranchOnce(t *testing.T) {
	a := newRecorder[int]().stopAfter(1)
	b := newRecorder[int]()
	c := NewFanOut[int, []int](a, b)

	Collect(slices.Values([]int{1, 2, 3}), c)

	if a.finishes != 1 || b.finishes != 1 {
		t.Errorf("expected one Finish per branch, got %d and %d", a.finishes, b.finishes)
	}
	if a.calls() != 1 {
		t.Errorf("expected stopped branch offered 1 item, got %d", a.calls())
	}
}

// Example demonstrates several aggregates of the same shape.
func ExampleFanOut() {
	c := NewFanOut[int, int](NewSum[int](), NewProduct[int](), NewCount[int]())
	out := Collect(slices.Values([]int{1, 2, 3, 4}), c)

	fmt.Println(out)
	// Output: [10 24 4]
}
