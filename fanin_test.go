package collectz

import "testing"

func TestFanIn(t *testing.T) {
	a := &pullCounter[int]{items: []int{1, 2, 3}}
	b := &pullCounter[int]{items: []int{10}}
	c := &pullCounter[int]{}

	got := CollectFrom(NewFanIn[int](a, b, c), NewToSlice[int]())

	if !equalSlices(got, []int{1, 10, 2, 3}) {
		t.Errorf("expected round robin [1 10 2 3], got %v", got)
	}
}

func TestFanInStopsPulling(t *testing.T) {
	a := &pullCounter[int]{items: []int{1, 2, 3}}
	b := &pullCounter[int]{items: []int{4, 5, 6}}

	got := CollectFrom(NewFanIn[int](a, b), NewTake(3, NewToSlice[int]()))

	if !equalSlices(got, []int{1, 4, 2}) {
		t.Errorf("expected [1 4 2], got %v", got)
	}
	if a.pulled+b.pulled != 3 {
		t.Errorf("expected 3 pulls in total, got %d", a.pulled+b.pulled)
	}
}

func TestFanInLeavesCallerSlice(t *testing.T) {
	empty := &pullCounter[int]{}
	b := &pullCounter[int]{items: []int{4}}
	sources := []Producer[int]{empty, b}

	got := CollectFrom(NewFanIn(sources...), NewToSlice[int]())

	if !equalSlices(got, []int{4}) {
		t.Errorf("expected [4], got %v", got)
	}
	if sources[0] != Producer[int](empty) || sources[1] != Producer[int](b) {
		t.Error("expected the caller's sources to stay in place")
	}
}

func TestFanInEmpty(t *testing.T) {
	f := NewFanIn[string]()
	if _, ok := f.Next(); ok {
		t.Error("expected no items")
	}
	if f.Name() != "fanin" {
		t.Errorf("expected %q, got %q", "fanin", f.Name())
	}
}
