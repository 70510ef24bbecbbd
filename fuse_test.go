package collectz

import (
	"slices"
	"testing"
)

func TestFuse(t *testing.T) {
	r := newRecorder[int]().stopAfter(2)
	f := NewFuse(r)

	signals := []Signal{f.Collect(1), f.Collect(2), f.Collect(3), f.Collect(4)}

	want := []Signal{Continue, Stop, Stop, Stop}
	if !equalSlices(signals, want) {
		t.Errorf("expected %v, got %v", want, signals)
	}
	if r.calls() != 2 {
		t.Errorf("expected inner collector offered 2 items, got %d", r.calls())
	}
	if f.StopHint() != Stop {
		t.Error("expected fused collector to hint Stop")
	}
}

func TestFuseBorrowsWhenInnerCan(t *testing.T) {
	r := newRefRecorder[int]()
	f := NewFuse[int, []int](r)

	n := 5
	f.CollectRef(&n)
	f.Collect(6)

	if r.borrowed != 1 || r.owned != 1 {
		t.Errorf("expected 1 borrowed and 1 owned, got %d and %d", r.borrowed, r.owned)
	}
}

func TestFuseCopiesWhenInnerCannotBorrow(t *testing.T) {
	r := newRecorder[int]()
	f := NewFuse(r)

	out := CollectSlice([]int{1, 2}, f)

	if r.owned != 2 || !equalSlices(out, []int{1, 2}) {
		t.Errorf("expected 2 owned copies [1 2], got %d and %v", r.owned, out)
	}
}

func TestFuseName(t *testing.T) {
	f := NewFuse(NewSink[int]()).WithName("guard")
	Collect(slices.Values([]int{1}), f)
	if f.Name() != "guard" {
		t.Errorf("expected %q, got %q", "guard", f.Name())
	}
}
