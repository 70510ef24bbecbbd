package collectz

import (
	"slices"
	"testing"
)

// sequence returns a random source that replays values in order.
func sequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestSample(t *testing.T) {
	s := NewSample(0.5, NewToSlice[int]()).WithRandom(sequence(0.1, 0.9, 0.4, 0.5))

	got := Collect(slices.Values([]int{1, 2, 3, 4}), s)

	if !equalSlices(got, []int{1, 3}) {
		t.Errorf("expected [1 3], got %v", got)
	}
}

func TestSampleAll(t *testing.T) {
	got := Collect(slices.Values([]int{1, 2, 3}), NewSample(1, NewCount[int]()))
	if got != 3 {
		t.Errorf("expected every item with rate 1, got %d", got)
	}
}

func TestSampleZeroRatePullsNothing(t *testing.T) {
	src := &naturals{}
	got := CollectFrom(src, NewSample(0, NewCount[int]()))

	if got != 0 || src.pulled != 0 {
		t.Errorf("expected nothing collected or pulled, got %d and %d", got, src.pulled)
	}
}

func TestSampleZeroRateSignalsAgree(t *testing.T) {
	inner := newRefRecorder[int]()
	s := NewSample(-0.5, inner)

	item := 1
	if s.StopHint() != Stop || s.Collect(1) != Stop || s.CollectRef(&item) != Stop {
		t.Error("expected Stop from StopHint, Collect and CollectRef")
	}
	if inner.calls() != 0 {
		t.Errorf("expected nothing delivered, got %d", inner.calls())
	}
}

func TestSampleStopsWithCollector(t *testing.T) {
	src := &naturals{}
	CollectFrom(src, NewSample(1, NewTake(2, NewCount[int]())))

	if src.pulled != 2 {
		t.Errorf("expected 2 pulls, got %d", src.pulled)
	}
}

func TestSecureFloat64Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		if v := secureFloat64(); v < 0 || v >= 1 {
			t.Fatalf("expected value in [0, 1), got %v", v)
		}
	}
}
