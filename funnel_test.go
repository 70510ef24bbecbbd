package collectz

import (
	"slices"
	"strings"
	"testing"
)

func TestFunnel(t *testing.T) {
	upper := NewMap(NewToSlice[string](), func(s *string) string { return strings.ToUpper(*s) })
	var c Collector[string, []string] = NewFunnel(upper)

	if _, ok := c.(RefCollector[string, []string]); !ok {
		t.Fatal("expected Funnel to accept borrowed items")
	}

	out := CollectSlice([]string{"a", "b"}, c)
	if !equalSlices(out, []string{"A", "B"}) {
		t.Errorf("expected [A B], got %v", out)
	}
}

func TestFunnelOnBorrowingSideOfThen(t *testing.T) {
	lengths := NewFunnel(NewMap(NewSum[int](), func(s *string) int { return len(*s) }))
	out := Collect(slices.Values([]string{"ab", "c"}), NewThen(lengths, NewToSlice[string]()))

	if out.First != 3 || !equalSlices(out.Second, []string{"ab", "c"}) {
		t.Errorf("expected (3, [ab c]), got (%d, %v)", out.First, out.Second)
	}
}

func TestFunnelStopsFeedingAfterStop(t *testing.T) {
	inner := newRecorder[*int]().stopAfter(1)
	f := NewFunnel(inner)

	a, b := 1, 2
	signals := []Signal{f.CollectRef(&a), f.CollectRef(&b), f.Collect(3)}

	if !equalSlices(signals, []Signal{Stop, Stop, Stop}) {
		t.Errorf("expected [stop stop stop], got %v", signals)
	}
	if inner.calls() != 1 {
		t.Errorf("expected 1 delivery, got %d", inner.calls())
	}
	if f.StopHint() != Stop {
		t.Error("expected Stop hint")
	}
}

func TestCloningStopsCloningAfterStop(t *testing.T) {
	clones := 0
	inner := newRecorder[[]int]().stopAfter(1)
	c := NewCloning(inner, func(s []int) []int {
		clones++
		return slices.Clone(s)
	})

	items := [][]int{{1}, {2}, {3}}
	for i := range items {
		c.CollectRef(&items[i])
	}

	if clones != 1 || inner.calls() != 1 {
		t.Errorf("expected 1 clone and 1 delivery, got %d and %d", clones, inner.calls())
	}
	if c.Collect([]int{4}) != Stop {
		t.Error("expected owned items to be refused after Stop")
	}
	if inner.calls() != 1 {
		t.Errorf("expected no delivery after Stop, got %d", inner.calls())
	}
}

func TestCloning(t *testing.T) {
	clones := 0
	keep := NewCloning(NewToSlice[[]int](), func(s []int) []int {
		clones++
		return slices.Clone(s)
	})

	items := [][]int{{1, 2}, {3}}
	out := Collect(slices.Values(items), NewThen(keep, NewCount[[]int]()))

	if clones != 2 {
		t.Errorf("expected 2 clones, got %d", clones)
	}
	items[0][0] = 99
	if out.First[0][0] != 1 {
		t.Error("expected kept items to be independent copies")
	}
	if out.Second != 2 {
		t.Errorf("expected count 2, got %d", out.Second)
	}
}

func TestCloningPassesOwnedItemsThrough(t *testing.T) {
	clones := 0
	c := NewCloning(NewToSlice[int](), func(n int) int {
		clones++
		return n
	})

	c.Collect(1)
	if clones != 0 {
		t.Errorf("expected no clone for an owned item, got %d", clones)
	}
}
