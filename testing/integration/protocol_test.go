package integration

import (
	"slices"
	"testing"

	"github.com/zoobzio/collectz"
	testinghelpers "github.com/zoobzio/collectz/testing"
)

// TestProtocol_SinglePass drives a composite with several branches that each
// see every item and checks the producer was read exactly once per item.
func TestProtocol_SinglePass(t *testing.T) {
	src := testinghelpers.NewProducer(1, 2, 3, 4, 5)
	a := testinghelpers.NewRecorder[int]()
	b := testinghelpers.NewRecorder[int]()
	c := testinghelpers.NewRecorder[int]()

	collectz.CollectFrom[int](src, collectz.NewTee(a, collectz.NewThen(b, c)))

	if src.Pulled() != 5 {
		t.Errorf("expected 5 pulls, got %d", src.Pulled())
	}
	for name, r := range map[string]*testinghelpers.Recorder[int]{"a": a, "b": b, "c": c} {
		if len(r.Items()) != 5 {
			t.Errorf("%s: expected 5 items, got %d", name, len(r.Items()))
		}
		testinghelpers.AssertProtocol(t, r)
	}
}

func TestProtocol_ThenVisibility(t *testing.T) {
	out := collectz.Collect(slices.Values([]int{1, 3, 2}),
		collectz.NewThen(collectz.NewCount[int](), collectz.NewToSlice[int]()))

	if out.First != 3 {
		t.Errorf("expected length 3, got %d", out.First)
	}
	if !slices.Equal(out.Second, []int{1, 3, 2}) {
		t.Errorf("expected [1 3 2], got %v", out.Second)
	}

	left := testinghelpers.NewRecorder[int]().StopAfter(1)
	right := testinghelpers.NewRecorder[int]()
	collectz.Collect(slices.Values([]int{1, 3, 2}), collectz.NewThen(left, right))

	if !slices.Equal(left.Items(), []int{1}) || left.Borrowed() != 1 {
		t.Errorf("expected left to borrow only [1], got %v", left.Items())
	}
	if !slices.Equal(right.Items(), []int{1, 3, 2}) || right.Owned() != 3 {
		t.Errorf("expected right to own every item, got %v", right.Items())
	}
	testinghelpers.AssertProtocol(t, left)
	testinghelpers.AssertProtocol(t, right)
}

func TestProtocol_ChainExclusivity(t *testing.T) {
	first := testinghelpers.NewRecorder[int]().StopAfter(2)
	second := testinghelpers.NewRecorder[int]()

	collectz.Collect(slices.Values([]int{1, 2, 3, 4}), collectz.NewChain(first, second))

	if !slices.Equal(first.Items(), []int{1, 2}) {
		t.Errorf("expected first to see [1 2], got %v", first.Items())
	}
	if !slices.Equal(second.Items(), []int{3, 4}) {
		t.Errorf("expected second to see exactly [3 4], got %v", second.Items())
	}
	testinghelpers.AssertProtocol(t, first)
	testinghelpers.AssertProtocol(t, second)
}

func TestProtocol_TeeIndependence(t *testing.T) {
	items := []int{1, 3, 2}

	out := collectz.Collect(slices.Values(items), collectz.NewTee(collectz.NewSum[int](), collectz.NewMax[int]()))
	sum := collectz.Collect(slices.Values(items), collectz.NewSum[int]())
	maximum := collectz.Collect(slices.Values(items), collectz.NewMax[int]())

	if out.First != 6 || out.Second.String() != "Some(3)" {
		t.Errorf("expected (6, Some(3)), got (%d, %v)", out.First, out.Second)
	}
	if out.First != sum || out.Second != maximum {
		t.Errorf("expected tee branches to match solo runs (%d, %v), got (%d, %v)", sum, maximum, out.First, out.Second)
	}
}

// TestProtocol_FinishOnce builds a tree where several leaves stop early and
// checks every leaf is finished exactly once and never fed after Stop.
func TestProtocol_FinishOnce(t *testing.T) {
	r1 := testinghelpers.NewRecorder[int]().StopAfter(1)
	r2 := testinghelpers.NewRecorder[int]()
	r3 := testinghelpers.NewRecorder[int]().StopAfter(2)
	r4 := testinghelpers.NewRecorder[int]().StopAfter(1)
	r5 := testinghelpers.NewRecorder[int]()

	tree := collectz.NewTee(
		collectz.NewThen(r1, r2),
		collectz.NewChain(r3, collectz.NewFanOut[int, []int](r4, r5)),
	)
	collectz.CollectSlice([]int{1, 2, 3, 4, 5, 6}, tree)

	for i, r := range []*testinghelpers.Recorder[int]{r1, r2, r3, r4, r5} {
		if r.Finishes() != 1 || r.Violations() != 0 {
			t.Errorf("r%d: expected one Finish and no violations, got %d and %d", i+1, r.Finishes(), r.Violations())
		}
	}
	if !slices.Equal(r5.Items(), []int{3, 4, 5, 6}) {
		t.Errorf("expected r5 to see the chain remainder [3 4 5 6], got %v", r5.Items())
	}
}

func TestProtocol_ShortCircuit(t *testing.T) {
	tests := []struct {
		name  string
		build func() collectz.Collector[int, []int]
		pulls int
	}{
		{"leaf", func() collectz.Collector[int, []int] {
			return testinghelpers.NewRecorder[int]().StopAfter(3)
		}, 3},
		{"take", func() collectz.Collector[int, []int] {
			return collectz.NewTake(4, collectz.NewToSlice[int]())
		}, 4},
		{"take zero", func() collectz.Collector[int, []int] {
			return collectz.NewTake(0, collectz.NewToSlice[int]())
		}, 0},
		{"filtered", func() collectz.Collector[int, []int] {
			return collectz.NewFilter(testinghelpers.NewRecorder[int]().StopAfter(2), func(n int) bool { return n%3 == 0 })
		}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &testinghelpers.Naturals{}
			collectz.CollectFrom[int](src, tt.build())
			if src.Pulled() != tt.pulls {
				t.Errorf("expected %d pulls, got %d", tt.pulls, src.Pulled())
			}
		})
	}
}

func TestProtocol_ShortCircuitWaitsForAllBranches(t *testing.T) {
	src := &testinghelpers.Naturals{}
	collectz.CollectFrom[int](src, collectz.NewTee(
		testinghelpers.NewRecorder[int]().StopAfter(2),
		testinghelpers.NewRecorder[int]().StopAfter(4),
	))

	if src.Pulled() != 4 {
		t.Errorf("expected 4 pulls, got %d", src.Pulled())
	}
}

func TestProtocol_MapTransparency(t *testing.T) {
	f := func(x int) int { return x*x + 1 }
	items := []int{3, 1, 4, 1, 5}

	mapped := testinghelpers.NewRecorder[int]().StopAfter(3)
	direct := testinghelpers.NewRecorder[int]().StopAfter(3)
	viaMap := collectz.NewMap[int, int, []int](mapped, f)

	for _, x := range items {
		got := viaMap.Collect(x)
		want := direct.Collect(f(x))
		if got != want {
			t.Fatalf("item %d: expected signal %v, got %v", x, want, got)
		}
		if got == collectz.Stop {
			break
		}
	}
	if !slices.Equal(viaMap.Finish(), direct.Finish()) {
		t.Errorf("expected %v, got %v", direct.Items(), mapped.Items())
	}

	borrowed := testinghelpers.NewRecorder[int]()
	viaRef := collectz.NewMapRef[int, int, []int](borrowed, func(x *int) int { return f(*x) })
	collectz.CollectSlice(items, viaRef)
	if !slices.Equal(borrowed.Items(), []int{10, 2, 17, 2, 26}) {
		t.Errorf("expected [10 2 17 2 26], got %v", borrowed.Items())
	}
}
