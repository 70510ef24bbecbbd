package collectz

import (
	"slices"
	"strings"
	"testing"
)

func TestCountSumProduct(t *testing.T) {
	items := []int{1, 2, 3, 4}

	if n := Collect(slices.Values(items), NewCount[int]()); n != 4 {
		t.Errorf("expected count 4, got %d", n)
	}
	if s := Collect(slices.Values(items), NewSum[int]()); s != 10 {
		t.Errorf("expected sum 10, got %d", s)
	}
	if p := Collect(slices.Values(items), NewProduct[int]()); p != 24 {
		t.Errorf("expected product 24, got %d", p)
	}
}

func TestEmptyNumerics(t *testing.T) {
	empty := slices.Values([]float64{})

	if s := Collect(empty, NewSum[float64]()); s != 0 {
		t.Errorf("expected sum 0, got %v", s)
	}
	if p := Collect(empty, NewProduct[float64]()); p != 1 {
		t.Errorf("expected product 1, got %v", p)
	}
	if m := Collect(empty, NewMin[float64]()); m.IsSome() {
		t.Errorf("expected None, got %v", m)
	}
}

func TestMinMax(t *testing.T) {
	items := []int{4, -2, 9, 0}

	if m := Collect(slices.Values(items), NewMin[int]()); m.ValueOr(0) != -2 {
		t.Errorf("expected Some(-2), got %v", m)
	}
	if m := Collect(slices.Values(items), NewMax[int]()); m.ValueOr(0) != 9 {
		t.Errorf("expected Some(9), got %v", m)
	}

	mm := Collect(slices.Values(items), NewMinMax[int]())
	if mm.Min != -2 || mm.Max != 9 || mm.Count != 4 {
		t.Errorf("expected Min -2, Max 9, Count 4, got %v", mm)
	}
}

func TestMinByMaxByTies(t *testing.T) {
	type entry struct {
		Name string
		Len  int
	}
	byLen := func(a, b entry) int { return a.Len - b.Len }
	items := []entry{{"a", 2}, {"b", 1}, {"c", 2}, {"d", 1}}

	minimum, _ := Collect(slices.Values(items), NewMinBy(byLen)).Get()
	maximum, _ := Collect(slices.Values(items), NewMaxBy(byLen)).Get()

	if minimum.Name != "b" {
		t.Errorf("expected first of the smallest (b), got %s", minimum.Name)
	}
	if maximum.Name != "c" {
		t.Errorf("expected last of the largest (c), got %s", maximum.Name)
	}
}

func TestNumericsBorrow(t *testing.T) {
	words := []string{"pear", "fig", "banana"}
	longest := NewMaxBy(func(a, b string) int { return len(a) - len(b) })

	got := CollectSlice(words, longest)

	if v, _ := got.Get(); v != "banana" {
		t.Errorf("expected banana, got %v", got)
	}
	if !strings.Contains(NewMinMax[int]().Finish().String(), "Count: 0") {
		t.Error("expected empty MinMax to report zero count")
	}
}

func TestNumericNames(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{NewCount[int]().Name(), "count"},
		{NewSum[int]().Name(), "sum"},
		{NewProduct[int]().Name(), "product"},
		{NewMin[int]().Name(), "min"},
		{NewMax[int]().Name(), "max"},
		{NewMinBy(func(a, b int) int { return a - b }).Name(), "min-by"},
		{NewMinMax[int]().Name(), "min-max"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.got)
		}
	}
}
