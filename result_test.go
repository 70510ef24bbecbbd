package collectz

import (
	"errors"
	"slices"
	"testing"
)

func TestNewSuccess(t *testing.T) {
	result := NewSuccess(42)

	if result.IsError() || !result.IsSuccess() {
		t.Error("expected a successful Result")
	}
	if result.Value() != 42 {
		t.Errorf("expected 42, got %d", result.Value())
	}
	if result.Error() != nil {
		t.Error("expected no error")
	}
}

func TestNewError(t *testing.T) {
	err := errors.New("bad input")
	result := NewError("row-3", err, "validator")

	if !result.IsError() || result.IsSuccess() {
		t.Error("expected an error Result")
	}
	streamErr := result.Error()
	if streamErr == nil {
		t.Fatal("expected a StreamError")
	}
	if streamErr.Item != "row-3" || streamErr.ProcessorName != "validator" {
		t.Errorf("expected row-3 from validator, got %q from %q", streamErr.Item, streamErr.ProcessorName)
	}
	if !errors.Is(streamErr, err) {
		t.Errorf("expected errors.Is to find %v", err)
	}
}

func TestResultValuePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Value to panic on an error Result")
		}
	}()

	NewError("item", errors.New("test"), "processor").Value()
}

func TestResultValueOr(t *testing.T) {
	if NewSuccess(42).ValueOr(999) != 42 {
		t.Error("expected the value of a success")
	}
	if NewError(42, errors.New("test"), "p").ValueOr(999) != 999 {
		t.Error("expected the fallback for an error")
	}
}

func TestResultMap(t *testing.T) {
	chained := NewSuccess(5).
		Map(func(x int) int { return x * 2 }).
		Map(func(x int) int { return x + 1 })
	if chained.Value() != 11 {
		t.Errorf("expected 11, got %d", chained.Value())
	}

	root := errors.New("chain breaker")
	failed := NewError(5, root, "test").Map(func(x int) int { return x * 100 })
	if !failed.IsError() || failed.Error().Item != 5 || !errors.Is(failed.Error(), root) {
		t.Error("expected the error to pass through Map unchanged")
	}
}

func TestResultMapError(t *testing.T) {
	relabel := func(se *StreamError[string]) *StreamError[string] {
		return NewStreamError(se.Item, se.Err, "ingest/"+se.ProcessorName)
	}

	mapped := NewError("item", errors.New("boom"), "parser").MapError(relabel)
	if mapped.Error().ProcessorName != "ingest/parser" {
		t.Errorf("expected %q, got %q", "ingest/parser", mapped.Error().ProcessorName)
	}

	untouched := NewSuccess("ok").MapError(relabel)
	if untouched.IsError() || untouched.Value() != "ok" {
		t.Error("expected a success to pass through MapError unchanged")
	}
}

func TestResultZeroValue(t *testing.T) {
	var result Result[int]
	if !result.IsSuccess() || result.Value() != 0 {
		t.Error("expected the zero Result to be a success holding 0")
	}
}

func TestResultsThroughDeadLetter(t *testing.T) {
	results := []Result[string]{
		NewSuccess("a"),
		NewError("b", nil, "p"),
		NewSuccess("c").Map(func(s string) string { return s + s }),
	}

	out := Collect(slices.Values(results), NewDeadLetter(NewToSlice[string](), NewCount[*StreamError[string]]()))

	if !equalSlices(out.First, []string{"a", "cc"}) || out.Second != 1 {
		t.Errorf("expected [a cc] and 1 failure, got %v and %d", out.First, out.Second)
	}
}
