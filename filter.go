package collectz

// Filter selectively delivers items to a collector based on a predicate.
// Only items for which the predicate returns true reach the collector;
// the rest are discarded.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Filter[T, R any] struct {
	lifecycle
	inner     branch[T, R]
	predicate func(T) bool
	name      string
}

// NewFilter creates a collector that delivers to c only the items for
// which predicate returns true. The predicate should be pure and
// deterministic for consistent and predictable results.
//
// When to use:
//   - Remove invalid or unwanted data before aggregation
//   - Apply business rules and validation logic
//   - Conditional aggregates inside a Tee or FanOut
//
// Example:
//
//	// Count positive numbers
//	positive := collectz.NewFilter(collectz.NewCount[int](), func(n int) bool {
//		return n > 0
//	})
//
//	// Keep valid orders
//	valid := collectz.NewFilter(collectz.NewToSlice[Order](), func(o Order) bool {
//		return o.ID != "" && o.Amount > 0
//	})
//
// Parameters:
//   - c: Collector receiving the matching items
//   - predicate: Function that returns true for items to keep, false to discard
func NewFilter[T, R any](c Collector[T, R], predicate func(T) bool) *Filter[T, R] {
	return &Filter[T, R]{
		inner:     newBranch(c),
		predicate: predicate,
		name:      "filter",
	}
}

// WithName sets a custom name for this collector.
// If not set, defaults to "filter".
func (f *Filter[T, R]) WithName(name string) *Filter[T, R] {
	f.name = name
	return f
}

func (f *Filter[T, R]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	if !f.predicate(item) {
		return f.inner.signal()
	}
	return f.inner.collect(item)
}

func (f *Filter[T, R]) CollectRef(item *T) Signal {
	f.checkOpen(f.name, "CollectRef")
	if !f.predicate(*item) {
		return f.inner.signal()
	}
	return f.inner.offer(item)
}

func (f *Filter[T, R]) StopHint() Signal {
	return f.inner.signal()
}

func (f *Filter[T, R]) Finish() R {
	f.finish(f.name)
	return f.inner.finish()
}

func (f *Filter[T, R]) Name() string {
	return f.name
}

// FilterMap transforms items and drops the ones the transformation rejects.
type FilterMap[T, U, R any] struct {
	lifecycle
	inner branch[U, R]
	fn    func(T) (U, bool)
	name  string
}

// NewFilterMap creates a collector that applies fn to every item and
// delivers the result to c only when fn reports ok.
//
// Example:
//
//	// Sum the numeric fields, ignoring malformed ones.
//	total := collectz.NewFilterMap(collectz.NewSum[int](), func(s string) (int, bool) {
//		n, err := strconv.Atoi(s)
//		return n, err == nil
//	})
func NewFilterMap[T, U, R any](c Collector[U, R], fn func(T) (U, bool)) *FilterMap[T, U, R] {
	return &FilterMap[T, U, R]{
		inner: newBranch(c),
		fn:    fn,
		name:  "filter-map",
	}
}

// WithName sets a custom name for this collector.
func (f *FilterMap[T, U, R]) WithName(name string) *FilterMap[T, U, R] {
	f.name = name
	return f
}

func (f *FilterMap[T, U, R]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	out, ok := f.fn(item)
	if !ok {
		return f.inner.signal()
	}
	return f.inner.collect(out)
}

func (f *FilterMap[T, U, R]) StopHint() Signal {
	return f.inner.signal()
}

func (f *FilterMap[T, U, R]) Finish() R {
	f.finish(f.name)
	return f.inner.finish()
}

func (f *FilterMap[T, U, R]) Name() string {
	return f.name
}
