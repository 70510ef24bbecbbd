package collectz

// Map transforms each item before handing it to a collector, changing the
// item type the collector accepts. The wrapped collector's result and Stop
// signaling are passed through unchanged.
type Map[T, U, R any] struct {
	lifecycle
	inner branch[U, R]
	fn    func(T) U
	name  string
}

// NewMap creates a collector that applies fn to every item and delivers the
// result to c. fn takes ownership of the item.
//
// When to use:
//   - Type conversions between data representations
//   - Extracting fields or computing derived values before aggregation
//   - Adapting a leaf to the item type of a larger tree
//
// Example:
//
//	// Sum the order totals.
//	totals := collectz.NewMap(collectz.NewSum[float64](), func(o Order) float64 {
//		return o.Total
//	})
//
//	// Collect upper-cased names.
//	upper := collectz.NewMap(collectz.NewToSlice[string](), strings.ToUpper)
//
// Parameters:
//   - c: Collector receiving the transformed items
//   - fn: Pure transformation function from input to output type
func NewMap[T, U, R any](c Collector[U, R], fn func(T) U) *Map[T, U, R] {
	return &Map[T, U, R]{
		inner: newBranch(c),
		fn:    fn,
		name:  "map",
	}
}

// WithName sets a custom name for this collector.
func (m *Map[T, U, R]) WithName(name string) *Map[T, U, R] {
	m.name = name
	return m
}

// Collect applies fn to item and delivers the result. Once the wrapped
// collector has stopped, fn is no longer called.
func (m *Map[T, U, R]) Collect(item T) Signal {
	m.checkOpen(m.name, "Collect")
	if m.inner.stopped {
		return Stop
	}
	return m.inner.collect(m.fn(item))
}

func (m *Map[T, U, R]) StopHint() Signal {
	return m.inner.signal()
}

func (m *Map[T, U, R]) Finish() R {
	m.finish(m.name)
	return m.inner.finish()
}

func (m *Map[T, U, R]) Name() string {
	return m.name
}

// MapRef projects each item through a function that only borrows it, then
// hands the projection to a collector. Because the item is never consumed,
// a MapRef is reference-capable: it can sit on the borrowing side of Then or
// Tee while a sibling branch keeps the original item.
type MapRef[T, U, R any] struct {
	lifecycle
	inner branch[U, R]
	fn    func(*T) U
	name  string
}

// NewMapRef creates a reference-capable collector that derives a value from
// each borrowed item and delivers it to c. fn must not retain the pointer.
//
// Example:
//
//	// Total length of the lines, keeping the lines themselves.
//	length := collectz.NewMapRef(collectz.NewSum[int](), func(s *string) int {
//		return len(*s)
//	})
//	c := collectz.NewThen(length, collectz.NewToSlice[string]())
//
// Parameters:
//   - c: Collector receiving the projections
//   - fn: Projection taking the item by reference
func NewMapRef[T, U, R any](c Collector[U, R], fn func(*T) U) *MapRef[T, U, R] {
	return &MapRef[T, U, R]{
		inner: newBranch(c),
		fn:    fn,
		name:  "map-ref",
	}
}

// WithName sets a custom name for this collector.
func (m *MapRef[T, U, R]) WithName(name string) *MapRef[T, U, R] {
	m.name = name
	return m
}

func (m *MapRef[T, U, R]) Collect(item T) Signal {
	m.checkOpen(m.name, "Collect")
	return m.project(&item)
}

func (m *MapRef[T, U, R]) CollectRef(item *T) Signal {
	m.checkOpen(m.name, "CollectRef")
	return m.project(item)
}

func (m *MapRef[T, U, R]) project(item *T) Signal {
	if m.inner.stopped {
		return Stop
	}
	return m.inner.collect(m.fn(item))
}

func (m *MapRef[T, U, R]) StopHint() Signal {
	return m.inner.signal()
}

func (m *MapRef[T, U, R]) Finish() R {
	m.finish(m.name)
	return m.inner.finish()
}

func (m *MapRef[T, U, R]) Name() string {
	return m.name
}

// MapOutput transforms the result of a collector when it is finished.
// Items and signals pass through untouched; borrowed items stay borrowed
// when the wrapped collector is reference-capable.
type MapOutput[T, R, S any] struct {
	lifecycle
	inner branch[T, R]
	fn    func(R) S
	name  string
}

// NewMapOutput creates a collector whose result is fn applied to c's result.
//
// Example:
//
//	// Average of the readings.
//	avg := collectz.NewMapOutput(
//		collectz.NewTee(collectz.NewSum[float64](), collectz.NewCount[float64]()),
//		func(p collectz.Pair[float64, int]) float64 {
//			if p.Second == 0 {
//				return 0
//			}
//			return p.First / float64(p.Second)
//		},
//	)
func NewMapOutput[T, R, S any](c Collector[T, R], fn func(R) S) *MapOutput[T, R, S] {
	return &MapOutput[T, R, S]{
		inner: newBranch(c),
		fn:    fn,
		name:  "map-output",
	}
}

// WithName sets a custom name for this collector.
func (m *MapOutput[T, R, S]) WithName(name string) *MapOutput[T, R, S] {
	m.name = name
	return m
}

func (m *MapOutput[T, R, S]) Collect(item T) Signal {
	m.checkOpen(m.name, "Collect")
	return m.inner.collect(item)
}

// CollectRef borrows item when the wrapped collector can, and copies it otherwise.
func (m *MapOutput[T, R, S]) CollectRef(item *T) Signal {
	m.checkOpen(m.name, "CollectRef")
	return m.inner.offer(item)
}

func (m *MapOutput[T, R, S]) StopHint() Signal {
	return m.inner.signal()
}

func (m *MapOutput[T, R, S]) Finish() S {
	m.finish(m.name)
	return m.fn(m.inner.finish())
}

func (m *MapOutput[T, R, S]) Name() string {
	return m.name
}

// Indexed pairs an item with its position in the stream.
type Indexed[T any] struct {
	Index int
	Item  T
}

// NewEnumerate creates a collector that tags each item with its zero-based
// position before handing it to c.
//
// Example:
//
//	// Remember where each error line was.
//	errs := collectz.NewEnumerate(collectz.NewFilter(
//		collectz.NewToSlice[collectz.Indexed[string]](),
//		func(l collectz.Indexed[string]) bool { return strings.Contains(l.Item, "ERROR") },
//	))
func NewEnumerate[T, R any](c Collector[Indexed[T], R]) *Map[T, Indexed[T], R] {
	next := 0
	return NewMap(c, func(item T) Indexed[T] {
		ix := Indexed[T]{Index: next, Item: item}
		next++
		return ix
	}).WithName("enumerate")
}
