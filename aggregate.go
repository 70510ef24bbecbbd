package collectz

// AggregateFunc combines multiple items into a single aggregated value.
// It receives the current aggregate state and a new item, returning the updated state.
type AggregateFunc[T, A any] func(state A, item T) A

// Fold performs stateful aggregation over every item of a stream.
// It maintains an aggregate state that is updated with each new item and
// returned on Finish.
//
// The Fold collector is essential for:
//   - Computing running statistics (sum, average, min, max).
//   - Custom aggregations (histograms, unique counts).
//   - Incremental computation over streams.
//
// Example:
//
//	// Running average.
//	avg := collectz.NewFold(collectz.Average{}, collectz.Avg[float64]())
//	out := collectz.Collect(readings, avg)
//	fmt.Printf("mean: %.2f over %d readings\n", out.Value(), out.Count)
//
//	// Histogram.
//	hist := collectz.NewFold(map[int]int{}, func(h map[int]int, n int) map[int]int {
//	    h[n/10]++
//	    return h
//	})
type Fold[T, A any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	state      A
	aggregator AggregateFunc[T, A]
	name       string
}

// NewFold creates a collector that folds items into initial with aggregator.
func NewFold[T, A any](initial A, aggregator AggregateFunc[T, A]) *Fold[T, A] {
	return &Fold[T, A]{
		state:      initial,
		aggregator: aggregator,
		name:       "fold",
	}
}

// WithName sets a custom name for this collector.
func (f *Fold[T, A]) WithName(name string) *Fold[T, A] {
	f.name = name
	return f
}

func (f *Fold[T, A]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	f.state = f.aggregator(f.state, item)
	return Continue
}

func (f *Fold[T, A]) Finish() A {
	f.finish(f.name)
	return f.state
}

// Name returns the collector name.
func (f *Fold[T, A]) Name() string {
	return f.name
}

// Reduce combines items pairwise, using the first item as the initial state.
// It returns None for an empty stream.
type Reduce[T any] struct {
	lifecycle
	acc  Option[T]
	fn   func(acc, item T) T
	name string
}

// NewReduce creates a collector that reduces items with fn.
//
// Example:
//
//	longest := collectz.NewReduce(func(a, b string) string {
//	    if len(b) > len(a) {
//	        return b
//	    }
//	    return a
//	})
func NewReduce[T any](fn func(acc, item T) T) *Reduce[T] {
	return &Reduce[T]{fn: fn, name: "reduce"}
}

// WithName sets a custom name for this collector.
func (r *Reduce[T]) WithName(name string) *Reduce[T] {
	r.name = name
	return r
}

func (r *Reduce[T]) Collect(item T) Signal {
	r.checkOpen(r.name, "Collect")
	if acc, ok := r.acc.Get(); ok {
		r.acc = Some(r.fn(acc, item))
	} else {
		r.acc = Some(item)
	}
	return Continue
}

func (r *Reduce[T]) Finish() Option[T] {
	r.finish(r.name)
	return r.acc
}

// Name returns the collector name.
func (r *Reduce[T]) Name() string {
	return r.name
}

// TryFold is a Fold whose aggregation can fail. The first error stops the
// collector: it reports Stop and its Result carries a StreamError whose Item
// is the state reached before the failing item.
type TryFold[T, A any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	state      A
	aggregator func(state A, item T) (A, error)
	failure    *StreamError[A]
	clock      Clock
	name       string
}

// NewTryFold creates a fallible fold.
//
// Example:
//
//	// Sum numeric fields, failing on the first malformed one.
//	total := collectz.NewTryFold(0, func(sum int, s string) (int, error) {
//	    n, err := strconv.Atoi(s)
//	    return sum + n, err
//	})
//	res := collectz.Collect(fields, total)
//	if res.IsError() {
//	    log.Printf("stopped: %v", res.Error())
//	}
func NewTryFold[T, A any](initial A, aggregator func(state A, item T) (A, error)) *TryFold[T, A] {
	return &TryFold[T, A]{
		state:      initial,
		aggregator: aggregator,
		clock:      RealClock,
		name:       "try-fold",
	}
}

// WithClock sets the clock used to timestamp the failure.
func (f *TryFold[T, A]) WithClock(clock Clock) *TryFold[T, A] {
	f.clock = clock
	return f
}

// WithName sets a custom name for this collector.
func (f *TryFold[T, A]) WithName(name string) *TryFold[T, A] {
	f.name = name
	return f
}

func (f *TryFold[T, A]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	if f.failure != nil {
		return Stop
	}
	next, err := f.aggregator(f.state, item)
	if err != nil {
		f.failure = newStreamErrorAt(f.state, err, f.name, f.clock)
		return Stop
	}
	f.state = next
	return Continue
}

func (f *TryFold[T, A]) StopHint() Signal {
	if f.failure != nil {
		return Stop
	}
	return Continue
}

func (f *TryFold[T, A]) Finish() Result[A] {
	f.finish(f.name)
	if f.failure != nil {
		return Result[A]{value: f.state, err: f.failure}
	}
	return NewSuccess(f.state)
}

// Name returns the collector name.
func (f *TryFold[T, A]) Name() string {
	return f.name
}

// Common aggregation functions

// Average maintains a running average.
type Average struct { //nolint:govet // logical field grouping preferred over memory optimization
	Sum   float64
	Count int
}

// Avg returns an aggregator that computes the average of numeric values.
func Avg[T Number]() AggregateFunc[T, Average] {
	return func(avg Average, item T) Average {
		avg.Sum += float64(item)
		avg.Count++
		return avg
	}
}

// Value returns the computed average.
func (a Average) Value() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.Sum / float64(a.Count)
}
