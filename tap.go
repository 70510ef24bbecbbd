package collectz

// Tap executes a side effect function for each item while delivering items
// to a collector unchanged. It's used for logging, debugging, tracing, and
// any other observational operation that shouldn't modify the data flow.
//
// Tap observes without interfering: the side effect sees every item offered
// to it, in order, before the wrapped collector does, but has no effect on
// what the collector receives or on the signals it returns.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Tap[T, R any] struct {
	lifecycle
	inner branch[T, R]
	fn    func(T)
	name  string
}

// NewTap creates a collector that calls fn on each item and then delivers
// the item to c.
//
// When to use:
//   - Debug logging and tracing
//   - Audit trails
//   - Testing and verification
//
// Example:
//
//	// Trace every order that reaches the aggregate.
//	traced := collectz.NewTap(collectz.NewSum[float64](), func(v float64) {
//		log.Printf("adding %.2f", v)
//	}).WithName("total-trace")
//
// Parameters:
//   - c: Collector receiving the items
//   - fn: Side effect function that receives each item
func NewTap[T, R any](c Collector[T, R], fn func(T)) *Tap[T, R] {
	return &Tap[T, R]{
		inner: newBranch(c),
		fn:    fn,
		name:  "tap",
	}
}

// WithName sets a custom name for this collector.
// If not set, defaults to "tap".
func (t *Tap[T, R]) WithName(name string) *Tap[T, R] {
	t.name = name
	return t
}

func (t *Tap[T, R]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	t.fn(item)
	return t.inner.collect(item)
}

func (t *Tap[T, R]) CollectRef(item *T) Signal {
	t.checkOpen(t.name, "CollectRef")
	t.fn(*item)
	return t.inner.offer(item)
}

func (t *Tap[T, R]) StopHint() Signal {
	return t.inner.signal()
}

func (t *Tap[T, R]) Finish() R {
	t.finish(t.name)
	return t.inner.finish()
}

func (t *Tap[T, R]) Name() string {
	return t.name
}
