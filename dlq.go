package collectz

// DeadLetter separates successful results from failed results into two
// distinct collectors. Successful values are unwrapped and delivered to the
// success collector, failures are delivered to the failure collector as
// their *StreamError.
//
// Stopped side handling:
// If either side reports Stop, DeadLetter keeps routing to the other side and
// drops the items destined for the stopped one. Dropped items are counted
// for monitoring. The composite reports Stop once both sides have stopped.
//
// Usage Examples:
//
//	// Total the parsed orders, keep the failures for a retry report.
//	dlq := collectz.NewDeadLetter(
//		collectz.NewMap(collectz.NewSum[float64](), func(o Order) float64 { return o.Total }),
//		collectz.NewToSlice[*collectz.StreamError[Order]](),
//	)
//	out := collectz.Collect(parsed, dlq)
//	total, failures := out.First, out.Second
//
//	// Or ignore failures if only successes matter
//	dlq := collectz.NewDeadLetter(collectz.NewCount[Order](), collectz.NewSink[*collectz.StreamError[Order]]())
type DeadLetter[T, A, B any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	success branch[T, A]
	failure branch[*StreamError[T], B]
	name    string
	dropped uint64
}

// NewDeadLetter creates a new DeadLetter collector.
func NewDeadLetter[T, A, B any](success Collector[T, A], failure Collector[*StreamError[T], B]) *DeadLetter[T, A, B] {
	return &DeadLetter[T, A, B]{
		success: newBranch(success),
		failure: newBranch(failure),
		name:    "dlq",
	}
}

// WithName sets a custom name for this collector.
func (d *DeadLetter[T, A, B]) WithName(name string) *DeadLetter[T, A, B] {
	d.name = name
	return d
}

func (d *DeadLetter[T, A, B]) Collect(result Result[T]) Signal {
	d.checkOpen(d.name, "Collect")
	if result.IsError() {
		if d.failure.stopped {
			d.dropped++
			return d.StopHint()
		}
		d.failure.collect(result.Error())
		return d.StopHint()
	}
	if d.success.stopped {
		d.dropped++
		return d.StopHint()
	}
	d.success.collect(result.Value())
	return d.StopHint()
}

// StopHint reports Stop once both sides have stopped.
func (d *DeadLetter[T, A, B]) StopHint() Signal {
	return both(d.success.signal(), d.failure.signal())
}

func (d *DeadLetter[T, A, B]) Finish() Pair[A, B] {
	d.finish(d.name)
	return Pair[A, B]{First: d.success.finish(), Second: d.failure.finish()}
}

// Name returns the collector name.
func (d *DeadLetter[T, A, B]) Name() string {
	return d.name
}

// DroppedCount returns the number of items routed to a side that had
// already stopped.
func (d *DeadLetter[T, A, B]) DroppedCount() uint64 {
	return d.dropped
}
