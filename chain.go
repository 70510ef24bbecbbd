package collectz

// Chain hands the stream from one collector to another. Items go to the
// first collector until it reports Stop; every later item goes to the
// second. No item is seen by both.
type Chain[T, A, B any] struct {
	lifecycle
	first  branch[T, A]
	second branch[T, B]
	name   string
}

// NewChain creates a collector that feeds first until it stops and then
// continues with second. Consumption of the stream does not end when the
// first collector is satisfied; it falls through to the second.
//
// When to use:
//   - Splitting a stream into a head and a tail (Take(n) then ToSlice)
//   - Running a search and aggregating whatever follows the match
//   - Fallback accumulation after an early-stopping collector
//
// Example:
//
//	// Keep the first 3 readings, sum the rest.
//	c := collectz.NewChain(
//		collectz.NewTake(3, collectz.NewToSlice[int]()),
//		collectz.NewSum[int](),
//	)
//	out := collectz.Collect(readings, c)
//	fmt.Println(out.First, out.Second)
//
// The composite reports Stop only when the second collector reports Stop.
func NewChain[T, A, B any](first Collector[T, A], second Collector[T, B]) *Chain[T, A, B] {
	return &Chain[T, A, B]{
		first:  newBranch(first),
		second: newBranch(second),
		name:   "chain",
	}
}

// WithName sets a custom name for this collector.
func (c *Chain[T, A, B]) WithName(name string) *Chain[T, A, B] {
	c.name = name
	return c
}

// Collect delivers item to whichever branch is active.
func (c *Chain[T, A, B]) Collect(item T) Signal {
	c.checkOpen(c.name, "Collect")
	if c.first.stopped {
		return c.second.collect(item)
	}
	if c.first.collect(item).IsContinue() {
		return Continue
	}
	// Hand-off point: the next item belongs to the second branch.
	return c.second.signal()
}

// StopHint reports Stop once both branches have stopped.
func (c *Chain[T, A, B]) StopHint() Signal {
	return both(c.first.signal(), c.second.signal())
}

// Finish finishes both branches, first then second.
func (c *Chain[T, A, B]) Finish() Pair[A, B] {
	c.finish(c.name)
	return Pair[A, B]{First: c.first.finish(), Second: c.second.finish()}
}

func (c *Chain[T, A, B]) Name() string {
	return c.name
}
