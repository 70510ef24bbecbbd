package collectz

// Take limits a collector to the first n items it is offered.
type Take[T, R any] struct {
	lifecycle
	inner     branch[T, R]
	remaining int
	name      string
}

// NewTake creates a collector that delivers at most n items to c and reports
// Stop as soon as the n-th item has been delivered. NewTake(0, c) reports
// Stop before consuming anything.
//
// When to use:
//   - Limit processing to a sample of data
//   - Head of a stream, usually as the first branch of Chain
//   - Early termination of infinite streams
//
// Example:
//
//	// Process only the first 100 events.
//	first := collectz.Collect(events, collectz.NewTake(100, collectz.NewToSlice[Event]()))
//
//	// Top results, then count the rest.
//	c := collectz.NewChain(
//		collectz.NewTake(10, collectz.NewToSlice[SearchResult]()),
//		collectz.NewCount[SearchResult](),
//	)
func NewTake[T, R any](n int, c Collector[T, R]) *Take[T, R] {
	if n < 0 {
		n = 0
	}
	return &Take[T, R]{
		inner:     newBranch(c),
		remaining: n,
		name:      "take",
	}
}

// WithName sets a custom name for this collector.
func (t *Take[T, R]) WithName(name string) *Take[T, R] {
	t.name = name
	return t
}

func (t *Take[T, R]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	if t.remaining == 0 {
		return Stop
	}
	t.remaining--
	return t.after(t.inner.collect(item))
}

func (t *Take[T, R]) CollectRef(item *T) Signal {
	t.checkOpen(t.name, "CollectRef")
	if t.remaining == 0 {
		return Stop
	}
	t.remaining--
	return t.after(t.inner.offer(item))
}

// after reports Stop once the n-th item has been delivered.
func (t *Take[T, R]) after(s Signal) Signal {
	if t.remaining == 0 {
		return Stop
	}
	return s
}

// StopHint reports Stop once n items have been taken or c has stopped.
func (t *Take[T, R]) StopHint() Signal {
	if t.remaining == 0 {
		return Stop
	}
	return t.inner.signal()
}

func (t *Take[T, R]) Finish() R {
	t.finish(t.name)
	return t.inner.finish()
}

func (t *Take[T, R]) Name() string {
	return t.name
}

// TakeWhile delivers items to a collector while a predicate holds.
type TakeWhile[T, R any] struct {
	lifecycle
	inner     branch[T, R]
	predicate func(T) bool
	done      bool
	name      string
}

// NewTakeWhile creates a collector that delivers items to c until predicate
// first returns false. The failing item is not delivered, and the collector
// reports Stop from then on.
//
// Example:
//
//	// Header lines end at the first blank line.
//	header := collectz.NewTakeWhile(collectz.NewToSlice[string](), func(l string) bool {
//		return l != ""
//	})
func NewTakeWhile[T, R any](c Collector[T, R], predicate func(T) bool) *TakeWhile[T, R] {
	return &TakeWhile[T, R]{
		inner:     newBranch(c),
		predicate: predicate,
		name:      "take-while",
	}
}

// WithName sets a custom name for this collector.
func (t *TakeWhile[T, R]) WithName(name string) *TakeWhile[T, R] {
	t.name = name
	return t
}

func (t *TakeWhile[T, R]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	if t.done || !t.predicate(item) {
		t.done = true
		return Stop
	}
	return t.inner.collect(item)
}

func (t *TakeWhile[T, R]) CollectRef(item *T) Signal {
	t.checkOpen(t.name, "CollectRef")
	if t.done || !t.predicate(*item) {
		t.done = true
		return Stop
	}
	return t.inner.offer(item)
}

func (t *TakeWhile[T, R]) StopHint() Signal {
	if t.done {
		return Stop
	}
	return t.inner.signal()
}

func (t *TakeWhile[T, R]) Finish() R {
	t.finish(t.name)
	return t.inner.finish()
}

func (t *TakeWhile[T, R]) Name() string {
	return t.name
}
