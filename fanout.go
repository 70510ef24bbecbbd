package collectz

// FanOut broadcasts each item to any number of collectors of the same
// result type. It is the N-way form of Tee: reference-capable branches
// borrow the item first, then every other branch receives a copy.
type FanOut[T, R any] struct {
	lifecycle
	branches []branch[T, R]
	name     string
}

// NewFanOut creates a collector that feeds every item to all branches and
// returns their results in branch order. Each branch observes the items in
// production order, until it reports Stop. The composite reports Stop once
// every branch has.
//
// When to use:
//   - Several aggregates of the same shape (per-threshold counters)
//   - Building a result slice from a dynamic list of collectors
//
// Example:
//
//	// Count how many readings exceed each threshold, in one pass.
//	thresholds := []float64{10, 50, 100}
//	counters := make([]collectz.Collector[float64, int], len(thresholds))
//	for i, limit := range thresholds {
//		counters[i] = collectz.NewFilter(collectz.NewCount[float64](), func(v float64) bool {
//			return v > limit
//		})
//	}
//	counts := collectz.Collect(readings, collectz.NewFanOut(counters...))
//
// Parameters:
//   - branches: Collectors to broadcast to
//
// Returns a new FanOut collector producing one result per branch.
func NewFanOut[T, R any](branches ...Collector[T, R]) *FanOut[T, R] {
	f := &FanOut[T, R]{
		branches: make([]branch[T, R], len(branches)),
		name:     "fanout",
	}
	for i, c := range branches {
		f.branches[i] = newBranch(c)
	}
	return f
}

// WithName sets a custom name for this collector.
func (f *FanOut[T, R]) WithName(name string) *FanOut[T, R] {
	f.name = name
	return f
}

func (f *FanOut[T, R]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	return f.broadcast(&item)
}

func (f *FanOut[T, R]) CollectRef(item *T) Signal {
	f.checkOpen(f.name, "CollectRef")
	return f.broadcast(item)
}

// broadcast serves borrowing branches before copying branches.
func (f *FanOut[T, R]) broadcast(item *T) Signal {
	active := false
	for i := range f.branches {
		b := &f.branches[i]
		if b.canBorrow() && b.collectRef(item).IsContinue() {
			active = true
		}
	}
	for i := range f.branches {
		b := &f.branches[i]
		if !b.canBorrow() && b.collect(*item).IsContinue() {
			active = true
		}
	}
	if active {
		return Continue
	}
	return Stop
}

// StopHint reports Stop once every branch has stopped.
func (f *FanOut[T, R]) StopHint() Signal {
	for i := range f.branches {
		if f.branches[i].signal().IsContinue() {
			return Continue
		}
	}
	return Stop
}

// Finish finishes every branch in order.
func (f *FanOut[T, R]) Finish() []R {
	f.finish(f.name)
	out := make([]R, len(f.branches))
	for i := range f.branches {
		out[i] = f.branches[i].finish()
	}
	return out
}

func (f *FanOut[T, R]) Name() string {
	return f.name
}
