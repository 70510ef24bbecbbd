package collectz

// Fuse guards a collector that may misbehave after reporting Stop.
// Once the wrapped collector returns Stop, every later item is dropped and
// answered with Stop without reaching it.
type Fuse[T, R any] struct {
	lifecycle
	inner branch[T, R]
	name  string
}

// NewFuse creates a collector that stops delivering items to c after c
// reports Stop.
//
// When to use:
//   - Wrapping third-party collectors that are not safe to feed after Stop
//   - Feeding a collector from a loop that does not check signals
//
// Example:
//
//	fused := collectz.NewFuse[int, []int](untrusted)
//	for _, n := range numbers {
//		fused.Collect(n) // untrusted never sees an item after its Stop
//	}
//	out := fused.Finish()
func NewFuse[T, R any](c Collector[T, R]) *Fuse[T, R] {
	return &Fuse[T, R]{
		inner: newBranch(c),
		name:  "fuse",
	}
}

// WithName sets a custom name for this collector.
func (f *Fuse[T, R]) WithName(name string) *Fuse[T, R] {
	f.name = name
	return f
}

func (f *Fuse[T, R]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	return f.inner.collect(item)
}

// CollectRef lends item to the wrapped collector when it can borrow, and
// hands it a copy otherwise.
func (f *Fuse[T, R]) CollectRef(item *T) Signal {
	f.checkOpen(f.name, "CollectRef")
	return f.inner.offer(item)
}

// StopHint reports Stop once the wrapped collector has stopped.
func (f *Fuse[T, R]) StopHint() Signal {
	return f.inner.signal()
}

func (f *Fuse[T, R]) Finish() R {
	f.finish(f.name)
	return f.inner.finish()
}

func (f *Fuse[T, R]) Name() string {
	return f.name
}
