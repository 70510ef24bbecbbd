package collectz

// Funnel turns a collector of item pointers into a reference-capable
// collector of items. Owned items are lent to the inner collector for the
// duration of the call as well.
type Funnel[T, R any] struct {
	lifecycle
	inner branch[*T, R]
	name  string
}

// NewFunnel creates a RefCollector that hands &item to c.
// c must not retain the pointers it receives.
//
// Example:
//
//	// Longest line, borrowed, while another branch keeps the lines.
//	longest := collectz.NewFunnel(collectz.NewMap(collectz.NewMax[int](), func(s *string) int {
//		return len(*s)
//	}))
//	c := collectz.NewThen(longest, collectz.NewToSlice[string]())
func NewFunnel[T, R any](c Collector[*T, R]) *Funnel[T, R] {
	return &Funnel[T, R]{
		inner: newBranch(c),
		name:  "funnel",
	}
}

// WithName sets a custom name for this collector.
func (f *Funnel[T, R]) WithName(name string) *Funnel[T, R] {
	f.name = name
	return f
}

func (f *Funnel[T, R]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	return f.inner.collect(&item)
}

func (f *Funnel[T, R]) CollectRef(item *T) Signal {
	f.checkOpen(f.name, "CollectRef")
	return f.inner.collect(item)
}

func (f *Funnel[T, R]) StopHint() Signal {
	return f.inner.signal()
}

func (f *Funnel[T, R]) Finish() R {
	f.finish(f.name)
	return f.inner.finish()
}

func (f *Funnel[T, R]) Name() string {
	return f.name
}

// Cloning makes any collector reference-capable by cloning borrowed items.
// Owned items are passed through without a copy.
type Cloning[T, R any] struct {
	lifecycle
	inner branch[T, R]
	clone func(T) T
	name  string
}

// NewCloning creates a RefCollector that delivers clone(*item) to c for
// every borrowed item. It lets a collector that stores its items sit on the
// borrowing side of Then or Tee.
//
// Example:
//
//	// Keep every payload, and also keep the payloads owned downstream.
//	keep := collectz.NewCloning(collectz.NewToSlice[[]byte](), slices.Clone[[]byte])
//	c := collectz.NewThen(keep, collectz.NewChunk(64, sink))
func NewCloning[T, R any](c Collector[T, R], clone func(T) T) *Cloning[T, R] {
	return &Cloning[T, R]{
		inner: newBranch(c),
		clone: clone,
		name:  "cloning",
	}
}

// WithName sets a custom name for this collector.
func (c *Cloning[T, R]) WithName(name string) *Cloning[T, R] {
	c.name = name
	return c
}

func (c *Cloning[T, R]) Collect(item T) Signal {
	c.checkOpen(c.name, "Collect")
	return c.inner.collect(item)
}

// CollectRef clones item for the wrapped collector. Nothing is cloned once
// it has stopped.
func (c *Cloning[T, R]) CollectRef(item *T) Signal {
	c.checkOpen(c.name, "CollectRef")
	if c.inner.stopped {
		return Stop
	}
	return c.inner.collect(c.clone(*item))
}

func (c *Cloning[T, R]) StopHint() Signal {
	return c.inner.signal()
}

func (c *Cloning[T, R]) Finish() R {
	c.finish(c.name)
	return c.inner.finish()
}

func (c *Cloning[T, R]) Name() string {
	return c.name
}
