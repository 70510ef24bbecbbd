package collectz

// Flatten expands slices into individual items, feeding each element of a
// []T item to a Collector[T]. This is the inverse of Chunk, useful for
// aggregating grouped data element by element.
type Flatten[T, R any] struct {
	lifecycle
	inner branch[T, R]
	name  string
}

// NewFlatten creates a collector that flattens slices into individual items.
// Each slice offered to it is expanded so that each element reaches c as a
// separate item, preserving order. Elements after the one that made c
// report Stop are not delivered.
//
// When to use:
//   - Aggregating results from batch APIs
//   - Processing array fields from JSON/database records
//   - Treating paginated responses as one stream
//
// Example:
//
//	// Count users across every page
//	users := collectz.NewFlatten(collectz.NewCount[User]())
//	total := collectz.Collect(pages, users)
//
// When c is reference-capable and the slice itself is borrowed, elements
// are lent to c in place.
func NewFlatten[T, R any](c Collector[T, R]) *Flatten[T, R] {
	return &Flatten[T, R]{
		inner: newBranch(c),
		name:  "flatten",
	}
}

// WithName sets a custom name for this collector.
func (f *Flatten[T, R]) WithName(name string) *Flatten[T, R] {
	f.name = name
	return f
}

func (f *Flatten[T, R]) Collect(batch []T) Signal {
	f.checkOpen(f.name, "Collect")
	for _, item := range batch {
		if f.inner.collect(item).IsStop() {
			return Stop
		}
	}
	return f.inner.signal()
}

func (f *Flatten[T, R]) CollectRef(batch *[]T) Signal {
	f.checkOpen(f.name, "CollectRef")
	items := *batch
	for i := range items {
		if f.inner.offer(&items[i]).IsStop() {
			return Stop
		}
	}
	return f.inner.signal()
}

func (f *Flatten[T, R]) StopHint() Signal {
	return f.inner.signal()
}

func (f *Flatten[T, R]) Finish() R {
	f.finish(f.name)
	return f.inner.finish()
}

func (f *Flatten[T, R]) Name() string {
	return f.name
}
