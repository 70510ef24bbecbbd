package collectz

import "iter"

// FlatMap expands each item into a sequence and feeds every element of it
// to a collector. The sequence is abandoned as soon as the collector stops,
// so later elements are never produced.
type FlatMap[T, U, R any] struct {
	lifecycle
	inner  branch[U, R]
	expand func(T) iter.Seq[U]
	name   string
}

// NewFlatMap creates a collector that delivers the elements of expand(item)
// to c, in order, for every item.
//
// Example:
//
//	// Count the words across all lines.
//	words := collectz.NewFlatMap(collectz.NewCount[string](), func(line string) iter.Seq[string] {
//		return strings.FieldsSeq(line)
//	})
func NewFlatMap[T, U, R any](c Collector[U, R], expand func(T) iter.Seq[U]) *FlatMap[T, U, R] {
	return &FlatMap[T, U, R]{
		inner:  newBranch(c),
		expand: expand,
		name:   "flat-map",
	}
}

// WithName sets a custom name for this collector.
func (f *FlatMap[T, U, R]) WithName(name string) *FlatMap[T, U, R] {
	f.name = name
	return f
}

func (f *FlatMap[T, U, R]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	if f.inner.stopped {
		return Stop
	}
	for elem := range f.expand(item) {
		if f.inner.collect(elem).IsStop() {
			return Stop
		}
	}
	return f.inner.signal()
}

func (f *FlatMap[T, U, R]) StopHint() Signal {
	return f.inner.signal()
}

func (f *FlatMap[T, U, R]) Finish() R {
	f.finish(f.name)
	return f.inner.finish()
}

func (f *FlatMap[T, U, R]) Name() string {
	return f.name
}
