package collectz

// TeeFunnel feeds each item to two collectors: the first consumes a pointer
// to the item, the second takes ownership of it afterwards. The first branch
// typically copies what it needs out of the pointer (a clone into a slice, a
// derived key), the second is any collector.
type TeeFunnel[T, A, B any] struct {
	lifecycle
	first  branch[*T, A]
	second branch[T, B]
	name   string
}

// NewTeeFunnel creates a collector for the "keep the raw items, plus derive
// something from them" case. first sees &item before second receives item.
// The pointer handed to first is only valid during its Collect call.
// The composite reports Stop only once both branches have.
//
// Example:
//
//	// Keep a private copy of every record while grouping the originals.
//	keep := collectz.NewMap(collectz.NewToSlice[Record](), func(r *Record) Record {
//		return r.Clone()
//	})
//	c := collectz.NewTeeFunnel(keep, collectz.NewPartition(byRegion, branches...))
func NewTeeFunnel[T, A, B any](first Collector[*T, A], second Collector[T, B]) *TeeFunnel[T, A, B] {
	return &TeeFunnel[T, A, B]{
		first:  newBranch(first),
		second: newBranch(second),
		name:   "tee-funnel",
	}
}

// WithName sets a custom name for this collector.
func (t *TeeFunnel[T, A, B]) WithName(name string) *TeeFunnel[T, A, B] {
	t.name = name
	return t
}

func (t *TeeFunnel[T, A, B]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	s := t.first.collect(&item)
	return both(s, t.second.collect(item))
}

// StopHint reports Stop once both branches have stopped.
func (t *TeeFunnel[T, A, B]) StopHint() Signal {
	return both(t.first.signal(), t.second.signal())
}

func (t *TeeFunnel[T, A, B]) Finish() Pair[A, B] {
	t.finish(t.name)
	return Pair[A, B]{First: t.first.finish(), Second: t.second.finish()}
}

func (t *TeeFunnel[T, A, B]) Name() string {
	return t.name
}
