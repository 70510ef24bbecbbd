package collectz

// TeeClone feeds each item to two collectors, giving the first an explicit
// copy made by a clone function and the second the original. Use it when a
// plain value copy of the item would share state between the branches
// (slices, maps, pointers to mutable data).
type TeeClone[T, A, B any] struct {
	lifecycle
	first  branch[T, A]
	second branch[T, B]
	clone  func(T) T
	name   string
}

// NewTeeClone creates a collector that broadcasts each item to two branches,
// each owning an independent value. The clone function is only called while
// both branches are accepting: once either branch stops, the other receives
// the original item without copying.
//
// When to use:
//   - Both branches must keep (and possibly mutate) their own copy
//   - Items carry slices or maps that must not be aliased
//
// Example:
//
//	// Keep every batch raw and also grouped by size.
//	c := collectz.NewTeeClone(
//		collectz.NewToSlice[[]byte](),
//		collectz.NewChunk(10, collectz.NewToSlice[[][]byte]()),
//		slices.Clone[[]byte],
//	)
//
// Parameters:
//   - first: Collector receiving a clone of each item
//   - second: Collector receiving the original item
//   - clone: Function returning an independent copy of an item
func NewTeeClone[T, A, B any](first Collector[T, A], second Collector[T, B], clone func(T) T) *TeeClone[T, A, B] {
	return &TeeClone[T, A, B]{
		first:  newBranch(first),
		second: newBranch(second),
		clone:  clone,
		name:   "tee-clone",
	}
}

// WithName sets a custom name for this collector.
func (t *TeeClone[T, A, B]) WithName(name string) *TeeClone[T, A, B] {
	t.name = name
	return t
}

func (t *TeeClone[T, A, B]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	switch {
	case t.first.stopped:
		return t.second.collect(item)
	case t.second.stopped:
		return t.first.collect(item)
	}
	s := t.first.collect(t.clone(item))
	return both(s, t.second.collect(item))
}

// StopHint reports Stop once both branches have stopped.
func (t *TeeClone[T, A, B]) StopHint() Signal {
	return both(t.first.signal(), t.second.signal())
}

func (t *TeeClone[T, A, B]) Finish() Pair[A, B] {
	t.finish(t.name)
	return Pair[A, B]{First: t.first.finish(), Second: t.second.finish()}
}

func (t *TeeClone[T, A, B]) Name() string {
	return t.name
}
