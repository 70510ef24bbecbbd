package collectz

// TeeWith feeds each item to two collectors: the first receives a value
// derived from the borrowed item, the second takes ownership of the item
// itself. The projection is skipped once the first collector has stopped.
type TeeWith[T, U, A, B any] struct {
	lifecycle
	first   branch[U, A]
	second  branch[T, B]
	project func(*T) U
	name    string
}

// NewTeeWith creates a collector that derives a value for first from every
// item before second receives the item. project borrows the item and must
// not retain the pointer. The composite reports Stop only once both
// branches have.
//
// Example:
//
//	// Distinct user IDs alongside the full events.
//	c := collectz.NewTeeWith(
//		collectz.NewToSet[string](),
//		func(e *Event) string { return e.UserID },
//		collectz.NewToSlice[Event](),
//	)
func NewTeeWith[T, U, A, B any](first Collector[U, A], project func(*T) U, second Collector[T, B]) *TeeWith[T, U, A, B] {
	return &TeeWith[T, U, A, B]{
		first:   newBranch(first),
		second:  newBranch(second),
		project: project,
		name:    "tee-with",
	}
}

// WithName sets a custom name for this collector.
func (t *TeeWith[T, U, A, B]) WithName(name string) *TeeWith[T, U, A, B] {
	t.name = name
	return t
}

func (t *TeeWith[T, U, A, B]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	s := t.derive(&item)
	return both(s, t.second.collect(item))
}

// CollectRef derives first's value from the borrowed item, then lends the
// item to second, or hands it a copy when second cannot borrow.
func (t *TeeWith[T, U, A, B]) CollectRef(item *T) Signal {
	t.checkOpen(t.name, "CollectRef")
	s := t.derive(item)
	return both(s, t.second.offer(item))
}

func (t *TeeWith[T, U, A, B]) derive(item *T) Signal {
	if t.first.stopped {
		return Stop
	}
	return t.first.collect(t.project(item))
}

// StopHint reports Stop once both branches have stopped.
func (t *TeeWith[T, U, A, B]) StopHint() Signal {
	return both(t.first.signal(), t.second.signal())
}

func (t *TeeWith[T, U, A, B]) Finish() Pair[A, B] {
	t.finish(t.name)
	return Pair[A, B]{First: t.first.finish(), Second: t.second.finish()}
}

func (t *TeeWith[T, U, A, B]) Name() string {
	return t.name
}
