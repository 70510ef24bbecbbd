package collectz

// Tee feeds the same item to two collectors within one Collect call.
// Reference-capable branches borrow the item first; the item is then handed
// by value to the remaining branch. Go copies values on assignment, so Tee
// is meant for items whose copy is an independent value (numbers, strings,
// immutable structs). Use TeeClone when an explicit deep copy is needed.
type Tee[T, A, B any] struct {
	lifecycle
	first  branch[T, A]
	second branch[T, B]
	name   string
}

// NewTee creates a collector that broadcasts each item to two branches and
// pairs their results. Each branch sees exactly the items it would see if it
// were driven alone, until it reports Stop. The composite reports Stop only
// once both branches have.
//
// When to use:
//   - Several independent aggregates over the same numbers (sum and max)
//   - Building an aggregate tree: a Tee is itself reference-capable and can
//     be the left branch of Then or a branch of another Tee
//
// Example:
//
//	c := collectz.NewTee(collectz.NewSum[int](), collectz.NewMax[int]())
//	out := collectz.Collect(slices.Values([]int{1, 3, 2}), c)
//	fmt.Println(out.First, out.Second) // 6 Some(3)
//
// Returns a new Tee collector whose output pairs both results.
func NewTee[T, A, B any](first Collector[T, A], second Collector[T, B]) *Tee[T, A, B] {
	return &Tee[T, A, B]{
		first:  newBranch(first),
		second: newBranch(second),
		name:   "tee",
	}
}

// WithName sets a custom name for this collector.
func (t *Tee[T, A, B]) WithName(name string) *Tee[T, A, B] {
	t.name = name
	return t
}

// Collect delivers item to both branches, borrowed deliveries first.
func (t *Tee[T, A, B]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	if !t.first.canBorrow() && t.second.canBorrow() {
		s := t.second.collectRef(&item)
		return both(t.first.collect(item), s)
	}
	s := t.first.offer(&item)
	return both(s, t.second.collect(item))
}

// CollectRef delivers a borrowed item to both branches. Branches that are
// not reference-capable receive a copy of the item.
func (t *Tee[T, A, B]) CollectRef(item *T) Signal {
	t.checkOpen(t.name, "CollectRef")
	if !t.first.canBorrow() && t.second.canBorrow() {
		s := t.second.collectRef(item)
		return both(t.first.collect(*item), s)
	}
	s := t.first.offer(item)
	return both(s, t.second.offer(item))
}

// StopHint reports Stop once both branches have stopped.
func (t *Tee[T, A, B]) StopHint() Signal {
	return both(t.first.signal(), t.second.signal())
}

// Finish finishes both branches, first then second.
func (t *Tee[T, A, B]) Finish() Pair[A, B] {
	t.finish(t.name)
	return Pair[A, B]{First: t.first.finish(), Second: t.second.finish()}
}

func (t *Tee[T, A, B]) Name() string {
	return t.name
}
