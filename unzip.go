package collectz

// Unzip splits each Pair item between two collectors: First goes to the
// first collector, Second to the second. Each side is fused on its own, so a
// stopped side is skipped while the other keeps receiving its half.
type Unzip[A, B, RA, RB any] struct {
	lifecycle
	first  branch[A, RA]
	second branch[B, RB]
	name   string
}

// NewUnzip creates a collector of Pair[A, B] that feeds the halves of each
// pair to separate collectors. The composite reports Stop only once both
// sides have.
//
// When to use:
//   - Aggregating two fields of a record independently
//   - Consuming the output of a zip or an enumerate step
//
// Example:
//
//	// Names and total spend from (name, amount) pairs.
//	c := collectz.NewMap(
//		collectz.NewUnzip(collectz.NewToSlice[string](), collectz.NewSum[float64]()),
//		func(o Order) collectz.Pair[string, float64] {
//			return collectz.Pair[string, float64]{First: o.Customer, Second: o.Total}
//		},
//	)
func NewUnzip[A, B, RA, RB any](first Collector[A, RA], second Collector[B, RB]) *Unzip[A, B, RA, RB] {
	return &Unzip[A, B, RA, RB]{
		first:  newBranch(first),
		second: newBranch(second),
		name:   "unzip",
	}
}

// WithName sets a custom name for this collector.
func (u *Unzip[A, B, RA, RB]) WithName(name string) *Unzip[A, B, RA, RB] {
	u.name = name
	return u
}

func (u *Unzip[A, B, RA, RB]) Collect(item Pair[A, B]) Signal {
	u.checkOpen(u.name, "Collect")
	s := u.first.collect(item.First)
	return both(s, u.second.collect(item.Second))
}

// CollectRef lends each half to its side, copying a half only for a side
// that cannot borrow.
func (u *Unzip[A, B, RA, RB]) CollectRef(item *Pair[A, B]) Signal {
	u.checkOpen(u.name, "CollectRef")
	s := u.first.offer(&item.First)
	return both(s, u.second.offer(&item.Second))
}

// StopHint reports Stop once both sides have stopped.
func (u *Unzip[A, B, RA, RB]) StopHint() Signal {
	return both(u.first.signal(), u.second.signal())
}

func (u *Unzip[A, B, RA, RB]) Finish() Pair[RA, RB] {
	u.finish(u.name)
	return Pair[RA, RB]{First: u.first.finish(), Second: u.second.finish()}
}

func (u *Unzip[A, B, RA, RB]) Name() string {
	return u.name
}
