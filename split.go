package collectz

import "code.hybscloud.com/kont"

// Split divides a stream between exactly two collectors based on a
// predicate. Items for which the predicate returns true go to the first
// collector, the others go to the second. Every item reaches exactly one
// branch.
//
// Split is ideal for:
//   - Valid/invalid separation
//   - Pass/fail classification
//   - Binary decision trees
//
// Example:
//
//	// Total high value orders, keep the rest.
//	c := collectz.NewSplit(
//		func(o Order) bool { return o.Total > 1000 },
//		collectz.NewMap(collectz.NewSum[float64](), func(o Order) float64 { return o.Total }),
//		collectz.NewToSlice[Order](),
//	)
//	out := collectz.Collect(orders, c)
//
// An item routed to a branch that has already stopped is dropped. The
// composite reports Stop once both branches have stopped.
type Split[T, A, B any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	predicate func(T) bool
	whenTrue  branch[T, A]
	whenFalse branch[T, B]
	name      string
}

// NewSplit creates a collector that routes items on predicate.
func NewSplit[T, A, B any](predicate func(T) bool, whenTrue Collector[T, A], whenFalse Collector[T, B]) *Split[T, A, B] {
	return &Split[T, A, B]{
		predicate: predicate,
		whenTrue:  newBranch(whenTrue),
		whenFalse: newBranch(whenFalse),
		name:      "split",
	}
}

// WithName sets a custom name for this collector.
func (s *Split[T, A, B]) WithName(name string) *Split[T, A, B] {
	s.name = name
	return s
}

func (s *Split[T, A, B]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	if s.predicate(item) {
		return both(s.whenTrue.collect(item), s.whenFalse.signal())
	}
	return both(s.whenTrue.signal(), s.whenFalse.collect(item))
}

func (s *Split[T, A, B]) CollectRef(item *T) Signal {
	s.checkOpen(s.name, "CollectRef")
	if s.predicate(*item) {
		return both(s.whenTrue.offer(item), s.whenFalse.signal())
	}
	return both(s.whenTrue.signal(), s.whenFalse.offer(item))
}

// StopHint reports Stop once both branches have stopped.
func (s *Split[T, A, B]) StopHint() Signal {
	return both(s.whenTrue.signal(), s.whenFalse.signal())
}

func (s *Split[T, A, B]) Finish() Pair[A, B] {
	s.finish(s.name)
	return Pair[A, B]{First: s.whenTrue.finish(), Second: s.whenFalse.finish()}
}

func (s *Split[T, A, B]) Name() string {
	return s.name
}

// SplitMap routes each item, transformed, to one of two collectors.
// The routing function returns a kont.Either: Left values go to the left
// collector, Right values go to the right one.
type SplitMap[T, L, R, A, B any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	fn    func(T) kont.Either[L, R]
	left  branch[L, A]
	right branch[R, B]
	name  string
}

// NewSplitMap creates a collector that converts and routes items in one step.
//
// Example:
//
//	// Parse numbers, collecting the failures.
//	c := collectz.NewSplitMap(
//		func(s string) kont.Either[error, int] {
//			n, err := strconv.Atoi(s)
//			if err != nil {
//				return kont.Left[error, int](err)
//			}
//			return kont.Right[error, int](n)
//		},
//		collectz.NewToSlice[error](),
//		collectz.NewSum[int](),
//	)
func NewSplitMap[T, L, R, A, B any](fn func(T) kont.Either[L, R], left Collector[L, A], right Collector[R, B]) *SplitMap[T, L, R, A, B] {
	return &SplitMap[T, L, R, A, B]{
		fn:    fn,
		left:  newBranch(left),
		right: newBranch(right),
		name:  "split-map",
	}
}

// WithName sets a custom name for this collector.
func (s *SplitMap[T, L, R, A, B]) WithName(name string) *SplitMap[T, L, R, A, B] {
	s.name = name
	return s
}

func (s *SplitMap[T, L, R, A, B]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	routed := s.fn(item)
	if l, ok := routed.GetLeft(); ok {
		return both(s.left.collect(l), s.right.signal())
	}
	r, _ := routed.GetRight()
	return both(s.left.signal(), s.right.collect(r))
}

// StopHint reports Stop once both branches have stopped.
func (s *SplitMap[T, L, R, A, B]) StopHint() Signal {
	return both(s.left.signal(), s.right.signal())
}

func (s *SplitMap[T, L, R, A, B]) Finish() Pair[A, B] {
	s.finish(s.name)
	return Pair[A, B]{First: s.left.finish(), Second: s.right.finish()}
}

func (s *SplitMap[T, L, R, A, B]) Name() string {
	return s.name
}
