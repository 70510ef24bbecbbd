package collectz

// Then feeds every item to two collectors in sequence: the left branch
// borrows the item first, then the right branch takes ownership of it.
// Because the left branch never claims the item, the right branch receives
// every item regardless of whether the left branch has stopped.
type Then[T, A, B any] struct {
	lifecycle
	left  branch[T, A]
	right branch[T, B]
	name  string
}

// NewThen creates a collector that computes two aggregates over the same
// items in one pass. Each item is offered by reference to left (until left
// reports Stop) and then handed by value to right (until right reports Stop).
// The composite reports Stop only once both branches have.
//
// When to use:
//   - Deriving a scalar (count, sum, length) while also keeping the items
//   - Attaching a cheap observer in front of a collector that owns the items
//
// Example:
//
//	// Count the lines while collecting them.
//	c := collectz.NewThen(collectz.NewCount[string](), collectz.NewToSlice[string]())
//	out := collectz.Collect(lines, c)
//	fmt.Printf("%d lines: %v\n", out.First, out.Second)
//
//	// Total the payload sizes while keeping the payloads.
//	sizes := collectz.NewMapRef(collectz.NewSum[int](), func(b *[]byte) int { return len(*b) })
//	c := collectz.NewThen(sizes, collectz.NewToSlice[[]byte]())
//
// Then is itself reference-capable, so it nests on the borrowing side of
// another Then to compute three or more aggregates in one pass:
//
//	c := collectz.NewThen(collectz.NewThen(collectz.NewCount[int](), collectz.NewSum[int]()), collectz.NewToSlice[int]())
//
// Pass-through adapters such as Filter or Take are reference-capable even
// when they wrap a collector that keeps its items; such a left branch gets a
// shallow copy of each item. For items whose shallow copy shares memory
// (slices or maps), wrap a storing left branch in Cloning.
//
// Parameters:
//   - left: Reference-capable collector, offered each item first
//   - right: Collector that takes ownership of each item
//
// Returns a new Then collector whose output pairs both results.
func NewThen[T, A, B any](left RefCollector[T, A], right Collector[T, B]) *Then[T, A, B] {
	return &Then[T, A, B]{
		left:  newBranch[T, A](left),
		right: newBranch(right),
		name:  "then",
	}
}

// WithName sets a custom name for this collector.
func (t *Then[T, A, B]) WithName(name string) *Then[T, A, B] {
	t.name = name
	return t
}

// Collect offers item to the left branch by reference, then hands it to the
// right branch by value.
func (t *Then[T, A, B]) Collect(item T) Signal {
	t.checkOpen(t.name, "Collect")
	s := t.left.collectRef(&item)
	return both(s, t.right.collect(item))
}

// CollectRef offers the borrowed item to the left branch, then to the right
// branch, copying it for the right branch only when that branch cannot borrow.
func (t *Then[T, A, B]) CollectRef(item *T) Signal {
	t.checkOpen(t.name, "CollectRef")
	s := t.left.collectRef(item)
	return both(s, t.right.offer(item))
}

// StopHint reports Stop once both branches have stopped.
func (t *Then[T, A, B]) StopHint() Signal {
	return both(t.left.signal(), t.right.signal())
}

// Finish finishes both branches, left first.
func (t *Then[T, A, B]) Finish() Pair[A, B] {
	t.finish(t.name)
	return Pair[A, B]{First: t.left.finish(), Second: t.right.finish()}
}

func (t *Then[T, A, B]) Name() string {
	return t.name
}
