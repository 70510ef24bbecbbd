package collectz

// First keeps the first item and then reports Stop.
type First[T any] struct {
	lifecycle
	item Option[T]
	name string
}

// NewFirst creates a collector that keeps the first item. It stops after one
// item, so a driver pulls nothing more than it needs.
func NewFirst[T any]() *First[T] {
	return &First[T]{name: "first"}
}

// WithName sets a custom name for this collector.
func (f *First[T]) WithName(name string) *First[T] {
	f.name = name
	return f
}

func (f *First[T]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	if f.item.IsNone() {
		f.item = Some(item)
	}
	return Stop
}

func (f *First[T]) StopHint() Signal {
	if f.item.IsSome() {
		return Stop
	}
	return Continue
}

func (f *First[T]) Finish() Option[T] {
	f.finish(f.name)
	return f.item
}

func (f *First[T]) Name() string {
	return f.name
}

// Last keeps the most recent item.
type Last[T any] struct {
	lifecycle
	item Option[T]
	name string
}

// NewLast creates a collector that keeps the last item of the stream.
func NewLast[T any]() *Last[T] {
	return &Last[T]{name: "last"}
}

// WithName sets a custom name for this collector.
func (l *Last[T]) WithName(name string) *Last[T] {
	l.name = name
	return l
}

func (l *Last[T]) Collect(item T) Signal {
	l.checkOpen(l.name, "Collect")
	l.item = Some(item)
	return Continue
}

func (l *Last[T]) Finish() Option[T] {
	l.finish(l.name)
	return l.item
}

func (l *Last[T]) Name() string {
	return l.name
}

// Find keeps the first item matching a predicate and then reports Stop.
type Find[T any] struct {
	lifecycle
	item      Option[T]
	predicate func(T) bool
	name      string
}

// NewFind creates a collector that searches for the first item for which
// predicate returns true.
//
// Example:
//
//	firstError := collectz.NewFind(func(e LogEntry) bool {
//	    return e.Level == "ERROR"
//	})
func NewFind[T any](predicate func(T) bool) *Find[T] {
	return &Find[T]{predicate: predicate, name: "find"}
}

// WithName sets a custom name for this collector.
func (f *Find[T]) WithName(name string) *Find[T] {
	f.name = name
	return f
}

func (f *Find[T]) Collect(item T) Signal {
	f.checkOpen(f.name, "Collect")
	if f.item.IsSome() {
		return Stop
	}
	if f.predicate(item) {
		f.item = Some(item)
		return Stop
	}
	return Continue
}

// CollectRef copies the item only when it matches.
func (f *Find[T]) CollectRef(item *T) Signal {
	f.checkOpen(f.name, "CollectRef")
	if f.item.IsSome() {
		return Stop
	}
	if f.predicate(*item) {
		f.item = Some(*item)
		return Stop
	}
	return Continue
}

func (f *Find[T]) StopHint() Signal {
	if f.item.IsSome() {
		return Stop
	}
	return Continue
}

func (f *Find[T]) Finish() Option[T] {
	f.finish(f.name)
	return f.item
}

func (f *Find[T]) Name() string {
	return f.name
}

// Any reports whether some item satisfies a predicate. It stops at the
// first match. An empty stream yields false.
type Any[T any] struct {
	lifecycle
	predicate func(T) bool
	found     bool
	name      string
}

// NewAny creates a collector that tests whether any item matches predicate.
func NewAny[T any](predicate func(T) bool) *Any[T] {
	return &Any[T]{predicate: predicate, name: "any"}
}

// WithName sets a custom name for this collector.
func (a *Any[T]) WithName(name string) *Any[T] {
	a.name = name
	return a
}

func (a *Any[T]) Collect(item T) Signal {
	a.checkOpen(a.name, "Collect")
	return a.test(&item)
}

func (a *Any[T]) CollectRef(item *T) Signal {
	a.checkOpen(a.name, "CollectRef")
	return a.test(item)
}

func (a *Any[T]) test(item *T) Signal {
	if !a.found && a.predicate(*item) {
		a.found = true
	}
	return a.StopHint()
}

func (a *Any[T]) StopHint() Signal {
	if a.found {
		return Stop
	}
	return Continue
}

func (a *Any[T]) Finish() bool {
	a.finish(a.name)
	return a.found
}

func (a *Any[T]) Name() string {
	return a.name
}

// All reports whether every item satisfies a predicate. It stops at the
// first item that does not. An empty stream yields true.
type All[T any] struct {
	lifecycle
	predicate func(T) bool
	failed    bool
	name      string
}

// NewAll creates a collector that tests whether all items match predicate.
func NewAll[T any](predicate func(T) bool) *All[T] {
	return &All[T]{predicate: predicate, name: "all"}
}

// WithName sets a custom name for this collector.
func (a *All[T]) WithName(name string) *All[T] {
	a.name = name
	return a
}

func (a *All[T]) Collect(item T) Signal {
	a.checkOpen(a.name, "Collect")
	return a.test(&item)
}

func (a *All[T]) CollectRef(item *T) Signal {
	a.checkOpen(a.name, "CollectRef")
	return a.test(item)
}

func (a *All[T]) test(item *T) Signal {
	if !a.failed && !a.predicate(*item) {
		a.failed = true
	}
	return a.StopHint()
}

func (a *All[T]) StopHint() Signal {
	if a.failed {
		return Stop
	}
	return Continue
}

func (a *All[T]) Finish() bool {
	a.finish(a.name)
	return !a.failed
}

func (a *All[T]) Name() string {
	return a.name
}
