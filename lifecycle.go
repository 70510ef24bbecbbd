package collectz

// lifecycle tracks the Accepting -> Consumed transition of a collector and
// fails fast on use after Finish. Every collector in this package embeds one.
type lifecycle struct {
	finished bool
}

// checkOpen panics if the collector has already been finished.
func (l *lifecycle) checkOpen(name, op string) {
	if l.finished {
		panic(&UsageError{Collector: name, Op: op, Err: ErrFinished})
	}
}

// finish marks the collector consumed. A second call panics.
func (l *lifecycle) finish(name string) {
	l.checkOpen(name, "Finish")
	l.finished = true
}

// branch is a child collector owned by a combinator. It remembers whether
// the child reported Stop and never feeds it again afterwards, so a stopped
// branch is never re-offered an item.
type branch[T, R any] struct {
	c       Collector[T, R]
	ref     RefCollector[T, R] // nil unless c is reference-capable
	stopped bool
}

func newBranch[T, R any](c Collector[T, R]) branch[T, R] {
	b := branch[T, R]{c: c, stopped: stopHint(c).IsStop()}
	if ref, ok := c.(RefCollector[T, R]); ok {
		b.ref = ref
	}
	return b
}

// collect delivers an owned item.
func (b *branch[T, R]) collect(item T) Signal {
	if b.stopped {
		return Stop
	}
	if b.c.Collect(item).IsStop() {
		b.stopped = true
	}
	return b.signal()
}

// collectRef delivers a borrowed item. The branch must be reference-capable.
func (b *branch[T, R]) collectRef(item *T) Signal {
	if b.stopped {
		return Stop
	}
	if b.ref.CollectRef(item).IsStop() {
		b.stopped = true
	}
	return b.signal()
}

// offer delivers a borrowed item, falling back to a value copy when the
// branch is not reference-capable.
func (b *branch[T, R]) offer(item *T) Signal {
	if b.ref != nil {
		return b.collectRef(item)
	}
	return b.collect(*item)
}

// canBorrow reports whether the branch accepts borrowed items.
func (b *branch[T, R]) canBorrow() bool {
	return b.ref != nil
}

func (b *branch[T, R]) signal() Signal {
	if b.stopped {
		return Stop
	}
	return Continue
}

func (b *branch[T, R]) finish() R {
	return b.c.Finish()
}
