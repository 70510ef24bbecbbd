package collectz

// Skip discards the first n items offered to a collector.
type Skip[T, R any] struct {
	lifecycle
	inner     branch[T, R]
	remaining int
	name      string
}

// NewSkip creates a collector that drops the first n items and delivers
// every later item to c.
//
// When to use:
//   - Skip headers or metadata at the start of a stream
//   - Ignore warm-up data from sensors
//   - Implement offset-based pagination
//
// Example:
//
//	// Skip the first 10 warm-up readings.
//	stable := collectz.NewSkip(10, collectz.NewToSlice[SensorData]())
//
//	// Page 3 of 20 results each.
//	page := collectz.NewSkip(40, collectz.NewTake(20, collectz.NewToSlice[Row]()))
func NewSkip[T, R any](n int, c Collector[T, R]) *Skip[T, R] {
	if n < 0 {
		n = 0
	}
	return &Skip[T, R]{
		inner:     newBranch(c),
		remaining: n,
		name:      "skip",
	}
}

// WithName sets a custom name for this collector.
func (s *Skip[T, R]) WithName(name string) *Skip[T, R] {
	s.name = name
	return s
}

func (s *Skip[T, R]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	if s.remaining > 0 {
		s.remaining--
		return s.inner.signal()
	}
	return s.inner.collect(item)
}

func (s *Skip[T, R]) CollectRef(item *T) Signal {
	s.checkOpen(s.name, "CollectRef")
	if s.remaining > 0 {
		s.remaining--
		return s.inner.signal()
	}
	return s.inner.offer(item)
}

func (s *Skip[T, R]) StopHint() Signal {
	return s.inner.signal()
}

func (s *Skip[T, R]) Finish() R {
	s.finish(s.name)
	return s.inner.finish()
}

func (s *Skip[T, R]) Name() string {
	return s.name
}

// SkipWhile discards items while a predicate holds.
type SkipWhile[T, R any] struct {
	lifecycle
	inner     branch[T, R]
	predicate func(T) bool
	skipping  bool
	name      string
}

// NewSkipWhile creates a collector that drops items until predicate first
// returns false; that item and every later one are delivered to c.
//
// Example:
//
//	// Ignore the comment block at the top of a file.
//	body := collectz.NewSkipWhile(collectz.NewToSlice[string](), func(l string) bool {
//		return strings.HasPrefix(l, "#")
//	})
func NewSkipWhile[T, R any](c Collector[T, R], predicate func(T) bool) *SkipWhile[T, R] {
	return &SkipWhile[T, R]{
		inner:     newBranch(c),
		predicate: predicate,
		skipping:  true,
		name:      "skip-while",
	}
}

// WithName sets a custom name for this collector.
func (s *SkipWhile[T, R]) WithName(name string) *SkipWhile[T, R] {
	s.name = name
	return s
}

func (s *SkipWhile[T, R]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	if s.skipping && s.predicate(item) {
		return s.inner.signal()
	}
	s.skipping = false
	return s.inner.collect(item)
}

func (s *SkipWhile[T, R]) CollectRef(item *T) Signal {
	s.checkOpen(s.name, "CollectRef")
	if s.skipping && s.predicate(*item) {
		return s.inner.signal()
	}
	s.skipping = false
	return s.inner.offer(item)
}

func (s *SkipWhile[T, R]) StopHint() Signal {
	return s.inner.signal()
}

func (s *SkipWhile[T, R]) Finish() R {
	s.finish(s.name)
	return s.inner.finish()
}

func (s *SkipWhile[T, R]) Name() string {
	return s.name
}
