package collectz

import (
	"slices"
	"time"
)

// SlidingWindow groups items into overlapping time-based windows.
// Unlike tumbling windows, sliding windows can overlap, allowing for
// smooth transitions and rolling calculations over time periods.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type SlidingWindow[T, R any] struct {
	lifecycle
	inner branch[Window[T], R]
	clock Clock
	open  []*Window[T] // by Start
	name  string
	size  time.Duration
	slide time.Duration
}

// NewSlidingWindow creates a collector that groups items into overlapping
// time windows and delivers each completed window to c. Each window has a
// fixed duration (size) and windows start at regular intervals (slide),
// aligned to multiples of slide since the zero time. When slide < size,
// windows overlap; when slide == size, it behaves like a tumbling window.
// A slide longer than size would leave gaps that no window covers, so it is
// reduced to size.
//
// A window is delivered once an item arrives at or after its End; windows
// still open are delivered on Finish, oldest first. Windows that would
// contain no items are never created.
//
// When to use:
//   - Computing rolling averages or moving statistics
//   - Smooth trend analysis with overlapping data points
//   - Detecting patterns that might span window boundaries
//
// Example:
//
//	// 5-minute windows sliding every minute
//	rolling := collectz.NewSlidingWindow(5*time.Minute, time.Minute,
//		collectz.NewMap(collectz.NewToSlice[float64](), func(w collectz.Window[Metric]) float64 {
//			return average(w.Items)
//		}))
//	averages := collectz.Collect(metrics, rolling)
//
// Parameters:
//   - size: Duration of each window (values below one nanosecond are treated as one)
//   - slide: How often to start new windows (clamped to [1ns, size])
//   - c: Collector receiving each completed window
func NewSlidingWindow[T, R any](size, slide time.Duration, c Collector[Window[T], R]) *SlidingWindow[T, R] {
	if size <= 0 {
		size = time.Nanosecond
	}
	if slide <= 0 {
		slide = time.Nanosecond
	}
	if slide > size {
		slide = size
	}
	return &SlidingWindow[T, R]{
		inner: newBranch(c),
		clock: RealClock,
		size:  size,
		slide: slide,
		name:  "sliding-window",
	}
}

// WithClock sets the clock that assigns items to windows.
func (w *SlidingWindow[T, R]) WithClock(clock Clock) *SlidingWindow[T, R] {
	w.clock = clock
	return w
}

// WithName sets a custom name for this collector.
func (w *SlidingWindow[T, R]) WithName(name string) *SlidingWindow[T, R] {
	w.name = name
	return w
}

func (w *SlidingWindow[T, R]) Collect(item T) Signal {
	w.checkOpen(w.name, "Collect")
	if w.inner.stopped {
		return Stop
	}
	now := w.clock.Now()

	// Deliver the windows that ended.
	open := w.open[:0]
	for _, window := range w.open {
		if now.Before(window.End) {
			open = append(open, window)
			continue
		}
		w.inner.collect(*window)
	}
	w.open = open
	if w.inner.stopped {
		return Stop
	}

	// Place the item in every window covering now.
	added := false
	for start := now.Truncate(w.slide); start.After(now.Add(-w.size)); start = start.Add(-w.slide) {
		window := w.find(start)
		if window == nil {
			window = &Window[T]{
				Items: []T{},
				Start: start,
				End:   start.Add(w.size),
			}
			w.open = append(w.open, window)
			added = true
		}
		window.Items = append(window.Items, item)
	}
	if added {
		slices.SortFunc(w.open, func(a, b *Window[T]) int {
			return a.Start.Compare(b.Start)
		})
	}
	return Continue
}

func (w *SlidingWindow[T, R]) find(start time.Time) *Window[T] {
	for _, window := range w.open {
		if window.Start.Equal(start) {
			return window
		}
	}
	return nil
}

func (w *SlidingWindow[T, R]) StopHint() Signal {
	return w.inner.signal()
}

// Finish delivers the open windows, oldest first, and finishes the inner
// collector.
func (w *SlidingWindow[T, R]) Finish() R {
	w.finish(w.name)
	for _, window := range w.open {
		w.inner.collect(*window)
	}
	w.open = nil
	return w.inner.finish()
}

func (w *SlidingWindow[T, R]) Name() string {
	return w.name
}
