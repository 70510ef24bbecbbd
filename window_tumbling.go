package collectz

import (
	"time"
)

// TumblingWindow groups items into fixed-size, non-overlapping time windows
// and delivers each completed window to a collector. Each item belongs to
// exactly one window, decided by the clock time at which it arrives.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type TumblingWindow[T, R any] struct {
	lifecycle
	inner  branch[Window[T], R]
	clock  Clock
	window *Window[T]
	size   time.Duration
	name   string
}

// NewTumblingWindow creates a collector that groups items into fixed-size
// time windows. Windows are aligned to multiples of size since the zero
// time, so equal sizes produce equal boundaries across collectors. A window
// is delivered when the first item of a later window arrives; the window in
// progress is delivered on Finish. Periods without items produce no window.
//
// When to use:
//   - Time-based aggregations (per-minute stats, hourly summaries)
//   - Rate calculations over fixed intervals
//   - Metrics collection and reporting
//
// Example:
//
//	// Events per minute
//	perMinute := collectz.NewTumblingWindow(time.Minute,
//		collectz.NewMap(collectz.NewToSlice[int](), func(w collectz.Window[Event]) int {
//			return w.Count()
//		}))
//	counts := collectz.Collect(events, perMinute)
//
// Parameters:
//   - size: Duration of each window (e.g., 1 minute, 1 hour); values
//     below one nanosecond are treated as one nanosecond
//   - c: Collector receiving each completed window
func NewTumblingWindow[T, R any](size time.Duration, c Collector[Window[T], R]) *TumblingWindow[T, R] {
	if size <= 0 {
		size = time.Nanosecond
	}
	return &TumblingWindow[T, R]{
		inner: newBranch(c),
		clock: RealClock,
		size:  size,
		name:  "tumbling-window",
	}
}

// WithClock sets the clock that assigns items to windows.
// Use clockz.NewFakeClock() for deterministic tests.
func (w *TumblingWindow[T, R]) WithClock(clock Clock) *TumblingWindow[T, R] {
	w.clock = clock
	return w
}

// WithName sets a custom name for this collector.
func (w *TumblingWindow[T, R]) WithName(name string) *TumblingWindow[T, R] {
	w.name = name
	return w
}

func (w *TumblingWindow[T, R]) Collect(item T) Signal {
	w.checkOpen(w.name, "Collect")
	if w.inner.stopped {
		return Stop
	}
	now := w.clock.Now()
	if w.window != nil && !w.window.Contains(now) {
		done := *w.window
		w.window = nil
		if w.inner.collect(done).IsStop() {
			return Stop
		}
	}
	if w.window == nil {
		start := now.Truncate(w.size)
		w.window = &Window[T]{
			Start: start,
			End:   start.Add(w.size),
			Items: []T{},
		}
	}
	w.window.Items = append(w.window.Items, item)
	return Continue
}

func (w *TumblingWindow[T, R]) StopHint() Signal {
	return w.inner.signal()
}

// Finish delivers the window in progress and finishes the inner collector.
func (w *TumblingWindow[T, R]) Finish() R {
	w.finish(w.name)
	if w.window != nil {
		w.inner.collect(*w.window)
		w.window = nil
	}
	return w.inner.finish()
}

func (w *TumblingWindow[T, R]) Name() string {
	return w.name
}
