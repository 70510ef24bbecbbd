package collectz

import (
	"time"
)

// StreamStats contains statistics about items flowing through a monitored collector.
// It provides insights into processing rate and throughput for observability.
type StreamStats struct {
	// LastUpdate is the timestamp of this statistics snapshot
	LastUpdate time.Time
	// Count is the number of items observed since the last report
	Count int64
	// Total is the number of items observed since the start of the stream
	Total int64
	// Rate is the average items per second since the last report
	Rate float64
}

// Monitor observes items passing through to a collector and periodically
// reports statistics. It's a pass-through collector that doesn't modify
// the items but provides visibility into throughput.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Monitor[T, R any] struct {
	lifecycle
	inner    branch[T, R]
	onStats  func(StreamStats)
	clock    Clock
	lastTime time.Time
	name     string
	interval time.Duration
	count    int64
	total    int64
}

// NewMonitor creates a pass-through collector that observes stream throughput.
// Statistics are reported whenever an item arrives at least interval after
// the previous report, and once more when the collector is finished.
//
// When to use:
//   - Progress reporting on long traversals
//   - Performance debugging and optimization
//   - Identifying slow producers
//
// Example:
//
//	// Report throughput every second
//	monitored := collectz.NewMonitor(collectz.NewCount[Event](), time.Second, func(stats collectz.StreamStats) {
//		log.Printf("Processing rate: %.2f items/sec (count: %d)",
//			stats.Rate, stats.Count)
//	})
//	total := collectz.Collect(events, monitored)
//
// Parameters:
//   - c: Collector receiving the items unchanged
//   - interval: Minimum time between reports
//   - onStats: Callback function invoked with statistics at each report
func NewMonitor[T, R any](c Collector[T, R], interval time.Duration, onStats func(StreamStats)) *Monitor[T, R] {
	return &Monitor[T, R]{
		inner:    newBranch(c),
		onStats:  onStats,
		clock:    RealClock,
		lastTime: RealClock.Now(),
		interval: interval,
		name:     "monitor",
	}
}

// WithClock sets the clock used to time reports and restarts the first
// interval from its current time.
func (m *Monitor[T, R]) WithClock(clock Clock) *Monitor[T, R] {
	m.clock = clock
	m.lastTime = clock.Now()
	return m
}

// WithName sets a custom name for this collector.
func (m *Monitor[T, R]) WithName(name string) *Monitor[T, R] {
	m.name = name
	return m
}

func (m *Monitor[T, R]) Collect(item T) Signal {
	m.checkOpen(m.name, "Collect")
	m.observe()
	return m.inner.collect(item)
}

func (m *Monitor[T, R]) CollectRef(item *T) Signal {
	m.checkOpen(m.name, "CollectRef")
	m.observe()
	return m.inner.offer(item)
}

func (m *Monitor[T, R]) observe() {
	m.count++
	m.total++
	if m.interval > 0 && m.clock.Now().Sub(m.lastTime) >= m.interval {
		m.reportStats()
	}
}

func (m *Monitor[T, R]) reportStats() {
	now := m.clock.Now()
	duration := now.Sub(m.lastTime).Seconds()

	rate := 0.0
	if duration > 0 {
		rate = float64(m.count) / duration
	}

	stats := StreamStats{
		Count:      m.count,
		Total:      m.total,
		Rate:       rate,
		LastUpdate: now,
	}

	if m.onStats != nil {
		m.onStats(stats)
	}

	m.count = 0
	m.lastTime = now
}

func (m *Monitor[T, R]) StopHint() Signal {
	return m.inner.signal()
}

// Finish reports the final statistics and finishes the inner collector.
func (m *Monitor[T, R]) Finish() R {
	m.finish(m.name)
	m.reportStats()
	return m.inner.finish()
}

func (m *Monitor[T, R]) Name() string {
	return m.name
}
