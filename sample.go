package collectz

import (
	"crypto/rand"
	"encoding/binary"
)

// Sample randomly selects the items delivered to a collector based on a
// sampling rate. By default it uses cryptographically secure randomness to
// ensure unbiased sampling, making it suitable for statistical sampling and
// data reduction.
type Sample[T, R any] struct {
	lifecycle
	inner  branch[T, R]
	random func() float64
	rate   float64
	name   string
}

// NewSample creates a collector that delivers each item to c with an
// independent probability of rate.
//
// When to use:
//   - Estimating aggregates over very large streams
//   - Statistical sampling for quality control
//   - Keeping a representative subset alongside exact totals
//
// Example:
//
//	// Exact count plus a 1% sample for inspection.
//	c := collectz.NewTee(
//		collectz.NewCount[Event](),
//		collectz.NewSample(0.01, collectz.NewToSlice[Event]()),
//	)
//
// Parameters:
//   - rate: Sampling rate between 0.0 and 1.0 (0.1 = 10%, 1.0 = 100%); at or
//     below 0 nothing can be sampled and the collector reports Stop
//   - c: Collector receiving the sampled items
func NewSample[T, R any](rate float64, c Collector[T, R]) *Sample[T, R] {
	return &Sample[T, R]{
		inner:  newBranch(c),
		random: secureFloat64,
		rate:   rate,
		name:   "sample",
	}
}

// WithRandom replaces the source of uniform values in [0, 1).
// Use a seeded source for reproducible samples.
func (s *Sample[T, R]) WithRandom(random func() float64) *Sample[T, R] {
	s.random = random
	return s
}

// WithName sets a custom name for this collector.
func (s *Sample[T, R]) WithName(name string) *Sample[T, R] {
	s.name = name
	return s
}

func (s *Sample[T, R]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	if s.rate <= 0 {
		return Stop
	}
	if !s.shouldSample() {
		return s.inner.signal()
	}
	return s.inner.collect(item)
}

func (s *Sample[T, R]) CollectRef(item *T) Signal {
	s.checkOpen(s.name, "CollectRef")
	if s.rate <= 0 {
		return Stop
	}
	if !s.shouldSample() {
		return s.inner.signal()
	}
	return s.inner.offer(item)
}

func (s *Sample[T, R]) shouldSample() bool {
	if s.inner.stopped {
		return false
	}
	return s.random() < s.rate
}

func (s *Sample[T, R]) StopHint() Signal {
	if s.rate <= 0 {
		return Stop
	}
	return s.inner.signal()
}

func (s *Sample[T, R]) Finish() R {
	s.finish(s.name)
	return s.inner.finish()
}

func (s *Sample[T, R]) Name() string {
	return s.name
}

// secureFloat64 returns a uniform value in [0, 1), or 1 when the system
// random source fails so that nothing is sampled.
func secureFloat64() float64 {
	var b [8]byte
	_, err := rand.Read(b[:])
	if err != nil {
		return 1
	}

	// Convert to float64 in range [0, 1)
	val := binary.BigEndian.Uint64(b[:]) >> 11 // Use 53 bits for mantissa
	return float64(val) / (1 << 53)
}
