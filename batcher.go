package collectz

import (
	"time"
)

// BatchConfig configures batching behavior for the Batcher collector.
type BatchConfig struct {
	// MaxLatency is the maximum age of a batch. An item arriving this long
	// after the batch's first item is placed in a new batch. Zero disables
	// the time limit.
	MaxLatency time.Duration

	// MaxSize is the maximum number of items in a batch.
	// A batch is delivered immediately when it reaches this size.
	// Values below 1 are treated as 1.
	MaxSize int
}

// Batcher groups items into batches based on size or time constraints and
// delivers each batch to a collector. A batch is closed when either the
// maximum size is reached or the maximum latency has passed, whichever
// comes first.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Batcher[T, R any] struct {
	lifecycle
	inner   branch[[]T, R]
	config  BatchConfig
	batch   []T
	started time.Time
	name    string
	clock   Clock
}

// NewBatcher creates a collector that groups items into batches.
// Because a collector only runs when it is offered an item, an expired
// batch is delivered when the next item arrives, or on Finish.
//
// When to use:
//   - Per-batch statistics over a time-ordered stream
//   - Reproducing the batches a bulk writer would see
//   - Bounding memory of a downstream slice aggregate
//
// Example:
//
//	// Batch up to 1000 items or 5 seconds, whichever comes first
//	sizes := collectz.NewBatcher(collectz.BatchConfig{
//		MaxSize:    1000,
//		MaxLatency: 5 * time.Second,
//	}, collectz.NewMap(collectz.NewToSlice[int](), func(b []Event) int { return len(b) }))
//
// Parameters:
//   - config: Batch configuration with size and latency constraints
//   - c: Collector receiving each batch
func NewBatcher[T, R any](config BatchConfig, c Collector[[]T, R]) *Batcher[T, R] {
	if config.MaxSize < 1 {
		config.MaxSize = 1
	}
	return &Batcher[T, R]{
		inner:  newBranch(c),
		config: config,
		name:   "batcher",
		clock:  RealClock,
	}
}

// WithClock sets the clock used to age batches.
func (b *Batcher[T, R]) WithClock(clock Clock) *Batcher[T, R] {
	b.clock = clock
	return b
}

// WithName sets a custom name for this collector.
func (b *Batcher[T, R]) WithName(name string) *Batcher[T, R] {
	b.name = name
	return b
}

func (b *Batcher[T, R]) Collect(item T) Signal {
	b.checkOpen(b.name, "Collect")
	if b.inner.stopped {
		return Stop
	}
	if b.config.MaxLatency > 0 {
		now := b.clock.Now()
		if len(b.batch) > 0 && now.Sub(b.started) >= b.config.MaxLatency {
			if b.flush().IsStop() {
				return Stop
			}
		}
		if len(b.batch) == 0 {
			b.started = now
		}
	}
	b.batch = append(b.batch, item)
	if len(b.batch) >= b.config.MaxSize {
		return b.flush()
	}
	return Continue
}

func (b *Batcher[T, R]) flush() Signal {
	batch := b.batch
	b.batch = nil
	return b.inner.collect(batch)
}

func (b *Batcher[T, R]) StopHint() Signal {
	return b.inner.signal()
}

// Finish delivers the partial batch, if any, and finishes the inner collector.
func (b *Batcher[T, R]) Finish() R {
	b.finish(b.name)
	if len(b.batch) > 0 {
		b.flush()
	}
	return b.inner.finish()
}

func (b *Batcher[T, R]) Name() string {
	return b.name
}
