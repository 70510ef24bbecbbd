package collectz

import (
	"iter"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Producer yields items one at a time in a fixed order. Next returns false
// once the producer is exhausted.
type Producer[T any] interface {
	Next() (T, bool)
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc[T any] func() (T, bool)

// Next calls f.
func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}

// Collect feeds the items of seq to c in order and returns c's result.
// It stops pulling from seq as soon as c reports Stop, so an infinite
// sequence terminates exactly when some collector in the tree is done.
// Items are handed over by value: the driver does not use them afterwards.
//
// Example:
//
//	total := collectz.Collect(slices.Values(prices), collectz.NewSum[float64]())
//
//	// Stops after the first five lines; the rest of the file is never read.
//	head := collectz.Collect(lines, collectz.NewTake(5, collectz.NewToSlice[string]()))
func Collect[T, R any](seq iter.Seq[T], c Collector[T, R]) R {
	if stopHint(c).IsContinue() {
		for item := range seq {
			if c.Collect(item).IsStop() {
				break
			}
		}
	}
	return c.Finish()
}

// CollectSlice feeds the elements of items to c in order and returns c's
// result. The slice belongs to the caller, so when c is reference-capable
// its elements are lent with CollectRef instead of being copied out.
func CollectSlice[T, R any](items []T, c Collector[T, R]) R {
	if stopHint(c).IsStop() {
		return c.Finish()
	}
	if ref, ok := c.(RefCollector[T, R]); ok {
		for i := range items {
			if ref.CollectRef(&items[i]).IsStop() {
				break
			}
		}
		return c.Finish()
	}
	for _, item := range items {
		if c.Collect(item).IsStop() {
			break
		}
	}
	return c.Finish()
}

// CollectFrom pulls items from p until it is exhausted or c reports Stop,
// then returns c's result. p is never pulled again after Stop.
func CollectFrom[T, R any](p Producer[T], c Collector[T, R]) R {
	return Collect(FromProducer(p), c)
}

// FromProducer adapts a Producer to an iter.Seq.
func FromProducer[T any](p Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := p.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// FromSlice returns a sequence over the elements of items.
func FromSlice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// FromChan returns a sequence that receives from ch until it is closed.
// Abandoning the sequence early leaves the remaining items in ch.
func FromChan[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// QueueSource is a Producer that drains an lfq SPSC queue without blocking.
// It is exhausted as soon as the queue is empty; Err reports any failure
// other than the queue being empty.
type QueueSource[T any] struct {
	q   *lfq.SPSC[T]
	err error
}

// NewQueueSource creates a Producer over q. The caller must be q's only
// consumer for the lifetime of the source.
//
// Example:
//
//	var q lfq.SPSC[Event]
//	q.Init(1024)
//	// ... producer goroutine enqueues ...
//	src := collectz.NewQueueSource(&q)
//	batch := collectz.CollectFrom(src, collectz.NewToSlice[Event]())
//	if err := src.Err(); err != nil {
//		return err
//	}
func NewQueueSource[T any](q *lfq.SPSC[T]) *QueueSource[T] {
	return &QueueSource[T]{q: q}
}

func (s *QueueSource[T]) Next() (T, bool) {
	item, err := s.q.Dequeue()
	if err != nil {
		if !iox.IsWouldBlock(err) {
			s.err = err
		}
		var zero T
		return zero, false
	}
	return item, true
}

// Err returns the failure that ended the drain, or nil if the queue was
// simply empty.
func (s *QueueSource[T]) Err() error {
	return s.err
}
