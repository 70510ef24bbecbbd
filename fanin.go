package collectz

import "slices"

// FanIn merges multiple producers into a single producer. It takes one item
// from each live source in turn, so a traversal interleaves the sources
// fairly; an exhausted source is skipped from then on.
type FanIn[T any] struct {
	sources []Producer[T]
	next    int
	name    string
}

// NewFanIn creates a producer that merges sources round-robin. The sources
// slice is copied; the caller's slice is left as it was.
//
// When to use:
//   - Aggregating data from multiple sources in one pass
//   - Merging event streams from different services
//   - Consolidating logs or metrics
//
// Example:
//
//	// One report over the queues of three services.
//	merged := collectz.NewFanIn[Event](
//		collectz.NewQueueSource(&serviceA),
//		collectz.NewQueueSource(&serviceB),
//		collectz.NewQueueSource(&serviceC),
//	)
//	report := collectz.CollectFrom(merged, reportCollector)
func NewFanIn[T any](sources ...Producer[T]) *FanIn[T] {
	return &FanIn[T]{
		sources: slices.Clone(sources),
		name:    "fanin",
	}
}

// WithName sets a custom name for this producer.
func (f *FanIn[T]) WithName(name string) *FanIn[T] {
	f.name = name
	return f
}

// Next returns the next item from the following live source.
func (f *FanIn[T]) Next() (T, bool) {
	for len(f.sources) > 0 {
		if f.next >= len(f.sources) {
			f.next = 0
		}
		item, ok := f.sources[f.next].Next()
		if ok {
			f.next++
			return item, true
		}
		// Drop the exhausted source; the following one slides into place.
		f.sources = append(f.sources[:f.next], f.sources[f.next+1:]...)
	}
	var zero T
	return zero, false
}

func (f *FanIn[T]) Name() string {
	return f.name
}
