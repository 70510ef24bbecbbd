package collectz

import (
	"time"
)

// Window represents a time-bounded collection of items.
// It's used by windowing collectors to group items for aggregation.
type Window[T any] struct {
	Start time.Time
	End   time.Time
	Items []T
}

// Count returns the number of items in the window.
func (w Window[T]) Count() int {
	return len(w.Items)
}

// Contains reports whether t falls inside the half-open range [Start, End).
func (w Window[T]) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
