package collectz

import (
	"errors"
	"fmt"
	"time"
)

// ErrFinished is wrapped by the UsageError raised when a collector is fed or
// finished after it has already been finished.
var ErrFinished = errors.New("collector already finished")

// UsageError reports a violation of the collector lifecycle. It is raised
// with panic: a collector that has been finished cannot be used again, and
// there is no meaningful way to recover its state.
type UsageError struct {
	// Collector is the name of the misused collector.
	Collector string

	// Op is the operation that was attempted ("Collect", "CollectRef" or "Finish").
	Op string

	// Err is the lifecycle rule that was broken.
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("collectz: %s.%s: %v", e.Collector, e.Op, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is(err, ErrFinished).
func (e *UsageError) Unwrap() error {
	return e.Err
}

// StreamError represents an error that occurred while accumulating an item.
// It captures both the item that caused the error and the error itself.
// Collectors never fail on their own; StreamError only travels inside a
// fallible leaf's Result output.
//
//nolint:govet // fieldalignment: struct layout optimized for readability over memory
type StreamError[T any] struct {
	// Item is the original item that caused the error.
	Item T

	// Err is the underlying error.
	Err error

	// ProcessorName identifies which collector generated the error.
	ProcessorName string

	// Timestamp records when the error occurred.
	Timestamp time.Time
}

// NewStreamError creates a new StreamError with the current timestamp.
func NewStreamError[T any](item T, err error, processorName string) *StreamError[T] {
	return newStreamErrorAt(item, err, processorName, RealClock)
}

func newStreamErrorAt[T any](item T, err error, processorName string, clock Clock) *StreamError[T] {
	return &StreamError[T]{
		Item:          item,
		Err:           err,
		ProcessorName: processorName,
		Timestamp:     clock.Now(),
	}
}

// String returns a human-readable representation of the error.
func (se *StreamError[T]) String() string {
	return fmt.Sprintf("StreamError[%s]: %v (item: %v, time: %s)",
		se.ProcessorName, se.Err, se.Item, se.Timestamp.Format(time.RFC3339))
}

// Unwrap returns the underlying error, enabling error wrapping chains.
func (se *StreamError[T]) Unwrap() error {
	return se.Err
}

// Error implements the error interface.
func (se *StreamError[T]) Error() string {
	return se.String()
}
