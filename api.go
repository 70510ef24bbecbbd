// Package collectz provides type-safe, composable single-pass collectors.
// A collector consumes the items of a sequence one at a time and, once the
// sequence is exhausted or the collector is done, produces a final result.
// Collectors compose: several independent aggregations can be described
// declaratively and computed together in one traversal, without retaining
// the sequence or buffering more than the current item.
//
// The core abstraction is the Collector interface. Every call to Collect
// returns a Signal: Continue asks for more items, Stop tells the caller the
// collector is done and must not be fed again. A RefCollector can also
// consume an item by reference, leaving it available to further consumers.
//
// Basic usage:
//
//	// Count the words while also keeping them, in one pass.
//	words := []string{"alpha", "beta", "gamma"}
//	c := collectz.NewThen(collectz.NewCount[string](), collectz.NewToSlice[string]())
//	out := collectz.CollectSlice(words, c)
//	fmt.Println(out.First, out.Second) // 3 [alpha beta gamma]
//
// The package provides combinators for common composition patterns:
//   - Sequential pass-through (Then) and hand-off (Chain)
//   - Fan-out (Tee, TeeClone, TeeFunnel, TeeWith, FanOut, Unzip)
//   - Transformation (Map, MapRef, MapOutput, Enumerate, FlatMap)
//   - Limiting and filtering (Take, TakeWhile, Skip, SkipWhile, Filter, FilterMap)
//   - Routing (Split, SplitMap, Partition, DeadLetter)
//   - Grouping (GroupBy, Chunk, Flatten, TumblingWindow, Dedupe)
//   - Observability (Tap, Monitor)
//
// Pass-through adapters (Take, Skip, Filter, Tap, ...) are always
// reference-capable: they lend a borrowed item onward when the wrapped
// collector can borrow it, and hand the wrapped collector a copy otherwise.
//
// The package also provides leaf accumulators (Count, Sum, Min, Max, Fold, ToSlice, ...) to build on.
package collectz

// Signal is the control-flow outcome of a single Collect call.
type Signal uint8

const (
	// Continue asks the caller to keep feeding items.
	Continue Signal = iota
	// Stop reports that the collector is done. The caller must not feed it
	// again and should finish it.
	Stop
)

// IsStop reports whether s is Stop.
func (s Signal) IsStop() bool { return s == Stop }

// IsContinue reports whether s is Continue.
func (s Signal) IsContinue() bool { return s == Continue }

func (s Signal) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// both is Stop only when a and b are both Stop.
func both(a, b Signal) Signal {
	if a == Stop && b == Stop {
		return Stop
	}
	return Continue
}

// Collector is the core interface for single-pass accumulation.
// Implementations should:
//   - Return Stop as soon as they cannot make use of further items
//   - Treat items arriving after Stop as no-ops
//   - Produce a result from Finish regardless of the last Signal
//
// Finish consumes the collector: it may be called once, after the last
// Collect call, and no Collect call is valid afterwards.
type Collector[T, R any] interface {
	// Collect consumes an owned item. The collector may retain it.
	Collect(item T) Signal

	// Finish returns the final result.
	Finish() R
}

// RefCollector is a Collector that can also consume an item by reference.
// The pointer is only valid for the duration of the call; it must not be
// retained. A RefCollector must produce the same result whether its items
// arrive through Collect or CollectRef.
type RefCollector[T, R any] interface {
	Collector[T, R]

	// CollectRef consumes a borrowed item.
	CollectRef(item *T) Signal
}

// Hinter is implemented by collectors that can report, without consuming an
// item, that they will accept nothing more (for example Take(0)).
// Combinators and the driver consult it before the first item is delivered.
type Hinter interface {
	StopHint() Signal
}

// Pair is the result of a two-branch combinator.
type Pair[A, B any] struct {
	First  A
	Second B
}

// stopHint returns c's hint, or Continue when c is not a Hinter.
func stopHint(c any) Signal {
	if h, ok := c.(Hinter); ok {
		return h.StopHint()
	}
	return Continue
}
