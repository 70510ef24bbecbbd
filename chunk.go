package collectz

// Chunk groups items into fixed-size slices without time constraints.
// Unlike TumblingWindow which groups by clock time, Chunk only delivers
// when exactly 'size' items have been gathered, making it predictable
// for fixed-size batch aggregates.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Chunk[T, R any] struct {
	lifecycle
	inner branch[[]T, R]
	chunk []T
	size  int
	name  string
}

// NewChunk creates a collector that groups items into fixed-size chunks and
// delivers each chunk to c. The last chunk may be smaller if the stream ends
// before filling completely: it is delivered on Finish.
//
// When to use:
//   - Aggregating data in fixed-size batches
//   - Computing per-page statistics
//   - Fixed-size packets or matrix rows
//
// Example:
//
//	// Average of every 100 readings
//	averages := collectz.NewChunk(100, collectz.NewMap(collectz.NewToSlice[float64](), mean))
//
//	// Fixed-size matrix rows
//	rows := collectz.NewChunk(4, collectz.NewToSlice[[]float64]())
//
// Parameters:
//   - size: Number of items per chunk (values below 1 are treated as 1)
//   - c: Collector receiving each chunk
//
// Each delivered chunk is a fresh slice the inner collector may keep.
func NewChunk[T, R any](size int, c Collector[[]T, R]) *Chunk[T, R] {
	if size < 1 {
		size = 1
	}
	return &Chunk[T, R]{
		inner: newBranch(c),
		chunk: make([]T, 0, size),
		size:  size,
		name:  "chunk",
	}
}

// WithName sets a custom name for this collector.
func (c *Chunk[T, R]) WithName(name string) *Chunk[T, R] {
	c.name = name
	return c
}

func (c *Chunk[T, R]) Collect(item T) Signal {
	c.checkOpen(c.name, "Collect")
	if c.inner.stopped {
		return Stop
	}
	c.chunk = append(c.chunk, item)
	if len(c.chunk) < c.size {
		return Continue
	}
	full := c.chunk
	c.chunk = make([]T, 0, c.size)
	return c.inner.collect(full)
}

func (c *Chunk[T, R]) StopHint() Signal {
	return c.inner.signal()
}

// Finish delivers the partial trailing chunk, if any, and finishes the inner
// collector.
func (c *Chunk[T, R]) Finish() R {
	c.finish(c.name)
	if len(c.chunk) > 0 {
		c.inner.collect(c.chunk)
		c.chunk = nil
	}
	return c.inner.finish()
}

func (c *Chunk[T, R]) Name() string {
	return c.name
}
