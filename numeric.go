package collectz

import (
	"cmp"
	"fmt"
)

// Number is satisfied by the built-in integer and floating point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Count counts the items it is offered.
type Count[T any] struct {
	lifecycle
	n    int
	name string
}

// NewCount creates a collector that counts items.
func NewCount[T any]() *Count[T] {
	return &Count[T]{name: "count"}
}

// WithName sets a custom name for this collector.
func (c *Count[T]) WithName(name string) *Count[T] {
	c.name = name
	return c
}

func (c *Count[T]) Collect(T) Signal {
	c.checkOpen(c.name, "Collect")
	c.n++
	return Continue
}

func (c *Count[T]) CollectRef(*T) Signal {
	c.checkOpen(c.name, "CollectRef")
	c.n++
	return Continue
}

func (c *Count[T]) Finish() int {
	c.finish(c.name)
	return c.n
}

func (c *Count[T]) Name() string {
	return c.name
}

// Sum adds up numeric items. An empty stream sums to zero.
type Sum[T Number] struct {
	lifecycle
	total T
	name  string
}

// NewSum creates a collector that sums items.
func NewSum[T Number]() *Sum[T] {
	return &Sum[T]{name: "sum"}
}

// WithName sets a custom name for this collector.
func (s *Sum[T]) WithName(name string) *Sum[T] {
	s.name = name
	return s
}

func (s *Sum[T]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	s.total += item
	return Continue
}

func (s *Sum[T]) CollectRef(item *T) Signal {
	s.checkOpen(s.name, "CollectRef")
	s.total += *item
	return Continue
}

func (s *Sum[T]) Finish() T {
	s.finish(s.name)
	return s.total
}

func (s *Sum[T]) Name() string {
	return s.name
}

// Product multiplies numeric items. An empty stream has a product of one.
type Product[T Number] struct {
	lifecycle
	total T
	name  string
}

// NewProduct creates a collector that multiplies items.
func NewProduct[T Number]() *Product[T] {
	return &Product[T]{total: 1, name: "product"}
}

// WithName sets a custom name for this collector.
func (p *Product[T]) WithName(name string) *Product[T] {
	p.name = name
	return p
}

func (p *Product[T]) Collect(item T) Signal {
	p.checkOpen(p.name, "Collect")
	p.total *= item
	return Continue
}

func (p *Product[T]) CollectRef(item *T) Signal {
	p.checkOpen(p.name, "CollectRef")
	p.total *= *item
	return Continue
}

func (p *Product[T]) Finish() T {
	p.finish(p.name)
	return p.total
}

func (p *Product[T]) Name() string {
	return p.name
}

// Extremum keeps the best item seen according to a comparison function.
// Min, Max, MinBy and MaxBy are all Extremum values: the minimum keeps the
// first of equal items, the maximum keeps the last.
type Extremum[T any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	best    Option[T]
	compare func(a, b T) int
	// replace reports whether a candidate with the given comparison
	// against the current best should take its place.
	replace func(c int) bool
	name    string
}

// NewMin creates a collector that finds the smallest item.
func NewMin[T cmp.Ordered]() *Extremum[T] {
	return NewMinBy(cmp.Compare[T]).WithName("min")
}

// NewMax creates a collector that finds the largest item.
func NewMax[T cmp.Ordered]() *Extremum[T] {
	return NewMaxBy(cmp.Compare[T]).WithName("max")
}

// NewMinBy creates a collector that finds the smallest item according to
// compare, which returns a negative number when a < b, zero when equal and
// a positive number when a > b.
//
// Example:
//
//	fastest := collectz.NewMinBy(func(a, b Request) int {
//	    return cmp.Compare(a.Latency, b.Latency)
//	})
func NewMinBy[T any](compare func(a, b T) int) *Extremum[T] {
	return &Extremum[T]{
		compare: compare,
		replace: func(c int) bool { return c < 0 },
		name:    "min-by",
	}
}

// NewMaxBy creates a collector that finds the largest item according to
// compare.
func NewMaxBy[T any](compare func(a, b T) int) *Extremum[T] {
	return &Extremum[T]{
		compare: compare,
		replace: func(c int) bool { return c >= 0 },
		name:    "max-by",
	}
}

// WithName sets a custom name for this collector.
func (e *Extremum[T]) WithName(name string) *Extremum[T] {
	e.name = name
	return e
}

func (e *Extremum[T]) Collect(item T) Signal {
	e.checkOpen(e.name, "Collect")
	e.consider(&item)
	return Continue
}

// CollectRef copies the item only when it becomes the new best.
func (e *Extremum[T]) CollectRef(item *T) Signal {
	e.checkOpen(e.name, "CollectRef")
	e.consider(item)
	return Continue
}

func (e *Extremum[T]) consider(item *T) {
	best, ok := e.best.Get()
	if !ok || e.replace(e.compare(*item, best)) {
		e.best = Some(*item)
	}
}

func (e *Extremum[T]) Finish() Option[T] {
	e.finish(e.name)
	return e.best
}

func (e *Extremum[T]) Name() string {
	return e.name
}

// MinMax tracks minimum and maximum values.
type MinMax[T any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	Min   T
	Max   T
	Count int
}

// String returns a string representation of the min/max values.
func (mm MinMax[T]) String() string {
	return fmt.Sprintf("Min: %v, Max: %v, Count: %d", mm.Min, mm.Max, mm.Count)
}

// MinMaxCollector tracks both extremes in one pass. Its output has a zero
// Count for an empty stream.
type MinMaxCollector[T cmp.Ordered] struct {
	lifecycle
	mm   MinMax[T]
	name string
}

// NewMinMax creates a collector that tracks the smallest and largest item.
func NewMinMax[T cmp.Ordered]() *MinMaxCollector[T] {
	return &MinMaxCollector[T]{name: "min-max"}
}

// WithName sets a custom name for this collector.
func (m *MinMaxCollector[T]) WithName(name string) *MinMaxCollector[T] {
	m.name = name
	return m
}

func (m *MinMaxCollector[T]) Collect(item T) Signal {
	m.checkOpen(m.name, "Collect")
	m.add(item)
	return Continue
}

func (m *MinMaxCollector[T]) CollectRef(item *T) Signal {
	m.checkOpen(m.name, "CollectRef")
	m.add(*item)
	return Continue
}

func (m *MinMaxCollector[T]) add(item T) {
	if m.mm.Count == 0 {
		m.mm = MinMax[T]{Min: item, Max: item, Count: 1}
		return
	}
	if item < m.mm.Min {
		m.mm.Min = item
	}
	if item > m.mm.Max {
		m.mm.Max = item
	}
	m.mm.Count++
}

func (m *MinMaxCollector[T]) Finish() MinMax[T] {
	m.finish(m.name)
	return m.mm
}

func (m *MinMaxCollector[T]) Name() string {
	return m.name
}
