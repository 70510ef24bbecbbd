package collectz

import (
	"context"
	"strings"
)

// ToSlice gathers every item into a slice, in order.
type ToSlice[T any] struct {
	lifecycle
	items []T
	name  string
}

// NewToSlice creates a collector that gathers items into a slice.
// An empty stream yields an empty, non-nil slice.
func NewToSlice[T any]() *ToSlice[T] {
	return &ToSlice[T]{items: []T{}, name: "to-slice"}
}

// WithCapacity preallocates room for n items.
func (s *ToSlice[T]) WithCapacity(n int) *ToSlice[T] {
	if n > cap(s.items) {
		grown := make([]T, len(s.items), n)
		copy(grown, s.items)
		s.items = grown
	}
	return s
}

// WithName sets a custom name for this collector.
func (s *ToSlice[T]) WithName(name string) *ToSlice[T] {
	s.name = name
	return s
}

func (s *ToSlice[T]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	s.items = append(s.items, item)
	return Continue
}

func (s *ToSlice[T]) Finish() []T {
	s.finish(s.name)
	items := s.items
	s.items = nil
	return items
}

func (s *ToSlice[T]) Name() string {
	return s.name
}

// ToMap gathers key/value pairs into a map. Later pairs overwrite earlier
// ones with the same key.
type ToMap[K comparable, V any] struct {
	lifecycle
	m    map[K]V
	name string
}

// NewToMap creates a collector that gathers pairs into a map.
//
// Example:
//
//	// Latest status per host
//	status := collectz.NewMap(collectz.NewToMap[string, string](), func(e Event) collectz.Pair[string, string] {
//	    return collectz.Pair[string, string]{First: e.Host, Second: e.Status}
//	})
func NewToMap[K comparable, V any]() *ToMap[K, V] {
	return &ToMap[K, V]{m: make(map[K]V), name: "to-map"}
}

// WithName sets a custom name for this collector.
func (m *ToMap[K, V]) WithName(name string) *ToMap[K, V] {
	m.name = name
	return m
}

func (m *ToMap[K, V]) Collect(item Pair[K, V]) Signal {
	m.checkOpen(m.name, "Collect")
	m.m[item.First] = item.Second
	return Continue
}

func (m *ToMap[K, V]) Finish() map[K]V {
	m.finish(m.name)
	out := m.m
	m.m = nil
	return out
}

func (m *ToMap[K, V]) Name() string {
	return m.name
}

// ToSet gathers the distinct items into a set.
type ToSet[T comparable] struct {
	lifecycle
	set  map[T]struct{}
	name string
}

// NewToSet creates a collector that gathers distinct items.
func NewToSet[T comparable]() *ToSet[T] {
	return &ToSet[T]{set: make(map[T]struct{}), name: "to-set"}
}

// WithName sets a custom name for this collector.
func (s *ToSet[T]) WithName(name string) *ToSet[T] {
	s.name = name
	return s
}

func (s *ToSet[T]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	s.set[item] = struct{}{}
	return Continue
}

// CollectRef copies the item only when it is not already in the set.
func (s *ToSet[T]) CollectRef(item *T) Signal {
	s.checkOpen(s.name, "CollectRef")
	if _, ok := s.set[*item]; !ok {
		s.set[*item] = struct{}{}
	}
	return Continue
}

func (s *ToSet[T]) Finish() map[T]struct{} {
	s.finish(s.name)
	out := s.set
	s.set = nil
	return out
}

func (s *ToSet[T]) Name() string {
	return s.name
}

// Concat joins strings, optionally separated.
type Concat struct {
	lifecycle
	b         strings.Builder
	sep       string
	populated bool
	name      string
}

// NewConcat creates a collector that concatenates strings.
func NewConcat() *Concat {
	return &Concat{name: "concat"}
}

// WithSeparator inserts sep between consecutive strings.
func (c *Concat) WithSeparator(sep string) *Concat {
	c.sep = sep
	return c
}

// WithName sets a custom name for this collector.
func (c *Concat) WithName(name string) *Concat {
	c.name = name
	return c
}

func (c *Concat) Collect(item string) Signal {
	c.checkOpen(c.name, "Collect")
	c.write(item)
	return Continue
}

func (c *Concat) CollectRef(item *string) Signal {
	c.checkOpen(c.name, "CollectRef")
	c.write(*item)
	return Continue
}

func (c *Concat) write(s string) {
	if c.populated {
		c.b.WriteString(c.sep)
	}
	c.b.WriteString(s)
	c.populated = true
}

func (c *Concat) Finish() string {
	c.finish(c.name)
	return c.b.String()
}

func (c *Concat) Name() string {
	return c.name
}

// ToChan sends every item on a channel. Sends block until received or until
// the context is canceled, at which point the collector reports Stop.
// Its output is the number of items sent. ToChan never closes the channel.
type ToChan[T any] struct {
	lifecycle
	ctx  context.Context
	out  chan<- T
	sent int
	done bool
	name string
}

// NewToChan creates a collector that forwards items to out.
//
// Example:
//
//	// Feed a worker while computing a total in the same pass.
//	work := make(chan Job)
//	go worker(work)
//	c := collectz.NewTee(collectz.NewToChan(ctx, work), collectz.NewCount[Job]())
//	out := collectz.Collect(jobs, c)
//	close(work)
func NewToChan[T any](ctx context.Context, out chan<- T) *ToChan[T] {
	return &ToChan[T]{ctx: ctx, out: out, name: "to-chan"}
}

// WithName sets a custom name for this collector.
func (c *ToChan[T]) WithName(name string) *ToChan[T] {
	c.name = name
	return c
}

func (c *ToChan[T]) Collect(item T) Signal {
	c.checkOpen(c.name, "Collect")
	if c.done {
		return Stop
	}
	select {
	case c.out <- item:
		c.sent++
		return Continue
	case <-c.ctx.Done():
		c.done = true
		return Stop
	}
}

func (c *ToChan[T]) StopHint() Signal {
	if c.done || c.ctx.Err() != nil {
		return Stop
	}
	return Continue
}

func (c *ToChan[T]) Finish() int {
	c.finish(c.name)
	return c.sent
}

func (c *ToChan[T]) Name() string {
	return c.name
}

// Sink discards every item.
type Sink[T any] struct {
	lifecycle
	name string
}

// NewSink creates a collector that accepts and discards items.
func NewSink[T any]() *Sink[T] {
	return &Sink[T]{name: "sink"}
}

// WithName sets a custom name for this collector.
func (s *Sink[T]) WithName(name string) *Sink[T] {
	s.name = name
	return s
}

func (s *Sink[T]) Collect(T) Signal {
	s.checkOpen(s.name, "Collect")
	return Continue
}

func (s *Sink[T]) CollectRef(*T) Signal {
	s.checkOpen(s.name, "CollectRef")
	return Continue
}

func (s *Sink[T]) Finish() struct{} {
	s.finish(s.name)
	return struct{}{}
}

func (s *Sink[T]) Name() string {
	return s.name
}
