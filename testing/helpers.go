// Package testing provides test utilities for collectz.
package testing

import (
	"testing"
	"time"

	"github.com/zoobzio/collectz"
)

// Recorder is a collector that keeps every item it is given and records how
// it was driven. It accepts borrowed items, and it flags protocol violations
// such as deliveries after Stop or after Finish instead of panicking, so a
// test can assert on them.
type Recorder[T any] struct {
	items      []T
	owned      int
	borrowed   int
	finishes   int
	afterStop  int
	afterClose int
	limit      int
	stopped    bool
}

// NewRecorder creates a Recorder that never stops on its own.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// StopAfter makes the Recorder report Stop once it holds n items.
func (r *Recorder[T]) StopAfter(n int) *Recorder[T] {
	r.limit = n
	return r
}

func (r *Recorder[T]) Collect(item T) collectz.Signal {
	r.owned++
	return r.add(item)
}

func (r *Recorder[T]) CollectRef(item *T) collectz.Signal {
	r.borrowed++
	return r.add(*item)
}

func (r *Recorder[T]) add(item T) collectz.Signal {
	if r.finishes > 0 {
		r.afterClose++
	}
	if r.stopped {
		r.afterStop++
	}
	r.items = append(r.items, item)
	if r.limit > 0 && len(r.items) >= r.limit {
		r.stopped = true
		return collectz.Stop
	}
	return collectz.Continue
}

func (r *Recorder[T]) StopHint() collectz.Signal {
	if r.limit > 0 && len(r.items) >= r.limit {
		return collectz.Stop
	}
	return collectz.Continue
}

func (r *Recorder[T]) Finish() []T {
	r.finishes++
	return r.items
}

// Items returns the items received so far.
func (r *Recorder[T]) Items() []T { return r.items }

// Owned returns how many items arrived through Collect.
func (r *Recorder[T]) Owned() int { return r.owned }

// Borrowed returns how many items arrived through CollectRef.
func (r *Recorder[T]) Borrowed() int { return r.borrowed }

// Finishes returns how many times Finish was called.
func (r *Recorder[T]) Finishes() int { return r.finishes }

// Violations returns the number of items delivered after the Recorder
// reported Stop plus those delivered after Finish.
func (r *Recorder[T]) Violations() int { return r.afterStop + r.afterClose }

// Producer yields items from a slice and counts how many were pulled.
type Producer[T any] struct {
	items  []T
	pulled int
}

// NewProducer creates a Producer over items.
func NewProducer[T any](items ...T) *Producer[T] {
	return &Producer[T]{items: items}
}

func (p *Producer[T]) Next() (T, bool) {
	if p.pulled >= len(p.items) {
		var zero T
		return zero, false
	}
	item := p.items[p.pulled]
	p.pulled++
	return item, true
}

// Pulled returns the number of items handed out.
func (p *Producer[T]) Pulled() int { return p.pulled }

// Naturals is an endless producer of 1, 2, 3, ... that counts pulls.
type Naturals struct {
	pulled int
}

func (n *Naturals) Next() (int, bool) {
	n.pulled++
	return n.pulled, true
}

// Pulled returns the number of items handed out.
func (n *Naturals) Pulled() int { return n.pulled }

// DrainWithTimeout receives from ch until it is closed or timeout elapses.
// It pairs with collectz.ToChan when a test consumes on another goroutine.
func DrainWithTimeout[T any](t *testing.T, ch <-chan T, timeout time.Duration) []T {
	t.Helper()

	var items []T
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case item, ok := <-ch:
			if !ok {
				return items
			}
			items = append(items, item)
		case <-timer.C:
			return items
		}
	}
}

// Successes wraps values as successful Results.
func Successes[T any](values ...T) []collectz.Result[T] {
	results := make([]collectz.Result[T], len(values))
	for i, v := range values {
		results[i] = collectz.NewSuccess(v)
	}
	return results
}

// AssertResultCount verifies the expected number of results were received.
func AssertResultCount[T any](t *testing.T, results []collectz.Result[T], expected int) {
	t.Helper()

	if len(results) != expected {
		t.Errorf("expected %d results, got %d", expected, len(results))
	}
}

// AssertAllSuccess verifies all results are successful.
func AssertAllSuccess[T any](t *testing.T, results []collectz.Result[T]) {
	t.Helper()

	for i, r := range results {
		if r.IsError() {
			t.Errorf("result %d: expected success, got error: %v", i, r.Error())
		}
	}
}

// AssertAllErrors verifies all results are errors.
func AssertAllErrors[T any](t *testing.T, results []collectz.Result[T]) {
	t.Helper()

	for i, r := range results {
		if r.IsSuccess() {
			t.Errorf("result %d: expected error, got success with value: %v", i, r.Value())
		}
	}
}

// AssertProtocol fails the test unless r saw exactly one Finish and no
// deliveries after Stop or Finish.
func AssertProtocol[T any](t *testing.T, r *Recorder[T]) {
	t.Helper()

	if r.Finishes() != 1 {
		t.Errorf("expected exactly 1 Finish, got %d", r.Finishes())
	}
	if v := r.Violations(); v != 0 {
		t.Errorf("expected no deliveries after Stop or Finish, got %d", v)
	}
}
