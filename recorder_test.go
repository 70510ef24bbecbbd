package collectz

import "fmt"

// recorder is a test collector that keeps every item it is given and counts
// how it was called. It reports Stop once it holds limit items, when limit
// is positive.
type recorder[T any] struct {
	lifecycle
	items    []T
	owned    int
	borrowed int
	finishes int
	limit    int
	label    string
	log      *[]string
}

func newRecorder[T any]() *recorder[T] {
	return &recorder[T]{label: "recorder"}
}

func (r *recorder[T]) stopAfter(n int) *recorder[T] {
	r.limit = n
	return r
}

// logTo appends "label:owned" or "label:borrowed" to log on every call.
func (r *recorder[T]) logTo(log *[]string, label string) *recorder[T] {
	r.log = log
	r.label = label
	return r
}

func (r *recorder[T]) Collect(item T) Signal {
	r.checkOpen(r.label, "Collect")
	r.owned++
	r.note("owned")
	return r.add(item)
}

func (r *recorder[T]) add(item T) Signal {
	r.items = append(r.items, item)
	if r.limit > 0 && len(r.items) >= r.limit {
		return Stop
	}
	return Continue
}

func (r *recorder[T]) note(mode string) {
	if r.log != nil {
		*r.log = append(*r.log, fmt.Sprintf("%s:%s", r.label, mode))
	}
}

func (r *recorder[T]) Finish() []T {
	r.finishes++
	r.finish(r.label)
	return r.items
}

func (r *recorder[T]) calls() int {
	return r.owned + r.borrowed
}

// refRecorder is a recorder that also accepts borrowed items.
type refRecorder[T any] struct {
	*recorder[T]
}

func newRefRecorder[T any]() refRecorder[T] {
	return refRecorder[T]{newRecorder[T]()}
}

func (r refRecorder[T]) CollectRef(item *T) Signal {
	r.checkOpen(r.label, "CollectRef")
	r.borrowed++
	r.note("borrowed")
	return r.add(*item)
}

// pullCounter is a sequence over items that counts how many were pulled.
type pullCounter[T any] struct {
	items  []T
	pulled int
}

func (p *pullCounter[T]) Next() (T, bool) {
	if p.pulled >= len(p.items) {
		var zero T
		return zero, false
	}
	item := p.items[p.pulled]
	p.pulled++
	return item, true
}

// naturals is an infinite producer of 1, 2, 3, ...
type naturals struct {
	pulled int
}

func (n *naturals) Next() (int, bool) {
	n.pulled++
	return n.pulled, true
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
