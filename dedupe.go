package collectz

import (
	"time"
)

// Dedupe removes duplicate items before they reach a collector, based on a
// key function. It maintains a cache of seen keys, optionally expiring
// them after a time-to-live measured on a Clock.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Dedupe[T any, K comparable, R any] struct {
	lifecycle
	inner       branch[T, R]
	keyFunc     func(T) K
	seen        map[K]time.Time
	clock       Clock
	ttl         time.Duration
	lastCleanup time.Time
	name        string
	duplicates  int64
}

// NewDedupe creates a collector that filters out duplicate items before
// delivering to c. The keyFunc extracts a comparable key from each item.
// Without a TTL every key is remembered for the whole stream.
//
// When to use:
//   - Remove duplicate events or messages
//   - Count distinct entities
//   - Filter repeated sensor readings
//
// Example:
//
//	// Count distinct users
//	distinct := collectz.NewDedupe(collectz.NewCount[Event](), func(e Event) string {
//		return e.UserID
//	})
//
//	// Suppress repeats of the same alert within 5 minutes of event time
//	alerts := collectz.NewDedupe(collectz.NewToSlice[Alert](), func(a Alert) string {
//		return a.Code
//	}).WithTTL(5 * time.Minute)
func NewDedupe[T any, K comparable, R any](c Collector[T, R], keyFunc func(T) K) *Dedupe[T, K, R] {
	return &Dedupe[T, K, R]{
		inner:   newBranch(c),
		keyFunc: keyFunc,
		seen:    make(map[K]time.Time),
		clock:   RealClock,
		name:    "dedupe",
	}
}

// WithTTL sets how long a seen key is remembered. Zero or negative means
// forever.
func (d *Dedupe[T, K, R]) WithTTL(ttl time.Duration) *Dedupe[T, K, R] {
	d.ttl = ttl
	return d
}

// WithClock sets the clock used to age seen keys.
// Use clockz.NewFakeClock() for deterministic tests.
func (d *Dedupe[T, K, R]) WithClock(clock Clock) *Dedupe[T, K, R] {
	d.clock = clock
	return d
}

// WithName sets a custom name for this collector.
func (d *Dedupe[T, K, R]) WithName(name string) *Dedupe[T, K, R] {
	d.name = name
	return d
}

func (d *Dedupe[T, K, R]) Collect(item T) Signal {
	d.checkOpen(d.name, "Collect")
	if !d.admit(item) {
		return d.inner.signal()
	}
	return d.inner.collect(item)
}

func (d *Dedupe[T, K, R]) CollectRef(item *T) Signal {
	d.checkOpen(d.name, "CollectRef")
	if !d.admit(*item) {
		return d.inner.signal()
	}
	return d.inner.offer(item)
}

// admit records the item's key and reports whether it is new.
func (d *Dedupe[T, K, R]) admit(item T) bool {
	key := d.keyFunc(item)
	if d.ttl <= 0 {
		if _, exists := d.seen[key]; exists {
			d.duplicates++
			return false
		}
		d.seen[key] = time.Time{}
		return true
	}

	now := d.clock.Now()
	if now.Sub(d.lastCleanup) > d.ttl/2 {
		d.cleanup(now)
	}
	lastSeen, exists := d.seen[key]
	if exists && now.Sub(lastSeen) <= d.ttl {
		d.duplicates++
		return false
	}
	d.seen[key] = now
	return true
}

func (d *Dedupe[T, K, R]) cleanup(now time.Time) {
	for key, lastSeen := range d.seen {
		if now.Sub(lastSeen) > d.ttl {
			delete(d.seen, key)
		}
	}
	d.lastCleanup = now
}

func (d *Dedupe[T, K, R]) StopHint() Signal {
	return d.inner.signal()
}

func (d *Dedupe[T, K, R]) Finish() R {
	d.finish(d.name)
	d.seen = nil
	return d.inner.finish()
}

// Duplicates returns the number of items dropped as duplicates so far.
func (d *Dedupe[T, K, R]) Duplicates() int64 {
	return d.duplicates
}

func (d *Dedupe[T, K, R]) Name() string {
	return d.name
}
