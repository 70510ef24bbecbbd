package collectz

import (
	"time"
)

// SessionWindow groups items into dynamic windows based on activity gaps.
// A new session starts after a period of inactivity (gap), making it ideal
// for grouping related events that occur in bursts with quiet periods between them.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type SessionWindow[T, R any] struct {
	lifecycle
	inner    branch[Window[T], R]
	name     string
	clock    Clock
	keyFunc  func(T) string
	gap      time.Duration
	sessions map[string]*Window[T]
	order    []string // session keys by start
}

// NewSessionWindow creates a collector that groups items into session-based
// windows and delivers each closed session to c. Sessions are defined by
// periods of activity separated by gaps of inactivity. The keyFunc extracts
// a session key from each item, allowing multiple concurrent sessions.
// Use the fluent API to configure optional behavior like gap duration.
//
// A session closes when an item arrives at least gap after the session's
// last item; closed sessions are delivered in the order they started,
// before the arriving item is placed. Open sessions are delivered on Finish.
// A session's End is its last item's time plus the gap.
//
// When to use:
//   - User activity tracking (web sessions, app usage)
//   - Grouping related log entries or transactions
//   - Detecting work patterns with natural breaks
//
// Example:
//
//	// Actions per user session (30-minute default gap)
//	sessions := collectz.NewSessionWindow(
//		func(action UserAction) string { return action.UserID },
//		collectz.NewToSlice[collectz.Window[UserAction]](),
//	)
//
//	// Group related log entries with 5-second gaps
//	logSessions := collectz.NewSessionWindow(
//		func(log LogEntry) string { return log.RequestID },
//		collectz.NewCount[collectz.Window[LogEntry]](),
//	).WithGap(5 * time.Second)
//
// Parameters:
//   - keyFunc: Extracts session identifier from items (for concurrent sessions)
//   - c: Collector receiving each closed session
func NewSessionWindow[T, R any](keyFunc func(T) string, c Collector[Window[T], R]) *SessionWindow[T, R] {
	return &SessionWindow[T, R]{
		inner:    newBranch(c),
		gap:      30 * time.Minute, // sensible default
		name:     "session-window",
		keyFunc:  keyFunc,
		clock:    RealClock,
		sessions: make(map[string]*Window[T]),
	}
}

// WithGap sets the maximum time between items in the same session.
// If not set, defaults to 30 minutes.
func (w *SessionWindow[T, R]) WithGap(gap time.Duration) *SessionWindow[T, R] {
	w.gap = gap
	return w
}

// WithClock sets the clock used to timestamp items.
func (w *SessionWindow[T, R]) WithClock(clock Clock) *SessionWindow[T, R] {
	w.clock = clock
	return w
}

// WithName sets a custom name for this collector.
// If not set, defaults to "session-window".
func (w *SessionWindow[T, R]) WithName(name string) *SessionWindow[T, R] {
	w.name = name
	return w
}

func (w *SessionWindow[T, R]) Collect(item T) Signal {
	w.checkOpen(w.name, "Collect")
	if w.inner.stopped {
		return Stop
	}
	now := w.clock.Now()
	if w.expire(now).IsStop() {
		return Stop
	}

	key := w.keyFunc(item)
	if session, exists := w.sessions[key]; exists {
		session.Items = append(session.Items, item)
		session.End = now.Add(w.gap)
		return Continue
	}
	w.sessions[key] = &Window[T]{
		Items: []T{item},
		Start: now,
		End:   now.Add(w.gap),
	}
	w.order = append(w.order, key)
	return Continue
}

// expire delivers every session whose gap has elapsed by now.
func (w *SessionWindow[T, R]) expire(now time.Time) Signal {
	open := w.order[:0]
	for _, key := range w.order {
		session := w.sessions[key]
		if now.Before(session.End) {
			open = append(open, key)
			continue
		}
		delete(w.sessions, key)
		w.inner.collect(*session)
	}
	w.order = open
	return w.inner.signal()
}

func (w *SessionWindow[T, R]) StopHint() Signal {
	return w.inner.signal()
}

// Finish delivers the open sessions in the order they started and finishes
// the inner collector.
func (w *SessionWindow[T, R]) Finish() R {
	w.finish(w.name)
	for _, key := range w.order {
		w.inner.collect(*w.sessions[key])
	}
	w.sessions = nil
	w.order = nil
	return w.inner.finish()
}

func (w *SessionWindow[T, R]) Name() string {
	return w.name
}
