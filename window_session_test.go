package collectz

import (
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

type click struct {
	User string
	Page string
}

func TestSessionWindow(t *testing.T) {
	start := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := clockz.NewFakeClockAt(start)
	w := NewSessionWindow(func(c click) string { return c.User }, NewToSlice[Window[click]]()).
		WithGap(5 * time.Minute).
		WithClock(clock)

	w.Collect(click{"alice", "/"})
	w.Collect(click{"bob", "/"})
	clock.Advance(3 * time.Minute)
	w.Collect(click{"alice", "/cart"})
	clock.Advance(3 * time.Minute)
	w.Collect(click{"carol", "/"})
	sessions := w.Finish()

	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	users := []string{sessions[0].Items[0].User, sessions[1].Items[0].User, sessions[2].Items[0].User}
	if !equalSlices(users, []string{"bob", "alice", "carol"}) {
		t.Errorf("expected bob to expire first, got %v", users)
	}
	alice := sessions[1]
	if alice.Count() != 2 {
		t.Errorf("expected 2 clicks for alice, got %d", alice.Count())
	}
	if !alice.Start.Equal(start) || !alice.End.Equal(start.Add(8*time.Minute)) {
		t.Errorf("expected alice session [%v, %v), got [%v, %v)",
			start, start.Add(8*time.Minute), alice.Start, alice.End)
	}
}

func TestSessionWindowDefaultGap(t *testing.T) {
	clock := clockz.NewFakeClockAt(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
	w := NewSessionWindow(func(s string) string { return s }, NewCount[Window[string]]()).WithClock(clock)

	w.Collect("a")
	clock.Advance(29 * time.Minute)
	w.Collect("a")
	clock.Advance(31 * time.Minute)
	w.Collect("a")

	if n := w.Finish(); n != 2 {
		t.Errorf("expected 2 sessions, got %d", n)
	}
}

func TestSessionWindowName(t *testing.T) {
	w := NewSessionWindow(func(s string) string { return s }, NewSink[Window[string]]())
	if w.Name() != "session-window" {
		t.Errorf("expected %q, got %q", "session-window", w.Name())
	}
}
