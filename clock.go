package collectz

import "github.com/zoobzio/clockz"

// Clock provides time operations for deterministic testing.
// Collectors that observe time (Monitor, Dedupe, TumblingWindow) read it
// from a Clock instead of calling time.Now directly.
type Clock = clockz.Clock

// RealClock is the default Clock using standard time.
var RealClock Clock = clockz.RealClock
