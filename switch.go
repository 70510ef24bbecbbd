package collectz

// DefaultCase is the output key of the Switch default collector.
const DefaultCase = "_default"

// switchCase is a single named case of a Switch.
type switchCase[T, R any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	name      string
	condition func(T) bool
	branch    branch[T, R]
}

// Switch routes items to different collectors based on conditions.
// It works like a switch statement, evaluating conditions in order
// and delivering each item to the first matching case.
//
// The Switch collector provides:
//   - Multiple conditional branches.
//   - Default case for unmatched items.
//   - Early termination on first match, or delivery to every match.
//   - Named cases for monitoring.
//
// Example:
//
//	// Revenue per order class.
//	revenue := func() collectz.Collector[Order, float64] {
//	    return collectz.NewMap(collectz.NewSum[float64](), func(o Order) float64 { return o.Total })
//	}
//	orderSwitch := collectz.NewSwitch[Order, float64]().
//	    Case("urgent", isUrgentOrder, revenue()).
//	    Case("high-value", isHighValueOrder, revenue()).
//	    Default(revenue()).
//	    WithName("order-router")
//
//	totals := collectz.Collect(orders, orderSwitch)
//	fmt.Println(totals["urgent"], totals[collectz.DefaultCase])
//
// A matching case that has already stopped swallows the item: later cases
// are not consulted. The switch reports Stop once every case and the
// default have stopped.
//
// Performance characteristics:
//   - O(n) condition evaluation where n = number of cases.
type Switch[T, R any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	cases       []switchCase[T, R]
	defaultCase *branch[T, R]
	allMatches  bool
	name        string

	// Statistics.
	processed    int64
	caseMatches  []int64 // One counter per case.
	defaultCount int64
}

// NewSwitch creates a new switch collector.
// Items are evaluated against conditions in the order cases were added.
//
// Default configuration:
//   - No cases (unmatched items are dropped).
//   - First match only.
//   - Name: "switch".
func NewSwitch[T, R any]() *Switch[T, R] {
	return &Switch[T, R]{name: "switch"}
}

// Case adds a new case to the switch.
// Cases are evaluated in the order they are added.
func (s *Switch[T, R]) Case(name string, condition func(T) bool, c Collector[T, R]) *Switch[T, R] {
	s.cases = append(s.cases, switchCase[T, R]{
		name:      name,
		condition: condition,
		branch:    newBranch(c),
	})
	s.caseMatches = append(s.caseMatches, 0)
	return s
}

// Default sets the collector for items that don't match any case.
// If no default is set, unmatched items are dropped.
func (s *Switch[T, R]) Default(c Collector[T, R]) *Switch[T, R] {
	b := newBranch(c)
	s.defaultCase = &b
	return s
}

// AllMatches delivers each item to every matching case instead of only the
// first. The default still receives only items no case matched.
func (s *Switch[T, R]) AllMatches() *Switch[T, R] {
	s.allMatches = true
	return s
}

// WithName sets a custom name for this collector.
func (s *Switch[T, R]) WithName(name string) *Switch[T, R] {
	s.name = name
	return s
}

func (s *Switch[T, R]) Collect(item T) Signal {
	s.checkOpen(s.name, "Collect")
	s.route(&item, false)
	return s.StopHint()
}

func (s *Switch[T, R]) CollectRef(item *T) Signal {
	s.checkOpen(s.name, "CollectRef")
	s.route(item, true)
	return s.StopHint()
}

// route delivers item to the matching cases. Owned items are copied only
// when more than one case may receive them.
func (s *Switch[T, R]) route(item *T, borrowed bool) {
	s.processed++
	matched := false
	for i := range s.cases {
		sc := &s.cases[i]
		if !sc.condition(*item) {
			continue
		}
		matched = true
		s.caseMatches[i]++
		if borrowed || s.allMatches {
			sc.branch.offer(item)
		} else {
			sc.branch.collect(*item)
		}
		if !s.allMatches {
			return
		}
	}
	if matched {
		return
	}
	s.defaultCount++
	if s.defaultCase != nil {
		s.defaultCase.offer(item)
	}
}

// StopHint reports Stop once every case and the default have stopped.
func (s *Switch[T, R]) StopHint() Signal {
	for i := range s.cases {
		if s.cases[i].branch.signal().IsContinue() {
			return Continue
		}
	}
	if s.defaultCase != nil && s.defaultCase.signal().IsContinue() {
		return Continue
	}
	return Stop
}

// Finish finishes every case and the default, returning their outputs keyed
// by case name. The default output is stored under DefaultCase.
func (s *Switch[T, R]) Finish() map[string]R {
	s.finish(s.name)
	out := make(map[string]R, len(s.cases)+1)
	for i := range s.cases {
		out[s.cases[i].name] = s.cases[i].branch.finish()
	}
	if s.defaultCase != nil {
		out[DefaultCase] = s.defaultCase.finish()
	}
	return out
}

// Stats returns statistics about case matches.
func (s *Switch[T, R]) Stats() SwitchStats {
	stats := SwitchStats{
		CaseMatches: make(map[string]int64),
		TotalItems:  s.processed,
	}

	// Collect case matches
	for i, sc := range s.cases {
		stats.CaseMatches[sc.name] = s.caseMatches[i]
	}

	// Add default matches
	stats.CaseMatches[DefaultCase] = s.defaultCount

	return stats
}

// Name returns the collector name.
func (s *Switch[T, R]) Name() string {
	return s.name
}

// SwitchStats contains statistics about switch operations.
type SwitchStats struct { //nolint:govet // logical field grouping preferred over memory optimization
	CaseMatches map[string]int64 // Count of matches per case (including DefaultCase)
	TotalItems  int64            // Total items offered
}

// MatchRate returns the percentage of items matching a specific case.
func (s SwitchStats) MatchRate(caseName string) float64 {
	if s.TotalItems == 0 {
		return 0
	}

	count, ok := s.CaseMatches[caseName]
	if !ok {
		return 0
	}

	return float64(count) / float64(s.TotalItems) * 100
}
