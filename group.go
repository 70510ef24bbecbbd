package collectz

// GroupBy aggregates items per key. Each distinct key gets its own
// collector, created on the key's first item; the result maps every key to
// its collector's result.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type GroupBy[T any, K comparable, R any] struct {
	lifecycle
	groups   map[K]*branch[T, R]
	key      func(T) K
	newGroup func(K) Collector[T, R]
	dropped  uint64
	name     string
}

// NewGroupBy creates a collector that routes each item to the group of
// key(item). newGroup builds the collector for a key the first time the key
// is seen. Items for a group that already reported Stop are dropped. New
// keys can always arrive, so GroupBy itself never reports Stop.
//
// When to use:
//   - Per-customer, per-region or per-status totals in one pass
//   - Bounded samples per key (wrap each group in Take)
//   - Any "GROUP BY key, aggregate" question over a stream
//
// Example:
//
//	// Revenue per region.
//	revenue := collectz.NewGroupBy(
//		func(o Order) string { return o.Region },
//		func(string) collectz.Collector[Order, float64] {
//			return collectz.NewMap(collectz.NewSum[float64](), func(o Order) float64 { return o.Total })
//		},
//	)
//	byRegion := collectz.Collect(orders, revenue)
//
// Parameters:
//   - key: Extracts the group key from an item
//   - newGroup: Builds the collector for a newly seen key
func NewGroupBy[T any, K comparable, R any](key func(T) K, newGroup func(K) Collector[T, R]) *GroupBy[T, K, R] {
	return &GroupBy[T, K, R]{
		groups:   make(map[K]*branch[T, R]),
		key:      key,
		newGroup: newGroup,
		name:     "group-by",
	}
}

// WithName sets a custom name for this collector.
func (g *GroupBy[T, K, R]) WithName(name string) *GroupBy[T, K, R] {
	g.name = name
	return g
}

func (g *GroupBy[T, K, R]) Collect(item T) Signal {
	g.checkOpen(g.name, "Collect")
	if group := g.group(g.key(item)); group != nil {
		group.collect(item)
	}
	return Continue
}

// CollectRef lends item to its group, or hands it a copy when the group's
// collector cannot borrow.
func (g *GroupBy[T, K, R]) CollectRef(item *T) Signal {
	g.checkOpen(g.name, "CollectRef")
	if group := g.group(g.key(*item)); group != nil {
		group.offer(item)
	}
	return Continue
}

// group returns the live group for k, creating it on first sight, or nil
// when the group has stopped.
func (g *GroupBy[T, K, R]) group(k K) *branch[T, R] {
	group, ok := g.groups[k]
	if !ok {
		b := newBranch(g.newGroup(k))
		group = &b
		g.groups[k] = group
	}
	if group.stopped {
		g.dropped++
		return nil
	}
	return group
}

// Len returns the number of groups seen so far.
func (g *GroupBy[T, K, R]) Len() int {
	return len(g.groups)
}

// DroppedCount returns the number of items dropped because their group had
// already stopped.
func (g *GroupBy[T, K, R]) DroppedCount() uint64 {
	return g.dropped
}

// Finish finishes every group and returns their results by key.
func (g *GroupBy[T, K, R]) Finish() map[K]R {
	g.finish(g.name)
	out := make(map[K]R, len(g.groups))
	for k, group := range g.groups {
		out[k] = group.finish()
	}
	return out
}

func (g *GroupBy[T, K, R]) Name() string {
	return g.name
}
