package collectz

import (
	"fmt"
	"hash/fnv"
)

// Partitioner determines which partition an item should be routed to.
type Partitioner func(key string, numPartitions int) int

// DefaultPartitioner uses consistent hashing to distribute keys across partitions.
func DefaultPartitioner(key string, numPartitions int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	if numPartitions <= 0 {
		return 0
	}
	// Use uint64 to avoid overflow on conversion.
	sum := uint64(h.Sum32())
	np := uint64(numPartitions)
	return int(sum % np) // #nosec G115 - modulo ensures result fits in int.
}

// Partition routes each item to exactly one of several collectors based on
// a partition key. Items with the same key always reach the same collector,
// in production order.
//
// Key features:
//   - Consistent key-based routing.
//   - Custom partitioning strategies.
//   - Per-partition statistics.
//
// Example:
//
//	// Total revenue per region bucket.
//	sums := make([]collectz.Collector[Order, float64], 8)
//	for i := range sums {
//		sums[i] = collectz.NewMap(collectz.NewSum[float64](), func(o Order) float64 { return o.Total })
//	}
//	byRegion := collectz.NewPartition(func(o Order) string { return o.Region }, sums...)
//	totals := collectz.Collect(orders, byRegion)
//
// Performance characteristics:
//   - O(1) partitioning decision per item.
//   - One collector call per item.
type Partition[T, R any] struct { //nolint:govet // logical field grouping preferred over memory optimization
	lifecycle
	branches    []branch[T, R]
	keyFunc     func(T) string
	partitioner Partitioner
	name        string

	// Statistics.
	itemCounts []int64
	dropped    int64
}

// NewPartition creates a collector that routes items to branches by key.
// The number of partitions is the number of branches.
//
// Default configuration:
//   - Partitioner: Consistent hashing
//   - Name: "partition"
//
// An item routed to a branch that has already stopped is dropped and counted.
// The composite reports Stop once every branch has stopped.
//
// Parameters:
//   - keyFunc: Function to extract partition key from items
//   - branches: One collector per partition
func NewPartition[T, R any](keyFunc func(T) string, branches ...Collector[T, R]) *Partition[T, R] {
	p := &Partition[T, R]{
		branches:    make([]branch[T, R], len(branches)),
		keyFunc:     keyFunc,
		partitioner: DefaultPartitioner,
		name:        "partition",
		itemCounts:  make([]int64, len(branches)),
	}
	for i, c := range branches {
		p.branches[i] = newBranch(c)
	}
	return p
}

// WithPartitioner sets a custom partitioning function.
// The function receives the key and number of partitions,
// and should return a partition index (0 to numPartitions-1).
func (p *Partition[T, R]) WithPartitioner(partitioner Partitioner) *Partition[T, R] {
	if partitioner != nil {
		p.partitioner = partitioner
	}
	return p
}

// WithName sets a custom name for this collector.
func (p *Partition[T, R]) WithName(name string) *Partition[T, R] {
	p.name = name
	return p
}

func (p *Partition[T, R]) Collect(item T) Signal {
	p.checkOpen(p.name, "Collect")
	b := p.route(item)
	if b == nil {
		return p.StopHint()
	}
	b.collect(item)
	return p.StopHint()
}

func (p *Partition[T, R]) CollectRef(item *T) Signal {
	p.checkOpen(p.name, "CollectRef")
	b := p.route(*item)
	if b == nil {
		return p.StopHint()
	}
	b.offer(item)
	return p.StopHint()
}

// route picks the branch for item, or nil when it has stopped.
func (p *Partition[T, R]) route(item T) *branch[T, R] {
	if len(p.branches) == 0 {
		p.dropped++
		return nil
	}
	idx := p.partitioner(p.keyFunc(item), len(p.branches))
	// Ensure partition index is valid
	if idx < 0 || idx >= len(p.branches) {
		idx = 0 // Fallback to first partition
	}
	b := &p.branches[idx]
	if b.stopped {
		p.dropped++
		return nil
	}
	p.itemCounts[idx]++
	return b
}

// StopHint reports Stop once every branch has stopped.
func (p *Partition[T, R]) StopHint() Signal {
	for i := range p.branches {
		if p.branches[i].signal().IsContinue() {
			return Continue
		}
	}
	return Stop
}

// Finish finishes every partition in order.
func (p *Partition[T, R]) Finish() []R {
	p.finish(p.name)
	out := make([]R, len(p.branches))
	for i := range p.branches {
		out[i] = p.branches[i].finish()
	}
	return out
}

// Stats returns statistics about partition distribution so far.
func (p *Partition[T, R]) Stats() PartitionStats {
	stats := PartitionStats{
		NumPartitions:     len(p.branches),
		ItemsPerPartition: make([]int64, len(p.branches)),
		Dropped:           p.dropped,
	}
	for i, n := range p.itemCounts {
		stats.ItemsPerPartition[i] = n
		stats.TotalItems += n
	}
	return stats
}

// Name returns the collector name.
func (p *Partition[T, R]) Name() string {
	return p.name
}

// PartitionStats contains statistics about partition distribution.
type PartitionStats struct { //nolint:govet // logical field grouping preferred over memory optimization
	TotalItems        int64   // Items delivered to a partition
	NumPartitions     int     // Number of partitions
	ItemsPerPartition []int64 // Items routed to each partition
	Dropped           int64   // Items routed to a stopped partition
}

// DistributionBalance returns a measure of how evenly distributed items are.
// Returns 0.0 for perfect distribution, higher values indicate imbalance.
func (s PartitionStats) DistributionBalance() float64 {
	if s.TotalItems == 0 || s.NumPartitions == 0 {
		return 0.0
	}

	idealPerPartition := float64(s.TotalItems) / float64(s.NumPartitions)
	var totalDeviation float64

	for _, count := range s.ItemsPerPartition {
		deviation := float64(count) - idealPerPartition
		totalDeviation += deviation * deviation
	}

	variance := totalDeviation / float64(s.NumPartitions)
	return variance / idealPerPartition
}

// String returns a string representation of the statistics.
func (s PartitionStats) String() string {
	return fmt.Sprintf("PartitionStats{Total: %d, Partitions: %d, Dropped: %d, Balance: %.2f}",
		s.TotalItems, s.NumPartitions, s.Dropped, s.DistributionBalance())
}
