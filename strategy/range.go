package strategy

import (
	"github.com/arloliu/groupassign/internal/logger"
	"github.com/arloliu/groupassign/types"
)

// Range implements per-topic contiguous range assignment.
type Range struct {
	logger types.Logger
}

var _ types.Assignor = (*Range)(nil)

// RangeOption configures a Range assignor.
type RangeOption func(*Range)

// NewRange creates a new range assignor.
//
// The assignor divides each topic independently: partitions are laid out in
// ascending id order, consumer threads in ascending ConsumerThreadID order,
// and each thread receives one contiguous block. When the partition count
// does not divide evenly, the first threads in sort order take one extra
// partition each. Subscriptions may differ between instances; topics never
// interact.
//
// Parameters:
//   - opts: Optional configuration (WithRangeLogger)
//
// Returns:
//   - *Range: Initialized range assignor
//
// Example:
//
//	assignor := strategy.NewRange(strategy.WithRangeLogger(log))
//	assignment, err := assignor.Assign(actx)
func NewRange(opts ...RangeOption) *Range {
	r := &Range{logger: logger.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// WithRangeLogger sets the logger used to surface degenerate assignments,
// where a thread receives no partitions because threads outnumber partitions.
func WithRangeLogger(log types.Logger) RangeOption {
	return func(r *Range) {
		r.logger = log
	}
}

// Name returns the assignor name.
func (r *Range) Name() string { return StrategyRange }

// Assign computes the group-wide ownership decision topic by topic.
//
// The algorithm, per topic with P partitions and C subscribed threads:
//  1. base = P/C partitions per thread, the first P%C threads get one extra
//  2. The thread at rank k owns the contiguous block starting at
//     base*k + min(k, P%C)
//
// A thread whose block is empty (C > P) simply receives nothing for that
// topic; this is surfaced as a warning, not an error.
//
// Parameters:
//   - actx: Immutable membership snapshot
//
// Returns:
//   - types.Assignment: Complete decision covering every consumer instance
//   - error: Always nil for a well-formed context
func (r *Range) Assign(actx *types.AssignmentContext) (types.Assignment, error) {
	if actx == nil {
		return nil, ErrNilContext
	}

	assignment := types.NewAssignment(actx.Consumers)

	for _, topic := range actx.Topics() {
		threads := actx.ConsumersForTopic[topic]
		partitions := actx.PartitionsForTopic[topic]
		if len(threads) == 0 {
			continue
		}

		base := len(partitions) / len(threads)
		extra := len(partitions) % len(threads)

		for rank, thread := range threads {
			count := base
			if rank < extra {
				count++
			}
			if count == 0 {
				r.logger.Warn("no partitions for consumer thread",
					"group", actx.Group,
					"topic", topic,
					"thread", thread.String(),
				)

				continue
			}

			start := base*rank + min(rank, extra)
			for _, partition := range partitions[start : start+count] {
				tp := types.TopicPartition{Topic: topic, Partition: partition}
				assignment[thread.Consumer][tp] = thread
			}
		}
	}

	return assignment, nil
}
