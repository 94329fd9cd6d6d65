package strategy

import (
	"cmp"
	"slices"

	"github.com/arloliu/groupassign/internal/logger"
	"github.com/arloliu/groupassign/types"
)

// Fair implements greedy least-loaded partition assignment.
type Fair struct {
	logger types.Logger
}

var _ types.Assignor = (*Fair)(nil)

// FairOption configures a Fair assignor.
type FairOption func(*Fair)

// NewFair creates a new fair assignor.
//
// The assignor balances the total partition count per thread across all of a
// thread's subscriptions, which matters when instances subscribe to different
// topic sets: a thread consuming two topics should not end up with twice the
// load of its peers. For uniform subscriptions the result is balanced the
// same way round-robin is, though not partition-for-partition identical.
//
// There is no global optimality guarantee; each partition is placed greedily
// with full knowledge of prior placements, which makes the result
// deterministic for a fixed snapshot.
//
// Parameters:
//   - opts: Optional configuration (WithFairLogger)
//
// Returns:
//   - *Fair: Initialized fair assignor
//
// Example:
//
//	assignor := strategy.NewFair()
//	assignment, err := assignor.Assign(actx)
func NewFair(opts ...FairOption) *Fair {
	f := &Fair{logger: logger.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	return f
}

// WithFairLogger sets the logger used for debug diagnostics.
func WithFairLogger(log types.Logger) FairOption {
	return func(f *Fair) {
		f.logger = log
	}
}

// Name returns the assignor name.
func (f *Fair) Name() string { return StrategyFair }

// Assign computes the group-wide ownership decision greedily.
//
// The algorithm:
//  1. Start a per-thread counter at zero for every subscribed thread
//  2. Order topics by (subscriber count ascending, partition count
//     descending, name ascending) — the most constrained topics are placed
//     first so they are not starved of balance opportunities later
//  3. Within that order, walk each topic's partitions ascending and give each
//     partition to the subscribed thread with the lowest counter, breaking
//     ties by smallest ConsumerThreadID, then increment that counter
//
// Parameters:
//   - actx: Immutable membership snapshot
//
// Returns:
//   - types.Assignment: Complete decision covering every consumer instance
//   - error: Always nil for a well-formed context
func (f *Fair) Assign(actx *types.AssignmentContext) (types.Assignment, error) {
	if actx == nil {
		return nil, ErrNilContext
	}

	assignment := types.NewAssignment(actx.Consumers)

	counts := make(map[types.ConsumerThreadID]int)
	for _, thread := range actx.AllThreads() {
		counts[thread] = 0
	}

	topics := actx.Topics()
	slices.SortFunc(topics, func(a, b string) int {
		if c := cmp.Compare(len(actx.ConsumersForTopic[a]), len(actx.ConsumersForTopic[b])); c != 0 {
			return c
		}
		if c := cmp.Compare(len(actx.PartitionsForTopic[b]), len(actx.PartitionsForTopic[a])); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	for _, topic := range topics {
		threads := actx.ConsumersForTopic[topic]
		if len(threads) == 0 {
			continue
		}

		for _, partition := range actx.PartitionsForTopic[topic] {
			chosen := threads[0]
			for _, candidate := range threads[1:] {
				if counts[candidate] < counts[chosen] {
					chosen = candidate
				}
			}

			tp := types.TopicPartition{Topic: topic, Partition: partition}
			assignment[chosen.Consumer][tp] = chosen
			counts[chosen]++
		}
	}

	f.logger.Debug("fair assignment computed",
		"group", actx.Group,
		"topics", len(topics),
		"threads", len(counts),
	)

	return assignment, nil
}
