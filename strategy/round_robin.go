package strategy

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/groupassign/internal/hash"
	"github.com/arloliu/groupassign/internal/logger"
	"github.com/arloliu/groupassign/types"
)

// RoundRobin implements round-robin partition assignment over the whole group.
type RoundRobin struct {
	logger types.Logger
}

var _ types.Assignor = (*RoundRobin)(nil)

// RoundRobinOption configures a RoundRobin assignor.
type RoundRobinOption func(*RoundRobin)

// NewRoundRobin creates a new round-robin assignor.
//
// The assignor lays out every topic-partition across all topics in one global
// sequence and walks it once, handing each partition to the next consumer
// thread in a circular order. When all instances subscribe identically, the
// per-thread ownership counts differ by at most one.
//
// The assignor requires identical subscriptions across the group: every topic
// must be consumed by exactly the same set of threads. Assign fails with
// types.ErrNonUniformSubscription otherwise.
//
// Parameters:
//   - opts: Optional configuration (WithRoundRobinLogger)
//
// Returns:
//   - *RoundRobin: Initialized round-robin assignor
//
// Example:
//
//	assignor := strategy.NewRoundRobin()
//	assignment, err := assignor.Assign(actx)
func NewRoundRobin(opts ...RoundRobinOption) *RoundRobin {
	rr := &RoundRobin{logger: logger.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(rr)
		}
	}

	return rr
}

// WithRoundRobinLogger sets the logger used for debug diagnostics.
func WithRoundRobinLogger(log types.Logger) RoundRobinOption {
	return func(rr *RoundRobin) {
		rr.logger = log
	}
}

// Name returns the assignor name.
func (rr *RoundRobin) Name() string { return StrategyRoundRobin }

// Assign computes the group-wide ownership decision using a global
// round-robin walk.
//
// The algorithm:
//  1. Verify every topic is consumed by the identical thread set
//  2. Collect every (topic, partition) pair and sort by the signed 32-bit
//     JVM-style hash of its "topic-partition" string, ties broken by
//     (topic, partition) ascending
//  3. Walk the sorted list, assigning each partition to the next thread in
//     the circular thread order
//
// The hash ordering interleaves topics so that partitions of one topic do not
// all land on the same few threads. Both sort keys are fully specified, so
// independent members reproduce the identical order.
//
// Parameters:
//   - actx: Immutable membership snapshot
//
// Returns:
//   - types.Assignment: Complete decision covering every consumer instance
//   - error: types.ErrNonUniformSubscription naming the differing topics and
//     thread sets; no partial assignment is returned
func (rr *RoundRobin) Assign(actx *types.AssignmentContext) (types.Assignment, error) {
	if actx == nil {
		return nil, ErrNilContext
	}

	assignment := types.NewAssignment(actx.Consumers)

	topics := actx.Topics()
	if len(topics) == 0 {
		return assignment, nil
	}

	// Subscriptions must be identical across the group, so any topic's thread
	// list can serve as the circular order. Verify against the first topic.
	headTopic := topics[0]
	threads := actx.ConsumersForTopic[headTopic]
	for _, topic := range topics[1:] {
		if !slices.Equal(actx.ConsumersForTopic[topic], threads) {
			return nil, fmt.Errorf(
				"%w: topic %q is consumed by %v but topic %q is consumed by %v",
				types.ErrNonUniformSubscription,
				headTopic, threads, topic, actx.ConsumersForTopic[topic],
			)
		}
	}
	if len(threads) == 0 {
		return assignment, nil
	}

	allPartitions := make([]types.TopicPartition, 0, actx.PartitionCount())
	for _, topic := range topics {
		for _, partition := range actx.PartitionsForTopic[topic] {
			allPartitions = append(allPartitions, types.TopicPartition{Topic: topic, Partition: partition})
		}
	}

	slices.SortFunc(allPartitions, func(a, b types.TopicPartition) int {
		if c := cmp.Compare(hash.JavaString(a.String()), hash.JavaString(b.String())); c != 0 {
			return c
		}

		return a.Compare(b)
	})

	for i, tp := range allPartitions {
		thread := threads[i%len(threads)]
		assignment[thread.Consumer][tp] = thread
	}

	rr.logger.Debug("round-robin assignment computed",
		"group", actx.Group,
		"topics", len(topics),
		"partitions", len(allPartitions),
		"threads", len(threads),
	)

	return assignment, nil
}
