package integration_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/groupassign"
	"github.com/arloliu/groupassign/source"
	"github.com/arloliu/groupassign/strategy"
	"github.com/arloliu/groupassign/test/testutil"
	"github.com/arloliu/groupassign/types"
)

var strategies = []string{
	strategy.StrategyRange,
	strategy.StrategyRoundRobin,
	strategy.StrategyFair,
}

// TestAssignmentCorrectness_RandomizedGroups sweeps randomly generated group
// shapes through every strategy and checks the structural guarantees: full
// coverage of subscribed partitions, no duplicates, every consumer present,
// and the same decision from every member.
func TestAssignmentCorrectness_RandomizedGroups(t *testing.T) {
	t.Parallel()

	// Fixed seed keeps failures reproducible.
	rng := rand.New(rand.NewSource(42))

	for trial := range 50 {
		numConsumers := 1 + rng.Intn(8)
		numTopics := 1 + rng.Intn(5)

		topics := make([]string, numTopics)
		partitions := make(map[string][]int32, numTopics)
		for i := range topics {
			topics[i] = fmt.Sprintf("topic-%d", i)
			partitions[topics[i]] = source.SequentialPartitions(rng.Intn(20))
		}

		// Uniform subscriptions so the sweep covers round-robin too.
		subscriptions := make(map[string]int, numTopics)
		for _, topic := range topics {
			subscriptions[topic] = 1 + rng.Intn(3)
		}

		consumers := make([]string, numConsumers)
		members := make(map[string]map[string]int, numConsumers)
		for i := range consumers {
			consumers[i] = fmt.Sprintf("consumer-%d", i)
			members[consumers[i]] = subscriptions
		}
		src := source.NewStatic(members, partitions)

		for _, strategyName := range strategies {
			name := fmt.Sprintf("trial=%d/%s", trial, strategyName)
			t.Run(name, func(t *testing.T) {
				cfg := groupassign.DefaultConfig()
				cfg.Strategy = strategyName

				planner, err := groupassign.NewPlanner(&cfg, src)
				require.NoError(t, err)

				actx, err := planner.Snapshot(context.Background(), "sweep", consumers[0])
				require.NoError(t, err)

				assignment, err := planner.Plan(actx)
				require.NoError(t, err)

				testutil.AssertAssignmentConsistent(t, actx, assignment)
				assertAllMembersAgree(t, src, strategyName, consumers, assignment)
			})
		}
	}
}

// assertAllMembersAgree recomputes the assignment from every member's own
// planner and snapshot and requires the identical decision.
func assertAllMembersAgree(t *testing.T, src types.MetadataSource, strategyName string, consumers []string, expected types.Assignment) {
	t.Helper()

	for _, consumer := range consumers {
		cfg := groupassign.DefaultConfig()
		cfg.Strategy = strategyName

		planner, err := groupassign.NewPlanner(&cfg, src)
		require.NoError(t, err)

		assignment, err := planner.PlanGroup(context.Background(), "sweep", consumer)
		require.NoError(t, err)
		require.Equal(t, expected, assignment, "member %s computed a different assignment", consumer)
	}
}

// TestAssignmentCorrectness_StreamCountChanges verifies that changing a single
// consumer's stream count changes the fingerprint and yields a rebalanced but
// still consistent assignment.
func TestAssignmentCorrectness_StreamCountChanges(t *testing.T) {
	t.Parallel()

	src := source.NewStatic(
		map[string]map[string]int{
			"c1": {"t1": 1},
			"c2": {"t1": 1},
		},
		map[string][]int32{"t1": source.SequentialPartitions(8)},
	)

	planner, err := groupassign.NewPlanner(nil, src)
	require.NoError(t, err)

	ctx := context.Background()
	before, err := planner.Snapshot(ctx, "orders", "c1")
	require.NoError(t, err)

	src.SetConsumer("c1", map[string]int{"t1": 3})

	after, err := planner.Snapshot(ctx, "orders", "c1")
	require.NoError(t, err)
	require.NotEqual(t, before.Fingerprint(), after.Fingerprint())

	assignment, err := planner.Plan(after)
	require.NoError(t, err)
	testutil.AssertAssignmentConsistent(t, after, assignment)

	// c1 now runs 3 of the 4 threads and owns the larger share.
	require.Greater(t, len(assignment.ForConsumer("c1")), len(assignment.ForConsumer("c2")))
}
