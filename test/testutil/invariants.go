package testutil

import (
	"testing"

	"github.com/arloliu/groupassign/types"
)

// AssertAssignmentConsistent verifies that an assignment covers exactly the
// partitions in the snapshot, with no partition assigned more than once and
// every thread filed under its owning consumer.
//
// Parameters:
//   - t: testing handle
//   - actx: the snapshot the assignment was computed from
//   - assignment: the decision under test
func AssertAssignmentConsistent(t *testing.T, actx *types.AssignmentContext, assignment types.Assignment) {
	t.Helper()

	expected := make(map[types.TopicPartition]struct{}, actx.PartitionCount())
	for topic, partitions := range actx.PartitionsForTopic {
		if len(actx.ConsumersForTopic[topic]) == 0 {
			continue
		}
		for _, partition := range partitions {
			expected[types.TopicPartition{Topic: topic, Partition: partition}] = struct{}{}
		}
	}

	seen := make(map[types.TopicPartition]struct{}, len(expected))
	for consumer, owned := range assignment {
		for tp, thread := range owned {
			if thread.Consumer != consumer {
				t.Fatalf("partition %s filed under %q but assigned to thread of %q", tp, consumer, thread.Consumer)
			}
			if _, ok := expected[tp]; !ok {
				t.Fatalf("unexpected partition assigned: %s", tp)
			}
			if _, ok := seen[tp]; ok {
				t.Fatalf("duplicate partition detected: %s", tp)
			}
			seen[tp] = struct{}{}
		}
	}

	if len(seen) != len(expected) {
		t.Fatalf("assigned partition count (%d) does not equal subscribed partition count (%d)", len(seen), len(expected))
	}

	for _, consumer := range actx.Consumers {
		if _, ok := assignment[consumer]; !ok {
			t.Fatalf("consumer %q missing from assignment", consumer)
		}
	}
}
