package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	assignment := NewAssignment([]string{"C1", "C2", "C3"})

	require.Len(t, assignment, 3)
	for _, consumer := range []string{"C1", "C2", "C3"} {
		require.NotNil(t, assignment[consumer])
		require.Empty(t, assignment[consumer])
	}
}

func TestAssignment_ForConsumer(t *testing.T) {
	assignment := NewAssignment([]string{"C1", "C2"})
	tp := TopicPartition{Topic: "t0", Partition: 0}
	assignment["C1"][tp] = ConsumerThreadID{Consumer: "C1", Thread: 0}

	require.Len(t, assignment.ForConsumer("C1"), 1)
	require.Empty(t, assignment.ForConsumer("C2"))
	require.Nil(t, assignment.ForConsumer("unknown"))
}

func TestAssignment_PartitionCount(t *testing.T) {
	assignment := NewAssignment([]string{"C1", "C2"})
	assignment["C1"][TopicPartition{Topic: "t0", Partition: 0}] = ConsumerThreadID{Consumer: "C1", Thread: 0}
	assignment["C1"][TopicPartition{Topic: "t0", Partition: 1}] = ConsumerThreadID{Consumer: "C1", Thread: 1}
	assignment["C2"][TopicPartition{Topic: "t1", Partition: 0}] = ConsumerThreadID{Consumer: "C2", Thread: 0}

	require.Equal(t, 3, assignment.PartitionCount())
}

func TestAssignment_ThreadCounts(t *testing.T) {
	assignment := NewAssignment([]string{"C1", "C2"})
	c10 := ConsumerThreadID{Consumer: "C1", Thread: 0}
	c20 := ConsumerThreadID{Consumer: "C2", Thread: 0}
	assignment["C1"][TopicPartition{Topic: "t0", Partition: 0}] = c10
	assignment["C1"][TopicPartition{Topic: "t1", Partition: 0}] = c10
	assignment["C2"][TopicPartition{Topic: "t0", Partition: 1}] = c20

	counts := assignment.ThreadCounts()

	require.Equal(t, 2, counts[c10])
	require.Equal(t, 1, counts[c20])
	require.Len(t, counts, 2)
}

func TestAssignment_Spread(t *testing.T) {
	c10 := ConsumerThreadID{Consumer: "C1", Thread: 0}
	c20 := ConsumerThreadID{Consumer: "C2", Thread: 0}
	c21 := ConsumerThreadID{Consumer: "C2", Thread: 1}

	assignment := NewAssignment([]string{"C1", "C2"})
	assignment["C1"][TopicPartition{Topic: "t0", Partition: 0}] = c10
	assignment["C1"][TopicPartition{Topic: "t0", Partition: 1}] = c10
	assignment["C2"][TopicPartition{Topic: "t0", Partition: 2}] = c20

	// c21 received nothing and still counts toward the spread.
	require.Equal(t, 2, assignment.Spread([]ConsumerThreadID{c10, c20, c21}))
	require.Equal(t, 1, assignment.Spread([]ConsumerThreadID{c10, c20}))
	require.Equal(t, 0, assignment.Spread(nil))
}
