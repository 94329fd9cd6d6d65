package strategy

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/groupassign/types"
)

// recordingLogger captures warning messages for assertions.
type recordingLogger struct {
	warnings []string
}

var _ types.Logger = (*recordingLogger)(nil)

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(msg string, keysAndValues ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf("%s %v", msg, keysAndValues))
}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func TestRange_Assign(t *testing.T) {
	t.Run("assigns contiguous ranges with remainder up front", func(t *testing.T) {
		// Two instances with two streams each over five partitions: the first
		// thread in sort order absorbs the one extra partition.
		assignor := NewRange()
		actx, err := types.NewAssignmentContext("g1", "C1",
			map[string]map[string]int{
				"C1": {"t0": 2},
				"C2": {"t0": 2},
			},
			map[string][]int32{"t0": {0, 1, 2, 3, 4}},
		)
		require.NoError(t, err)

		assignment, err := assignor.Assign(actx)

		require.NoError(t, err)
		c10 := types.ConsumerThreadID{Consumer: "C1", Thread: 0}
		c11 := types.ConsumerThreadID{Consumer: "C1", Thread: 1}
		c20 := types.ConsumerThreadID{Consumer: "C2", Thread: 0}
		c21 := types.ConsumerThreadID{Consumer: "C2", Thread: 1}
		require.Equal(t, map[types.TopicPartition]types.ConsumerThreadID{
			{Topic: "t0", Partition: 0}: c10,
			{Topic: "t0", Partition: 1}: c10,
			{Topic: "t0", Partition: 2}: c11,
		}, assignment["C1"])
		require.Equal(t, map[types.TopicPartition]types.ConsumerThreadID{
			{Topic: "t0", Partition: 3}: c20,
			{Topic: "t0", Partition: 4}: c21,
		}, assignment["C2"])
	})

	t.Run("divides each topic independently", func(t *testing.T) {
		assignor := NewRange()
		actx, err := types.NewAssignmentContext("g1", "C1",
			map[string]map[string]int{
				"C1": {"t0": 1, "t1": 1},
				"C2": {"t0": 1},
			},
			map[string][]int32{"t0": {0, 1, 2}, "t1": {0, 1}},
		)
		require.NoError(t, err)

		assignment, err := assignor.Assign(actx)

		require.NoError(t, err)
		// t0: C1-0 takes [0,1], C2-0 takes [2]. t1: only C1-0 subscribes.
		require.Len(t, assignment["C1"], 4)
		require.Len(t, assignment["C2"], 1)
	})

	t.Run("ranges are contiguous blocks of the sorted partition list", func(t *testing.T) {
		assignor := NewRange()
		actx, err := types.NewAssignmentContext("g1", "C1",
			map[string]map[string]int{
				"C1": {"t0": 3},
				"C2": {"t0": 2},
				"C3": {"t0": 2},
			},
			map[string][]int32{"t0": {0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		)
		require.NoError(t, err)

		assignment, err := assignor.Assign(actx)
		require.NoError(t, err)
		require.Equal(t, 10, assignment.PartitionCount())

		perThread := make(map[types.ConsumerThreadID][]int32)
		for _, owned := range assignment {
			for tp, thread := range owned {
				perThread[thread] = append(perThread[thread], tp.Partition)
			}
		}

		// 10 partitions over 7 threads: the first 3 threads own 2, the rest 1.
		counts := make([]int, 0, len(perThread))
		for thread, partitions := range perThread {
			slices.Sort(partitions)
			for i := 1; i < len(partitions); i++ {
				require.Equal(t, partitions[i-1]+1, partitions[i],
					"thread %s range is not contiguous: %v", thread, partitions)
			}
			counts = append(counts, len(partitions))
		}
		slices.Sort(counts)
		require.Equal(t, []int{1, 1, 1, 1, 2, 2, 2}, counts)
	})

	t.Run("warns when threads outnumber partitions", func(t *testing.T) {
		log := &recordingLogger{}
		assignor := NewRange(WithRangeLogger(log))
		actx, err := types.NewAssignmentContext("g1", "C1",
			map[string]map[string]int{
				"C1": {"t0": 2},
				"C2": {"t0": 2},
			},
			map[string][]int32{"t0": {0}},
		)
		require.NoError(t, err)

		assignment, err := assignor.Assign(actx)

		require.NoError(t, err)
		require.Equal(t, 1, assignment.PartitionCount())
		// Three of the four threads computed an empty range.
		require.Len(t, log.warnings, 3)
	})

	t.Run("rejects nil context", func(t *testing.T) {
		_, err := NewRange().Assign(nil)

		require.ErrorIs(t, err, ErrNilContext)
	})
}

func TestRange_Name(t *testing.T) {
	require.Equal(t, "range", NewRange().Name())
}
