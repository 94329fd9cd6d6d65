package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequentialPartitions(t *testing.T) {
	require.Equal(t, []int32{0, 1, 2, 3}, SequentialPartitions(4))
	require.Empty(t, SequentialPartitions(0))
}

func TestStatic_Consumers(t *testing.T) {
	src := NewStatic(map[string]map[string]int{
		"C1": {"t0": 1},
		"C2": {"t0": 1},
	}, nil)

	consumers, err := src.Consumers(context.Background(), "any-group")

	require.NoError(t, err)
	require.ElementsMatch(t, []string{"C1", "C2"}, consumers)
}

func TestStatic_Subscriptions(t *testing.T) {
	src := NewStatic(map[string]map[string]int{
		"C1": {"t0": 2, "t1": 1},
	}, nil)

	t.Run("returns a copy", func(t *testing.T) {
		topics, err := src.Subscriptions(context.Background(), "g", "C1")
		require.NoError(t, err)
		require.Equal(t, map[string]int{"t0": 2, "t1": 1}, topics)

		topics["t0"] = 99
		again, err := src.Subscriptions(context.Background(), "g", "C1")
		require.NoError(t, err)
		require.Equal(t, 2, again["t0"])
	})

	t.Run("unknown consumer yields empty map", func(t *testing.T) {
		topics, err := src.Subscriptions(context.Background(), "g", "ghost")
		require.NoError(t, err)
		require.Empty(t, topics)
	})
}

func TestStatic_Partitions(t *testing.T) {
	src := NewStatic(nil, map[string][]int32{
		"t0": {0, 1, 2},
		"t1": SequentialPartitions(2),
	})

	t.Run("returns requested topics", func(t *testing.T) {
		partitions, err := src.Partitions(context.Background(), []string{"t0", "t1"})
		require.NoError(t, err)
		require.Equal(t, []int32{0, 1, 2}, partitions["t0"])
		require.Equal(t, []int32{0, 1}, partitions["t1"])
	})

	t.Run("omits unknown topics", func(t *testing.T) {
		partitions, err := src.Partitions(context.Background(), []string{"t0", "ghost"})
		require.NoError(t, err)
		require.Len(t, partitions, 1)
	})
}

func TestStatic_Mutation(t *testing.T) {
	src := NewStatic(map[string]map[string]int{
		"C1": {"t0": 1},
	}, map[string][]int32{"t0": {0, 1}})

	src.SetConsumer("C2", map[string]int{"t0": 1})
	src.SetTopic("t1", SequentialPartitions(3))
	src.RemoveConsumer("C1")

	consumers, err := src.Consumers(context.Background(), "g")
	require.NoError(t, err)
	require.Equal(t, []string{"C2"}, consumers)

	partitions, err := src.Partitions(context.Background(), []string{"t1"})
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1, 2}, partitions["t1"])
}
