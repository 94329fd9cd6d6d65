package source

import (
	"context"
	"sync"

	"github.com/arloliu/groupassign/types"
)

// Static implements a metadata source with fixed in-memory data.
type Static struct {
	mu            sync.RWMutex
	subscriptions map[string]map[string]int
	partitions    map[string][]int32
}

var _ types.MetadataSource = (*Static)(nil)

// NewStatic creates a new static metadata source.
//
// The source serves a fixed group topology. Useful for testing and for
// deployments where membership and topics are known at startup. The group
// argument of the MetadataSource methods is ignored; a Static source serves
// one group.
//
// Parameters:
//   - subscriptions: Per-consumer subscription map (consumer -> topic -> stream count)
//   - partitions: Partition ids per topic
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(
//	    map[string]map[string]int{
//	        "consumer-1": {"orders": 2},
//	        "consumer-2": {"orders": 2},
//	    },
//	    map[string][]int32{"orders": source.SequentialPartitions(8)},
//	)
//	planner, err := groupassign.NewPlanner(&cfg, src)
func NewStatic(subscriptions map[string]map[string]int, partitions map[string][]int32) *Static {
	s := &Static{
		subscriptions: make(map[string]map[string]int, len(subscriptions)),
		partitions:    make(map[string][]int32, len(partitions)),
	}
	for consumer, topics := range subscriptions {
		s.setConsumerLocked(consumer, topics)
	}
	for topic, ids := range partitions {
		s.setTopicLocked(topic, ids)
	}

	return s
}

// SequentialPartitions returns the partition ids 0..count-1.
//
// Parameters:
//   - count: Number of partitions
//
// Returns:
//   - []int32: Ascending partition ids
func SequentialPartitions(count int) []int32 {
	ids := make([]int32, count)
	for i := range ids {
		ids[i] = int32(i)
	}

	return ids
}

// Consumers returns every consumer instance known to the source.
func (s *Static) Consumers(_ context.Context, _ string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	consumers := make([]string, 0, len(s.subscriptions))
	for consumer := range s.subscriptions {
		consumers = append(consumers, consumer)
	}

	return consumers, nil
}

// Subscriptions returns a copy of one consumer's subscription map.
//
// An unknown consumer yields an empty subscription map, not an error; the
// consumer simply receives no partitions.
func (s *Static) Subscriptions(_ context.Context, _, consumer string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topics := make(map[string]int, len(s.subscriptions[consumer]))
	for topic, streams := range s.subscriptions[consumer] {
		topics[topic] = streams
	}

	return topics, nil
}

// Partitions returns copies of the partition id lists for the requested
// topics. Unknown topics are omitted from the result.
func (s *Static) Partitions(_ context.Context, topics []string) (map[string][]int32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]int32, len(topics))
	for _, topic := range topics {
		ids, ok := s.partitions[topic]
		if !ok {
			continue
		}
		copied := make([]int32, len(ids))
		copy(copied, ids)
		result[topic] = copied
	}

	return result, nil
}

// SetConsumer adds or replaces one consumer's subscriptions.
//
// This allows the static source to simulate membership changes, which is
// useful for testing rebalance scenarios.
//
// Parameters:
//   - consumer: Consumer instance id
//   - topics: Topic -> stream count subscription map
func (s *Static) SetConsumer(consumer string, topics map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setConsumerLocked(consumer, topics)
}

// RemoveConsumer removes one consumer from the group.
//
// Parameters:
//   - consumer: Consumer instance id
func (s *Static) RemoveConsumer(consumer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subscriptions, consumer)
}

// SetTopic adds or replaces one topic's partition list.
//
// Parameters:
//   - topic: Topic name
//   - partitions: Partition ids
func (s *Static) SetTopic(topic string, partitions []int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setTopicLocked(topic, partitions)
}

func (s *Static) setConsumerLocked(consumer string, topics map[string]int) {
	copied := make(map[string]int, len(topics))
	for topic, streams := range topics {
		copied[topic] = streams
	}
	s.subscriptions[consumer] = copied
}

func (s *Static) setTopicLocked(topic string, partitions []int32) {
	copied := make([]int32, len(partitions))
	copy(copied, partitions)
	s.partitions[topic] = copied
}
