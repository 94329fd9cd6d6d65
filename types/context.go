package types

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/zeebo/xxh3"
)

// AssignmentContext is a point-in-time snapshot of consumer group membership,
// topic subscriptions and partition counts.
//
// Every group member builds the same context from the same agreed-upon
// metadata and runs the same assignor over it, so no further coordination is
// needed for members to agree on partition ownership. The context is built
// once per rebalance attempt and must not be mutated afterwards; all slices
// are sorted at construction time and every assignor depends on that order.
type AssignmentContext struct {
	// Group is the consumer group name.
	Group string

	// ConsumerID is the instance performing the computation. It exists for
	// logging and diagnostics only and never influences the result.
	ConsumerID string

	// Consumers lists every consumer instance id in the group in ascending
	// order, including instances with no subscriptions.
	Consumers []string

	// ConsumersForTopic maps each subscribed topic to all threads across the
	// group subscribed to it, ascending by ConsumerThreadID.
	ConsumersForTopic map[string][]ConsumerThreadID

	// PartitionsForTopic maps each subscribed topic to its partition ids in
	// ascending order.
	PartitionsForTopic map[string][]int32

	// MyTopicThreads maps each topic the calling instance subscribes to, to
	// the calling instance's own threads for it, ascending by thread index.
	MyTopicThreads map[string][]ConsumerThreadID
}

// NewAssignmentContext builds a sorted, validated assignment context.
//
// Parameters:
//   - group: Consumer group name
//   - consumerID: Id of the calling consumer instance
//   - subscriptions: Per-consumer subscription map (consumer -> topic -> stream count)
//   - partitions: Partition ids per topic, covering every subscribed topic
//
// Returns:
//   - *AssignmentContext: Immutable snapshot ready for an Assignor
//   - error: ErrInconsistentSnapshot when a subscribed topic has no partition
//     entry, or a partition entry references an unsubscribed topic
//
// The consumer list is derived from the subscription map keys; consumers with
// an empty (or nil) subscription map still appear in Consumers. Thread ids for
// a consumer subscribing to a topic with stream count n are consumer-0 through
// consumer-(n-1).
func NewAssignmentContext(
	group string,
	consumerID string,
	subscriptions map[string]map[string]int,
	partitions map[string][]int32,
) (*AssignmentContext, error) {
	consumers := make([]string, 0, len(subscriptions))
	for consumer := range subscriptions {
		consumers = append(consumers, consumer)
	}
	slices.Sort(consumers)

	consumersForTopic := make(map[string][]ConsumerThreadID)
	for _, consumer := range consumers {
		for topic, streams := range subscriptions[consumer] {
			for i := range streams {
				consumersForTopic[topic] = append(consumersForTopic[topic], ConsumerThreadID{
					Consumer: consumer,
					Thread:   i,
				})
			}
		}
	}
	for _, threads := range consumersForTopic {
		slices.SortFunc(threads, ConsumerThreadID.Compare)
	}

	for topic := range consumersForTopic {
		if _, ok := partitions[topic]; !ok {
			return nil, fmt.Errorf("%w: topic %q is subscribed but has no partition entry", ErrInconsistentSnapshot, topic)
		}
	}

	partitionsForTopic := make(map[string][]int32, len(partitions))
	for topic, ids := range partitions {
		if _, ok := consumersForTopic[topic]; !ok {
			return nil, fmt.Errorf("%w: topic %q has partitions but no subscribers", ErrInconsistentSnapshot, topic)
		}
		sorted := make([]int32, len(ids))
		copy(sorted, ids)
		slices.Sort(sorted)
		partitionsForTopic[topic] = sorted
	}

	myTopicThreads := make(map[string][]ConsumerThreadID)
	for topic, streams := range subscriptions[consumerID] {
		threads := make([]ConsumerThreadID, 0, streams)
		for i := range streams {
			threads = append(threads, ConsumerThreadID{Consumer: consumerID, Thread: i})
		}
		myTopicThreads[topic] = threads
	}

	return &AssignmentContext{
		Group:              group,
		ConsumerID:         consumerID,
		Consumers:          consumers,
		ConsumersForTopic:  consumersForTopic,
		PartitionsForTopic: partitionsForTopic,
		MyTopicThreads:     myTopicThreads,
	}, nil
}

// Topics returns every subscribed topic in ascending name order.
func (c *AssignmentContext) Topics() []string {
	topics := make([]string, 0, len(c.ConsumersForTopic))
	for topic := range c.ConsumersForTopic {
		topics = append(topics, topic)
	}
	slices.Sort(topics)

	return topics
}

// AllThreads returns every distinct consumer thread appearing in any
// subscription, ascending by ConsumerThreadID.
func (c *AssignmentContext) AllThreads() []ConsumerThreadID {
	seen := make(map[ConsumerThreadID]struct{})
	threads := make([]ConsumerThreadID, 0)
	for _, topicThreads := range c.ConsumersForTopic {
		for _, id := range topicThreads {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			threads = append(threads, id)
		}
	}
	slices.SortFunc(threads, ConsumerThreadID.Compare)

	return threads
}

// PartitionCount returns the total number of partitions across all subscribed
// topics.
func (c *AssignmentContext) PartitionCount() int {
	total := 0
	for _, ids := range c.PartitionsForTopic {
		total += len(ids)
	}

	return total
}

// Fingerprint returns a stable 64-bit digest of the snapshot content.
//
// Two structurally equal contexts produce the same fingerprint regardless of
// how they were constructed. ConsumerID is deliberately excluded: every group
// member must compute the same fingerprint for the same snapshot, which makes
// the digest usable both as a memoization key and as a cheap cross-member
// divergence check.
func (c *AssignmentContext) Fingerprint() uint64 {
	h := xxh3.New()
	var buf [4]byte

	_, _ = h.WriteString(c.Group)
	for _, consumer := range c.Consumers {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(consumer)
	}

	for _, topic := range c.Topics() {
		_, _ = h.WriteString("\x01")
		_, _ = h.WriteString(topic)
		for _, id := range c.ConsumersForTopic[topic] {
			_, _ = h.WriteString("\x02")
			_, _ = h.WriteString(id.Consumer)
			binary.LittleEndian.PutUint32(buf[:], uint32(id.Thread)) //nolint:gosec // thread index is small and non-negative
			_, _ = h.Write(buf[:])
		}
		for _, partition := range c.PartitionsForTopic[topic] {
			_, _ = h.WriteString("\x03")
			binary.LittleEndian.PutUint32(buf[:], uint32(partition)) //nolint:gosec // partition ids are non-negative
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}
