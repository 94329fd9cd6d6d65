package types

import (
	"cmp"
	"strconv"
)

// TopicPartition identifies one partition of one topic.
//
// It is an immutable value type. Equality and ordering are defined by the
// (Topic, Partition) pair. Its String form is also the ordering key used by
// the round-robin assignor, so the format must stay stable.
type TopicPartition struct {
	// Topic is the topic name.
	Topic string `json:"topic"`

	// Partition is the non-negative partition id within the topic.
	Partition int32 `json:"partition"`
}

// String returns the canonical "topic-partition" form, e.g. "orders-3".
func (tp TopicPartition) String() string {
	return tp.Topic + "-" + strconv.Itoa(int(tp.Partition))
}

// Compare orders topic-partitions by topic name, then by partition id.
//
// Returns:
//   - int: -1 if tp < other, 0 if equal, +1 if tp > other
func (tp TopicPartition) Compare(other TopicPartition) int {
	if c := cmp.Compare(tp.Topic, other.Topic); c != 0 {
		return c
	}

	return cmp.Compare(tp.Partition, other.Partition)
}

// ConsumerThreadID identifies one logical consuming thread within a consumer
// instance.
//
// A consumer instance declares a stream count per subscribed topic; its
// threads for that topic are indexed 0..count-1. The total order (instance id
// lexicographic, then thread index numeric) is relied on by every assignor and
// must be identical across all group members.
type ConsumerThreadID struct {
	// Consumer is the stable id of the owning consumer instance.
	Consumer string `json:"consumer"`

	// Thread is the zero-based thread index within the instance.
	Thread int `json:"thread"`
}

// String returns the canonical "consumer-thread" form, e.g. "C1-0".
func (id ConsumerThreadID) String() string {
	return id.Consumer + "-" + strconv.Itoa(id.Thread)
}

// Compare orders thread ids by consumer instance id, then by thread index.
//
// Returns:
//   - int: -1 if id < other, 0 if equal, +1 if id > other
func (id ConsumerThreadID) Compare(other ConsumerThreadID) int {
	if c := cmp.Compare(id.Consumer, other.Consumer); c != 0 {
		return c
	}

	return cmp.Compare(id.Thread, other.Thread)
}
