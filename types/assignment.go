package types

// Assignment is the outcome of one rebalance computation: for every consumer
// instance in the group, the mapping from topic-partition to the specific
// thread that owns it.
//
// An Assignment produced by any Assignor contains one entry per instance in
// the source context's Consumers list, even when the instance owns nothing,
// and every thread stored under instance id c belongs to c. The union of
// partition keys across all entries covers every partition of every
// subscribed topic exactly once.
type Assignment map[string]map[TopicPartition]ConsumerThreadID

// NewAssignment creates an empty assignment with one entry per consumer.
//
// Parameters:
//   - consumers: Every consumer instance id in the group
//
// Returns:
//   - Assignment: Ready for an assignor to populate
func NewAssignment(consumers []string) Assignment {
	assignment := make(Assignment, len(consumers))
	for _, consumer := range consumers {
		assignment[consumer] = make(map[TopicPartition]ConsumerThreadID)
	}

	return assignment
}

// ForConsumer returns the partitions owned by one consumer instance.
//
// Callers typically filter the group-wide decision down to their own instance
// with this before installing it locally. The returned map is nil when the
// instance is unknown.
func (a Assignment) ForConsumer(consumerID string) map[TopicPartition]ConsumerThreadID {
	return a[consumerID]
}

// PartitionCount returns the total number of assigned partitions across all
// consumers.
func (a Assignment) PartitionCount() int {
	total := 0
	for _, owned := range a {
		total += len(owned)
	}

	return total
}

// ThreadCounts returns the number of partitions owned by each thread that
// owns at least one partition.
func (a Assignment) ThreadCounts() map[ConsumerThreadID]int {
	counts := make(map[ConsumerThreadID]int)
	for _, owned := range a {
		for _, thread := range owned {
			counts[thread]++
		}
	}

	return counts
}

// Spread returns the difference between the most and least loaded of the
// given threads, counting threads that received nothing. Zero means a
// perfectly even split.
func (a Assignment) Spread(threads []ConsumerThreadID) int {
	if len(threads) == 0 {
		return 0
	}

	counts := a.ThreadCounts()
	minCount, maxCount := -1, 0
	for _, thread := range threads {
		count := counts[thread]
		if minCount < 0 || count < minCount {
			minCount = count
		}
		if count > maxCount {
			maxCount = count
		}
	}

	return maxCount - minCount
}
