package types

import "context"

// MetadataSource discovers consumer group membership and topic metadata.
//
// Implementations can query various backends:
//   - NATS JetStream KV: membership and topic registries in KV buckets
//   - Static: fixed data for testing and bootstrap
//   - Custom: any group coordination service
//
// The Planner calls all three methods when building a snapshot for a
// rebalance attempt. A source is expected to return point-in-time consistent
// data; the assignment core assumes the snapshot is already agreed upon
// across members and does not re-validate it.
type MetadataSource interface {
	// Consumers returns every consumer instance id currently in the group.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - group: Consumer group name
	//
	// Returns:
	//   - []string: Instance ids (order does not matter, the context builder sorts)
	//   - error: Discovery error (nil on success)
	Consumers(ctx context.Context, group string) ([]string, error)

	// Subscriptions returns one consumer's subscribed topics and per-topic
	// stream counts.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - group: Consumer group name
	//   - consumer: Consumer instance id
	//
	// Returns:
	//   - map[string]int: Topic name -> number of consuming threads
	//   - error: Discovery error (nil on success)
	Subscriptions(ctx context.Context, group, consumer string) (map[string]int, error)

	// Partitions returns the partition ids of each requested topic.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - topics: Topics to resolve
	//
	// Returns:
	//   - map[string][]int32: Topic name -> partition ids
	//   - error: Discovery error (nil on success)
	Partitions(ctx context.Context, topics []string) (map[string][]int32, error)
}
