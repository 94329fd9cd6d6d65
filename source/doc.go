// Package source provides built-in metadata source implementations.
//
// Metadata sources discover consumer group membership, topic subscriptions
// and partition counts for snapshot building. The package includes:
//
//   - Static: Fixed in-memory data, for tests and known-ahead topologies
//   - NATS: Membership and topic registries stored in JetStream KV buckets
//
// Custom sources can be implemented by satisfying the types.MetadataSource
// interface.
package source
