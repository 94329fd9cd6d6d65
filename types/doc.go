// Package types provides core type definitions and interfaces for the
// groupassign library.
//
// This package contains shared types that are used across multiple packages in
// the library. By keeping these types in a separate package, we avoid import
// cycles between the main groupassign package and its internal implementations.
//
// Key types:
//   - TopicPartition: One partition of one topic
//   - ConsumerThreadID: One logical consuming thread within a consumer instance
//   - AssignmentContext: Immutable snapshot of group membership and subscriptions
//   - Assignment: Partition ownership decision for the whole group
//   - Assignor: Assignment algorithm interface
//   - MetadataSource: Group/topic metadata discovery interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
