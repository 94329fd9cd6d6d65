// Package strategy provides built-in partition assignment algorithms.
//
// An assignor maps every topic-partition in a consumer group snapshot to the
// consumer thread that will own it. The package includes three built-in
// assignors:
//
//   - Range: Contiguous per-topic partition ranges (the default)
//   - RoundRobin: Global round-robin walk over a hash-ordered partition list
//   - Fair: Greedy least-loaded balancing across all subscriptions
//
// # Assignor Selection Guide
//
// Range:
//   - Use when partition locality per topic matters
//   - Works with any mix of subscriptions; each topic is divided independently
//   - The first few threads of a topic absorb the remainder when counts
//     do not divide evenly
//
// RoundRobin:
//   - Use for uniform groups where every instance subscribes identically
//   - Spreads partitions of the same topic across threads; ownership counts
//     differ by at most one
//   - Fails (it does not partially assign) when subscriptions differ
//
// Fair:
//   - Use when instances subscribe to different topic sets
//   - Balances total per-thread partition counts greedily; degenerates to
//     round-robin-like distribution for uniform subscriptions
//
// All assignors are deterministic: every member of a consumer group runs the
// same algorithm over the same snapshot and arrives at the identical decision
// without coordinating. Custom algorithms can be plugged in by satisfying the
// types.Assignor interface.
package strategy
