// Package groupassign computes deterministic partition assignments for
// consumer groups.
//
// During a rebalance, every member of a consumer group independently runs the
// same assignment algorithm over the same membership snapshot and arrives at
// an identical result, so partition ownership is agreed upon without a
// coordinator for the computation itself. This library provides the snapshot
// type, the three built-in assignment strategies (range, round-robin and
// fair), and a Planner that ties snapshot acquisition, computation, caching
// and observability together.
//
// # Quick Start
//
//	src := source.NewStatic(subscriptions, partitions)
//
//	cfg := groupassign.DefaultConfig()
//	cfg.Strategy = strategy.StrategyRange
//
//	planner, err := groupassign.NewPlanner(&cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	assignment, err := planner.PlanGroup(ctx, "billing", "consumer-1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	owned := assignment.ForConsumer("consumer-1")
//
// # Key Properties
//
//   - Deterministic: identical snapshots always produce byte-identical
//     assignments, across processes and machines
//   - Complete: every consumer instance appears in the result, every
//     partition of every subscribed topic is owned by exactly one thread
//   - Pure: strategies share no state between calls and perform no I/O
//
// # Strategies
//
// Range (default) hands out contiguous per-topic partition blocks. RoundRobin
// interleaves all partitions across all threads but requires identical
// subscriptions group-wide. Fair balances total per-thread load for groups
// with mixed subscriptions. See the strategy package for details.
//
// # Advanced Usage
//
// Custom logger, metrics and assignor (any types.Logger, types.MetricsCollector
// and types.Assignor implementations):
//
//	planner, err := groupassign.NewPlanner(&cfg, src,
//	    groupassign.WithLogger(myLogger),
//	    groupassign.WithMetrics(myCollector),
//	    groupassign.WithAssignor(strategy.NewFair()),
//	)
//
// See the examples/ directory for complete working examples.
package groupassign
