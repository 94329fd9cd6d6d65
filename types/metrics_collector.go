package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	PlannerMetrics
	SourceMetrics
}

// PlannerMetrics defines metrics for assignment planning operations.
type PlannerMetrics interface {
	// RecordPlanDuration records the time taken to compute an assignment.
	//
	// Parameters:
	//   - strategy: Assignor name ("roundrobin", "range", "fair")
	//   - duration: Time taken in seconds
	RecordPlanDuration(strategy string, duration float64)

	// RecordPlanAttempt records a plan attempt (success or failure).
	//
	// Parameters:
	//   - strategy: Assignor name
	//   - success: true if the computation produced an assignment
	RecordPlanAttempt(strategy string, success bool)

	// RecordPartitionCount sets the number of partitions covered by the most
	// recent assignment (gauge metric).
	RecordPartitionCount(count int)

	// RecordImbalance sets the per-thread load spread of the most recent
	// assignment: the difference between the most and least loaded thread
	// (gauge metric).
	//
	// Parameters:
	//   - strategy: Assignor name
	//   - spread: max(count) - min(count) over all subscribed threads
	RecordImbalance(strategy string, spread int)

	// RecordCacheLookup records a plan cache lookup.
	//
	// Parameters:
	//   - hit: true when a cached assignment was reused
	RecordCacheLookup(hit bool)
}

// SourceMetrics defines metrics for metadata source operations.
type SourceMetrics interface {
	// RecordFetchDuration records metadata fetch latency.
	//
	// Parameters:
	//   - operation: Fetch type ("consumers", "subscriptions", "partitions")
	//   - duration: Time taken in seconds
	RecordFetchDuration(operation string, duration float64)
}
