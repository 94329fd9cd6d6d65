// Package metrics provides MetricsCollector implementations for the
// groupassign library.
package metrics

import "github.com/arloliu/groupassign/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlannerMetrics implementation

// RecordPlanDuration discards the plan duration metric.
func (n *NopMetrics) RecordPlanDuration(_ /* strategy */ string, _ /* duration */ float64) {
	// No-op
}

// RecordPlanAttempt discards the plan attempt metric.
func (n *NopMetrics) RecordPlanAttempt(_ /* strategy */ string, _ /* success */ bool) {
	// No-op
}

// RecordPartitionCount discards the partition count metric.
func (n *NopMetrics) RecordPartitionCount(_ /* count */ int) {
	// No-op
}

// RecordImbalance discards the imbalance metric.
func (n *NopMetrics) RecordImbalance(_ /* strategy */ string, _ /* spread */ int) {
	// No-op
}

// RecordCacheLookup discards the cache lookup metric.
func (n *NopMetrics) RecordCacheLookup(_ /* hit */ bool) {
	// No-op
}

// SourceMetrics implementation

// RecordFetchDuration discards the fetch duration metric.
func (n *NopMetrics) RecordFetchDuration(_ /* operation */ string, _ /* duration */ float64) {
	// No-op
}
