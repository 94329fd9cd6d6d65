package groupassign

import "github.com/arloliu/groupassign/types"

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	assignor types.Assignor
	logger   types.Logger
	metrics  types.MetricsCollector
}

// WithAssignor sets a custom assignor, overriding the configured strategy
// name.
//
// Parameters:
//   - assignor: Assignor implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	planner, err := groupassign.NewPlanner(&cfg, src,
//	    groupassign.WithAssignor(strategy.NewFair()),
//	)
func WithAssignor(assignor types.Assignor) Option {
	return func(o *plannerOptions) {
		o.assignor = assignor
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	planner, err := groupassign.NewPlanner(&cfg, src,
//	    groupassign.WithLogger(logging.NewSlogDefault()),
//	)
func WithLogger(logger types.Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "myapp")
//	planner, err := groupassign.NewPlanner(&cfg, src,
//	    groupassign.WithMetrics(collector),
//	)
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}
