package strategy

import "github.com/arloliu/groupassign/types"

// Assignor names accepted by New. Unrecognized names fall back to the range
// assignor, matching the behavior consumers configure against.
const (
	// StrategyRange selects contiguous per-topic range assignment.
	StrategyRange = "range"

	// StrategyRoundRobin selects global round-robin assignment.
	StrategyRoundRobin = "roundrobin"

	// StrategyFair selects greedy least-loaded assignment.
	StrategyFair = "fair"
)

// Option configures assignors created through the factory.
type Option func(*factoryOptions)

type factoryOptions struct {
	logger types.Logger
}

// WithLogger sets the logger passed to the created assignor.
func WithLogger(log types.Logger) Option {
	return func(o *factoryOptions) {
		o.logger = log
	}
}

// New creates an assignor by configured name.
//
// This is a pure lookup: "roundrobin", "range" and "fair" map to their
// assignors, and any other name (including empty) maps to range.
//
// Parameters:
//   - name: Configured strategy name
//   - opts: Optional configuration (WithLogger)
//
// Returns:
//   - types.Assignor: The selected assignor
//
// Example:
//
//	assignor := strategy.New("fair", strategy.WithLogger(log))
//	assignment, err := assignor.Assign(actx)
func New(name string, opts ...Option) types.Assignor {
	var o factoryOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch name {
	case StrategyRoundRobin:
		if o.logger != nil {
			return NewRoundRobin(WithRoundRobinLogger(o.logger))
		}

		return NewRoundRobin()
	case StrategyFair:
		if o.logger != nil {
			return NewFair(WithFairLogger(o.logger))
		}

		return NewFair()
	default:
		if o.logger != nil {
			return NewRange(WithRangeLogger(o.logger))
		}

		return NewRange()
	}
}
