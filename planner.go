package groupassign

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/groupassign/internal/logger"
	"github.com/arloliu/groupassign/internal/metrics"
	"github.com/arloliu/groupassign/strategy"
	"github.com/arloliu/groupassign/types"
)

// Planner builds membership snapshots and computes partition assignments.
//
// A Planner is the glue between a metadata source (where group membership and
// topic metadata live), an assignor (the pure decision algorithm) and the
// caller installing the result. The computation itself is deterministic and
// side-effect free; the Planner adds snapshot acquisition, memoization,
// logging and metrics around it.
//
// A Planner is safe for concurrent use.
type Planner struct {
	cfg      Config
	source   types.MetadataSource
	assignor types.Assignor
	logger   types.Logger
	metrics  types.MetricsCollector
	cache    *xsync.Map[uint64, types.Assignment]
}

// NewPlanner creates a new assignment planner.
//
// Parameters:
//   - cfg: Planner configuration (nil uses DefaultConfig)
//   - source: Metadata source for membership and topic discovery
//   - opts: Optional dependencies (WithAssignor, WithLogger, WithMetrics)
//
// Returns:
//   - *Planner: Initialized planner
//   - error: ErrMetadataSourceRequired or ErrInvalidConfig
//
// Example:
//
//	cfg := groupassign.DefaultConfig()
//	cfg.Strategy = strategy.StrategyFair
//	planner, err := groupassign.NewPlanner(&cfg, src)
func NewPlanner(cfg *Config, source types.MetadataSource, opts ...Option) (*Planner, error) {
	if source == nil {
		return nil, types.ErrMetadataSourceRequired
	}

	local := DefaultConfig()
	if cfg != nil {
		local = *cfg
	}
	ApplyDefaults(&local)
	if err := local.Validate(); err != nil {
		return nil, err
	}

	var o plannerOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}
	if o.assignor == nil {
		o.assignor = strategy.New(local.Strategy, strategy.WithLogger(o.logger))
	}

	return &Planner{
		cfg:      local,
		source:   source,
		assignor: o.assignor,
		logger:   o.logger,
		metrics:  o.metrics,
		cache:    xsync.NewMap[uint64, types.Assignment](),
	}, nil
}

// Assignor returns the assignor the planner computes with.
func (p *Planner) Assignor() types.Assignor {
	return p.assignor
}

// Snapshot fetches group membership and topic metadata from the source and
// assembles an immutable assignment context.
//
// The whole acquisition is bounded by Config.SourceTimeout. The returned
// context reflects one point in time; if the group changes while a snapshot
// is being taken, the surrounding rebalance protocol is expected to retry
// with a fresh one.
//
// Parameters:
//   - ctx: Context for cancellation
//   - group: Consumer group name
//   - consumerID: Id of the calling consumer instance
//
// Returns:
//   - *types.AssignmentContext: Sorted, validated snapshot
//   - error: Source fetch failure or ErrInconsistentSnapshot
func (p *Planner) Snapshot(ctx context.Context, group, consumerID string) (*types.AssignmentContext, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.SourceTimeout)
	defer cancel()

	start := time.Now()
	consumers, err := p.source.Consumers(ctx, group)
	p.metrics.RecordFetchDuration("consumers", time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to list consumers for group %q: %w", group, err)
	}

	start = time.Now()
	subscriptions := make(map[string]map[string]int, len(consumers))
	topicSet := make(map[string]struct{})
	for _, consumer := range consumers {
		topics, err := p.source.Subscriptions(ctx, group, consumer)
		if err != nil {
			p.metrics.RecordFetchDuration("subscriptions", time.Since(start).Seconds())

			return nil, fmt.Errorf("failed to fetch subscriptions of consumer %q: %w", consumer, err)
		}
		subscriptions[consumer] = topics
		for topic := range topics {
			topicSet[topic] = struct{}{}
		}
	}
	p.metrics.RecordFetchDuration("subscriptions", time.Since(start).Seconds())

	topics := make([]string, 0, len(topicSet))
	for topic := range topicSet {
		topics = append(topics, topic)
	}
	slices.Sort(topics)

	start = time.Now()
	partitions, err := p.source.Partitions(ctx, topics)
	p.metrics.RecordFetchDuration("partitions", time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partitions: %w", err)
	}

	actx, err := types.NewAssignmentContext(group, consumerID, subscriptions, partitions)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("membership snapshot built",
		"group", group,
		"consumers", len(actx.Consumers),
		"topics", len(topics),
		"partitions", actx.PartitionCount(),
		"fingerprint", actx.Fingerprint(),
	)

	return actx, nil
}

// Plan computes the partition assignment for a snapshot.
//
// Identical snapshots produce identical assignments; with the plan cache
// enabled the very same Assignment value is returned for a repeated
// fingerprint. Callers must treat the result as read-only.
//
// Parameters:
//   - actx: Immutable membership snapshot
//
// Returns:
//   - types.Assignment: Complete decision covering every consumer instance
//   - error: ErrAssignmentFailed wrapping the strategy error
func (p *Planner) Plan(actx *types.AssignmentContext) (types.Assignment, error) {
	if actx == nil {
		return nil, fmt.Errorf("%w: %w", types.ErrAssignmentFailed, strategy.ErrNilContext)
	}

	var fingerprint uint64
	if !p.cfg.PlanCache.Disabled {
		fingerprint = actx.Fingerprint()
		if cached, ok := p.cache.Load(fingerprint); ok {
			p.metrics.RecordCacheLookup(true)
			p.logger.Debug("reusing cached assignment", "group", actx.Group, "fingerprint", fingerprint)

			return cached, nil
		}
		p.metrics.RecordCacheLookup(false)
	}

	start := time.Now()
	assignment, err := p.assignor.Assign(actx)
	duration := time.Since(start).Seconds()

	p.metrics.RecordPlanDuration(p.assignor.Name(), duration)
	p.metrics.RecordPlanAttempt(p.assignor.Name(), err == nil)
	if err != nil {
		p.logger.Error("assignment computation failed",
			"group", actx.Group,
			"strategy", p.assignor.Name(),
			"error", err,
		)

		return nil, fmt.Errorf("%w: %w", types.ErrAssignmentFailed, err)
	}

	p.metrics.RecordPartitionCount(assignment.PartitionCount())
	p.metrics.RecordImbalance(p.assignor.Name(), assignment.Spread(actx.AllThreads()))

	if !p.cfg.PlanCache.Disabled {
		if p.cache.Size() >= p.cfg.PlanCache.MaxEntries {
			p.cache.Clear()
		}
		p.cache.Store(fingerprint, assignment)
	}

	p.logger.Info("assignment computed",
		"group", actx.Group,
		"strategy", p.assignor.Name(),
		"consumers", len(actx.Consumers),
		"partitions", assignment.PartitionCount(),
		"duration", duration,
	)

	return assignment, nil
}

// PlanGroup snapshots the group and computes its assignment in one call.
//
// Parameters:
//   - ctx: Context for cancellation of the metadata fetches
//   - group: Consumer group name
//   - consumerID: Id of the calling consumer instance
//
// Returns:
//   - types.Assignment: Complete decision covering every consumer instance
//   - error: Snapshot or computation failure
//
// Example:
//
//	assignment, err := planner.PlanGroup(ctx, "billing", "consumer-1")
//	if err != nil { /* handle */ }
//	owned := assignment.ForConsumer("consumer-1")
func (p *Planner) PlanGroup(ctx context.Context, group, consumerID string) (types.Assignment, error) {
	actx, err := p.Snapshot(ctx, group, consumerID)
	if err != nil {
		return nil, err
	}

	return p.Plan(actx)
}
