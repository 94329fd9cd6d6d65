package groupassign

import (
	"fmt"
	"time"

	"github.com/arloliu/groupassign/types"
)

// PlanCacheConfig controls memoization of computed assignments.
//
// The Planner keys cached assignments by the snapshot fingerprint, so a
// rebalance retry over an unchanged snapshot reuses the previous decision
// instead of recomputing it. Caching never changes results: the strategies
// are deterministic, so a cached assignment is identical to a recomputed one.
type PlanCacheConfig struct {
	// Disabled turns memoization off entirely.
	Disabled bool `yaml:"disabled"`

	// MaxEntries caps the number of retained plans. The cache is cleared
	// wholesale when the cap is reached; rebalances are infrequent enough
	// that eviction sophistication buys nothing.
	//
	// Default: 16
	MaxEntries int `yaml:"maxEntries"`
}

// Config controls Planner behavior.
type Config struct {
	// Strategy selects the assignment algorithm by name: "range",
	// "roundrobin" or "fair". Unrecognized names (including empty) select
	// range. Ignored when a custom assignor is injected via WithAssignor.
	//
	// Default: "range"
	Strategy string `yaml:"strategy"`

	// SourceTimeout bounds one whole snapshot acquisition (all metadata
	// fetches for one rebalance attempt).
	//
	// Default: 10 seconds
	SourceTimeout time.Duration `yaml:"sourceTimeout"`

	// PlanCache controls assignment memoization.
	PlanCache PlanCacheConfig `yaml:"planCache"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Strategy:      "range",
		SourceTimeout: 10 * time.Second,
		PlanCache: PlanCacheConfig{
			Disabled:   false,
			MaxEntries: 16,
		},
	}
}

// ApplyDefaults fills zero-valued fields of cfg with defaults.
//
// Parameters:
//   - cfg: Configuration to normalize in place
func ApplyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.SourceTimeout <= 0 {
		cfg.SourceTimeout = defaults.SourceTimeout
	}
	if cfg.PlanCache.MaxEntries <= 0 {
		cfg.PlanCache.MaxEntries = defaults.PlanCache.MaxEntries
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending field, nil when valid
func (c *Config) Validate() error {
	if c.SourceTimeout <= 0 {
		return fmt.Errorf("%w: sourceTimeout must be positive, got %v", types.ErrInvalidConfig, c.SourceTimeout)
	}
	if c.PlanCache.MaxEntries <= 0 {
		return fmt.Errorf("%w: planCache.maxEntries must be positive, got %d", types.ErrInvalidConfig, c.PlanCache.MaxEntries)
	}

	return nil
}
