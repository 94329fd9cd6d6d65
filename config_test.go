package groupassign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "range", cfg.Strategy)
	require.Equal(t, 10*time.Second, cfg.SourceTimeout)
	require.False(t, cfg.PlanCache.Disabled)
	require.Equal(t, 16, cfg.PlanCache.MaxEntries)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		ApplyDefaults(&cfg)

		require.Equal(t, "range", cfg.Strategy)
		require.Equal(t, 10*time.Second, cfg.SourceTimeout)
		require.Equal(t, 16, cfg.PlanCache.MaxEntries)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Strategy:      "fair",
			SourceTimeout: 3 * time.Second,
			PlanCache: PlanCacheConfig{
				Disabled:   true,
				MaxEntries: 4,
			},
		}
		ApplyDefaults(&cfg)

		require.Equal(t, "fair", cfg.Strategy)
		require.Equal(t, 3*time.Second, cfg.SourceTimeout)
		require.True(t, cfg.PlanCache.Disabled)
		require.Equal(t, 4, cfg.PlanCache.MaxEntries)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts defaults", func(t *testing.T) {
		cfg := DefaultConfig()

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects non-positive source timeout", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SourceTimeout = 0

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects non-positive cache size", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.PlanCache.MaxEntries = -1

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfig_YAML(t *testing.T) {
	t.Run("unmarshals from yaml", func(t *testing.T) {
		yamlConfig := `
strategy: roundrobin
sourceTimeout: 5s
planCache:
  disabled: true
  maxEntries: 8
`
		var cfg Config
		err := yaml.Unmarshal([]byte(yamlConfig), &cfg)

		require.NoError(t, err)
		require.Equal(t, "roundrobin", cfg.Strategy)
		require.Equal(t, 5*time.Second, cfg.SourceTimeout)
		require.True(t, cfg.PlanCache.Disabled)
		require.Equal(t, 8, cfg.PlanCache.MaxEntries)
	})

	t.Run("partial yaml plus defaults validates", func(t *testing.T) {
		yamlConfig := `
strategy: fair
`
		var cfg Config
		err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
		require.NoError(t, err)

		ApplyDefaults(&cfg)

		require.NoError(t, cfg.Validate())
		require.Equal(t, "fair", cfg.Strategy)
		require.Equal(t, 10*time.Second, cfg.SourceTimeout)
	})
}
