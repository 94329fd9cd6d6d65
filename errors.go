package groupassign

import "github.com/arloliu/groupassign/types"

// Sentinel errors returned by the Planner, re-exported from the types
// subpackage so callers can errors.Is against either package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrMetadataSourceRequired is returned when the metadata source is nil.
	ErrMetadataSourceRequired = types.ErrMetadataSourceRequired

	// ErrAssignmentFailed is returned when assignment computation fails.
	ErrAssignmentFailed = types.ErrAssignmentFailed

	// ErrNonUniformSubscription is returned (wrapped in ErrAssignmentFailed)
	// when the round-robin strategy is used with differing subscriptions.
	ErrNonUniformSubscription = types.ErrNonUniformSubscription

	// ErrInconsistentSnapshot is returned when metadata fetched from the
	// source does not form a consistent snapshot.
	ErrInconsistentSnapshot = types.ErrInconsistentSnapshot
)
