package types

import "errors"

// Sentinel errors for the groupassign library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components should use these sentinels for known error
// conditions and wrap additional context with fmt.Errorf("%w: ...").

// Context errors - returned when building an AssignmentContext.
var (
	// ErrInconsistentSnapshot is returned when subscribed topics and partition
	// metadata do not cover each other.
	ErrInconsistentSnapshot = errors.New("inconsistent metadata snapshot")
)

// Assignor errors - returned by assignment strategies.
var (
	// ErrNonUniformSubscription is returned by the round-robin assignor when
	// consumers in the group do not all subscribe to the identical set of
	// topics with identical stream counts.
	ErrNonUniformSubscription = errors.New("subscriptions are not identical across the group")
)

// Planner errors - public API errors returned by the Planner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMetadataSourceRequired is returned when the metadata source is nil.
	ErrMetadataSourceRequired = errors.New("metadata source is required")

	// ErrAssignmentFailed is returned when assignment computation fails.
	ErrAssignmentFailed = errors.New("assignment failed")
)
