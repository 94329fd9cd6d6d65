package groupassign

import "github.com/arloliu/groupassign/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on the types
// subpackage directly, which avoids import cycles while still offering the
// convenient groupassign.Assignment, groupassign.Logger, etc. for users.
type (
	TopicPartition    = types.TopicPartition
	ConsumerThreadID  = types.ConsumerThreadID
	AssignmentContext = types.AssignmentContext
	Assignment        = types.Assignment
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Assignor         = types.Assignor
	MetadataSource   = types.MetadataSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)
