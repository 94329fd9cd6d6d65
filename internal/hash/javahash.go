// Package hash provides the deterministic string hash used to order
// topic-partitions for round-robin assignment.
package hash

import "unicode/utf16"

// JavaString returns the signed 32-bit hash of s computed exactly like the
// JVM's String.hashCode: h = 31*h + c over the UTF-16 code units of s, with
// 32-bit wraparound.
//
// The round-robin assignor orders topic-partitions by this hash so that
// partitions of the same topic spread across consumer threads instead of
// clustering. Every group member must use the identical function or the
// computed assignments diverge, which is why the algorithm is pinned to the
// JVM definition rather than a Go-native hash.
//
// Parameters:
//   - s: Input string (typically a TopicPartition's "topic-partition" form)
//
// Returns:
//   - int32: Signed 32-bit hash value
func JavaString(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(unit)
	}

	return h
}
