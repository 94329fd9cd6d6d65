// Package testing provides test utilities for the groupassign library.
//
// It follows Go's convention of shipping testing helpers in a dedicated
// package (similar to net/http/httptest):
//   - StartEmbeddedNATS: in-process NATS server with JetStream
//   - NewJetStream: JetStream context over an embedded server connection
//   - NewTestLogger: types.Logger that writes to testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    gatest "github.com/arloliu/groupassign/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := gatest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
