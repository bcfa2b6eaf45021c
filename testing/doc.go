// Package testing provides test utilities for the peerassign library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for integration testing the durable mapping store.
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - NewTestLogger: Logger that writes to the testing.T log
//
// Example usage:
//
//	import (
//	    "testing"
//	    patest "github.com/expertiza/reimplementation-back-end-sub003/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := patest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
