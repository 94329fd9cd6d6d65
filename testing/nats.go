package testing

import (
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// StartEmbeddedNATS starts an embedded NATS server with JetStream enabled for testing.
//
// The server runs in-process and stores JetStream data in a temporary
// directory that is cleaned up when the test completes. This provides a fast,
// reliable way to test NATS-dependent code without external dependencies.
//
// Benefits over testcontainers:
//   - Zero external dependencies (no Docker required)
//   - Fast startup (milliseconds vs seconds)
//   - Works everywhere Go works (CI/CD friendly)
//   - Perfect for parallel test execution
//   - Automatic cleanup via t.Cleanup()
//
// The server uses a random available port to avoid conflicts in parallel tests.
//
// Parameters:
//   - t: Testing context for logging and cleanup
//
// Returns:
//   - *server.Server: The embedded NATS server instance
//   - *nats.Conn: Connected NATS client (closed automatically on test completion)
//
// Example:
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := gatest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	    // Server and connection are automatically cleaned up
//	}
func StartEmbeddedNATS(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	// Random port, JetStream on, state in the test temp dir
	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
		LogFile:   "",
		Debug:     false,
		Trace:     false,
		NoLog:     true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		t.Fatalf("Failed to create embedded NATS server: %v", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		t.Fatal("Embedded NATS server not ready within timeout")
	}

	nc, err := nats.Connect(ns.ClientURL(),
		nats.Timeout(2*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(3),
	)
	if err != nil {
		ns.Shutdown()
		t.Fatalf("Failed to connect to embedded NATS server: %v", err)
	}

	// Cleanup handlers run in reverse order
	t.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return ns, nc
}

// NewJetStream creates a JetStream context over an embedded server connection.
//
// Parameters:
//   - t: Testing context
//   - nc: Connection returned by StartEmbeddedNATS
//
// Returns:
//   - jetstream.JetStream: JetStream context ready for KV operations
func NewJetStream(t *testing.T, nc *nats.Conn) jetstream.JetStream {
	t.Helper()

	js, err := jetstream.New(nc)
	if err != nil {
		t.Fatalf("Failed to create JetStream context: %v", err)
	}

	return js
}
