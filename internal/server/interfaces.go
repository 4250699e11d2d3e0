package server

// Server is the process-level lifecycle of the HTTP transport.
type Server interface {
	// RunServer serves until a termination signal arrives and returns once
	// the listener has been shut down.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by a timeout.
	Shutdown()
}
