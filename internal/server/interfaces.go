package server

// Server is the lifecycle contract the forum's transport server exposes to
// main: [NewServer] builds one over the HTTP handler stack, and main only
// ever calls RunServer.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested (a termination signal, for the HTTP server) and to release
// resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
