// Package server wires and runs the application's HTTP transport.
//
// It provides lifecycle orchestration for the HTTP server: startup, signal
// handling, and graceful shutdown.
package server
