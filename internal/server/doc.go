// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle: startup, OS signal
// handling, and graceful shutdown of in-flight connections.
package server
