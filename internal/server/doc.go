// Package server runs the optional status API listener.
//
// The listener is bound synchronously so that address conflicts surface at
// startup, and it is shut down gracefully when the daemon's context ends.
package server
