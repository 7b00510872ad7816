package server

import "context"

// Server defines the lifecycle of the status API listener.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns early if the listener cannot be bound.
	Run(ctx context.Context) error

	// Addr returns the bound address once Run started listening, or the
	// configured address before that.
	Addr() string
}
