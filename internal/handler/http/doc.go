// Package http implements the status API of the mirror daemon.
//
// It exposes the driver and scheduler state, the recent transfer journal, a
// health probe and the Prometheus scrape endpoint. Request tracing, access
// logging and response compression are handled by middleware in this
// package.
package http
