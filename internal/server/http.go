package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	server *http.Server

	mu        sync.Mutex
	boundAddr string
}

func newHTTPServer(handler http.Handler, address string) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		boundAddr: address,
	}
}

func (h *httpServer) Serve(listener net.Listener) error {
	return h.server.Serve(listener)
}

// Shutdown waits up to shutdownTimeout for in-flight requests.
func (h *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return h.server.Shutdown(ctx)
}

func (h *httpServer) setAddr(addr string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.boundAddr = addr
}

func (h *httpServer) addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.boundAddr
}
