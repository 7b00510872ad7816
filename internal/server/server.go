package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-mirror-sync/internal/config"
	statusapi "github.com/MKhiriev/go-mirror-sync/internal/handler/http"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the status API server. It returns ErrNoStatusAddress when
// the listener is disabled in the configuration.
func NewServer(handler *statusapi.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.StatusAddress == "" {
		return nil, ErrNoStatusAddress
	}

	logger.Info().Str("address", cfg.StatusAddress).Msg("creating status server...")
	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg.StatusAddress),
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListen, err)
	}
	s.httpServer.setAddr(listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", listener.Addr().String()).Msg("status server listening")
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	if err = s.httpServer.Shutdown(); err != nil {
		s.logger.Err(err).Str("func", "*server.Run").Msg("error shutting down status server")
		return err
	}
	<-serveErr

	s.logger.Info().Msg("status server shut down gracefully")
	return nil
}

func (s *server) Addr() string {
	return s.httpServer.addr()
}
