package http

import (
	"net/http"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
)

// MetricsExporter serves the Prometheus scrape endpoint and instruments
// status API requests.
type MetricsExporter interface {
	Handler() http.Handler
	Middleware(next http.Handler) http.Handler
}

type Handler struct {
	status   service.StatusService
	journal  store.Journal
	metrics  MetricsExporter
	traceIDs service.IDGenerator

	logger *logger.Logger
}

// NewHandler builds the status API handler. A nil metrics exporter disables
// the /metrics route.
func NewHandler(status service.StatusService, journal store.Journal, metrics MetricsExporter, logger *logger.Logger) *Handler {
	if journal == nil {
		journal = store.NewNopJournal()
	}

	logger.Info().Msg("status api handler created")
	return &Handler{
		status:   status,
		journal:  journal,
		metrics:  metrics,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
