package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Get("/healthz", h.healthz)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/status", h.getStatus)
		r.Get("/api/transfers", h.getTransfers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
