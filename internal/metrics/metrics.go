// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes sync engine measurements in the Prometheus format.
//
// A [Recorder] owns its registry, so several recorders can live side by
// side in tests. It satisfies the engine's MetricsRecorder interface and
// also instruments the status API through [Recorder.Middleware].
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-mirror-sync/models"
)

const namespace = "mirror_sync"

// Recorder records engine and status API metrics into a private registry.
type Recorder struct {
	registry *prometheus.Registry

	entriesClassified *prometheus.CounterVec
	transfers         *prometheus.CounterVec
	transferredBytes  prometheus.Counter
	remoteDeletes     *prometheus.CounterVec
	activeTransfers   prometheus.Gauge
	queuedTasks       prometheus.Gauge
	cycleDuration     prometheus.Histogram
	cyclesTotal       prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Recorder with Go runtime and process collectors registered.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,

		entriesClassified: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_classified_total",
			Help:      "Remote entries classified during reconciliation",
		}, []string{"class"}),
		transfers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Finished file transfers by outcome",
		}, []string{"status"}),
		transferredBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transferred_bytes_total",
			Help:      "Bytes written by successful transfers, excluding resumed prefixes",
		}),
		remoteDeletes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_deletes_total",
			Help:      "Remote files and folders deleted",
		}, []string{"kind"}),
		activeTransfers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "active_transfers",
			Help:      "Transfers currently running",
		}),
		queuedTasks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "queued_tasks",
			Help:      "Download tasks waiting for a free slot",
		}),
		cycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Wall time of finished sync cycles",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		cyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Finished sync cycles",
		}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Status API requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Status API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Handler returns the HTTP handler serving the recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) EntryClassified(class models.Classification) {
	r.entriesClassified.WithLabelValues(class.String()).Inc()
}

func (r *Recorder) TransferFinished(status models.TransferStatus, bytes int64) {
	r.transfers.WithLabelValues(string(status)).Inc()
	if bytes > 0 {
		r.transferredBytes.Add(float64(bytes))
	}
}

func (r *Recorder) RemoteDeleted(kind string) {
	r.remoteDeletes.WithLabelValues(kind).Inc()
}

func (r *Recorder) SchedulerChanged(active, queued int) {
	r.activeTransfers.Set(float64(active))
	r.queuedTasks.Set(float64(queued))
}

func (r *Recorder) CycleFinished(duration time.Duration) {
	r.cyclesTotal.Inc()
	r.cycleDuration.Observe(duration.Seconds())
}

// responseWriter captures the status code written by the wrapped handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and latency of every status API request.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, req)

		r.httpRequests.WithLabelValues(req.Method, req.URL.Path, strconv.Itoa(rw.statusCode)).Inc()
		r.httpRequestDuration.WithLabelValues(req.Method, req.URL.Path).Observe(time.Since(start).Seconds())
	})
}
