// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
	"github.com/MKhiriev/go-mirror-sync/models"
)

const (
	defaultTransfersLimit = 50
	maxTransfersLimit     = 500
)

// getStatus serves the driver state, the scheduler snapshot and the build
// metadata as one JSON document.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	report := h.status.Status(r.Context())
	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getStatus").Msg("error writing status report")
	}
}

// getTransfers serves the most recent journal entries, newest first.
// The optional "limit" query parameter must be within 1..500.
func (h *Handler) getTransfers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getTransfers").Msg("rejected limit")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.journal.RecentTransfers(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTransfers").Msg("error reading transfer journal")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.TransferRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// healthz answers 200 while the cycle driver is alive and 503 once it stopped.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if !h.status.Healthy(r.Context()) {
		utils.WriteJSON(w, map[string]string{"status": "stopped"}, http.StatusServiceUnavailable)
		return
	}
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func parseLimit(raw string) (uint64, error) {
	if raw == "" {
		return defaultTransfersLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 || limit > maxTransfersLimit {
		return 0, ErrInvalidLimit
	}

	return limit, nil
}
