package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-pacer/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it exposes pacing state and alerts read-only and accepts operator
// decisions on the approval queue. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.PacingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// usecase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.PacingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns/{id}/pacing", h.handlePacingSnapshot)
		r.Get("/alerts", h.handleOpenAlerts)
		r.Get("/adjustments", h.handleListAdjustments)
		r.Post("/adjustments/{id}/approve", h.handleApprove)
		r.Post("/adjustments/{id}/reject", h.handleReject)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with a JSON content type. Encoding errors are logged
// and otherwise dropped: headers are already written.
func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
