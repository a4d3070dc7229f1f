package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/port"
)

// adjustmentDTO is the wire form of a budget adjustment.
type adjustmentDTO struct {
	ID               string     `json:"id"`
	CampaignID       int64      `json:"campaign_id"`
	EvaluationBucket time.Time  `json:"evaluation_bucket"`
	PreviousAmount   int64      `json:"previous_amount"`
	ProposedAmount   int64      `json:"proposed_amount"`
	Reason           string     `json:"reason"`
	RequiresApproval bool       `json:"requires_approval"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	AppliedAt        *time.Time `json:"applied_at,omitempty"`
	ResolvedBy       string     `json:"resolved_by,omitempty"`
	ResolutionNote   string     `json:"resolution_note,omitempty"`
}

func toAdjustmentDTOs(adjustments []domain.BudgetAdjustment) []adjustmentDTO {
	out := make([]adjustmentDTO, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, adjustmentDTO{
			ID:               a.ID.String(),
			CampaignID:       a.CampaignID,
			EvaluationBucket: a.EvaluationBucket,
			PreviousAmount:   a.PreviousAmount,
			ProposedAmount:   a.ProposedAmount,
			Reason:           a.Reason,
			RequiresApproval: a.RequiresApproval,
			Status:           string(a.Status),
			CreatedAt:        a.CreatedAt,
			AppliedAt:        a.AppliedAt,
			ResolvedBy:       a.ResolvedBy,
			ResolutionNote:   a.ResolutionNote,
		})
	}
	return out
}

// handleListAdjustments serves the adjustment audit trail and approval
// queue. Optional query parameters: `status`, `campaign_id`, `limit`.
func (h *Handler) handleListAdjustments(w http.ResponseWriter, r *http.Request) {
	var (
		q = r.URL.Query()
		f port.AdjustmentFilter
	)
	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		f.CampaignID = &id
	}
	if status := q.Get("status"); status != "" {
		f.Status = domain.AdjustmentStatus(status)
	}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		f.Limit = n
	}

	adjustments, err := h.svc.Adjustments(r.Context(), f)
	if err != nil {
		h.logger.Error("list adjustments error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, toAdjustmentDTOs(adjustments))
}

// decisionRequest is the operator payload for approve/reject.
type decisionRequest struct {
	Operator string `json:"operator"`
	Note     string `json:"note"`
}

// handleApprove records an operator approval. Missing adjustments result in
// HTTP 404; double decisions in HTTP 409.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, h.svc.Approve)
}

// handleReject records an operator rejection.
func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, h.svc.Reject)
}

func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request,
	decide func(ctx context.Context, id uuid.UUID, operator, note string) error) {

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid adjustment id", http.StatusBadRequest)
		return
	}
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Operator == "" {
		http.Error(w, "operator is required", http.StatusBadRequest)
		return
	}

	switch err := decide(r.Context(), id, req.Operator, req.Note); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, port.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, port.ErrNotPending):
		http.Error(w, "adjustment already resolved", http.StatusConflict)
	default:
		h.logger.Error("decision error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
