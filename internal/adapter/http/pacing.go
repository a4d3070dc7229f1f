package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/port"
)

// pacingStateDTO is the read-only snapshot exposed to dashboards.
type pacingStateDTO struct {
	CampaignID         int64     `json:"campaign_id"`
	Phase              string    `json:"phase"`
	PacingRatio        float64   `json:"pacing_ratio"`
	LastAppliedBudget  int64     `json:"last_applied_budget"`
	LastEvaluatedAt    time.Time `json:"last_evaluated_at"`
	BlockingAdjustment *string   `json:"blocking_adjustment,omitempty"`
}

// handlePacingSnapshot serves the live pacing state for one campaign. An
// unknown campaign id results in HTTP 404; a malformed one in HTTP 400.
func (h *Handler) handlePacingSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	st, err := h.svc.PacingSnapshot(r.Context(), id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("pacing snapshot error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, toPacingDTO(st))
}

func toPacingDTO(st *domain.PacingState) pacingStateDTO {
	dto := pacingStateDTO{
		CampaignID:        st.CampaignID,
		Phase:             string(st.Phase),
		PacingRatio:       st.PacingRatio,
		LastAppliedBudget: st.LastAppliedBudget,
		LastEvaluatedAt:   st.LastEvaluatedAt,
	}
	if st.BlockingAdjustment != nil {
		s := st.BlockingAdjustment.String()
		dto.BlockingAdjustment = &s
	}
	return dto
}
