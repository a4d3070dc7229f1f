package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ad-pacer/internal/core/domain"
)

// alertDTO is the wire form of an alert.
type alertDTO struct {
	ID         string     `json:"id"`
	CampaignID int64      `json:"campaign_id"`
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func toAlertDTOs(alerts []domain.Alert) []alertDTO {
	out := make([]alertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, alertDTO{
			ID:         a.ID.String(),
			CampaignID: a.CampaignID,
			Type:       a.Type,
			Severity:   string(a.Severity),
			Message:    a.Message,
			CreatedAt:  a.CreatedAt,
			ResolvedAt: a.ResolvedAt,
		})
	}
	return out
}

// handleOpenAlerts returns unresolved alerts, optionally filtered by the
// `campaign_id` query parameter. An invalid id results in HTTP 400.
func (h *Handler) handleOpenAlerts(w http.ResponseWriter, r *http.Request) {
	var campaignID *int64
	if cid := r.URL.Query().Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		campaignID = &id
	}

	alerts, err := h.svc.OpenAlerts(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("list alerts error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, toAlertDTOs(alerts))
}
