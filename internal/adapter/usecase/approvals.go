package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/port"
)

// Approve records the operator's sign-off and hands the adjustment to the
// commit worker. Deciding twice is rejected, not replayed.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, operator, note string) error {
	adj, err := s.store.GetAdjustment(ctx, id)
	if err != nil {
		return err
	}
	if adj == nil {
		return fmt.Errorf("adjustment %s: %w", id, port.ErrNotFound)
	}
	ok, err := s.store.AdvanceAdjustment(ctx, id,
		domain.AdjustmentPending, domain.AdjustmentApproved, operator, note, nil)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("adjustment %s: %w", id, port.ErrNotPending)
	}
	s.logger.Info("adjustment approved",
		slog.String("adjustment_id", id.String()),
		slog.Int64("campaign_id", adj.CampaignID),
		slog.String("operator", operator))
	s.enqueueCommit(ctx, id)
	return nil
}

// Reject closes a pending adjustment without applying it. The audit record
// stays; the campaign returns to automatic pacing.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, operator, note string) error {
	adj, err := s.store.GetAdjustment(ctx, id)
	if err != nil {
		return err
	}
	if adj == nil {
		return fmt.Errorf("adjustment %s: %w", id, port.ErrNotFound)
	}
	ok, err := s.store.AdvanceAdjustment(ctx, id,
		domain.AdjustmentPending, domain.AdjustmentRejected, operator, note, nil)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("adjustment %s: %w", id, port.ErrNotPending)
	}
	s.logger.Info("adjustment rejected",
		slog.String("adjustment_id", id.String()),
		slog.Int64("campaign_id", adj.CampaignID),
		slog.String("operator", operator))
	s.unblock(ctx, adj.CampaignID, id, domain.PhaseActive)
	return nil
}

// ExpirePending auto-rejects adjustments whose approval window has elapsed
// and raises one critical alert per expiry. Run once per scheduler tick.
func (s *Service) ExpirePending(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.store.ExpiredPending(ctx, now.Add(-s.cfg.ApprovalExpiry))
	if err != nil {
		return 0, fmt.Errorf("list expired approvals: %w", err)
	}
	count := 0
	for _, adj := range expired {
		ok, err := s.store.AdvanceAdjustment(ctx, adj.ID,
			domain.AdjustmentPending, domain.AdjustmentRejected,
			"system:expiry", "approval window expired", nil)
		if err != nil {
			s.logger.Error("expire adjustment",
				slog.String("adjustment_id", adj.ID.String()), slog.Any("error", err))
			continue
		}
		if !ok {
			continue // resolved concurrently by an operator
		}
		count++
		s.raise(ctx, adj.CampaignID, domain.AlertApprovalExpired, domain.SeverityCritical,
			fmt.Sprintf("adjustment %s expired unapproved after %s", adj.ID, s.cfg.ApprovalExpiry))
		s.unblock(ctx, adj.CampaignID, adj.ID, domain.PhaseActive)
	}
	return count, nil
}

// unblock clears the AwaitingApproval hold if this adjustment was the one
// blocking the campaign. The CAS write is retried a few times because the
// evaluator may race with it.
func (s *Service) unblock(ctx context.Context, campaignID int64, adjustmentID uuid.UUID, next domain.Phase) {
	for attempt := 0; attempt < 3; attempt++ {
		st, err := s.store.GetState(ctx, campaignID)
		if err != nil || st == nil {
			return
		}
		if st.BlockingAdjustment == nil || *st.BlockingAdjustment != adjustmentID {
			return // a different adjustment holds the campaign, or none
		}
		st.BlockingAdjustment = nil
		if st.Phase == domain.PhaseAwaitingApproval && domain.CanTransition(st.Phase, next) {
			st.Phase = next
		}
		err = s.store.SaveState(ctx, *st)
		if err == nil {
			return
		}
		if !errors.Is(err, port.ErrVersionConflict) {
			s.logger.Error("unblock campaign",
				slog.Int64("campaign_id", campaignID), slog.Any("error", err))
			return
		}
	}
	s.logger.Warn("unblock campaign: version conflicts exhausted",
		slog.Int64("campaign_id", campaignID))
}
