package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/port"
)

const commitAttempts = 3

// RunCommitWorker consumes approved adjustment ids and applies them to the
// external platform. Run it in its own goroutine; it exits when ctx is done.
func (s *Service) RunCommitWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-s.commitCh:
			if err := s.commit(ctx, id); err != nil {
				s.logger.Error("commit adjustment",
					slog.String("adjustment_id", id.String()), slog.Any("error", err))
			}
		}
	}
}

// RequeueApproved puts approved-but-unapplied adjustments back on the commit
// queue. The queue is in-memory, so a restart between approval and commit
// would otherwise strand the adjustment in Approved and hold its campaign in
// AwaitingApproval forever. Run once per scheduler tick; re-delivering an id
// already in flight is harmless because commit advances the status at most
// once.
func (s *Service) RequeueApproved(ctx context.Context) (int, error) {
	stranded, err := s.store.ListAdjustments(ctx, port.AdjustmentFilter{Status: domain.AdjustmentApproved})
	if err != nil {
		return 0, fmt.Errorf("list approved adjustments: %w", err)
	}
	for _, adj := range stranded {
		s.enqueueCommit(ctx, adj.ID)
	}
	return len(stranded), nil
}

// commit applies one approved adjustment. It re-checks validity immediately
// before mutating external state; transient platform failures are retried
// with exponential backoff, and a terminal failure marks the adjustment
// Failed and raises an alert. Re-delivering the same id is harmless: the
// status CAS lets only one attempt advance it.
func (s *Service) commit(ctx context.Context, id uuid.UUID) error {
	adj, err := s.store.GetAdjustment(ctx, id)
	if err != nil {
		return err
	}
	if adj == nil {
		return fmt.Errorf("adjustment %s: %w", id, port.ErrNotFound)
	}
	if adj.Status != domain.AdjustmentApproved {
		// duplicate queue entry or concurrently resolved; nothing to do
		return nil
	}

	effectiveAt := time.Now().UTC()
	operation := func() (struct{}, error) {
		// still-valid check: the campaign may have been paused or removed
		// externally since approval
		camp, err := s.registry.GetCampaign(ctx, adj.CampaignID)
		if err != nil {
			if errors.Is(err, port.ErrTransientFeed) {
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}
		if camp == nil || camp.Status != domain.CampaignActive {
			return struct{}{}, backoff.Permanent(port.ErrCampaignInactive)
		}
		if err := s.platform.ApplyDailyBudget(ctx, adj.CampaignID, adj.ProposedAmount, effectiveAt); err != nil {
			if errors.Is(err, port.ErrTransientFeed) {
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, nil
	}

	_, err = backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(commitAttempts))

	switch {
	case err == nil:
		appliedAt := time.Now().UTC()
		ok, aerr := s.store.AdvanceAdjustment(ctx, id,
			domain.AdjustmentApproved, domain.AdjustmentApplied, "system:commit", "", &appliedAt)
		if aerr != nil {
			return aerr
		}
		if !ok {
			return nil // another worker finished first
		}
		s.resolve(ctx, adj.CampaignID, domain.AlertCommitFailed)
		s.finalizeApplied(ctx, adj, appliedAt)
		s.logger.Info("adjustment applied",
			slog.String("adjustment_id", id.String()),
			slog.Int64("campaign_id", adj.CampaignID),
			slog.Int64("new_daily_budget", adj.ProposedAmount))
		return nil

	case errors.Is(err, port.ErrCampaignInactive):
		// mid-cycle cancellation: close without applying, leave the audit row
		if _, aerr := s.store.AdvanceAdjustment(ctx, id,
			domain.AdjustmentApproved, domain.AdjustmentRejected,
			"system:cancelled", "campaign inactive at commit time", nil); aerr != nil {
			return aerr
		}
		s.raise(ctx, adj.CampaignID, domain.AlertCommitFailed, domain.SeverityWarning,
			fmt.Sprintf("adjustment %s cancelled: campaign inactive at commit time", id))
		s.unblock(ctx, adj.CampaignID, id, domain.PhasePaused)
		return nil

	default:
		if _, aerr := s.store.AdvanceAdjustment(ctx, id,
			domain.AdjustmentApproved, domain.AdjustmentFailed,
			"system:commit", err.Error(), nil); aerr != nil {
			return aerr
		}
		s.raise(ctx, adj.CampaignID, domain.AlertCommitFailed, domain.SeverityCritical,
			fmt.Sprintf("adjustment %s failed after %d attempts: %v", id, commitAttempts, err))
		s.unblock(ctx, adj.CampaignID, id, domain.PhaseActive)
		return fmt.Errorf("apply adjustment %s: %w", id, err)
	}
}

// finalizeApplied records the new budget on the pacing state and clears the
// approval hold when this adjustment was the blocker.
func (s *Service) finalizeApplied(ctx context.Context, adj *domain.BudgetAdjustment, appliedAt time.Time) {
	for attempt := 0; attempt < 3; attempt++ {
		st, err := s.store.GetState(ctx, adj.CampaignID)
		if err != nil || st == nil {
			return
		}
		st.LastAppliedBudget = adj.ProposedAmount
		st.LastEvaluatedAt = appliedAt
		if st.BlockingAdjustment != nil && *st.BlockingAdjustment == adj.ID {
			st.BlockingAdjustment = nil
			if st.Phase == domain.PhaseAwaitingApproval {
				st.Phase = domain.PhaseActive
			}
		}
		err = s.store.SaveState(ctx, *st)
		if err == nil {
			return
		}
		if !errors.Is(err, port.ErrVersionConflict) {
			s.logger.Error("finalize applied adjustment",
				slog.Int64("campaign_id", adj.CampaignID), slog.Any("error", err))
			return
		}
	}
	s.logger.Warn("finalize applied adjustment: version conflicts exhausted",
		slog.Int64("campaign_id", adj.CampaignID))
}
