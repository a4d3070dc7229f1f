package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/pacing"
	"ad-pacer/internal/core/port"
)

// EvaluateCampaign runs one monitoring cycle for a campaign. The cycle is
// serialized by a time-bounded lease, idempotent on the evaluation bucket
// and isolated: any error it returns affects this campaign only.
func (s *Service) EvaluateCampaign(ctx context.Context, campaignID int64, now time.Time) error {
	ok, err := s.store.AcquireLease(ctx, campaignID, s.holder, s.cfg.LeaseTTL)
	if err != nil {
		return fmt.Errorf("acquire lease for campaign %d: %w", campaignID, err)
	}
	if !ok {
		s.logger.Debug("evaluation already in flight", slog.Int64("campaign_id", campaignID))
		return nil
	}
	defer func() {
		// release even when the surrounding context was cancelled mid-cycle
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.store.ReleaseLease(rctx, campaignID, s.holder); err != nil {
			s.logger.Warn("release lease", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		}
	}()

	camp, err := s.registry.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, port.ErrTransientFeed) {
			s.logger.Warn("registry unavailable, retrying next cycle",
				slog.Int64("campaign_id", campaignID), slog.Any("error", err))
			return nil
		}
		return fmt.Errorf("registry lookup for campaign %d: %w", campaignID, err)
	}
	if camp == nil || camp.Status != domain.CampaignActive {
		// externally paused or gone mid-cycle: abandon the evaluation
		s.logger.Info("campaign inactive on platform, skipping",
			slog.Int64("campaign_id", campaignID))
		return nil
	}

	now = now.UTC()
	plan, st, err := s.preparePeriod(ctx, camp, now)
	if err != nil {
		var inv *invariantError
		if errors.As(err, &inv) {
			s.forceManualReview(ctx, campaignID, inv.Error())
		}
		return err
	}

	switch st.Phase {
	case domain.PhaseAwaitingApproval:
		// automatic adjustments are suspended until the operator decides
		s.logger.Debug("awaiting approval, cycle suspended", slog.Int64("campaign_id", campaignID))
		return nil
	case domain.PhasePaused, domain.PhaseExhausted:
		// nothing to pace until the period boundary resets the state
		return nil
	}

	figures, err := s.feed.FetchSpend(ctx, campaignID)
	if err != nil {
		if errors.Is(err, port.ErrTransientFeed) {
			s.logger.Warn("spend feed unavailable, retrying next cycle",
				slog.Int64("campaign_id", campaignID), slog.Any("error", err))
			s.checkFeedStaleness(ctx, campaignID, now)
			return nil
		}
		return fmt.Errorf("fetch spend for campaign %d: %w", campaignID, err)
	}

	staleCutoff := time.Duration(s.cfg.StaleAfterCycles) * s.cfg.Interval
	if now.Sub(figures.ReportedAt) >= staleCutoff {
		s.raise(ctx, campaignID, domain.AlertStaleFeed, domain.SeverityWarning,
			fmt.Sprintf("spend data last reported %s, %d cycles ago",
				figures.ReportedAt.Format(time.RFC3339), int(now.Sub(figures.ReportedAt)/s.cfg.Interval)))
		return nil // skip the evaluation; stale figures would misprice the ratio
	}
	s.resolve(ctx, campaignID, domain.AlertStaleFeed)

	bucket := now.Truncate(s.cfg.Interval)
	if _, err := s.store.InsertSnapshot(ctx, domain.SpendSnapshot{
		CampaignID:       campaignID,
		BucketTS:         bucket,
		RecordedAt:       figures.ReportedAt,
		MTDSpend:         figures.MTDSpend,
		DailySpend:       figures.DailySpend,
		SourceConfidence: figures.SourceConfidence,
	}); err != nil {
		return fmt.Errorf("record snapshot for campaign %d: %w", campaignID, err)
	}

	day := now.Day()
	daysInMonth := int(plan.PeriodEnd.Sub(plan.PeriodStart).Hours() / 24)
	ev := pacing.Evaluate(plan.MonthlyBudget, figures.MTDSpend, day, daysInMonth)
	if ev.Skip {
		s.logger.Warn("calendar position out of range, cycle skipped",
			slog.Int64("campaign_id", campaignID),
			slog.Int("day", day), slog.Int("days_in_month", daysInMonth))
		return nil
	}

	s.trackZeroSpend(ctx, st, figures.DailySpend, now)

	if ev.Exhausted {
		return s.exhaust(ctx, camp, st, ev, now)
	}

	prop := pacing.Propose(pacing.Input{
		Ratio:         ev.Ratio,
		RecentRatios:  st.RecentRatios,
		Strategy:      plan.Strategy,
		CurrentDaily:  camp.DailyBudget,
		BaselineDaily: plan.BaselineDaily(),
		Day:           day,
		DaysInMonth:   daysInMonth,
	}, s.cfg.Thresholds)

	nextPhase := domain.PhaseActive
	if prop.OutOfBand {
		nextPhase = domain.PhaseThrottled
		st.BandBreachStreak++
		if st.BandBreachStreak >= s.cfg.BreachCycles {
			s.raise(ctx, campaignID, domain.AlertPacingBreach, domain.SeverityWarning,
				fmt.Sprintf("pacing ratio %.2f outside band for %d consecutive cycles",
					prop.EffectiveRatio, st.BandBreachStreak))
		}
	} else {
		st.BandBreachStreak = 0
		s.resolve(ctx, campaignID, domain.AlertPacingBreach)
	}

	var blocking *uuid.UUID
	if prop.Change {
		adj := domain.BudgetAdjustment{
			ID:               uuid.New(),
			CampaignID:       campaignID,
			EvaluationBucket: bucket,
			PreviousAmount:   camp.DailyBudget,
			ProposedAmount:   prop.NewDaily,
			Reason:           prop.Reason,
			RequiresApproval: prop.RequiresApproval,
			Status:           domain.AdjustmentPending,
			CreatedAt:        now,
		}
		created, err := s.store.CreateAdjustment(ctx, adj)
		if err != nil {
			return fmt.Errorf("create adjustment for campaign %d: %w", campaignID, err)
		}
		switch {
		case !created:
			// this bucket already produced an adjustment; replayed cycle
			s.logger.Debug("adjustment already exists for bucket",
				slog.Int64("campaign_id", campaignID), slog.Time("bucket", bucket))
		case prop.RequiresApproval:
			nextPhase = domain.PhaseAwaitingApproval
			blocking = &adj.ID
			s.logger.Info("adjustment held for approval",
				slog.Int64("campaign_id", campaignID),
				slog.String("adjustment_id", adj.ID.String()),
				slog.Int64("proposed", prop.NewDaily),
				slog.String("reason", prop.Reason))
		default:
			ok, err := s.store.AdvanceAdjustment(ctx, adj.ID,
				domain.AdjustmentPending, domain.AdjustmentApproved, "system:auto", "within step cap", nil)
			if err != nil {
				return fmt.Errorf("auto-approve adjustment %s: %w", adj.ID, err)
			}
			if ok {
				s.enqueueCommit(ctx, adj.ID)
			}
		}
	}

	if !domain.CanTransition(st.Phase, nextPhase) {
		msg := fmt.Sprintf("illegal phase transition %s -> %s", st.Phase, nextPhase)
		s.forceManualReview(ctx, campaignID, msg)
		return fmt.Errorf("campaign %d: %s", campaignID, msg)
	}
	st.Phase = nextPhase
	st.BlockingAdjustment = blocking
	st.PacingRatio = prop.EffectiveRatio
	st.PushRatio(ev.Ratio, s.cfg.Thresholds.SmoothingWindow)
	st.LastEvaluatedAt = now

	if err := s.store.SaveState(ctx, *st); err != nil {
		return fmt.Errorf("save state for campaign %d: %w", campaignID, err)
	}
	return nil
}

// preparePeriod loads the active plan and state, creating both on first
// evaluation and rolling them over at the calendar boundary. A missing or
// malformed plan is an invariant violation.
func (s *Service) preparePeriod(ctx context.Context, camp *domain.Campaign, now time.Time) (*domain.BudgetPlan, *domain.PacingState, error) {
	plan, err := s.store.ActivePlan(ctx, camp.ID, now)
	if err != nil {
		return nil, nil, fmt.Errorf("load plan for campaign %d: %w", camp.ID, err)
	}
	if plan == nil {
		created, err := s.rolloverPlan(ctx, camp, now)
		if err != nil {
			return nil, nil, err
		}
		plan = created
	}
	if err := plan.Validate(); err != nil {
		return nil, nil, &invariantError{cause: err}
	}

	st, err := s.store.GetState(ctx, camp.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load state for campaign %d: %w", camp.ID, err)
	}
	if st == nil {
		fresh := domain.PacingState{
			CampaignID:        camp.ID,
			Phase:             domain.PhaseActive,
			LastEvaluatedAt:   now,
			LastAppliedBudget: camp.DailyBudget,
		}
		if err := s.store.InitState(ctx, fresh); err != nil {
			return nil, nil, fmt.Errorf("init state for campaign %d: %w", camp.ID, err)
		}
		st, err = s.store.GetState(ctx, camp.ID)
		if err != nil || st == nil {
			return nil, nil, fmt.Errorf("reload state for campaign %d: %w", camp.ID, err)
		}
		return plan, st, nil
	}

	// Calendar boundary: a state last evaluated before this period starts is
	// reset, returning Paused/Exhausted campaigns to Active.
	if st.LastEvaluatedAt.Before(plan.PeriodStart) && st.Phase != domain.PhaseActive {
		if !domain.CanTransition(st.Phase, domain.PhaseActive) {
			return nil, nil, &invariantError{cause: fmt.Errorf("period reset from phase %s refused", st.Phase)}
		}
		st.Phase = domain.PhaseActive
		st.PacingRatio = 0
		st.RecentRatios = nil
		st.BandBreachStreak = 0
		st.ZeroSpendSince = nil
		st.BlockingAdjustment = nil
		st.LastEvaluatedAt = now
		if err := s.store.SaveState(ctx, *st); err != nil {
			return nil, nil, fmt.Errorf("reset state for campaign %d: %w", camp.ID, err)
		}
		st.Version++
		s.logger.Info("period rollover, state reset",
			slog.Int64("campaign_id", camp.ID),
			slog.Time("period_start", plan.PeriodStart))
	}
	return plan, st, nil
}

// rolloverPlan creates the plan for the period containing now. Budget and
// strategy are inherited from the previous period when one exists, otherwise
// seeded from the registry's current daily budget under the even strategy.
func (s *Service) rolloverPlan(ctx context.Context, camp *domain.Campaign, now time.Time) (*domain.BudgetPlan, error) {
	start, end := domain.MonthPeriod(now)
	plan := domain.BudgetPlan{
		CampaignID:  camp.ID,
		PeriodStart: start,
		PeriodEnd:   end,
		Strategy:    domain.StrategyEven,
	}

	prev, err := s.store.ActivePlan(ctx, camp.ID, start.Add(-time.Hour))
	if err != nil {
		return nil, fmt.Errorf("load previous plan for campaign %d: %w", camp.ID, err)
	}
	if prev != nil {
		plan.MonthlyBudget = prev.MonthlyBudget
		plan.Strategy = prev.Strategy
	} else {
		days := int64(end.Sub(start).Hours() / 24)
		plan.MonthlyBudget = camp.DailyBudget * days
	}

	if err := plan.Validate(); err != nil {
		return nil, &invariantError{cause: err}
	}
	if err := s.store.CreatePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan for campaign %d: %w", camp.ID, err)
	}
	s.logger.Info("budget plan created",
		slog.Int64("campaign_id", camp.ID),
		slog.Int64("monthly_budget", plan.MonthlyBudget),
		slog.String("strategy", string(plan.Strategy)),
		slog.Time("period_start", start))
	return &plan, nil
}

// exhaust moves a campaign to Exhausted, pauses delivery on the platform and
// raises the critical alert. No spend-increasing adjustment can follow until
// the period boundary.
func (s *Service) exhaust(ctx context.Context, camp *domain.Campaign, st *domain.PacingState, ev pacing.Evaluation, now time.Time) error {
	if !domain.CanTransition(st.Phase, domain.PhaseExhausted) {
		msg := fmt.Sprintf("illegal phase transition %s -> %s", st.Phase, domain.PhaseExhausted)
		s.forceManualReview(ctx, camp.ID, msg)
		return fmt.Errorf("campaign %d: %s", camp.ID, msg)
	}

	if err := s.platform.PauseCampaign(ctx, camp.ID); err != nil {
		// the pause is retried next cycle; the phase still flips so no
		// spend-increasing adjustment can slip through
		s.logger.Error("pause campaign on platform",
			slog.Int64("campaign_id", camp.ID), slog.Any("error", err))
	}

	s.raise(ctx, camp.ID, domain.AlertBudgetExhausted, domain.SeverityCritical,
		fmt.Sprintf("monthly budget exhausted: remaining %d, campaign paused", ev.RemainingBudget))

	st.Phase = domain.PhaseExhausted
	st.PacingRatio = ev.Ratio
	st.PushRatio(ev.Ratio, s.cfg.Thresholds.SmoothingWindow)
	st.LastEvaluatedAt = now
	if err := s.store.SaveState(ctx, *st); err != nil {
		return fmt.Errorf("save exhausted state for campaign %d: %w", camp.ID, err)
	}
	s.logger.Warn("campaign exhausted",
		slog.Int64("campaign_id", camp.ID),
		slog.Float64("ratio", ev.Ratio))
	return nil
}

// forceManualReview parks a campaign in AwaitingApproval after an invariant
// violation so no automated change runs until an operator looks at it.
func (s *Service) forceManualReview(ctx context.Context, campaignID int64, reason string) {
	s.raise(ctx, campaignID, domain.AlertInvariant, domain.SeverityCritical, reason)

	st, err := s.store.GetState(ctx, campaignID)
	if err != nil || st == nil {
		return
	}
	if st.Phase == domain.PhaseAwaitingApproval {
		return
	}
	st.Phase = domain.PhaseAwaitingApproval
	st.LastEvaluatedAt = time.Now().UTC()
	if err := s.store.SaveState(ctx, *st); err != nil {
		s.logger.Error("force manual review",
			slog.Int64("campaign_id", campaignID), slog.Any("error", err))
	}
}

// invariantError marks a malformed plan or an illegal transition: fatal for
// this campaign's cycle, handled by forcing manual review.
type invariantError struct {
	cause error
}

func (e *invariantError) Error() string { return "invariant violation: " + e.cause.Error() }
func (e *invariantError) Unwrap() error { return e.cause }
