package usecase

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"ad-pacer/internal/core/port"
)

// evaluator is the slice of the usecase the scheduler drives.
type evaluator interface {
	EvaluateCampaign(ctx context.Context, campaignID int64, now time.Time) error
	ExpirePending(ctx context.Context, now time.Time) (int, error)
	RequeueApproved(ctx context.Context) (int, error)
}

// Scheduler fires one evaluation per active campaign every interval.
// Campaigns run concurrently up to the configured limit; one campaign's
// failure never aborts the tick or the other campaigns.
type Scheduler struct {
	svc      evaluator
	registry port.CampaignRegistry
	interval time.Duration
	limit    int
	logger   *slog.Logger
}

// NewScheduler builds the periodic trigger. concurrency bounds how many
// campaigns evaluate in parallel per tick.
func NewScheduler(svc evaluator, registry port.CampaignRegistry, interval time.Duration, concurrency int, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 2 * time.Hour
	}
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Scheduler{
		svc:      svc,
		registry: registry,
		interval: interval,
		limit:    concurrency,
		logger:   logger,
	}
}

// Run ticks until ctx is cancelled. The first pass fires immediately so a
// restart does not wait a full interval.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx, time.Now().UTC())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			s.tick(ctx, t.UTC())
		}
	}
}

// tick runs one monitoring cycle: expire stale approvals, then fan out one
// evaluation task per active campaign.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	if n, err := s.svc.ExpirePending(ctx, now); err != nil {
		s.logger.Error("expire pending approvals", slog.Any("error", err))
	} else if n > 0 {
		s.logger.Info("expired pending approvals", slog.Int("count", n))
	}

	if n, err := s.svc.RequeueApproved(ctx); err != nil {
		s.logger.Error("requeue approved adjustments", slog.Any("error", err))
	} else if n > 0 {
		s.logger.Info("requeued approved adjustments", slog.Int("count", n))
	}

	campaigns, err := s.registry.ListActiveCampaigns(ctx)
	if err != nil {
		s.logger.Error("list active campaigns", slog.Any("error", err))
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for _, camp := range campaigns {
		g.Go(func() error {
			if err := s.svc.EvaluateCampaign(gctx, camp.ID, now); err != nil {
				// isolated: log and move on
				s.logger.Error("evaluate campaign",
					slog.Int64("campaign_id", camp.ID), slog.Any("error", err))
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Debug("cycle complete",
		slog.Time("at", now), slog.Int("campaigns", len(campaigns)))
}
