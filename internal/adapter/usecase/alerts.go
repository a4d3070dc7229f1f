package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
)

// raise persists an alert, deduplicated per (campaign, type), and hands it
// to the notifier. Persistence failures are logged, never silent.
func (s *Service) raise(ctx context.Context, campaignID int64, alertType string, sev domain.Severity, msg string) {
	alert := domain.Alert{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Type:       alertType,
		Severity:   sev,
		Message:    msg,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.store.OpenAlert(ctx, alert)
	if err != nil {
		s.logger.Error("persist alert",
			slog.Int64("campaign_id", campaignID),
			slog.String("type", alertType),
			slog.Any("error", err))
		return
	}
	if !created {
		return // one of this type is already open
	}
	select {
	case s.alertCh <- alert:
	default:
		// notifier saturated; the alert is already durable
		s.logger.Warn("alert channel full", slog.String("type", alertType))
	}
}

// resolve closes an open alert of the given type once its condition heals.
func (s *Service) resolve(ctx context.Context, campaignID int64, alertType string) {
	if err := s.store.ResolveAlert(ctx, campaignID, alertType, time.Now().UTC()); err != nil {
		s.logger.Error("resolve alert",
			slog.Int64("campaign_id", campaignID),
			slog.String("type", alertType),
			slog.Any("error", err))
	}
}

// trackZeroSpend maintains the zero-spend window and its alert.
func (s *Service) trackZeroSpend(ctx context.Context, st *domain.PacingState, dailySpend int64, now time.Time) {
	if dailySpend > 0 {
		if st.ZeroSpendSince != nil {
			st.ZeroSpendSince = nil
			s.resolve(ctx, st.CampaignID, domain.AlertZeroSpend)
		}
		return
	}
	if st.ZeroSpendSince == nil {
		t := now
		st.ZeroSpendSince = &t
		return
	}
	if now.Sub(*st.ZeroSpendSince) >= s.cfg.ZeroSpendAfter {
		s.raise(ctx, st.CampaignID, domain.AlertZeroSpend, domain.SeverityWarning,
			fmt.Sprintf("no spend recorded since %s", st.ZeroSpendSince.Format(time.RFC3339)))
	}
}

// checkFeedStaleness alerts when the last stored snapshot is older than the
// stale cutoff, covering cycles where the feed itself is down.
func (s *Service) checkFeedStaleness(ctx context.Context, campaignID int64, now time.Time) {
	snap, err := s.store.LatestSnapshot(ctx, campaignID)
	if err != nil || snap == nil {
		return
	}
	cutoff := time.Duration(s.cfg.StaleAfterCycles) * s.cfg.Interval
	if now.Sub(snap.BucketTS) >= cutoff {
		s.raise(ctx, campaignID, domain.AlertStaleFeed, domain.SeverityWarning,
			fmt.Sprintf("no fresh spend data since %s", snap.BucketTS.Format(time.RFC3339)))
	}
}

// RunNotifier drains alert events and logs them at a level matching their
// severity. It is the integration point for a future notification
// collaborator (webhook, pager).
func (s *Service) RunNotifier(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case alert := <-s.alertCh:
			level := slog.LevelWarn
			switch alert.Severity {
			case domain.SeverityInfo:
				level = slog.LevelInfo
			case domain.SeverityCritical:
				level = slog.LevelError
			}
			s.logger.Log(ctx, level, "alert raised",
				slog.String("alert_id", alert.ID.String()),
				slog.Int64("campaign_id", alert.CampaignID),
				slog.String("type", alert.Type),
				slog.String("severity", string(alert.Severity)),
				slog.String("message", alert.Message))
		}
	}
}
