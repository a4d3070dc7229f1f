// Package usecase implements the pacing engine's business logic: the
// lifecycle controller driving each campaign's monitoring cycle, the
// approval gate, the commit worker and the alert generator. Pure pacing math
// lives in core/pacing; this package orchestrates it over the ports.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/pacing"
	"ad-pacer/internal/core/port"
)

// Config carries the tunables of one engine instance. Thresholds feed the
// adjustment policy; the remaining fields drive alerting, leasing and the
// approval gate.
type Config struct {
	Thresholds pacing.Thresholds
	// Interval is the monitoring cycle length; evaluation buckets are
	// timestamps truncated to it.
	Interval time.Duration
	// LeaseTTL bounds one campaign's evaluation lock.
	LeaseTTL time.Duration
	// ZeroSpendAfter is the zero-spend duration that raises an alert.
	ZeroSpendAfter time.Duration
	// BreachCycles is the consecutive out-of-band cycle count that raises an
	// alert.
	BreachCycles int
	// StaleAfterCycles is the feed age, in cycles, that marks data stale.
	StaleAfterCycles int
	// ApprovalExpiry is the operator sign-off window.
	ApprovalExpiry time.Duration
}

// Service implements port.PacingUseCase. Approved adjustments and alert
// notifications flow through channels to their workers so the evaluation
// path never blocks on external delivery.
type Service struct {
	store    port.PacingStore
	registry port.CampaignRegistry
	feed     port.SpendFeed
	platform port.BudgetPlatform
	cfg      Config
	logger   *slog.Logger
	holder   string

	commitCh chan uuid.UUID
	alertCh  chan domain.Alert
}

// NewService wires the engine. The logger must not be nil.
func NewService(store port.PacingStore, registry port.CampaignRegistry, feed port.SpendFeed, platform port.BudgetPlatform, cfg Config, logger *slog.Logger) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Hour
	}
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = cfg.Interval + 5*time.Minute
	}
	if cfg.BreachCycles <= 0 {
		cfg.BreachCycles = 3
	}
	if cfg.StaleAfterCycles <= 0 {
		cfg.StaleAfterCycles = 2
	}
	if cfg.ApprovalExpiry <= 0 {
		cfg.ApprovalExpiry = 24 * time.Hour
	}
	host, _ := os.Hostname()
	return &Service{
		store:    store,
		registry: registry,
		feed:     feed,
		platform: platform,
		cfg:      cfg,
		logger:   logger,
		holder:   fmt.Sprintf("%s-%s", host, uuid.NewString()[:8]),
		commitCh: make(chan uuid.UUID, 64),
		alertCh:  make(chan domain.Alert, 64),
	}
}

// PacingSnapshot returns the live state for dashboards.
func (s *Service) PacingSnapshot(ctx context.Context, campaignID int64) (*domain.PacingState, error) {
	st, err := s.store.GetState(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	return st, nil
}

// OpenAlerts lists unresolved alerts, optionally for one campaign.
func (s *Service) OpenAlerts(ctx context.Context, campaignID *int64) ([]domain.Alert, error) {
	return s.store.ListOpenAlerts(ctx, campaignID)
}

// Adjustments lists adjustment records for the audit/approval queue.
func (s *Service) Adjustments(ctx context.Context, f port.AdjustmentFilter) ([]domain.BudgetAdjustment, error) {
	return s.store.ListAdjustments(ctx, f)
}

// enqueueCommit hands an approved adjustment to the commit worker.
func (s *Service) enqueueCommit(ctx context.Context, id uuid.UUID) {
	select {
	case s.commitCh <- id:
	case <-ctx.Done():
	}
}
