package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
)

// PacingUseCase is the primary port into the engine. The scheduler drives
// EvaluateCampaign and ExpirePending; the HTTP adapter exposes the rest to
// operators and dashboards. Mock implementations can be generated from this
// interface for testing.
type PacingUseCase interface {
	// EvaluateCampaign runs one monitoring cycle for a campaign: ingest the
	// latest spend, compute pacing, propose an adjustment and advance the
	// lifecycle. Replaying the same (campaign, evaluation bucket) is a
	// no-op. A returned error is isolated to this campaign's cycle.
	EvaluateCampaign(ctx context.Context, campaignID int64, now time.Time) error

	// Approve releases a pending adjustment to the commit worker.
	Approve(ctx context.Context, id uuid.UUID, operator, note string) error
	// Reject closes a pending adjustment and unblocks the campaign. The
	// audit record is kept.
	Reject(ctx context.Context, id uuid.UUID, operator, note string) error
	// ExpirePending auto-rejects pending adjustments older than the expiry
	// window and raises one critical alert per expiry. It returns the number
	// of adjustments expired.
	ExpirePending(ctx context.Context, now time.Time) (int, error)
	// RequeueApproved re-enqueues approved-but-unapplied adjustments onto
	// the commit queue, recovering those stranded by a restart. It returns
	// the number requeued.
	RequeueApproved(ctx context.Context) (int, error)

	// PacingSnapshot returns the live state for dashboards.
	PacingSnapshot(ctx context.Context, campaignID int64) (*domain.PacingState, error)
	OpenAlerts(ctx context.Context, campaignID *int64) ([]domain.Alert, error)
	Adjustments(ctx context.Context, f AdjustmentFilter) ([]domain.BudgetAdjustment, error)
}
