package port

import (
	"context"
	"errors"
	"time"

	"ad-pacer/internal/core/domain"
)

var (
	// ErrTransientFeed marks a retryable failure of the external platform:
	// the cycle is skipped and retried on the next tick, with no state
	// change.
	ErrTransientFeed = errors.New("transient platform error")
	// ErrCampaignInactive is returned by commit operations when the campaign
	// was paused or ended externally between proposal and apply.
	ErrCampaignInactive = errors.New("campaign inactive on platform")
)

// SpendFigures is one spend report from the platform's metrics feed.
// Figures may arrive late; ReportedAt is the platform-side timestamp used
// for staleness checks.
type SpendFigures struct {
	CampaignID       int64
	MTDSpend         int64
	DailySpend       int64
	SourceConfidence float64
	ReportedAt       time.Time
}

// CampaignRegistry is the read-only view of campaign identity owned by the
// external platform.
type CampaignRegistry interface {
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns nil when the campaign does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
}

// SpendFeed pulls per-campaign cost figures from the platform.
type SpendFeed interface {
	FetchSpend(ctx context.Context, campaignID int64) (*SpendFigures, error)
}

// BudgetPlatform applies budget decisions to the external platform. Both
// operations must be idempotent on the platform side for the same arguments.
type BudgetPlatform interface {
	ApplyDailyBudget(ctx context.Context, campaignID int64, newDaily int64, effectiveAt time.Time) error
	PauseCampaign(ctx context.Context, campaignID int64) error
}
