package domain

import "time"

// Campaign statuses as reported by the external advertising platform. The
// registry is read-only for this service; the pacing engine tracks its own
// lifecycle in PacingState.
const (
	CampaignActive = "active"
	CampaignPaused = "paused"
	CampaignEnded  = "ended"
)

// Campaign is the registry view of an advertising campaign.
// Budgets are stored in integer units (e.g. cents).
type Campaign struct {
	ID          int64
	Name        string
	Status      string // active, paused, ended
	DailyBudget int64
	CreatedAt   time.Time
}
