package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades an alert for routing by the notification collaborator.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert types raised by the engine. At most one alert per (campaign, type)
// may be open at a time; a condition re-raises only after the prior alert is
// resolved.
const (
	AlertZeroSpend       = "zero_spend"
	AlertPacingBreach    = "pacing_breach"
	AlertStaleFeed       = "stale_feed"
	AlertBudgetExhausted = "budget_exhausted"
	AlertApprovalExpired = "approval_expired"
	AlertCommitFailed    = "commit_failed"
	AlertInvariant       = "invariant_violation"
)

// Alert is a persisted abnormal condition exposed to the notification and
// dashboard collaborators.
type Alert struct {
	ID         uuid.UUID
	CampaignID int64
	Type       string
	Severity   Severity
	Message    string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
