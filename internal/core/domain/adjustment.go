package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdjustmentStatus is the lifecycle of a proposed budget change. A row is
// created Pending and advanced forward only; it is never deleted, so
// rejected and failed adjustments remain as audit records.
type AdjustmentStatus string

const (
	AdjustmentPending  AdjustmentStatus = "pending"
	AdjustmentApproved AdjustmentStatus = "approved"
	AdjustmentRejected AdjustmentStatus = "rejected"
	AdjustmentApplied  AdjustmentStatus = "applied"
	AdjustmentFailed   AdjustmentStatus = "failed"
)

// BudgetAdjustment is a proposed change to a campaign's daily budget,
// produced by one monitoring cycle. EvaluationBucket is the cycle timestamp
// truncated to the scheduler interval; together with the campaign id it is
// unique, which makes replaying a cycle idempotent. Amounts are in integer
// units (e.g. cents).
type BudgetAdjustment struct {
	ID               uuid.UUID
	CampaignID       int64
	EvaluationBucket time.Time
	PreviousAmount   int64
	ProposedAmount   int64
	Reason           string
	RequiresApproval bool
	Status           AdjustmentStatus
	CreatedAt        time.Time
	AppliedAt        *time.Time
	ResolvedBy       string
	ResolutionNote   string
}

// Delta is the signed budget change this adjustment proposes.
func (a BudgetAdjustment) Delta() int64 {
	return a.ProposedAmount - a.PreviousAmount
}
