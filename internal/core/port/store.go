package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ad-pacer/internal/core/domain"
)

var (
	// ErrVersionConflict is returned by SaveState when the stored version no
	// longer matches, i.e. a concurrent evaluation or an operator override
	// won the race.
	ErrVersionConflict = errors.New("pacing state version conflict")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotPending is returned when an operator decision targets an
	// adjustment that was already resolved (approved, rejected, expired or
	// applied).
	ErrNotPending = errors.New("adjustment is not pending")
)

// AdjustmentFilter narrows ListAdjustments. Zero values mean "any".
type AdjustmentFilter struct {
	CampaignID *int64
	Status     domain.AdjustmentStatus
	Limit      int
}

// PacingStore is the persistence port for the engine's system of record.
// It is an outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; all PacingState writes are compare-and-swap and all
// deduplicated inserts report whether a row was actually created.
type PacingStore interface {
	// ActivePlan returns the budget plan whose period contains at, or nil
	// when the campaign has no plan for that period.
	ActivePlan(ctx context.Context, campaignID int64, at time.Time) (*domain.BudgetPlan, error)
	// CreatePlan stores a new immutable plan for a period.
	CreatePlan(ctx context.Context, plan domain.BudgetPlan) error

	// InsertSnapshot appends a spend observation. It returns false when a
	// snapshot for the same (campaign, bucket) already exists; the ledger is
	// never mutated.
	InsertSnapshot(ctx context.Context, snap domain.SpendSnapshot) (bool, error)
	// LatestSnapshot returns the most recent observation, or nil when none.
	LatestSnapshot(ctx context.Context, campaignID int64) (*domain.SpendSnapshot, error)

	// GetState returns the live pacing state, or nil when the campaign has
	// not been evaluated yet.
	GetState(ctx context.Context, campaignID int64) (*domain.PacingState, error)
	// InitState inserts the initial state for a campaign. Inserting twice is
	// a no-op.
	InitState(ctx context.Context, st domain.PacingState) error
	// SaveState persists st if and only if the stored version equals
	// st.Version, then increments it. ErrVersionConflict otherwise.
	SaveState(ctx context.Context, st domain.PacingState) error

	// CreateAdjustment stores a proposed adjustment. It returns false when
	// the (campaign, evaluation bucket) pair already produced one, which
	// makes cycle replay idempotent.
	CreateAdjustment(ctx context.Context, adj domain.BudgetAdjustment) (bool, error)
	GetAdjustment(ctx context.Context, id uuid.UUID) (*domain.BudgetAdjustment, error)
	// AdvanceAdjustment moves an adjustment from one status to another,
	// recording who resolved it. It returns false when the stored status is
	// not `from`, so each transition happens at most once.
	AdvanceAdjustment(ctx context.Context, id uuid.UUID, from, to domain.AdjustmentStatus, resolvedBy, note string, appliedAt *time.Time) (bool, error)
	ListAdjustments(ctx context.Context, f AdjustmentFilter) ([]domain.BudgetAdjustment, error)
	// ExpiredPending returns pending adjustments created before the cutoff.
	ExpiredPending(ctx context.Context, before time.Time) ([]domain.BudgetAdjustment, error)

	// OpenAlert persists an alert unless one of the same (campaign, type) is
	// already open; it reports whether a new alert was created.
	OpenAlert(ctx context.Context, alert domain.Alert) (bool, error)
	// ResolveAlert closes the open alert of the given type, if any.
	ResolveAlert(ctx context.Context, campaignID int64, alertType string, at time.Time) error
	ListOpenAlerts(ctx context.Context, campaignID *int64) ([]domain.Alert, error)

	// AcquireLease takes the per-campaign evaluation lease for ttl. It
	// returns false while another holder's unexpired lease exists.
	AcquireLease(ctx context.Context, campaignID int64, holder string, ttl time.Duration) (bool, error)
	ReleaseLease(ctx context.Context, campaignID int64, holder string) error
}
