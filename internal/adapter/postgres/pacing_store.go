package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/port"
)

// PacingStore implements port.PacingStore using pgxpool for PostgreSQL.
// Idempotency relies on database constraints: unique evaluation buckets for
// snapshots and adjustments, a partial unique index for open alerts, and
// version checks on pacing_states.
type PacingStore struct {
	pool *pgxpool.Pool
}

// NewPacingStore returns a new store instance.
func NewPacingStore(pool *pgxpool.Pool) *PacingStore {
	return &PacingStore{pool: pool}
}

// ActivePlan returns the plan whose period contains at, or nil.
func (s *PacingStore) ActivePlan(ctx context.Context, campaignID int64, at time.Time) (*domain.BudgetPlan, error) {
	var p domain.BudgetPlan
	err := s.pool.QueryRow(ctx, `
        SELECT campaign_id, monthly_budget, period_start, period_end, strategy, created_at
        FROM budget_plans
        WHERE campaign_id = $1 AND period_start <= $2 AND period_end > $2`,
		campaignID, at).
		Scan(&p.CampaignID, &p.MonthlyBudget, &p.PeriodStart, &p.PeriodEnd, &p.Strategy, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePlan stores a new plan. The primary key (campaign_id, period_start)
// rejects a second plan for the same period.
func (s *PacingStore) CreatePlan(ctx context.Context, plan domain.BudgetPlan) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO budget_plans (campaign_id, monthly_budget, period_start, period_end, strategy, created_at)
        VALUES ($1, $2, $3, $4, $5, now())
        ON CONFLICT (campaign_id, period_start) DO NOTHING`,
		plan.CampaignID, plan.MonthlyBudget, plan.PeriodStart, plan.PeriodEnd, plan.Strategy)
	return err
}

// InsertSnapshot appends a spend observation, deduplicated by bucket.
func (s *PacingStore) InsertSnapshot(ctx context.Context, snap domain.SpendSnapshot) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
        INSERT INTO spend_snapshots (campaign_id, bucket_ts, recorded_at, mtd_spend, daily_spend, source_confidence)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (campaign_id, bucket_ts) DO NOTHING`,
		snap.CampaignID, snap.BucketTS, snap.RecordedAt, snap.MTDSpend, snap.DailySpend, snap.SourceConfidence)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// LatestSnapshot returns the most recent observation for a campaign, or nil.
func (s *PacingStore) LatestSnapshot(ctx context.Context, campaignID int64) (*domain.SpendSnapshot, error) {
	var snap domain.SpendSnapshot
	err := s.pool.QueryRow(ctx, `
        SELECT id, campaign_id, bucket_ts, recorded_at, mtd_spend, daily_spend, source_confidence
        FROM spend_snapshots
        WHERE campaign_id = $1
        ORDER BY bucket_ts DESC
        LIMIT 1`, campaignID).
		Scan(&snap.ID, &snap.CampaignID, &snap.BucketTS, &snap.RecordedAt, &snap.MTDSpend, &snap.DailySpend, &snap.SourceConfidence)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetState returns the live pacing state for a campaign, or nil.
func (s *PacingStore) GetState(ctx context.Context, campaignID int64) (*domain.PacingState, error) {
	var st domain.PacingState
	err := s.pool.QueryRow(ctx, `
        SELECT campaign_id, phase, pacing_ratio, recent_ratios, band_breach_streak,
               zero_spend_since, blocking_adjustment, last_evaluated_at, last_applied_budget, version
        FROM pacing_states
        WHERE campaign_id = $1`, campaignID).
		Scan(&st.CampaignID, &st.Phase, &st.PacingRatio, &st.RecentRatios, &st.BandBreachStreak,
			&st.ZeroSpendSince, &st.BlockingAdjustment, &st.LastEvaluatedAt, &st.LastAppliedBudget, &st.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// InitState inserts the initial state; inserting twice is a no-op.
func (s *PacingStore) InitState(ctx context.Context, st domain.PacingState) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO pacing_states
            (campaign_id, phase, pacing_ratio, recent_ratios, band_breach_streak,
             zero_spend_since, blocking_adjustment, last_evaluated_at, last_applied_budget, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
        ON CONFLICT (campaign_id) DO NOTHING`,
		st.CampaignID, st.Phase, st.PacingRatio, st.RecentRatios, st.BandBreachStreak,
		st.ZeroSpendSince, st.BlockingAdjustment, st.LastEvaluatedAt, st.LastAppliedBudget)
	return err
}

// SaveState performs the compare-and-swap write on (campaign_id, version).
func (s *PacingStore) SaveState(ctx context.Context, st domain.PacingState) error {
	tag, err := s.pool.Exec(ctx, `
        UPDATE pacing_states
        SET phase = $2, pacing_ratio = $3, recent_ratios = $4, band_breach_streak = $5,
            zero_spend_since = $6, blocking_adjustment = $7, last_evaluated_at = $8,
            last_applied_budget = $9, version = version + 1
        WHERE campaign_id = $1 AND version = $10`,
		st.CampaignID, st.Phase, st.PacingRatio, st.RecentRatios, st.BandBreachStreak,
		st.ZeroSpendSince, st.BlockingAdjustment, st.LastEvaluatedAt, st.LastAppliedBudget, st.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", st.CampaignID, port.ErrVersionConflict)
	}
	return nil
}

// CreateAdjustment stores a proposal; the unique evaluation bucket makes the
// cycle idempotent.
func (s *PacingStore) CreateAdjustment(ctx context.Context, adj domain.BudgetAdjustment) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
        INSERT INTO budget_adjustments
            (id, campaign_id, evaluation_bucket, previous_amount, proposed_amount,
             reason, requires_approval, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (campaign_id, evaluation_bucket) DO NOTHING`,
		adj.ID, adj.CampaignID, adj.EvaluationBucket, adj.PreviousAmount, adj.ProposedAmount,
		adj.Reason, adj.RequiresApproval, adj.Status, adj.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetAdjustment returns an adjustment by id, or nil.
func (s *PacingStore) GetAdjustment(ctx context.Context, id uuid.UUID) (*domain.BudgetAdjustment, error) {
	var a domain.BudgetAdjustment
	err := s.pool.QueryRow(ctx, adjustmentColumns+` WHERE id = $1`, id).
		Scan(adjustmentFields(&a)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AdvanceAdjustment moves an adjustment between statuses at most once.
func (s *PacingStore) AdvanceAdjustment(ctx context.Context, id uuid.UUID, from, to domain.AdjustmentStatus, resolvedBy, note string, appliedAt *time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
        UPDATE budget_adjustments
        SET status = $3, resolved_by = $4, resolution_note = $5, applied_at = COALESCE($6, applied_at)
        WHERE id = $1 AND status = $2`,
		id, from, to, resolvedBy, note, appliedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListAdjustments returns adjustments matching the filter, newest first.
func (s *PacingStore) ListAdjustments(ctx context.Context, f port.AdjustmentFilter) ([]domain.BudgetAdjustment, error) {
	query := adjustmentColumns + ` WHERE true`
	args := []interface{}{}
	if f.CampaignID != nil {
		args = append(args, *f.CampaignID)
		query += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BudgetAdjustment, error) {
		var a domain.BudgetAdjustment
		err := row.Scan(adjustmentFields(&a)...)
		return a, err
	})
}

// ExpiredPending returns pending adjustments created before the cutoff.
func (s *PacingStore) ExpiredPending(ctx context.Context, before time.Time) ([]domain.BudgetAdjustment, error) {
	rows, err := s.pool.Query(ctx, adjustmentColumns+`
        WHERE status = $1 AND created_at < $2
        ORDER BY created_at`, domain.AdjustmentPending, before)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BudgetAdjustment, error) {
		var a domain.BudgetAdjustment
		err := row.Scan(adjustmentFields(&a)...)
		return a, err
	})
}

// OpenAlert persists an alert unless one of the same type is already open.
// The partial unique index on (campaign_id, type) WHERE resolved_at IS NULL
// enforces the one-open-alert rule.
func (s *PacingStore) OpenAlert(ctx context.Context, alert domain.Alert) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
        INSERT INTO alerts (id, campaign_id, type, severity, message, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (campaign_id, type) WHERE resolved_at IS NULL DO NOTHING`,
		alert.ID, alert.CampaignID, alert.Type, alert.Severity, alert.Message, alert.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ResolveAlert closes any open alert of the given type.
func (s *PacingStore) ResolveAlert(ctx context.Context, campaignID int64, alertType string, at time.Time) error {
	_, err := s.pool.Exec(ctx, `
        UPDATE alerts SET resolved_at = $3
        WHERE campaign_id = $1 AND type = $2 AND resolved_at IS NULL`,
		campaignID, alertType, at)
	return err
}

// ListOpenAlerts returns unresolved alerts, optionally for one campaign.
func (s *PacingStore) ListOpenAlerts(ctx context.Context, campaignID *int64) ([]domain.Alert, error) {
	query := `
        SELECT id, campaign_id, type, severity, message, created_at, resolved_at
        FROM alerts
        WHERE resolved_at IS NULL`
	args := []interface{}{}
	if campaignID != nil {
		args = append(args, *campaignID)
		query += " AND campaign_id = $1"
	}
	query += " ORDER BY created_at DESC"
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Alert, error) {
		var a domain.Alert
		err := row.Scan(&a.ID, &a.CampaignID, &a.Type, &a.Severity, &a.Message, &a.CreatedAt, &a.ResolvedAt)
		return a, err
	})
}

// AcquireLease takes the per-campaign evaluation lease. An expired lease is
// stolen in the same statement, so a crashed holder self-heals.
func (s *PacingStore) AcquireLease(ctx context.Context, campaignID int64, holder string, ttl time.Duration) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
        INSERT INTO evaluation_leases (campaign_id, holder, expires_at)
        VALUES ($1, $2, now() + make_interval(secs => $3))
        ON CONFLICT (campaign_id) DO UPDATE
            SET holder = EXCLUDED.holder, expires_at = EXCLUDED.expires_at
            WHERE evaluation_leases.expires_at < now()`,
		campaignID, holder, ttl.Seconds())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ReleaseLease drops the lease if still held by this holder.
func (s *PacingStore) ReleaseLease(ctx context.Context, campaignID int64, holder string) error {
	_, err := s.pool.Exec(ctx, `
        DELETE FROM evaluation_leases WHERE campaign_id = $1 AND holder = $2`,
		campaignID, holder)
	return err
}

const adjustmentColumns = `
        SELECT id, campaign_id, evaluation_bucket, previous_amount, proposed_amount,
               reason, requires_approval, status, created_at, applied_at,
               COALESCE(resolved_by, ''), COALESCE(resolution_note, '')
        FROM budget_adjustments`

func adjustmentFields(a *domain.BudgetAdjustment) []interface{} {
	return []interface{}{
		&a.ID, &a.CampaignID, &a.EvaluationBucket, &a.PreviousAmount, &a.ProposedAmount,
		&a.Reason, &a.RequiresApproval, &a.Status, &a.CreatedAt, &a.AppliedAt,
		&a.ResolvedBy, &a.ResolutionNote,
	}
}
