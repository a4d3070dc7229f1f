package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo pacing data: budget plans for the current month, a few
// spend snapshots and one pending adjustment per campaign. Useful for local
// dashboards and manual testing of the approval endpoints.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)
	daysInMonth := int64(periodEnd.Sub(periodStart).Hours() / 24)

	strategies := []string{"even", "front_loaded", "adaptive"}
	for i := int64(1); i <= 5; i++ {
		monthly := int64(300000) * i // 3000.00 units and up
		strategy := strategies[int(i)%len(strategies)]
		_, err := db.Exec(ctx, `INSERT INTO budget_plans
    (campaign_id, monthly_budget, period_start, period_end, strategy, created_at)
VALUES ($1,$2,$3,$4,$5,now()) ON CONFLICT DO NOTHING`,
			i, monthly, periodStart, periodEnd, strategy)
		if err != nil {
			return err
		}

		daily := monthly / daysInMonth
		_, err = db.Exec(ctx, `INSERT INTO pacing_states
    (campaign_id, phase, pacing_ratio, last_evaluated_at, last_applied_budget)
VALUES ($1,'active',1.0,now(),$2) ON CONFLICT DO NOTHING`, i, daily)
		if err != nil {
			return err
		}

		// a few trailing snapshots, two hours apart
		for j := 4; j >= 1; j-- {
			bucket := now.Add(-time.Duration(j) * 2 * time.Hour).Truncate(2 * time.Hour)
			spent := daily * int64(now.Day()-1) / int64(j)
			_, err = db.Exec(ctx, `INSERT INTO spend_snapshots
    (campaign_id, bucket_ts, recorded_at, mtd_spend, daily_spend, source_confidence)
VALUES ($1,$2,$2,$3,$4,1.0) ON CONFLICT DO NOTHING`,
				i, bucket, spent, daily)
			if err != nil {
				return err
			}
		}

		_, err = db.Exec(ctx, `INSERT INTO budget_adjustments
    (id, campaign_id, evaluation_bucket, previous_amount, proposed_amount,
     reason, requires_approval, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,true,'pending',now()) ON CONFLICT DO NOTHING`,
			uuid.New(), i, now.Truncate(2*time.Hour), daily, daily*2,
			fmt.Sprintf("seeded approval request for campaign %d", i))
		if err != nil {
			return err
		}
	}
	return nil
}
