package domain

import (
	"fmt"
	"time"
)

// Strategy selects how the adjustment policy interprets the pacing ratio.
type Strategy string

const (
	// StrategyEven spends the monthly budget uniformly across the period.
	StrategyEven Strategy = "even"
	// StrategyFrontLoaded tolerates overdelivery during the first third of
	// the month before applying the normal band.
	StrategyFrontLoaded Strategy = "front_loaded"
	// StrategyAdaptive smooths the pacing ratio over recent cycles to damp
	// noise from delayed spend reporting.
	StrategyAdaptive Strategy = "adaptive"
)

// ParseStrategy validates a raw strategy value.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyEven, StrategyFrontLoaded, StrategyAdaptive:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown pacing strategy %q", s)
}

// BudgetPlan is the monthly budget target for one campaign. A plan is
// created at campaign launch or at month rollover and is immutable within
// its period. MonthlyBudget is in integer units (e.g. cents).
type BudgetPlan struct {
	CampaignID    int64
	MonthlyBudget int64
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Strategy      Strategy
	CreatedAt     time.Time
}

// Validate checks the plan invariants: a non-negative budget, a known
// strategy and a period that ends after it starts.
func (p BudgetPlan) Validate() error {
	if p.MonthlyBudget < 0 {
		return fmt.Errorf("plan for campaign %d: negative monthly budget %d", p.CampaignID, p.MonthlyBudget)
	}
	if !p.PeriodEnd.After(p.PeriodStart) {
		return fmt.Errorf("plan for campaign %d: period end %s not after start %s",
			p.CampaignID, p.PeriodEnd.Format(time.DateOnly), p.PeriodStart.Format(time.DateOnly))
	}
	if _, err := ParseStrategy(string(p.Strategy)); err != nil {
		return fmt.Errorf("plan for campaign %d: %w", p.CampaignID, err)
	}
	return nil
}

// Contains reports whether t falls inside the plan period.
func (p BudgetPlan) Contains(t time.Time) bool {
	return !t.Before(p.PeriodStart) && t.Before(p.PeriodEnd)
}

// BaselineDaily is the even daily budget implied by the plan.
func (p BudgetPlan) BaselineDaily() int64 {
	days := int64(p.PeriodEnd.Sub(p.PeriodStart).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return p.MonthlyBudget / days
}

// MonthPeriod returns the calendar-month period containing t, in UTC.
func MonthPeriod(t time.Time) (start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}
