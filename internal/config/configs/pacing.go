package configs

import (
	"time"

	"ad-pacer/internal/core/pacing"
)

// Pacing gathers every tunable of the calculator, the adjustment policy and
// the alert thresholds. Keeping them in one explicit structure (rather than
// scattered flags) lets each evaluation receive the full decision context.
// Monetary values are integer units (cents).
type Pacing struct {
	// BandLow and BandHigh bound the normal pacing band.
	BandLow  float64 `env:"BAND_LOW" envDefault:"0.85"`
	BandHigh float64 `env:"BAND_HIGH" envDefault:"1.15"`
	// StepCap is the maximum fractional daily-budget change per cycle.
	StepCap float64 `env:"STEP_CAP" envDefault:"0.30"`
	// EmergencyRatio bypasses the step cap and forces approval.
	EmergencyRatio float64 `env:"EMERGENCY_RATIO" envDefault:"1.5"`
	// ApprovalDelta is the absolute change above which approval is required.
	ApprovalDelta int64 `env:"APPROVAL_DELTA" envDefault:"50000"`
	// BaselineDeviation is the max fraction the new budget may deviate from
	// the plan baseline without approval.
	BaselineDeviation float64 `env:"BASELINE_DEVIATION" envDefault:"0.50"`
	// SmoothingWindow is the trailing-cycle window of the adaptive strategy.
	SmoothingWindow int `env:"SMOOTHING_WINDOW" envDefault:"4"`
	// FrontLoadTolerance widens the band floor early in the month for the
	// front-loaded strategy.
	FrontLoadTolerance float64 `env:"FRONT_LOAD_TOLERANCE" envDefault:"0.25"`

	// ZeroSpendAfter is how long a campaign may report zero daily spend
	// before an alert is raised.
	ZeroSpendAfter time.Duration `env:"ZERO_SPEND_AFTER" envDefault:"6h"`
	// BreachCycles is the number of consecutive out-of-band cycles before a
	// pacing alert is raised.
	BreachCycles int `env:"BREACH_CYCLES" envDefault:"3"`
	// StaleAfterCycles is the feed age, in cycles, beyond which data is
	// considered stale and alerted on.
	StaleAfterCycles int `env:"STALE_AFTER_CYCLES" envDefault:"2"`
	// ApprovalExpiry is how long an adjustment may wait for an operator
	// before being auto-rejected.
	ApprovalExpiry time.Duration `env:"APPROVAL_EXPIRY" envDefault:"24h"`
}

// Thresholds converts the config into the policy's tuning structure.
func (c Pacing) Thresholds() pacing.Thresholds {
	return pacing.Thresholds{
		BandLow:            c.BandLow,
		BandHigh:           c.BandHigh,
		StepCap:            c.StepCap,
		EmergencyRatio:     c.EmergencyRatio,
		ApprovalDelta:      c.ApprovalDelta,
		BaselineDeviation:  c.BaselineDeviation,
		SmoothingWindow:    c.SmoothingWindow,
		FrontLoadTolerance: c.FrontLoadTolerance,
	}
}
