package pacing

import (
	"fmt"
	"math"

	"ad-pacer/internal/core/domain"
)

// Thresholds is the explicit tuning surface of the adjustment policy. It is
// built once from configuration and passed into every evaluation.
type Thresholds struct {
	// BandLow/BandHigh bound the normal pacing band (defaults 0.85 / 1.15).
	BandLow  float64
	BandHigh float64
	// StepCap is the maximum fractional change per cycle for non-emergency
	// adjustments (default 0.30).
	StepCap float64
	// EmergencyRatio is the overspend ratio above which the cap is bypassed
	// and approval is always required (default 1.5).
	EmergencyRatio float64
	// ApprovalDelta is the absolute change, in integer units, above which an
	// adjustment requires approval.
	ApprovalDelta int64
	// BaselineDeviation is the maximum fraction the resulting budget may
	// deviate from the plan baseline before approval is required (default
	// 0.50).
	BaselineDeviation float64
	// SmoothingWindow is the number of trailing cycles the adaptive strategy
	// averages over.
	SmoothingWindow int
	// FrontLoadTolerance widens the band floor by this amount during the
	// first third of the month under the front-loaded strategy.
	FrontLoadTolerance float64
}

// Input carries everything the policy needs for one decision.
type Input struct {
	Ratio         float64
	RecentRatios  []float64 // prior cycles, oldest first; used by adaptive
	Strategy      domain.Strategy
	CurrentDaily  int64
	BaselineDaily int64 // plan monthly budget spread evenly
	Day           int
	DaysInMonth   int
}

// Proposal is the policy decision for one cycle.
type Proposal struct {
	Change           bool
	NewDaily         int64
	Reason           string
	RequiresApproval bool
	Emergency        bool
	// OutOfBand reports whether the effective ratio fell outside the band
	// that applied to this decision (strategy tolerances included). The
	// lifecycle controller throttles on it.
	OutOfBand bool
	// EffectiveRatio is the ratio after strategy smoothing; the lifecycle
	// controller uses it for band/phase decisions so state agrees with the
	// decision that was actually made.
	EffectiveRatio float64
}

// Propose applies the decision table to a pacing ratio. The returned
// proposal never changes a zero daily budget (there is nothing to scale) and
// honours the step cap for all non-emergency changes.
func Propose(in Input, t Thresholds) Proposal {
	ratio := in.Ratio
	if in.Strategy == domain.StrategyAdaptive {
		ratio = smooth(in.RecentRatios, in.Ratio, t.SmoothingWindow)
	}

	low := t.BandLow
	if in.Strategy == domain.StrategyFrontLoaded && in.DaysInMonth > 0 && in.Day*3 <= in.DaysInMonth {
		low -= t.FrontLoadTolerance
	}

	p := Proposal{
		EffectiveRatio: ratio,
		OutOfBand:      ratio < low || ratio > t.BandHigh,
	}
	if in.CurrentDaily <= 0 {
		return p
	}

	switch {
	case ratio > t.EmergencyRatio:
		// Severe overspend: cut straight to pace, no cap.
		p.Change = true
		p.Emergency = true
		p.RequiresApproval = true
		p.NewDaily = int64(math.Round(float64(in.CurrentDaily) / ratio))
		p.Reason = fmt.Sprintf("emergency reduction: pacing ratio %.2f above %.2f", ratio, t.EmergencyRatio)
	case ratio > t.BandHigh:
		p.Change = true
		p.NewDaily = scale(in.CurrentDaily, 1/ratio, 1-t.StepCap, 1)
		p.Reason = fmt.Sprintf("overpacing: ratio %.2f above band %.2f", ratio, t.BandHigh)
	case ratio < low:
		p.Change = true
		p.NewDaily = scale(in.CurrentDaily, 1/math.Max(ratio, epsilon), 1, 1+t.StepCap)
		p.Reason = fmt.Sprintf("underpacing: ratio %.2f below band %.2f", ratio, low)
	default:
		return p
	}

	if p.NewDaily == in.CurrentDaily {
		// Rounding collapsed the change; nothing to propose.
		return Proposal{EffectiveRatio: ratio, OutOfBand: p.OutOfBand}
	}

	if !p.RequiresApproval {
		delta := p.NewDaily - in.CurrentDaily
		if t.ApprovalDelta > 0 && abs(delta) > t.ApprovalDelta {
			p.RequiresApproval = true
		}
		if in.BaselineDaily > 0 {
			dev := math.Abs(float64(p.NewDaily-in.BaselineDaily)) / float64(in.BaselineDaily)
			if dev > t.BaselineDeviation {
				p.RequiresApproval = true
			}
		}
	}
	return p
}

// smooth averages the latest ratio with up to window-1 trailing observations.
func smooth(recent []float64, latest float64, window int) float64 {
	if window <= 1 {
		return latest
	}
	obs := append(append([]float64{}, recent...), latest)
	if len(obs) > window {
		obs = obs[len(obs)-window:]
	}
	var sum float64
	for _, r := range obs {
		sum += r
	}
	return sum / float64(len(obs))
}

// scale multiplies current by factor clamped into [lo, hi].
func scale(current int64, factor, lo, hi float64) int64 {
	f := math.Min(math.Max(factor, lo), hi)
	return int64(math.Round(float64(current) * f))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
