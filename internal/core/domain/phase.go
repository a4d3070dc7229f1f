package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the pacing lifecycle state of a campaign. It is a closed set;
// transitions are validated against the table below and never inferred from
// free-text status values.
type Phase string

const (
	// PhaseActive: pacing within the normal band, automatic adjustments on.
	PhaseActive Phase = "active"
	// PhaseThrottled: pacing outside the band, corrective adjustments in
	// flight.
	PhaseThrottled Phase = "throttled"
	// PhaseExhausted: monthly budget fully spent before period end; the
	// campaign is paused on the platform and no spend-increasing adjustment
	// is permitted until the next period.
	PhaseExhausted Phase = "exhausted"
	// PhasePaused: stopped until the next calendar period boundary.
	PhasePaused Phase = "paused"
	// PhaseAwaitingApproval: a high-impact adjustment is pending operator
	// sign-off; automatic adjustments are suspended.
	PhaseAwaitingApproval Phase = "awaiting_approval"
)

// transitions is the closed transition table. Paused and Exhausted return to
// Active only through the period boundary event; any phase may be interrupted
// by an approval hold.
var transitions = map[Phase]map[Phase]bool{
	PhaseActive: {
		PhaseThrottled:        true,
		PhaseExhausted:        true,
		PhasePaused:           true,
		PhaseAwaitingApproval: true,
	},
	PhaseThrottled: {
		PhaseActive:           true,
		PhaseExhausted:        true,
		PhasePaused:           true,
		PhaseAwaitingApproval: true,
	},
	PhaseExhausted: {
		PhaseActive:           true, // period boundary only
		PhaseAwaitingApproval: true,
	},
	PhasePaused: {
		PhaseActive:           true, // period boundary only
		PhaseAwaitingApproval: true,
	},
	PhaseAwaitingApproval: {
		PhaseActive:    true,
		PhaseThrottled: true,
		PhaseExhausted: true,
		PhasePaused:    true,
	},
}

// CanTransition reports whether moving from one phase to another is legal.
// Staying in the current phase is always allowed.
func CanTransition(from, to Phase) bool {
	if from == to {
		return true
	}
	return transitions[from][to]
}

// PacingState is the live 1:1 pacing record per campaign. It is mutated only
// by the lifecycle controller; all writes are compare-and-swap on Version so
// concurrent evaluations or operator overrides are detected.
type PacingState struct {
	CampaignID       int64
	Phase            Phase
	PacingRatio      float64
	RecentRatios     []float64 // trailing window used by the adaptive strategy
	BandBreachStreak int       // consecutive cycles outside the band
	ZeroSpendSince   *time.Time
	// BlockingAdjustment is set while an adjustment awaits approval for this
	// campaign.
	BlockingAdjustment *uuid.UUID
	LastEvaluatedAt    time.Time
	LastAppliedBudget  int64
	Version            int64
}

// PushRatio appends a ratio observation, keeping at most window entries.
func (s *PacingState) PushRatio(ratio float64, window int) {
	s.RecentRatios = append(s.RecentRatios, ratio)
	if window > 0 && len(s.RecentRatios) > window {
		s.RecentRatios = s.RecentRatios[len(s.RecentRatios)-window:]
	}
}
