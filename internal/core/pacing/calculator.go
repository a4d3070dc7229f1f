// Package pacing holds the pure budget-pacing math: the calculator that
// turns month-to-date spend into a pacing ratio, and the policy that turns a
// ratio into a bounded budget proposal. Nothing here performs I/O or reads
// the clock, so every result is reproducible from its inputs.
package pacing

import "math"

// epsilon guards the division when ideal spend is zero (day one of a period
// or a zero budget).
const epsilon = 1e-9

// Evaluation is the calculator output for one monitoring cycle.
type Evaluation struct {
	// Ratio is actual month-to-date spend over ideal spend under even
	// distribution. 1.0 means perfectly on pace.
	Ratio float64
	// IdealSpend is the even-distribution spend expected by this day, in
	// integer units.
	IdealSpend int64
	// RemainingBudget may be negative when spend has overshot the plan.
	RemainingBudget int64
	// TargetDaily is the daily spend that exactly consumes the remaining
	// budget over the remaining days. Never negative.
	TargetDaily int64
	// Exhausted signals that no budget remains before the period end.
	Exhausted bool
	// Skip marks the evaluation as a no-op due to an invalid calendar
	// position.
	Skip bool
}

// Evaluate computes the pacing position for a campaign. monthlyBudget and
// mtdSpend are integer currency units; day is the 1-based day of month and
// daysInMonth the number of days in the period. An out-of-range calendar
// position yields Skip rather than an error: the cycle simply does nothing.
func Evaluate(monthlyBudget, mtdSpend int64, day, daysInMonth int) Evaluation {
	if day <= 0 || daysInMonth <= 0 || day > daysInMonth {
		return Evaluation{Skip: true}
	}

	ideal := float64(monthlyBudget) * float64(day) / float64(daysInMonth)
	ratio := float64(mtdSpend) / math.Max(ideal, epsilon)
	remaining := monthlyBudget - mtdSpend

	ev := Evaluation{
		Ratio:           ratio,
		IdealSpend:      int64(math.Round(ideal)),
		RemainingBudget: remaining,
	}
	if remaining <= 0 {
		ev.Exhausted = true
		return ev // TargetDaily stays 0
	}

	remainingDays := daysInMonth - day + 1
	ev.TargetDaily = remaining / int64(remainingDays)
	return ev
}
