package pacing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ad-pacer/internal/core/domain"
)

func defaults() Thresholds {
	return Thresholds{
		BandLow:            0.85,
		BandHigh:           1.15,
		StepCap:            0.30,
		EmergencyRatio:     1.5,
		ApprovalDelta:      100000,
		BaselineDeviation:  0.50,
		SmoothingWindow:    4,
		FrontLoadTolerance: 0.25,
	}
}

func TestDecisionTable(t *testing.T) {
	for _, tc := range []struct {
		name      string
		ratio     float64
		change    bool
		direction int // -1 decrease, +1 increase
	}{
		{"deep underpacing", 0.5, true, 1},
		{"mild underpacing", 0.80, true, 1},
		{"band floor", 0.85, false, 0},
		{"on pace", 1.0, false, 0},
		{"band ceiling", 1.15, false, 0},
		{"mild overpacing", 1.30, true, -1},
		{"severe overpacing", 2.0, true, -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := Propose(Input{
				Ratio:        tc.ratio,
				Strategy:     domain.StrategyEven,
				CurrentDaily: 10000,
				Day:          15,
				DaysInMonth:  30,
			}, defaults())

			require.Equal(t, tc.change, p.Change)
			switch tc.direction {
			case 1:
				require.Greater(t, p.NewDaily, int64(10000))
			case -1:
				require.Less(t, p.NewDaily, int64(10000))
			}
		})
	}
}

// TestStepCapInvariant holds the bound |proposed-current|/current ≤ step_cap
// for every non-emergency ratio.
func TestStepCapInvariant(t *testing.T) {
	th := defaults()
	th.ApprovalDelta = 0 // approval flags are irrelevant to the bound
	current := int64(10000)
	for ratio := 0.05; ratio <= th.EmergencyRatio; ratio += 0.05 {
		p := Propose(Input{
			Ratio:        ratio,
			Strategy:     domain.StrategyEven,
			CurrentDaily: current,
			Day:          15,
			DaysInMonth:  30,
		}, th)
		if !p.Change {
			continue
		}
		require.False(t, p.Emergency, "ratio %.2f", ratio)
		frac := float64(abs(p.NewDaily-current)) / float64(current)
		require.LessOrEqual(t, frac, th.StepCap+1e-9, "ratio %.2f", ratio)
	}
}

// TestEmergencyBypassesCap is the severe-overspend scenario: ratio 2.0 cuts
// the budget in half, well past the 30% cap, and always requires approval.
func TestEmergencyBypassesCap(t *testing.T) {
	p := Propose(Input{
		Ratio:        2.0,
		Strategy:     domain.StrategyEven,
		CurrentDaily: 10000,
		Day:          10,
		DaysInMonth:  30,
	}, defaults())

	require.True(t, p.Change)
	require.True(t, p.Emergency)
	require.True(t, p.RequiresApproval)
	require.Equal(t, int64(5000), p.NewDaily)
}

func TestUnderpacingBoundedIncrease(t *testing.T) {
	// Ratio 0.8 wants a 25% raise, inside the 30% cap.
	p := Propose(Input{
		Ratio:         0.8,
		Strategy:      domain.StrategyEven,
		CurrentDaily:  10000,
		BaselineDaily: 10000,
		Day:           15,
		DaysInMonth:   30,
	}, defaults())

	require.True(t, p.Change)
	require.False(t, p.RequiresApproval)
	require.Equal(t, int64(12500), p.NewDaily)
}

func TestApprovalOnAbsoluteDelta(t *testing.T) {
	th := defaults()
	th.ApprovalDelta = 50000

	p := Propose(Input{
		Ratio:         0.5,
		Strategy:      domain.StrategyEven,
		CurrentDaily:  1000000,
		BaselineDaily: 1000000,
		Day:           15,
		DaysInMonth:   30,
	}, th)

	require.True(t, p.Change)
	// +30% of 1,000,000 is 300,000 > 50,000 threshold.
	require.True(t, p.RequiresApproval)
}

func TestApprovalOnBaselineDeviation(t *testing.T) {
	th := defaults()
	th.ApprovalDelta = 0

	// Current budget already drifted to double the baseline; a further raise
	// deviates more than 50% from plan.
	p := Propose(Input{
		Ratio:         0.7,
		Strategy:      domain.StrategyEven,
		CurrentDaily:  20000,
		BaselineDaily: 10000,
		Day:           20,
		DaysInMonth:   30,
	}, th)

	require.True(t, p.Change)
	require.True(t, p.RequiresApproval)
}

func TestFrontLoadedRelaxesEarlyMonth(t *testing.T) {
	in := Input{
		Ratio:        0.7,
		CurrentDaily: 10000,
		Day:          5,
		DaysInMonth:  30,
	}

	in.Strategy = domain.StrategyEven
	require.True(t, Propose(in, defaults()).Change)

	// Front-loaded widens the floor to 0.60 in the first third of the month,
	// so 0.7 is tolerated.
	in.Strategy = domain.StrategyFrontLoaded
	require.False(t, Propose(in, defaults()).Change)

	// Past the first third the normal floor applies again.
	in.Day = 15
	require.True(t, Propose(in, defaults()).Change)
}

func TestAdaptiveSmoothsSpikes(t *testing.T) {
	in := Input{
		Ratio:        1.4, // transient reporting spike
		RecentRatios: []float64{1.0, 0.95, 1.05},
		Strategy:     domain.StrategyAdaptive,
		CurrentDaily: 10000,
		Day:          15,
		DaysInMonth:  30,
	}

	p := Propose(in, defaults())
	// Smoothed ratio (1.0+0.95+1.05+1.4)/4 = 1.10 sits inside the band.
	require.False(t, p.Change)
	require.InDelta(t, 1.10, p.EffectiveRatio, 1e-9)

	// The same spike without history is acted on.
	in.RecentRatios = nil
	require.True(t, Propose(in, defaults()).Change)
}

func TestZeroCurrentBudgetNeverScaled(t *testing.T) {
	p := Propose(Input{
		Ratio:        0.2,
		Strategy:     domain.StrategyEven,
		CurrentDaily: 0,
		Day:          15,
		DaysInMonth:  30,
	}, defaults())

	require.False(t, p.Change)
}
