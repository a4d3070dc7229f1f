package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/pacing"
	"ad-pacer/internal/core/port"
	"ad-pacer/internal/core/port/mocks"
)

type engineMocks struct {
	store    *mocks.MockPacingStore
	registry *mocks.MockCampaignRegistry
	feed     *mocks.MockSpendFeed
	platform *mocks.MockBudgetPlatform
}

func newTestService(t *testing.T) (*Service, engineMocks) {
	m := engineMocks{
		store:    mocks.NewMockPacingStore(t),
		registry: mocks.NewMockCampaignRegistry(t),
		feed:     mocks.NewMockSpendFeed(t),
		platform: mocks.NewMockBudgetPlatform(t),
	}
	svc := NewService(m.store, m.registry, m.feed, m.platform, Config{
		Thresholds: pacing.Thresholds{
			BandLow:            0.85,
			BandHigh:           1.15,
			StepCap:            0.30,
			EmergencyRatio:     1.5,
			ApprovalDelta:      50000,
			BaselineDeviation:  0.50,
			SmoothingWindow:    4,
			FrontLoadTolerance: 0.25,
		},
		Interval:         2 * time.Hour,
		ZeroSpendAfter:   6 * time.Hour,
		BreachCycles:     3,
		StaleAfterCycles: 2,
		ApprovalExpiry:   24 * time.Hour,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, m
}

// june 2026 has 30 days; the fixtures below evaluate mid-month.
var (
	periodStart = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
)

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:          1,
		Name:        "summer launch",
		Status:      domain.CampaignActive,
		DailyBudget: 10000,
	}
}

func testPlan() *domain.BudgetPlan {
	return &domain.BudgetPlan{
		CampaignID:    1,
		MonthlyBudget: 300000,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		Strategy:      domain.StrategyEven,
	}
}

func testState(phase domain.Phase, evaluatedAt time.Time) *domain.PacingState {
	return &domain.PacingState{
		CampaignID:      1,
		Phase:           phase,
		LastEvaluatedAt: evaluatedAt,
		Version:         3,
	}
}

// expectLeaseAndLookup wires the mocks every successful cycle goes through.
func expectLeaseAndLookup(m engineMocks, camp *domain.Campaign) {
	m.store.EXPECT().AcquireLease(mock.Anything, camp.ID, mock.Anything, mock.Anything).Return(true, nil)
	m.store.EXPECT().ReleaseLease(mock.Anything, camp.ID, mock.Anything).Return(nil)
	m.registry.EXPECT().GetCampaign(mock.Anything, camp.ID).Return(camp, nil)
}

// TestUnderpacingProposesBoundedIncrease is the canonical mid-month case:
// $3000 budget, day 15, $1200 spent → ratio 0.8, a +25% raise inside the cap
// that is auto-approved and queued for commit.
func TestUnderpacingProposesBoundedIncrease(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(testState(domain.PhaseActive, now.Add(-2*time.Hour)), nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 120000, DailySpend: 9000,
		SourceConfidence: 1.0, ReportedAt: now.Add(-30 * time.Minute),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.AnythingOfType("domain.SpendSnapshot")).Return(true, nil)

	var created domain.BudgetAdjustment
	m.store.EXPECT().CreateAdjustment(mock.Anything, mock.AnythingOfType("domain.BudgetAdjustment")).
		Run(func(ctx context.Context, adj domain.BudgetAdjustment) { created = adj }).
		Return(true, nil)
	m.store.EXPECT().AdvanceAdjustment(mock.Anything, mock.Anything,
		domain.AdjustmentPending, domain.AdjustmentApproved, "system:auto", mock.Anything, mock.Anything).
		Return(true, nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, st domain.PacingState) { saved = st }).
		Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	require.Equal(t, int64(10000), created.PreviousAmount)
	require.Equal(t, int64(12500), created.ProposedAmount)
	require.False(t, created.RequiresApproval)
	require.Equal(t, now.Truncate(2*time.Hour), created.EvaluationBucket)

	require.Equal(t, domain.PhaseThrottled, saved.Phase)
	require.InDelta(t, 0.8, saved.PacingRatio, 1e-9)
	require.Nil(t, saved.BlockingAdjustment)

	// the approved adjustment reached the commit queue
	select {
	case id := <-svc.commitCh:
		require.Equal(t, created.ID, id)
	default:
		t.Fatal("expected adjustment on commit queue")
	}
}

// TestEmergencyOverspendAwaitsApproval: $1800 spent by day 10 of a $3000
// month → ratio 1.8 above the emergency threshold. The cut bypasses the step
// cap and the campaign is parked in AwaitingApproval.
func TestEmergencyOverspendAwaitsApproval(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(testState(domain.PhaseActive, now.Add(-2*time.Hour)), nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 180000, DailySpend: 20000,
		SourceConfidence: 1.0, ReportedAt: now.Add(-time.Hour),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(true, nil)

	var created domain.BudgetAdjustment
	m.store.EXPECT().CreateAdjustment(mock.Anything, mock.AnythingOfType("domain.BudgetAdjustment")).
		Run(func(ctx context.Context, adj domain.BudgetAdjustment) { created = adj }).
		Return(true, nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, st domain.PacingState) { saved = st }).
		Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	require.True(t, created.RequiresApproval)
	// 10000 / 1.8 ≈ 5556, a 44% cut, far past the 30% cap
	require.Equal(t, int64(5556), created.ProposedAmount)

	require.Equal(t, domain.PhaseAwaitingApproval, saved.Phase)
	require.NotNil(t, saved.BlockingAdjustment)
	require.Equal(t, created.ID, *saved.BlockingAdjustment)

	// nothing reaches the commit queue without an operator
	select {
	case <-svc.commitCh:
		t.Fatal("adjustment must not be committed before approval")
	default:
	}
}

// TestOverspentBudgetExhaustsCampaign: spend exceeding the monthly budget
// pauses the campaign, raises a critical alert and flips the phase.
func TestOverspentBudgetExhaustsCampaign(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(testState(domain.PhaseActive, now.Add(-2*time.Hour)), nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 310000, DailySpend: 16000,
		SourceConfidence: 1.0, ReportedAt: now.Add(-time.Hour),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(true, nil)

	m.platform.EXPECT().PauseCampaign(mock.Anything, int64(1)).Return(nil)

	var alert domain.Alert
	m.store.EXPECT().OpenAlert(mock.Anything, mock.AnythingOfType("domain.Alert")).
		Run(func(ctx context.Context, a domain.Alert) { alert = a }).
		Return(true, nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, st domain.PacingState) { saved = st }).
		Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	require.Equal(t, domain.PhaseExhausted, saved.Phase)
	require.Equal(t, domain.AlertBudgetExhausted, alert.Type)
	require.Equal(t, domain.SeverityCritical, alert.Severity)
}

// TestReplayedCycleCreatesNoSecondAdjustment: the same evaluation bucket
// must not produce a second adjustment, so the auto-approve path is skipped
// when the store reports a duplicate.
func TestReplayedCycleCreatesNoSecondAdjustment(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(testState(domain.PhaseActive, now.Add(-2*time.Hour)), nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 120000, DailySpend: 9000,
		SourceConfidence: 1.0, ReportedAt: now.Add(-time.Hour),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(false, nil)
	// duplicate bucket: the adjustment already exists
	m.store.EXPECT().CreateAdjustment(mock.Anything, mock.Anything).Return(false, nil)
	m.store.EXPECT().SaveState(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	// no auto-approval ran (AdvanceAdjustment was never expected) and the
	// commit queue stayed empty
	select {
	case <-svc.commitCh:
		t.Fatal("replayed cycle must not enqueue a commit")
	default:
	}
}

// TestLeaseContention: a held lease means another evaluation is in flight;
// the cycle backs off without touching anything else.
func TestLeaseContention(t *testing.T) {
	svc, m := newTestService(t)
	m.store.EXPECT().AcquireLease(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(false, nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, time.Now().UTC()))
}

// TestExternallyPausedCampaignAbandonsCycle honours mid-cycle cancellation.
func TestExternallyPausedCampaignAbandonsCycle(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	camp.Status = domain.CampaignPaused

	m.store.EXPECT().AcquireLease(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(true, nil)
	m.store.EXPECT().ReleaseLease(mock.Anything, int64(1), mock.Anything).Return(nil)
	m.registry.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, time.Now().UTC()))
}

// TestPeriodBoundaryResetsExhaustedCampaign: an Exhausted campaign becomes
// Active with a fresh plan on day 1 of the next month.
func TestPeriodBoundaryResetsExhaustedCampaign(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 7, 1, 2, 0, 0, 0, time.UTC)

	prevPlan := testPlan() // june plan

	expectLeaseAndLookup(m, camp)
	// no plan for july yet; the previous period's plan seeds the new one
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(nil, nil).Once()
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(prevPlan, nil).Once()

	var createdPlan domain.BudgetPlan
	m.store.EXPECT().CreatePlan(mock.Anything, mock.AnythingOfType("domain.BudgetPlan")).
		Run(func(ctx context.Context, p domain.BudgetPlan) { createdPlan = p }).
		Return(nil)

	exhausted := testState(domain.PhaseExhausted, time.Date(2026, 6, 30, 22, 0, 0, 0, time.UTC))
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(exhausted, nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, st domain.PacingState) { saved = st }).
		Return(nil)

	// feed down this cycle; the reset still happened
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(nil, port.ErrTransientFeed)
	m.store.EXPECT().LatestSnapshot(mock.Anything, int64(1)).Return(nil, nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	require.Equal(t, domain.PhaseActive, saved.Phase)
	require.Zero(t, saved.BandBreachStreak)
	require.Nil(t, saved.BlockingAdjustment)

	require.Equal(t, prevPlan.MonthlyBudget, createdPlan.MonthlyBudget)
	require.Equal(t, prevPlan.Strategy, createdPlan.Strategy)
	require.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), createdPlan.PeriodStart)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), createdPlan.PeriodEnd)
}

// TestStaleFeedSkipsEvaluation: data older than two cycles is alerted on and
// the evaluation is skipped without touching state.
func TestStaleFeedSkipsEvaluation(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(testState(domain.PhaseActive, now.Add(-2*time.Hour)), nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 120000, DailySpend: 9000,
		SourceConfidence: 0.4, ReportedAt: now.Add(-5 * time.Hour),
	}, nil)

	var alert domain.Alert
	m.store.EXPECT().OpenAlert(mock.Anything, mock.AnythingOfType("domain.Alert")).
		Run(func(ctx context.Context, a domain.Alert) { alert = a }).
		Return(true, nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))
	require.Equal(t, domain.AlertStaleFeed, alert.Type)
}

// TestZeroSpendAlertAfterWindow: a campaign on pace but spending nothing for
// longer than the zero-spend window opens exactly one zero_spend alert.
func TestZeroSpendAlertAfterWindow(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	stuck := now.Add(-7 * time.Hour) // past the 6h window
	st := testState(domain.PhaseActive, now.Add(-2*time.Hour))
	st.ZeroSpendSince = &stuck

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(st, nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 150000, DailySpend: 0, // ratio 1.0, in band
		SourceConfidence: 1.0, ReportedAt: now.Add(-time.Hour),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(true, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertPacingBreach, mock.Anything).Return(nil)

	var alert domain.Alert
	m.store.EXPECT().OpenAlert(mock.Anything, mock.AnythingOfType("domain.Alert")).
		Run(func(ctx context.Context, a domain.Alert) { alert = a }).
		Return(true, nil).Once()

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, s domain.PacingState) { saved = s }).
		Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	require.Equal(t, domain.AlertZeroSpend, alert.Type)
	require.Equal(t, domain.SeverityWarning, alert.Severity)
	require.NotNil(t, saved.ZeroSpendSince) // window keeps running until spend resumes
}

// TestZeroSpendAlertResolvesOnSpend: resumed delivery clears the window and
// closes the open alert.
func TestZeroSpendAlertResolvesOnSpend(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	stuck := now.Add(-7 * time.Hour)
	st := testState(domain.PhaseActive, now.Add(-2*time.Hour))
	st.ZeroSpendSince = &stuck

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(st, nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 150000, DailySpend: 9000,
		SourceConfidence: 1.0, ReportedAt: now.Add(-time.Hour),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(true, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertZeroSpend, mock.Anything).Return(nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertPacingBreach, mock.Anything).Return(nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, s domain.PacingState) { saved = s }).
		Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))
	require.Nil(t, saved.ZeroSpendSince)
}

// TestBandBreachStreakAlert: the third consecutive out-of-band cycle opens
// exactly one pacing_breach alert alongside the corrective adjustment.
func TestBandBreachStreakAlert(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	st := testState(domain.PhaseThrottled, now.Add(-2*time.Hour))
	st.BandBreachStreak = 2

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(st, nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 120000, DailySpend: 9000, // ratio 0.8
		SourceConfidence: 1.0, ReportedAt: now.Add(-time.Hour),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(true, nil)

	var alert domain.Alert
	m.store.EXPECT().OpenAlert(mock.Anything, mock.AnythingOfType("domain.Alert")).
		Run(func(ctx context.Context, a domain.Alert) { alert = a }).
		Return(true, nil).Once()

	m.store.EXPECT().CreateAdjustment(mock.Anything, mock.Anything).Return(true, nil)
	m.store.EXPECT().AdvanceAdjustment(mock.Anything, mock.Anything,
		domain.AdjustmentPending, domain.AdjustmentApproved, "system:auto", mock.Anything, mock.Anything).
		Return(true, nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, s domain.PacingState) { saved = s }).
		Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	require.Equal(t, domain.AlertPacingBreach, alert.Type)
	require.Equal(t, domain.SeverityWarning, alert.Severity)
	require.Equal(t, 3, saved.BandBreachStreak)
	require.Equal(t, domain.PhaseThrottled, saved.Phase)
}

// TestBreachStreakResetsInBand: a cycle back inside the band zeroes the
// streak, closes the breach alert and returns the campaign to Active.
func TestBreachStreakResetsInBand(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	st := testState(domain.PhaseThrottled, now.Add(-2*time.Hour))
	st.BandBreachStreak = 2

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(st, nil)
	m.feed.EXPECT().FetchSpend(mock.Anything, int64(1)).Return(&port.SpendFigures{
		CampaignID: 1, MTDSpend: 150000, DailySpend: 9000, // ratio 1.0
		SourceConfidence: 1.0, ReportedAt: now.Add(-time.Hour),
	}, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertStaleFeed, mock.Anything).Return(nil)
	m.store.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(true, nil)
	m.store.EXPECT().ResolveAlert(mock.Anything, int64(1), domain.AlertPacingBreach, mock.Anything).Return(nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, s domain.PacingState) { saved = s }).
		Return(nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))

	require.Zero(t, saved.BandBreachStreak)
	require.Equal(t, domain.PhaseActive, saved.Phase)
}

// TestAwaitingApprovalSuspendsAdjustments: no feed call, no proposal, until
// the operator decides.
func TestAwaitingApprovalSuspendsAdjustments(t *testing.T) {
	svc, m := newTestService(t)
	camp := testCampaign()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	blocked := testState(domain.PhaseAwaitingApproval, now.Add(-2*time.Hour))
	id := uuid.New()
	blocked.BlockingAdjustment = &id

	expectLeaseAndLookup(m, camp)
	m.store.EXPECT().ActivePlan(mock.Anything, int64(1), mock.Anything).Return(testPlan(), nil)
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(blocked, nil)

	require.NoError(t, svc.EvaluateCampaign(context.Background(), 1, now))
}
