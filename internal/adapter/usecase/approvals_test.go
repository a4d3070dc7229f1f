package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-pacer/internal/core/domain"
	"ad-pacer/internal/core/port"
)

func pendingAdjustment() *domain.BudgetAdjustment {
	return &domain.BudgetAdjustment{
		ID:               uuid.New(),
		CampaignID:       1,
		EvaluationBucket: time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC),
		PreviousAmount:   10000,
		ProposedAmount:   5556,
		Reason:           "emergency overspend",
		RequiresApproval: true,
		Status:           domain.AdjustmentPending,
		CreatedAt:        time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestApproveQueuesCommit(t *testing.T) {
	svc, m := newTestService(t)
	adj := pendingAdjustment()

	m.store.EXPECT().GetAdjustment(mock.Anything, adj.ID).Return(adj, nil)
	m.store.EXPECT().AdvanceAdjustment(mock.Anything, adj.ID,
		domain.AdjustmentPending, domain.AdjustmentApproved, "alice", "confirmed with client", mock.Anything).
		Return(true, nil)

	require.NoError(t, svc.Approve(context.Background(), adj.ID, "alice", "confirmed with client"))

	select {
	case id := <-svc.commitCh:
		require.Equal(t, adj.ID, id)
	default:
		t.Fatal("expected approved adjustment on commit queue")
	}
}

func TestApproveAlreadyResolved(t *testing.T) {
	svc, m := newTestService(t)
	adj := pendingAdjustment()
	adj.Status = domain.AdjustmentRejected

	m.store.EXPECT().GetAdjustment(mock.Anything, adj.ID).Return(adj, nil)
	m.store.EXPECT().AdvanceAdjustment(mock.Anything, adj.ID,
		domain.AdjustmentPending, domain.AdjustmentApproved, "alice", "", mock.Anything).
		Return(false, nil)

	err := svc.Approve(context.Background(), adj.ID, "alice", "")
	require.ErrorIs(t, err, port.ErrNotPending)
}

func TestApproveUnknownAdjustment(t *testing.T) {
	svc, m := newTestService(t)
	id := uuid.New()

	m.store.EXPECT().GetAdjustment(mock.Anything, id).Return(nil, nil)

	err := svc.Approve(context.Background(), id, "alice", "")
	require.ErrorIs(t, err, port.ErrNotFound)
}

// TestRejectReleasesHold: rejecting the blocking adjustment clears the hold
// and returns the campaign to automatic pacing.
func TestRejectReleasesHold(t *testing.T) {
	svc, m := newTestService(t)
	adj := pendingAdjustment()

	m.store.EXPECT().GetAdjustment(mock.Anything, adj.ID).Return(adj, nil)
	m.store.EXPECT().AdvanceAdjustment(mock.Anything, adj.ID,
		domain.AdjustmentPending, domain.AdjustmentRejected, "bob", "seasonal spike, expected", mock.Anything).
		Return(true, nil)

	held := &domain.PacingState{
		CampaignID:         1,
		Phase:              domain.PhaseAwaitingApproval,
		BlockingAdjustment: &adj.ID,
		Version:            7,
	}
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(held, nil)

	var saved domain.PacingState
	m.store.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("domain.PacingState")).
		Run(func(ctx context.Context, st domain.PacingState) { saved = st }).
		Return(nil)

	require.NoError(t, svc.Reject(context.Background(), adj.ID, "bob", "seasonal spike, expected"))
	require.Equal(t, domain.PhaseActive, saved.Phase)
	require.Nil(t, saved.BlockingAdjustment)
}

// TestExpiredApprovalAutoRejectsOnce: scenario — an emergency cut sits
// unapproved past the window. Exactly one auto-reject and one critical alert;
// the following sweep finds nothing.
func TestExpiredApprovalAutoRejectsOnce(t *testing.T) {
	svc, m := newTestService(t)
	adj := pendingAdjustment()
	now := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)

	m.store.EXPECT().ExpiredPending(mock.Anything, now.Add(-24*time.Hour)).
		Return([]domain.BudgetAdjustment{*adj}, nil).Once()
	m.store.EXPECT().AdvanceAdjustment(mock.Anything, adj.ID,
		domain.AdjustmentPending, domain.AdjustmentRejected,
		"system:expiry", "approval window expired", mock.Anything).
		Return(true, nil).Once()

	var alert domain.Alert
	m.store.EXPECT().OpenAlert(mock.Anything, mock.AnythingOfType("domain.Alert")).
		Run(func(ctx context.Context, a domain.Alert) { alert = a }).
		Return(true, nil).Once()

	held := &domain.PacingState{
		CampaignID:         1,
		Phase:              domain.PhaseAwaitingApproval,
		BlockingAdjustment: &adj.ID,
	}
	m.store.EXPECT().GetState(mock.Anything, int64(1)).Return(held, nil).Once()
	m.store.EXPECT().SaveState(mock.Anything, mock.Anything).Return(nil).Once()

	count, err := svc.ExpirePending(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, domain.AlertApprovalExpired, alert.Type)
	require.Equal(t, domain.SeverityCritical, alert.Severity)

	// next sweep: the adjustment is already rejected
	m.store.EXPECT().ExpiredPending(mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	count, err = svc.ExpirePending(context.Background(), now.Add(2*time.Hour))
	require.NoError(t, err)
	require.Zero(t, count)
}

// TestExpirySkipsConcurrentlyResolved: an operator decided between the sweep
// query and the CAS, so no alert fires.
func TestExpirySkipsConcurrentlyResolved(t *testing.T) {
	svc, m := newTestService(t)
	adj := pendingAdjustment()

	m.store.EXPECT().ExpiredPending(mock.Anything, mock.Anything).
		Return([]domain.BudgetAdjustment{*adj}, nil)
	m.store.EXPECT().AdvanceAdjustment(mock.Anything, adj.ID,
		domain.AdjustmentPending, domain.AdjustmentRejected,
		"system:expiry", "approval window expired", mock.Anything).
		Return(false, nil)

	count, err := svc.ExpirePending(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	require.Zero(t, count)
}

// TestUnblockRetriesVersionConflict: a racing evaluator bumps the version;
// the release retries with fresh state.
func TestUnblockRetriesVersionConflict(t *testing.T) {
	svc, m := newTestService(t)
	id := uuid.New()

	m.store.EXPECT().GetState(mock.Anything, int64(1)).
		RunAndReturn(func(ctx context.Context, campaignID int64) (*domain.PacingState, error) {
			blocking := id
			return &domain.PacingState{
				CampaignID:         1,
				Phase:              domain.PhaseAwaitingApproval,
				BlockingAdjustment: &blocking,
				Version:            2,
			}, nil
		}).Twice()
	m.store.EXPECT().SaveState(mock.Anything, mock.Anything).Return(port.ErrVersionConflict).Once()
	m.store.EXPECT().SaveState(mock.Anything, mock.Anything).Return(nil).Once()

	svc.unblock(context.Background(), 1, id, domain.PhaseActive)
}
