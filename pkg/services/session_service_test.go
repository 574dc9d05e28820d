package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/ent/investigationsession"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/test/util"
)

func newTestService(t *testing.T) *SessionService {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)
	return NewSessionService(entClient)
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateParams{
		ID:         "inv-1",
		Query:      "why is checkout latency elevated",
		IncidentID: "PD-12345",
	})
	require.NoError(t, err)
	assert.Equal(t, investigationsession.StatusPending, created.Status)
	assert.Equal(t, investigationsession.ModeInvestigation, created.Mode)

	got, err := svc.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "PD-12345", got.IncidentID)
}

func TestCreateRejectsEmptyQuery(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateParams{ID: "inv-1"})
	require.Error(t, err)

	var validErr *ValidationError
	require.ErrorAs(t, err, &validErr)
	assert.Equal(t, "query", validErr.Field)
}

func TestGetUnknownReturnsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteInvestigationStoresResultAndState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateParams{ID: "inv-1", Query: "q"})
	require.NoError(t, err)
	require.NoError(t, svc.MarkRunning(ctx, "inv-1"))

	result := &models.InvestigationResult{
		ID:               "inv-1",
		Query:            "q",
		RootCause:        "connection pool exhaustion",
		Confidence:       models.ConfidenceHigh,
		AffectedServices: []string{"checkout-api"},
		Summary:          "root cause: connection pool exhaustion",
		DurationMs:       1234,
	}
	state := &models.InvestigationState{ID: "inv-1", Query: "q", Phase: models.PhaseComplete}
	require.NoError(t, svc.CompleteInvestigation(ctx, "inv-1", result, state))

	got, err := svc.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, investigationsession.StatusCompleted, got.Status)
	require.NotNil(t, got.RootCause)
	assert.Equal(t, "connection pool exhaustion", *got.RootCause)
	assert.Equal(t, "high", got.Confidence)
	assert.Equal(t, []string{"checkout-api"}, got.AffectedServices)
	assert.Equal(t, "complete", got.State["phase"])
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
}

func TestCancelLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateParams{ID: "inv-1", Query: "q"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, "inv-1"))

	got, err := svc.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, investigationsession.StatusCancelled, got.Status)

	// Already terminal.
	assert.ErrorIs(t, svc.Cancel(ctx, "inv-1"), ErrNotCancellable)
}

func TestListFiltersByStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"inv-1", "inv-2", "inv-3"} {
		_, err := svc.Create(ctx, CreateParams{ID: id, Query: "q"})
		require.NoError(t, err)
	}
	require.NoError(t, svc.Fail(ctx, "inv-2", "boom"))

	failed, err := svc.List(ctx, ListParams{Status: "failed"})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "inv-2", failed[0].ID)

	all, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteOlderThanKeepsActiveSessions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateParams{ID: "inv-old", Query: "q"})
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, "inv-old", "boom"))

	_, err = svc.Create(ctx, CreateParams{ID: "inv-active", Query: "q"})
	require.NoError(t, err)

	n, err := svc.DeleteOlderThan(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Get(ctx, "inv-old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, "inv-active")
	assert.NoError(t, err)
}
