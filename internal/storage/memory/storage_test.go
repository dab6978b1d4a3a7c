package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopbingo/internal/model"
)

func TestSessionRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	session := &model.SessionRecord{
		ID:          "session-1",
		DisplayName: "Alice",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)

	// The stored record is isolated from later mutation
	session.DisplayName = "changed"
	got, err = s.GetSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)
}

func TestGetSessionNotFound(t *testing.T) {
	s := New()
	_, err := s.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &model.SessionRecord{ID: "session-1"}))
	require.NoError(t, s.DeleteSession(ctx, "session-1"))

	_, err := s.GetSession(ctx, "session-1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSummariesForSession(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, s.SaveSummary(ctx, &model.GameSummary{
		ID: "summary-b", SessionID: "session-1", FinishedAt: base.Add(time.Minute),
	}))
	require.NoError(t, s.SaveSummary(ctx, &model.GameSummary{
		ID: "summary-a", SessionID: "session-1", FinishedAt: base,
	}))
	require.NoError(t, s.SaveSummary(ctx, &model.GameSummary{
		ID: "summary-c", SessionID: "session-2", FinishedAt: base,
	}))

	got, err := s.ListSummariesForSession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "summary-a", got[0].ID)
	assert.Equal(t, "summary-b", got[1].ID)

	require.NoError(t, s.DeleteSummariesForSession(ctx, "session-1"))
	got, err = s.ListSummariesForSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Other sessions untouched
	other, err := s.ListSummariesForSession(ctx, "session-2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestGetSummaryNotFound(t *testing.T) {
	s := New()
	_, err := s.GetSummary(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrSummaryNotFound)
}
