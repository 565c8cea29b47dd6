package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteCreateRun(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, model.RunKindCollect)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunKindCollect, run.Kind)
	assert.Equal(t, model.RunStatusRunning, run.Status)
	assert.False(t, run.StartedAt.IsZero())
	assert.Nil(t, run.CompletedAt)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, model.RunStatusRunning, got.Status)
	assert.Empty(t, got.Sources)
}

func TestSQLiteCompleteRun(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, model.RunKindCollect)
	require.NoError(t, err)

	run.Status = model.RunStatusPartial
	run.Sources = []model.SourceResult{
		{Name: "draftkings", Description: "DraftKings salaries", OK: true},
		{Name: "nfl_odds", Description: "Vegas odds", OK: false, Error: "no games returned"},
	}
	run.FilesMoved = 3
	run.Uploaded = true
	require.NoError(t, s.CompleteRun(ctx, run))
	require.NotNil(t, run.CompletedAt)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusPartial, got.Status)
	assert.Equal(t, 3, got.FilesMoved)
	assert.True(t, got.Uploaded)
	require.NotNil(t, got.CompletedAt)
	require.Len(t, got.Sources, 2)
	assert.Equal(t, "draftkings", got.Sources[0].Name)
	assert.True(t, got.Sources[0].OK)
	assert.Equal(t, "no games returned", got.Sources[1].Error)
}

func TestSQLiteCompleteRunNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)

	err := s.CompleteRun(context.Background(), &model.Run{
		ID:     "missing",
		Status: model.RunStatusSucceeded,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteGetRunNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)

	_, err := s.GetRun(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListRuns(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	first, err := s.CreateRun(ctx, model.RunKindCollect)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := s.CreateRun(ctx, model.RunKindUpdate)
	require.NoError(t, err)

	second.Status = model.RunStatusSucceeded
	require.NoError(t, s.CompleteRun(ctx, second))

	runs, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Newest first.
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
}

func TestSQLiteListRunsFilters(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	collect, err := s.CreateRun(ctx, model.RunKindCollect)
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, model.RunKindUpdate)
	require.NoError(t, err)

	collect.Status = model.RunStatusFailed
	require.NoError(t, s.CompleteRun(ctx, collect))

	byKind, err := s.ListRuns(ctx, RunFilter{Kind: model.RunKindCollect})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	assert.Equal(t, collect.ID, byKind[0].ID)

	byStatus, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusFailed})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, collect.ID, byStatus[0].ID)

	none, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusSucceeded})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteListRunsLimitOffset(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		run, err := s.CreateRun(ctx, model.RunKindCollect)
		require.NoError(t, err)
		ids = append(ids, run.ID)
		time.Sleep(5 * time.Millisecond)
	}

	page, err := s.ListRuns(ctx, RunFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID)

	next, err := s.ListRuns(ctx, RunFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, ids[2], next[0].ID)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}

func TestOpenSQLiteDefault(t *testing.T) {
	s, err := Open(context.Background(), "", filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*SQLiteStore)
	assert.True(t, ok)
}
