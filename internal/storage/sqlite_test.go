package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/reroute/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	assert.NoError(t, store.Migrate(context.Background()))

	version, err := store.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSaveBatchRun(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	run := &model.BatchRun{
		InputFile:    "export.csv",
		Threshold:    0.60,
		TotalRows:    100,
		Reclassified: 12,
		NoRuleMatch:  3,
		Unchanged:    85,
		Status:       model.BatchRunCompleted,
	}
	require.NoError(t, store.SaveBatchRun(ctx, run))
	assert.NotZero(t, run.ID)

	runs, err := store.ListBatchRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "export.csv", got.InputFile)
	assert.InDelta(t, 0.60, got.Threshold, 1e-9)
	assert.Equal(t, 100, got.TotalRows)
	assert.Equal(t, 12, got.Reclassified)
	assert.Equal(t, 3, got.NoRuleMatch)
	assert.Equal(t, 85, got.Unchanged)
	assert.Equal(t, model.BatchRunCompleted, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSaveBatchRun_Validation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		run  *model.BatchRun
		name string
	}{
		{name: "nil run", run: nil},
		{name: "negative rows", run: &model.BatchRun{TotalRows: -1, Status: model.BatchRunCompleted}},
		{name: "bogus status", run: &model.BatchRun{TotalRows: 1, Status: "WEIRD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveBatchRun(ctx, tt.run))
		})
	}
}

func TestListBatchRuns_NewestFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for i, file := range []string{"first.csv", "second.csv", "third.csv"} {
		require.NoError(t, store.SaveBatchRun(ctx, &model.BatchRun{
			InputFile: file,
			Threshold: 0.5,
			TotalRows: i,
			Status:    model.BatchRunCompleted,
		}))
	}

	runs, err := store.ListBatchRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third.csv", runs[0].InputFile)
	assert.Equal(t, "second.csv", runs[1].InputFile)
}

func TestListBatchRuns_FailedRun(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveBatchRun(ctx, &model.BatchRun{
		InputFile:    "bad.csv",
		Threshold:    0.6,
		Status:       model.BatchRunFailed,
		ErrorMessage: "input table is missing required columns",
	}))

	runs, err := store.ListBatchRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, model.BatchRunFailed, runs[0].Status)
	assert.Contains(t, runs[0].ErrorMessage, "missing required columns")
}

func TestKeywordEvents(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveKeywordEvents(ctx, []model.KeywordEvent{
		{Category: "Trading", Keyword: "etf"},
		{Category: "Trading", Keyword: "futures"},
		{Category: "Tax", Keyword: "w2"},
	}))

	all, err := store.ListKeywordEvents(ctx, "", 50)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	trading, err := store.ListKeywordEvents(ctx, "Trading", 50)
	require.NoError(t, err)
	require.Len(t, trading, 2)
	for _, ev := range trading {
		assert.Equal(t, "Trading", ev.Category)
	}
}

func TestSaveKeywordEvents_Validation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.SaveKeywordEvents(ctx, nil), "empty batch is a no-op")

	err := store.SaveKeywordEvents(ctx, []model.KeywordEvent{
		{Category: "Trading", Keyword: ""},
	})
	assert.Error(t, err)

	// Failed batch leaves no partial rows.
	events, err := store.ListKeywordEvents(ctx, "", 50)
	require.NoError(t, err)
	assert.Empty(t, events)
}
