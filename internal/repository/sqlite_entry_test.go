package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dutylog/internal/domain"
	"github.com/alexanderramin/dutylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepo_InsertAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEntryRepo(database)
	ctx := context.Background()

	e1 := domain.LogEntry{ID: "m1", Timestamp: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), TitleText: "Admin: Marko"}
	e2 := domain.LogEntry{ID: "m2", Timestamp: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), TitleText: "Admin: Ana"}
	require.NoError(t, repo.Insert(ctx, &e1))
	require.NoError(t, repo.Insert(ctx, &e2))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Insertion order, not timestamp order.
	assert.Equal(t, "m1", entries[0].ID)
	assert.Equal(t, "m2", entries[1].ID)
	assert.True(t, entries[0].Timestamp.Equal(e1.Timestamp))
	assert.Equal(t, "Admin: Marko", entries[0].TitleText)
}

func TestEntryRepo_ListByTimeRangeInclusive(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEntryRepo(database)
	ctx := context.Background()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)

	require.NoError(t, repo.InsertAll(ctx, []domain.LogEntry{
		{ID: "before", Timestamp: from.Add(-time.Second)},
		{ID: "start", Timestamp: from},
		{ID: "mid", Timestamp: from.Add(12 * time.Hour)},
		{ID: "end", Timestamp: to},
		{ID: "after", Timestamp: to.Add(time.Second)},
	}))

	entries, err := repo.ListByTimeRange(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "start", entries[0].ID)
	assert.Equal(t, "mid", entries[1].ID)
	assert.Equal(t, "end", entries[2].ID)
}

func TestEntryRepo_DeleteContainingText(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEntryRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.InsertAll(ctx, []domain.LogEntry{
		{ID: "1", Timestamp: time.Now().UTC(), TitleText: "Admin: Marko\nLicenca: L-1"},
		{ID: "2", Timestamp: time.Now().UTC(), TitleText: "Admin: Ana\nLicenca: L-2"},
		{ID: "3", Timestamp: time.Now().UTC(), TitleText: "Admin: Marko\nLicenca: L-3"},
	}))

	n, err := repo.DeleteContainingText(ctx, "Admin: Marko")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].ID)
}

func TestEntryRepo_DeleteContainingTextMatchesSubstring(t *testing.T) {
	// "Admin: Ana" is a substring of "Admin: Ana Marija", so purging Ana also
	// removes Ana Marija's entries. This mirrors the engine's documented
	// remove-admin behavior.
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEntryRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.InsertAll(ctx, []domain.LogEntry{
		{ID: "1", Timestamp: time.Now().UTC(), TitleText: "Admin: Ana"},
		{ID: "2", Timestamp: time.Now().UTC(), TitleText: "Admin: Ana Marija"},
	}))

	n, err := repo.DeleteContainingText(ctx, "Admin: Ana")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestEntryRepo_CountAndDeleteAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEntryRepo(database)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.InsertAll(ctx, []domain.LogEntry{
		{ID: "1", Timestamp: time.Now().UTC()},
		{ID: "2", Timestamp: time.Now().UTC()},
	}))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, repo.DeleteAll(ctx))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
