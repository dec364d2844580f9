package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/dutylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistRepo_AddListRemove(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBlacklistRepo(database)
	ctx := context.Background()

	subjects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subjects)

	require.NoError(t, repo.Add(ctx, "Marko"))
	require.NoError(t, repo.Add(ctx, "Ana"))

	subjects, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Marko"}, subjects)

	require.NoError(t, repo.Remove(ctx, "Marko"))
	subjects, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, subjects)
}

func TestBlacklistRepo_AddIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBlacklistRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "Marko"))
	require.NoError(t, repo.Add(ctx, "Marko"))

	subjects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Marko"}, subjects)
}

func TestBlacklistRepo_RemoveMissingIsNoop(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBlacklistRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Remove(ctx, "nepoznat"))
}
