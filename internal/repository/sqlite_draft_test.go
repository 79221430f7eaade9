package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRepo_SessionRoundTrip(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	snap := testutil.NewTestSnapshot(nil)
	require.NoError(t, repo.SaveSession(ctx, snap))

	loaded, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestDraftRepo_LoadSession_Empty(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t))

	_, err := repo.LoadSession(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_SaveIsWholeValueOverwrite(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, testutil.NewTestSnapshot(nil)))
	replacement := domain.FullSnapshot{"initiativeName": "Only Field"}
	require.NoError(t, repo.SaveSession(ctx, replacement))

	loaded, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)
}

func TestDraftRepo_ScopesAreIndependent(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	session := testutil.NewTestSnapshot(map[string]string{"initiativeName": "Draft"})
	durable := testutil.NewTestSnapshot(map[string]string{"initiativeName": "Submitted"})
	require.NoError(t, repo.SaveSession(ctx, session))
	require.NoError(t, repo.SaveDurable(ctx, durable))

	gotSession, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	gotDurable, err := repo.LoadDurable(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Draft", gotSession["initiativeName"])
	assert.Equal(t, "Submitted", gotDurable["initiativeName"])
}

func TestDraftRepo_ClearSessionLeavesDurable(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, testutil.NewTestSnapshot(nil)))
	require.NoError(t, repo.SaveDurable(ctx, testutil.NewTestSnapshot(nil)))
	require.NoError(t, repo.ClearSession(ctx))

	_, err := repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.LoadDurable(ctx)
	assert.NoError(t, err)
}

func TestDraftRepo_StorageFailureIsRecognisable(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(database)
	require.NoError(t, database.Close())

	err := repo.SaveSession(context.Background(), testutil.NewTestSnapshot(nil))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
