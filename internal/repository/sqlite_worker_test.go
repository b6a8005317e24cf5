package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/ostrella/clockwise/internal/domain"
	"github.com/ostrella/clockwise/internal/repository"
	"github.com/ostrella/clockwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkerRepo(db)
	ctx := context.Background()

	w := &domain.Worker{ID: "w1", Name: "Ana", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.False(t, got.Archived)
}

func TestWorkerRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := repository.NewSQLiteWorkerRepo(db).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkerRepo_ListExcludesArchived(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkerRepo(db)
	ctx := context.Background()

	a := testutil.SeedWorker(t, db, "Ana")
	testutil.SeedWorker(t, db, "Bruno")
	require.NoError(t, repo.Archive(ctx, a.ID))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Bruno", active[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestWorkerRepo_ArchiveMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	err := repository.NewSQLiteWorkerRepo(db).Archive(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
