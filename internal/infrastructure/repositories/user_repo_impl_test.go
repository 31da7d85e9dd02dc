package repositories

import (
	"context"
	"testing"
	"time"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	u := &entities.User{
		ID:        uuid.New(),
		Email:     "ada@campus.edu",
		Name:      "Ada",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.False(t, byID.Verified)
	require.False(t, byID.VerifiedAt.Valid)

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	require.NoError(t, repo.UpdateName(ctx, u.ID, "Ada L."))
	require.NoError(t, repo.MarkVerified(ctx, u.ID, now))

	byID, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada L.", byID.Name)
	require.True(t, byID.Verified)
	require.True(t, byID.VerifiedAt.Valid)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{ID: uuid.New(), Email: "dup@campus.edu", Name: "A"}))
	err := repo.Create(ctx, &entities.User{ID: uuid.New(), Email: "dup@campus.edu", Name: "B"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestUserRepository_ListByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "a@campus.edu")
	b := seedUser(t, db, "b@campus.edu")
	seedUser(t, db, "c@campus.edu")

	users, err := repo.ListByIDs(ctx, []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = repo.ListByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@campus.edu")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateName(ctx, id, "x")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.MarkVerified(ctx, id, time.Now())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
