package repositories

import (
	"context"
	"errors"
	"testing"

	"community-hub.backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	// commit path
	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec("INSERT INTO organizations(id,name,slug) VALUES (?,?,?)", uuid.New().String(), "Uni", "uni").Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("organizations").Count(&count).Error)
	require.Equal(t, int64(1), count)

	// rollback path
	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := GetDB(ctx, db).Exec("INSERT INTO organizations(id,name,slug) VALUES (?,?,?)", uuid.New().String(), "Other", "other").Error; err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.EqualError(t, err, "force rollback")

	require.NoError(t, db.Table("organizations").Count(&count).Error)
	require.Equal(t, int64(1), count, "second insert must be rolled back")
}

func TestUnitOfWork_NestedDoJoinsOuterTransaction(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		outer := ctx.Value(txKey)
		return u.Do(ctx, func(inner context.Context) error {
			require.Same(t, outer, inner.Value(txKey))
			return GetDB(inner, db).Exec("INSERT INTO organizations(id,name,slug) VALUES (?,?,?)", uuid.New().String(), "Uni", "uni").Error
		})
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("organizations").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestUnitOfWork_PanicRollsBack(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	require.Panics(t, func() {
		_ = u.Do(context.Background(), func(ctx context.Context) error {
			GetDB(ctx, db).Exec("INSERT INTO organizations(id,name,slug) VALUES (?,?,?)", uuid.New().String(), "Uni", "uni")
			panic("boom")
		})
	})

	var count int64
	require.NoError(t, db.Table("organizations").Count(&count).Error)
	require.Zero(t, count)
}

func TestUnitOfWork_WithLockAndGetDB(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	ctx := u.WithLock(context.Background())
	locked, _ := ctx.Value(lockKey).(bool)
	require.True(t, locked)

	// outside a transaction the lock marker is ignored
	plain := GetDB(ctx, db)
	_, hasFor := plain.Statement.Clauses["FOR"]
	require.False(t, hasFor)

	err := u.Do(context.Background(), func(txCtx context.Context) error {
		tx := u.GetDB(u.WithLock(txCtx))
		_, hasFor := tx.Statement.Clauses["FOR"]
		require.True(t, hasFor)

		var n int64
		return tx.Table("organizations").Count(&n).Error
	})
	require.NoError(t, err)
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := testutil.NewDB(t)
	u := &UnitOfWorkImpl{db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = u.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}

func TestUnitOfWork_DoCommitFailure_WithHook(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	origCommit := commitTx
	t.Cleanup(func() { commitTx = origCommit })
	commitTx = func(tx *gorm.DB) error {
		tx.Rollback()
		return errors.New("forced commit fail")
	}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec("INSERT INTO organizations(id,name,slug) VALUES (?,?,?)", uuid.New().String(), "Uni", "uni").Error
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to commit transaction")
}
