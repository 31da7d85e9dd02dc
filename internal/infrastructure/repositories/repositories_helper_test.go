package repositories

import (
	"context"
	"testing"
	"time"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/testutil"
	"community-hub.backend/pkg/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.NewSchemaDB(t)
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	testutil.MustExec(t, db, q, args...)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	t.Helper()
	now := time.Now()
	u := &entities.User{
		ID:        utils.GenerateUUIDv7(),
		Email:     email,
		Name:      email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedStartup(t *testing.T, db *gorm.DB, founder *entities.User, name string) *entities.Startup {
	t.Helper()
	s := &entities.Startup{
		ID:          utils.GenerateUUIDv7(),
		Name:        name,
		Description: name + " description",
		FounderID:   founder.ID,
	}
	require.NoError(t, NewStartupRepository(db).Create(context.Background(), s))
	return s
}

func seedPosition(t *testing.T, db *gorm.DB, startup *entities.Startup, title string) *entities.Position {
	t.Helper()
	p := &entities.Position{
		ID:        utils.GenerateUUIDv7(),
		StartupID: startup.ID,
		Title:     title,
		Requirements: entities.PositionRequirements{
			Skills:     []string{"go", "sql"},
			Experience: "2 years",
		},
		EmploymentType: entities.EmploymentFullTime,
		Location:       "Remote",
	}
	require.NoError(t, NewPositionRepository(db).Create(context.Background(), p))
	return p
}
