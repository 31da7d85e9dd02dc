package usecases_test

import (
	"context"
	"testing"
	"time"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/infrastructure/repositories"
	"community-hub.backend/internal/metrics"
	"community-hub.backend/internal/testutil"
	"community-hub.backend/internal/usecases"
	"community-hub.backend/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// hub wires the real repositories over an in-memory SQLite database
type hub struct {
	db           *gorm.DB
	metrics      *metrics.Registry
	users        *repositories.UserRepository
	startupRepo  *repositories.StartupRepository
	positionRepo *repositories.PositionRepository
	interaction  *usecases.InteractionUsecase
	startups     *usecases.StartupUsecase
	studyGroups  *usecases.StudyGroupUsecase
}

func newHub(t *testing.T) *hub {
	t.Helper()
	db := testutil.NewSchemaDB(t)
	m := metrics.NewRegistry(prometheus.NewRegistry())

	uow := repositories.NewUnitOfWork(db)
	userRepo := repositories.NewUserRepository(db)
	startupRepo := repositories.NewStartupRepository(db)
	positionRepo := repositories.NewPositionRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	reactionRepo := repositories.NewReactionRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	return &hub{
		db:           db,
		metrics:      m,
		users:        userRepo,
		startupRepo:  startupRepo,
		positionRepo: positionRepo,
		interaction: usecases.NewInteractionUsecase(
			uow, userRepo, startupRepo, positionRepo, applicationRepo, reactionRepo, commentRepo, m,
		),
		startups: usecases.NewStartupUsecase(
			startupRepo, positionRepo, applicationRepo, reactionRepo, commentRepo, userRepo,
		),
		studyGroups: usecases.NewStudyGroupUsecase(uow, repositories.NewStudyGroupRepository(db), userRepo),
	}
}

func (h *hub) user(t *testing.T, name string, verified bool) entities.Actor {
	t.Helper()
	u := &entities.User{
		ID:       utils.GenerateUUIDv7(),
		Email:    name + "@campus.edu",
		Name:     name,
		Verified: verified,
	}
	if verified {
		u.VerifiedAt = null.TimeFrom(time.Now())
	}
	require.NoError(t, h.users.Create(context.Background(), u))
	return entities.Actor{UserID: u.ID, Verified: verified}
}

func (h *hub) startup(t *testing.T, founder entities.Actor, name string) *entities.Startup {
	t.Helper()
	s, err := h.startups.CreateStartup(context.Background(), founder, &entities.CreateStartupInput{
		Name:        name,
		Description: name + " builds things",
	})
	require.NoError(t, err)
	return s
}

func (h *hub) position(t *testing.T, founder entities.Actor, startup *entities.Startup, title string) *entities.Position {
	t.Helper()
	p, err := h.startups.CreatePosition(context.Background(), founder, startup.ID, &entities.CreatePositionInput{
		Title:          title,
		Skills:         []string{"react", "typescript"},
		Experience:     "1 year",
		EmploymentType: entities.EmploymentPartTime,
		Location:       "Remote",
	})
	require.NoError(t, err)
	return p
}

func (h *hub) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.db.Table(table).Count(&n).Error)
	return n
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	appErr := domainerrors.From(err)
	require.Equal(t, code, appErr.Code, appErr.Message)
}
