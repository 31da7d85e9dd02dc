package usecases

import (
	"context"
	"errors"
	"strings"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/domain/repositories"
	"community-hub.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StartupUsecase serves the read side of startups and the founder-only
// write operations (creating a startup, opening positions).
type StartupUsecase struct {
	startupRepo     repositories.StartupRepository
	positionRepo    repositories.PositionRepository
	applicationRepo repositories.ApplicationRepository
	loader          *aggregateLoader
}

// NewStartupUsecase creates a new startup usecase
func NewStartupUsecase(
	startupRepo repositories.StartupRepository,
	positionRepo repositories.PositionRepository,
	applicationRepo repositories.ApplicationRepository,
	reactionRepo repositories.ReactionRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
) *StartupUsecase {
	return &StartupUsecase{
		startupRepo:     startupRepo,
		positionRepo:    positionRepo,
		applicationRepo: applicationRepo,
		loader: &aggregateLoader{
			positionRepo:    positionRepo,
			applicationRepo: applicationRepo,
			reactionRepo:    reactionRepo,
			commentRepo:     commentRepo,
			userRepo:        userRepo,
		},
	}
}

// GetDetail returns the full aggregate of one startup
func (u *StartupUsecase) GetDetail(ctx context.Context, id uuid.UUID) (*entities.StartupAggregate, error) {
	startup, err := findStartup(ctx, u.startupRepo, id)
	if err != nil {
		return nil, err
	}
	return u.loader.loadOne(ctx, startup)
}

// List returns startup aggregates newest first. A zero limit returns every
// startup.
func (u *StartupUsecase) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.StartupAggregate, utils.PaginationMeta, error) {
	startups, total, err := u.startupRepo.List(ctx, pagination)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	aggs, err := u.loader.load(ctx, startups)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return aggs, utils.CalculateMeta(total, pagination.Page, pagination.Limit), nil
}

// MyApplications lists the actor's applications newest first, each with
// its position title and startup.
func (u *StartupUsecase) MyApplications(ctx context.Context, actor entities.Actor) ([]*entities.Application, error) {
	return u.applicationRepo.ListByUserID(ctx, actor.UserID)
}

// CreateStartup registers the actor as founder of a new startup
func (u *StartupUsecase) CreateStartup(ctx context.Context, actor entities.Actor, input *entities.CreateStartupInput) (*entities.Startup, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("name is required")
	}

	startup := &entities.Startup{
		ID:          utils.GenerateUUIDv7(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		FounderID:   actor.UserID,
	}
	if err := u.startupRepo.Create(ctx, startup); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("founder already has a startup")
		}
		return nil, err
	}
	return startup, nil
}

// CreatePosition opens a position on the actor's startup
func (u *StartupUsecase) CreatePosition(ctx context.Context, actor entities.Actor, startupID uuid.UUID, input *entities.CreatePositionInput) (*entities.Position, error) {
	startup, err := findStartup(ctx, u.startupRepo, startupID)
	if err != nil {
		return nil, err
	}
	if startup.FounderID != actor.UserID {
		return nil, domainerrors.Forbidden("only the founder can open positions")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.BadRequest("title is required")
	}
	if !input.EmploymentType.IsValid() {
		return nil, domainerrors.BadRequest("invalid employment type")
	}

	skills := make([]string, 0, len(input.Skills))
	for _, s := range input.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	var education null.String
	if e := strings.TrimSpace(input.Education); e != "" {
		education = null.StringFrom(e)
	}

	position := &entities.Position{
		ID:          utils.GenerateUUIDv7(),
		StartupID:   startup.ID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Requirements: entities.PositionRequirements{
			Skills:     skills,
			Experience: strings.TrimSpace(input.Experience),
			Education:  education,
		},
		EmploymentType: input.EmploymentType,
		Location:       strings.TrimSpace(input.Location),
	}
	if err := u.positionRepo.Create(ctx, position); err != nil {
		return nil, err
	}
	return position, nil
}

// ListStartupApplications lists every application across a startup's
// positions for its founder
func (u *StartupUsecase) ListStartupApplications(ctx context.Context, actor entities.Actor, startupID uuid.UUID) ([]*entities.Application, error) {
	startup, err := findStartup(ctx, u.startupRepo, startupID)
	if err != nil {
		return nil, err
	}
	if startup.FounderID != actor.UserID {
		return nil, domainerrors.Forbidden("only the founder can view applications")
	}
	return u.applicationRepo.ListByStartupID(ctx, startup.ID)
}
