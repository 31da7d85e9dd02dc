package usecases

import (
	"context"
	"errors"
	"strings"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/domain/repositories"
	"community-hub.backend/internal/metrics"
	"community-hub.backend/pkg/logger"
	"community-hub.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reaction toggle outcomes
const (
	reactionAdded   = "added"
	reactionRemoved = "removed"
)

// ApplyInput is the parsed form of an application request
type ApplyInput struct {
	StartupID  uuid.UUID
	PositionID uuid.UUID
}

// InteractionUsecase executes the user-initiated writes against startups.
// Every operation runs in one transaction that starts by locking the
// actor's user row, so concurrent requests from the same actor serialize.
type InteractionUsecase struct {
	uow             repositories.UnitOfWork
	userRepo        repositories.UserRepository
	startupRepo     repositories.StartupRepository
	positionRepo    repositories.PositionRepository
	applicationRepo repositories.ApplicationRepository
	reactionRepo    repositories.ReactionRepository
	commentRepo     repositories.CommentRepository
	loader          *aggregateLoader
	metrics         *metrics.Registry
}

// NewInteractionUsecase creates a new interaction usecase
func NewInteractionUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	startupRepo repositories.StartupRepository,
	positionRepo repositories.PositionRepository,
	applicationRepo repositories.ApplicationRepository,
	reactionRepo repositories.ReactionRepository,
	commentRepo repositories.CommentRepository,
	m *metrics.Registry,
) *InteractionUsecase {
	return &InteractionUsecase{
		uow:             uow,
		userRepo:        userRepo,
		startupRepo:     startupRepo,
		positionRepo:    positionRepo,
		applicationRepo: applicationRepo,
		reactionRepo:    reactionRepo,
		commentRepo:     commentRepo,
		loader: &aggregateLoader{
			positionRepo:    positionRepo,
			applicationRepo: applicationRepo,
			reactionRepo:    reactionRepo,
			commentRepo:     commentRepo,
			userRepo:        userRepo,
		},
		metrics: m,
	}
}

// Apply creates a PENDING application of the actor to a position. At most
// one application exists per (position, user).
func (u *InteractionUsecase) Apply(ctx context.Context, actor entities.Actor, input ApplyInput) (*entities.Application, error) {
	var application *entities.Application
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.lockActor(txCtx, actor)
		if err != nil {
			return err
		}
		if !user.Verified {
			return domainerrors.VerificationRequired()
		}

		position, err := u.positionRepo.GetByID(txCtx, input.PositionID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		if position == nil || position.StartupID != input.StartupID {
			return domainerrors.NotFound("position not found or does not belong to this startup")
		}

		_, err = u.applicationRepo.GetByPositionAndUser(txCtx, position.ID, user.ID)
		if err == nil {
			return domainerrors.Conflict("already applied")
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		application = &entities.Application{
			ID:         utils.GenerateUUIDv7(),
			PositionID: position.ID,
			UserID:     user.ID,
			Status:     entities.ApplicationPending,
		}
		if err := u.applicationRepo.Create(txCtx, application); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("already applied")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.ApplicationCreated()
	logger.Info(ctx, "application created",
		zap.String("application_id", application.ID.String()),
		zap.String("position_id", application.PositionID.String()),
	)
	return application, nil
}

// ToggleLike flips the actor's like on a startup and clears a dislike
func (u *InteractionUsecase) ToggleLike(ctx context.Context, actor entities.Actor, startupID uuid.UUID) (*entities.StartupAggregate, error) {
	return u.toggle(ctx, actor, startupID, entities.ReactionLike)
}

// ToggleDislike flips the actor's dislike on a startup and clears a like
func (u *InteractionUsecase) ToggleDislike(ctx context.Context, actor entities.Actor, startupID uuid.UUID) (*entities.StartupAggregate, error) {
	return u.toggle(ctx, actor, startupID, entities.ReactionDislike)
}

func (u *InteractionUsecase) toggle(ctx context.Context, actor entities.Actor, startupID uuid.UUID, kind entities.ReactionKind) (*entities.StartupAggregate, error) {
	var (
		startup *entities.Startup
		action  string
	)
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.lockActor(txCtx, actor); err != nil {
			return err
		}
		var err error
		if startup, err = findStartup(txCtx, u.startupRepo, startupID); err != nil {
			return err
		}

		existing, err := u.findReaction(txCtx, kind, startup.ID, actor.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			action = reactionRemoved
			return u.reactionRepo.Delete(txCtx, kind, existing.ID)
		}

		opposite, err := u.findReaction(txCtx, kind.Opposite(), startup.ID, actor.UserID)
		if err != nil {
			return err
		}
		if opposite != nil {
			if err := u.reactionRepo.Delete(txCtx, opposite.Kind, opposite.ID); err != nil {
				return err
			}
		}

		action = reactionAdded
		return u.reactionRepo.Create(txCtx, &entities.Reaction{
			ID:        utils.GenerateUUIDv7(),
			Kind:      kind,
			StartupID: startup.ID,
			UserID:    actor.UserID,
		})
	})
	if err != nil {
		return nil, err
	}

	u.metrics.ReactionToggled(string(kind), action)
	return u.loader.loadOne(ctx, startup)
}

func (u *InteractionUsecase) findReaction(ctx context.Context, kind entities.ReactionKind, startupID, userID uuid.UUID) (*entities.Reaction, error) {
	r, err := u.reactionRepo.Find(ctx, kind, startupID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

// PostComment adds a top-level comment to a startup
func (u *InteractionUsecase) PostComment(ctx context.Context, actor entities.Actor, startupID uuid.UUID, content string) (*entities.StartupAggregate, error) {
	return u.post(ctx, actor, startupID, nil, content)
}

// PostReply adds a reply to an existing comment of the same startup
func (u *InteractionUsecase) PostReply(ctx context.Context, actor entities.Actor, startupID, parentID uuid.UUID, content string) (*entities.StartupAggregate, error) {
	return u.post(ctx, actor, startupID, &parentID, content)
}

func (u *InteractionUsecase) post(ctx context.Context, actor entities.Actor, startupID uuid.UUID, parentID *uuid.UUID, content string) (*entities.StartupAggregate, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.BadRequest("content must not be empty")
	}

	var startup *entities.Startup
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.lockActor(txCtx, actor); err != nil {
			return err
		}
		var err error
		if startup, err = findStartup(txCtx, u.startupRepo, startupID); err != nil {
			return err
		}

		if parentID != nil {
			parent, err := u.commentRepo.GetByID(txCtx, *parentID)
			if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return err
			}
			if parent == nil || parent.StartupID != startup.ID {
				return domainerrors.NotFound("comment not found on this startup")
			}
		}

		return u.commentRepo.Create(txCtx, &entities.Comment{
			ID:        utils.GenerateUUIDv7(),
			StartupID: startup.ID,
			UserID:    actor.UserID,
			ParentID:  parentID,
			Content:   content,
		})
	})
	if err != nil {
		return nil, err
	}

	kind := "comment"
	if parentID != nil {
		kind = "reply"
	}
	u.metrics.CommentPosted(kind)
	return u.loader.loadOne(ctx, startup)
}

// UpdateApplicationStatus lets a startup's founder accept or reject a
// pending application. ACCEPTED and REJECTED are terminal.
func (u *InteractionUsecase) UpdateApplicationStatus(ctx context.Context, actor entities.Actor, applicationID uuid.UUID, rawStatus string) (*entities.Application, error) {
	status, err := entities.ParseApplicationStatus(strings.ToUpper(strings.TrimSpace(rawStatus)))
	if err != nil {
		return nil, domainerrors.BadRequest(err.Error())
	}

	var application *entities.Application
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.lockActor(txCtx, actor); err != nil {
			return err
		}

		app, err := u.applicationRepo.GetByID(u.uow.WithLock(txCtx), applicationID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("application not found")
			}
			return err
		}
		position, err := u.positionRepo.GetByID(txCtx, app.PositionID)
		if err != nil {
			return err
		}
		startup, err := u.startupRepo.GetByID(txCtx, position.StartupID)
		if err != nil {
			return err
		}
		if startup.FounderID != actor.UserID {
			return domainerrors.Forbidden("only the founder can review applications")
		}
		if !app.Status.CanTransition(status) {
			return domainerrors.Conflict("invalid status transition")
		}

		if err := u.applicationRepo.UpdateStatus(txCtx, app.ID, status); err != nil {
			return err
		}
		app.Status = status
		application = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.ApplicationStatusChanged(string(status))
	return application, nil
}

// lockActor takes the row lock on the actor's user for the rest of the
// transaction.
func (u *InteractionUsecase) lockActor(txCtx context.Context, actor entities.Actor) (*entities.User, error) {
	user, err := u.userRepo.GetByID(u.uow.WithLock(txCtx), actor.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("unknown user")
		}
		return nil, err
	}
	return user, nil
}
