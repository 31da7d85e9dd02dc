package usecases

import (
	"context"
	"time"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/domain/repositories"
	"community-hub.backend/internal/metrics"
	"community-hub.backend/pkg/crypto"
	"community-hub.backend/pkg/logger"
	"community-hub.backend/pkg/utils"
	"go.uber.org/zap"
)

var (
	generateChallengeToken = crypto.GenerateVerificationToken
	hashChallengeToken     = crypto.HashToken
)

// VerificationUsecase runs the identity verification challenge flow
type VerificationUsecase struct {
	uow              repositories.UnitOfWork
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
	metrics          *metrics.Registry
	challengeTTL     time.Duration
	now              func() time.Time
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
	m *metrics.Registry,
	challengeTTL time.Duration,
) *VerificationUsecase {
	return &VerificationUsecase{
		uow:              uow,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		metrics:          m,
		challengeTTL:     challengeTTL,
		now:              time.Now,
	}
}

// StartChallenge opens a new challenge and returns its plaintext token once
func (u *VerificationUsecase) StartChallenge(ctx context.Context, actor entities.Actor) (*entities.VerificationChallengeResponse, error) {
	user, err := u.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user.Verified {
		return nil, domainerrors.Conflict("already verified")
	}

	token, err := generateChallengeToken()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	hash, err := hashChallengeToken(token)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	now := u.now()
	challenge := &entities.VerificationChallenge{
		ID:        utils.GenerateUUIDv7(),
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: now.Add(u.challengeTTL),
		CreatedAt: now,
	}
	if err := u.verificationRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	return &entities.VerificationChallengeResponse{
		ChallengeID: challenge.ID,
		Token:       token,
		ExpiresAt:   challenge.ExpiresAt,
	}, nil
}

// Complete matches token against the actor's open challenges and marks the
// user verified. The user row is locked so two completions serialize.
func (u *VerificationUsecase) Complete(ctx context.Context, actor entities.Actor, token string) (*entities.User, error) {
	if token == "" {
		return nil, domainerrors.BadRequest("token is required")
	}

	var verified *entities.User
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetByID(u.uow.WithLock(txCtx), actor.UserID)
		if err != nil {
			return err
		}
		if user.Verified {
			return domainerrors.Conflict("already verified")
		}

		now := u.now()
		open, err := u.verificationRepo.ListOpenByUserID(txCtx, user.ID, now)
		if err != nil {
			return err
		}
		var match *entities.VerificationChallenge
		for _, c := range open {
			if crypto.CompareToken(token, c.TokenHash) {
				match = c
				break
			}
		}
		if match == nil {
			return domainerrors.BadRequest("invalid or expired verification token")
		}

		if err := u.verificationRepo.MarkCompleted(txCtx, match.ID, now); err != nil {
			return err
		}
		if err := u.userRepo.MarkVerified(txCtx, user.ID, now); err != nil {
			return err
		}
		user.Verified = true
		user.VerifiedAt.SetValid(now)
		verified = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.VerificationCompleted()
	logger.Info(ctx, "user verified", zap.String("user_id", verified.ID.String()))
	return verified, nil
}
