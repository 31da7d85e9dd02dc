package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"community-hub.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) error
}

// VerificationRepository defines verification challenge operations
type VerificationRepository interface {
	Create(ctx context.Context, challenge *entities.VerificationChallenge) error
	ListOpenByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entities.VerificationChallenge, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
