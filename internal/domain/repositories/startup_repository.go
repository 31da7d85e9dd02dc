package repositories

import (
	"context"

	"github.com/google/uuid"
	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/pkg/utils"
)

// StartupRepository defines startup data operations
type StartupRepository interface {
	Create(ctx context.Context, startup *entities.Startup) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Startup, error)
	GetByFounderID(ctx context.Context, founderID uuid.UUID) (*entities.Startup, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Startup, int64, error)
}

// PositionRepository defines position data operations
type PositionRepository interface {
	Create(ctx context.Context, position *entities.Position) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Position, error)
	ListByStartupIDs(ctx context.Context, startupIDs []uuid.UUID) ([]*entities.Position, error)
}

// ApplicationRepository defines application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *entities.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error)
	GetByPositionAndUser(ctx context.Context, positionID, userID uuid.UUID) (*entities.Application, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Application, error)
	ListByPositionIDs(ctx context.Context, positionIDs []uuid.UUID) ([]*entities.Application, error)
	ListByStartupID(ctx context.Context, startupID uuid.UUID) ([]*entities.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
}

// ReactionRepository defines like/dislike data operations. Each kind lives
// in its own table.
type ReactionRepository interface {
	Find(ctx context.Context, kind entities.ReactionKind, startupID, userID uuid.UUID) (*entities.Reaction, error)
	Create(ctx context.Context, reaction *entities.Reaction) error
	Delete(ctx context.Context, kind entities.ReactionKind, id uuid.UUID) error
	ListByStartupIDs(ctx context.Context, kind entities.ReactionKind, startupIDs []uuid.UUID) ([]*entities.Reaction, error)
}

// CommentRepository defines comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error)
	ListByStartupIDs(ctx context.Context, startupIDs []uuid.UUID) ([]*entities.Comment, error)
}
