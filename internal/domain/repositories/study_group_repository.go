package repositories

import (
	"context"

	"github.com/google/uuid"
	"community-hub.backend/internal/domain/entities"
)

// StudyGroupRepository defines study group and membership operations
type StudyGroupRepository interface {
	Create(ctx context.Context, group *entities.StudyGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.StudyGroup, error)
	List(ctx context.Context) ([]*entities.StudyGroup, error)
	AddMember(ctx context.Context, member *entities.StudyGroupMember) error
	GetMember(ctx context.Context, groupID, userID uuid.UUID) (*entities.StudyGroupMember, error)
	RemoveMember(ctx context.Context, id uuid.UUID) error
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entities.StudyGroupMember, error)
	CountMembers(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
