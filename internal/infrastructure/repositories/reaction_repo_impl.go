package repositories

import (
	"context"
	"time"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionRepository implements like/dislike data operations over the likes
// and dislikes tables
type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// reactionRow is the common projection of models.Like and models.Dislike
type reactionRow struct {
	ID        uuid.UUID
	StartupID uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

func tableFor(kind entities.ReactionKind) string {
	if kind == entities.ReactionDislike {
		return "dislikes"
	}
	return "likes"
}

func modelFor(kind entities.ReactionKind) interface{} {
	if kind == entities.ReactionDislike {
		return &models.Dislike{}
	}
	return &models.Like{}
}

// Find returns the user's reaction of the given kind on a startup
func (r *ReactionRepository) Find(ctx context.Context, kind entities.ReactionKind, startupID, userID uuid.UUID) (*entities.Reaction, error) {
	var row reactionRow
	if err := GetDB(ctx, r.db).
		Table(tableFor(kind)).
		Where("startup_id = ? AND user_id = ?", startupID, userID).
		Take(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return toReaction(kind, &row), nil
}

// Create inserts a like or dislike depending on reaction.Kind
func (r *ReactionRepository) Create(ctx context.Context, reaction *entities.Reaction) error {
	var err error
	now := time.Now()
	if reaction.CreatedAt.IsZero() {
		reaction.CreatedAt = now
	}
	switch reaction.Kind {
	case entities.ReactionDislike:
		err = GetDB(ctx, r.db).Create(&models.Dislike{
			ID:        reaction.ID,
			StartupID: reaction.StartupID,
			UserID:    reaction.UserID,
			CreatedAt: reaction.CreatedAt,
		}).Error
	default:
		err = GetDB(ctx, r.db).Create(&models.Like{
			ID:        reaction.ID,
			StartupID: reaction.StartupID,
			UserID:    reaction.UserID,
			CreatedAt: reaction.CreatedAt,
		}).Error
	}
	return translateError(err)
}

// Delete removes a reaction by id
func (r *ReactionRepository) Delete(ctx context.Context, kind entities.ReactionKind, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Where("id = ?", id).Delete(modelFor(kind))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByStartupIDs returns reactions of one kind, newest first
func (r *ReactionRepository) ListByStartupIDs(ctx context.Context, kind entities.ReactionKind, startupIDs []uuid.UUID) ([]*entities.Reaction, error) {
	if len(startupIDs) == 0 {
		return []*entities.Reaction{}, nil
	}
	var rows []reactionRow
	if err := GetDB(ctx, r.db).
		Table(tableFor(kind)).
		Where("startup_id IN ?", startupIDs).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Reaction, 0, len(rows))
	for i := range rows {
		items = append(items, toReaction(kind, &rows[i]))
	}
	return items, nil
}

func toReaction(kind entities.ReactionKind, row *reactionRow) *entities.Reaction {
	return &entities.Reaction{
		ID:        row.ID,
		Kind:      kind,
		StartupID: row.StartupID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}
}
