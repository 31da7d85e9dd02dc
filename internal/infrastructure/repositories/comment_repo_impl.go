package repositories

import (
	"context"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository implements comment data operations
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	m := &models.Comment{
		ID:        comment.ID,
		StartupID: comment.StartupID,
		UserID:    comment.UserID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	comment.CreatedAt = m.CreatedAt
	comment.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var m models.Comment
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// ListByStartupIDs returns every comment and reply of the given startups,
// newest first
func (r *CommentRepository) ListByStartupIDs(ctx context.Context, startupIDs []uuid.UUID) ([]*entities.Comment, error) {
	if len(startupIDs) == 0 {
		return []*entities.Comment{}, nil
	}
	var ms []models.Comment
	if err := GetDB(ctx, r.db).
		Where("startup_id IN ?", startupIDs).
		Order("created_at DESC, id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Comment, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *CommentRepository) toEntity(m *models.Comment) *entities.Comment {
	return &entities.Comment{
		ID:        m.ID,
		StartupID: m.StartupID,
		UserID:    m.UserID,
		ParentID:  m.ParentID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
