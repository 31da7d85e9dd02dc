package repositories

import (
	"context"
	"time"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// VerificationRepository implements verification challenge operations
type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, challenge *entities.VerificationChallenge) error {
	m := &models.VerificationChallenge{
		ID:        challenge.ID,
		UserID:    challenge.UserID,
		TokenHash: challenge.TokenHash,
		ExpiresAt: challenge.ExpiresAt,
		CreatedAt: challenge.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	challenge.CreatedAt = m.CreatedAt
	return nil
}

// ListOpenByUserID returns uncompleted challenges that expire after now
func (r *VerificationRepository) ListOpenByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entities.VerificationChallenge, error) {
	var ms []models.VerificationChallenge
	if err := GetDB(ctx, r.db).
		Where("user_id = ? AND completed_at IS NULL AND expires_at > ?", userID, now).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.VerificationChallenge, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.VerificationChallenge{
			ID:          ms[i].ID,
			UserID:      ms[i].UserID,
			TokenHash:   ms[i].TokenHash,
			ExpiresAt:   ms[i].ExpiresAt,
			CompletedAt: null.TimeFromPtr(ms[i].CompletedAt),
			CreatedAt:   ms[i].CreatedAt,
		})
	}
	return items, nil
}

func (r *VerificationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := GetDB(ctx, r.db).
		Model(&models.VerificationChallenge{}).
		Where("id = ? AND completed_at IS NULL", id).
		Update("completed_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteExpired removes uncompleted challenges that expired before the cutoff
func (r *VerificationRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := GetDB(ctx, r.db).
		Where("completed_at IS NULL AND expires_at < ?", before).
		Delete(&models.VerificationChallenge{})
	return result.RowsAffected, result.Error
}
