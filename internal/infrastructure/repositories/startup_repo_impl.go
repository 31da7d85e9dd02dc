package repositories

import (
	"context"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/infrastructure/models"
	"community-hub.backend/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartupRepository implements startup data operations
type StartupRepository struct {
	db *gorm.DB
}

// NewStartupRepository creates a new startup repository
func NewStartupRepository(db *gorm.DB) *StartupRepository {
	return &StartupRepository{db: db}
}

// Create creates a new startup. The founder_id unique index rejects a
// second startup for the same founder with ErrAlreadyExists.
func (r *StartupRepository) Create(ctx context.Context, startup *entities.Startup) error {
	m := r.toModel(startup)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	startup.CreatedAt = m.CreatedAt
	startup.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a startup by ID
func (r *StartupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Startup, error) {
	var m models.Startup
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByFounderID gets the startup owned by a founder
func (r *StartupRepository) GetByFounderID(ctx context.Context, founderID uuid.UUID) (*entities.Startup, error) {
	var m models.Startup
	if err := GetDB(ctx, r.db).Where("founder_id = ?", founderID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// List returns startups newest first. A zero limit returns every row.
func (r *StartupRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Startup, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Startup{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := GetDB(ctx, r.db).Order("created_at DESC, id DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	var ms []models.Startup
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Startup, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *StartupRepository) toEntity(m *models.Startup) *entities.Startup {
	return &entities.Startup{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		FounderID:   m.FounderID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *StartupRepository) toModel(e *entities.Startup) *models.Startup {
	return &models.Startup{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		FounderID:   e.FounderID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
