package repositories

import (
	"context"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// PositionRepository implements position data operations
type PositionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) Create(ctx context.Context, position *entities.Position) error {
	m := r.toModel(position)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	position.CreatedAt = m.CreatedAt
	position.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PositionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Position, error) {
	var m models.Position
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// ListByStartupIDs returns positions of the given startups, oldest first
func (r *PositionRepository) ListByStartupIDs(ctx context.Context, startupIDs []uuid.UUID) ([]*entities.Position, error) {
	if len(startupIDs) == 0 {
		return []*entities.Position{}, nil
	}
	var ms []models.Position
	if err := GetDB(ctx, r.db).
		Where("startup_id IN ?", startupIDs).
		Order("created_at ASC, id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Position, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *PositionRepository) toEntity(m *models.Position) *entities.Position {
	skills := []string(m.Skills)
	if skills == nil {
		skills = []string{}
	}
	return &entities.Position{
		ID:          m.ID,
		StartupID:   m.StartupID,
		Title:       m.Title,
		Description: m.Description,
		Requirements: entities.PositionRequirements{
			Skills:     skills,
			Experience: m.Experience,
			Education:  null.StringFromPtr(m.Education),
		},
		EmploymentType: entities.EmploymentType(m.EmploymentType),
		Location:       m.Location,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *PositionRepository) toModel(e *entities.Position) *models.Position {
	return &models.Position{
		ID:             e.ID,
		StartupID:      e.StartupID,
		Title:          e.Title,
		Description:    e.Description,
		Skills:         pq.StringArray(e.Requirements.Skills),
		Experience:     e.Requirements.Experience,
		Education:      e.Requirements.Education.Ptr(),
		EmploymentType: string(e.EmploymentType),
		Location:       e.Location,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
