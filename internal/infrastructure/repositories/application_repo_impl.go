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

// ApplicationRepository implements application data operations
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// applicationRow is the joined projection used by list queries
type applicationRow struct {
	models.Application
	PositionTitle  string
	StartupID      uuid.UUID
	StartupName    string
	ApplicantName  string
	ApplicantEmail string
}

const applicationJoinSelect = "applications.*, positions.title AS position_title, " +
	"startups.id AS startup_id, startups.name AS startup_name, " +
	"users.name AS applicant_name, users.email AS applicant_email"

// Create inserts an application. The (position_id, user_id) unique index
// turns a racing duplicate into ErrAlreadyExists.
func (r *ApplicationRepository) Create(ctx context.Context, application *entities.Application) error {
	m := &models.Application{
		ID:         application.ID,
		PositionID: application.PositionID,
		UserID:     application.UserID,
		Status:     string(application.Status),
		CreatedAt:  application.CreatedAt,
		UpdatedAt:  application.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	application.CreatedAt = m.CreatedAt
	application.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var m models.Application
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ApplicationRepository) GetByPositionAndUser(ctx context.Context, positionID, userID uuid.UUID) (*entities.Application, error) {
	var m models.Application
	if err := GetDB(ctx, r.db).
		Where("position_id = ? AND user_id = ?", positionID, userID).
		First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// ListByUserID returns the user's applications newest first with position
// title and startup name
func (r *ApplicationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Application, error) {
	return r.listJoined(ctx, "applications.user_id = ?", userID)
}

// ListByStartupID returns every application across a startup's positions
func (r *ApplicationRepository) ListByStartupID(ctx context.Context, startupID uuid.UUID) ([]*entities.Application, error) {
	return r.listJoined(ctx, "positions.startup_id = ?", startupID)
}

func (r *ApplicationRepository) ListByPositionIDs(ctx context.Context, positionIDs []uuid.UUID) ([]*entities.Application, error) {
	if len(positionIDs) == 0 {
		return []*entities.Application{}, nil
	}
	var ms []models.Application
	if err := GetDB(ctx, r.db).
		Where("position_id IN ?", positionIDs).
		Order("created_at DESC, id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Application, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := GetDB(ctx, r.db).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) listJoined(ctx context.Context, where string, arg interface{}) ([]*entities.Application, error) {
	var rows []applicationRow
	if err := GetDB(ctx, r.db).
		Table("applications").
		Select(applicationJoinSelect).
		Joins("JOIN positions ON positions.id = applications.position_id").
		Joins("JOIN startups ON startups.id = positions.startup_id").
		Joins("JOIN users ON users.id = applications.user_id").
		Where(where, arg).
		Order("applications.created_at DESC, applications.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Application, 0, len(rows))
	for i := range rows {
		e := r.toEntity(&rows[i].Application)
		e.PositionTitle = rows[i].PositionTitle
		startupID := rows[i].StartupID
		e.StartupID = &startupID
		e.StartupName = rows[i].StartupName
		e.ApplicantName = rows[i].ApplicantName
		e.ApplicantEmail = rows[i].ApplicantEmail
		items = append(items, e)
	}
	return items, nil
}

func (r *ApplicationRepository) toEntity(m *models.Application) *entities.Application {
	return &entities.Application{
		ID:         m.ID,
		PositionID: m.PositionID,
		UserID:     m.UserID,
		Status:     entities.ApplicationStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
