package repositories

import (
	"context"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudyGroupRepository implements study group and membership operations
type StudyGroupRepository struct {
	db *gorm.DB
}

func NewStudyGroupRepository(db *gorm.DB) *StudyGroupRepository {
	return &StudyGroupRepository{db: db}
}

func (r *StudyGroupRepository) Create(ctx context.Context, group *entities.StudyGroup) error {
	m := &models.StudyGroup{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		Type:        group.Type,
		Level:       group.Level,
		Roadmap:     jsonColumn(group.Roadmap),
		Schedule:    jsonColumn(group.Schedule),
		CreatorID:   group.CreatorID,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	group.CreatedAt = m.CreatedAt
	group.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *StudyGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.StudyGroup, error) {
	var m models.StudyGroup
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// List returns every study group, newest first
func (r *StudyGroupRepository) List(ctx context.Context) ([]*entities.StudyGroup, error) {
	var ms []models.StudyGroup
	if err := GetDB(ctx, r.db).Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.StudyGroup, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *StudyGroupRepository) AddMember(ctx context.Context, member *entities.StudyGroupMember) error {
	m := &models.StudyGroupMember{
		ID:           member.ID,
		StudyGroupID: member.StudyGroupID,
		UserID:       member.UserID,
		Role:         string(member.Role),
		CreatedAt:    member.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	member.CreatedAt = m.CreatedAt
	return nil
}

func (r *StudyGroupRepository) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*entities.StudyGroupMember, error) {
	var m models.StudyGroupMember
	if err := GetDB(ctx, r.db).
		Where("study_group_id = ? AND user_id = ?", groupID, userID).
		First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return toMember(&m), nil
}

func (r *StudyGroupRepository) RemoveMember(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Where("id = ?", id).Delete(&models.StudyGroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListMembers returns members in join order
func (r *StudyGroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entities.StudyGroupMember, error) {
	var ms []models.StudyGroupMember
	if err := GetDB(ctx, r.db).
		Where("study_group_id = ?", groupID).
		Order("created_at ASC, id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.StudyGroupMember, 0, len(ms))
	for i := range ms {
		items = append(items, toMember(&ms[i]))
	}
	return items, nil
}

// CountMembers returns member counts keyed by group id. Groups without
// members are absent from the map.
func (r *StudyGroupRepository) CountMembers(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(groupIDs))
	if len(groupIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		StudyGroupID uuid.UUID
		Total        int
	}
	if err := GetDB(ctx, r.db).
		Model(&models.StudyGroupMember{}).
		Select("study_group_id, COUNT(*) AS total").
		Where("study_group_id IN ?", groupIDs).
		Group("study_group_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.StudyGroupID] = row.Total
	}
	return counts, nil
}

func (r *StudyGroupRepository) toEntity(m *models.StudyGroup) *entities.StudyGroup {
	return &entities.StudyGroup{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Type:        m.Type,
		Level:       m.Level,
		Roadmap:     nullJSON(m.Roadmap),
		Schedule:    nullJSON(m.Schedule),
		CreatorID:   m.CreatorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMember(m *models.StudyGroupMember) *entities.StudyGroupMember {
	return &entities.StudyGroupMember{
		ID:           m.ID,
		StudyGroupID: m.StudyGroupID,
		UserID:       m.UserID,
		Role:         entities.StudyGroupRole(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}

func jsonColumn(v null.JSON) datatypes.JSON {
	if !v.Valid {
		return nil
	}
	return datatypes.JSON(v.JSON)
}

func nullJSON(v datatypes.JSON) null.JSON {
	if len(v) == 0 {
		return null.JSON{}
	}
	return null.JSONFrom([]byte(v))
}
