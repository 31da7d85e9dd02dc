package repositories

import (
	"context"
	"time"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile. The user_id unique index makes a concurrent
// lazy-create lose with ErrAlreadyExists.
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	m := &models.Profile{
		ID:                 profile.ID,
		UserID:             profile.UserID,
		Bio:                profile.Bio,
		AdvancedSkills:     pq.StringArray(profile.Skills.Advanced),
		IntermediateSkills: pq.StringArray(profile.Skills.Intermediate),
		BeginnerSkills:     pq.StringArray(profile.Skills.Beginner),
		Links:              jsonColumn(profile.Links),
		Projects:           jsonColumn(profile.Projects),
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return &entities.Profile{
		ID:     m.ID,
		UserID: m.UserID,
		Bio:    m.Bio,
		Skills: entities.SkillSet{
			Advanced:     nonNil(m.AdvancedSkills),
			Intermediate: nonNil(m.IntermediateSkills),
			Beginner:     nonNil(m.BeginnerSkills),
		},
		Links:       nullJSON(m.Links),
		Projects:    nullJSON(m.Projects),
		Enrollments: []*entities.CourseEnrollment{},
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// UpdateSkills replaces all three skill buckets at once
func (r *ProfileRepository) UpdateSkills(ctx context.Context, id uuid.UUID, skills entities.SkillSet) error {
	return r.update(ctx, id, map[string]interface{}{
		"advanced_skills":     pq.StringArray(skills.Advanced),
		"intermediate_skills": pq.StringArray(skills.Intermediate),
		"beginner_skills":     pq.StringArray(skills.Beginner),
		"updated_at":          time.Now(),
	})
}

// UpdateDetails saves bio, links and projects
func (r *ProfileRepository) UpdateDetails(ctx context.Context, profile *entities.Profile) error {
	return r.update(ctx, profile.ID, map[string]interface{}{
		"bio":        profile.Bio,
		"links":      jsonColumn(profile.Links),
		"projects":   jsonColumn(profile.Projects),
		"updated_at": time.Now(),
	})
}

func (r *ProfileRepository) AddEnrollment(ctx context.Context, enrollment *entities.CourseEnrollment) error {
	m := &models.CourseEnrollment{
		ID:        enrollment.ID,
		ProfileID: enrollment.ProfileID,
		CourseID:  enrollment.CourseID,
		CreatedAt: enrollment.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	enrollment.CreatedAt = m.CreatedAt
	return nil
}

// ListEnrollments returns enrollments with their course, oldest first
func (r *ProfileRepository) ListEnrollments(ctx context.Context, profileID uuid.UUID) ([]*entities.CourseEnrollment, error) {
	var rows []struct {
		models.CourseEnrollment
		CourseCode   string
		CourseName   string
		DepartmentID uuid.UUID
	}
	if err := GetDB(ctx, r.db).
		Table("course_enrollments").
		Select("course_enrollments.*, courses.code AS course_code, courses.name AS course_name, courses.department_id AS department_id").
		Joins("JOIN courses ON courses.id = course_enrollments.course_id").
		Where("course_enrollments.profile_id = ?", profileID).
		Order("course_enrollments.created_at ASC, course_enrollments.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.CourseEnrollment, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entities.CourseEnrollment{
			ID:        row.ID,
			ProfileID: row.ProfileID,
			CourseID:  row.CourseID,
			Course: &entities.Course{
				ID:           row.CourseID,
				DepartmentID: row.DepartmentID,
				Code:         row.CourseCode,
				Name:         row.CourseName,
			},
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *ProfileRepository) update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := GetDB(ctx, r.db).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func nonNil(values pq.StringArray) []string {
	if values == nil {
		return []string{}
	}
	return []string(values)
}
