package repositories

import (
	"context"

	"github.com/google/uuid"
	"community-hub.backend/internal/domain/entities"
)

// ProfileRepository defines profile operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	UpdateSkills(ctx context.Context, id uuid.UUID, skills entities.SkillSet) error
	UpdateDetails(ctx context.Context, profile *entities.Profile) error
	AddEnrollment(ctx context.Context, enrollment *entities.CourseEnrollment) error
	ListEnrollments(ctx context.Context, profileID uuid.UUID) ([]*entities.CourseEnrollment, error)
}

// CatalogRepository defines organization/department/course operations
type CatalogRepository interface {
	ListOrganizations(ctx context.Context) ([]*entities.Organization, error)
	ListDepartments(ctx context.Context, organizationID uuid.UUID) ([]*entities.Department, error)
	ListCourses(ctx context.Context, departmentID uuid.UUID) ([]*entities.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*entities.Course, error)
	UpsertOrganization(ctx context.Context, org *entities.Organization) error
	UpsertDepartment(ctx context.Context, dept *entities.Department) error
	UpsertCourse(ctx context.Context, course *entities.Course) error
}
