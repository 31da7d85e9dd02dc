package repositories

import (
	"context"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository implements organization, department and course reads
// plus the idempotent upserts used by the seed command
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	var ms []models.Organization
	if err := GetDB(ctx, r.db).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Organization, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.Organization{ID: m.ID, Name: m.Name, Slug: m.Slug})
	}
	return items, nil
}

func (r *CatalogRepository) ListDepartments(ctx context.Context, organizationID uuid.UUID) ([]*entities.Department, error) {
	var ms []models.Department
	if err := GetDB(ctx, r.db).
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Department, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.Department{ID: m.ID, OrganizationID: m.OrganizationID, Name: m.Name})
	}
	return items, nil
}

func (r *CatalogRepository) ListCourses(ctx context.Context, departmentID uuid.UUID) ([]*entities.Course, error) {
	var ms []models.Course
	if err := GetDB(ctx, r.db).
		Where("department_id = ?", departmentID).
		Order("code ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Course, 0, len(ms))
	for i := range ms {
		items = append(items, toCourse(&ms[i]))
	}
	return items, nil
}

func (r *CatalogRepository) GetCourseByID(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	var m models.Course
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return toCourse(&m), nil
}

// UpsertOrganization inserts by slug or updates the name. org.ID is set to
// the stored row's id on return.
func (r *CatalogRepository) UpsertOrganization(ctx context.Context, org *entities.Organization) error {
	m := &models.Organization{ID: org.ID, Name: org.Name, Slug: org.Slug}
	if err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(m).Error; err != nil {
		return translateError(err)
	}

	var stored models.Organization
	if err := GetDB(ctx, r.db).Where("slug = ?", org.Slug).First(&stored).Error; err != nil {
		return translateError(err)
	}
	org.ID = stored.ID
	return nil
}

// UpsertDepartment inserts by (organization, name); existing rows are kept.
func (r *CatalogRepository) UpsertDepartment(ctx context.Context, dept *entities.Department) error {
	m := &models.Department{ID: dept.ID, OrganizationID: dept.OrganizationID, Name: dept.Name}
	if err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(m).Error; err != nil {
		return translateError(err)
	}

	var stored models.Department
	if err := GetDB(ctx, r.db).
		Where("organization_id = ? AND name = ?", dept.OrganizationID, dept.Name).
		First(&stored).Error; err != nil {
		return translateError(err)
	}
	dept.ID = stored.ID
	return nil
}

// UpsertCourse inserts by (department, code) or updates the name.
func (r *CatalogRepository) UpsertCourse(ctx context.Context, course *entities.Course) error {
	m := &models.Course{ID: course.ID, DepartmentID: course.DepartmentID, Code: course.Code, Name: course.Name}
	if err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "department_id"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(m).Error; err != nil {
		return translateError(err)
	}

	var stored models.Course
	if err := GetDB(ctx, r.db).
		Where("department_id = ? AND code = ?", course.DepartmentID, course.Code).
		First(&stored).Error; err != nil {
		return translateError(err)
	}
	course.ID = stored.ID
	return nil
}

func toCourse(m *models.Course) *entities.Course {
	return &entities.Course{ID: m.ID, DepartmentID: m.DepartmentID, Code: m.Code, Name: m.Name}
}
