package usecases

import (
	"context"
	"time"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/domain/repositories"
	"community-hub.backend/internal/metrics"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const catalogCacheName = "catalog"

// CatalogUsecase serves organizations, departments and courses. The
// catalog changes only through the seed command, so reads go through an
// in-memory cache.
type CatalogUsecase struct {
	catalogRepo repositories.CatalogRepository
	cache       *cache.Cache
	ttl         time.Duration
	metrics     *metrics.Registry
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(catalogRepo repositories.CatalogRepository, ttl time.Duration, m *metrics.Registry) *CatalogUsecase {
	return &CatalogUsecase{
		catalogRepo: catalogRepo,
		cache:       cache.New(ttl, 2*ttl),
		ttl:         ttl,
		metrics:     m,
	}
}

// ListOrganizations returns every organization by name
func (u *CatalogUsecase) ListOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	return cached(u, "organizations", func() ([]*entities.Organization, error) {
		return u.catalogRepo.ListOrganizations(ctx)
	})
}

// ListDepartments returns the departments of one organization
func (u *CatalogUsecase) ListDepartments(ctx context.Context, organizationID uuid.UUID) ([]*entities.Department, error) {
	return cached(u, "departments:"+organizationID.String(), func() ([]*entities.Department, error) {
		return u.catalogRepo.ListDepartments(ctx, organizationID)
	})
}

// ListCourses returns the courses of one department by code
func (u *CatalogUsecase) ListCourses(ctx context.Context, departmentID uuid.UUID) ([]*entities.Course, error) {
	return cached(u, "courses:"+departmentID.String(), func() ([]*entities.Course, error) {
		return u.catalogRepo.ListCourses(ctx, departmentID)
	})
}

// Invalidate drops every cached catalog read
func (u *CatalogUsecase) Invalidate() {
	u.cache.Flush()
}

func cached[T any](u *CatalogUsecase, key string, load func() (T, error)) (T, error) {
	if v, found := u.cache.Get(key); found {
		if typed, ok := v.(T); ok {
			u.metrics.CacheLookup(catalogCacheName, true)
			return typed, nil
		}
	}
	u.metrics.CacheLookup(catalogCacheName, false)

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	u.cache.Set(key, v, u.ttl)
	return v, nil
}
