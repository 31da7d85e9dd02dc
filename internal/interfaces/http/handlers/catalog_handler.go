package handlers

import (
	"context"
	"net/http"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type catalogService interface {
	ListOrganizations(ctx context.Context) ([]*entities.Organization, error)
	ListDepartments(ctx context.Context, organizationID uuid.UUID) ([]*entities.Department, error)
	ListCourses(ctx context.Context, departmentID uuid.UUID) ([]*entities.Course, error)
}

type CatalogHandler struct {
	catalogUsecase catalogService
}

func NewCatalogHandler(catalogUsecase catalogService) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListOrganizations
// GET /api/v1/organizations
func (h *CatalogHandler) ListOrganizations(c *gin.Context) {
	items, err := h.catalogUsecase.ListOrganizations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListDepartments
// GET /api/v1/organizations/:id/departments
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.catalogUsecase.ListDepartments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListCourses
// GET /api/v1/departments/:id/courses
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.catalogUsecase.ListCourses(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}
