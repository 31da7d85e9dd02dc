package handlers

import (
	"context"
	"net/http"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/interfaces/http/response"
	"community-hub.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type startupService interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*entities.StartupAggregate, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.StartupAggregate, utils.PaginationMeta, error)
	MyApplications(ctx context.Context, actor entities.Actor) ([]*entities.Application, error)
	CreateStartup(ctx context.Context, actor entities.Actor, input *entities.CreateStartupInput) (*entities.Startup, error)
	CreatePosition(ctx context.Context, actor entities.Actor, startupID uuid.UUID, input *entities.CreatePositionInput) (*entities.Position, error)
	ListStartupApplications(ctx context.Context, actor entities.Actor, startupID uuid.UUID) ([]*entities.Application, error)
}

// StartupHandler serves startup, position and application reads
type StartupHandler struct {
	startupUsecase startupService
}

func NewStartupHandler(startupUsecase startupService) *StartupHandler {
	return &StartupHandler{startupUsecase: startupUsecase}
}

// ListStartups returns startup aggregates newest first
// GET /api/v1/startups?page=1&limit=20
func (h *StartupHandler) ListStartups(c *gin.Context) {
	pagination := utils.ParsePaginationQuery(c.Query("page"), c.Query("limit"))

	items, meta, err := h.startupUsecase.List(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "meta": meta})
}

// GetStartup returns one startup aggregate
// GET /api/v1/startups/:id
func (h *StartupHandler) GetStartup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	startup, err := h.startupUsecase.GetDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, startup)
}

// CreateStartup registers a startup founded by the actor
// POST /api/v1/startups
func (h *StartupHandler) CreateStartup(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.CreateStartupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	startup, err := h.startupUsecase.CreateStartup(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, startup)
}

// CreatePosition opens a position on the actor's startup
// POST /api/v1/startups/:id/positions
func (h *StartupHandler) CreatePosition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	startupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input entities.CreatePositionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	position, err := h.startupUsecase.CreatePosition(c.Request.Context(), actor, startupID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, position)
}

// ListStartupApplications lists applications to the founder's positions
// GET /api/v1/startups/:id/applications
func (h *StartupHandler) ListStartupApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	startupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.startupUsecase.ListStartupApplications(c.Request.Context(), actor, startupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// MyApplications lists the actor's applications newest first
// GET /api/v1/applications/my
func (h *StartupHandler) MyApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	items, err := h.startupUsecase.MyApplications(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}
