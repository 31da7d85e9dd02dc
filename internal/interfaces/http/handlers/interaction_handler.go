package handlers

import (
	"context"
	"net/http"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/interfaces/http/response"
	"community-hub.backend/internal/usecases"
	"community-hub.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type interactionService interface {
	Apply(ctx context.Context, actor entities.Actor, input usecases.ApplyInput) (*entities.Application, error)
	ToggleLike(ctx context.Context, actor entities.Actor, startupID uuid.UUID) (*entities.StartupAggregate, error)
	ToggleDislike(ctx context.Context, actor entities.Actor, startupID uuid.UUID) (*entities.StartupAggregate, error)
	PostComment(ctx context.Context, actor entities.Actor, startupID uuid.UUID, content string) (*entities.StartupAggregate, error)
	PostReply(ctx context.Context, actor entities.Actor, startupID, parentID uuid.UUID, content string) (*entities.StartupAggregate, error)
	UpdateApplicationStatus(ctx context.Context, actor entities.Actor, applicationID uuid.UUID, status string) (*entities.Application, error)
}

// InteractionHandler serves the mutating community endpoints
type InteractionHandler struct {
	interactionUsecase interactionService
}

func NewInteractionHandler(interactionUsecase interactionService) *InteractionHandler {
	return &InteractionHandler{interactionUsecase: interactionUsecase}
}

// Apply submits the actor's application to a position
// POST /api/v1/applications
func (h *InteractionHandler) Apply(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	startupID, err := utils.ParseID(input.StartupID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid startupId"))
		return
	}
	positionID, err := utils.ParseID(input.PositionID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid positionId"))
		return
	}

	application, err := h.interactionUsecase.Apply(c.Request.Context(), actor, usecases.ApplyInput{
		StartupID:  startupID,
		PositionID: positionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, application)
}

// ToggleLike adds or removes the actor's like
// POST /api/v1/startups/:id/like
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, h.interactionUsecase.ToggleLike)
}

// ToggleDislike adds or removes the actor's dislike
// POST /api/v1/startups/:id/dislike
func (h *InteractionHandler) ToggleDislike(c *gin.Context) {
	h.toggle(c, h.interactionUsecase.ToggleDislike)
}

func (h *InteractionHandler) toggle(c *gin.Context, fn func(context.Context, entities.Actor, uuid.UUID) (*entities.StartupAggregate, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	startupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	startup, err := fn(c.Request.Context(), actor, startupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, startup)
}

// PostComment adds a top-level comment
// POST /api/v1/startups/:id/comment
func (h *InteractionHandler) PostComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	startupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input entities.PostCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	startup, err := h.interactionUsecase.PostComment(c.Request.Context(), actor, startupID, input.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, startup)
}

// PostReply answers an existing comment
// POST /api/v1/startups/:id/comments/:commentId/reply
func (h *InteractionHandler) PostReply(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	startupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	parentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var input entities.PostCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	startup, err := h.interactionUsecase.PostReply(c.Request.Context(), actor, startupID, parentID, input.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, startup)
}

// UpdateApplicationStatus records the founder's decision
// PATCH /api/v1/applications/:id/status
func (h *InteractionHandler) UpdateApplicationStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	application, err := h.interactionUsecase.UpdateApplicationStatus(c.Request.Context(), actor, applicationID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, application)
}
