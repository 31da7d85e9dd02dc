package handlers

import (
	"context"
	"net/http"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type studyGroupService interface {
	Create(ctx context.Context, actor entities.Actor, input *entities.CreateStudyGroupInput) (*entities.StudyGroup, error)
	List(ctx context.Context) ([]*entities.StudyGroup, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.StudyGroup, error)
	Join(ctx context.Context, actor entities.Actor, groupID uuid.UUID) (*entities.StudyGroupMember, error)
	Leave(ctx context.Context, actor entities.Actor, groupID uuid.UUID) error
}

type StudyGroupHandler struct {
	studyGroupUsecase studyGroupService
}

func NewStudyGroupHandler(studyGroupUsecase studyGroupService) *StudyGroupHandler {
	return &StudyGroupHandler{studyGroupUsecase: studyGroupUsecase}
}

// CreateStudyGroup creates a group with the actor as admin
// POST /api/v1/study-groups
func (h *StudyGroupHandler) CreateStudyGroup(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.CreateStudyGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	group, err := h.studyGroupUsecase.Create(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, group)
}

// ListStudyGroups
// GET /api/v1/study-groups
func (h *StudyGroupHandler) ListStudyGroups(c *gin.Context) {
	items, err := h.studyGroupUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetStudyGroup
// GET /api/v1/study-groups/:id
func (h *StudyGroupHandler) GetStudyGroup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	group, err := h.studyGroupUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, group)
}

// JoinStudyGroup
// POST /api/v1/study-groups/:id/join
func (h *StudyGroupHandler) JoinStudyGroup(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	member, err := h.studyGroupUsecase.Join(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

// LeaveStudyGroup
// POST /api/v1/study-groups/:id/leave
func (h *StudyGroupHandler) LeaveStudyGroup(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.studyGroupUsecase.Leave(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "left study group"})
}
