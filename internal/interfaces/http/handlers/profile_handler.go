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

type profileService interface {
	GetMine(ctx context.Context, actor entities.Actor) (*entities.Profile, error)
	UpdateSkills(ctx context.Context, actor entities.Actor, skills entities.SkillSet) (*entities.Profile, error)
	UpdateDetails(ctx context.Context, actor entities.Actor, input *entities.UpdateProfileInput) (*entities.Profile, error)
	Enroll(ctx context.Context, actor entities.Actor, courseID uuid.UUID) (*entities.CourseEnrollment, error)
}

type ProfileHandler struct {
	profileUsecase profileService
}

func NewProfileHandler(profileUsecase profileService) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetMyProfile returns the actor's profile, creating it on first access
// GET /api/v1/profile
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetMine(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateSkills replaces the actor's skill buckets
// PUT /api/v1/profile/skills
func (h *ProfileHandler) UpdateSkills(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.SkillSet
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpdateSkills(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile saves bio, links and projects
// PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpdateDetails(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// EnrollCourse
// POST /api/v1/profile/courses
func (h *ProfileHandler) EnrollCourse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.EnrollCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	courseID, err := utils.ParseID(input.CourseID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid courseId"))
		return
	}

	enrollment, err := h.profileUsecase.Enroll(c.Request.Context(), actor, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, enrollment)
}
