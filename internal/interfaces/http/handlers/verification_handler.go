package handlers

import (
	"context"
	"net/http"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

type verificationService interface {
	StartChallenge(ctx context.Context, actor entities.Actor) (*entities.VerificationChallengeResponse, error)
	Complete(ctx context.Context, actor entities.Actor, token string) (*entities.User, error)
}

type VerificationHandler struct {
	verificationUsecase verificationService
}

func NewVerificationHandler(verificationUsecase verificationService) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// StartChallenge issues a one-time verification token
// POST /api/v1/verification/challenges
func (h *VerificationHandler) StartChallenge(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	challenge, err := h.verificationUsecase.StartChallenge(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, challenge)
}

// Complete verifies the actor with a previously issued token
// POST /api/v1/verification/complete
func (h *VerificationHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.CompleteVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.verificationUsecase.Complete(c.Request.Context(), actor, input.Token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}
