package handlers

import (
	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/interfaces/http/middleware"
	"community-hub.backend/internal/interfaces/http/response"
	"community-hub.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireActor writes a 401 and returns false when no actor was resolved
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return entities.Actor{}, false
	}
	return actor, true
}

// pathID parses a uuid path parameter, writing a 400 when it is malformed
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return uuid.Nil, false
	}
	return id, true
}
