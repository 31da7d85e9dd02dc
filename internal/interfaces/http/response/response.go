package response

import (
	"net/http"

	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Errors that are not AppErrors become a 500
// whose cause is logged but never sent to the client.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.From(err)
	if appErr.Code >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed",
			zap.String("route", c.FullPath()),
			zap.Error(appErr.Err),
		)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message,
	})
}

