package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"horoscope-service/internal/adapters/primary/http/dto"
)

// Recovery turns a panic in any handler into the generic 500 response.
func Recovery(logger *log.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.WithFields(log.Fields{
			"panic":      recovered,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(contextKeyRequestID),
		}).Error("recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ProcessingErrorMessage})
	})
}
