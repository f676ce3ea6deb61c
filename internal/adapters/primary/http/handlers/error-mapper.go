package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"horoscope-service/internal/adapters/primary/http/dto"
	"horoscope-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	var verr *domain.ValidationError

	switch {
	// Bad request / validation errors: malformed format, out of range,
	// invalid calendar date all share one user-facing message
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.NewBirthdateValidationError(verr.Input))

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ProcessingErrorMessage})
	}
}
