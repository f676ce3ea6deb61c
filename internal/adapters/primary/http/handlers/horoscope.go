package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"horoscope-service/internal/adapters/primary/http/dto"
)

// GetHoroscope resolves the zodiac sign of the birthdate query parameter.
// A missing parameter is looked up as "" and rejected like any malformed one.
func (h *Handler) GetHoroscope(c *gin.Context) {
	birthdate := c.Query(dto.BirthdateParam)

	sign, err := h.horoscopeSvc.Lookup(c.Request.Context(), birthdate)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHoroscopeResponse(sign))
}
