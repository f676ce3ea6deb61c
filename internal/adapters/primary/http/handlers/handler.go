package handlers

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"horoscope-service/internal/core/services"
)

const (
	apiDocsPath     = "/api-docs"
	apiDocsIndex    = apiDocsPath + "/index.html"
	apiDocsDocument = apiDocsPath + "/openapi.json"
)

type Handler struct {
	horoscopeSvc *services.HoroscopeService
	docs         *openapi3.T
	swaggerUI    gin.HandlerFunc
}

func New(horoscopeSvc *services.HoroscopeService, docs *openapi3.T) *Handler {
	return &Handler{
		horoscopeSvc: horoscopeSvc,
		docs:         docs,
		swaggerUI:    ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(apiDocsDocument)),
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	// Horoscope
	r.GET("/horoscope", h.GetHoroscope)

	// API documentation: Swagger UI plus the OpenAPI document it renders
	r.GET(apiDocsPath, h.RedirectAPIDocs)
	r.GET(apiDocsPath+"/*any", h.GetAPIDocs)
}
