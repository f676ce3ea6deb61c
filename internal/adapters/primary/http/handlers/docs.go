package handlers

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"

	"horoscope-service/internal/adapters/primary/http/dto"
	"horoscope-service/internal/core/domain"
)

// NewOpenAPIDocument describes the public API served by Handler.
func NewOpenAPIDocument(serverURL string) *openapi3.T {
	signs := make([]interface{}, 0, 12)
	for _, s := range domain.AllSigns() {
		signs = append(signs, string(s))
	}

	errorSchema := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema())

	fieldErrorSchema := openapi3.NewObjectSchema().
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("value", openapi3.NewStringSchema()).
		WithProperty("msg", openapi3.NewStringSchema()).
		WithProperty("path", openapi3.NewStringSchema()).
		WithProperty("location", openapi3.NewStringSchema())

	birthdate := openapi3.NewQueryParameter("birthdate").
		WithRequired(true).
		WithDescription("The birthdate in " + domain.DateLayout + " format").
		WithSchema(openapi3.NewStringSchema().WithFormat("date"))

	getHoroscope := &openapi3.Operation{
		Tags:        []string{"Horoscope"},
		Summary:     "Get zodiac sign based on birthdate",
		OperationID: "getHoroscope",
		Parameters:  openapi3.Parameters{{Value: birthdate}},
		Responses: openapi3.Responses{
			"200": {Value: openapi3.NewResponse().
				WithDescription("The zodiac sign").
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("zodiacSign", openapi3.NewStringSchema().WithEnum(signs...)))},
			"400": {Value: openapi3.NewResponse().
				WithDescription(domain.InvalidBirthdateMessage).
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("errors", openapi3.NewArraySchema().WithItems(fieldErrorSchema)))},
			"500": {Value: openapi3.NewResponse().
				WithDescription(dto.ProcessingErrorMessage).
				WithJSONSchema(errorSchema)},
		},
	}

	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Horoscope Express API",
			Version:     "1.0.0",
			Description: "A simple API to get zodiac sign based on birthdate",
		},
		Servers: openapi3.Servers{{URL: serverURL}},
		Tags:    openapi3.Tags{{Name: "Horoscope"}},
		Paths: openapi3.Paths{
			"/horoscope": &openapi3.PathItem{Get: getHoroscope},
		},
	}
}

// RedirectAPIDocs sends /api-docs to the Swagger UI page.
func (h *Handler) RedirectAPIDocs(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, apiDocsIndex)
}

// GetAPIDocs serves the OpenAPI document and the Swagger UI assets.
func (h *Handler) GetAPIDocs(c *gin.Context) {
	switch c.Param("any") {
	case "", "/":
		h.RedirectAPIDocs(c)
	case strings.TrimPrefix(apiDocsDocument, apiDocsPath):
		c.JSON(http.StatusOK, h.docs)
	default:
		h.swaggerUI(c)
	}
}
