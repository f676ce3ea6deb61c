package middleware

import (
	"github.com/gin-gonic/gin"

	"horoscope-service/internal/requestid"
)

const (
	headerRequestID     = "X-Request-ID"
	contextKeyRequestID = "request_id"
)

// RequestID accepts a well-formed X-Request-ID from the caller or generates
// one, then exposes it on the response, the gin context and the request
// context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if !requestid.Valid(id) {
			id = requestid.New()
		}

		c.Set(contextKeyRequestID, id)
		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), id))
		c.Header(headerRequestID, id)

		c.Next()
	}
}
