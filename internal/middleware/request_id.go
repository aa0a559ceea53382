package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"admin-console/pkg/log"
)

// RequestIDHeader is read from the client when present and always echoed.
const RequestIDHeader = "X-Request-ID"

// RequestID puts a request id on the request context so every log line of
// the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
