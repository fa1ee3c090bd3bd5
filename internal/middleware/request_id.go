package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the per-request correlation ID on both
	// directions.
	RequestIDHeader = "X-Request-ID"

	// ContextRequestID is the gin context key the ID is stored under.
	ContextRequestID = "request_id"
)

// RequestID tags every request with a UUID so one submission can be traced
// through the access log. An inbound X-Request-ID from a proxy is kept.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ContextRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
