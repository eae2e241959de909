package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "requestId"
)

// AssignRequestID reuses the caller's X-Request-Id or generates one, stores it
// on the context and echoes it back in the response.
func AssignRequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" || len(id) > 128 {
		id = uuid.NewString()
	}

	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)

	c.Next()
}

// RequestID returns the id assigned by AssignRequestID, or "" outside it.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
