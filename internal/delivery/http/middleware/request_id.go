package middleware

import (
	"context"
	"regexp"

	"leap-forms-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// Incoming IDs are only trusted when they look like an opaque token.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

// RequestID tags each request with an ID, reusing a well-formed X-Request-ID from the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyRequestID, id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
