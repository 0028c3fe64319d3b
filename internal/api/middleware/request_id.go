package middleware

import (
	"askhub/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key carrying the request id
const RequestIDKey = "request_id"

// RequestID returns a gin middleware that assigns each request a unique id,
// reusing the caller-provided X-Request-ID header when present. The id and a
// request-scoped logger are stashed on the request context so downstream
// code can pick them up with logger.FromContext.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		ctx = logger.NewContext(ctx, logger.WithContext(ctx))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
