package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ===========================================================================
// Request ID Middleware
// Tags every request with an ID, echoed in the response header and
// attached to log lines
// ===========================================================================

const (
	// RequestIDKey gin context key of the request ID
	RequestIDKey = "request_id"

	// RequestIDHeader header carrying the request ID
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 64
)

// RequestID reuses a sane client supplied X-Request-ID, else generates a UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID request ID from the gin context, empty when unset
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
