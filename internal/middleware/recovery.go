package middleware

import (
	"net/http"
	"runtime/debug"

	"ouma-web/internal/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Recovery Middleware
// Turns a handler panic into a 500 response and logs the stack
// ===========================================================================

// Recovery catches panics in handlers
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.String("stack", string(debug.Stack())),
				)

				if wantsJSON(c) {
					c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error(
						"INTERNAL_ERROR",
						"An internal error occurred",
					))
					return
				}
				c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("Server Error"))
				c.Abort()
			}
		}()

		c.Next()
	}
}
