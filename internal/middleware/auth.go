package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ===========================================================================
// Auth Middleware
// Protects the back office with the session's authenticated flag
// ===========================================================================

// AdminLoginPath where anonymous visitors are sent
const AdminLoginPath = "/admin/login"

// RequireAdmin redirects anonymous sessions to the login page
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the request's session is logged in
func IsAuthenticated(c *gin.Context) bool {
	return GetSession(c).IsAuthenticated
}
