package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"ouma-web/internal/dto"

	"github.com/gin-gonic/gin"
)

// ===========================================================================
// CSRF Middleware
// Double submit cookie: the token lives in a readable cookie and must be
// echoed in the X-CSRF-Token header (chat script) or the _csrf form field.
// ===========================================================================

const (
	CSRFCookieName  = "csrf_token"
	CSRFHeaderName  = "X-CSRF-Token"
	CSRFFormField   = "_csrf"
	CSRFTokenLength = 32

	// ContextKeyCSRF gin context key of the current token, for templates
	ContextKeyCSRF = "csrf_token"
)

// GenerateCSRFToken creates a random CSRF token
func GenerateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// CSRF issues the token cookie on first visit and validates unsafe methods
func CSRF(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFCookieName)
		if err != nil || token == "" {
			token, err = GenerateCSRFToken()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFCookieName, token, 86400*7, "/", "", secure, false)
		}
		c.Set(ContextKeyCSRF, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		sent := c.GetHeader(CSRFHeaderName)
		if sent == "" {
			sent = c.PostForm(CSRFFormField)
		}
		if sent == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
			rejectCSRF(c)
			return
		}

		c.Next()
	}
}

// GetCSRFToken token for hidden form fields
func GetCSRFToken(c *gin.Context) string {
	return c.GetString(ContextKeyCSRF)
}

func rejectCSRF(c *gin.Context) {
	if wantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("CSRF_INVALID", "CSRF token mismatch"))
		return
	}
	c.Data(http.StatusForbidden, "text/plain; charset=utf-8", []byte("Invalid or missing CSRF token"))
	c.Abort()
}

// wantsJSON chat endpoints and XHR callers get JSON errors
func wantsJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/chat") ||
		strings.Contains(c.GetHeader("Accept"), "application/json")
}
