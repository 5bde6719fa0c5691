package middleware

import (
	"context"
	"strings"
	"time"

	"ouma-web/internal/geoip"
	"ouma-web/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Access Log Middleware
// Records public page views with their geo-ip location. The write happens
// in a detached goroutine and never delays the response.
// ===========================================================================

// accessLogSkipPrefixes paths that are never recorded
var accessLogSkipPrefixes = []string{"/css", "/js", "/images", "/videos", "/docs", "/static", "/admin"}

const accessLogTimeout = 5 * time.Second

// VisitRecorder persists access log rows
type VisitRecorder interface {
	RecordVisit(ctx context.Context, entry *models.AccessLog) error
}

// ShouldLogAccess reports whether path is a recorded page view
func ShouldLogAccess(path string) bool {
	for _, prefix := range accessLogSkipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// AccessLog records every non-asset, non-admin request
func AccessLog(recorder VisitRecorder, locator geoip.Locator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !ShouldLogAccess(path) {
			c.Next()
			return
		}

		entry := &models.AccessLog{
			IP:        geoip.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr),
			Path:      path,
			Method:    c.Request.Method,
			UserAgent: c.Request.UserAgent(),
			Timestamp: time.Now(),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), accessLogTimeout)
			defer cancel()

			loc, err := locator.Lookup(entry.IP)
			if err != nil {
				logger.Debug("geo lookup failed", zap.String("ip", entry.IP), zap.Error(err))
			} else {
				entry.Country = loc.Country
				entry.City = loc.City
			}

			if err := recorder.RecordVisit(ctx, entry); err != nil {
				logger.Error("record access log failed", zap.String("path", entry.Path), zap.Error(err))
			}
		}()

		c.Next()
	}
}
