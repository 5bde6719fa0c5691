package middleware

import (
	"context"

	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
)

// ContextKeySiteContent gin context key of services.SiteContent
const ContextKeySiteContent = "site_content"

// SiteContentProvider loads the shared page records
type SiteContentProvider interface {
	SiteContent(ctx context.Context) services.SiteContent
}

// SiteContent loads contact, about and services records for page rendering
func SiteContent(provider SiteContentProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeySiteContent, provider.SiteContent(c.Request.Context()))
		c.Next()
	}
}

// GetSiteContent shared records of the request, zero value when unset
func GetSiteContent(c *gin.Context) services.SiteContent {
	if v, ok := c.Get(ContextKeySiteContent); ok {
		if content, ok := v.(services.SiteContent); ok {
			return content
		}
	}
	return services.SiteContent{}
}
