package middleware

import (
	"ouma-web/internal/dto"
	"ouma-web/internal/geoip"
	"ouma-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextKeyLang gin context key of the resolved language
const ContextKeyLang = "lang"

// Locale resolves the page language and remembers it in the session.
// An unsupported ?lang= is switched to English, never rejected.
// Runs after Session.
func Locale(locator geoip.Locator, logger *zap.Logger) gin.HandlerFunc {
	if err := i18n.RegisterBinding(); err != nil {
		logger.Error("register lang validator failed", zap.Error(err))
	}

	return func(c *gin.Context) {
		sess := GetSession(c)

		var q dto.LangQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			logger.Debug("unsupported language requested",
				zap.String("lang", q.Lang),
				zap.Error(err),
			)
			q.Lang = i18n.LangEn
		}
		query := q.Lang

		var (
			country string
			geoErr  error
		)
		if query == "" && sess.Lang == "" {
			ip := geoip.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)
			loc, err := locator.Lookup(ip)
			if err != nil {
				logger.Debug("geo lookup failed", zap.String("ip", ip), zap.Error(err))
				geoErr = err
			}
			country = loc.Country
		}

		lang, persist := i18n.Resolve(query, sess.Lang, country, geoErr)
		if persist {
			sess.Lang = lang
			_ = SaveSession(c)
		}

		c.Set(ContextKeyLang, lang)
		c.Next()
	}
}

// GetLang language resolved for the request, English when unset
func GetLang(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyLang); ok {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return i18n.LangEn
}
