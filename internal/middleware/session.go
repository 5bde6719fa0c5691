package middleware

import (
	"net/http"

	"ouma-web/internal/auth"
	"ouma-web/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Session Middleware
// Loads the server-side WebSession named by the signed cookie. A visitor
// without a valid cookie gets a fresh, unsaved session; it is persisted the
// first time a handler calls SaveSession.
// ===========================================================================

// ContextKeySession gin context key of *models.WebSession
const ContextKeySession = "web_session"

// CookieOptions session cookie attributes
type CookieOptions struct {
	Name   string
	Secure bool
}

// sessionManager is stored in the context so SaveSession can reach it
type sessionManager struct {
	store  *auth.SessionStore
	cookie CookieOptions
	logger *zap.Logger
}

const contextKeySessionManager = "web_session_manager"

// Session loads the visitor's WebSession
func Session(store *auth.SessionStore, cookie CookieOptions, logger *zap.Logger) gin.HandlerFunc {
	mgr := &sessionManager{store: store, cookie: cookie, logger: logger}

	return func(c *gin.Context) {
		var sess *models.WebSession

		if token, err := c.Cookie(cookie.Name); err == nil && token != "" {
			loaded, err := store.Load(c.Request.Context(), token)
			switch err {
			case nil:
				sess = loaded
			case auth.ErrInvalidToken, auth.ErrExpiredToken:
				logger.Debug("discarding session cookie", zap.Error(err))
			default:
				logger.Error("load session failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			}
		}
		if sess == nil {
			sess = store.New()
		}

		c.Set(ContextKeySession, sess)
		c.Set(contextKeySessionManager, mgr)
		c.Next()
	}
}

// GetSession returns the request's WebSession, never nil after Session ran
func GetSession(c *gin.Context) *models.WebSession {
	if v, ok := c.Get(ContextKeySession); ok {
		if sess, ok := v.(*models.WebSession); ok {
			return sess
		}
	}
	return &models.WebSession{}
}

// SaveSession persists the session and refreshes the cookie.
// Must be called before the response body is written.
func SaveSession(c *gin.Context) error {
	v, ok := c.Get(contextKeySessionManager)
	if !ok {
		return nil
	}
	mgr := v.(*sessionManager)
	sess := GetSession(c)

	token, err := mgr.store.Save(c.Request.Context(), sess)
	if err != nil {
		mgr.logger.Error("save session failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
		return err
	}
	mgr.setCookie(c, token, int(mgr.store.Duration().Seconds()))
	return nil
}

// DestroySession deletes the session row and expires the cookie
func DestroySession(c *gin.Context) error {
	v, ok := c.Get(contextKeySessionManager)
	if !ok {
		return nil
	}
	mgr := v.(*sessionManager)
	sess := GetSession(c)

	err := mgr.store.Destroy(c.Request.Context(), sess)
	mgr.setCookie(c, "", -1)
	c.Set(ContextKeySession, mgr.store.New())
	return err
}

func (m *sessionManager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, value, maxAge, "/", "", m.cookie.Secure, true)
}
