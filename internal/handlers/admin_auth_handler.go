package handlers

import (
	"net/http"

	"ouma-web/internal/dto"
	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/middleware"
	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Admin Auth Handler
// Login, logout and the account page. Authentication is a flag on the
// server-side web session.
// ===========================================================================

const (
	adminDashboardPath = "/admin/dashboard"

	// loginFailedMessage deliberately does not say which field was wrong
	loginFailedMessage = "Invalid credentials"
)

// AdminAuthHandler admin authentication endpoints
type AdminAuthHandler struct {
	authService services.AuthService
	logger      *zap.Logger
}

// NewAdminAuthHandler creates an AdminAuthHandler
func NewAdminAuthHandler(authService services.AuthService, logger *zap.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth routes on the /admin group.
// Login stays public, everything else goes through requireAdmin.
func (h *AdminAuthHandler) RegisterRoutes(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.Root)
	rg.GET("/login", h.LoginPage)
	rg.POST("/login", h.Login)

	protected := rg.Group("", requireAdmin)
	{
		protected.GET("/logout", h.Logout)
		protected.GET("/account", h.AccountPage)
		protected.POST("/account", h.UpdateAccount)
	}
}

// Root sends the admin to the dashboard or the login page
// GET /admin
func (h *AdminAuthHandler) Root(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, adminDashboardPath)
		return
	}
	c.Redirect(http.StatusFound, middleware.AdminLoginPath)
}

// LoginPage renders the login form
// GET /admin/login
func (h *AdminAuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "admin/login.html", nil)
}

// Login verifies the credentials and marks the session authenticated
// POST /admin/login
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			h.logger.Info("admin login rejected", zap.String("username", req.Username))
			h.loginFailed(c)
			return
		}
		renderError(c, h.logger, err)
		return
	}

	sess := middleware.GetSession(c)
	sess.IsAuthenticated = true
	if err := middleware.SaveSession(c); err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.logger.Info("admin logged in", zap.String("username", user.Username))
	c.Redirect(http.StatusFound, adminDashboardPath)
}

func (h *AdminAuthHandler) loginFailed(c *gin.Context) {
	render(c, http.StatusOK, "admin/login.html", gin.H{
		"Error": loginFailedMessage,
	})
}

// Logout destroys the session and returns to the home page
// GET /admin/logout
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	if err := middleware.DestroySession(c); err != nil {
		h.logger.Warn("destroy session failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
	}
	c.Redirect(http.StatusFound, "/")
}

// AccountPage shows the admin account
// GET /admin/account
func (h *AdminAuthHandler) AccountPage(c *gin.Context) {
	h.renderAccount(c, http.StatusOK, "")
}

// UpdateAccount changes username and/or password
// POST /admin/account
func (h *AdminAuthHandler) UpdateAccount(c *gin.Context) {
	var in services.AccountUpdate
	if err := c.ShouldBind(&in); err != nil {
		h.renderAccount(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.authService.UpdateAccount(c.Request.Context(), in); err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) || apperrors.Is(err, apperrors.ErrDuplicateEntry) {
			h.renderAccount(c, http.StatusBadRequest, err.Error())
			return
		}
		renderError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/account")
}

func (h *AdminAuthHandler) renderAccount(c *gin.Context, status int, errMsg string) {
	user, err := h.authService.Account(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, status, "admin/account.html", gin.H{
		"User":  user,
		"Error": errMsg,
	})
}
