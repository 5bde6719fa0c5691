package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"ouma-web/internal/middleware"
	"ouma-web/internal/pluginmgr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Admin Plugin Handler
// Dependency overview and module maintenance commands. Commands always
// redirect with their flag; failures only show up in the log.
// ===========================================================================

// PluginManager module maintenance operations
type PluginManager interface {
	Overview(ctx context.Context) (*pluginmgr.Overview, error)
	UpdateAll(ctx context.Context) error
	UpdateOne(ctx context.Context, path string) error
	AuditFix(ctx context.Context) error
}

// AdminPluginHandler plugins page
type AdminPluginHandler struct {
	manager PluginManager
	logger  *zap.Logger
}

// NewAdminPluginHandler creates an AdminPluginHandler
func NewAdminPluginHandler(manager PluginManager, logger *zap.Logger) *AdminPluginHandler {
	return &AdminPluginHandler{
		manager: manager,
		logger:  logger,
	}
}

// RegisterRoutes registers the plugin routes on the protected /admin group
func (h *AdminPluginHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plugins := rg.Group("/plugins")
	{
		plugins.GET("", h.Overview)
		plugins.POST("/update-all", h.UpdateAll)
		plugins.POST("/update/*name", h.UpdateOne)
		plugins.POST("/audit-fix", h.AuditFix)
	}
}

// Overview dependencies, outdated modules and vulnerabilities
// GET /admin/plugins
func (h *AdminPluginHandler) Overview(c *gin.Context) {
	data := gin.H{
		"Updated":    c.Query("updated"),
		"Package":    c.Query("pkg"),
		"AuditFixed": c.Query("audit_fixed") == "1",
	}

	overview, err := h.manager.Overview(c.Request.Context())
	if err != nil {
		h.logger.Error("plugin overview failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		data["Error"] = err.Error()
		overview = &pluginmgr.Overview{Dependencies: &pluginmgr.Dependencies{}}
	}
	data["Overview"] = overview

	render(c, http.StatusOK, "admin/plugins.html", data)
}

// UpdateAll POST /admin/plugins/update-all
func (h *AdminPluginHandler) UpdateAll(c *gin.Context) {
	if err := h.manager.UpdateAll(c.Request.Context()); err != nil {
		h.logger.Warn("update all modules failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/admin/plugins?updated=all")
}

// UpdateOne module paths contain slashes, hence the catch-all parameter
// POST /admin/plugins/update/*name
func (h *AdminPluginHandler) UpdateOne(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if err := h.manager.UpdateOne(c.Request.Context(), name); err != nil {
		h.logger.Warn("update module failed", zap.String("module", name), zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/admin/plugins?updated=one&pkg="+url.QueryEscape(name))
}

// AuditFix POST /admin/plugins/audit-fix
func (h *AdminPluginHandler) AuditFix(c *gin.Context) {
	if err := h.manager.AuditFix(c.Request.Context()); err != nil {
		h.logger.Warn("audit fix failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/admin/plugins?audit_fixed=1")
}
