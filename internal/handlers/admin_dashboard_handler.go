package handlers

import (
	"io"
	"net/http"

	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminDashboardHandler dashboard and access log export
type AdminDashboardHandler struct {
	analytics services.AnalyticsService
	logger    *zap.Logger
}

// NewAdminDashboardHandler creates an AdminDashboardHandler
func NewAdminDashboardHandler(analytics services.AnalyticsService, logger *zap.Logger) *AdminDashboardHandler {
	return &AdminDashboardHandler{
		analytics: analytics,
		logger:    logger,
	}
}

// RegisterRoutes registers the dashboard routes on the protected /admin group
func (h *AdminDashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/logs/export", h.ExportLogs)
}

// Dashboard products, visitor map, recent logs and host figures
// GET /admin/dashboard
func (h *AdminDashboardHandler) Dashboard(c *gin.Context) {
	dash, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "admin/dashboard.html", gin.H{
		"Dashboard": dash,
	})
}

// ExportLogs downloads every access log as xlsx
// GET /admin/logs/export
func (h *AdminDashboardHandler) ExportLogs(c *gin.Context) {
	err := sendWorkbook(c, "access_logs.xlsx", func(w io.Writer) error {
		return h.analytics.ExportAccessLogs(c.Request.Context(), w)
	})
	if err != nil {
		renderError(c, h.logger, err)
	}
}
