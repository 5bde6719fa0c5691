package handlers

import (
	"context"
	"net/http"
	"time"

	"ouma-web/internal/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler liveness probe with a database ping
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes registers GET /health
func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)
}

// Health reports "ok" or "degraded" when the database does not answer
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", DB: "error"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", DB: "online"})
}
