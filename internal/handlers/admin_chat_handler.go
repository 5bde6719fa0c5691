package handlers

import (
	"fmt"
	"net/http"

	"ouma-web/internal/dto"
	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/models"
	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Admin Chat Handler
// Inquiry inbox: session list, one conversation and admin replies
// ===========================================================================

// AdminChatHandler admin side of the inquiry chat
type AdminChatHandler struct {
	chat   services.ChatService
	logger *zap.Logger
}

// NewAdminChatHandler creates an AdminChatHandler
func NewAdminChatHandler(chat services.ChatService, logger *zap.Logger) *AdminChatHandler {
	return &AdminChatHandler{
		chat:   chat,
		logger: logger,
	}
}

// RegisterRoutes registers the inbox routes on the protected /admin group
func (h *AdminChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chat", h.List)
	rg.GET("/chat/:id", h.View)
	rg.POST("/chat/:id/message", h.Reply)
}

// List all inquiries, newest first
// GET /admin/chat
func (h *AdminChatHandler) List(c *gin.Context) {
	sessions, err := h.chat.ListSessions(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "admin/chat.html", gin.H{
		"Sessions": sessions,
		"Current":  nil,
		"Messages": []models.ChatMessage{},
	})
}

// View the inquiry list next to one conversation
// GET /admin/chat/:id
func (h *AdminChatHandler) View(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/chat")
		return
	}

	ctx := c.Request.Context()
	sessions, err := h.chat.ListSessions(ctx)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	detail, err := h.chat.GetSession(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			c.Redirect(http.StatusFound, "/admin/chat")
			return
		}
		renderError(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "admin/chat.html", gin.H{
		"Sessions": sessions,
		"Current":  detail.Session,
		"Messages": detail.Messages,
	})
}

// Reply appends an admin message
// POST /admin/chat/:id/message
func (h *AdminChatHandler) Reply(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/chat")
		return
	}

	var req dto.ChatMessageRequest
	if err := c.ShouldBind(&req); err == nil {
		if err := h.chat.PostAdminMessage(c.Request.Context(), id, req.Content); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/chat/%d", id))
}
