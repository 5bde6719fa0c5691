package handlers

import (
	"net/http"

	"ouma-web/internal/dto"
	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/middleware"
	"ouma-web/internal/models"
	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Chat Handler
// JSON endpoints polled by the chat widget. The inquiry id lives in the
// visitor's web session, never in the request.
// ===========================================================================

// ChatHandler visitor side of the inquiry chat
type ChatHandler struct {
	chat   services.ChatService
	logger *zap.Logger
}

// NewChatHandler creates a ChatHandler
func NewChatHandler(chat services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

// RegisterRoutes registers the chat endpoints under rg (mounted at /chat)
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/start", h.Start)
	rg.GET("/messages", h.Messages)
	rg.POST("/message", h.PostMessage)
}

// Start opens an inquiry and binds it to the session
// POST /chat/start
func (h *ChatHandler) Start(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var in services.StartChatInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, dto.OKResponse{OK: false})
		return
	}

	session, err := h.chat.StartSession(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("start chat failed", zap.String("request_id", requestID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.OKResponse{OK: false})
		return
	}

	sess := middleware.GetSession(c)
	sess.ChatSessionID = &session.ID
	if err := middleware.SaveSession(c); err != nil {
		c.JSON(http.StatusInternalServerError, dto.OKResponse{OK: false})
		return
	}

	c.JSON(http.StatusOK, dto.ChatStartResponse{OK: true, SessionID: session.ID})
}

// Messages lists the messages of the session's inquiry
// GET /chat/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	sess := middleware.GetSession(c)

	messages, err := h.chat.ListMessages(c.Request.Context(), sess.ChatSessionID)
	if err != nil {
		h.logger.Error("list chat messages failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.OKResponse{OK: false})
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	c.JSON(http.StatusOK, dto.ChatMessagesResponse{OK: true, Messages: messages})
}

// PostMessage appends a visitor message. Without an inquiry or content the
// answer is {"ok":false} with status 200.
// POST /chat/message
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req dto.ChatMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusOK, dto.OKResponse{OK: false})
		return
	}

	sess := middleware.GetSession(c)
	_, err := h.chat.PostVisitorMessage(c.Request.Context(), sess.ChatSessionID, req.Content)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.OKResponse{OK: true})
	case apperrors.Is(err, apperrors.ErrNoChatSession), apperrors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusOK, dto.OKResponse{OK: false})
	default:
		h.logger.Error("post chat message failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.OKResponse{OK: false})
	}
}
