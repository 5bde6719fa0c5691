package services

import (
	"context"

	"ouma-web/internal/models"
)

// ===========================================================================
// Chat Service Interface
// Poll based inquiry chat between visitors and the admin
// ===========================================================================

// StartChatInput visitor details collected before chatting
type StartChatInput struct {
	Company           string `form:"company" json:"company"`
	InterestedProduct string `form:"interested_product" json:"interested_product"`
	Phone             string `form:"phone" json:"phone"`
	Email             string `form:"email" json:"email"`
}

// ContactFormInput the contact page form
type ContactFormInput struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Message string `form:"message"`
}

// ChatSessionDetail a session with its messages
type ChatSessionDetail struct {
	Session  *models.ChatSession
	Messages []models.ChatMessage
}

// ChatService chat operations
type ChatService interface {
	// StartSession opens a new inquiry session
	StartSession(ctx context.Context, in StartChatInput) (*models.ChatSession, error)

	// SubmitContactForm opens a session and stores the form text as its first message
	SubmitContactForm(ctx context.Context, in ContactFormInput) (*models.ChatSession, error)

	// PostVisitorMessage appends a visitor message. A nil session or blank
	// content yields ErrNoChatSession / ErrInvalidInput and writes nothing.
	PostVisitorMessage(ctx context.Context, sessionID *uint, content string) (*models.ChatMessage, error)

	// ListMessages messages of the session, empty without a session
	ListMessages(ctx context.Context, sessionID *uint) ([]models.ChatMessage, error)

	// ListSessions every session, most recently started first
	ListSessions(ctx context.Context) ([]models.ChatSession, error)

	// GetSession one session with its messages
	GetSession(ctx context.Context, id uint) (*ChatSessionDetail, error)

	// PostAdminMessage appends an admin reply; blank content is ignored
	PostAdminMessage(ctx context.Context, sessionID uint, content string) error
}
