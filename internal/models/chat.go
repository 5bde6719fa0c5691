package models

import (
	"time"

	"gorm.io/gorm"
)

// ===========================================================================
// Inquiry chat: ChatSession and ChatMessage
// A visitor opens a session (or submits the contact form), then visitor and
// admin exchange messages. The page polls for new messages.
// ===========================================================================

// ChatStatus session status. Only "open" is ever assigned.
type ChatStatus string

const (
	ChatStatusOpen ChatStatus = "open"
)

// ChatSender who wrote a message
type ChatSender string

const (
	SenderVisitor ChatSender = "visitor"
	SenderAdmin   ChatSender = "admin"
)

// ChatSession is one visitor inquiry
type ChatSession struct {
	BaseModel

	Company           string     `gorm:"size:255" json:"company"`
	InterestedProduct string     `gorm:"column:interested_product;size:255" json:"interested_product"`
	Phone             string     `gorm:"size:100" json:"phone"`
	Email             string     `gorm:"size:255" json:"email"`
	Status            ChatStatus `gorm:"size:20;default:'open'" json:"status"`
	StartedAt         time.Time  `gorm:"index" json:"started_at"`

	// Relations
	Messages []ChatMessage `gorm:"foreignKey:SessionID" json:"messages,omitempty"`
}

// TableName returns the table name
func (ChatSession) TableName() string {
	return "chat_sessions"
}

// BeforeCreate fills status and start time
func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = ChatStatusOpen
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now()
	}
	return nil
}

// ChatMessage is one message of a session
type ChatMessage struct {
	BaseModel

	SessionID uint       `gorm:"not null;index" json:"sessionId"`
	Sender    ChatSender `gorm:"size:20;not null" json:"sender"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time  `gorm:"index" json:"timestamp"`
}

// TableName returns the table name
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// BeforeCreate stamps the message
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return nil
}

// IsFromVisitor checks if the visitor wrote the message
func (m *ChatMessage) IsFromVisitor() bool {
	return m.Sender == SenderVisitor
}
