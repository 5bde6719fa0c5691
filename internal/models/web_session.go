package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebSession server-side state of one browser. The browser only holds a
// signed token carrying the session ID.
type WebSession struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Lang resolved UI language, "zh" or "en"
	Lang string `gorm:"size:8" json:"lang"`

	// ChatSessionID inquiry chat opened from this browser
	ChatSessionID *uint `json:"chat_session_id,omitempty"`

	IsAuthenticated bool `gorm:"default:false" json:"is_authenticated"`

	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name
func (WebSession) TableName() string {
	return "web_sessions"
}

// BeforeCreate generates the session ID
func (s *WebSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsExpired checks whether the session is past its expiry
func (s *WebSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
