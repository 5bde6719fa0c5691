package models

import (
	"time"
)

// ===========================================================================
// BaseModel
// Common columns: auto-increment ID and timestamps.
// Deletes are hard deletes, so there is no DeletedAt column.
// ===========================================================================

// BaseModel contains the fields shared by every catalog/content model
type BaseModel struct {
	// ID auto-increment primary key
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// CreatedAt record creation time
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt last update time
	UpdatedAt time.Time `json:"updated_at"`
}
