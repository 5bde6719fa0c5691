package models

import (
	"time"

	"gorm.io/gorm"
)

// AccessLog is one recorded public page view. Rows are append only.
type AccessLog struct {
	BaseModel

	IP        string    `gorm:"column:ip;size:64" json:"ip"`
	Country   string    `gorm:"size:8;index" json:"country"`
	City      string    `gorm:"size:255" json:"city"`
	Path      string    `gorm:"size:1000" json:"path"`
	Method    string    `gorm:"size:10" json:"method"`
	UserAgent string    `gorm:"column:user_agent;size:1000" json:"user_agent"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

// TableName returns the table name
func (AccessLog) TableName() string {
	return "access_logs"
}

// BeforeCreate stamps the log entry
func (l *AccessLog) BeforeCreate(tx *gorm.DB) error {
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return nil
}

// CountryCount visitors per country, used by the dashboard
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}
