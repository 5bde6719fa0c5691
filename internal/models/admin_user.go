package models

import (
	"golang.org/x/crypto/bcrypt"
)

// ===========================================================================
// AdminUser
// The back office account. There is one meaningful admin, seeded as "admin".
// ===========================================================================

// DefaultAdminUsername username of the seeded admin account
const DefaultAdminUsername = "admin"

// AdminUser back office login
type AdminUser struct {
	BaseModel

	// Username unique login name
	Username string `gorm:"size:255;not null;uniqueIndex" json:"username"`

	// PasswordHash bcrypt hash (never serialized)
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
}

// TableName returns the table name
func (AdminUser) TableName() string {
	return "admin_users"
}

// SetPassword hashes and stores the password
func (u *AdminUser) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *AdminUser) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
