package services

import (
	"context"

	"ouma-web/internal/models"
)

// ===========================================================================
// Auth Service Interface
// Admin login and account management. Session state lives in the web
// session; this service only verifies and edits the account.
// ===========================================================================

// AccountUpdate account page form, blank fields are left unchanged
type AccountUpdate struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// AuthService interface for authentication operations
type AuthService interface {
	// Login verifies username and password.
	// Unknown user and wrong password both give ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*models.AdminUser, error)

	// Account returns the admin account, nil when none exists
	Account(ctx context.Context) (*models.AdminUser, error)

	// UpdateAccount edits the admin account in place, creating it when missing
	UpdateAccount(ctx context.Context, in AccountUpdate) (*models.AdminUser, error)
}
