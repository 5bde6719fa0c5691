package repositories

import (
	"context"
	"time"

	"ouma-web/internal/models"

	"gorm.io/gorm"
)

// ===========================================================================
// Admin User + Web Session Repository Implementations
// (interfaces defined in interfaces.go)
// ===========================================================================

type adminUserRepo struct {
	db *gorm.DB
}

// NewAdminUserRepository creates an admin user repository
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepo{db: db}
}

// FindByUsername finds the admin account for login
func (r *adminUserRepo) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindFirst returns the oldest admin account
func (r *adminUserRepo) FindFirst(ctx context.Context) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.WithContext(ctx).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts an admin account
func (r *adminUserRepo) Create(ctx context.Context, user *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update saves an admin account
func (r *adminUserRepo) Update(ctx context.Context, user *models.AdminUser) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ---------------------------------------------------------------------------

type webSessionRepo struct {
	db *gorm.DB
}

// NewWebSessionRepository creates a web session repository
func NewWebSessionRepository(db *gorm.DB) WebSessionRepository {
	return &webSessionRepo{db: db}
}

func (r *webSessionRepo) FindByID(ctx context.Context, id string) (*models.WebSession, error) {
	var session models.WebSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *webSessionRepo) Create(ctx context.Context, session *models.WebSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *webSessionRepo) Update(ctx context.Context, session *models.WebSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *webSessionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.WebSession{}, "id = ?", id).Error
}

func (r *webSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.WebSession{})
	return result.RowsAffected, result.Error
}
