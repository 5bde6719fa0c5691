package repositories

import (
	"context"
	"time"

	"ouma-web/internal/models"
)

// ===========================================================================
// Catalog Repository Interfaces
// ===========================================================================

// ProductRepository product data access
type ProductRepository interface {
	Repository[models.Product]

	// List lists products ordered by opts, optionally limited
	List(ctx context.Context, opts FindOptions) ([]models.Product, error)

	// FindByCategory products whose category or category_en equals name
	FindByCategory(ctx context.Context, name string) ([]models.Product, error)

	// CountByCategory number of products with category == name
	CountByCategory(ctx context.Context, name string) (int64, error)
}

// CategoryRepository category data access
type CategoryRepository interface {
	Repository[models.Category]

	// FindAll lists categories in insertion order
	FindAll(ctx context.Context) ([]models.Category, error)

	// FindByName finds the first category with the given native name
	FindByName(ctx context.Context, name string) (*models.Category, error)
}

// ProductImageRepository product image data access
type ProductImageRepository interface {
	// FindByProduct lists a product's images with the given main flag, newest first
	FindByProduct(ctx context.Context, productID uint, isMain bool) ([]models.ProductImage, error)

	// FindByID finds an image by ID
	FindByID(ctx context.Context, id uint) (*models.ProductImage, error)

	// Create inserts an image row
	Create(ctx context.Context, image *models.ProductImage) error

	// Delete hard deletes one image row
	Delete(ctx context.Context, id uint) error

	// DeleteByProduct removes every image row of a product
	DeleteByProduct(ctx context.Context, productID uint) error
}

// ===========================================================================
// Content Repository Interfaces
// ===========================================================================

// CarouselRepository carousel image data access
type CarouselRepository interface {
	Repository[models.CarouselImage]

	// FindLatest newest first, limit 0 returns all
	FindLatest(ctx context.Context, limit int) ([]models.CarouselImage, error)
}

// SiteConfigRepository keyed site content data access
type SiteConfigRepository interface {
	// FindByKey returns ErrRecordNotFound when the key has no row
	FindByKey(ctx context.Context, key string) (*models.SiteConfig, error)

	// Save creates or updates the row identified by cfg.Key
	Save(ctx context.Context, cfg *models.SiteConfig) error
}

// SupportResourceRepository support resource data access
type SupportResourceRepository interface {
	// FindAll newest first
	FindAll(ctx context.Context) ([]models.SupportResource, error)

	// Create inserts a resource
	Create(ctx context.Context, resource *models.SupportResource) error

	// Delete hard deletes a resource
	Delete(ctx context.Context, id uint) error
}

// ===========================================================================
// Chat Repository Interface
// ===========================================================================

// ChatRepository inquiry sessions and messages
type ChatRepository interface {
	// CreateSession inserts a session
	CreateSession(ctx context.Context, session *models.ChatSession) error

	// FindSession finds a session by ID
	FindSession(ctx context.Context, id uint) (*models.ChatSession, error)

	// ListSessions all sessions, most recently started first
	ListSessions(ctx context.Context) ([]models.ChatSession, error)

	// CreateMessage inserts a message
	CreateMessage(ctx context.Context, msg *models.ChatMessage) error

	// ListMessages messages of a session in ascending timestamp order
	ListMessages(ctx context.Context, sessionID uint) ([]models.ChatMessage, error)
}

// ===========================================================================
// Analytics Repository Interface
// ===========================================================================

// AccessLogRepository page view data access
type AccessLogRepository interface {
	// Create appends a log entry
	Create(ctx context.Context, entry *models.AccessLog) error

	// CountByCountry visitors grouped by country
	CountByCountry(ctx context.Context) ([]models.CountryCount, error)

	// Recent newest entries first
	Recent(ctx context.Context, limit int) ([]models.AccessLog, error)

	// Since entries at or after t, newest first
	Since(ctx context.Context, t time.Time) ([]models.AccessLog, error)
}

// ===========================================================================
// Auth Repository Interfaces
// ===========================================================================

// AdminUserRepository admin account data access
type AdminUserRepository interface {
	// FindByUsername finds the account for login
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)

	// FindFirst returns the oldest account
	FindFirst(ctx context.Context) (*models.AdminUser, error)

	// Create inserts an account
	Create(ctx context.Context, user *models.AdminUser) error

	// Update saves an account
	Update(ctx context.Context, user *models.AdminUser) error
}

// WebSessionRepository server-side browser sessions
type WebSessionRepository interface {
	// FindByID finds a session by ID
	FindByID(ctx context.Context, id string) (*models.WebSession, error)

	// Create inserts a session, generating its ID
	Create(ctx context.Context, session *models.WebSession) error

	// Update saves a session
	Update(ctx context.Context, session *models.WebSession) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions that expired before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
