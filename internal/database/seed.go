package database

import (
	"context"
	"fmt"

	"ouma-web/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultAdminPassword password of the seeded admin account
const DefaultAdminPassword = "admin123"

// Seed fills an empty database with the initial site content.
// Each table is seeded only when it has no rows.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	tx := db.WithContext(ctx)

	// =========================================================================
	// 1. Contact info
	// =========================================================================
	var count int64
	if err := tx.Model(&models.SiteConfig{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count site configs: %w", err)
	}
	if count == 0 {
		contact := models.DefaultContactInfo()
		contact.WhatsApp = ""
		if err := tx.Create(&contact).Error; err != nil {
			return fmt.Errorf("seed site config: %w", err)
		}
		log.Info("site config seeded")
	}

	// =========================================================================
	// 2. Categories
	// =========================================================================
	if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count == 0 {
		categories := models.DefaultCategories()
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		log.Info("categories seeded", zap.Int("count", len(categories)))
	}

	// =========================================================================
	// 3. Sample products
	// =========================================================================
	if err := tx.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		products := models.DefaultProducts()
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		log.Info("products seeded", zap.Int("count", len(products)))
	}

	// =========================================================================
	// 4. Admin account
	// =========================================================================
	if err := tx.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count admin users: %w", err)
	}
	if count == 0 {
		admin := &models.AdminUser{Username: models.DefaultAdminUsername}
		if err := admin.SetPassword(DefaultAdminPassword); err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		log.Info("admin user seeded", zap.String("username", admin.Username))
	}

	return nil
}

// SampleAccessLogs demo page views for the dashboard
func SampleAccessLogs() []models.AccessLog {
	return []models.AccessLog{
		{IP: "1.1.1.1", Country: "CN", City: "Beijing", Path: "/", Method: "GET"},
		{IP: "1.1.1.1", Country: "CN", City: "Beijing", Path: "/products", Method: "GET"},
		{IP: "2.2.2.2", Country: "US", City: "New York", Path: "/", Method: "GET"},
		{IP: "2.2.2.2", Country: "US", City: "New York", Path: "/contact", Method: "GET"},
		{IP: "3.3.3.3", Country: "DE", City: "Berlin", Path: "/", Method: "GET"},
		{IP: "4.4.4.4", Country: "JP", City: "Tokyo", Path: "/", Method: "GET"},
		{IP: "5.5.5.5", Country: "CN", City: "Shanghai", Path: "/", Method: "GET"},
		{IP: "5.5.5.5", Country: "CN", City: "Shanghai", Path: "/about", Method: "GET"},
	}
}
