package repositories

import (
	"context"

	"ouma-web/internal/models"

	"gorm.io/gorm"
)

type productImageRepo struct {
	db *gorm.DB
}

// NewProductImageRepository creates a product image repository
func NewProductImageRepository(db *gorm.DB) ProductImageRepository {
	return &productImageRepo{db: db}
}

// FindByProduct newest first, the main image reconcile relies on this order
func (r *productImageRepo) FindByProduct(ctx context.Context, productID uint, isMain bool) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_main = ?", productID, isMain).
		Order("id DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *productImageRepo) FindByID(ctx context.Context, id uint) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productImageRepo) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ProductImage{}, id).Error
}

func (r *productImageRepo) DeleteByProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.ProductImage{}).Error
}
