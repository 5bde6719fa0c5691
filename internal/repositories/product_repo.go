package repositories

import (
	"context"

	"ouma-web/internal/models"

	"gorm.io/gorm"
)

// ===========================================================================
// Product Repository Implementation
// (interface defined in interfaces.go)
// ===========================================================================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

// FindByID finds a product by ID
func (r *productRepo) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List lists products with ordering and optional limit
func (r *productRepo) List(ctx context.Context, opts FindOptions) ([]models.Product, error) {
	opts.SetDefaults()

	var products []models.Product
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}

	if err := query.Order(opts.GetOrderClause()).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory matches either the native or the English category name
func (r *productRepo) FindByCategory(ctx context.Context, name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category = ? OR category_en = ?", name, name).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CountByCategory counts products filed under the native category name
func (r *productRepo) CountByCategory(ctx context.Context, name string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category = ?", name).
		Count(&total).Error
	return total, err
}

// Create inserts a product
func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update saves all product fields
func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete hard deletes a product row
func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}
