package repositories

import (
	"context"

	"ouma-web/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================================================================
// Content Repositories: carousel, site config, support resources
// ===========================================================================

type carouselRepo struct {
	db *gorm.DB
}

// NewCarouselRepository creates a carousel repository
func NewCarouselRepository(db *gorm.DB) CarouselRepository {
	return &carouselRepo{db: db}
}

func (r *carouselRepo) FindByID(ctx context.Context, id uint) (*models.CarouselImage, error) {
	var item models.CarouselImage
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *carouselRepo) FindLatest(ctx context.Context, limit int) ([]models.CarouselImage, error) {
	var items []models.CarouselImage
	query := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *carouselRepo) Create(ctx context.Context, item *models.CarouselImage) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *carouselRepo) Update(ctx context.Context, item *models.CarouselImage) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *carouselRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.CarouselImage{}, id).Error
}

// ---------------------------------------------------------------------------

type siteConfigRepo struct {
	db *gorm.DB
}

// NewSiteConfigRepository creates a site config repository
func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &siteConfigRepo{db: db}
}

func (r *siteConfigRepo) FindByKey(ctx context.Context, key string) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save upserts on the unique key column, every content column is overwritten
func (r *siteConfigRepo) Save(ctx context.Context, cfg *models.SiteConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(cfg).Error
}

// ---------------------------------------------------------------------------

type supportResourceRepo struct {
	db *gorm.DB
}

// NewSupportResourceRepository creates a support resource repository
func NewSupportResourceRepository(db *gorm.DB) SupportResourceRepository {
	return &supportResourceRepo{db: db}
}

func (r *supportResourceRepo) FindAll(ctx context.Context) ([]models.SupportResource, error) {
	var resources []models.SupportResource
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *supportResourceRepo) Create(ctx context.Context, resource *models.SupportResource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *supportResourceRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SupportResource{}, id).Error
}
