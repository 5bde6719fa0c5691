package services

import (
	"context"

	"ouma-web/internal/models"
)

// ===========================================================================
// Catalog Service Interface
// Products, categories and product images, for the public site and admin
// ===========================================================================

// ProductInput form values of the product add/edit pages.
// Media fields hold public paths of files already stored by the media store.
type ProductInput struct {
	Name        string
	Category    string
	Description string
	Features    string

	NameEn        string
	CategoryEn    string
	DescriptionEn string
	FeaturesEn    string

	// VideoURL nil when the form did not send the field
	VideoURL *string

	ImagePath         string
	VideoPath         string
	ManualPath        string
	GalleryPaths      []string
	FeaturePhotoPaths []string
}

// ProductDetail a product with its images split by role
type ProductDetail struct {
	Product       *models.Product
	MainImages    []models.ProductImage
	GalleryImages []models.ProductImage
}

// ProductListing public product list with per-category counts
type ProductListing struct {
	Products         []models.Product
	Categories       []models.CategoryStat
	SelectedCategory string
}

// CatalogService catalog operations
type CatalogService interface {
	// FeaturedProducts first n products
	FeaturedProducts(ctx context.Context, n int) ([]models.Product, error)

	// ListProducts public listing, category matches category or category_en
	ListProducts(ctx context.Context, category string) (*ProductListing, error)

	// GetProduct product with main and gallery images
	GetProduct(ctx context.Context, id uint) (*ProductDetail, error)

	// AdminProducts all products, newest first
	AdminProducts(ctx context.Context) ([]models.Product, error)

	// CreateProduct creates a product, filling blank English fields
	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)

	// UpdateProduct edits a product and reconciles its main image
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error)

	// DeleteProduct deletes a product and its image rows
	DeleteProduct(ctx context.Context, id uint) error

	// DeleteProductImage deletes one image row and returns it
	DeleteProductImage(ctx context.Context, id uint) (*models.ProductImage, error)

	// ListCategories all categories
	ListCategories(ctx context.Context) ([]models.Category, error)

	// CreateCategory adds a category
	CreateCategory(ctx context.Context, name, nameEn string) (*models.Category, error)

	// UpdateCategory renames a category
	UpdateCategory(ctx context.Context, id uint, name, nameEn string) error

	// DeleteCategory removes a category, products keep their category text
	DeleteCategory(ctx context.Context, id uint) error
}

// TextTranslator translates native text to English, never failing
type TextTranslator interface {
	ToTarget(ctx context.Context, text string) string
}
