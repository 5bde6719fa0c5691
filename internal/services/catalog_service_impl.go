package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/models"
	"ouma-web/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Catalog Service Implementation
// ===========================================================================

type catalogServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	imageRepo    repositories.ProductImageRepository
	translator   TextTranslator
	logger       *zap.Logger
}

// NewCatalogService creates a CatalogService
func NewCatalogService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	imageRepo repositories.ProductImageRepository,
	translator TextTranslator,
	logger *zap.Logger,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		translator:   translator,
		logger:       logger,
	}
}

// FeaturedProducts first n products in insertion order
func (s *catalogServiceImpl) FeaturedProducts(ctx context.Context, n int) ([]models.Product, error) {
	products, err := s.productRepo.List(ctx, repositories.FindOptions{
		Limit:    n,
		OrderBy:  "id",
		OrderDir: "asc",
	})
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	return products, nil
}

// ListProducts public listing with category counts
func (s *catalogServiceImpl) ListProducts(ctx context.Context, category string) (*ProductListing, error) {
	var (
		products []models.Product
		err      error
	)
	if category != "" {
		products, err = s.productRepo.FindByCategory(ctx, category)
	} else {
		products, err = s.productRepo.List(ctx, repositories.FindOptions{OrderBy: "id", OrderDir: "asc"})
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	stats := make([]models.CategoryStat, 0, len(categories))
	for _, cat := range categories {
		count, err := s.productRepo.CountByCategory(ctx, cat.Name)
		if err != nil {
			return nil, fmt.Errorf("count category %s: %w", cat.Name, err)
		}
		stats = append(stats, models.CategoryStat{Name: cat.Name, NameEn: cat.NameEn, Count: count})
	}

	return &ProductListing{
		Products:         products,
		Categories:       stats,
		SelectedCategory: category,
	}, nil
}

// GetProduct product with its images
func (s *catalogServiceImpl) GetProduct(ctx context.Context, id uint) (*ProductDetail, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "find product")
	}

	mains, err := s.imageRepo.FindByProduct(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("find main images: %w", err)
	}
	gallery, err := s.imageRepo.FindByProduct(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("find gallery images: %w", err)
	}

	return &ProductDetail{Product: product, MainImages: mains, GalleryImages: gallery}, nil
}

// AdminProducts newest first
func (s *catalogServiceImpl) AdminProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.List(ctx, repositories.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// CreateProduct blank English fields are translated from the native ones
func (s *catalogServiceImpl) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		NameEn:        s.english(ctx, in.NameEn, in.Name, ""),
		DescriptionEn: s.english(ctx, in.DescriptionEn, in.Description, ""),
		FeaturesEn:    s.english(ctx, in.FeaturesEn, in.Features, ""),
		CategoryEn:    s.categoryEnglish(ctx, in.CategoryEn, in.Category, ""),
		Features:      appendFeaturePhotos(in.Features, in.FeaturePhotoPaths),
		Image:         in.ImagePath,
		Video:         in.VideoPath,
		Manual:        in.ManualPath,
	}
	if in.VideoURL != nil {
		product.VideoURL = *in.VideoURL
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("create product failed", zap.Error(err), zap.String("name", in.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.addImages(ctx, product.ID, in.ImagePath, in.GalleryPaths); err != nil {
		return product, err
	}

	s.logger.Info("product created",
		zap.Uint("product_id", product.ID),
		zap.Int("gallery", len(in.GalleryPaths)),
	)
	return product, nil
}

// UpdateProduct when both native and English inputs are blank the stored
// English value is kept
func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "find product")
	}

	product.Name = in.Name
	product.Category = in.Category
	product.Description = in.Description
	product.NameEn = s.english(ctx, in.NameEn, in.Name, product.NameEn)
	product.CategoryEn = s.categoryEnglish(ctx, in.CategoryEn, in.Category, product.CategoryEn)
	product.DescriptionEn = s.english(ctx, in.DescriptionEn, in.Description, product.DescriptionEn)
	product.FeaturesEn = s.english(ctx, in.FeaturesEn, in.Features, product.FeaturesEn)
	product.Features = appendFeaturePhotos(in.Features, in.FeaturePhotoPaths)

	if in.ImagePath != "" {
		product.Image = in.ImagePath
	}
	if in.VideoPath != "" {
		product.Video = in.VideoPath
	}
	if in.ManualPath != "" {
		product.Manual = in.ManualPath
	}
	if in.VideoURL != nil {
		product.VideoURL = *in.VideoURL
	}

	if err := s.addImages(ctx, product.ID, in.ImagePath, in.GalleryPaths); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("update product failed", zap.Error(err), zap.Uint("product_id", id))
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.reconcileMainImage(ctx, product)
	return product, nil
}

// reconcileMainImage keeps one main image: the one matching Product.Image,
// else the newest. Failures are logged only.
func (s *catalogServiceImpl) reconcileMainImage(ctx context.Context, product *models.Product) {
	mains, err := s.imageRepo.FindByProduct(ctx, product.ID, true)
	if err != nil {
		s.logger.Error("cleanup main images failed", zap.Uint("product_id", product.ID), zap.Error(err))
		return
	}
	if len(mains) <= 1 {
		return
	}

	keep := mains[0].ID
	for _, img := range mains {
		if img.Image == product.Image {
			keep = img.ID
			break
		}
	}

	for _, img := range mains {
		if img.ID == keep {
			continue
		}
		if err := s.imageRepo.Delete(ctx, img.ID); err != nil {
			s.logger.Error("delete stale main image failed",
				zap.Uint("product_id", product.ID),
				zap.Uint("image_id", img.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *catalogServiceImpl) addImages(ctx context.Context, productID uint, mainPath string, gallery []string) error {
	if mainPath != "" {
		if err := s.imageRepo.Create(ctx, &models.ProductImage{ProductID: productID, Image: mainPath, IsMain: true}); err != nil {
			return fmt.Errorf("create main image: %w", err)
		}
	}
	for _, p := range gallery {
		if err := s.imageRepo.Create(ctx, &models.ProductImage{ProductID: productID, Image: p}); err != nil {
			return fmt.Errorf("create gallery image: %w", err)
		}
	}
	return nil
}

// DeleteProduct removes the image rows first, then the product
func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return apperrors.FromDB(err, "find product")
	}
	if err := s.imageRepo.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product images: %w", err)
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.logger.Info("product deleted", zap.Uint("product_id", id))
	return nil
}

func (s *catalogServiceImpl) DeleteProductImage(ctx context.Context, id uint) (*models.ProductImage, error) {
	img, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "find product image")
	}
	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete product image: %w", err)
	}
	return img, nil
}

// ===========================================================================
// Categories
// ===========================================================================

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, name, nameEn string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "category name is required")
	}
	cat := &models.Category{Name: name, NameEn: strings.TrimSpace(nameEn)}
	if cat.NameEn == "" {
		cat.NameEn = s.translator.ToTarget(ctx, name)
	}
	if err := s.categoryRepo.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, id uint, name, nameEn string) error {
	cat, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return apperrors.FromDB(err, "find category")
	}
	cat.Name = name
	cat.NameEn = nameEn
	return s.categoryRepo.Update(ctx, cat)
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

// ===========================================================================
// Helpers
// ===========================================================================

// english explicit input wins, then a translation of the native text, then prev
func (s *catalogServiceImpl) english(ctx context.Context, explicit, native, prev string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	if strings.TrimSpace(native) != "" {
		return s.translator.ToTarget(ctx, native)
	}
	return prev
}

// categoryEnglish reuses the English name of a category with the same native name
func (s *catalogServiceImpl) categoryEnglish(ctx context.Context, explicit, native, prev string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	if strings.TrimSpace(native) == "" {
		return prev
	}
	cat, err := s.categoryRepo.FindByName(ctx, native)
	if err == nil && cat.NameEn != "" {
		return cat.NameEn
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("category lookup failed", zap.String("category", native), zap.Error(err))
	}
	return s.translator.ToTarget(ctx, native)
}

func appendFeaturePhotos(features string, photos []string) string {
	if len(photos) == 0 {
		return features
	}
	var sb strings.Builder
	sb.WriteString(features)
	for _, p := range photos {
		fmt.Fprintf(&sb, models.FeaturePhotoHTML, p)
	}
	return sb.String()
}
