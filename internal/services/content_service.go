package services

import (
	"context"

	"ouma-web/internal/media"
	"ouma-web/internal/models"
)

// ===========================================================================
// Content Service Interface
// Site config pages, carousel slides and support resources
// ===========================================================================

// SupportInput form values of the support resource page
type SupportInput struct {
	Type          models.ResourceType
	TitleZh       string
	TitleEn       string
	DescriptionZh string
	DescriptionEn string
	File          *media.StoredFile
}

// SiteContent the three config records injected into every page
type SiteContent struct {
	Contact  models.SiteConfig
	About    models.SiteConfig
	Services models.SiteConfig
}

// ContentService content operations
type ContentService interface {
	// Config returns the stored record for key, or its defaults when missing
	Config(ctx context.Context, key string) (models.SiteConfig, error)

	// SiteContent loads contact, about and services records with defaults
	SiteContent(ctx context.Context) SiteContent

	// StoredConfig returns the stored record, empty (with Key set) when missing
	StoredConfig(ctx context.Context, key string) (models.SiteConfig, error)

	// UpdateConfig overwrites the fields owned by key with values from update
	UpdateConfig(ctx context.Context, key string, update models.SiteConfig) error

	// Carousel slides, newest first, limit 0 for all
	Carousel(ctx context.Context, limit int) ([]models.CarouselImage, error)

	// CarouselItem one slide
	CarouselItem(ctx context.Context, id uint) (*models.CarouselImage, error)

	// AddCarouselImages creates one slide per file, resizing each first
	AddCarouselImages(ctx context.Context, files []*media.StoredFile, title, caption string, opts media.ResizeOptions) error

	// UpdateCarouselItem updates title/caption and resizes the stored image
	UpdateCarouselItem(ctx context.Context, id uint, title, caption string, opts media.ResizeOptions) error

	// DeleteCarouselItem removes a slide
	DeleteCarouselItem(ctx context.Context, id uint) error

	// SupportResources newest first
	SupportResources(ctx context.Context) ([]models.SupportResource, error)

	// AddSupportResource creates a manual or video entry
	AddSupportResource(ctx context.Context, in SupportInput) (*models.SupportResource, error)

	// DeleteSupportResource removes a resource
	DeleteSupportResource(ctx context.Context, id uint) error
}
