package services

import (
	"context"
	"errors"
	"fmt"

	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/media"
	"ouma-web/internal/models"
	"ouma-web/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Content Service Implementation
// ===========================================================================

type contentServiceImpl struct {
	configRepo   repositories.SiteConfigRepository
	carouselRepo repositories.CarouselRepository
	supportRepo  repositories.SupportResourceRepository
	store        *media.Store
	logger       *zap.Logger
}

// NewContentService creates a ContentService
func NewContentService(
	configRepo repositories.SiteConfigRepository,
	carouselRepo repositories.CarouselRepository,
	supportRepo repositories.SupportResourceRepository,
	store *media.Store,
	logger *zap.Logger,
) ContentService {
	return &contentServiceImpl{
		configRepo:   configRepo,
		carouselRepo: carouselRepo,
		supportRepo:  supportRepo,
		store:        store,
		logger:       logger,
	}
}

// ===========================================================================
// Site config
// ===========================================================================

func defaultConfig(key string) models.SiteConfig {
	switch key {
	case models.ConfigKeyContact:
		return models.DefaultContactInfo()
	case models.ConfigKeyAbout:
		return models.DefaultAboutInfo()
	case models.ConfigKeyServices:
		return models.DefaultServicesInfo()
	default:
		return models.SiteConfig{Key: key}
	}
}

// Config missing rows give defaults; a contact record without WhatsApp gets
// the default number
func (s *contentServiceImpl) Config(ctx context.Context, key string) (models.SiteConfig, error) {
	cfg, err := s.configRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultConfig(key), nil
		}
		return models.SiteConfig{}, fmt.Errorf("load site config %s: %w", key, err)
	}
	if key == models.ConfigKeyContact && cfg.WhatsApp == "" {
		cfg.WhatsApp = models.DefaultWhatsApp
	}
	return *cfg, nil
}

// SiteContent load failures are logged and yield an empty record
func (s *contentServiceImpl) SiteContent(ctx context.Context) SiteContent {
	load := func(key string) models.SiteConfig {
		cfg, err := s.Config(ctx, key)
		if err != nil {
			s.logger.Error("failed to load site config", zap.String("key", key), zap.Error(err))
			return models.SiteConfig{Key: key}
		}
		return cfg
	}
	return SiteContent{
		Contact:  load(models.ConfigKeyContact),
		About:    load(models.ConfigKeyAbout),
		Services: load(models.ConfigKeyServices),
	}
}

func (s *contentServiceImpl) StoredConfig(ctx context.Context, key string) (models.SiteConfig, error) {
	cfg, err := s.configRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SiteConfig{Key: key}, nil
		}
		return models.SiteConfig{}, fmt.Errorf("load site config %s: %w", key, err)
	}
	return *cfg, nil
}

// UpdateConfig only the columns belonging to key are taken from update
func (s *contentServiceImpl) UpdateConfig(ctx context.Context, key string, update models.SiteConfig) error {
	cfg, err := s.StoredConfig(ctx, key)
	if err != nil {
		return err
	}

	switch key {
	case models.ConfigKeyContact:
		cfg.AddressZh = update.AddressZh
		cfg.AddressEn = update.AddressEn
		cfg.Phone = update.Phone
		cfg.Email = update.Email
		cfg.WorkHoursZh = update.WorkHoursZh
		cfg.WorkHoursEn = update.WorkHoursEn
		cfg.WhatsApp = update.WhatsApp
	case models.ConfigKeyAbout:
		cfg.AboutLeadZh = update.AboutLeadZh
		cfg.AboutLeadEn = update.AboutLeadEn
		cfg.AboutDescZh = update.AboutDescZh
		cfg.AboutDescEn = update.AboutDescEn
		cfg.AboutMissionZh = update.AboutMissionZh
		cfg.AboutMissionEn = update.AboutMissionEn
		cfg.AboutStatsExpZh = update.AboutStatsExpZh
		cfg.AboutStatsExpEn = update.AboutStatsExpEn
		cfg.AboutStatsExportZh = update.AboutStatsExportZh
		cfg.AboutStatsExportEn = update.AboutStatsExportEn
		cfg.AboutStatsTeamZh = update.AboutStatsTeamZh
		cfg.AboutStatsTeamEn = update.AboutStatsTeamEn
	case models.ConfigKeyServices:
		cfg.ServicesTitleZh = update.ServicesTitleZh
		cfg.ServicesTitleEn = update.ServicesTitleEn
		cfg.ServicesContentZh = update.ServicesContentZh
		cfg.ServicesContentEn = update.ServicesContentEn
	default:
		return apperrors.New(apperrors.ErrInvalidInput, "unknown site config key")
	}

	if err := s.configRepo.Save(ctx, &cfg); err != nil {
		s.logger.Error("save site config failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("save site config: %w", err)
	}
	s.logger.Info("site config updated", zap.String("key", key))
	return nil
}

// ===========================================================================
// Carousel
// ===========================================================================

func (s *contentServiceImpl) Carousel(ctx context.Context, limit int) ([]models.CarouselImage, error) {
	return s.carouselRepo.FindLatest(ctx, limit)
}

func (s *contentServiceImpl) CarouselItem(ctx context.Context, id uint) (*models.CarouselImage, error) {
	item, err := s.carouselRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "find carousel item")
	}
	return item, nil
}

// AddCarouselImages resize failures are logged, the slide is still created
func (s *contentServiceImpl) AddCarouselImages(ctx context.Context, files []*media.StoredFile, title, caption string, opts media.ResizeOptions) error {
	for _, f := range files {
		if !opts.IsZero() {
			s.resize(ctx, f, opts)
		}
		item := &models.CarouselImage{Image: f.PublicPath, Title: title, Caption: caption}
		if err := s.carouselRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("create carousel item: %w", err)
		}
	}
	return nil
}

func (s *contentServiceImpl) UpdateCarouselItem(ctx context.Context, id uint, title, caption string, opts media.ResizeOptions) error {
	item, err := s.carouselRepo.FindByID(ctx, id)
	if err != nil {
		return apperrors.FromDB(err, "find carousel item")
	}

	item.Title = title
	item.Caption = caption
	if err := s.carouselRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("update carousel item: %w", err)
	}

	if item.Image == "" || opts.IsZero() {
		return nil
	}
	full, err := s.store.Resolve(item.Image)
	if err != nil {
		s.logger.Warn("carousel image path not resolvable", zap.String("image", item.Image), zap.Error(err))
		return nil
	}
	s.resize(ctx, &media.StoredFile{
		Folder:     media.FolderImages,
		Name:       fileName(item.Image),
		PublicPath: item.Image,
		FullPath:   full,
	}, opts)
	return nil
}

func (s *contentServiceImpl) resize(ctx context.Context, f *media.StoredFile, opts media.ResizeOptions) {
	if err := media.Resize(f.FullPath, opts); err != nil {
		s.logger.Error("resize failed", zap.String("path", f.FullPath), zap.Error(err))
		return
	}
	s.store.Mirror(ctx, f)
}

func (s *contentServiceImpl) DeleteCarouselItem(ctx context.Context, id uint) error {
	return s.carouselRepo.Delete(ctx, id)
}

// ===========================================================================
// Support resources
// ===========================================================================

func (s *contentServiceImpl) SupportResources(ctx context.Context) ([]models.SupportResource, error) {
	return s.supportRepo.FindAll(ctx)
}

// AddSupportResource videos go to video_path, PDFs to file_path, other
// uploads are stored but not linked
func (s *contentServiceImpl) AddSupportResource(ctx context.Context, in SupportInput) (*models.SupportResource, error) {
	if in.Type != models.ResourceManual && in.Type != models.ResourceVideo {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "resource type must be manual or video")
	}

	res := &models.SupportResource{
		Type:          in.Type,
		TitleZh:       in.TitleZh,
		TitleEn:       in.TitleEn,
		DescriptionZh: in.DescriptionZh,
		DescriptionEn: in.DescriptionEn,
	}
	if in.File != nil {
		switch in.File.Folder {
		case media.FolderVideos:
			res.VideoPath = in.File.PublicPath
		case media.FolderDocs:
			res.FilePath = in.File.PublicPath
		}
	}

	if err := s.supportRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create support resource: %w", err)
	}
	return res, nil
}

func (s *contentServiceImpl) DeleteSupportResource(ctx context.Context, id uint) error {
	return s.supportRepo.Delete(ctx, id)
}

func fileName(publicPath string) string {
	for i := len(publicPath) - 1; i >= 0; i-- {
		if publicPath[i] == '/' {
			return publicPath[i+1:]
		}
	}
	return publicPath
}
