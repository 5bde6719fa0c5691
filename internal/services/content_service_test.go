package services

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"ouma-web/internal/media"
	"ouma-web/internal/models"
	"ouma-web/internal/repositories"
	"ouma-web/internal/testutil"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newContentService(t *testing.T) (ContentService, *gorm.DB, *media.Store) {
	t.Helper()
	db := testutil.NewDB(t)
	store := media.NewStore(t.TempDir(), nil, zap.NewNop())
	svc := NewContentService(
		repositories.NewSiteConfigRepository(db),
		repositories.NewCarouselRepository(db),
		repositories.NewSupportResourceRepository(db),
		store,
		zap.NewNop(),
	)
	return svc, db, store
}

func TestContentService_ConfigDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newContentService(t)

	contact, err := svc.Config(ctx, models.ConfigKeyContact)
	require.NoError(t, err)
	assert.Equal(t, "中国某市工业园区88号", contact.AddressZh)

	stored, err := svc.StoredConfig(ctx, models.ConfigKeyContact)
	require.NoError(t, err)
	assert.Equal(t, models.ConfigKeyContact, stored.Key)
	assert.Empty(t, stored.AddressZh)

	content := svc.SiteContent(ctx)
	assert.NotEmpty(t, content.About.AboutLeadZh)
	assert.NotEmpty(t, content.Services.ServicesTitleEn)
}

func TestContentService_ContactWhatsAppFallback(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newContentService(t)

	require.NoError(t, svc.UpdateConfig(ctx, models.ConfigKeyContact, models.SiteConfig{
		AddressZh: "上海",
		Phone:     "021-1234",
	}))

	contact, err := svc.Config(ctx, models.ConfigKeyContact)
	require.NoError(t, err)
	assert.Equal(t, "上海", contact.AddressZh)
	assert.Equal(t, models.DefaultWhatsApp, contact.WhatsApp)

	require.NoError(t, svc.UpdateConfig(ctx, models.ConfigKeyContact, models.SiteConfig{
		AddressZh: "上海",
		WhatsApp:  "+86139",
	}))
	contact, err = svc.Config(ctx, models.ConfigKeyContact)
	require.NoError(t, err)
	assert.Equal(t, "+86139", contact.WhatsApp)
}

func TestContentService_UpdateConfigOnlyTouchesOwnFields(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newContentService(t)

	require.NoError(t, svc.UpdateConfig(ctx, models.ConfigKeyAbout, models.SiteConfig{
		AboutLeadZh: "领先",
		Phone:       "ignored",
	}))
	require.NoError(t, svc.UpdateConfig(ctx, models.ConfigKeyAbout, models.SiteConfig{
		AboutLeadZh: "更新",
	}))

	var rows []models.SiteConfig
	require.NoError(t, db.Where("key = ?", models.ConfigKeyAbout).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "更新", rows[0].AboutLeadZh)
	assert.Empty(t, rows[0].Phone)

	err := svc.UpdateConfig(ctx, "nope", models.SiteConfig{})
	assert.Error(t, err)
}

func TestContentService_CarouselLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newContentService(t)

	dir := filepath.Join(store.Root(), media.FolderImages)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	full := filepath.Join(dir, "slide.png")
	require.NoError(t, imaging.Save(imaging.New(400, 200, image.White.C), full))

	file := &media.StoredFile{Folder: media.FolderImages, Name: "slide.png", PublicPath: "/images/slide.png", FullPath: full}
	require.NoError(t, svc.AddCarouselImages(ctx, []*media.StoredFile{file}, "Title", "Caption", media.ResizeOptions{ScalePercent: 50}))

	slides, err := svc.Carousel(ctx, 5)
	require.NoError(t, err)
	require.Len(t, slides, 1)
	assert.Equal(t, "/images/slide.png", slides[0].Image)

	img, err := imaging.Open(full)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	require.NoError(t, svc.UpdateCarouselItem(ctx, slides[0].ID, "New", "", media.ResizeOptions{Width: 50, Height: 50}))
	item, err := svc.CarouselItem(ctx, slides[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "New", item.Title)

	img, err = imaging.Open(full)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	require.NoError(t, svc.DeleteCarouselItem(ctx, item.ID))
	slides, err = svc.Carousel(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, slides)
}

func TestContentService_SupportResources(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newContentService(t)

	manual, err := svc.AddSupportResource(ctx, SupportInput{
		Type:    models.ResourceManual,
		TitleZh: "说明书",
		File:    &media.StoredFile{Folder: media.FolderDocs, PublicPath: "/docs/m.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/docs/m.pdf", manual.FilePath)
	assert.Empty(t, manual.VideoPath)

	video, err := svc.AddSupportResource(ctx, SupportInput{
		Type: models.ResourceVideo,
		File: &media.StoredFile{Folder: media.FolderVideos, PublicPath: "/videos/v.mp4"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/videos/v.mp4", video.VideoPath)

	_, err = svc.AddSupportResource(ctx, SupportInput{Type: "brochure"})
	assert.Error(t, err)

	list, err := svc.SupportResources(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, video.ID, list[0].ID)

	require.NoError(t, svc.DeleteSupportResource(ctx, manual.ID))
	list, err = svc.SupportResources(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
