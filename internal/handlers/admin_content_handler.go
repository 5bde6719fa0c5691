package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"ouma-web/internal/dto"
	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/media"
	"ouma-web/internal/models"
	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Admin Content Handler
// Carousel slides, support resources and the contact/about/services records
// ===========================================================================

const (
	fieldCarouselImages = "images"
	fieldSupportFile    = "file"

	maxCarouselUploads = 10
)

// AdminContentHandler back office content pages
type AdminContentHandler struct {
	content services.ContentService
	store   *media.Store
	logger  *zap.Logger
}

// NewAdminContentHandler creates an AdminContentHandler
func NewAdminContentHandler(content services.ContentService, store *media.Store, logger *zap.Logger) *AdminContentHandler {
	return &AdminContentHandler{
		content: content,
		store:   store,
		logger:  logger,
	}
}

// RegisterRoutes registers the content routes on the protected /admin group
func (h *AdminContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carousel := rg.Group("/carousel")
	{
		carousel.GET("", h.Carousel)
		carousel.POST("/add", h.AddCarousel)
		carousel.GET("/edit/:id", h.EditCarousel)
		carousel.POST("/resize/:id", h.ResizeCarousel)
		carousel.POST("/delete/:id", h.DeleteCarousel)
	}

	support := rg.Group("/support")
	{
		support.GET("", h.Support)
		support.POST("/add", h.AddSupport)
		support.POST("/delete/:id", h.DeleteSupport)
	}

	rg.GET("/contact", h.configPage(models.ConfigKeyContact))
	rg.POST("/contact", h.saveContact)
	rg.GET("/about", h.configPage(models.ConfigKeyAbout))
	rg.POST("/about", h.saveAbout)
	rg.GET("/services", h.configPage(models.ConfigKeyServices))
	rg.POST("/services", h.saveServices)
}

// ===========================================================================
// Carousel
// ===========================================================================

// Carousel slide list with the upload form
// GET /admin/carousel
func (h *AdminContentHandler) Carousel(c *gin.Context) {
	items, err := h.content.Carousel(c.Request.Context(), 0)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "admin/carousel.html", gin.H{
		"Items": items,
	})
}

// AddCarousel stores up to ten images as new slides, resizing each
// POST /admin/carousel/add
func (h *AdminContentHandler) AddCarousel(c *gin.Context) {
	var form dto.CarouselForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("invalid carousel form", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/carousel")
		return
	}

	mf, err := c.MultipartForm()
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/carousel")
		return
	}
	files := mf.File[fieldCarouselImages]
	if len(files) > maxCarouselUploads {
		h.logger.Warn("too many carousel uploads, extra files ignored", zap.Int("count", len(files)))
		files = files[:maxCarouselUploads]
	}

	ctx := c.Request.Context()
	stored, err := h.store.SaveAll(ctx, files)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	if err := h.content.AddCarouselImages(ctx, stored, form.Title, form.Caption, resizeOptions(form.ResizeForm)); err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/carousel")
}

// EditCarousel slide edit page
// GET /admin/carousel/edit/:id
func (h *AdminContentHandler) EditCarousel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/carousel")
		return
	}
	item, err := h.content.CarouselItem(c.Request.Context(), id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			c.Redirect(http.StatusFound, "/admin/carousel")
			return
		}
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "admin/carousel_edit.html", gin.H{
		"Item": item,
	})
}

// ResizeCarousel updates the slide texts and resizes its image
// POST /admin/carousel/resize/:id
func (h *AdminContentHandler) ResizeCarousel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/carousel")
		return
	}
	var form dto.CarouselForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("invalid carousel form", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/carousel")
		return
	}

	err = h.content.UpdateCarouselItem(c.Request.Context(), id, form.Title, form.Caption, resizeOptions(form.ResizeForm))
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/carousel")
}

// DeleteCarousel POST /admin/carousel/delete/:id
func (h *AdminContentHandler) DeleteCarousel(c *gin.Context) {
	id, err := parseID(c)
	if err == nil {
		err = h.content.DeleteCarouselItem(c.Request.Context(), id)
	}
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/carousel")
}

// resizeOptions parses the optional resize fields, ignoring anything that
// is not a positive integer
func resizeOptions(f dto.ResizeForm) media.ResizeOptions {
	return media.ResizeOptions{
		Width:        positiveInt(f.TargetWidth),
		Height:       positiveInt(f.TargetHeight),
		ScalePercent: positiveInt(f.ScalePercent),
	}
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ===========================================================================
// Support resources
// ===========================================================================

// Support resource list with the upload form
// GET /admin/support
func (h *AdminContentHandler) Support(c *gin.Context) {
	resources, err := h.content.SupportResources(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "admin/support.html", gin.H{
		"Resources": resources,
	})
}

// AddSupport stores the optional file and creates the resource
// POST /admin/support/add
func (h *AdminContentHandler) AddSupport(c *gin.Context) {
	var form dto.SupportForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("invalid support form", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/support")
		return
	}

	ctx := c.Request.Context()
	in := services.SupportInput{
		Type:          models.ResourceType(form.Type),
		TitleZh:       form.TitleZh,
		TitleEn:       form.TitleEn,
		DescriptionZh: form.DescriptionZh,
		DescriptionEn: form.DescriptionEn,
	}

	fh, err := firstFile(c, fieldSupportFile)
	if err != nil {
		h.logger.Warn("read support upload failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/support")
		return
	}
	if fh != nil {
		if in.File, err = h.store.Save(ctx, fh); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}

	if _, err := h.content.AddSupportResource(ctx, in); err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			c.Redirect(http.StatusFound, "/admin/support")
			return
		}
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/support")
}

// DeleteSupport POST /admin/support/delete/:id
func (h *AdminContentHandler) DeleteSupport(c *gin.Context) {
	id, err := parseID(c)
	if err == nil {
		err = h.content.DeleteSupportResource(c.Request.Context(), id)
	}
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/support")
}

// ===========================================================================
// Site config pages
// ===========================================================================

var configPages = map[string]struct {
	template string
	path     string
}{
	models.ConfigKeyContact:  {"admin/contact_form.html", "/admin/contact"},
	models.ConfigKeyAbout:    {"admin/about_form.html", "/admin/about"},
	models.ConfigKeyServices: {"admin/services_form.html", "/admin/services"},
}

// configPage renders the edit form of the stored record for key
func (h *AdminContentHandler) configPage(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.renderConfig(c, http.StatusOK, key, "")
	}
}

func (h *AdminContentHandler) renderConfig(c *gin.Context, status int, key, errMsg string) {
	cfg, err := h.content.StoredConfig(c.Request.Context(), key)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, status, configPages[key].template, gin.H{
		"Config": cfg,
		"Error":  errMsg,
	})
}

func (h *AdminContentHandler) saveConfig(c *gin.Context, key string, update models.SiteConfig) {
	if err := h.content.UpdateConfig(c.Request.Context(), key, update); err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, configPages[key].path)
}

// saveContact POST /admin/contact
func (h *AdminContentHandler) saveContact(c *gin.Context) {
	var form dto.ContactConfigForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderConfig(c, http.StatusBadRequest, models.ConfigKeyContact, err.Error())
		return
	}
	h.saveConfig(c, models.ConfigKeyContact, models.SiteConfig{
		AddressZh:   form.AddressZh,
		AddressEn:   form.AddressEn,
		Phone:       form.Phone,
		Email:       form.Email,
		WorkHoursZh: form.WorkHoursZh,
		WorkHoursEn: form.WorkHoursEn,
		WhatsApp:    form.WhatsApp,
	})
}

// saveAbout POST /admin/about
func (h *AdminContentHandler) saveAbout(c *gin.Context) {
	var form dto.AboutConfigForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderConfig(c, http.StatusBadRequest, models.ConfigKeyAbout, err.Error())
		return
	}
	h.saveConfig(c, models.ConfigKeyAbout, models.SiteConfig{
		AboutLeadZh:        form.AboutLeadZh,
		AboutLeadEn:        form.AboutLeadEn,
		AboutDescZh:        form.AboutDescZh,
		AboutDescEn:        form.AboutDescEn,
		AboutMissionZh:     form.AboutMissionZh,
		AboutMissionEn:     form.AboutMissionEn,
		AboutStatsExpZh:    form.AboutStatsExpZh,
		AboutStatsExpEn:    form.AboutStatsExpEn,
		AboutStatsExportZh: form.AboutStatsExportZh,
		AboutStatsExportEn: form.AboutStatsExportEn,
		AboutStatsTeamZh:   form.AboutStatsTeamZh,
		AboutStatsTeamEn:   form.AboutStatsTeamEn,
	})
}

// saveServices POST /admin/services
func (h *AdminContentHandler) saveServices(c *gin.Context) {
	var form dto.ServicesConfigForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderConfig(c, http.StatusBadRequest, models.ConfigKeyServices, err.Error())
		return
	}
	h.saveConfig(c, models.ConfigKeyServices, models.SiteConfig{
		ServicesTitleZh:   form.ServicesTitleZh,
		ServicesTitleEn:   form.ServicesTitleEn,
		ServicesContentZh: form.ServicesContentZh,
		ServicesContentEn: form.ServicesContentEn,
	})
}
