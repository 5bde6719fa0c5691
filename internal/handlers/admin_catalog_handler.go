package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"ouma-web/internal/dto"
	apperrors "ouma-web/internal/errors"
	"ouma-web/internal/media"
	"ouma-web/internal/middleware"
	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Admin Catalog Handler
// Product and category management, product uploads and the product export
// ===========================================================================

// Multipart fields of the product form
const (
	fieldImage         = "image"
	fieldVideo         = "video"
	fieldManual        = "manual"
	fieldGallery       = "gallery"
	fieldFeaturePhotos = "features_photos"
)

// ProductExporter writes the catalog workbook
type ProductExporter interface {
	ExportProducts(ctx context.Context, w io.Writer) error
}

// AdminCatalogHandler back office catalog pages
type AdminCatalogHandler struct {
	catalog  services.CatalogService
	exporter ProductExporter
	store    *media.Store
	logger   *zap.Logger
}

// NewAdminCatalogHandler creates an AdminCatalogHandler
func NewAdminCatalogHandler(
	catalog services.CatalogService,
	exporter ProductExporter,
	store *media.Store,
	logger *zap.Logger,
) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		catalog:  catalog,
		exporter: exporter,
		store:    store,
		logger:   logger,
	}
}

// RegisterRoutes registers the catalog routes on the protected /admin group
func (h *AdminCatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.Products)
	rg.GET("/products/export", h.ExportProducts)

	product := rg.Group("/product")
	{
		product.GET("/add", h.AddPage)
		product.POST("/add", h.Add)
		product.GET("/edit/:id", h.EditPage)
		product.POST("/edit/:id", h.Edit)
		product.POST("/delete/:id", h.Delete)
		product.POST("/image/delete/:id", h.DeleteImage)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.Categories)
		categories.POST("/add", h.AddCategory)
		categories.POST("/update/:id", h.UpdateCategory)
		categories.POST("/delete/:id", h.DeleteCategory)
	}
}

// ===========================================================================
// Products
// ===========================================================================

// Products product table
// GET /admin/products
func (h *AdminCatalogHandler) Products(c *gin.Context) {
	products, err := h.catalog.AdminProducts(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "admin/products.html", gin.H{
		"Products":      products,
		"UploadSuccess": c.Query("upload_success") == "1",
	})
}

// ExportProducts downloads the catalog as xlsx
// GET /admin/products/export
func (h *AdminCatalogHandler) ExportProducts(c *gin.Context) {
	err := sendWorkbook(c, "products.xlsx", func(w io.Writer) error {
		return h.exporter.ExportProducts(c.Request.Context(), w)
	})
	if err != nil {
		renderError(c, h.logger, err)
	}
}

// AddPage empty product form
// GET /admin/product/add
func (h *AdminCatalogHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, gin.H{})
}

// Add creates a product from the multipart form
// POST /admin/product/add
func (h *AdminCatalogHandler) Add(c *gin.Context) {
	in, err := h.bindProduct(c)
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, gin.H{"Error": err.Error()})
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), in)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			h.renderForm(c, http.StatusBadRequest, gin.H{"Error": err.Error()})
			return
		}
		renderError(c, h.logger, err)
		return
	}

	h.logger.Info("product created", zap.Uint("product_id", product.ID))
	c.Redirect(http.StatusFound, "/admin/products?upload_success=1")
}

// EditPage product form filled with the product. Unknown ids go back to
// the dashboard.
// GET /admin/product/edit/:id
func (h *AdminCatalogHandler) EditPage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusFound, adminDashboardPath)
		return
	}

	detail, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			c.Redirect(http.StatusFound, adminDashboardPath)
			return
		}
		renderError(c, h.logger, err)
		return
	}

	h.renderForm(c, http.StatusOK, gin.H{
		"Product":       detail.Product,
		"MainImages":    detail.MainImages,
		"GalleryImages": detail.GalleryImages,
	})
}

// Edit updates a product from the multipart form
// POST /admin/product/edit/:id
func (h *AdminCatalogHandler) Edit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusFound, adminDashboardPath)
		return
	}

	in, err := h.bindProduct(c)
	if err != nil {
		c.Redirect(http.StatusFound, c.Request.URL.Path)
		return
	}

	if _, err := h.catalog.UpdateProduct(c.Request.Context(), id, in); err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			renderError(c, h.logger, err)
			return
		}
	}
	c.Redirect(http.StatusFound, adminDashboardPath)
}

// Delete removes a product and its images
// POST /admin/product/delete/:id
func (h *AdminCatalogHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err == nil {
		err = h.catalog.DeleteProduct(c.Request.Context(), id)
	}
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, adminDashboardPath)
}

// DeleteImage removes one product image and returns to the previous page
// POST /admin/product/image/delete/:id
func (h *AdminCatalogHandler) DeleteImage(c *gin.Context) {
	id, err := parseID(c)
	if err == nil {
		_, err = h.catalog.DeleteProductImage(c.Request.Context(), id)
	}
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		renderError(c, h.logger, err)
		return
	}
	redirectBack(c, "/admin/products")
}

func (h *AdminCatalogHandler) renderForm(c *gin.Context, status int, data gin.H) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	data["Categories"] = categories
	render(c, status, "admin/product_form.html", data)
}

// bindProduct reads text fields and stores uploaded files
func (h *AdminCatalogHandler) bindProduct(c *gin.Context) (services.ProductInput, error) {
	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		return services.ProductInput{}, apperrors.New(apperrors.ErrInvalidInput, "name and category are required")
	}

	in := services.ProductInput{
		Name:          form.Name,
		Category:      form.Category,
		Description:   form.Description,
		Features:      form.Features,
		NameEn:        form.NameEn,
		CategoryEn:    form.CategoryEn,
		DescriptionEn: form.DescriptionEn,
		FeaturesEn:    form.FeaturesEn,
	}
	if v, ok := c.GetPostForm("video_url"); ok {
		in.VideoURL = &v
	}

	if err := h.storeUploads(c, &in); err != nil {
		return services.ProductInput{}, err
	}
	return in, nil
}

func (h *AdminCatalogHandler) storeUploads(c *gin.Context, in *services.ProductInput) error {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil
		}
		return apperrors.New(apperrors.ErrInvalidInput, "invalid upload")
	}
	ctx := c.Request.Context()

	single := func(field string) (string, error) {
		files := form.File[field]
		if len(files) == 0 {
			return "", nil
		}
		stored, err := h.store.Save(ctx, files[0])
		if err != nil {
			return "", err
		}
		return stored.PublicPath, nil
	}
	many := func(field string) ([]string, error) {
		stored, err := h.store.SaveAll(ctx, form.File[field])
		if err != nil {
			return nil, err
		}
		return publicPaths(stored), nil
	}

	if in.ImagePath, err = single(fieldImage); err != nil {
		return h.uploadFailed(c, err)
	}
	if in.VideoPath, err = single(fieldVideo); err != nil {
		return h.uploadFailed(c, err)
	}
	if in.ManualPath, err = single(fieldManual); err != nil {
		return h.uploadFailed(c, err)
	}
	if in.GalleryPaths, err = many(fieldGallery); err != nil {
		return h.uploadFailed(c, err)
	}
	if in.FeaturePhotoPaths, err = many(fieldFeaturePhotos); err != nil {
		return h.uploadFailed(c, err)
	}
	return nil
}

func (h *AdminCatalogHandler) uploadFailed(c *gin.Context, err error) error {
	h.logger.Error("store upload failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	return apperrors.New(apperrors.ErrInvalidInput, "upload could not be stored")
}

func publicPaths(files []*media.StoredFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.PublicPath)
	}
	return paths
}

// firstFile returns the first upload of field, nil when absent
func firstFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fh, nil
}

// ===========================================================================
// Categories
// ===========================================================================

// Categories category table
// GET /admin/categories
func (h *AdminCatalogHandler) Categories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "admin/categories.html", gin.H{
		"Categories": categories,
	})
}

// AddCategory POST /admin/categories/add
func (h *AdminCatalogHandler) AddCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("invalid category form", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}
	if _, err := h.catalog.CreateCategory(c.Request.Context(), req.Name, req.NameEn); err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/categories")
}

// UpdateCategory POST /admin/categories/update/:id
func (h *AdminCatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("invalid category form", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}
	if err := h.catalog.UpdateCategory(c.Request.Context(), id, req.Name, req.NameEn); err != nil &&
		!apperrors.Is(err, apperrors.ErrNotFound) {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/categories")
}

// DeleteCategory POST /admin/categories/delete/:id
func (h *AdminCatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err == nil {
		err = h.catalog.DeleteCategory(c.Request.Context(), id)
	}
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/categories")
}
