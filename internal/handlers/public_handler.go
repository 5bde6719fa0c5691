package handlers

import (
	"net/http"

	"ouma-web/internal/middleware"
	"ouma-web/internal/models"
	"ouma-web/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Public Handler
// Marketing pages: home, product catalog, about, contact and services
// ===========================================================================

const (
	featuredProductCount = 3
	homeCarouselCount    = 6
)

// PublicHandler serves the public site
type PublicHandler struct {
	catalog services.CatalogService
	content services.ContentService
	chat    services.ChatService
	logger  *zap.Logger
}

// NewPublicHandler creates a PublicHandler
func NewPublicHandler(
	catalog services.CatalogService,
	content services.ContentService,
	chat services.ChatService,
	logger *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		catalog: catalog,
		content: content,
		chat:    chat,
		logger:  logger,
	}
}

// RegisterRoutes registers the public pages
func (h *PublicHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Home)
	r.GET("/products", h.Products)
	r.GET("/products/:id", h.ProductDetail)
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)
	r.POST("/contact/message", h.ContactMessage)
	r.GET("/services", h.Services)
}

// Home featured products and the newest carousel slides
// GET /
func (h *PublicHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.catalog.FeaturedProducts(ctx, featuredProductCount)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	slides, err := h.content.Carousel(ctx, homeCarouselCount)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "pages/index.html", gin.H{
		"Products": products,
		"Carousel": slides,
	})
}

// Products catalog listing, ?category= (or the short ?cat=) filters it
// GET /products
func (h *PublicHandler) Products(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		category = c.Query("cat")
	}

	listing, err := h.catalog.ListProducts(c.Request.Context(), category)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "pages/products.html", gin.H{
		"Products":         listing.Products,
		"Categories":       listing.Categories,
		"SelectedCategory": listing.SelectedCategory,
	})
}

// ProductDetail one product with its images
// GET /products/:id
func (h *PublicHandler) ProductDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	detail, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "pages/product_detail.html", gin.H{
		"Product":       detail.Product,
		"MainImages":    detail.MainImages,
		"GalleryImages": detail.GalleryImages,
	})
}

// About company page, content comes from the shared site records
// GET /about
func (h *PublicHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "pages/about.html", nil)
}

// Contact contact details and message form
// GET /contact
func (h *PublicHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "pages/contact.html", gin.H{
		"MessageSuccess": c.Query("message_success"),
	})
}

// ContactMessage stores the form as a new inquiry and remembers it in the
// visitor's session so the chat widget continues it
// POST /contact/message
func (h *PublicHandler) ContactMessage(c *gin.Context) {
	var in services.ContactFormInput
	if err := c.ShouldBind(&in); err != nil {
		c.Redirect(http.StatusFound, "/contact?message_success=0")
		return
	}

	session, err := h.chat.SubmitContactForm(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("contact form failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.Redirect(http.StatusFound, "/contact?message_success=0")
		return
	}

	sess := middleware.GetSession(c)
	sess.ChatSessionID = &session.ID
	if err := middleware.SaveSession(c); err != nil {
		c.Redirect(http.StatusFound, "/contact?message_success=0")
		return
	}
	c.Redirect(http.StatusFound, "/contact?message_success=1")
}

// Services support resources split into manuals and videos
// GET /services
func (h *PublicHandler) Services(c *gin.Context) {
	resources, err := h.content.SupportResources(c.Request.Context())
	if err != nil {
		h.logger.Warn("list support resources failed", zap.Error(err))
		resources = nil
	}

	manuals := make([]models.SupportResource, 0, len(resources))
	videos := make([]models.SupportResource, 0, len(resources))
	for _, r := range resources {
		if r.Type == models.ResourceVideo {
			videos = append(videos, r)
		} else {
			manuals = append(manuals, r)
		}
	}

	render(c, http.StatusOK, "pages/services.html", gin.H{
		"Resources": resources,
		"Manuals":   manuals,
		"Videos":    videos,
	})
}
