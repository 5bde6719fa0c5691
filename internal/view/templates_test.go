package view

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"ouma-web/internal/models"
	"ouma-web/internal/pluginmgr"
	"ouma-web/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templatesDir = "../../web/templates"

func baseData(lang string, extra map[string]any) map[string]any {
	contact := models.DefaultContactInfo()
	data := map[string]any{
		"Lang": lang,
		"Site": services.SiteContent{
			Contact:  contact,
			About:    models.DefaultAboutInfo(),
			Services: models.DefaultServicesInfo(),
		},
		"Contact": contact,
		"IsAdmin": true,
		"CSRF":    "token123",
		"Path":    "/",
		"Query":   url.Values{},
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func renderPage(t *testing.T, r *Renderer, name string, data map[string]any) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(w), name)
	return w.Body.String()
}

func sampleProduct() *models.Product {
	p := &models.Product{
		Name:        "数控车床",
		NameEn:      "CNC Lathe",
		Category:    "车床系列",
		CategoryEn:  "Lathes",
		Description: "高精度",
		Features:    `高速主轴<p><img src="/images/f1.jpg" class="img-fluid"></p>`,
		Image:       "/images/main.jpg",
		VideoURL:    "https://video.example.com/embed/1",
		Manual:      "/docs/manual.pdf",
	}
	p.ID = 7
	return p
}

func TestTemplates_PublicPages(t *testing.T) {
	r, err := Load(templatesDir)
	require.NoError(t, err)

	product := sampleProduct()
	pages := map[string]map[string]any{
		"pages/index.html": {
			"Products": []models.Product{*product},
			"Carousel": []models.CarouselImage{{Image: "/images/s1.jpg", Title: "Slide"}},
		},
		"pages/products.html": {
			"Products":         []models.Product{*product},
			"Categories":       []models.CategoryStat{{Name: "车床系列", NameEn: "Lathes", Count: 1}},
			"SelectedCategory": "车床系列",
		},
		"pages/product_detail.html": {
			"Product":       product,
			"MainImages":    []models.ProductImage{{Image: "/images/main.jpg", IsMain: true}},
			"GalleryImages": []models.ProductImage{{Image: "/images/g1.jpg"}},
		},
		"pages/about.html":    nil,
		"pages/contact.html":  {"MessageSuccess": "1"},
		"pages/services.html": {"Manuals": []models.SupportResource{{TitleZh: "手册", TitleEn: "Manual", FilePath: "/docs/m.pdf"}}},
		"pages/error.html":    {"Status": 404, "MessageKey": "error_not_found"},
	}

	for name, extra := range pages {
		require.True(t, r.Has(name), name)
		for _, lang := range []string{"zh", "en"} {
			body := renderPage(t, r, name, baseData(lang, extra))
			assert.Contains(t, body, "chat-widget", name)
		}
	}

	en := renderPage(t, r, "pages/product_detail.html", baseData("en", pages["pages/product_detail.html"]))
	assert.Contains(t, en, "CNC Lathe")
	assert.Contains(t, en, "/images/f1.jpg")
	assert.Contains(t, en, "/docs/manual.pdf")

	zh := renderPage(t, r, "pages/product_detail.html", baseData("zh", pages["pages/product_detail.html"]))
	assert.Contains(t, zh, "数控车床")
	assert.NotContains(t, zh, "CNC Lathe")
}

func TestTemplates_AdminPages(t *testing.T) {
	r, err := Load(templatesDir)
	require.NoError(t, err)

	product := sampleProduct()
	session := models.ChatSession{Company: "ACME", InterestedProduct: "Lathe"}
	session.ID = 3
	slide := &models.CarouselImage{Image: "/images/s1.jpg", Title: "Slide"}
	slide.ID = 2

	pages := map[string]map[string]any{
		"admin/login.html":   {"IsAdmin": false, "Error": "Invalid credentials"},
		"admin/account.html": {"User": &models.AdminUser{Username: "admin"}},
		"admin/dashboard.html": {
			"Dashboard": &services.Dashboard{
				Products:   []models.Product{*product},
				VisitorMap: []models.CountryCount{{Country: "CN", Count: 2}},
				RecentLogs: []models.AccessLog{{IP: "1.1.1.1", Country: "CN", Path: "/"}},
			},
		},
		"admin/products.html":      {"Products": []models.Product{*product}, "UploadSuccess": true},
		"admin/product_form.html":  {"Categories": []models.Category{{Name: "车床系列", NameEn: "Lathes"}}},
		"admin/categories.html":    {"Categories": []models.Category{{Name: "车床系列", NameEn: "Lathes"}}},
		"admin/carousel.html":      {"Items": []models.CarouselImage{*slide}},
		"admin/carousel_edit.html": {"Item": slide},
		"admin/support.html": {
			"Resources": []models.SupportResource{{Type: models.ResourceVideo, TitleZh: "视频", VideoPath: "/videos/v.mp4"}},
		},
		"admin/contact_form.html":  {"Config": models.DefaultContactInfo()},
		"admin/about_form.html":    {"Config": models.DefaultAboutInfo()},
		"admin/services_form.html": {"Config": models.DefaultServicesInfo()},
		"admin/chat.html": {
			"Sessions": []models.ChatSession{session},
			"Current":  &session,
			"Messages": []models.ChatMessage{{Sender: models.SenderVisitor, Content: "hello\nthere"}},
		},
		"admin/plugins.html": {
			"Updated": "one",
			"Package": "github.com/gin-gonic/gin",
			"Overview": &pluginmgr.Overview{
				Dependencies: &pluginmgr.Dependencies{
					Module: "ouma-web",
					Direct: []pluginmgr.Requirement{{Path: "github.com/gin-gonic/gin", Version: "v1.11.0"}},
				},
				Outdated: []pluginmgr.Outdated{{Path: "github.com/gin-gonic/gin", Current: "v1.11.0", Latest: "v1.12.0"}},
			},
		},
	}

	for name, extra := range pages {
		require.True(t, r.Has(name), name)
		renderPage(t, r, name, baseData("zh", extra))
	}

	form := renderPage(t, r, "admin/product_form.html", baseData("en", map[string]any{
		"Product":    product,
		"Categories": []models.Category{{Name: "车床系列", NameEn: "Lathes"}},
	}))
	assert.Contains(t, form, "/admin/product/edit/7")
	assert.Contains(t, form, `name="_csrf" value="token123"`)

	list := renderPage(t, r, "admin/products.html", baseData("en", map[string]any{"Products": []models.Product{*product}}))
	assert.Contains(t, list, `method="post" action="/admin/product/delete/7"`)
	assert.NotContains(t, list, `href="/admin/product/delete/7"`)

	chat := renderPage(t, r, "admin/chat.html", baseData("en", map[string]any{
		"Sessions": []models.ChatSession{session},
		"Current":  nil,
		"Messages": []models.ChatMessage{},
	}))
	assert.Contains(t, chat, "ACME")
	assert.NotContains(t, chat, "/admin/chat/3/message")
}
