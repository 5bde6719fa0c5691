package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"ouma-web/internal/auth"
	"ouma-web/internal/dto"
	"ouma-web/internal/geoip"
	"ouma-web/internal/media"
	"ouma-web/internal/middleware"
	"ouma-web/internal/models"
	"ouma-web/internal/pluginmgr"
	"ouma-web/internal/repositories"
	"ouma-web/internal/services"
	"ouma-web/internal/testutil"
	"ouma-web/internal/translate"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ===========================================================================
// Fixtures
// ===========================================================================

// pageRecorder stands in for the template renderer and remembers the last page
type pageRecorder struct {
	mu   sync.Mutex
	name string
	data gin.H
}

func (p *pageRecorder) Instance(name string, data any) ginrender.Render {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = name
	p.data, _ = data.(gin.H)
	return ginrender.Data{ContentType: "text/html; charset=utf-8", Data: []byte(name)}
}

func (p *pageRecorder) last() (string, gin.H) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name, p.data
}

type mockPluginManager struct {
	mock.Mock
}

func (m *mockPluginManager) Overview(ctx context.Context) (*pluginmgr.Overview, error) {
	args := m.Called(ctx)
	overview, _ := args.Get(0).(*pluginmgr.Overview)
	return overview, args.Error(1)
}

func (m *mockPluginManager) UpdateAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockPluginManager) UpdateOne(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *mockPluginManager) AuditFix(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testApp struct {
	t       *testing.T
	router  *gin.Engine
	pages   *pageRecorder
	root    string
	catalog services.CatalogService
	chat    services.ChatService
	auth    services.AuthService
	plugins *mockPluginManager
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return buildTestApp(t, false)
}

// newCSRFTestApp also runs the CSRF middleware
func newCSRFTestApp(t *testing.T) *testApp {
	t.Helper()
	return buildTestApp(t, true)
}

func buildTestApp(t *testing.T, csrf bool) *testApp {
	t.Helper()

	log := zap.NewNop()
	db := testutil.NewDB(t)
	root := t.TempDir()
	store := media.NewStore(root, nil, log)

	productRepo := repositories.NewProductRepository(db)
	catalog := services.NewCatalogService(
		productRepo,
		repositories.NewCategoryRepository(db),
		repositories.NewProductImageRepository(db),
		translate.NewSafe(translate.NopTranslator{}, "en", log),
		log,
	)
	content := services.NewContentService(
		repositories.NewSiteConfigRepository(db),
		repositories.NewCarouselRepository(db),
		repositories.NewSupportResourceRepository(db),
		store,
		log,
	)
	chat := services.NewChatService(repositories.NewChatRepository(db), nil, log)
	authService := services.NewAuthService(repositories.NewAdminUserRepository(db), log)
	analytics := services.NewAnalyticsService(db, services.DBInfo{Dialect: "sqlite"},
		repositories.NewAccessLogRepository(db), productRepo, log)
	sessions := auth.NewSessionStore(repositories.NewWebSessionRepository(db), auth.NewTokenService("secret"), time.Hour)
	locator, err := geoip.Open("")
	require.NoError(t, err)
	plugins := &mockPluginManager{}

	pages := &pageRecorder{}
	r := gin.New()
	r.HTMLRender = pages
	r.Use(middleware.Session(sessions, middleware.CookieOptions{Name: "sid"}, log))
	r.Use(middleware.Locale(locator, log))
	if csrf {
		r.Use(middleware.CSRF(false))
	}
	r.Use(middleware.SiteContent(content))

	NewHealthHandler(db).RegisterRoutes(r)
	NewPublicHandler(catalog, content, chat, log).RegisterRoutes(r)
	NewChatHandler(chat, log).RegisterRoutes(r.Group("/chat"))

	admin := r.Group("/admin")
	NewAdminAuthHandler(authService, log).RegisterRoutes(admin, middleware.RequireAdmin())
	protected := admin.Group("", middleware.RequireAdmin())
	NewAdminDashboardHandler(analytics, log).RegisterRoutes(protected)
	NewAdminCatalogHandler(catalog, analytics, store, log).RegisterRoutes(protected)
	NewAdminContentHandler(content, store, log).RegisterRoutes(protected)
	NewAdminChatHandler(chat, log).RegisterRoutes(protected)
	NewAdminPluginHandler(plugins, log).RegisterRoutes(protected)

	return &testApp{
		t:       t,
		router:  r,
		pages:   pages,
		root:    root,
		catalog: catalog,
		chat:    chat,
		auth:    authService,
		plugins: plugins,
		cookies: make(map[string]*http.Cookie),
	}
}

// do sends a request carrying the cookies collected so far
func (a *testApp) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, ck := range a.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(a.cookies, ck.Name)
			continue
		}
		a.cookies[ck.Name] = ck
	}
	return w
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, nil, "")
}

// postForm echoes the CSRF cookie in the _csrf field once one was issued
func (a *testApp) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	if ck, ok := a.cookies[middleware.CSRFCookieName]; ok && form.Get(middleware.CSRFFormField) == "" {
		form.Set(middleware.CSRFFormField, ck.Value)
	}
	return a.do(http.MethodPost, target, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (a *testApp) login() {
	a.t.Helper()
	_, err := a.auth.UpdateAccount(context.Background(), services.AccountUpdate{Username: "admin", Password: "secret123"})
	require.NoError(a.t, err)

	w := a.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"secret123"}})
	require.Equal(a.t, http.StatusFound, w.Code)
	require.Equal(a.t, adminDashboardPath, w.Header().Get("Location"))
}

func (a *testApp) createProduct(name, category, categoryEn string) *models.Product {
	a.t.Helper()
	p, err := a.catalog.CreateProduct(context.Background(), services.ProductInput{
		Name:       name,
		Category:   category,
		CategoryEn: categoryEn,
	})
	require.NoError(a.t, err)
	return p
}

type chatJSON struct {
	OK        bool                 `json:"ok"`
	SessionID uint                 `json:"sessionId"`
	Messages  []models.ChatMessage `json:"messages"`
}

func decodeChat(t *testing.T, w *httptest.ResponseRecorder) chatJSON {
	t.Helper()
	var out chatJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// ===========================================================================
// Public site
// ===========================================================================

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","db":"online"}`, w.Body.String())
}

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)
	lathe := app.createProduct("数控车床", "车床系列", "Lathes")
	app.createProduct("卧式车床", "车床系列", "Lathes")
	app.createProduct("冲床", "冲压设备", "Presses")
	app.createProduct("机械手", "自动化设备", "Automation")

	w := app.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	name, data := app.pages.last()
	assert.Equal(t, "pages/index.html", name)
	assert.Len(t, data["Products"], featuredProductCount)
	assert.Equal(t, "en", data["Lang"])

	w = app.get("/products?cat=Lathes")
	require.Equal(t, http.StatusOK, w.Code)
	_, data = app.pages.last()
	assert.Len(t, data["Products"], 2)

	w = app.get("/products?category=" + url.QueryEscape("冲压设备"))
	require.Equal(t, http.StatusOK, w.Code)
	_, data = app.pages.last()
	assert.Len(t, data["Products"], 1)

	w = app.get(fmt.Sprintf("/products/%d", lathe.ID))
	require.Equal(t, http.StatusOK, w.Code)
	name, data = app.pages.last()
	assert.Equal(t, "pages/product_detail.html", name)
	assert.Equal(t, lathe.ID, data["Product"].(*models.Product).ID)

	for _, target := range []string{"/products/9999", "/products/abc"} {
		w = app.get(target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		name, data = app.pages.last()
		assert.Equal(t, pageError, name)
		assert.Equal(t, "error_not_found", data["MessageKey"])
	}
}

func TestPublicPages_LanguageSwitch(t *testing.T) {
	app := newTestApp(t)

	app.get("/about?lang=zh")
	_, data := app.pages.last()
	assert.Equal(t, "zh", data["Lang"])

	app.get("/contact")
	name, data := app.pages.last()
	assert.Equal(t, "pages/contact.html", name)
	assert.Equal(t, "zh", data["Lang"], "language is remembered by the session")
	assert.Equal(t, models.DefaultWhatsApp, data["Contact"].(models.SiteConfig).WhatsApp)
}

func TestContactMessage_StartsInquiry(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm("/contact/message", url.Values{
		"name":    {"Acme Ltd"},
		"email":   {"buyer@acme.test"},
		"phone":   {"123"},
		"message": {"Need a quote"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/contact?message_success=1", w.Header().Get("Location"))

	out := decodeChat(t, app.get("/chat/messages"))
	assert.True(t, out.OK)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, "Need a quote", out.Messages[0].Content)
	assert.Equal(t, models.SenderVisitor, out.Messages[0].Sender)
}

func TestChatEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm("/chat/message", url.Values{"content": {"hello"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":false}`, w.Body.String())

	out := decodeChat(t, app.get("/chat/messages"))
	assert.True(t, out.OK)
	assert.Empty(t, out.Messages)
	assert.Contains(t, app.get("/chat/messages").Body.String(), `"messages":[]`)

	w = app.postForm("/chat/start", url.Values{
		"company":            {"Acme"},
		"interested_product": {"CNC lathe"},
		"email":              {"a@acme.test"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	started := decodeChat(t, w)
	assert.True(t, started.OK)
	assert.NotZero(t, started.SessionID)

	w = app.postForm("/chat/message", url.Values{"content": {"   "}})
	assert.JSONEq(t, `{"ok":false}`, w.Body.String())

	w = app.do(http.MethodPost, "/chat/message", strings.NewReader(`{"content":"price?"}`), "application/json")
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	out = decodeChat(t, app.get("/chat/messages"))
	require.Len(t, out.Messages, 1)
	assert.Equal(t, "price?", out.Messages[0].Content)
	assert.Equal(t, started.SessionID, out.Messages[0].SessionID)

	detail, err := app.chat.GetSession(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "CNC lathe", detail.Session.InterestedProduct)
}

// ===========================================================================
// Back office
// ===========================================================================

func TestAdminAuth(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/admin", "/admin/dashboard", "/admin/products", "/admin/plugins"} {
		w := app.get(target)
		assert.Equal(t, http.StatusFound, w.Code, target)
		assert.Equal(t, middleware.AdminLoginPath, w.Header().Get("Location"), target)
	}

	_, err := app.auth.UpdateAccount(context.Background(), services.AccountUpdate{Username: "admin", Password: "secret123"})
	require.NoError(t, err)

	for _, form := range []url.Values{
		{"username": {"admin"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"secret123"}},
		{"username": {""}, "password": {""}},
	} {
		w := app.postForm("/admin/login", form)
		assert.Equal(t, http.StatusOK, w.Code)
		name, data := app.pages.last()
		assert.Equal(t, "admin/login.html", name)
		assert.Equal(t, loginFailedMessage, data["Error"])
	}

	w := app.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"secret123"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, adminDashboardPath, w.Header().Get("Location"))

	w = app.get("/admin")
	assert.Equal(t, adminDashboardPath, w.Header().Get("Location"))

	w = app.get("/admin/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
	name, data := app.pages.last()
	assert.Equal(t, "admin/dashboard.html", name)
	assert.Equal(t, true, data["IsAdmin"])

	w = app.get("/admin/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = app.get("/admin/dashboard")
	assert.Equal(t, middleware.AdminLoginPath, w.Header().Get("Location"))
}

func TestAdminAccount(t *testing.T) {
	app := newTestApp(t)
	app.login()

	w := app.postForm("/admin/account", url.Values{"username": {"boss"}, "password": {""}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/account", w.Header().Get("Location"))

	_, err := app.auth.Login(context.Background(), "boss", "secret123")
	assert.NoError(t, err, "blank password keeps the old one")

	app.get("/admin/account")
	name, data := app.pages.last()
	assert.Equal(t, "admin/account.html", name)
	assert.Equal(t, "boss", data["User"].(*models.AdminUser).Username)
}

func TestAdminProductUpload(t *testing.T) {
	app := newTestApp(t)
	app.login()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "数控车床"))
	require.NoError(t, mw.WriteField("category", "车床系列"))
	require.NoError(t, mw.WriteField("features", "高精度"))
	require.NoError(t, mw.WriteField("video_url", "https://video.test/v1"))
	fw, err := mw.CreateFormFile("image", "photo.JPG")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	fw, err = mw.CreateFormFile("gallery", "g1.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("g1"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := app.do(http.MethodPost, "/admin/product/add", &body, mw.FormDataContentType())
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/products?upload_success=1", w.Header().Get("Location"))

	products, err := app.catalog.AdminProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	p := products[0]
	assert.True(t, strings.HasPrefix(p.Image, "/images/"), p.Image)
	assert.True(t, strings.HasSuffix(p.Image, ".jpg"), p.Image)
	assert.Equal(t, "https://video.test/v1", p.VideoURL)
	_, err = os.Stat(filepath.Join(app.root, filepath.FromSlash(strings.TrimPrefix(p.Image, "/"))))
	assert.NoError(t, err, "upload written under the public root")

	detail, err := app.catalog.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, detail.MainImages, 1)
	assert.Len(t, detail.GalleryImages, 1)

	// urlencoded edit without video_url keeps media and the previous URL
	w = app.postForm(fmt.Sprintf("/admin/product/edit/%d", p.ID), url.Values{
		"name":     {"数控车床 II"},
		"category": {"车床系列"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, adminDashboardPath, w.Header().Get("Location"))

	detail, err = app.catalog.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "数控车床 II", detail.Product.Name)
	assert.Equal(t, p.Image, detail.Product.Image)
	assert.Equal(t, "https://video.test/v1", detail.Product.VideoURL)

	w = app.get("/admin/product/edit/9999")
	assert.Equal(t, adminDashboardPath, w.Header().Get("Location"))

	w = app.postForm("/admin/product/add", url.Values{"name": {"no category"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	name, data := app.pages.last()
	assert.Equal(t, "admin/product_form.html", name)
	assert.NotEmpty(t, data["Error"])

	gallery := detail.GalleryImages[0]
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/product/image/delete/%d", gallery.ID), nil)
	req.Header.Set("Referer", fmt.Sprintf("http://evil.test/admin/product/edit/%d?x=1", p.ID))
	for _, ck := range app.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("/admin/product/edit/%d?x=1", p.ID), rec.Header().Get("Location"))

	w = app.postForm(fmt.Sprintf("/admin/product/delete/%d", p.ID), nil)
	assert.Equal(t, adminDashboardPath, w.Header().Get("Location"))
	_, err = app.catalog.GetProduct(context.Background(), p.ID)
	assert.Error(t, err)
}

func TestAdminCategories(t *testing.T) {
	app := newTestApp(t)
	app.login()

	w := app.postForm("/admin/categories/add", url.Values{"name": {"激光设备"}, "name_en": {"Lasers"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/categories", w.Header().Get("Location"))

	w = app.postForm("/admin/categories/add", url.Values{"name": {""}})
	assert.Equal(t, "/admin/categories", w.Header().Get("Location"))

	app.get("/admin/categories")
	_, data := app.pages.last()
	categories := data["Categories"].([]models.Category)
	require.Len(t, categories, 1)
	assert.Equal(t, "Lasers", categories[0].NameEn)

	w = app.postForm(fmt.Sprintf("/admin/categories/delete/%d", categories[0].ID), nil)
	assert.Equal(t, "/admin/categories", w.Header().Get("Location"))
	app.get("/admin/categories")
	_, data = app.pages.last()
	assert.Empty(t, data["Categories"])
}

func TestAdminDelete_RequiresPostWithCSRF(t *testing.T) {
	app := newCSRFTestApp(t)
	app.get("/admin/login")
	require.NotNil(t, app.cookies[middleware.CSRFCookieName])
	app.login()

	p := app.createProduct("数控车床", "车床系列", "Lathes")
	target := fmt.Sprintf("/admin/product/delete/%d", p.ID)

	// a link followed from another site
	w := app.get(target)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodPost, target, nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	_, err := app.catalog.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)

	w = app.postForm(target, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	_, err = app.catalog.GetProduct(context.Background(), p.ID)
	assert.Error(t, err)
}

func TestAdminContactConfig(t *testing.T) {
	app := newTestApp(t)
	app.login()

	w := app.postForm("/admin/contact", url.Values{"phone": {"+86 21 5555"}, "email": {"not-an-email"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.postForm("/admin/contact", url.Values{"phone": {"+86 21 5555"}, "whatsapp": {"+8613900000000"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/contact", w.Header().Get("Location"))

	app.get("/contact")
	_, data := app.pages.last()
	contact := data["Contact"].(models.SiteConfig)
	assert.Equal(t, "+86 21 5555", contact.Phone)
	assert.Equal(t, "+8613900000000", contact.WhatsApp)
}

func TestAdminChat(t *testing.T) {
	app := newTestApp(t)
	session, err := app.chat.StartSession(context.Background(), services.StartChatInput{Company: "Acme"})
	require.NoError(t, err)
	app.login()

	w := app.postForm(fmt.Sprintf("/admin/chat/%d/message", session.ID), url.Values{"content": {"Thanks for asking"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/admin/chat/%d", session.ID), w.Header().Get("Location"))

	app.get(fmt.Sprintf("/admin/chat/%d", session.ID))
	name, data := app.pages.last()
	assert.Equal(t, "admin/chat.html", name)
	messages := data["Messages"].([]models.ChatMessage)
	require.Len(t, messages, 1)
	assert.Equal(t, models.SenderAdmin, messages[0].Sender)

	w = app.get("/admin/chat/9999")
	assert.Equal(t, "/admin/chat", w.Header().Get("Location"))

	app.get("/admin/chat")
	_, data = app.pages.last()
	assert.Len(t, data["Sessions"], 1)
	assert.Nil(t, data["Current"])
}

func TestAdminPlugins(t *testing.T) {
	app := newTestApp(t)
	app.login()

	app.plugins.On("UpdateOne", mock.Anything, "github.com/gin-gonic/gin").Return(errors.New("boom")).Once()
	app.plugins.On("UpdateAll", mock.Anything).Return(nil).Once()
	app.plugins.On("AuditFix", mock.Anything).Return(nil).Once()
	app.plugins.On("Overview", mock.Anything).Return(nil, errors.New("go.mod missing")).Once()

	w := app.postForm("/admin/plugins/update/github.com/gin-gonic/gin", url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/plugins?updated=one&pkg=github.com%2Fgin-gonic%2Fgin", w.Header().Get("Location"))

	w = app.postForm("/admin/plugins/update-all", url.Values{})
	assert.Equal(t, "/admin/plugins?updated=all", w.Header().Get("Location"))

	w = app.postForm("/admin/plugins/audit-fix", url.Values{})
	assert.Equal(t, "/admin/plugins?audit_fixed=1", w.Header().Get("Location"))

	w = app.get("/admin/plugins?updated=all")
	assert.Equal(t, http.StatusOK, w.Code)
	name, data := app.pages.last()
	assert.Equal(t, "admin/plugins.html", name)
	assert.Equal(t, "go.mod missing", data["Error"])
	assert.Equal(t, "all", data["Updated"])
	assert.NotNil(t, data["Overview"])

	app.plugins.AssertExpectations(t)
}

func TestResizeOptions(t *testing.T) {
	opts := resizeOptions(dto.ResizeForm{TargetWidth: "800", TargetHeight: "abc", ScalePercent: " 50 "})
	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 0, opts.Height)
	assert.Equal(t, 50, opts.ScalePercent)

	assert.True(t, resizeOptions(dto.ResizeForm{TargetHeight: "-5"}).IsZero())
}
