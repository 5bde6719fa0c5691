package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"ouma-web/internal/auth"
	"ouma-web/internal/config"
	"ouma-web/internal/database"
	"ouma-web/internal/geoip"
	"ouma-web/internal/handlers"
	"ouma-web/internal/i18n"
	"ouma-web/internal/media"
	"ouma-web/internal/middleware"
	"ouma-web/internal/notify"
	"ouma-web/internal/pluginmgr"
	"ouma-web/internal/repositories"
	"ouma-web/internal/services"
	"ouma-web/internal/translate"
	"ouma-web/internal/view"
	"ouma-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxMultipartMemory     = 32 << 20
	sessionCleanupInterval = time.Hour
)

func main() {
	// =========================================================================
	// Load configuration
	// =========================================================================
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Logger
	// =========================================================================
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// =========================================================================
	// Database
	// =========================================================================
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("auto migrate failed", zap.Error(err))
	}

	ctx := context.Background()
	if err := database.Seed(ctx, db, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	// =========================================================================
	// External helpers: geo lookup, translation, media storage, mail
	// =========================================================================
	locator, err := geoip.Open(cfg.GeoIP.DatabasePath)
	if err != nil {
		log.Warn("geoip database unavailable, visitors default to english", zap.Error(err))
		locator, _ = geoip.Open("")
	}
	defer locator.Close()

	var translator translate.Translator = translate.NopTranslator{}
	if cfg.Translate.Enabled {
		translator = translate.NewHTTPTranslator(translate.Config{
			Endpoint: cfg.Translate.Endpoint,
			Source:   cfg.Translate.Source,
			Timeout:  cfg.Translate.Timeout,
		})
		log.Info("machine translation enabled", zap.String("endpoint", cfg.Translate.Endpoint))
	}
	textTranslator := translate.NewSafe(translator, cfg.Translate.Target, log)

	var mirror media.Mirror
	if cfg.Storage.S3.Enabled() {
		s3Mirror, err := media.NewS3Mirror(ctx, cfg.Storage.S3.Bucket, cfg.Storage.S3.Region, cfg.Storage.S3.Prefix)
		if err != nil {
			log.Warn("s3 mirror disabled", zap.Error(err))
		} else {
			mirror = s3Mirror
			log.Info("uploads mirrored to s3", zap.String("bucket", cfg.Storage.S3.Bucket))
		}
	}
	store := media.NewStore(cfg.Storage.UploadRoot, mirror, log)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Mail.Enabled() {
		notifier = notify.NewMailer(notify.MailConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			To:       cfg.Mail.NotifyTo,
		})
		log.Info("inquiry notifications enabled", zap.String("to", cfg.Mail.NotifyTo))
	}

	// =========================================================================
	// Repositories
	// =========================================================================
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	configRepo := repositories.NewSiteConfigRepository(db)
	carouselRepo := repositories.NewCarouselRepository(db)
	supportRepo := repositories.NewSupportResourceRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	logRepo := repositories.NewAccessLogRepository(db)
	userRepo := repositories.NewAdminUserRepository(db)
	sessionRepo := repositories.NewWebSessionRepository(db)

	// =========================================================================
	// Services
	// =========================================================================
	sessions := auth.NewSessionStore(sessionRepo, auth.NewTokenService(cfg.Session.Secret), cfg.Session.Duration)

	catalogService := services.NewCatalogService(productRepo, categoryRepo, imageRepo, textTranslator, log)
	contentService := services.NewContentService(configRepo, carouselRepo, supportRepo, store, log)
	chatService := services.NewChatService(chatRepo, notifier, log)
	authService := services.NewAuthService(userRepo, log)

	dbInfo := services.DBInfo{Dialect: db.Dialector.Name()}
	if cfg.Database.IsSQLite() {
		dbInfo.StoragePath = cfg.Database.ConnString()
	}
	analyticsService := services.NewAnalyticsService(db, dbInfo, logRepo, productRepo, log)

	workDir := cfg.Plugins.WorkDir
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	plugins := pluginmgr.NewManager(pluginmgr.Config{
		WorkDir:    workDir,
		GoBinary:   cfg.Plugins.GoBinary,
		VulnBinary: cfg.Plugins.VulnBinary,
	}, pluginmgr.NewExecRunner(cfg.Plugins.Timeout, cfg.Plugins.MaxOutputKB<<10), log)

	log.Info("services initialized")

	// =========================================================================
	// Gin router
	// =========================================================================
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := i18n.RegisterBinding(); err != nil {
		log.Fatal("register validators", zap.Error(err))
	}

	renderer, err := view.Load(cfg.App.TemplatesDir)
	if err != nil {
		log.Fatal("failed to load templates", zap.Error(err))
	}

	router := gin.New()
	router.HTMLRender = renderer
	router.MaxMultipartMemory = maxMultipartMemory

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))
	router.Use(middleware.CORS("/chat", cfg.App.CORSOrigins))
	router.Use(middleware.AccessLog(analyticsService, locator, log))
	router.Use(middleware.Session(sessions, middleware.CookieOptions{
		Name:   cfg.Session.CookieName,
		Secure: cfg.App.SecureCookies,
	}, log))
	router.Use(middleware.Locale(locator, log))
	router.Use(middleware.CSRF(cfg.App.SecureCookies))
	router.Use(middleware.SiteContent(contentService))

	// Static assets and uploads
	router.Static("/css", filepath.Join(cfg.App.StaticDir, "css"))
	router.Static("/js", filepath.Join(cfg.App.StaticDir, "js"))
	for _, dir := range []string{"images", "videos", "docs"} {
		router.Static("/"+dir, filepath.Join(cfg.Storage.UploadRoot, dir))
	}

	// =========================================================================
	// Routes
	// =========================================================================
	handlers.NewHealthHandler(db).RegisterRoutes(router)
	handlers.NewPublicHandler(catalogService, contentService, chatService, log).RegisterRoutes(router)
	handlers.NewChatHandler(chatService, log).RegisterRoutes(router.Group("/chat"))

	requireAdmin := middleware.RequireAdmin()
	admin := router.Group("/admin")
	handlers.NewAdminAuthHandler(authService, log).RegisterRoutes(admin, requireAdmin)

	protected := admin.Group("", requireAdmin)
	{
		handlers.NewAdminDashboardHandler(analyticsService, log).RegisterRoutes(protected)
		handlers.NewAdminCatalogHandler(catalogService, analyticsService, store, log).RegisterRoutes(protected)
		handlers.NewAdminContentHandler(contentService, store, log).RegisterRoutes(protected)
		handlers.NewAdminChatHandler(chatService, log).RegisterRoutes(protected)
		handlers.NewAdminPluginHandler(plugins, log).RegisterRoutes(protected)
	}

	router.NoRoute(handlers.NotFound(log))

	log.Info("routes registered")

	// =========================================================================
	// Expired session cleanup
	// =========================================================================
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				n, err := sessions.Cleanup(cleanupCtx)
				if err != nil {
					log.Warn("session cleanup failed", zap.Error(err))
					continue
				}
				if n > 0 {
					log.Info("expired sessions removed", zap.Int64("count", n))
				}
			}
		}
	}()

	// =========================================================================
	// HTTP server
	// =========================================================================
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second, // plugin commands run inside the request
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// =========================================================================
	// Graceful Shutdown
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stopCleanup()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
