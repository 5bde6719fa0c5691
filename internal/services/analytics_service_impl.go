package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"ouma-web/internal/models"
	"ouma-web/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Analytics Service Implementation
// ===========================================================================

const timeLayout = "2006-01-02 15:04:05"

var bytesPerMB = decimal.NewFromInt(1024 * 1024)

// DBInfo describes where the database lives
type DBInfo struct {
	Dialect string
	// StoragePath sqlite file, empty for server databases
	StoragePath string
}

type analyticsServiceImpl struct {
	db          *gorm.DB
	info        DBInfo
	logRepo     repositories.AccessLogRepository
	productRepo repositories.ProductRepository
	startedAt   time.Time
	logger      *zap.Logger
}

// NewAnalyticsService creates an AnalyticsService
func NewAnalyticsService(
	db *gorm.DB,
	info DBInfo,
	logRepo repositories.AccessLogRepository,
	productRepo repositories.ProductRepository,
	logger *zap.Logger,
) AnalyticsService {
	return &analyticsServiceImpl{
		db:          db,
		info:        info,
		logRepo:     logRepo,
		productRepo: productRepo,
		startedAt:   time.Now(),
		logger:      logger,
	}
}

func (s *analyticsServiceImpl) RecordVisit(ctx context.Context, entry *models.AccessLog) error {
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *analyticsServiceImpl) Dashboard(ctx context.Context) (*Dashboard, error) {
	products, err := s.productRepo.List(ctx, repositories.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	visitors, err := s.logRepo.CountByCountry(ctx)
	if err != nil {
		return nil, fmt.Errorf("count visitors: %w", err)
	}
	logs, err := s.logRepo.Recent(ctx, RecentLogLimit)
	if err != nil {
		return nil, fmt.Errorf("recent access logs: %w", err)
	}

	return &Dashboard{
		Products:   products,
		VisitorMap: visitors,
		RecentLogs: logs,
		Server:     s.serverStats(),
		DB:         s.dbStats(ctx),
	}, nil
}

func (s *analyticsServiceImpl) serverStats() ServerStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return ServerStats{
		Uptime:     fmt.Sprintf("%d min", int(time.Since(s.startedAt).Minutes())),
		HeapMB:     toMB(int64(mem.HeapAlloc)) + " MB",
		SysMB:      toMB(int64(mem.Sys)) + " MB",
		Goroutines: runtime.NumGoroutine(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion:  runtime.Version(),
	}
}

// dbStats a failed ping sets status "error"; the remaining figures are
// filled on a best effort basis
func (s *analyticsServiceImpl) dbStats(ctx context.Context) DBStats {
	stats := DBStats{Status: "online", Dialect: s.info.Dialect, Size: "-", LastUpdated: "-"}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		stats.Status = "error"
		stats.Message = err.Error()
	}

	if s.info.StoragePath != "" {
		stats.Storage = s.info.StoragePath
		if fi, err := os.Stat(s.info.StoragePath); err == nil {
			stats.Size = toMB(fi.Size()) + " MB"
			stats.LastUpdated = fi.ModTime().Format(timeLayout)
		}
	}

	tables, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		s.logger.Warn("list tables failed", zap.Error(err))
	} else {
		stats.Tables = len(tables)
	}
	return stats
}

func toMB(bytes int64) string {
	return decimal.NewFromInt(bytes).Div(bytesPerMB).StringFixed(2)
}

// ===========================================================================
// Exports
// ===========================================================================

func (s *analyticsServiceImpl) ExportAccessLogs(ctx context.Context, w io.Writer) error {
	logs, err := s.logRepo.Since(ctx, time.Time{})
	if err != nil {
		return fmt.Errorf("load access logs: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Access Logs")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	addHeader(sheet, "ID", "Time", "IP", "Country", "City", "Method", "Path", "User Agent")
	for _, l := range logs {
		row := sheet.AddRow()
		row.AddCell().SetValue(l.ID)
		row.AddCell().SetValue(l.Timestamp.Format(timeLayout))
		row.AddCell().SetValue(l.IP)
		row.AddCell().SetValue(l.Country)
		row.AddCell().SetValue(l.City)
		row.AddCell().SetValue(l.Method)
		row.AddCell().SetValue(l.Path)
		row.AddCell().SetValue(l.UserAgent)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (s *analyticsServiceImpl) ExportProducts(ctx context.Context, w io.Writer) error {
	products, err := s.productRepo.List(ctx, repositories.FindOptions{OrderBy: "id", OrderDir: "asc"})
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	addHeader(sheet,
		"ID", "Name", "NameEn", "Category", "CategoryEn",
		"Description", "DescriptionEn", "Image", "Video", "VideoURL", "Manual",
		"CreatedAt", "UpdatedAt",
	)
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.NameEn)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(p.CategoryEn)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.DescriptionEn)
		row.AddCell().SetValue(p.Image)
		row.AddCell().SetValue(p.Video)
		row.AddCell().SetValue(p.VideoURL)
		row.AddCell().SetValue(p.Manual)
		row.AddCell().SetValue(p.CreatedAt.Format(timeLayout))
		row.AddCell().SetValue(p.UpdatedAt.Format(timeLayout))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func addHeader(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetValue(h)
	}
}
