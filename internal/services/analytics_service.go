package services

import (
	"context"
	"io"

	"ouma-web/internal/models"
)

// ===========================================================================
// Analytics Service Interface
// Page view recording, dashboard figures and spreadsheet exports
// ===========================================================================

// RecentLogLimit number of access logs shown on the dashboard
const RecentLogLimit = 20

// ServerStats host figures shown on the dashboard
type ServerStats struct {
	Uptime     string
	HeapMB     string
	SysMB      string
	Goroutines int
	Platform   string
	GoVersion  string
}

// DBStats database figures shown on the dashboard
type DBStats struct {
	// Status "online" or "error"
	Status      string
	Message     string
	Dialect     string
	Storage     string
	Size        string
	Tables      int
	LastUpdated string
}

// Dashboard everything the dashboard page renders
type Dashboard struct {
	Products   []models.Product
	VisitorMap []models.CountryCount
	RecentLogs []models.AccessLog
	Server     ServerStats
	DB         DBStats
}

// AnalyticsService analytics operations
type AnalyticsService interface {
	// RecordVisit appends an access log row
	RecordVisit(ctx context.Context, entry *models.AccessLog) error

	// Dashboard collects dashboard data
	Dashboard(ctx context.Context) (*Dashboard, error)

	// ExportAccessLogs writes every access log as an xlsx workbook
	ExportAccessLogs(ctx context.Context, w io.Writer) error

	// ExportProducts writes the catalog as an xlsx workbook
	ExportProducts(ctx context.Context, w io.Writer) error
}
