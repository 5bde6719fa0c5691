package repositories

import (
	"context"
	"time"

	"ouma-web/internal/models"

	"gorm.io/gorm"
)

type accessLogRepo struct {
	db *gorm.DB
}

// NewAccessLogRepository creates an access log repository
func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepo{db: db}
}

func (r *accessLogRepo) Create(ctx context.Context, entry *models.AccessLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// CountByCountry rows with an empty country are skipped
func (r *accessLogRepo) CountByCountry(ctx context.Context) ([]models.CountryCount, error) {
	var rows []models.CountryCount
	err := r.db.WithContext(ctx).
		Model(&models.AccessLog{}).
		Select("country, COUNT(id) AS count").
		Where("country <> ''").
		Group("country").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *accessLogRepo) Recent(ctx context.Context, limit int) ([]models.AccessLog, error) {
	var logs []models.AccessLog
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *accessLogRepo) Since(ctx context.Context, t time.Time) ([]models.AccessLog, error) {
	var logs []models.AccessLog
	err := r.db.WithContext(ctx).
		Where("timestamp >= ?", t).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
