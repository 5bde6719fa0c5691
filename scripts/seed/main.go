//go:build ignore

// ===========================================================================
// Seeds demo data for development: site content plus sample access logs
// Run: go run scripts/seed/main.go
// ===========================================================================

package main

import (
	"context"
	"fmt"
	"log"

	"ouma-web/internal/config"
	"ouma-web/internal/database"
	"ouma-web/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	fmt.Println("🌱 Seeding data...")

	// Load config
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLog, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{})
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database, zapLog)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	fmt.Println("✅ Database connected")

	// =========================================================================
	// 1. Site content, categories, products, admin
	// =========================================================================
	ctx := context.Background()
	if err := database.Seed(ctx, db, zapLog); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// =========================================================================
	// 2. Access logs
	// =========================================================================
	logs := database.SampleAccessLogs()
	for i := range logs {
		if err := db.WithContext(ctx).Create(&logs[i]).Error; err != nil {
			zapLog.Error("seed access log", zap.Error(err))
			continue
		}
	}
	fmt.Printf("✅ Access logs seeded (%d)\n", len(logs))

	fmt.Println("🎉 Done")
	fmt.Printf("   Admin login: admin / %s\n", database.DefaultAdminPassword)
}
