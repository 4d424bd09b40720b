package main

import (
	"charity_system/internal/config" // Custom import path (Config)
	"charity_system/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gormDB, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	if err := db.SeedCategories(gormDB, cfg.SeedCategories); err != nil {
		logrus.Fatalf("seeding categories failed: %v", err)
	}
}
