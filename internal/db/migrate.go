package db

import (
	"charity_system/internal/domain" // Importing domain models
	"errors"                         // Error inspection
	"fmt"                            // Error wrapping

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Case{}, &domain.Donation{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}

// SeedCategories creates the named categories that do not exist yet
func SeedCategories(db *gorm.DB, names []string) error {
	for _, name := range names {
		var existing domain.Category
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue // Already present
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up category %q: %w", name, err)
		}
		if err := db.Create(&domain.Category{Name: name}).Error; err != nil {
			return fmt.Errorf("create category %q: %w", name, err)
		}
		logrus.WithField("category", name).Info("Category seeded")
	}
	return nil
}
