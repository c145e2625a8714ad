// File: /database/database.go
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportmate-api/models"
)

// Initialize opens the local on-device database. All state lives in
// one sqlite file; there is no remote backend.
func Initialize(databasePath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Sport{},
		&models.Event{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedSports populates the fixed sport catalog. Skipped when rows
// already exist so restarts keep the stored snapshot intact.
func SeedSports(db *gorm.DB) error {
	var sportCount int64
	if err := db.Model(&models.Sport{}).Count(&sportCount).Error; err != nil {
		return fmt.Errorf("failed to count sports: %w", err)
	}

	if sportCount > 0 {
		return nil
	}

	for _, sport := range models.DefaultSports() {
		if err := db.Create(&sport).Error; err != nil {
			log.Printf("Warning: Could not seed sport %s: %v", sport.Label, err)
		}
	}

	return nil
}
