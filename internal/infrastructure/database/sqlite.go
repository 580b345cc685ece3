package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/softcrates/fieldsync/internal/config"
	"github.com/softcrates/fieldsync/internal/domain/entity"
)

// NewSQLiteDB opens the on-device SQLite database, provisioning the data
// directory on first run. The underlying connection is a process-wide
// singleton; concurrent logical operations serialize through it, with the
// busy timeout absorbing short lock contention.
func NewSQLiteDB(cfg *config.LocalDBConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// One writer connection; SQLite serializes writes anyway.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	log.Printf("Local database ready at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running local database migrations...")

	err := db.AutoMigrate(
		// Reference mirrors
		&entity.Article{},
		&entity.Client{},
		&entity.Invoice{},
		&entity.DeliveryPoint{},
		&entity.DiscountTier{},
		&entity.ClientArticleDiscount{},
		&entity.User{},

		// Orders: staging area plus server mirror
		&entity.Order{},
		&entity.OrderLine{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Local database migrations completed")
	return nil
}
