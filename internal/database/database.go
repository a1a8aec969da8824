package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gadgetstore/internal/config"
	"gadgetstore/internal/models"
)

// Health describes the result of a database ping.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// Connect opens a Postgres connection through GORM and runs schema migration.
// The returned handle is meant to be passed down explicitly; there is no
// package-level singleton.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all store entities.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks connectivity and reports it in a health-endpoint friendly shape.
func Ping(db *gorm.DB) Health {
	now := time.Now().Format(time.RFC3339)

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return Health{Status: "unhealthy", Timestamp: now, Error: err.Error()}
	}
	return Health{Status: "healthy", Timestamp: now}
}

// Close drains the underlying connection pool. Called on shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	return sqlDB.Close()
}
