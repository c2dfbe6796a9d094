// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver) and Postgres, plus schema migrations.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/pieguyguide/lfg-board/internal/domain"
)

// Open connects to the configured store. When dsn is non-empty it is treated
// as a Postgres connection string (the hosted deployment runs on Postgres);
// otherwise path names a local SQLite file. The caller validates that at
// least one of the two is set before getting here.
func Open(dsn, path string) (*gorm.DB, error) {
	if dsn != "" {
		return OpenPostgres(dsn)
	}
	return OpenSQLite(path)
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	configurePool(db)
	return db, nil
}

// OpenPostgres connects to a Postgres database using the given DSN.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	configurePool(db)
	return db, nil
}

// EnableTracing installs the GORM OpenTelemetry plugin so store round-trips
// show up as spans under the HTTP request trace.
func EnableTracing(db *gorm.DB) error {
	return db.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

// configurePool applies conservative connection-pool limits suitable for a
// low-traffic community service.
func configurePool(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
}

// AutoMigrate creates or updates the board schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Post{},
		&domain.Interest{},
		&domain.Comment{},
	)
}
