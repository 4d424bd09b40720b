package db

import (
	"charity_system/internal/config" // Custom import path (Config)
	"fmt"                            // Error wrapping

	"github.com/glebarez/sqlite" // Pure-Go SQLite driver for GORM
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger levels
)

// Open connects to the database selected by the configuration
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		db, err := gorm.Open(mysql.Open(cfg.MySQLDSN()), gormConfig(cfg.IsProd))
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		return db, nil
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath, cfg.IsProd)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
}

// OpenSQLite opens an SQLite database; path may be ":memory:".
// SQLite allows a single writer, so the pool is pinned to one connection:
// transactions queue on the pool instead of failing with SQLITE_BUSY, and an
// in-memory database stays the same database for the lifetime of the pool.
func OpenSQLite(path string, quiet bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)"), gormConfig(quiet))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// gormConfig silences SQL logging in production and tests
func gormConfig(quiet bool) *gorm.Config {
	level := logger.Warn
	if quiet {
		level = logger.Silent
	}
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true, // Map unique violations to gorm.ErrDuplicatedKey
	}
}
