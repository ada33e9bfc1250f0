package database

import (
	"errors"
	"fmt"

	"github.com/jeltsjelts/gerenciador-tarefas/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the MySQL connection described by the configuration and
// returns the handle. There is no package-level singleton: the caller
// owns the handle and injects it where needed, which also makes it
// trivial to substitute an in-memory backend in tests.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)
	if cfg.DBStrictMode {
		// Surface backend warnings as errors.
		dsn += "&sql_mode=%27TRADITIONAL%27"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// SQL tracing would interleave with the interactive menu.
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Ping is the liveness check consulted before every storage operation.
func Ping(db *gorm.DB) error {
	if db == nil {
		return errors.New("no database connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}

	return sqlDB.Ping()
}

// Close releases the underlying connection. Safe to call with a nil
// handle or after a previous Close.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}

	return sqlDB.Close()
}
