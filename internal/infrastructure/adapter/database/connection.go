package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

// Connect establishes a database connection with pooling and bounded retries.
// A fresh container often wins the race against its database, so the retry
// loop covers startup ordering.
func Connect(config *Config, logger coreport.Logger) (*gorm.DB, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	logLevel := gormlogger.Warn
	switch config.LogLevel {
	case "debug", "info":
		logLevel = gormlogger.Info
	case "error":
		logLevel = gormlogger.Error
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	}

	attempts := config.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := config.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var db *gorm.DB
	var err error
	for i := 1; i <= attempts; i++ {
		db, err = open(config, gormConfig)
		if err == nil {
			return db, nil
		}
		logger.Warn("Database connection attempt failed", map[string]any{
			"attempt": i,
			"of":      attempts,
			"error":   err.Error(),
		})
		if i < attempts {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func open(config *Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
