package database

import (
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/model"
)

// Migrate creates or updates the schema for all game tables
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	err := db.AutoMigrate(
		&model.User{},
		&model.Boot{},
		&model.Room{},
		&model.Bet{},
		&model.WalletTransaction{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("Database migrations complete", nil)
	return nil
}

// defaultBoots are the stake tables seeded on first startup
var defaultBoots = []model.Boot{
	{BootAmount: 10, MaxBlind: 100, MaxChaal: 200, MaxPotAmount: 5000, MinBuyIn: 100, MaxBuyIn: 10000, Active: true},
	{BootAmount: 50, MaxBlind: 500, MaxChaal: 1000, MaxPotAmount: 25000, MinBuyIn: 500, MaxBuyIn: 50000, Active: true},
	{BootAmount: 100, MaxBlind: 1000, MaxChaal: 2000, MaxPotAmount: 50000, MinBuyIn: 1000, MaxBuyIn: 100000, Active: true},
}

// SeedDefaultBoots inserts the default boot configurations when the table is empty
func SeedDefaultBoots(db *gorm.DB, logger coreport.Logger) error {
	var count int64
	if err := db.Model(&model.Boot{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count boots: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&defaultBoots).Error; err != nil {
		return fmt.Errorf("failed to seed boots: %w", err)
	}
	logger.Info("Seeded default boot configurations", map[string]any{
		"count": len(defaultBoots),
	})
	return nil
}
