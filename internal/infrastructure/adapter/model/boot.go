package model

import (
	"time"
)

// Boot represents the database model for boot configurations
type Boot struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	BootAmount   int64     `gorm:"not null"`
	MaxBlind     int64     `gorm:"not null"`
	MaxChaal     int64     `gorm:"not null"`
	MaxPotAmount int64     `gorm:"not null"`
	MinBuyIn     int64     `gorm:"default:0"`
	MaxBuyIn     int64     `gorm:"default:0"`
	Active       bool      `gorm:"default:true;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Boot
func (Boot) TableName() string {
	return "boots"
}
