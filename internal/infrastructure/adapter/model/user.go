package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID            uint64    `gorm:"primaryKey"`
	PlayerID      string    `gorm:"uniqueIndex;size:64"`
	UserName      string    `gorm:"not null;size:255"`
	Avatar        string    `gorm:"size:512"`
	IsGuest       bool      `gorm:"default:false"`
	WalletBalance int64     `gorm:"not null;default:0"` // Whole currency units
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
