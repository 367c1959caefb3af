package model

import (
	"time"
)

// Bet represents the database model for immutable bet records
type Bet struct {
	ID          string    `gorm:"primaryKey;size:36"`
	RoomID      string    `gorm:"not null;size:36;index"`
	UserID      uint64    `gorm:"not null;index"`
	Amount      int64     `gorm:"not null"`
	Kind        string    `gorm:"not null;size:20"`
	IsBlind     bool      `gorm:"default:true"`
	CommittedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Bet
func (Bet) TableName() string {
	return "bets"
}
