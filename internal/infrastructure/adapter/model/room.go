package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PlayerList stores the ordered seat list as a JSONB column, preserving join order
type PlayerList []uint64

// Value implements driver.Valuer for PlayerList
func (p PlayerList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for PlayerList
func (p *PlayerList) Scan(value any) error {
	if value == nil {
		*p = PlayerList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type %T for PlayerList", value)
	}
}

// Room represents the database model for rooms
type Room struct {
	ID           string     `gorm:"primaryKey;size:36"`
	BootID       uint64     `gorm:"not null;index"`
	Players      PlayerList `gorm:"type:jsonb;not null"`
	MaxPlayers   int        `gorm:"not null;default:5"`
	TotalPot     int64      `gorm:"not null;default:0"`
	Status       string     `gorm:"not null;size:20;index:idx_rooms_status_boot"`
	WinnerID     *uint64
	BootAmount   int64     `gorm:"not null"`
	MaxBlind     int64     `gorm:"not null"`
	MaxChaal     int64     `gorm:"not null"`
	MaxPotAmount int64     `gorm:"not null"`
	MinBuyIn     int64     `gorm:"default:0"`
	MaxBuyIn     int64     `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Room
func (Room) TableName() string {
	return "rooms"
}
