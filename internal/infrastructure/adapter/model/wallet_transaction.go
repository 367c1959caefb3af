package model

import (
	"time"
)

// WalletTransaction represents the database model for the append-only wallet ledger
type WalletTransaction struct {
	ID string `gorm:"primaryKey;size:36"`

	// Seq is a database-assigned monotonic sequence. Entries committed in
	// the same microsecond still replay in commit order.
	Seq          uint64    `gorm:"autoIncrement;uniqueIndex"`
	UserID       uint64    `gorm:"not null;index:idx_wallet_txns_user_committed"`
	Amount       int64     `gorm:"not null"`
	Direction    string    `gorm:"not null;size:10"`
	Reason       string    `gorm:"not null;size:50"`
	Description  string    `gorm:"type:text"`
	BalanceAfter int64     `gorm:"not null"`
	CommittedAt  time.Time `gorm:"not null;index:idx_wallet_txns_user_committed"`
}

// TableName specifies the table name for WalletTransaction
func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
