package dto

import (
	"time"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
)

// WalletTransactionResponse is one ledger entry in a user's wallet history
type WalletTransactionResponse struct {
	ID           string    `json:"id"`
	Amount       int64     `json:"amount"`
	Direction    string    `json:"direction"`
	Reason       string    `json:"reason"`
	Description  string    `json:"description,omitempty"`
	BalanceAfter int64     `json:"balance_after"`
	CommittedAt  time.Time `json:"committed_at"`
}

// WalletHistoryResponse is a user's ledger in commit order, oldest first
type WalletHistoryResponse struct {
	UserID       uint64                      `json:"user_id"`
	Transactions []WalletTransactionResponse `json:"transactions"`
}

// DailyBonusResponse confirms a credited daily bonus
type DailyBonusResponse struct {
	Amount        int64 `json:"amount"`
	WalletBalance int64 `json:"wallet_balance"`
}

// NewWalletTransactionResponse maps a ledger entry to its API shape
func NewWalletTransactionResponse(txn *entity.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:           txn.ID,
		Amount:       txn.Amount,
		Direction:    string(txn.Direction),
		Reason:       txn.Reason,
		Description:  txn.Description,
		BalanceAfter: txn.BalanceAfter,
		CommittedAt:  txn.CommittedAt,
	}
}
