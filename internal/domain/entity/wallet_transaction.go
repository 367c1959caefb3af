package entity

import (
	"time"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

// TransactionDirection distinguishes credits from debits
type TransactionDirection string

// Transaction directions
const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

// Well-known transaction reasons
const (
	ReasonBet        = "bet"
	ReasonWin        = "win"
	ReasonRefund     = "refund"
	ReasonDailyBonus = "daily_bonus"
	ReasonDeposit    = "deposit"
	ReasonWithdraw   = "withdraw"
)

// WalletTransaction is an append-only ledger entry. BalanceAfter must equal
// the user's wallet balance immediately after the entry was applied, so
// replaying a user's entries in commit order reproduces every recorded
// balance.
type WalletTransaction struct {
	ID string // UUID

	// Seq is assigned by storage on insert and breaks commit-time ties, so
	// two entries in the same microsecond still have one replay order
	Seq          uint64
	UserID       uint64
	Amount       int64
	Direction    TransactionDirection
	Reason       string
	Description  string
	BalanceAfter int64
	CommittedAt  time.Time
}

// NewWalletTransaction creates a ledger entry for an already-applied balance change
func NewWalletTransaction(
	id string,
	userID uint64,
	amount int64,
	direction TransactionDirection,
	reason, description string,
	balanceAfter int64,
	timeProvider coreport.TimeProvider,
) (*WalletTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if direction != DirectionCredit && direction != DirectionDebit {
		return nil, errs.ErrInvalidRequest
	}
	if balanceAfter < 0 {
		return nil, errs.ErrNegativeBalance
	}

	return &WalletTransaction{
		ID:           id,
		UserID:       userID,
		Amount:       amount,
		Direction:    direction,
		Reason:       reason,
		Description:  description,
		BalanceAfter: balanceAfter,
		CommittedAt:  timeProvider.Now(),
	}, nil
}

// IsCredit reports whether this entry increased the balance
func (t *WalletTransaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// SignedAmount returns the amount with a debit rendered as negative,
// convenient for replaying the ledger
func (t *WalletTransaction) SignedAmount() int64 {
	if t.Direction == DirectionDebit {
		return -t.Amount
	}
	return t.Amount
}
