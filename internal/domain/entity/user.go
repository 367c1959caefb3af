package entity

import (
	"time"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

// User represents a registered player. The wallet balance is held in whole
// currency units and is kept private so that only the wallet ledger path can
// mutate it.
type User struct {
	ID            uint64    // Unique identifier for the user
	PlayerID      string    // External player identifier shown to other clients
	UserName      string    // Display name
	Avatar        string    // Avatar image URL, may be empty
	IsGuest       bool      // Guest accounts are created without registration
	walletBalance int64     // Wallet balance in whole currency units (private)
	CreatedAt     time.Time // When the user was created
	UpdatedAt     time.Time // When the user was last updated
}

// NewUser creates a new user with the given ID, display data and initial balance
func NewUser(id uint64, playerID, userName string, initialBalance int64, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if initialBalance < 0 {
		return nil, errs.ErrNegativeBalance
	}

	now := timeProvider.Now()
	return &User{
		ID:            id,
		PlayerID:      playerID,
		UserName:      userName,
		walletBalance: initialBalance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// WalletBalance returns the current wallet balance
func (u *User) WalletBalance() int64 {
	return u.walletBalance
}

// SetWalletBalance updates the balance directly. Reserved for repositories
// rehydrating a user and for the wallet ledger; nothing else writes the balance.
func (u *User) SetWalletBalance(balance int64, timeProvider coreport.TimeProvider) {
	u.walletBalance = balance
	u.UpdatedAt = timeProvider.Now()
}

// CanDebit checks if the user has enough balance for a debit of the given amount
func (u *User) CanDebit(amount int64) bool {
	return u.walletBalance >= amount
}

// Credit adds the amount to the wallet balance
func (u *User) Credit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	u.walletBalance += amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts the amount from the wallet balance if sufficient funds exist
func (u *User) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if u.walletBalance < amount {
		return errs.NewInsufficientBalanceError(u.ID, amount, u.walletBalance)
	}
	u.walletBalance -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}
