package persistence

import (
	"context"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
)

// UserRepository defines the methods needed to interact with user data.
// Wallet balances are only ever written through ApplyBalanceChange so the
// ledger stays the single mutation path.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDs retrieves several users at once, keyed by ID. Missing users
	// are simply absent from the result, not an error.
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrConstraintViolation: if a user with the same ID or player_id exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// ApplyBalanceChange atomically adjusts the user's wallet balance by
	// delta (negative for debits) under a row lock and returns the updated
	// user. The change is rejected before any write if it would drive the
	// balance negative.
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrInsufficientBalance: if a debit exceeds the current balance
	// - ErrDatabaseConnection: if the database is unreachable
	ApplyBalanceChange(ctx context.Context, userID uint64, delta int64) (*entity.User, error)
}
