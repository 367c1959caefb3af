package persistence

import (
	"context"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
)

// WalletTransactionRepository stores the append-only wallet ledger
type WalletTransactionRepository interface {
	// Create appends a ledger entry
	//
	// Possible errors:
	// - ErrConstraintViolation: if the entry ID already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, txn *entity.WalletTransaction) error

	// ListByUser returns a user's ledger entries in commit order, oldest
	// first, so callers can replay them against the audit invariant
	ListByUser(ctx context.Context, userID uint64) ([]*entity.WalletTransaction, error)
}
