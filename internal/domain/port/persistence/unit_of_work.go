package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across repositories so that a wallet debit,
// its ledger entry, the bet record and the pot update commit or roll back as
// one atomic unit
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// UserRepository returns a user repository bound to the current transaction
	UserRepository(ctx context.Context) UserRepository

	// RoomRepository returns a room repository bound to the current transaction
	RoomRepository(ctx context.Context) RoomRepository

	// BetRepository returns a bet repository bound to the current transaction
	BetRepository(ctx context.Context) BetRepository

	// WalletTransactionRepository returns a ledger repository bound to the current transaction
	WalletTransactionRepository(ctx context.Context) WalletTransactionRepository
}
