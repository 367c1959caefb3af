package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/domain/port/persistence"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern over gorm transactions.
// Repository getters bind to the context's open transaction when one exists,
// otherwise to the shared connection, so ledger code can run both standalone
// and inside a bet's atomic unit.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a new database transaction and stores it in the returned context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the current transaction. Rolling back a transaction
// that already finished is reported as a no-op, not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// UserRepository returns a user repository bound to the current transaction
func (u *UnitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// RoomRepository returns a room repository bound to the current transaction
func (u *UnitOfWork) RoomRepository(ctx context.Context) persistence.RoomRepository {
	return repository.NewRoomRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// BetRepository returns a bet repository bound to the current transaction
func (u *UnitOfWork) BetRepository(ctx context.Context) persistence.BetRepository {
	return repository.NewBetRepository(u.dbFromContext(ctx), u.logger)
}

// WalletTransactionRepository returns a ledger repository bound to the current transaction
func (u *UnitOfWork) WalletTransactionRepository(ctx context.Context) persistence.WalletTransactionRepository {
	return repository.NewWalletTransactionRepository(u.dbFromContext(ctx), u.logger)
}

// dbFromContext retrieves the open transaction from ctx, falling back to the
// shared connection
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
