package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/domain/port/persistence"
)

// Ledger is the single point of entry for every wallet balance mutation in
// the system. Bets, payouts and bonuses all flow through Apply, which keeps
// the audit invariant intact: each ledger entry's BalanceAfter equals the
// balance the user held immediately after the entry committed.
type Ledger struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a wallet ledger
func NewLedger(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Ledger {
	return &Ledger{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Apply mutates a wallet balance and appends the matching ledger entry as one
// atomic unit. It opens its own transaction; callers already inside a unit of
// work use ApplyInTx instead.
func (l *Ledger) Apply(
	ctx context.Context,
	userID uint64,
	amount int64,
	direction entity.TransactionDirection,
	reason, description string,
) (*entity.WalletTransaction, error) {
	txCtx, err := l.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin wallet transaction: %w", err)
	}

	txn, err := l.ApplyInTx(txCtx, userID, amount, direction, reason, description)
	if err != nil {
		if rbErr := l.uow.Rollback(txCtx); rbErr != nil {
			l.logger.Error("Failed to rollback wallet transaction", map[string]any{
				"user_id": userID,
				"error":   rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := l.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit wallet transaction: %w", err)
	}
	return txn, nil
}

// ApplyInTx performs the balance mutation and ledger append against the
// repositories bound to ctx. When ctx carries an open unit of work the caller
// owns commit and rollback, so a bet's debit, record and pot increment land
// in one transaction.
func (l *Ledger) ApplyInTx(
	ctx context.Context,
	userID uint64,
	amount int64,
	direction entity.TransactionDirection,
	reason, description string,
) (*entity.WalletTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	delta := amount
	if direction == entity.DirectionDebit {
		delta = -amount
	} else if direction != entity.DirectionCredit {
		return nil, errs.ErrInvalidRequest
	}

	userRepo := l.uow.UserRepository(ctx)
	user, err := userRepo.ApplyBalanceChange(ctx, userID, delta)
	if err != nil {
		if errs.IsInsufficientBalanceError(err) {
			l.logger.Warn("Wallet debit rejected", map[string]any{
				"user_id": userID,
				"amount":  amount,
				"reason":  reason,
			})
		}
		return nil, err
	}

	txn, err := entity.NewWalletTransaction(
		uuid.NewString(),
		userID,
		amount,
		direction,
		reason,
		description,
		user.WalletBalance(),
		l.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := l.uow.WalletTransactionRepository(ctx).Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	l.logger.Info("Wallet transaction applied", map[string]any{
		"user_id":       userID,
		"amount":        amount,
		"direction":     direction,
		"reason":        reason,
		"balance_after": txn.BalanceAfter,
	})
	return txn, nil
}

// DailyBonus credits the user's wallet with the configured daily bonus amount
func (l *Ledger) DailyBonus(ctx context.Context, userID uint64, amount int64) (*entity.WalletTransaction, error) {
	return l.Apply(ctx, userID, amount, entity.DirectionCredit, entity.ReasonDailyBonus, "daily login bonus")
}

// History returns a user's ledger entries in commit order
func (l *Ledger) History(ctx context.Context, userID uint64) ([]*entity.WalletTransaction, error) {
	return l.uow.WalletTransactionRepository(ctx).ListByUser(ctx, userID)
}
