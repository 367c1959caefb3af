package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/model"
)

// WalletTransactionRepository implements persistence.WalletTransactionRepository
// using GORM. The ledger is append-only.
type WalletTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletTransactionRepository creates a new WalletTransactionRepository instance
func NewWalletTransactionRepository(db *gorm.DB, logger coreport.Logger) *WalletTransactionRepository {
	return &WalletTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *WalletTransactionRepository) modelToEntity(m *model.WalletTransaction) *entity.WalletTransaction {
	return &entity.WalletTransaction{
		ID:           m.ID,
		Seq:          m.Seq,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Direction:    entity.TransactionDirection(m.Direction),
		Reason:       m.Reason,
		Description:  m.Description,
		BalanceAfter: m.BalanceAfter,
		CommittedAt:  m.CommittedAt,
	}
}

// Create appends a ledger entry
func (r *WalletTransactionRepository) Create(ctx context.Context, txn *entity.WalletTransaction) error {
	txnModel := model.WalletTransaction{
		ID:           txn.ID,
		UserID:       txn.UserID,
		Amount:       txn.Amount,
		Direction:    string(txn.Direction),
		Reason:       txn.Reason,
		Description:  txn.Description,
		BalanceAfter: txn.BalanceAfter,
		CommittedAt:  txn.CommittedAt,
	}
	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return fmt.Errorf("%w: transaction %s already recorded", errs.ErrConstraintViolation, txn.ID)
		}
		r.logger.Error("Database error when creating wallet transaction", map[string]any{
			"transaction_id": txn.ID,
			"user_id":        txn.UserID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListByUser returns a user's ledger entries oldest first so callers can
// replay them against the audit invariant. Seq breaks commit-time ties: two
// entries in the same microsecond still come back in insert order.
func (r *WalletTransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.WalletTransaction, error) {
	var txnModels []model.WalletTransaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("committed_at ASC, seq ASC").
		Find(&txnModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txns := make([]*entity.WalletTransaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, r.modelToEntity(&txnModels[i]))
	}
	return txns, nil
}
