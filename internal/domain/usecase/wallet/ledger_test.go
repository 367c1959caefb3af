package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	mockcore "github.com/playkaro/teenpatti-server/mocks/port/core"
	mockpersistence "github.com/playkaro/teenpatti-server/mocks/port/persistence"
)

type ledgerFixture struct {
	uow      *mockpersistence.MockUnitOfWork
	userRepo *mockpersistence.MockUserRepository
	txnRepo  *mockpersistence.MockWalletTransactionRepository
	time     *mockcore.MockTimeProvider
	ledger   *Ledger
}

func newLedgerFixture(t *testing.T, fixedTime time.Time) *ledgerFixture {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockUow := mockpersistence.NewMockUnitOfWork(t)

	return &ledgerFixture{
		uow:      mockUow,
		userRepo: mockpersistence.NewMockUserRepository(t),
		txnRepo:  mockpersistence.NewMockWalletTransactionRepository(t),
		time:     mockTime,
		ledger:   NewLedger(mockUow, mockTime, mockLogger),
	}
}

func ledgerUser(t *testing.T, fx *ledgerFixture, id uint64, balance int64) *entity.User {
	user, err := entity.NewUser(id, "player", "Player", balance, fx.time)
	require.NoError(t, err)
	return user
}

func TestLedger_Apply(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(42)

	t.Run("debit commits the balance change and the ledger entry together", func(t *testing.T) {
		fx := newLedgerFixture(t, fixedTime)
		userAfter := ledgerUser(t, fx, userID, 900)

		fx.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		fx.uow.EXPECT().UserRepository(ctx).Return(fx.userRepo).Once()
		fx.userRepo.EXPECT().ApplyBalanceChange(ctx, userID, int64(-100)).Return(userAfter, nil).Once()
		fx.uow.EXPECT().WalletTransactionRepository(ctx).Return(fx.txnRepo).Once()

		var created *entity.WalletTransaction
		fx.txnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.WalletTransaction")).
			Run(func(_ context.Context, txn *entity.WalletTransaction) {
				created = txn
			}).Return(nil).Once()
		fx.uow.EXPECT().Commit(ctx).Return(nil).Once()

		txn, err := fx.ledger.Apply(ctx, userID, 100, entity.DirectionDebit, entity.ReasonBet, "blind bet in room room-1")

		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, created, txn)
		assert.Equal(t, userID, txn.UserID)
		assert.Equal(t, int64(100), txn.Amount)
		assert.Equal(t, entity.DirectionDebit, txn.Direction)
		assert.Equal(t, entity.ReasonBet, txn.Reason)
		assert.Equal(t, int64(900), txn.BalanceAfter)
		assert.Equal(t, fixedTime, txn.CommittedAt)
	})

	t.Run("credit records the post-credit balance", func(t *testing.T) {
		fx := newLedgerFixture(t, fixedTime)
		userAfter := ledgerUser(t, fx, userID, 1500)

		fx.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		fx.uow.EXPECT().UserRepository(ctx).Return(fx.userRepo).Once()
		fx.userRepo.EXPECT().ApplyBalanceChange(ctx, userID, int64(500)).Return(userAfter, nil).Once()
		fx.uow.EXPECT().WalletTransactionRepository(ctx).Return(fx.txnRepo).Once()
		fx.txnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.WalletTransaction")).Return(nil).Once()
		fx.uow.EXPECT().Commit(ctx).Return(nil).Once()

		txn, err := fx.ledger.Apply(ctx, userID, 500, entity.DirectionCredit, entity.ReasonWin, "pot won in room room-1")

		require.NoError(t, err)
		assert.Equal(t, int64(1500), txn.BalanceAfter)
		assert.True(t, txn.IsCredit())
	})

	t.Run("insufficient balance rolls back with no ledger entry", func(t *testing.T) {
		fx := newLedgerFixture(t, fixedTime)

		fx.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		fx.uow.EXPECT().UserRepository(ctx).Return(fx.userRepo).Once()
		fx.userRepo.EXPECT().ApplyBalanceChange(ctx, userID, int64(-100)).
			Return(nil, errs.NewInsufficientBalanceError(userID, 100, 40)).Once()
		fx.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		txn, err := fx.ledger.Apply(ctx, userID, 100, entity.DirectionDebit, entity.ReasonBet, "bet")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		fx.txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ledger append failure rolls back the balance change", func(t *testing.T) {
		fx := newLedgerFixture(t, fixedTime)
		userAfter := ledgerUser(t, fx, userID, 900)

		fx.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		fx.uow.EXPECT().UserRepository(ctx).Return(fx.userRepo).Once()
		fx.userRepo.EXPECT().ApplyBalanceChange(ctx, userID, int64(-100)).Return(userAfter, nil).Once()
		fx.uow.EXPECT().WalletTransactionRepository(ctx).Return(fx.txnRepo).Once()
		fx.txnRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		fx.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		txn, err := fx.ledger.Apply(ctx, userID, 100, entity.DirectionDebit, entity.ReasonBet, "bet")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("begin failure surfaces without touching repositories", func(t *testing.T) {
		fx := newLedgerFixture(t, fixedTime)

		fx.uow.EXPECT().Begin(ctx).Return(nil, errors.New("connection refused")).Once()

		txn, err := fx.ledger.Apply(ctx, userID, 100, entity.DirectionDebit, entity.ReasonBet, "bet")

		assert.Nil(t, txn)
		assert.ErrorContains(t, err, "failed to begin wallet transaction")
	})
}

func TestLedger_ApplyInTx_Validation(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name      string
		userID    uint64
		amount    int64
		direction entity.TransactionDirection
		wantErr   error
	}{
		{"zero user id", 0, 100, entity.DirectionDebit, errs.ErrInvalidUserID},
		{"zero amount", 42, 0, entity.DirectionDebit, errs.ErrInvalidAmount},
		{"negative amount", 42, -10, entity.DirectionCredit, errs.ErrInvalidAmount},
		{"unknown direction", 42, 100, entity.TransactionDirection("transfer"), errs.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newLedgerFixture(t, fixedTime)

			txn, err := fx.ledger.ApplyInTx(ctx, tt.userID, tt.amount, tt.direction, entity.ReasonBet, "bet")

			assert.Nil(t, txn)
			assert.ErrorIs(t, err, tt.wantErr)
			fx.uow.AssertNotCalled(t, "UserRepository", mock.Anything)
		})
	}
}

func TestLedger_DailyBonus(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(42)

	fx := newLedgerFixture(t, fixedTime)
	userAfter := ledgerUser(t, fx, userID, 1500)

	fx.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
	fx.uow.EXPECT().UserRepository(ctx).Return(fx.userRepo).Once()
	fx.userRepo.EXPECT().ApplyBalanceChange(ctx, userID, int64(500)).Return(userAfter, nil).Once()
	fx.uow.EXPECT().WalletTransactionRepository(ctx).Return(fx.txnRepo).Once()

	var created *entity.WalletTransaction
	fx.txnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.WalletTransaction")).
		Run(func(_ context.Context, txn *entity.WalletTransaction) {
			created = txn
		}).Return(nil).Once()
	fx.uow.EXPECT().Commit(ctx).Return(nil).Once()

	txn, err := fx.ledger.DailyBonus(ctx, userID, 500)

	require.NoError(t, err)
	assert.Equal(t, created, txn)
	assert.Equal(t, entity.ReasonDailyBonus, txn.Reason)
	assert.Equal(t, entity.DirectionCredit, txn.Direction)
}

func TestLedger_History(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(42)

	fx := newLedgerFixture(t, fixedTime)
	entries := []*entity.WalletTransaction{
		{ID: "txn-1", UserID: userID, Amount: 100, Direction: entity.DirectionDebit, BalanceAfter: 900},
		{ID: "txn-2", UserID: userID, Amount: 200, Direction: entity.DirectionCredit, BalanceAfter: 1100},
	}

	fx.uow.EXPECT().WalletTransactionRepository(ctx).Return(fx.txnRepo).Once()
	fx.txnRepo.EXPECT().ListByUser(ctx, userID).Return(entries, nil).Once()

	got, err := fx.ledger.History(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
