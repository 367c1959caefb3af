package entity

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	mockcore "github.com/playkaro/teenpatti-server/mocks/port/core"
)

func TestNewWalletTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates a ledger entry", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		txn, err := NewWalletTransaction("txn-1", 42, 100, DirectionDebit, ReasonBet, "blind bet in room room-1", 900, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "txn-1", txn.ID)
		assert.Equal(t, uint64(42), txn.UserID)
		assert.Equal(t, int64(100), txn.Amount)
		assert.Equal(t, DirectionDebit, txn.Direction)
		assert.Equal(t, ReasonBet, txn.Reason)
		assert.Equal(t, int64(900), txn.BalanceAfter)
		assert.Equal(t, fixedTime, txn.CommittedAt)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)

		_, err := NewWalletTransaction("txn-1", 0, 100, DirectionDebit, ReasonBet, "", 900, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewWalletTransaction("txn-1", 42, 0, DirectionDebit, ReasonBet, "", 900, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewWalletTransaction("txn-1", 42, 100, TransactionDirection("transfer"), ReasonBet, "", 900, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewWalletTransaction("txn-1", 42, 100, DirectionDebit, ReasonBet, "", -1, mockTime)
		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
	})
}

func TestWalletTransaction_SignedAmount(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime)

	credit, err := NewWalletTransaction("txn-1", 42, 100, DirectionCredit, ReasonWin, "", 1100, mockTime)
	require.NoError(t, err)
	assert.True(t, credit.IsCredit())
	assert.Equal(t, int64(100), credit.SignedAmount())

	mockTime.EXPECT().Now().Return(fixedTime)
	debit, err := NewWalletTransaction("txn-2", 42, 100, DirectionDebit, ReasonBet, "", 1000, mockTime)
	require.NoError(t, err)
	assert.False(t, debit.IsCredit())
	assert.Equal(t, int64(-100), debit.SignedAmount())
}

// Replaying a user's entries in commit order must reproduce every recorded
// BalanceAfter value.
func TestWalletTransaction_AuditReplay(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime)

	initial := int64(1000)
	steps := []struct {
		amount    int64
		direction TransactionDirection
	}{
		{100, DirectionDebit},
		{50, DirectionDebit},
		{500, DirectionCredit},
		{200, DirectionDebit},
	}

	balance := initial
	entries := make([]*WalletTransaction, 0, len(steps))
	for i, s := range steps {
		if s.direction == DirectionDebit {
			balance -= s.amount
		} else {
			balance += s.amount
		}
		txn, err := NewWalletTransaction("txn", 42, s.amount, s.direction, ReasonBet, "", balance, mockTime)
		require.NoError(t, err, "step %d", i)
		entries = append(entries, txn)
	}

	replayed := initial
	for i, txn := range entries {
		replayed += txn.SignedAmount()
		assert.Equal(t, txn.BalanceAfter, replayed, "entry %d breaks the audit trail", i)
	}
}

func TestWalletTransaction_SeqBreaksCommitTimeTies(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime)

	// Two debits committed in the same microsecond: committed_at alone
	// cannot order them, the storage-assigned seq can
	first, err := NewWalletTransaction("txn-1", 42, 100, DirectionDebit, ReasonBet, "", 900, mockTime)
	require.NoError(t, err)
	first.Seq = 1
	second, err := NewWalletTransaction("txn-2", 42, 300, DirectionDebit, ReasonBet, "", 600, mockTime)
	require.NoError(t, err)
	second.Seq = 2

	// Storage returns them in an arbitrary order; ordering by
	// (committed_at, seq) restores commit order
	entries := []*WalletTransaction{second, first}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CommittedAt.Equal(entries[j].CommittedAt) {
			return entries[i].CommittedAt.Before(entries[j].CommittedAt)
		}
		return entries[i].Seq < entries[j].Seq
	})

	replayed := int64(1000)
	for i, txn := range entries {
		replayed += txn.SignedAmount()
		assert.Equal(t, txn.BalanceAfter, replayed, "entry %d breaks the audit trail", i)
	}
}
