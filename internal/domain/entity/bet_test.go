package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	mockcore "github.com/playkaro/teenpatti-server/mocks/port/core"
)

func TestValidBetKind(t *testing.T) {
	assert.True(t, ValidBetKind("blind"))
	assert.True(t, ValidBetKind("chaal"))
	assert.True(t, ValidBetKind("pack"))
	assert.True(t, ValidBetKind("side_show"))

	assert.False(t, ValidBetKind(""))
	assert.False(t, ValidBetKind("raise"))
	assert.False(t, ValidBetKind("Blind"))
}

func TestNewBet(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates a blind bet marked as blind", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		bet, err := NewBet("bet-1", "room-1", 42, 100, BetBlind, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "bet-1", bet.ID)
		assert.Equal(t, "room-1", bet.RoomID)
		assert.Equal(t, uint64(42), bet.UserID)
		assert.Equal(t, int64(100), bet.Amount)
		assert.True(t, bet.IsBlind)
		assert.Equal(t, fixedTime, bet.CommittedAt)
	})

	t.Run("chaal bets are not blind", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		bet, err := NewBet("bet-1", "room-1", 42, 100, BetChaal, mockTime)

		require.NoError(t, err)
		assert.False(t, bet.IsBlind)
	})

	t.Run("pack requires a zero amount", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		bet, err := NewBet("bet-1", "room-1", 42, 0, BetPack, mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(0), bet.Amount)

		bet, err = NewBet("bet-2", "room-1", 42, 10, BetPack, mockTime)
		assert.Nil(t, bet)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("non-pack kinds require a positive amount", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)

		for _, kind := range []BetKind{BetBlind, BetChaal, BetSideShow} {
			bet, err := NewBet("bet-1", "room-1", 42, 0, kind, mockTime)
			assert.Nil(t, bet)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)

			bet, err = NewBet("bet-1", "room-1", 42, -1, kind, mockTime)
			assert.Nil(t, bet)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})

	t.Run("rejects a zero user id", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)

		bet, err := NewBet("bet-1", "room-1", 0, 100, BetBlind, mockTime)

		assert.Nil(t, bet)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)

		bet, err := NewBet("bet-1", "room-1", 42, 100, BetKind("raise"), mockTime)

		assert.Nil(t, bet)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
