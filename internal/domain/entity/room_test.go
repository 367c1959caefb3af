package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	mockcore "github.com/playkaro/teenpatti-server/mocks/port/core"
)

func testBoot() *Boot {
	return &Boot{
		ID:           1,
		BootAmount:   10,
		MaxBlind:     100,
		MaxChaal:     200,
		MaxPotAmount: 1000,
		MinBuyIn:     50,
		MaxBuyIn:     5000,
		Active:       true,
	}
}

func TestNewRoom(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates a waiting room with the first user seated", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		room, err := NewRoom("room-1", testBoot(), 42, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "room-1", room.ID)
		assert.Equal(t, uint64(1), room.BootID)
		assert.Equal(t, []uint64{42}, room.Players)
		assert.Equal(t, DefaultMaxPlayers, room.MaxPlayers)
		assert.Equal(t, StatusWaiting, room.Status)
		assert.Equal(t, int64(0), room.TotalPot)
		assert.Nil(t, room.WinnerID)
		assert.Equal(t, fixedTime, room.CreatedAt)

		// Boot ruleset is snapshotted onto the room
		assert.Equal(t, int64(10), room.BootAmount)
		assert.Equal(t, int64(100), room.MaxBlind)
		assert.Equal(t, int64(200), room.MaxChaal)
		assert.Equal(t, int64(1000), room.MaxPotAmount)
	})

	t.Run("rejects a zero first user id", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)

		room, err := NewRoom("room-1", testBoot(), 0, mockTime)

		assert.Nil(t, room)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestRoom_Seat(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	newRoom := func(t *testing.T) (*Room, *mockcore.MockTimeProvider) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		room, err := NewRoom("room-1", testBoot(), 1, mockTime)
		require.NoError(t, err)
		return room, mockTime
	}

	t.Run("seats users in join order", func(t *testing.T) {
		room, mockTime := newRoom(t)

		require.NoError(t, room.Seat(2, mockTime))
		require.NoError(t, room.Seat(3, mockTime))

		assert.Equal(t, []uint64{1, 2, 3}, room.Players)
		assert.True(t, room.IsSeated(2))
		assert.True(t, room.HasFreeSeat())
	})

	t.Run("returns ErrAlreadySeated for a user who holds a seat", func(t *testing.T) {
		room, mockTime := newRoom(t)

		err := room.Seat(1, mockTime)

		assert.ErrorIs(t, err, errs.ErrAlreadySeated)
		assert.Equal(t, []uint64{1}, room.Players)
	})

	t.Run("returns ErrRoomFull at capacity", func(t *testing.T) {
		room, mockTime := newRoom(t)
		for id := uint64(2); id <= uint64(DefaultMaxPlayers); id++ {
			require.NoError(t, room.Seat(id, mockTime))
		}
		assert.False(t, room.HasFreeSeat())

		err := room.Seat(99, mockTime)

		assert.ErrorIs(t, err, errs.ErrRoomFull)
		assert.Len(t, room.Players, DefaultMaxPlayers)
	})

	t.Run("rejects seating once the room is running", func(t *testing.T) {
		room, mockTime := newRoom(t)
		require.NoError(t, room.Start(1, mockTime))

		err := room.Seat(2, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRoom_Unseat(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("removes the seat and preserves order of the rest", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		room, err := NewRoom("room-1", testBoot(), 1, mockTime)
		require.NoError(t, err)
		require.NoError(t, room.Seat(2, mockTime))
		require.NoError(t, room.Seat(3, mockTime))

		require.NoError(t, room.Unseat(2, mockTime))

		assert.Equal(t, []uint64{1, 3}, room.Players)
		assert.False(t, room.IsSeated(2))
	})

	t.Run("returns ErrNotInRoom for a user without a seat", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		room, err := NewRoom("room-1", testBoot(), 1, mockTime)
		require.NoError(t, err)

		err = room.Unseat(99, mockTime)

		assert.ErrorIs(t, err, errs.ErrNotInRoom)
	})

	t.Run("last unseat leaves the room empty", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		room, err := NewRoom("room-1", testBoot(), 1, mockTime)
		require.NoError(t, err)

		require.NoError(t, room.Unseat(1, mockTime))

		assert.True(t, room.IsEmpty())
	})
}

func TestRoom_Lifecycle(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	newRoom := func(t *testing.T) (*Room, *mockcore.MockTimeProvider) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		room, err := NewRoom("room-1", testBoot(), 1, mockTime)
		require.NoError(t, err)
		return room, mockTime
	}

	t.Run("start requires the minimum seat count", func(t *testing.T) {
		room, mockTime := newRoom(t)

		err := room.Start(2, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, StatusWaiting, room.Status)
	})

	t.Run("start transitions waiting to running", func(t *testing.T) {
		room, mockTime := newRoom(t)

		require.NoError(t, room.Start(1, mockTime))

		assert.Equal(t, StatusRunning, room.Status)
	})

	t.Run("start is rejected when already running", func(t *testing.T) {
		room, mockTime := newRoom(t)
		require.NoError(t, room.Start(1, mockTime))

		err := room.Start(1, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("complete records the winner", func(t *testing.T) {
		room, mockTime := newRoom(t)
		require.NoError(t, room.Start(1, mockTime))

		require.NoError(t, room.Complete(1, mockTime))

		assert.Equal(t, StatusCompleted, room.Status)
		require.NotNil(t, room.WinnerID)
		assert.Equal(t, uint64(1), *room.WinnerID)
	})

	t.Run("complete rejects a winner without a seat", func(t *testing.T) {
		room, mockTime := newRoom(t)
		require.NoError(t, room.Start(1, mockTime))

		err := room.Complete(99, mockTime)

		assert.ErrorIs(t, err, errs.ErrNotInRoom)
		assert.Equal(t, StatusRunning, room.Status)
	})

	t.Run("completing twice returns ErrAlreadyCompleted", func(t *testing.T) {
		room, mockTime := newRoom(t)
		require.NoError(t, room.Start(1, mockTime))
		require.NoError(t, room.Complete(1, mockTime))

		err := room.Complete(1, mockTime)

		assert.ErrorIs(t, err, errs.ErrAlreadyCompleted)
	})

	t.Run("complete is rejected while waiting", func(t *testing.T) {
		room, mockTime := newRoom(t)

		err := room.Complete(1, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRoom_AddToPot(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	newRoom := func(t *testing.T) (*Room, *mockcore.MockTimeProvider) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		room, err := NewRoom("room-1", testBoot(), 1, mockTime)
		require.NoError(t, err)
		return room, mockTime
	}

	t.Run("accumulates bet amounts", func(t *testing.T) {
		room, mockTime := newRoom(t)

		require.NoError(t, room.AddToPot(100, mockTime))
		require.NoError(t, room.AddToPot(250, mockTime))

		assert.Equal(t, int64(350), room.TotalPot)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		room, mockTime := newRoom(t)

		assert.ErrorIs(t, room.AddToPot(0, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, room.AddToPot(-5, mockTime), errs.ErrInvalidAmount)
		assert.Equal(t, int64(0), room.TotalPot)
	})

	t.Run("enforces the pot cap", func(t *testing.T) {
		room, mockTime := newRoom(t)
		require.NoError(t, room.AddToPot(950, mockTime))

		err := room.AddToPot(51, mockTime)

		assert.ErrorIs(t, err, errs.ErrPotLimitExceeded)
		assert.Equal(t, int64(950), room.TotalPot)

		// Exactly reaching the cap is allowed
		require.NoError(t, room.AddToPot(50, mockTime))
		assert.Equal(t, int64(1000), room.TotalPot)
	})

	t.Run("zero cap means no limit", func(t *testing.T) {
		room, mockTime := newRoom(t)
		room.MaxPotAmount = 0

		require.NoError(t, room.AddToPot(1_000_000, mockTime))
		assert.Equal(t, int64(1_000_000), room.TotalPot)
	})
}
