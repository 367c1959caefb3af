package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockcore "github.com/playkaro/teenpatti-server/mocks/port/core"
)

func TestSnapshotRoom(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	generatedAt := fixedTime.Add(5 * time.Minute)

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	room, err := NewRoom("room-1", testBoot(), 1, mockTime)
	require.NoError(t, err)
	require.NoError(t, room.Seat(2, mockTime))
	require.NoError(t, room.Seat(3, mockTime))
	require.NoError(t, room.AddToPot(300, mockTime))

	alice, err := NewUser(1, "player-1", "Alice", 900, mockTime)
	require.NoError(t, err)
	bob, err := NewUser(2, "player-2", "Bob", 700, mockTime)
	require.NoError(t, err)

	t.Run("projects seats in join order with resolved display data", func(t *testing.T) {
		users := map[uint64]*User{1: alice, 2: bob}

		snapshot := SnapshotRoom(room, users, generatedAt)

		assert.Equal(t, "room-1", snapshot.RoomID)
		assert.Equal(t, StatusWaiting, snapshot.Status)
		assert.Equal(t, int64(300), snapshot.TotalPot)
		assert.Equal(t, generatedAt, snapshot.GeneratedAt)
		require.Len(t, snapshot.Players, 3)

		assert.Equal(t, uint64(1), snapshot.Players[0].UserID)
		assert.Equal(t, "Alice", snapshot.Players[0].UserName)
		assert.Equal(t, int64(900), snapshot.Players[0].WalletBalance)

		assert.Equal(t, uint64(2), snapshot.Players[1].UserID)
		assert.Equal(t, "Bob", snapshot.Players[1].UserName)
	})

	t.Run("unresolved users keep their seat as an id-only view", func(t *testing.T) {
		snapshot := SnapshotRoom(room, map[uint64]*User{1: alice}, generatedAt)

		require.Len(t, snapshot.Players, 3)
		assert.Equal(t, uint64(3), snapshot.Players[2].UserID)
		assert.Empty(t, snapshot.Players[2].UserName)
	})

	t.Run("carries the boot ruleset snapshot", func(t *testing.T) {
		snapshot := SnapshotRoom(room, nil, generatedAt)

		assert.Equal(t, int64(10), snapshot.BootAmount)
		assert.Equal(t, int64(100), snapshot.MaxBlind)
		assert.Equal(t, int64(200), snapshot.MaxChaal)
		assert.Equal(t, int64(1000), snapshot.MaxPotAmount)
	})
}
