package room

import (
	"context"
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

func newRegistryFixture(t *testing.T) (*Registry, *mockpersistence.MockRoomRepository, *mockcore.MockTimeProvider) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockRoomRepo := mockpersistence.NewMockRoomRepository(t)
	return NewRegistry(mockRoomRepo, mockTime, mockLogger), mockRoomRepo, mockTime
}

func registryBoot() *entity.Boot {
	return &entity.Boot{ID: 1, BootAmount: 10, MaxBlind: 100, MaxChaal: 200, MaxPotAmount: 1000}
}

func TestRegistry_FindJoinable(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the candidate room", func(t *testing.T) {
		registry, mockRoomRepo, mockTime := newRegistryFixture(t)
		room, err := entity.NewRoom("room-1", registryBoot(), 1, mockTime)
		require.NoError(t, err)

		mockRoomRepo.EXPECT().FindJoinable(ctx, uint64(1)).Return(room, nil).Once()

		got, err := registry.FindJoinable(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, room, got)
	})

	t.Run("no joinable room is nil, not an error", func(t *testing.T) {
		registry, mockRoomRepo, _ := newRegistryFixture(t)

		mockRoomRepo.EXPECT().FindJoinable(ctx, uint64(1)).Return(nil, errs.ErrRoomNotFound).Once()

		got, err := registry.FindJoinable(ctx, 1)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("other repository errors pass through", func(t *testing.T) {
		registry, mockRoomRepo, _ := newRegistryFixture(t)

		mockRoomRepo.EXPECT().FindJoinable(ctx, uint64(1)).Return(nil, errs.ErrDatabaseConnection).Once()

		got, err := registry.FindJoinable(ctx, 1)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestRegistry_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a waiting room with the first user seated", func(t *testing.T) {
		registry, mockRoomRepo, _ := newRegistryFixture(t)

		var created *entity.Room
		mockRoomRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Room")).
			Run(func(_ context.Context, room *entity.Room) {
				created = room
			}).Return(nil).Once()

		room, err := registry.Create(ctx, registryBoot(), 42)

		require.NoError(t, err)
		assert.Equal(t, created, room)
		assert.NotEmpty(t, room.ID)
		assert.Equal(t, entity.StatusWaiting, room.Status)
		assert.Equal(t, []uint64{42}, room.Players)
	})

	t.Run("rejects a zero first user before persisting", func(t *testing.T) {
		registry, mockRoomRepo, _ := newRegistryFixture(t)

		room, err := registry.Create(ctx, registryBoot(), 0)

		assert.Nil(t, room)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		mockRoomRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRegistry_Seat(t *testing.T) {
	ctx := context.Background()

	t.Run("seats the user and persists the seat list", func(t *testing.T) {
		registry, mockRoomRepo, mockTime := newRegistryFixture(t)
		room, err := entity.NewRoom("room-1", registryBoot(), 1, mockTime)
		require.NoError(t, err)

		mockRoomRepo.EXPECT().Update(ctx, room).Return(nil).Once()

		require.NoError(t, registry.Seat(ctx, room, 2))
		assert.Equal(t, []uint64{1, 2}, room.Players)
	})

	t.Run("seating an already seated user is a no-op", func(t *testing.T) {
		registry, mockRoomRepo, mockTime := newRegistryFixture(t)
		room, err := entity.NewRoom("room-1", registryBoot(), 1, mockTime)
		require.NoError(t, err)

		require.NoError(t, registry.Seat(ctx, room, 1))

		assert.Equal(t, []uint64{1}, room.Players)
		mockRoomRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("a full room rejects the seat", func(t *testing.T) {
		registry, mockRoomRepo, mockTime := newRegistryFixture(t)
		room, err := entity.NewRoom("room-1", registryBoot(), 1, mockTime)
		require.NoError(t, err)
		for id := uint64(2); id <= uint64(entity.DefaultMaxPlayers); id++ {
			require.NoError(t, room.Seat(id, mockTime))
		}

		err = registry.Seat(ctx, room, 99)

		assert.ErrorIs(t, err, errs.ErrRoomFull)
		mockRoomRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestRegistry_Unseat(t *testing.T) {
	ctx := context.Background()

	t.Run("unseats the user and persists the seat list", func(t *testing.T) {
		registry, mockRoomRepo, mockTime := newRegistryFixture(t)
		room, err := entity.NewRoom("room-1", registryBoot(), 1, mockTime)
		require.NoError(t, err)
		require.NoError(t, room.Seat(2, mockTime))

		mockRoomRepo.EXPECT().Update(ctx, room).Return(nil).Once()

		require.NoError(t, registry.Unseat(ctx, room, 2))
		assert.Equal(t, []uint64{1}, room.Players)
	})

	t.Run("last player leaving deletes the room and reports ErrRoomDeleted", func(t *testing.T) {
		registry, mockRoomRepo, mockTime := newRegistryFixture(t)
		room, err := entity.NewRoom("room-1", registryBoot(), 1, mockTime)
		require.NoError(t, err)

		mockRoomRepo.EXPECT().Delete(ctx, "room-1").Return(nil).Once()

		err = registry.Unseat(ctx, room, 1)

		assert.ErrorIs(t, err, errs.ErrRoomDeleted)
		assert.True(t, room.IsEmpty())
		mockRoomRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unseating a user without a seat fails", func(t *testing.T) {
		registry, mockRoomRepo, mockTime := newRegistryFixture(t)
		room, err := entity.NewRoom("room-1", registryBoot(), 1, mockTime)
		require.NoError(t, err)

		err = registry.Unseat(ctx, room, 99)

		assert.ErrorIs(t, err, errs.ErrNotInRoom)
		mockRoomRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockRoomRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
