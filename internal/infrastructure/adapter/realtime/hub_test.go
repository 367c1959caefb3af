package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	realtimeport "github.com/playkaro/teenpatti-server/internal/domain/port/realtime"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/logger"
	mockcore "github.com/playkaro/teenpatti-server/mocks/port/core"
)

// snapshotSourceFunc adapts a function to the SnapshotSource interface
type snapshotSourceFunc func(ctx context.Context, roomID string) (*entity.RoomSnapshot, error)

func (f snapshotSourceFunc) RoomSnapshot(ctx context.Context, roomID string) (*entity.RoomSnapshot, error) {
	return f(ctx, roomID)
}

func newHubFixture(t *testing.T) *Hub {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, timeout)
		}).Maybe()

	return NewHub(mockTime, mockLogger)
}

func newTestConnection(t *testing.T, hub *Hub, userID uint64) *Connection {
	t.Helper()
	return NewConnection(nil, hub, userID, logger.NewNoopLogger())
}

func receive(t *testing.T, c *Connection) *Message {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("expected a message on the connection")
		return nil
	}
}

func assertNoMessage(t *testing.T, c *Connection) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Fatalf("unexpected message: %s", msg.Event)
	default:
	}
}

func TestHub_Subscribe(t *testing.T) {
	t.Run("replies with an immediate room-state snapshot", func(t *testing.T) {
		hub := newHubFixture(t)
		snapshot := &entity.RoomSnapshot{RoomID: "room-1", Status: entity.StatusWaiting}
		hub.SetSnapshotSource(snapshotSourceFunc(func(_ context.Context, roomID string) (*entity.RoomSnapshot, error) {
			assert.Equal(t, "room-1", roomID)
			return snapshot, nil
		}))
		conn := newTestConnection(t, hub, 42)

		hub.Subscribe(conn, "room-1")

		msg := receive(t, conn)
		assert.Equal(t, realtimeport.EventRoomState, msg.Event)
		assert.Equal(t, "room-1", msg.RoomID)
		assert.Equal(t, snapshot, msg.Payload)
	})

	t.Run("resyncs from the latest published snapshot without refetching", func(t *testing.T) {
		hub := newHubFixture(t)
		hub.SetSnapshotSource(snapshotSourceFunc(func(_ context.Context, _ string) (*entity.RoomSnapshot, error) {
			t.Error("the resync must come from the published snapshot, not a fetch")
			return nil, errs.ErrRoomNotFound
		}))

		published := &entity.RoomSnapshot{RoomID: "room-1", Status: entity.StatusRunning}
		hub.PublishSnapshot("room-1", published)

		conn := newTestConnection(t, hub, 42)
		hub.Subscribe(conn, "room-1")

		msg := receive(t, conn)
		assert.Equal(t, realtimeport.EventRoomState, msg.Event)
		assert.Equal(t, published, msg.Payload)
	})

	t.Run("a snapshot published during the fetch wins over the fetched one", func(t *testing.T) {
		hub := newHubFixture(t)
		base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
		stale := &entity.RoomSnapshot{RoomID: "room-1", Status: entity.StatusWaiting, GeneratedAt: base}
		fresh := &entity.RoomSnapshot{RoomID: "room-1", Status: entity.StatusRunning, GeneratedAt: base.Add(time.Second)}

		hub.SetSnapshotSource(snapshotSourceFunc(func(_ context.Context, _ string) (*entity.RoomSnapshot, error) {
			// A bet lands while the resync fetch is in flight
			hub.PublishSnapshot("room-1", fresh)
			return stale, nil
		}))
		conn := newTestConnection(t, hub, 42)

		hub.Subscribe(conn, "room-1")

		// The connection is already registered when the publish fans out and
		// the resync replays the newer snapshot; the stale one never appears
		first := receive(t, conn)
		assert.Equal(t, fresh, first.Payload)
		second := receive(t, conn)
		assert.Equal(t, fresh, second.Payload)
		assertNoMessage(t, conn)
	})

	t.Run("a failed snapshot fetch still subscribes the connection", func(t *testing.T) {
		hub := newHubFixture(t)
		hub.SetSnapshotSource(snapshotSourceFunc(func(_ context.Context, _ string) (*entity.RoomSnapshot, error) {
			return nil, errs.ErrRoomNotFound
		}))
		conn := newTestConnection(t, hub, 42)

		hub.Subscribe(conn, "room-1")
		assertNoMessage(t, conn)

		hub.Publish("room-1", "bet-placed", nil)
		msg := receive(t, conn)
		assert.Equal(t, "bet-placed", msg.Event)
	})
}

func TestHub_Publish(t *testing.T) {
	hub := newHubFixture(t)
	hub.SetSnapshotSource(snapshotSourceFunc(func(_ context.Context, _ string) (*entity.RoomSnapshot, error) {
		return &entity.RoomSnapshot{}, nil
	}))

	subscriber := newTestConnection(t, hub, 1)
	otherRoom := newTestConnection(t, hub, 2)
	hub.Subscribe(subscriber, "room-1")
	hub.Subscribe(otherRoom, "room-2")
	receive(t, subscriber) // initial snapshots
	receive(t, otherRoom)

	t.Run("reaches only the room's subscribers", func(t *testing.T) {
		hub.Publish("room-1", "player-joined", map[string]any{"user_id": uint64(9)})

		msg := receive(t, subscriber)
		assert.Equal(t, "player-joined", msg.Event)
		assertNoMessage(t, otherRoom)
	})

	t.Run("delivery order matches publish order", func(t *testing.T) {
		hub.Publish("room-1", "bet-placed", nil)
		snapshot := &entity.RoomSnapshot{RoomID: "room-1", TotalPot: 100}
		hub.PublishSnapshot("room-1", snapshot)

		first := receive(t, subscriber)
		second := receive(t, subscriber)
		assert.Equal(t, "bet-placed", first.Event)
		assert.Equal(t, realtimeport.EventRoomState, second.Event)
		assert.Equal(t, snapshot, second.Payload)
	})

	t.Run("publishing to a room with no subscribers is a no-op", func(t *testing.T) {
		hub.Publish("room-9", "bet-placed", nil)
		assertNoMessage(t, subscriber)
	})
}

func TestHub_UnsubscribeAndDisconnect(t *testing.T) {
	newSubscribedHub := func(t *testing.T) (*Hub, *Connection) {
		hub := newHubFixture(t)
		conn := newTestConnection(t, hub, 42)
		hub.Subscribe(conn, "room-1")
		return hub, conn
	}

	t.Run("unsubscribe stops delivery for that room", func(t *testing.T) {
		hub, conn := newSubscribedHub(t)

		hub.Unsubscribe(conn, "room-1")
		hub.Publish("room-1", "bet-placed", nil)

		assertNoMessage(t, conn)
	})

	t.Run("disconnect drops the connection from every room", func(t *testing.T) {
		hub, conn := newSubscribedHub(t)
		hub.Subscribe(conn, "room-2")

		hub.Disconnect(conn)
		hub.Publish("room-1", "bet-placed", nil)
		hub.Publish("room-2", "bet-placed", nil)

		assertNoMessage(t, conn)
	})

	t.Run("close room releases all subscribers", func(t *testing.T) {
		hub, conn := newSubscribedHub(t)

		hub.CloseRoom("room-1")
		hub.Publish("room-1", "bet-placed", nil)

		assertNoMessage(t, conn)
	})
}

func TestHub_SubscribeWithoutSource(t *testing.T) {
	// The snapshot source is wired after construction; a subscribe that
	// lands in between still registers for subsequent events.
	hub := newHubFixture(t)
	conn := newTestConnection(t, hub, 42)

	hub.Subscribe(conn, "room-1")
	assertNoMessage(t, conn)

	hub.Publish("room-1", "player-joined", nil)
	msg := receive(t, conn)
	require.Equal(t, "player-joined", msg.Event)
}
