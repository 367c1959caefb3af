package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	realtimeport "github.com/playkaro/teenpatti-server/internal/domain/port/realtime"
)

const snapshotFetchTimeout = 3 * time.Second

// SnapshotSource supplies the current room state for the snapshot sent to a
// connection the moment it subscribes
type SnapshotSource interface {
	RoomSnapshot(ctx context.Context, roomID string) (*entity.RoomSnapshot, error)
}

// Hub fans room events out to websocket subscribers. Publishes for a single
// room arrive from that room's coordinator worker, so per-room delivery order
// matches publish order; the hub itself only needs to guard the subscription
// table.
type Hub struct {
	mu        sync.RWMutex
	rooms     map[string]map[*Connection]struct{}
	snapshots SnapshotSource

	// latest holds each room's most recently published room-state message.
	// PublishSnapshot stores it before fanning out and Subscribe reads it
	// after registering, so a joiner's resync can never regress behind a
	// snapshot published concurrently.
	latest map[string]*Message

	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	closed       bool
}

// NewHub creates a hub with an empty subscription table
func NewHub(timeProvider coreport.TimeProvider, logger coreport.Logger) *Hub {
	return &Hub{
		rooms:        make(map[string]map[*Connection]struct{}),
		latest:       make(map[string]*Message),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SetSnapshotSource wires the snapshot provider. The coordinator publishes
// through the hub, so the source is attached after both exist.
func (h *Hub) SetSnapshotSource(s SnapshotSource) {
	h.mu.Lock()
	h.snapshots = s
	h.mu.Unlock()
}

// Subscribe adds the connection to a room channel and replies with an
// immediate room-state snapshot to that connection only. The room's latest
// published snapshot is preferred over a fresh fetch so the resync never
// runs behind a concurrent publish.
func (h *Hub) Subscribe(c *Connection, roomID string) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	subs, ok := h.rooms[roomID]
	if !ok {
		subs = make(map[*Connection]struct{})
		h.rooms[roomID] = subs
	}
	subs[c] = struct{}{}
	cached := h.latest[roomID]
	source := h.snapshots
	h.mu.Unlock()

	h.logger.Debug("Connection subscribed", map[string]any{
		"room_id": roomID,
		"user_id": c.UserID(),
	})

	if cached != nil {
		c.Send(cached)
		return
	}
	if source == nil {
		return
	}

	// No publish seen for this room yet; fall back to the coordinator
	ctx, cancel := h.timeProvider.WithTimeout(context.Background(), snapshotFetchTimeout)
	defer cancel()

	snapshot, err := source.RoomSnapshot(ctx, roomID)
	if err != nil {
		h.logger.Warn("Snapshot fetch failed on subscribe", map[string]any{
			"room_id": roomID,
			"user_id": c.UserID(),
			"error":   err.Error(),
		})
		return
	}

	msg := &Message{
		Event:   realtimeport.EventRoomState,
		RoomID:  roomID,
		Payload: snapshot,
		SentAt:  h.timeProvider.Now(),
	}

	// A publish may have landed while the fetch was in flight; whichever
	// snapshot is newer wins
	h.mu.Lock()
	if cached, ok := h.latest[roomID]; ok {
		if cs, ok := cached.Payload.(*entity.RoomSnapshot); ok && !cs.GeneratedAt.Before(snapshot.GeneratedAt) {
			h.mu.Unlock()
			c.Send(cached)
			return
		}
	}
	h.latest[roomID] = msg
	h.mu.Unlock()

	c.Send(msg)
}

// Unsubscribe removes the connection from a room channel. The player stays
// seated; only delivery stops.
func (h *Hub) Unsubscribe(c *Connection, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.rooms[roomID]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

// Disconnect removes the connection from every room channel
func (h *Hub) Disconnect(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for roomID, subs := range h.rooms {
		if _, ok := subs[c]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

// Publish sends a discrete event to every connection subscribed to the room
func (h *Hub) Publish(roomID, event string, payload any) {
	msg := &Message{
		Event:   event,
		RoomID:  roomID,
		Payload: payload,
		SentAt:  h.timeProvider.Now(),
	}
	h.deliver(roomID, msg)
}

// PublishSnapshot sends a refreshed room snapshot to every subscriber. The
// snapshot is recorded as the room's latest before fan-out, so a connection
// subscribing mid-publish resyncs from this state or newer.
func (h *Hub) PublishSnapshot(roomID string, snapshot *entity.RoomSnapshot) {
	msg := &Message{
		Event:   realtimeport.EventRoomState,
		RoomID:  roomID,
		Payload: snapshot,
		SentAt:  h.timeProvider.Now(),
	}

	h.mu.Lock()
	h.latest[roomID] = msg
	subs := h.rooms[roomID]
	conns := make([]*Connection, 0, len(subs))
	for c := range subs {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		c.Send(msg)
	}
}

// CloseRoom drops the room channel after the room is deleted. Subscribers
// stay connected and may subscribe elsewhere.
func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	delete(h.rooms, roomID)
	delete(h.latest, roomID)
	h.mu.Unlock()

	h.logger.Debug("Room channel closed", map[string]any{
		"room_id": roomID,
	})
}

// Shutdown closes every connection and clears the subscription table
func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.closed = true
	conns := make(map[*Connection]struct{})
	for _, subs := range h.rooms {
		for c := range subs {
			conns[c] = struct{}{}
		}
	}
	h.rooms = make(map[string]map[*Connection]struct{})
	h.latest = make(map[string]*Message)
	h.mu.Unlock()

	for c := range conns {
		_ = c.Close()
	}
}

func (h *Hub) deliver(roomID string, msg *Message) {
	h.mu.RLock()
	subs := h.rooms[roomID]
	conns := make([]*Connection, 0, len(subs))
	for c := range subs {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		c.Send(msg)
	}
}

var _ realtimeport.Publisher = (*Hub)(nil)
