package realtime

import "github.com/playkaro/teenpatti-server/internal/domain/entity"

// Event names published on room channels. Every structural event is
// immediately followed by an EventRoomState snapshot.
const (
	EventPlayerJoined          = "player-joined"
	EventPlayerLeft            = "player-left"
	EventRoundStarted          = "round-started"
	EventBetPlaced             = "bet-placed"
	EventPlayerFolded          = "player-folded"
	EventSideShowRequested     = "side-show-requested"
	EventSideShowResponded     = "side-show-responded"
	EventShowdownResult        = "showdown-result"
	EventGameCompleted         = "game-completed"
	EventRoundRestartScheduled = "round-restart-scheduled"
	EventRoomState             = "room-state"
)

// Publisher fans room-scoped notifications out to subscribed connections.
// Publish calls for one room originate from that room's single coordinator
// worker, so delivery order matches publish order per room.
type Publisher interface {
	// Publish sends a discrete event to every connection subscribed to the room
	Publish(roomID, event string, payload any)

	// PublishSnapshot sends a refreshed room snapshot to every subscriber
	PublishSnapshot(roomID string, snapshot *entity.RoomSnapshot)

	// CloseRoom drops the room's channel after deletion, releasing subscribers
	CloseRoom(roomID string)
}
