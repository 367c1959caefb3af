package persistence

import (
	"context"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
)

// RoomRepository defines the methods needed to interact with room documents.
// Read-modify-write cycles on rooms are serialized by the session coordinator,
// so the repository itself only guarantees durable, per-call atomic updates.
type RoomRepository interface {
	// GetByID retrieves a room by ID
	//
	// Possible errors:
	// - ErrRoomNotFound: if no room with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id string) (*entity.Room, error)

	// FindJoinable returns the oldest waiting room for the boot configuration
	// with at least one free seat, or ErrRoomNotFound when none qualifies.
	// Oldest-first selection keeps concurrent joiners converging on the same
	// room instead of fragmenting across many part-filled ones.
	FindJoinable(ctx context.Context, bootID uint64) (*entity.Room, error)

	// FindByPlayer returns every non-completed room the user is seated in
	FindByPlayer(ctx context.Context, userID uint64) ([]*entity.Room, error)

	// Create persists a new room
	Create(ctx context.Context, room *entity.Room) error

	// Update persists the full room document (seat list, pot, status, winner)
	//
	// Possible errors:
	// - ErrRoomNotFound: if the room no longer exists
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, room *entity.Room) error

	// Delete removes a room document. Used when the last player leaves.
	Delete(ctx context.Context, id string) error
}
