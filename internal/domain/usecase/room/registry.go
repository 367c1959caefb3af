package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/domain/port/persistence"
)

// Registry creates and finds rooms and manages seat occupancy. Callers that
// mutate a room must do so from inside the session coordinator's per-room
// worker; the registry itself only applies and persists the change.
type Registry struct {
	roomRepo     persistence.RoomRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRegistry creates a room registry
func NewRegistry(roomRepo persistence.RoomRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *Registry {
	return &Registry{
		roomRepo:     roomRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// FindJoinable returns the oldest waiting room for the boot with a free seat,
// or nil when no room qualifies
func (r *Registry) FindJoinable(ctx context.Context, bootID uint64) (*entity.Room, error) {
	room, err := r.roomRepo.FindJoinable(ctx, bootID)
	if err != nil {
		if errors.Is(err, errs.ErrRoomNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return room, nil
}

// Create allocates a new waiting room with the first user seated
func (r *Registry) Create(ctx context.Context, boot *entity.Boot, firstUserID uint64) (*entity.Room, error) {
	room, err := entity.NewRoom(uuid.NewString(), boot, firstUserID, r.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := r.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	r.logger.Info("Room created", map[string]any{
		"room_id":    room.ID,
		"boot_id":    boot.ID,
		"first_user": firstUserID,
	})
	return room, nil
}

// Seat adds a user to the room and persists the new seat list. A user who is
// already seated is treated as an idempotent no-op, not a failure.
func (r *Registry) Seat(ctx context.Context, room *entity.Room, userID uint64) error {
	if err := room.Seat(userID, r.timeProvider); err != nil {
		if errors.Is(err, errs.ErrAlreadySeated) {
			r.logger.Debug("User already seated, join is a no-op", map[string]any{
				"room_id": room.ID,
				"user_id": userID,
			})
			return nil
		}
		return err
	}

	if err := r.roomRepo.Update(ctx, room); err != nil {
		return fmt.Errorf("failed to persist seat change: %w", err)
	}

	r.logger.Info("User seated", map[string]any{
		"room_id": room.ID,
		"user_id": userID,
		"seats":   len(room.Players),
	})
	return nil
}

// Unseat removes a user from the room. When the last seat empties the room is
// deleted and ErrRoomDeleted is returned so callers can observe the terminal
// side effect.
func (r *Registry) Unseat(ctx context.Context, room *entity.Room, userID uint64) error {
	if err := room.Unseat(userID, r.timeProvider); err != nil {
		return err
	}

	if room.IsEmpty() {
		if err := r.roomRepo.Delete(ctx, room.ID); err != nil {
			return fmt.Errorf("failed to delete empty room: %w", err)
		}
		r.logger.Info("Room deleted after last player left", map[string]any{
			"room_id": room.ID,
		})
		return errs.ErrRoomDeleted
	}

	if err := r.roomRepo.Update(ctx, room); err != nil {
		return fmt.Errorf("failed to persist seat change: %w", err)
	}

	r.logger.Info("User unseated", map[string]any{
		"room_id": room.ID,
		"user_id": userID,
		"seats":   len(room.Players),
	})
	return nil
}
