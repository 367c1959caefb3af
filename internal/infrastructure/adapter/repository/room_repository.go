package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/model"
)

// RoomRepository implements persistence.RoomRepository using GORM
type RoomRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRoomRepository creates a new RoomRepository instance
func NewRoomRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RoomRepository {
	return &RoomRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *RoomRepository) modelToEntity(m *model.Room) *entity.Room {
	return &entity.Room{
		ID:           m.ID,
		BootID:       m.BootID,
		Players:      []uint64(m.Players),
		MaxPlayers:   m.MaxPlayers,
		TotalPot:     m.TotalPot,
		Status:       entity.RoomStatus(m.Status),
		WinnerID:     m.WinnerID,
		BootAmount:   m.BootAmount,
		MaxBlind:     m.MaxBlind,
		MaxChaal:     m.MaxChaal,
		MaxPotAmount: m.MaxPotAmount,
		MinBuyIn:     m.MinBuyIn,
		MaxBuyIn:     m.MaxBuyIn,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *RoomRepository) entityToModel(room *entity.Room) *model.Room {
	return &model.Room{
		ID:           room.ID,
		BootID:       room.BootID,
		Players:      model.PlayerList(room.Players),
		MaxPlayers:   room.MaxPlayers,
		TotalPot:     room.TotalPot,
		Status:       string(room.Status),
		WinnerID:     room.WinnerID,
		BootAmount:   room.BootAmount,
		MaxBlind:     room.MaxBlind,
		MaxChaal:     room.MaxChaal,
		MaxPotAmount: room.MaxPotAmount,
		MinBuyIn:     room.MinBuyIn,
		MaxBuyIn:     room.MaxBuyIn,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

func (r *RoomRepository) handleDatabaseError(operation string, err error, roomID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRoomNotFound
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"room_id": roomID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	var roomModel model.Room
	result := r.db.WithContext(ctx).First(&roomModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting room", result.Error, id)
	}
	return r.modelToEntity(&roomModel), nil
}

// FindJoinable returns the oldest waiting room for the boot with a free seat.
// The seat count lives inside the players JSONB array, so the filter uses
// jsonb_array_length.
func (r *RoomRepository) FindJoinable(ctx context.Context, bootID uint64) (*entity.Room, error) {
	var roomModel model.Room
	result := r.db.WithContext(ctx).
		Where("boot_id = ? AND status = ?", bootID, string(entity.StatusWaiting)).
		Where("jsonb_array_length(players) < max_players").
		Order("created_at ASC").
		First(&roomModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding joinable room", result.Error, "")
	}
	return r.modelToEntity(&roomModel), nil
}

// FindByPlayer returns every non-completed room the user is seated in
func (r *RoomRepository) FindByPlayer(ctx context.Context, userID uint64) ([]*entity.Room, error) {
	var roomModels []model.Room
	result := r.db.WithContext(ctx).
		Where("status <> ?", string(entity.StatusCompleted)).
		Where("players @> ?", fmt.Sprintf("[%d]", userID)).
		Find(&roomModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding rooms by player", result.Error, "")
	}

	rooms := make([]*entity.Room, 0, len(roomModels))
	for i := range roomModels {
		rooms = append(rooms, r.modelToEntity(&roomModels[i]))
	}
	return rooms, nil
}

// Create persists a new room
func (r *RoomRepository) Create(ctx context.Context, room *entity.Room) error {
	result := r.db.WithContext(ctx).Create(r.entityToModel(room))
	if result.Error != nil {
		return r.handleDatabaseError("creating room", result.Error, room.ID)
	}
	return nil
}

// Update persists the full room document
func (r *RoomRepository) Update(ctx context.Context, room *entity.Room) error {
	roomModel := r.entityToModel(room)
	result := r.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"players":    roomModel.Players,
			"total_pot":  roomModel.TotalPot,
			"status":     roomModel.Status,
			"winner_id":  roomModel.WinnerID,
			"updated_at": roomModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating room", result.Error, room.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRoomNotFound
	}
	return nil
}

// Delete removes a room document
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Room{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting room", result.Error, id)
	}
	return nil
}
