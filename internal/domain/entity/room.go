package entity

import (
	"time"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

// RoomStatus represents the lifecycle state of a room
type RoomStatus string

// Room lifecycle states. Transitions are monotonic:
// waiting -> running -> completed.
const (
	StatusWaiting   RoomStatus = "waiting"
	StatusRunning   RoomStatus = "running"
	StatusCompleted RoomStatus = "completed"
)

// DefaultMaxPlayers is the seat capacity for new rooms
const DefaultMaxPlayers = 5

// Room owns its seat list and pot. All mutation happens through the session
// coordinator, which serializes actions per room id.
type Room struct {
	ID         string   // UUID
	BootID     uint64   // Boot configuration this room was created from
	Players    []uint64 // Seated user ids, join order preserved
	MaxPlayers int
	TotalPot   int64
	Status     RoomStatus
	WinnerID   *uint64 // Set only when the room completes
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Snapshot of the boot ruleset at creation time
	BootAmount   int64
	MaxBlind     int64
	MaxChaal     int64
	MaxPotAmount int64
	MinBuyIn     int64
	MaxBuyIn     int64
}

// NewRoom allocates a waiting room from the boot ruleset with the first user seated
func NewRoom(id string, boot *Boot, firstUserID uint64, timeProvider coreport.TimeProvider) (*Room, error) {
	if firstUserID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &Room{
		ID:           id,
		BootID:       boot.ID,
		Players:      []uint64{firstUserID},
		MaxPlayers:   DefaultMaxPlayers,
		TotalPot:     0,
		Status:       StatusWaiting,
		CreatedAt:    now,
		UpdatedAt:    now,
		BootAmount:   boot.BootAmount,
		MaxBlind:     boot.MaxBlind,
		MaxChaal:     boot.MaxChaal,
		MaxPotAmount: boot.MaxPotAmount,
		MinBuyIn:     boot.MinBuyIn,
		MaxBuyIn:     boot.MaxBuyIn,
	}, nil
}

// IsSeated reports whether the user occupies a seat in this room
func (r *Room) IsSeated(userID uint64) bool {
	for _, id := range r.Players {
		if id == userID {
			return true
		}
	}
	return false
}

// HasFreeSeat reports whether the room can accept another player
func (r *Room) HasFreeSeat() bool {
	return len(r.Players) < r.MaxPlayers
}

// Seat adds a user to the room.
// Returns ErrAlreadySeated (idempotent no-op for callers) if the user already
// holds a seat and ErrRoomFull when capacity is reached.
func (r *Room) Seat(userID uint64, timeProvider coreport.TimeProvider) error {
	if r.Status != StatusWaiting {
		return errs.NewStateError(r.ID, string(r.Status), "seat a player")
	}
	if r.IsSeated(userID) {
		return errs.ErrAlreadySeated
	}
	if !r.HasFreeSeat() {
		return errs.ErrRoomFull
	}
	r.Players = append(r.Players, userID)
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// Unseat removes a user from the room. Returns ErrNotInRoom if the user holds
// no seat. The caller is responsible for deleting the room once empty.
func (r *Room) Unseat(userID uint64, timeProvider coreport.TimeProvider) error {
	if !r.IsSeated(userID) {
		return errs.ErrNotInRoom
	}
	players := r.Players[:0]
	for _, id := range r.Players {
		if id != userID {
			players = append(players, id)
		}
	}
	r.Players = players
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// IsEmpty reports whether no players remain seated
func (r *Room) IsEmpty() bool {
	return len(r.Players) == 0
}

// Start transitions the room from waiting to running
func (r *Room) Start(minPlayers int, timeProvider coreport.TimeProvider) error {
	if r.Status != StatusWaiting {
		return errs.NewStateError(r.ID, string(r.Status), "start a round")
	}
	if len(r.Players) < minPlayers {
		return errs.NewStateError(r.ID, string(r.Status), "start a round without enough players")
	}
	r.Status = StatusRunning
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// Complete transitions the room from running to completed and records the winner
func (r *Room) Complete(winnerID uint64, timeProvider coreport.TimeProvider) error {
	if r.Status == StatusCompleted {
		return errs.ErrAlreadyCompleted
	}
	if r.Status != StatusRunning {
		return errs.NewStateError(r.ID, string(r.Status), "complete the game")
	}
	if !r.IsSeated(winnerID) {
		return errs.ErrNotInRoom
	}
	r.Status = StatusCompleted
	r.WinnerID = &winnerID
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// AddToPot increments the pot, enforcing the max_pot_amount cap from the boot snapshot
func (r *Room) AddToPot(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if r.MaxPotAmount > 0 && r.TotalPot+amount > r.MaxPotAmount {
		return errs.ErrPotLimitExceeded
	}
	r.TotalPot += amount
	r.UpdatedAt = timeProvider.Now()
	return nil
}
