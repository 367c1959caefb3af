package dto

import "github.com/playkaro/teenpatti-server/internal/domain/entity"

// JoinGameRequest asks for a seat at a table with the given boot configuration
type JoinGameRequest struct {
	BootID uint64 `json:"boot_id" binding:"required"`
}

// JoinGameResponse confirms the seat and carries the current room state
type JoinGameResponse struct {
	RoomID string               `json:"room_id"`
	Room   *entity.RoomSnapshot `json:"room"`
}

// ExitGameRequest asks to leave a room
type ExitGameRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}

// ExitGameResponse confirms the exit. Room is omitted when leaving emptied
// and deleted the room.
type ExitGameResponse struct {
	RoomID      string               `json:"room_id"`
	RoomDeleted bool                 `json:"room_deleted"`
	Room        *entity.RoomSnapshot `json:"room,omitempty"`
}

// PlaceBetRequest commits a betting action. Pack carries a zero amount, so
// the amount field only validates non-negativity here; kind-specific rules
// live in the domain.
type PlaceBetRequest struct {
	RoomID string `json:"room_id" binding:"required"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Kind   string `json:"kind" binding:"required,oneof=blind chaal pack side_show"`
}

// PlaceBetResponse reports the committed bet and resulting balances
type PlaceBetResponse struct {
	BetID         string               `json:"bet_id"`
	Kind          string               `json:"kind"`
	Amount        int64                `json:"amount"`
	TotalPot      int64                `json:"total_pot"`
	WalletBalance int64                `json:"wallet_balance"`
	Room          *entity.RoomSnapshot `json:"room"`
}

// StartRoundRequest moves a waiting room into the running state
type StartRoundRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}

// CompleteGameRequest resolves a running round
type CompleteGameRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}

// CompleteGameResponse reports the showdown outcome
type CompleteGameResponse struct {
	WinnerID  uint64               `json:"winner_id"`
	AmountWon int64                `json:"amount_won"`
	Room      *entity.RoomSnapshot `json:"room"`
}

// SideShowResponseRequest answers a pending side show request
type SideShowResponseRequest struct {
	RoomID      string `json:"room_id" binding:"required"`
	RequesterID uint64 `json:"requester_id" binding:"required"`
	Accepted    bool   `json:"accepted"`
}

// RoomStateResponse wraps a read-only room snapshot
type RoomStateResponse struct {
	Room *entity.RoomSnapshot `json:"room"`
}

// BootResponse describes one stake table for the lobby list
type BootResponse struct {
	ID           uint64 `json:"id"`
	BootAmount   int64  `json:"boot_amount"`
	MaxBlind     int64  `json:"max_blind"`
	MaxChaal     int64  `json:"max_chaal"`
	MaxPotAmount int64  `json:"max_pot_amount"`
	MinBuyIn     int64  `json:"min_buy_in"`
	MaxBuyIn     int64  `json:"max_buy_in"`
}

// BootListResponse is the lobby list of joinable stake tables
type BootListResponse struct {
	Boots []BootResponse `json:"boots"`
}

// NewBootResponse maps a boot entity to its API shape
func NewBootResponse(boot *entity.Boot) BootResponse {
	return BootResponse{
		ID:           boot.ID,
		BootAmount:   boot.BootAmount,
		MaxBlind:     boot.MaxBlind,
		MaxChaal:     boot.MaxChaal,
		MaxPotAmount: boot.MaxPotAmount,
		MinBuyIn:     boot.MinBuyIn,
		MaxBuyIn:     boot.MaxBuyIn,
	}
}
