package entity

import "time"

// PlayerView is the per-player display data embedded in a room snapshot
type PlayerView struct {
	UserID        uint64 `json:"user_id"`
	PlayerID      string `json:"player_id"`
	UserName      string `json:"user_name"`
	Avatar        string `json:"avatar,omitempty"`
	WalletBalance int64  `json:"wallet_balance"`
}

// RoomSnapshot is a self-sufficient, read-only projection of a room sent to
// observers. It is generated on demand and never persisted; clients treat it
// as the source of truth and the discrete events as notifications only.
type RoomSnapshot struct {
	RoomID       string       `json:"room_id"`
	BootID       uint64       `json:"boot_id"`
	Status       RoomStatus   `json:"status"`
	Players      []PlayerView `json:"players"`
	MaxPlayers   int          `json:"max_players"`
	TotalPot     int64        `json:"total_pot"`
	WinnerID     *uint64      `json:"winner_id,omitempty"`
	BootAmount   int64        `json:"boot_amount"`
	MaxBlind     int64        `json:"max_blind"`
	MaxChaal     int64        `json:"max_chaal"`
	MaxPotAmount int64        `json:"max_pot_amount"`
	CreatedAt    time.Time    `json:"created_at"`
	GeneratedAt  time.Time    `json:"generated_at"`
}

// SnapshotRoom projects a room plus resolved user display data into a snapshot.
// Users missing from the resolver map are rendered with id-only views so a
// stale read never hides a seat.
func SnapshotRoom(room *Room, users map[uint64]*User, generatedAt time.Time) *RoomSnapshot {
	players := make([]PlayerView, 0, len(room.Players))
	for _, id := range room.Players {
		view := PlayerView{UserID: id}
		if u, ok := users[id]; ok {
			view.PlayerID = u.PlayerID
			view.UserName = u.UserName
			view.Avatar = u.Avatar
			view.WalletBalance = u.WalletBalance()
		}
		players = append(players, view)
	}

	return &RoomSnapshot{
		RoomID:       room.ID,
		BootID:       room.BootID,
		Status:       room.Status,
		Players:      players,
		MaxPlayers:   room.MaxPlayers,
		TotalPot:     room.TotalPot,
		WinnerID:     room.WinnerID,
		BootAmount:   room.BootAmount,
		MaxBlind:     room.MaxBlind,
		MaxChaal:     room.MaxChaal,
		MaxPotAmount: room.MaxPotAmount,
		CreatedAt:    room.CreatedAt,
		GeneratedAt:  generatedAt,
	}
}
