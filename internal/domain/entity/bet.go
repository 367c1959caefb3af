package entity

import (
	"time"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

// BetKind classifies a betting action
type BetKind string

// Bet kinds. Blind is an unseen wager, chaal a seen one. Pack marks a fold
// and carries no amount. SideShow records a private hand comparison request
// paid at the chaal rate.
const (
	BetBlind    BetKind = "blind"
	BetChaal    BetKind = "chaal"
	BetPack     BetKind = "pack"
	BetSideShow BetKind = "side_show"
)

// ValidBetKind reports whether the string names a known bet kind
func ValidBetKind(kind string) bool {
	switch BetKind(kind) {
	case BetBlind, BetChaal, BetPack, BetSideShow:
		return true
	}
	return false
}

// Bet is an immutable record of a committed betting action.
// Never mutated or deleted once written.
type Bet struct {
	ID          string // UUID
	RoomID      string
	UserID      uint64
	Amount      int64
	Kind        BetKind
	IsBlind     bool
	CommittedAt time.Time
}

// NewBet creates a bet record. Pack bets must carry a zero amount; every
// other kind requires a positive one.
func NewBet(id, roomID string, userID uint64, amount int64, kind BetKind, timeProvider coreport.TimeProvider) (*Bet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !ValidBetKind(string(kind)) {
		return nil, errs.ErrInvalidRequest
	}
	if kind == BetPack {
		if amount != 0 {
			return nil, errs.ErrInvalidAmount
		}
	} else if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Bet{
		ID:          id,
		RoomID:      roomID,
		UserID:      userID,
		Amount:      amount,
		Kind:        kind,
		IsBlind:     kind == BetBlind,
		CommittedAt: timeProvider.Now(),
	}, nil
}
