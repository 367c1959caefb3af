package persistence

import (
	"context"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
)

// BetRepository stores immutable bet records. Bets are append-only; there is
// deliberately no update or delete.
type BetRepository interface {
	// Create appends a bet record
	//
	// Possible errors:
	// - ErrConstraintViolation: if the bet ID already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, bet *entity.Bet) error

	// ListByRoom returns all bets committed against a room in commit order
	ListByRoom(ctx context.Context, roomID string) ([]*entity.Bet, error)

	// SumByRoom returns the total committed amount for a room, used to audit
	// the pot-equals-sum-of-bets invariant
	SumByRoom(ctx context.Context, roomID string) (int64, error)
}
