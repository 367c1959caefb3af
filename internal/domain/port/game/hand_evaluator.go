package game

import "context"

// HandEvaluator resolves the winner of a round among the seated players.
// The real card-ranking engine lives outside this service; the server ships
// a uniform-random fallback so the coordinator can be exercised without it.
type HandEvaluator interface {
	// PickWinner returns the winning user id among the candidates.
	// Candidates are never empty; the coordinator guarantees at least one
	// seated player before asking for a winner.
	PickWinner(ctx context.Context, roomID string, candidates []uint64) (uint64, error)
}

// TurnSequencer decides whose turn it is to act. The reference rules engine
// is external; a deterministic round-robin stand-in ships with the server so
// the coordinator can be tested against a predictable order.
type TurnSequencer interface {
	// NextTurn returns the user id that acts after current among the seated
	// players, wrapping around the seat order.
	NextTurn(roomID string, seated []uint64, current uint64) uint64
}
