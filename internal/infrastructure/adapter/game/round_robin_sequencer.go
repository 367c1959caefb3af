package game

import (
	gameport "github.com/playkaro/teenpatti-server/internal/domain/port/game"
)

// RoundRobinSequencer hands the turn to the next seat in join order, wrapping
// around the table. Deterministic, so coordinator tests can assert on it.
type RoundRobinSequencer struct{}

// NewRoundRobinSequencer creates a round-robin turn sequencer
func NewRoundRobinSequencer() *RoundRobinSequencer {
	return &RoundRobinSequencer{}
}

// NextTurn returns the seat after current, wrapping to the first seat. When
// current is unknown the first seat acts.
func (s *RoundRobinSequencer) NextTurn(_ string, seated []uint64, current uint64) uint64 {
	if len(seated) == 0 {
		return 0
	}
	for i, id := range seated {
		if id == current {
			return seated[(i+1)%len(seated)]
		}
	}
	return seated[0]
}

var _ gameport.TurnSequencer = (*RoundRobinSequencer)(nil)
