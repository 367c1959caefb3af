package entity

import "time"

// Boot is the immutable ruleset governing stakes and limits for a room.
// Boots are seeded at startup and never mutated by the game core.
type Boot struct {
	ID           uint64
	BootAmount   int64 // Ante collected from every player when a round starts
	MaxBlind     int64 // Ceiling for a single blind bet
	MaxChaal     int64 // Ceiling for a single chaal bet
	MaxPotAmount int64 // Pot cap; a bet that would exceed it is rejected
	MinBuyIn     int64
	MaxBuyIn     int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
