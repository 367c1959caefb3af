package game

import (
	"context"
	"math/rand"
	"sync"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	gameport "github.com/playkaro/teenpatti-server/internal/domain/port/game"
)

// RandomEvaluator is the placeholder winner selection used until a real
// card-ranking engine is plugged in: a uniform-random pick among the seated
// players. It lives behind the HandEvaluator port so swapping it out never
// touches the coordinator.
type RandomEvaluator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomEvaluator creates a random hand evaluator seeded from src
func NewRandomEvaluator(seed int64) *RandomEvaluator {
	return &RandomEvaluator{rng: rand.New(rand.NewSource(seed))}
}

// PickWinner returns a uniformly random candidate
func (e *RandomEvaluator) PickWinner(_ context.Context, _ string, candidates []uint64) (uint64, error) {
	if len(candidates) == 0 {
		return 0, errs.ErrInvalidState
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return candidates[e.rng.Intn(len(candidates))], nil
}

var _ gameport.HandEvaluator = (*RandomEvaluator)(nil)
