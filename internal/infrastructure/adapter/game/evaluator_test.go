package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
)

func TestRandomEvaluator_PickWinner(t *testing.T) {
	ctx := context.Background()

	t.Run("always picks a candidate", func(t *testing.T) {
		e := NewRandomEvaluator(1)
		candidates := []uint64{10, 20, 30}

		seen := map[uint64]bool{}
		for i := 0; i < 100; i++ {
			winner, err := e.PickWinner(ctx, "room-1", candidates)
			require.NoError(t, err)
			assert.Contains(t, candidates, winner)
			seen[winner] = true
		}
		// With 100 uniform draws over 3 candidates every seat gets picked
		assert.Len(t, seen, len(candidates))
	})

	t.Run("single candidate wins outright", func(t *testing.T) {
		e := NewRandomEvaluator(1)

		winner, err := e.PickWinner(ctx, "room-1", []uint64{42})

		require.NoError(t, err)
		assert.Equal(t, uint64(42), winner)
	})

	t.Run("no candidates is an error", func(t *testing.T) {
		e := NewRandomEvaluator(1)

		winner, err := e.PickWinner(ctx, "room-1", nil)

		assert.Equal(t, uint64(0), winner)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
