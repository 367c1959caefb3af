package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobinSequencer_NextTurn(t *testing.T) {
	s := NewRoundRobinSequencer()
	seated := []uint64{10, 20, 30}

	t.Run("advances to the next seat", func(t *testing.T) {
		assert.Equal(t, uint64(20), s.NextTurn("room-1", seated, 10))
		assert.Equal(t, uint64(30), s.NextTurn("room-1", seated, 20))
	})

	t.Run("wraps around the table", func(t *testing.T) {
		assert.Equal(t, uint64(10), s.NextTurn("room-1", seated, 30))
	})

	t.Run("unknown current seat starts from the first", func(t *testing.T) {
		assert.Equal(t, uint64(10), s.NextTurn("room-1", seated, 99))
	})

	t.Run("empty table yields zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), s.NextTurn("room-1", nil, 10))
	})
}
