package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	mockcore "github.com/playkaro/teenpatti-server/mocks/port/core"
)

func newDispatcher(t *testing.T) *Dispatcher {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return NewDispatcher(mockLogger, 0)
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the action's value and error", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		value, err := d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, value)

		wantErr := errors.New("rejected")
		value, err = d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
			return nil, wantErr
		})
		assert.Nil(t, value)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("actions on one room apply strictly in arrival order", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		const goroutines = 50
		var mu sync.Mutex
		var observed []int

		// The pot update pattern: each action reads shared state and writes it
		// back. Serialized execution means no increment is ever lost.
		pot := 0

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, err := d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
					current := pot
					pot = current + 1
					mu.Lock()
					observed = append(observed, pot)
					mu.Unlock()
					return nil, nil
				})
				assert.NoError(t, err)
			}(i)
		}
		close(start)
		wg.Wait()

		assert.Equal(t, goroutines, pot, "a lost update means two actions ran concurrently")
		require.Len(t, observed, goroutines)
		for i, v := range observed {
			assert.Equal(t, i+1, v, "pot values must be strictly increasing")
		}
	})

	t.Run("different rooms proceed independently", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		blockA := make(chan struct{})
		started := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Dispatch(ctx, "room-a", func(ctx context.Context) (any, error) {
				close(started)
				<-blockA
				return nil, nil
			})
			assert.NoError(t, err)
		}()

		<-started

		// room-b must not wait behind room-a's stalled worker
		done := make(chan struct{})
		go func() {
			_, err := d.Dispatch(ctx, "room-b", func(ctx context.Context) (any, error) {
				return nil, nil
			})
			assert.NoError(t, err)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("action on an idle room was blocked by another room's worker")
		}

		close(blockA)
		wg.Wait()
	})

	t.Run("honors context cancellation while waiting", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		block := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
				close(started)
				<-block
				return nil, nil
			})
		}()
		<-started

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := d.Dispatch(cancelCtx, "room-1", func(ctx context.Context) (any, error) {
			t.Error("canceled action must not run")
			return nil, nil
		})
		assert.ErrorIs(t, err, context.Canceled)

		close(block)
	})
}

func TestDispatcher_Release(t *testing.T) {
	ctx := context.Background()

	t.Run("retires the worker and frees the entry for every released room", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		const rooms = 200
		for i := 0; i < rooms; i++ {
			_, err := d.Dispatch(ctx, fmt.Sprintf("room-%d", i), func(ctx context.Context) (any, error) {
				return nil, nil
			})
			require.NoError(t, err)
		}
		require.Equal(t, rooms, d.workerCount())

		for i := 0; i < rooms; i++ {
			d.Release(fmt.Sprintf("room-%d", i))
		}
		assert.Equal(t, 0, d.workerCount(), "released rooms must not retain workers")
	})

	t.Run("a released room id gets a fresh worker on the next dispatch", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		_, err := d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
			return nil, nil
		})
		require.NoError(t, err)
		d.Release("room-1")
		require.Equal(t, 0, d.workerCount())

		value, err := d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, value)
		assert.Equal(t, 1, d.workerCount())
	})

	t.Run("safe to call from inside a dispatched action", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		// The last-leave path releases the room from within the room's own
		// worker, right after deleting it
		_, err := d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
			d.Release("room-1")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, d.workerCount())
	})

	t.Run("releasing an unknown room is a no-op", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		d.Release("room-never-dispatched")
		assert.Equal(t, 0, d.workerCount())
	})

	t.Run("requests racing a release still execute", func(t *testing.T) {
		d := newDispatcher(t)
		defer d.Shutdown()

		block := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
				close(started)
				<-block
				return nil, nil
			})
		}()
		<-started

		done := make(chan struct{})
		go func() {
			_, err := d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
				return nil, nil
			})
			assert.NoError(t, err)
			close(done)
		}()

		d.Release("room-1")
		close(block)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("request racing the release was dropped")
		}
	})
}

func TestDispatcher_Shutdown(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()

	executed := 0
	for i := 0; i < 5; i++ {
		_, err := d.Dispatch(ctx, "room-1", func(ctx context.Context) (any, error) {
			executed++
			return nil, nil
		})
		require.NoError(t, err)
	}

	// Shutdown drains the workers and returns
	done := make(chan struct{})
	go func() {
		d.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not drain the workers")
	}
	assert.Equal(t, 5, executed)

	// Dispatches arriving after shutdown are rejected instead of racing the
	// closed queues
	_, err := d.Dispatch(ctx, "room-2", func(ctx context.Context) (any, error) {
		t.Error("action must not run after shutdown")
		return nil, nil
	})
	assert.ErrorIs(t, err, errs.ErrShuttingDown)
}
