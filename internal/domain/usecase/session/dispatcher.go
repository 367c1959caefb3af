package session

import (
	"context"
	"sync"

	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

// Action is a unit of work executed under a room's mutual exclusion
type Action func(ctx context.Context) (any, error)

// Dispatcher serializes all mutating actions for a room id onto a single
// worker goroutine, so concurrent calls against one room apply in arrival
// order while actions on different rooms proceed in parallel. This is the
// per-room mutual exclusion the rest of the system relies on.
//
// Workers live from a room's first dispatch until Release(roomID) retires
// them; a retired room id gets a fresh worker on its next dispatch.
type Dispatcher struct {
	logger coreport.Logger

	// mu guards workers, closed and every worker's pending/retired state
	mu      sync.Mutex
	workers map[string]*roomWorker
	closed  bool

	workerWaitGroup sync.WaitGroup
	queueSize       int
}

// roomWorker owns one room's queue. The queue is closed only once the worker
// is retired and no accepted request is still in flight, so a sender never
// races a close.
type roomWorker struct {
	queue chan *actionRequest

	// pending counts requests accepted in Dispatch but not yet picked up by
	// the worker loop; guarded by Dispatcher.mu
	pending int

	// retired stops new requests from being routed here; guarded by
	// Dispatcher.mu
	retired bool

	queueClosed bool
}

// actionRequest is a queued action awaiting its room's worker
type actionRequest struct {
	ctx        context.Context
	action     Action
	resultChan chan *actionResult
}

// actionResult carries an executed action's outcome back to the caller
type actionResult struct {
	value any
	err   error
}

// NewDispatcher creates a per-room action dispatcher
func NewDispatcher(logger coreport.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		logger:    logger,
		workers:   make(map[string]*roomWorker),
		queueSize: queueSize,
	}
}

// Dispatch enqueues an action on the room's queue and blocks until the
// room's worker has executed it, honoring ctx cancellation both while
// enqueuing and while waiting for the result.
func (d *Dispatcher) Dispatch(ctx context.Context, roomID string, action Action) (any, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, errs.ErrShuttingDown
	}
	w, ok := d.workers[roomID]
	if !ok || w.retired {
		w = &roomWorker{queue: make(chan *actionRequest, d.queueSize)}
		d.workers[roomID] = w
		d.workerWaitGroup.Add(1)
		d.logger.Debug("Starting room worker", map[string]any{
			"room_id": roomID,
		})
		go d.runRoomWorker(roomID, w)
	}
	w.pending++
	d.mu.Unlock()

	req := &actionRequest{
		ctx:        ctx,
		action:     action,
		resultChan: make(chan *actionResult, 1),
	}

	select {
	case w.queue <- req:
	case <-ctx.Done():
		d.mu.Lock()
		w.pending--
		d.maybeCloseQueue(w)
		d.mu.Unlock()
		d.logger.Warn("Context canceled while enqueuing room action", map[string]any{
			"room_id": roomID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case result := <-req.resultChan:
		return result.value, result.err
	case <-ctx.Done():
		d.logger.Warn("Context canceled while waiting for room action result", map[string]any{
			"room_id": roomID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// Release retires the room's worker once every accepted request has been
// picked up, and frees the room's map entry. Requests that race the release
// still execute; a later dispatch for the same id starts a fresh worker.
// Safe to call from inside a dispatched action.
func (d *Dispatcher) Release(roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.workers[roomID]
	if !ok {
		return
	}
	w.retired = true
	delete(d.workers, roomID)
	d.maybeCloseQueue(w)

	d.logger.Debug("Room worker released", map[string]any{
		"room_id": roomID,
	})
}

// maybeCloseQueue closes a retired worker's queue once no accepted request
// can still send on it. Callers must hold d.mu.
func (d *Dispatcher) maybeCloseQueue(w *roomWorker) {
	if w.retired && w.pending == 0 && !w.queueClosed {
		close(w.queue)
		w.queueClosed = true
	}
}

// runRoomWorker executes a room's actions one at a time, in arrival order
func (d *Dispatcher) runRoomWorker(roomID string, w *roomWorker) {
	defer d.workerWaitGroup.Done()

	for req := range w.queue {
		d.mu.Lock()
		w.pending--
		d.maybeCloseQueue(w)
		d.mu.Unlock()

		if err := req.ctx.Err(); err != nil {
			// Caller gave up while queued; skip without touching state
			req.resultChan <- &actionResult{err: err}
			close(req.resultChan)
			continue
		}

		value, err := req.action(req.ctx)
		req.resultChan <- &actionResult{value: value, err: err}
		close(req.resultChan)
	}

	d.logger.Debug("Room worker stopped", map[string]any{
		"room_id": roomID,
	})
}

// Shutdown rejects further dispatches, retires every room worker and waits
// for them to drain
func (d *Dispatcher) Shutdown() {
	d.logger.Info("Shutting down room dispatcher", nil)

	d.mu.Lock()
	d.closed = true
	for roomID, w := range d.workers {
		w.retired = true
		d.maybeCloseQueue(w)
		delete(d.workers, roomID)
	}
	d.mu.Unlock()

	d.workerWaitGroup.Wait()
	d.logger.Info("Room dispatcher shut down", nil)
}

// workerCount reports how many room workers are currently registered
func (d *Dispatcher) workerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.workers)
}
