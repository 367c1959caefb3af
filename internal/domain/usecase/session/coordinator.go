package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	gameport "github.com/playkaro/teenpatti-server/internal/domain/port/game"
	"github.com/playkaro/teenpatti-server/internal/domain/port/persistence"
	rt "github.com/playkaro/teenpatti-server/internal/domain/port/realtime"
	"github.com/playkaro/teenpatti-server/internal/domain/usecase/betting"
	roomuc "github.com/playkaro/teenpatti-server/internal/domain/usecase/room"
	"github.com/playkaro/teenpatti-server/internal/domain/usecase/wallet"
)

// maxJoinAttempts bounds the find-or-create loop when concurrent joiners
// race for the last seat of a waiting room
const maxJoinAttempts = 3

// Config carries the coordinator's configurable business knobs
type Config struct {
	// MinPlayersToStart is the seat count required before a round may start.
	// The reference ruleset allows starting alone, so the default is 1.
	MinPlayersToStart int

	// OneActiveRoomPerUser rejects joins from users already seated elsewhere
	// when enabled. Disabled by default to allow multi-tabling.
	OneActiveRoomPerUser bool
}

// JoinResult confirms a seat in a room
type JoinResult struct {
	RoomID   string
	Snapshot *entity.RoomSnapshot
}

// LeaveResult confirms an exit; RoomDeleted reports the terminal side effect
// of the last player leaving
type LeaveResult struct {
	RoomID      string
	RoomDeleted bool
	Snapshot    *entity.RoomSnapshot
}

// BetResult carries the committed bet and the resulting pot and wallet state
type BetResult struct {
	Bet           *entity.Bet
	TotalPot      int64
	WalletBalance int64
	Snapshot      *entity.RoomSnapshot
}

// CompleteResult reports the resolved winner and the amount paid out
type CompleteResult struct {
	WinnerID  uint64
	AmountWon int64
	Snapshot  *entity.RoomSnapshot
}

// Coordinator drives the room state machine. Every mutating action is
// dispatched onto the target room's worker, so actions against one room apply
// strictly in arrival order while other rooms proceed independently. Each
// successful mutation publishes its discrete event followed by a refreshed
// snapshot.
type Coordinator struct {
	dispatcher *Dispatcher
	registry   *roomuc.Registry
	engine     *betting.Engine
	ledger     *wallet.Ledger

	uow      persistence.UnitOfWork
	bootRepo persistence.BootRepository
	roomRepo persistence.RoomRepository
	userRepo persistence.UserRepository

	evaluator gameport.HandEvaluator
	sequencer gameport.TurnSequencer
	publisher rt.Publisher

	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewCoordinator wires the session coordinator
func NewCoordinator(
	dispatcher *Dispatcher,
	registry *roomuc.Registry,
	engine *betting.Engine,
	ledger *wallet.Ledger,
	uow persistence.UnitOfWork,
	bootRepo persistence.BootRepository,
	roomRepo persistence.RoomRepository,
	userRepo persistence.UserRepository,
	evaluator gameport.HandEvaluator,
	sequencer gameport.TurnSequencer,
	publisher rt.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Coordinator {
	if cfg.MinPlayersToStart <= 0 {
		cfg.MinPlayersToStart = 1
	}
	return &Coordinator{
		dispatcher:   dispatcher,
		registry:     registry,
		engine:       engine,
		ledger:       ledger,
		uow:          uow,
		bootRepo:     bootRepo,
		roomRepo:     roomRepo,
		userRepo:     userRepo,
		evaluator:    evaluator,
		sequencer:    sequencer,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Join seats the user in the oldest joinable room for the boot configuration,
// overflowing to a freshly created room when none has a free seat
func (c *Coordinator) Join(ctx context.Context, bootID, userID uint64) (*JoinResult, error) {
	boot, err := c.bootRepo.GetByID(ctx, bootID)
	if err != nil {
		return nil, err
	}
	if _, err := c.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if c.cfg.OneActiveRoomPerUser {
		active, err := c.roomRepo.FindByPlayer(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(active) > 0 {
			return nil, errs.ErrUserBusy
		}
	}

	for attempt := 0; attempt < maxJoinAttempts; attempt++ {
		candidate, err := c.registry.FindJoinable(ctx, bootID)
		if err != nil {
			return nil, err
		}

		if candidate == nil {
			rm, err := c.registry.Create(ctx, boot, userID)
			if err != nil {
				return nil, err
			}
			snapshot, err := c.snapshot(ctx, rm)
			if err != nil {
				return nil, err
			}
			c.broadcast(rm.ID, rt.EventPlayerJoined, map[string]any{
				"room_id": rm.ID,
				"user_id": userID,
			}, snapshot)
			return &JoinResult{RoomID: rm.ID, Snapshot: snapshot}, nil
		}

		value, err := c.dispatcher.Dispatch(ctx, candidate.ID, func(ctx context.Context) (any, error) {
			rm, err := c.roomRepo.GetByID(ctx, candidate.ID)
			if err != nil {
				return nil, err
			}
			if err := c.registry.Seat(ctx, rm, userID); err != nil {
				return nil, err
			}
			snapshot, err := c.snapshot(ctx, rm)
			if err != nil {
				return nil, err
			}
			c.broadcast(rm.ID, rt.EventPlayerJoined, map[string]any{
				"room_id": rm.ID,
				"user_id": userID,
			}, snapshot)
			return &JoinResult{RoomID: rm.ID, Snapshot: snapshot}, nil
		})
		if err != nil {
			// The candidate filled, started or vanished between the lookup
			// and our turn on its queue; look again.
			if errors.Is(err, errs.ErrRoomFull) || errors.Is(err, errs.ErrRoomNotFound) || errors.Is(err, errs.ErrInvalidState) {
				continue
			}
			return nil, err
		}
		return value.(*JoinResult), nil
	}

	return nil, errs.ErrRoomFull
}

// Leave removes the user's seat. Leaving mid-round forces a fold first so the
// abandoned hand is dead. The last player leaving deletes the room.
func (c *Coordinator) Leave(ctx context.Context, roomID string, userID uint64) (*LeaveResult, error) {
	value, err := c.dispatcher.Dispatch(ctx, roomID, func(ctx context.Context) (any, error) {
		rm, err := c.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if !rm.IsSeated(userID) {
			return nil, errs.ErrNotInRoom
		}

		if rm.Status == entity.StatusRunning {
			if _, err := c.engine.PlaceBet(ctx, rm, userID, 0, entity.BetPack); err != nil {
				return nil, err
			}
			c.publisher.Publish(rm.ID, rt.EventPlayerFolded, map[string]any{
				"room_id": rm.ID,
				"user_id": userID,
				"forced":  true,
			})
		}

		err = c.registry.Unseat(ctx, rm, userID)
		if errors.Is(err, errs.ErrRoomDeleted) {
			c.publisher.Publish(roomID, rt.EventPlayerLeft, map[string]any{
				"room_id": roomID,
				"user_id": userID,
			})
			c.publisher.CloseRoom(roomID)
			// The room is gone; retire its worker so a long-running server
			// does not accumulate one goroutine per room ever created
			c.dispatcher.Release(roomID)
			return &LeaveResult{RoomID: roomID, RoomDeleted: true}, nil
		}
		if err != nil {
			return nil, err
		}

		snapshot, err := c.snapshot(ctx, rm)
		if err != nil {
			return nil, err
		}
		c.broadcast(rm.ID, rt.EventPlayerLeft, map[string]any{
			"room_id": rm.ID,
			"user_id": userID,
		}, snapshot)
		return &LeaveResult{RoomID: rm.ID, Snapshot: snapshot}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*LeaveResult), nil
}

// PlaceBet validates and commits a betting action and announces the result
func (c *Coordinator) PlaceBet(ctx context.Context, roomID string, userID uint64, amount int64, kind entity.BetKind) (*BetResult, error) {
	value, err := c.dispatcher.Dispatch(ctx, roomID, func(ctx context.Context) (any, error) {
		rm, err := c.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}

		result, err := c.engine.PlaceBet(ctx, rm, userID, amount, kind)
		if err != nil {
			return nil, err
		}

		snapshot, err := c.snapshot(ctx, rm)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"room_id":   rm.ID,
			"user_id":   userID,
			"kind":      kind,
			"amount":    amount,
			"total_pot": result.TotalPot,
		}
		event := rt.EventBetPlaced
		switch kind {
		case entity.BetPack:
			event = rt.EventPlayerFolded
		case entity.BetSideShow:
			event = rt.EventSideShowRequested
		default:
			payload["wallet_balance"] = result.WalletBalance
			payload["next_turn"] = c.sequencer.NextTurn(rm.ID, rm.Players, userID)
		}
		c.broadcast(rm.ID, event, payload, snapshot)

		return &BetResult{
			Bet:           result.Bet,
			TotalPot:      result.TotalPot,
			WalletBalance: result.WalletBalance,
			Snapshot:      snapshot,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*BetResult), nil
}

// RespondSideShow relays a seated player's answer to a side-show request.
// Hand comparison itself is the external evaluator's concern; the server only
// validates seating and sequences the notification.
func (c *Coordinator) RespondSideShow(ctx context.Context, roomID string, userID, requesterID uint64, accepted bool) (*entity.RoomSnapshot, error) {
	value, err := c.dispatcher.Dispatch(ctx, roomID, func(ctx context.Context) (any, error) {
		rm, err := c.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if !rm.IsSeated(userID) || !rm.IsSeated(requesterID) {
			return nil, errs.ErrNotInRoom
		}
		if rm.Status != entity.StatusRunning {
			return nil, errs.NewStateError(rm.ID, string(rm.Status), "respond to a side show")
		}

		snapshot, err := c.snapshot(ctx, rm)
		if err != nil {
			return nil, err
		}
		c.broadcast(rm.ID, rt.EventSideShowResponded, map[string]any{
			"room_id":      rm.ID,
			"user_id":      userID,
			"requester_id": requesterID,
			"accepted":     accepted,
		}, snapshot)
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*entity.RoomSnapshot), nil
}

// StartRound transitions the room from waiting to running
func (c *Coordinator) StartRound(ctx context.Context, roomID string) (*entity.RoomSnapshot, error) {
	value, err := c.dispatcher.Dispatch(ctx, roomID, func(ctx context.Context) (any, error) {
		rm, err := c.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if err := rm.Start(c.cfg.MinPlayersToStart, c.timeProvider); err != nil {
			return nil, err
		}
		if err := c.roomRepo.Update(ctx, rm); err != nil {
			return nil, fmt.Errorf("failed to persist round start: %w", err)
		}

		snapshot, err := c.snapshot(ctx, rm)
		if err != nil {
			return nil, err
		}
		c.broadcast(rm.ID, rt.EventRoundStarted, map[string]any{
			"room_id": rm.ID,
			"players": rm.Players,
		}, snapshot)
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*entity.RoomSnapshot), nil
}

// CompleteGame resolves a winner through the hand evaluator and pays out the
// pot. The credit, the winner assignment and the status change commit as one
// atomic unit.
func (c *Coordinator) CompleteGame(ctx context.Context, roomID string) (*CompleteResult, error) {
	value, err := c.dispatcher.Dispatch(ctx, roomID, func(ctx context.Context) (any, error) {
		rm, err := c.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if rm.Status == entity.StatusCompleted {
			return nil, errs.ErrAlreadyCompleted
		}
		if rm.Status != entity.StatusRunning {
			return nil, errs.NewStateError(rm.ID, string(rm.Status), "complete the game")
		}

		winnerID, err := c.evaluator.PickWinner(ctx, rm.ID, rm.Players)
		if err != nil {
			return nil, fmt.Errorf("hand evaluation failed: %w", err)
		}

		amountWon := rm.TotalPot
		txCtx, err := c.uow.Begin(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to begin payout transaction: %w", err)
		}
		if err := c.payout(txCtx, rm, winnerID, amountWon); err != nil {
			if rbErr := c.uow.Rollback(txCtx); rbErr != nil {
				c.logger.Error("Failed to rollback payout", map[string]any{
					"room_id": rm.ID,
					"error":   rbErr.Error(),
				})
			}
			return nil, err
		}
		if err := c.uow.Commit(txCtx); err != nil {
			return nil, fmt.Errorf("failed to commit payout: %w", err)
		}

		snapshot, err := c.snapshot(ctx, rm)
		if err != nil {
			return nil, err
		}
		c.publisher.Publish(rm.ID, rt.EventShowdownResult, map[string]any{
			"room_id":    rm.ID,
			"winner_id":  winnerID,
			"amount_won": amountWon,
		})
		c.broadcast(rm.ID, rt.EventGameCompleted, map[string]any{
			"room_id":    rm.ID,
			"winner_id":  winnerID,
			"amount_won": amountWon,
		}, snapshot)
		c.publisher.Publish(rm.ID, rt.EventRoundRestartScheduled, map[string]any{
			"room_id": rm.ID,
			"hint":    "join a new room for the next round",
		})

		c.logger.Info("Game completed", map[string]any{
			"room_id":    rm.ID,
			"winner_id":  winnerID,
			"amount_won": amountWon,
		})
		return &CompleteResult{WinnerID: winnerID, AmountWon: amountWon, Snapshot: snapshot}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*CompleteResult), nil
}

// payout runs inside an open unit of work: credit the winner, mark the room
// completed. A zero pot completes the room without a ledger entry.
func (c *Coordinator) payout(ctx context.Context, rm *entity.Room, winnerID uint64, amount int64) error {
	if amount > 0 {
		description := fmt.Sprintf("pot won in room %s", rm.ID)
		if _, err := c.ledger.ApplyInTx(ctx, winnerID, amount, entity.DirectionCredit, entity.ReasonWin, description); err != nil {
			return err
		}
	}
	if err := rm.Complete(winnerID, c.timeProvider); err != nil {
		return err
	}
	if err := c.uow.RoomRepository(ctx).Update(ctx, rm); err != nil {
		return fmt.Errorf("failed to persist completion: %w", err)
	}
	return nil
}

// RoomSnapshot builds the current read-only projection of a room. Reads skip
// the dispatcher; they observe the latest committed version.
func (c *Coordinator) RoomSnapshot(ctx context.Context, roomID string) (*entity.RoomSnapshot, error) {
	rm, err := c.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return c.snapshot(ctx, rm)
}

// ListBoots returns the active boot configurations for the lobby
func (c *Coordinator) ListBoots(ctx context.Context) ([]*entity.Boot, error) {
	return c.bootRepo.ListActive(ctx)
}

// Shutdown drains the per-room workers
func (c *Coordinator) Shutdown() {
	c.dispatcher.Shutdown()
}

// snapshot resolves player display data and projects the room
func (c *Coordinator) snapshot(ctx context.Context, rm *entity.Room) (*entity.RoomSnapshot, error) {
	users, err := c.userRepo.GetByIDs(ctx, rm.Players)
	if err != nil {
		return nil, err
	}
	return entity.SnapshotRoom(rm, users, c.timeProvider.Now()), nil
}

// broadcast publishes the discrete event and immediately follows it with the
// refreshed snapshot, so observers never reconstruct state from events alone
func (c *Coordinator) broadcast(roomID, event string, payload map[string]any, snapshot *entity.RoomSnapshot) {
	c.publisher.Publish(roomID, event, payload)
	c.publisher.PublishSnapshot(roomID, snapshot)
}
