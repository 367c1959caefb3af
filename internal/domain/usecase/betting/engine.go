package betting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/domain/port/persistence"
	"github.com/playkaro/teenpatti-server/internal/domain/usecase/wallet"
)

// Config carries the betting rules that are configuration rather than boot data
type Config struct {
	// AllowBlindAnteWhileWaiting permits blind bets before the round starts
	AllowBlindAnteWhileWaiting bool
}

// Result is the outcome of a committed bet
type Result struct {
	Bet           *entity.Bet
	Transaction   *entity.WalletTransaction // nil for pack
	WalletBalance int64
	TotalPot      int64
}

// Engine validates betting actions against a room's boot ruleset and commits
// the wallet debit, bet record and pot increment as one atomic unit. The
// caller (session coordinator) serializes invocations per room and passes in
// the room it owns for the duration of the action; the engine mutates the
// room's pot in place on success.
type Engine struct {
	uow          persistence.UnitOfWork
	ledger       *wallet.Ledger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewEngine creates a betting engine
func NewEngine(
	uow persistence.UnitOfWork,
	ledger *wallet.Ledger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Engine {
	return &Engine{
		uow:          uow,
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// PlaceBet validates and commits a bet for a seated user. Validation failures
// leave every piece of state untouched: the debit, the bet record and the pot
// increment commit together or not at all.
func (e *Engine) PlaceBet(ctx context.Context, room *entity.Room, userID uint64, amount int64, kind entity.BetKind) (*Result, error) {
	if err := e.validate(room, userID, amount, kind); err != nil {
		return nil, errs.NewBetError(room.ID, userID, string(kind), amount, err)
	}

	if kind == entity.BetPack {
		return e.fold(ctx, room, userID)
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin bet transaction: %w", err)
	}

	result, err := e.commit(txCtx, room, userID, amount, kind)
	if err != nil {
		if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
			e.logger.Error("Failed to rollback bet transaction", map[string]any{
				"room_id": room.ID,
				"user_id": userID,
				"error":   rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit bet transaction: %w", err)
	}

	e.logger.Info("Bet placed", map[string]any{
		"room_id":   room.ID,
		"user_id":   userID,
		"kind":      kind,
		"amount":    amount,
		"total_pot": room.TotalPot,
	})
	return result, nil
}

// validate applies the rejection rules in order: room state, seating, amount
// and kind ceiling, pot cap. Balance sufficiency is checked last, inside the
// transaction, under the row lock.
func (e *Engine) validate(room *entity.Room, userID uint64, amount int64, kind entity.BetKind) error {
	if !entity.ValidBetKind(string(kind)) {
		return errs.ErrInvalidRequest
	}

	switch room.Status {
	case entity.StatusRunning:
		// all kinds accepted
	case entity.StatusWaiting:
		if !(kind == entity.BetBlind && e.cfg.AllowBlindAnteWhileWaiting) {
			return errs.NewStateError(room.ID, string(room.Status), "place a bet")
		}
	default:
		return errs.NewStateError(room.ID, string(room.Status), "place a bet")
	}

	if !room.IsSeated(userID) {
		return errs.ErrNotInRoom
	}

	if kind == entity.BetPack {
		// folding carries no amount and skips the money checks below
		if amount != 0 {
			return errs.ErrInvalidAmount
		}
		return nil
	}

	if amount <= 0 {
		return errs.ErrInvalidAmount
	}

	switch kind {
	case entity.BetBlind:
		if room.MaxBlind > 0 && amount > room.MaxBlind {
			return errs.ErrInvalidAmount
		}
	case entity.BetChaal, entity.BetSideShow:
		if room.MaxChaal > 0 && amount > room.MaxChaal {
			return errs.ErrInvalidAmount
		}
	}

	if room.MaxPotAmount > 0 && room.TotalPot+amount > room.MaxPotAmount {
		return errs.ErrPotLimitExceeded
	}
	return nil
}

// commit runs inside an open unit of work: debit wallet, append bet, bump pot
func (e *Engine) commit(ctx context.Context, room *entity.Room, userID uint64, amount int64, kind entity.BetKind) (*Result, error) {
	description := fmt.Sprintf("%s bet in room %s", kind, room.ID)
	txn, err := e.ledger.ApplyInTx(ctx, userID, amount, entity.DirectionDebit, entity.ReasonBet, description)
	if err != nil {
		return nil, err
	}

	bet, err := entity.NewBet(uuid.NewString(), room.ID, userID, amount, kind, e.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := e.uow.BetRepository(ctx).Create(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to append bet record: %w", err)
	}

	if err := room.AddToPot(amount, e.timeProvider); err != nil {
		return nil, err
	}
	if err := e.uow.RoomRepository(ctx).Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to persist pot update: %w", err)
	}

	return &Result{
		Bet:           bet,
		Transaction:   txn,
		WalletBalance: txn.BalanceAfter,
		TotalPot:      room.TotalPot,
	}, nil
}

// fold records a pack bet. It never touches the ledger or the pot; the record
// only marks the player inactive for the rest of the round.
func (e *Engine) fold(ctx context.Context, room *entity.Room, userID uint64) (*Result, error) {
	bet, err := entity.NewBet(uuid.NewString(), room.ID, userID, 0, entity.BetPack, e.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := e.uow.BetRepository(ctx).Create(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to append pack record: %w", err)
	}

	e.logger.Info("Player folded", map[string]any{
		"room_id": room.ID,
		"user_id": userID,
	})
	return &Result{Bet: bet, TotalPot: room.TotalPot}, nil
}
