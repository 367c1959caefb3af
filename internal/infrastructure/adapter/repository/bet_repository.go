package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/model"
)

// BetRepository implements persistence.BetRepository using GORM.
// Bets are append-only; there is no update or delete path.
type BetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBetRepository creates a new BetRepository instance
func NewBetRepository(db *gorm.DB, logger coreport.Logger) *BetRepository {
	return &BetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *BetRepository) modelToEntity(m *model.Bet) *entity.Bet {
	return &entity.Bet{
		ID:          m.ID,
		RoomID:      m.RoomID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Kind:        entity.BetKind(m.Kind),
		IsBlind:     m.IsBlind,
		CommittedAt: m.CommittedAt,
	}
}

// Create appends a bet record
func (r *BetRepository) Create(ctx context.Context, bet *entity.Bet) error {
	betModel := model.Bet{
		ID:          bet.ID,
		RoomID:      bet.RoomID,
		UserID:      bet.UserID,
		Amount:      bet.Amount,
		Kind:        string(bet.Kind),
		IsBlind:     bet.IsBlind,
		CommittedAt: bet.CommittedAt,
	}
	result := r.db.WithContext(ctx).Create(&betModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return fmt.Errorf("%w: bet %s already recorded", errs.ErrConstraintViolation, bet.ID)
		}
		r.logger.Error("Database error when creating bet", map[string]any{
			"bet_id":  bet.ID,
			"room_id": bet.RoomID,
			"user_id": bet.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListByRoom returns all bets committed against a room in commit order
func (r *BetRepository) ListByRoom(ctx context.Context, roomID string) ([]*entity.Bet, error) {
	var betModels []model.Bet
	result := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("committed_at ASC").
		Find(&betModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	bets := make([]*entity.Bet, 0, len(betModels))
	for i := range betModels {
		bets = append(bets, r.modelToEntity(&betModels[i]))
	}
	return bets, nil
}

// SumByRoom returns the total committed amount for a room. Pack bets carry
// a zero amount so they never skew the audit.
func (r *BetRepository) SumByRoom(ctx context.Context, roomID string) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(&model.Bet{}).
		Where("room_id = ?", roomID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return total, nil
}
