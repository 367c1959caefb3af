package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:        userModel.ID,
		PlayerID:  userModel.PlayerID,
		UserName:  userModel.UserName,
		Avatar:    userModel.Avatar,
		IsGuest:   userModel.IsGuest,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
	}
	user.SetWalletBalance(userModel.WalletBalance, r.timeProvider)
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByIDs retrieves several users at once, keyed by ID
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*entity.User, error) {
	users := make(map[uint64]*entity.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var userModels []model.User
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting users", result.Error, 0)
	}

	for i := range userModels {
		users[userModels[i].ID] = r.modelToEntity(&userModels[i])
	}
	return users, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:            user.ID,
		PlayerID:      user.PlayerID,
		UserName:      user.UserName,
		Avatar:        user.Avatar,
		IsGuest:       user.IsGuest,
		WalletBalance: user.WalletBalance(),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created", map[string]any{
		"user_id":   user.ID,
		"player_id": user.PlayerID,
	})
	return nil
}

// ApplyBalanceChange adjusts the wallet balance under a SELECT FOR UPDATE row
// lock so concurrent mutations of one wallet serialize at the database, and
// rejects a debit below zero before writing anything
func (r *UserRepository) ApplyBalanceChange(ctx context.Context, userID uint64, delta int64) (*entity.User, error) {
	var updated *entity.User

	apply := func(tx *gorm.DB) error {
		var userModel model.User
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, userID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		newBalance := userModel.WalletBalance + delta
		if newBalance < 0 {
			return errs.NewInsufficientBalanceError(userID, -delta, userModel.WalletBalance)
		}

		userModel.WalletBalance = newBalance
		userModel.UpdatedAt = r.timeProvider.Now()

		result = tx.Model(&userModel).Updates(map[string]any{
			"wallet_balance": userModel.WalletBalance,
			"updated_at":     userModel.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}

		updated = r.modelToEntity(&userModel)
		return nil
	}

	// When the caller already opened a transaction (r.db is the tx handle),
	// apply directly inside it; otherwise wrap in a local transaction.
	var err error
	if _, inTx := r.db.Statement.ConnPool.(gorm.TxCommitter); inTx {
		err = apply(r.db.WithContext(ctx))
	} else {
		err = r.db.WithContext(ctx).Transaction(apply)
	}

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errs.IsInsufficientBalanceError(err) {
			return nil, err
		}
		return nil, r.handleDatabaseError("applying balance change", err, userID)
	}
	return updated, nil
}
