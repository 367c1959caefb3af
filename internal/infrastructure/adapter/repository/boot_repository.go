package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
	errs "github.com/playkaro/teenpatti-server/internal/domain/error"
	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/model"
)

// BootRepository implements persistence.BootRepository using GORM
type BootRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBootRepository creates a new BootRepository instance
func NewBootRepository(db *gorm.DB, logger coreport.Logger) *BootRepository {
	return &BootRepository{db: db, logger: logger}
}

func (r *BootRepository) modelToEntity(m *model.Boot) *entity.Boot {
	return &entity.Boot{
		ID:           m.ID,
		BootAmount:   m.BootAmount,
		MaxBlind:     m.MaxBlind,
		MaxChaal:     m.MaxChaal,
		MaxPotAmount: m.MaxPotAmount,
		MinBuyIn:     m.MinBuyIn,
		MaxBuyIn:     m.MaxBuyIn,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves a boot configuration by ID
func (r *BootRepository) GetByID(ctx context.Context, id uint64) (*entity.Boot, error) {
	var bootModel model.Boot
	result := r.db.WithContext(ctx).First(&bootModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBootNotFound
		}
		r.logger.Error("Database error when getting boot", map[string]any{
			"boot_id": id,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&bootModel), nil
}

// ListActive returns every active boot configuration
func (r *BootRepository) ListActive(ctx context.Context) ([]*entity.Boot, error) {
	var bootModels []model.Boot
	result := r.db.WithContext(ctx).Where("active = ?", true).Order("boot_amount ASC").Find(&bootModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing boots", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	boots := make([]*entity.Boot, 0, len(bootModels))
	for i := range bootModels {
		boots = append(boots, r.modelToEntity(&bootModels[i]))
	}
	return boots, nil
}

// Create persists a boot configuration
func (r *BootRepository) Create(ctx context.Context, boot *entity.Boot) error {
	bootModel := model.Boot{
		ID:           boot.ID,
		BootAmount:   boot.BootAmount,
		MaxBlind:     boot.MaxBlind,
		MaxChaal:     boot.MaxChaal,
		MaxPotAmount: boot.MaxPotAmount,
		MinBuyIn:     boot.MinBuyIn,
		MaxBuyIn:     boot.MaxBuyIn,
		Active:       boot.Active,
		CreatedAt:    boot.CreatedAt,
		UpdatedAt:    boot.UpdatedAt,
	}
	result := r.db.WithContext(ctx).Create(&bootModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	boot.ID = bootModel.ID
	return nil
}
