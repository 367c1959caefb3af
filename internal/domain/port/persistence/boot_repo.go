package persistence

import (
	"context"

	"github.com/playkaro/teenpatti-server/internal/domain/entity"
)

// BootRepository provides read access to the immutable boot configurations
type BootRepository interface {
	// GetByID retrieves a boot configuration by ID
	//
	// Possible errors:
	// - ErrBootNotFound: if no boot with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Boot, error)

	// ListActive returns every active boot configuration for the lobby list
	ListActive(ctx context.Context) ([]*entity.Boot, error)

	// Create persists a boot configuration. Used by startup seeding only.
	Create(ctx context.Context, boot *entity.Boot) error
}
