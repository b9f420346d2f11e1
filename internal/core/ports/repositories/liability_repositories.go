package repositories

import (
	"context"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
)

// LiabilityReader defines read operations for liabilities
type LiabilityReader interface {
	// FindLiabilityByID retrieves a single liability.
	FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.Liability, error)

	// ListLiabilitiesByUser retrieves all of a user's liabilities.
	ListLiabilitiesByUser(ctx context.Context, userID string) ([]domain.Liability, error)
}

// LiabilityWriter defines write operations for liabilities
type LiabilityWriter interface {
	// SaveLiability inserts or updates a liability.
	SaveLiability(ctx context.Context, liability domain.Liability) error

	// DeleteLiability removes a liability row. Used both for explicit
	// deletion and when settlement drives the amount to zero or below.
	DeleteLiability(ctx context.Context, userID, liabilityID string) error
}

// LiabilityRepositoryFacade combines all liability repository interfaces
type LiabilityRepositoryFacade interface {
	LiabilityReader
	LiabilityWriter
}
