package repositories

import (
	"context"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
)

// RateReader defines read operations for market rates
type RateReader interface {
	// FindRate retrieves the rate for an asset key, preferring a
	// user-scoped rate over the global default.
	FindRate(ctx context.Context, userID, assetKey string) (*domain.Rate, error)

	// ListEffectiveRates retrieves the effective rate per asset key for a
	// user: every global default, overridden by the user's own rows.
	ListEffectiveRates(ctx context.Context, userID string) ([]domain.Rate, error)
}

// RateWriter defines write operations for market rates
type RateWriter interface {
	// SaveRate inserts or updates a rate row. Only the latest value is
	// kept per (owner, asset key); rates are never historized.
	SaveRate(ctx context.Context, rate domain.Rate) error
}

// RateRepositoryFacade combines all rate repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
