package services

import (
	"context"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/shopspring/decimal"
)

// RateSvcFacade defines operations on market rates, encapsulating the
// prefer-user-specific-else-global override rule in one place.
type RateSvcFacade interface {
	// UpsertRate creates or refreshes a rate (user override or global default).
	UpsertRate(ctx context.Context, req dto.UpsertRateRequest, userID string) (*domain.Rate, error)

	// ListEffectiveRates returns the effective rate per asset for a user.
	ListEffectiveRates(ctx context.Context, userID string) ([]domain.Rate, error)

	// ResolveRate looks up the effective value for one asset key,
	// preferring the user's own rate over the global default.
	ResolveRate(ctx context.Context, userID, assetKey string) (decimal.Decimal, error)

	// ResolveRateTable returns every effective rate for a user as a
	// {assetKey -> value} map for valuation passes.
	ResolveRateTable(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
}
