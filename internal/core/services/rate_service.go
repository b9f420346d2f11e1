package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// rateService implements the RateSvcFacade interface. Resolved rate
// tables are cached per user with a short TTL so that valuation passes
// (snapshots, sweeps) do not hammer the rates table.
type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
	cache    *gocache.Cache
}

// RateServiceOption defines a function signature for configuring the rate service.
type RateServiceOption func(*rateService)

// WithRateCacheTTL overrides the default cache TTL for resolved rate tables.
func WithRateCacheTTL(ttl time.Duration) RateServiceOption {
	return func(s *rateService) {
		s.cache = gocache.New(ttl, 2*ttl)
	}
}

// NewRateService creates a new rate service
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, opts ...RateServiceOption) portssvc.RateSvcFacade {
	s := &rateService{
		rateRepo: rateRepo,
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// UpsertRate creates or refreshes a rate. A global rate replaces the
// shared default; otherwise the row is scoped to the calling user.
func (s *rateService) UpsertRate(ctx context.Context, req dto.UpsertRateRequest, userID string) (*domain.Rate, error) {
	if req.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate value must be positive", apperrors.ErrValidation)
	}

	var owner *string
	if !req.Global {
		owner = &userID
	}

	now := time.Now().UTC()
	rate := domain.Rate{
		RateID:      uuid.NewString(),
		OwnerUserID: owner,
		AssetKey:    strings.ToUpper(strings.TrimSpace(req.AssetKey)),
		Value:       req.Value,
		LastUpdated: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save rate", slog.String("asset_key", rate.AssetKey))
		return nil, fmt.Errorf("failed to upsert rate: %w", err)
	}

	// A global rate may feed any user's table; drop everything.
	if req.Global {
		s.cache.Flush()
	} else {
		s.cache.Delete(rateTableCacheKey(userID))
	}

	s.LogInfo(ctx, "Rate upserted",
		slog.String("asset_key", rate.AssetKey),
		slog.Bool("global", req.Global))
	return &rate, nil
}

// ListEffectiveRates returns the effective rate per asset for a user.
func (s *rateService) ListEffectiveRates(ctx context.Context, userID string) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListEffectiveRates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	return rates, nil
}

// ResolveRate looks up the effective value for one asset key, preferring
// the user's own rate over the global default.
func (s *rateService) ResolveRate(ctx context.Context, userID, assetKey string) (decimal.Decimal, error) {
	assetKey = strings.ToUpper(strings.TrimSpace(assetKey))
	table, err := s.ResolveRateTable(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	value, ok := table[assetKey]
	if !ok {
		return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("no rate configured for asset %q", assetKey))
	}
	return value, nil
}

// ResolveRateTable returns every effective rate for a user as a
// {assetKey -> value} map for valuation passes.
func (s *rateService) ResolveRateTable(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	cacheKey := rateTableCacheKey(userID)
	if cached, found := s.cache.Get(cacheKey); found {
		if table, ok := cached.(map[string]decimal.Decimal); ok {
			return table, nil
		}
	}

	rates, err := s.rateRepo.ListEffectiveRates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rate table: %w", err)
	}

	table := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		table[r.AssetKey] = r.Value
	}

	s.cache.Set(cacheKey, table, gocache.DefaultExpiration)
	return table, nil
}

func rateTableCacheKey(userID string) string {
	return "rate_table:" + userID
}
