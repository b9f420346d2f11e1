package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/models"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/mapping"
)

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for market rates.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

const rateColumns = `rate_id, owner_user_id, asset_key, value, last_updated, created_at, created_by, last_updated_at, last_updated_by`

func scanRate(row pgx.CollectableRow) (models.Rate, error) {
	var rate models.Rate
	err := row.Scan(
		&rate.RateID,
		&rate.OwnerUserID,
		&rate.AssetKey,
		&rate.Value,
		&rate.LastUpdated,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	return rate, err
}

// SaveRate inserts or refreshes a rate row. Only the latest value is kept
// per owner and asset key; the conflict target differs because a NULL
// owner marks the global default.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.Rate) error {
	modelRate := mapping.ToModelRate(rate)

	var query string
	if rate.IsGlobal() {
		query = `
		INSERT INTO rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (asset_key) WHERE owner_user_id IS NULL DO UPDATE SET
			value = EXCLUDED.value,
			last_updated = EXCLUDED.last_updated,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	} else {
		query = `
		INSERT INTO rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (owner_user_id, asset_key) WHERE owner_user_id IS NOT NULL DO UPDATE SET
			value = EXCLUDED.value,
			last_updated = EXCLUDED.last_updated,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	}

	_, err := r.Pool.Exec(ctx, query,
		modelRate.RateID,
		modelRate.OwnerUserID,
		modelRate.AssetKey,
		modelRate.Value,
		modelRate.LastUpdated,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save rate for %s: %w", modelRate.AssetKey, err)
	}
	return nil
}

// FindRate retrieves the effective rate for an asset key, preferring a
// user-scoped row over the global default.
func (r *PgxRateRepository) FindRate(ctx context.Context, userID, assetKey string) (*domain.Rate, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM rates
		WHERE asset_key = $2 AND (owner_user_id = $1 OR owner_user_id IS NULL)
		ORDER BY owner_user_id NULLS LAST
		LIMIT 1;
	`
	rows, err := r.Pool.Query(ctx, query, userID, assetKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate for %s: %w", assetKey, err)
	}

	modelRate, err := pgx.CollectOneRow(rows, scanRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate for %s: %w", assetKey, err)
	}

	domainRate := mapping.ToDomainRate(modelRate)
	return &domainRate, nil
}

// ListEffectiveRates retrieves the effective rate per asset key for a
// user: every global default, overridden by the user's own rows.
func (r *PgxRateRepository) ListEffectiveRates(ctx context.Context, userID string) ([]domain.Rate, error) {
	query := `
		SELECT DISTINCT ON (asset_key) ` + rateColumns + `
		FROM rates
		WHERE owner_user_id = $1 OR owner_user_id IS NULL
		ORDER BY asset_key, owner_user_id NULLS LAST;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}

	modelRates, err := pgx.CollectRows(rows, scanRate)
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}

	return mapping.ToDomainRates(modelRates), nil
}
