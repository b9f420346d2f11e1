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

type PgxZakatConfigRepository struct {
	BaseRepository
}

// newPgxZakatConfigRepository creates a new repository for zakat configuration.
func newPgxZakatConfigRepository(pool *pgxpool.Pool) portsrepo.ZakatConfigRepositoryFacade {
	return &PgxZakatConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ZakatConfigRepositoryFacade = (*PgxZakatConfigRepository)(nil)

const zakatConfigColumns = `user_id, anniversary_day, anniversary_month, fixed_solar_date, base_currency, reminder_enabled, contact_email, created_at, created_by, last_updated_at, last_updated_by`

func scanZakatConfig(row pgx.CollectableRow) (models.ZakatConfig, error) {
	var cfg models.ZakatConfig
	err := row.Scan(
		&cfg.UserID,
		&cfg.AnniversaryDay,
		&cfg.AnniversaryMonth,
		&cfg.FixedSolarDate,
		&cfg.BaseCurrency,
		&cfg.ReminderEnabled,
		&cfg.ContactEmail,
		&cfg.CreatedAt,
		&cfg.CreatedBy,
		&cfg.LastUpdatedAt,
		&cfg.LastUpdatedBy,
	)
	return cfg, err
}

// SaveConfig inserts or updates a user's zakat configuration. One row per user.
func (r *PgxZakatConfigRepository) SaveConfig(ctx context.Context, config domain.ZakatConfig) error {
	modelCfg := mapping.ToModelZakatConfig(config)

	query := `
		INSERT INTO zakat_configs (` + zakatConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			anniversary_day = EXCLUDED.anniversary_day,
			anniversary_month = EXCLUDED.anniversary_month,
			fixed_solar_date = EXCLUDED.fixed_solar_date,
			base_currency = EXCLUDED.base_currency,
			reminder_enabled = EXCLUDED.reminder_enabled,
			contact_email = EXCLUDED.contact_email,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCfg.UserID,
		modelCfg.AnniversaryDay,
		modelCfg.AnniversaryMonth,
		modelCfg.FixedSolarDate,
		modelCfg.BaseCurrency,
		modelCfg.ReminderEnabled,
		modelCfg.ContactEmail,
		modelCfg.CreatedAt,
		modelCfg.CreatedBy,
		modelCfg.LastUpdatedAt,
		modelCfg.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save zakat config for user %s: %w", modelCfg.UserID, err)
	}
	return nil
}

// FindConfigByUser retrieves a user's zakat configuration.
func (r *PgxZakatConfigRepository) FindConfigByUser(ctx context.Context, userID string) (*domain.ZakatConfig, error) {
	query := `
		SELECT ` + zakatConfigColumns + `
		FROM zakat_configs
		WHERE user_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query zakat config: %w", err)
	}

	modelCfg, err := pgx.CollectOneRow(rows, scanZakatConfig)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find zakat config: %w", err)
	}

	domainCfg := mapping.ToDomainZakatConfig(modelCfg)
	return &domainCfg, nil
}

// ListConfiguredUsers retrieves every config carrying an anniversary
// rule, for the periodic sweep.
func (r *PgxZakatConfigRepository) ListConfiguredUsers(ctx context.Context) ([]domain.ZakatConfig, error) {
	query := `
		SELECT ` + zakatConfigColumns + `
		FROM zakat_configs
		WHERE (anniversary_day IS NOT NULL AND anniversary_month IS NOT NULL)
		   OR fixed_solar_date IS NOT NULL
		ORDER BY user_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query configured users: %w", err)
	}

	modelCfgs, err := pgx.CollectRows(rows, scanZakatConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to scan zakat configs: %w", err)
	}

	domainCfgs := make([]domain.ZakatConfig, len(modelCfgs))
	for i, m := range modelCfgs {
		domainCfgs[i] = mapping.ToDomainZakatConfig(m)
	}
	return domainCfgs, nil
}
