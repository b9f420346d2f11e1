package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/models"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxZakatCycleRepository struct {
	BaseRepository
}

// newPgxZakatCycleRepository creates a new repository for zakat cycles.
func newPgxZakatCycleRepository(pool *pgxpool.Pool) portsrepo.ZakatCycleRepositoryFacade {
	return &PgxZakatCycleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ZakatCycleRepositoryFacade = (*PgxZakatCycleRepository)(nil)

const zakatCycleColumns = `cycle_id, user_id, hijri_year, solar_anniversary_date, total_assets, total_liabilities, zakat_due, amount_paid, status, created_at, created_by, last_updated_at, last_updated_by`

func scanZakatCycle(row pgx.CollectableRow) (models.ZakatCycle, error) {
	var cycle models.ZakatCycle
	err := row.Scan(
		&cycle.CycleID,
		&cycle.UserID,
		&cycle.HijriYear,
		&cycle.SolarAnniversaryDate,
		&cycle.TotalAssets,
		&cycle.TotalLiabilities,
		&cycle.ZakatDue,
		&cycle.AmountPaid,
		&cycle.Status,
		&cycle.CreatedAt,
		&cycle.CreatedBy,
		&cycle.LastUpdatedAt,
		&cycle.LastUpdatedBy,
	)
	return cycle, err
}

// CreateCycle inserts a new cycle. A (user_id, hijri_year) conflict is
// reported as apperrors.ErrDuplicate so callers can treat concurrent
// creation as "already exists".
func (r *PgxZakatCycleRepository) CreateCycle(ctx context.Context, cycle domain.ZakatCycle) error {
	modelCycle := mapping.ToModelZakatCycle(cycle)

	query := `
		INSERT INTO zakat_cycles (` + zakatCycleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCycle.CycleID,
		modelCycle.UserID,
		modelCycle.HijriYear,
		modelCycle.SolarAnniversaryDate,
		modelCycle.TotalAssets,
		modelCycle.TotalLiabilities,
		modelCycle.ZakatDue,
		modelCycle.AmountPaid,
		modelCycle.Status,
		modelCycle.CreatedAt,
		modelCycle.CreatedBy,
		modelCycle.LastUpdatedAt,
		modelCycle.LastUpdatedBy,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create cycle %s: %w", modelCycle.CycleID, err)
	}
	return nil
}

// FindCycleByID retrieves a cycle by its id.
func (r *PgxZakatCycleRepository) FindCycleByID(ctx context.Context, cycleID string) (*domain.ZakatCycle, error) {
	query := `
		SELECT ` + zakatCycleColumns + `
		FROM zakat_cycles
		WHERE cycle_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycle %s: %w", cycleID, err)
	}

	modelCycle, err := pgx.CollectOneRow(rows, scanZakatCycle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cycle %s: %w", cycleID, err)
	}

	domainCycle := mapping.ToDomainZakatCycle(modelCycle)
	return &domainCycle, nil
}

// FindCycleByUserAndYear retrieves the cycle keyed by (userID, hijriYear).
func (r *PgxZakatCycleRepository) FindCycleByUserAndYear(ctx context.Context, userID, hijriYear string) (*domain.ZakatCycle, error) {
	query := `
		SELECT ` + zakatCycleColumns + `
		FROM zakat_cycles
		WHERE user_id = $1 AND hijri_year = $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, hijriYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycle for year %s: %w", hijriYear, err)
	}

	modelCycle, err := pgx.CollectOneRow(rows, scanZakatCycle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cycle for year %s: %w", hijriYear, err)
	}

	domainCycle := mapping.ToDomainZakatCycle(modelCycle)
	return &domainCycle, nil
}

// FindCycleForDate retrieves the cycle whose valuation window contains
// the given date. With one cycle per Hijri year the windows do not
// overlap; the latest anniversary wins if data drift ever makes them.
func (r *PgxZakatCycleRepository) FindCycleForDate(ctx context.Context, userID string, date time.Time) (*domain.ZakatCycle, error) {
	query := `
		SELECT ` + zakatCycleColumns + `
		FROM zakat_cycles
		WHERE user_id = $1
		  AND $2 >= solar_anniversary_date - make_interval(days => $3)
		  AND $2 <= solar_anniversary_date
		ORDER BY solar_anniversary_date DESC
		LIMIT 1;
	`
	rows, err := r.Pool.Query(ctx, query, userID, date, domain.LunarYearDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycle for date: %w", err)
	}

	modelCycle, err := pgx.CollectOneRow(rows, scanZakatCycle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cycle for date: %w", err)
	}

	domainCycle := mapping.ToDomainZakatCycle(modelCycle)
	return &domainCycle, nil
}

// ListCyclesByUser retrieves a user's cycles, most recent anniversary first.
func (r *PgxZakatCycleRepository) ListCyclesByUser(ctx context.Context, userID string) ([]domain.ZakatCycle, error) {
	query := `
		SELECT ` + zakatCycleColumns + `
		FROM zakat_cycles
		WHERE user_id = $1
		ORDER BY solar_anniversary_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycles: %w", err)
	}

	modelCycles, err := pgx.CollectRows(rows, scanZakatCycle)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cycles: %w", err)
	}

	return mapping.ToDomainZakatCycles(modelCycles), nil
}

// UpdateCycleFigures writes the recomputed valuation figures onto a cycle.
func (r *PgxZakatCycleRepository) UpdateCycleFigures(ctx context.Context, cycleID string, totalAssets, totalLiabilities, zakatDue decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE zakat_cycles
		SET total_assets = $2,
			total_liabilities = $3,
			zakat_due = $4,
			last_updated_at = now(),
			last_updated_by = $5
		WHERE cycle_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, cycleID, totalAssets, totalLiabilities, zakatDue, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update cycle figures %s: %w", cycleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateCycleStatus transitions a cycle's status, also persisting the
// paid amount cached at transition time.
func (r *PgxZakatCycleRepository) UpdateCycleStatus(ctx context.Context, cycleID string, status domain.CycleStatus, amountPaid decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE zakat_cycles
		SET status = $2,
			amount_paid = $3,
			last_updated_at = now(),
			last_updated_by = $4
		WHERE cycle_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, cycleID, string(status), amountPaid, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update cycle status %s: %w", cycleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
