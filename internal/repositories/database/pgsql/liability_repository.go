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

type PgxLiabilityRepository struct {
	BaseRepository
}

// newPgxLiabilityRepository creates a new repository for liabilities.
func newPgxLiabilityRepository(pool *pgxpool.Pool) portsrepo.LiabilityRepositoryFacade {
	return &PgxLiabilityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LiabilityRepositoryFacade = (*PgxLiabilityRepository)(nil)

const liabilityColumns = `liability_id, user_id, title, amount, due_on, is_deductible, created_at, created_by, last_updated_at, last_updated_by`

func scanLiability(row pgx.CollectableRow) (models.Liability, error) {
	var l models.Liability
	err := row.Scan(
		&l.LiabilityID,
		&l.UserID,
		&l.Title,
		&l.Amount,
		&l.DueOn,
		&l.IsDeductible,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	return l, err
}

// SaveLiability inserts or updates a liability. Settlement rewrites the
// remaining amount on the same row.
func (r *PgxLiabilityRepository) SaveLiability(ctx context.Context, liability domain.Liability) error {
	modelLiab := mapping.ToModelLiability(liability)

	query := `
		INSERT INTO liabilities (` + liabilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (liability_id) DO UPDATE SET
			title = EXCLUDED.title,
			amount = EXCLUDED.amount,
			due_on = EXCLUDED.due_on,
			is_deductible = EXCLUDED.is_deductible,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelLiab.LiabilityID,
		modelLiab.UserID,
		modelLiab.Title,
		modelLiab.Amount,
		modelLiab.DueOn,
		modelLiab.IsDeductible,
		modelLiab.CreatedAt,
		modelLiab.CreatedBy,
		modelLiab.LastUpdatedAt,
		modelLiab.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save liability %s: %w", modelLiab.LiabilityID, err)
	}
	return nil
}

// FindLiabilityByID retrieves a single liability.
func (r *PgxLiabilityRepository) FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.Liability, error) {
	query := `
		SELECT ` + liabilityColumns + `
		FROM liabilities
		WHERE liability_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liability %s: %w", liabilityID, err)
	}

	modelLiab, err := pgx.CollectOneRow(rows, scanLiability)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find liability %s: %w", liabilityID, err)
	}

	domainLiab := mapping.ToDomainLiability(modelLiab)
	return &domainLiab, nil
}

// ListLiabilitiesByUser retrieves all of a user's liabilities.
func (r *PgxLiabilityRepository) ListLiabilitiesByUser(ctx context.Context, userID string) ([]domain.Liability, error) {
	query := `
		SELECT ` + liabilityColumns + `
		FROM liabilities
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liabilities: %w", err)
	}

	modelLiabs, err := pgx.CollectRows(rows, scanLiability)
	if err != nil {
		return nil, fmt.Errorf("failed to scan liabilities: %w", err)
	}

	return mapping.ToDomainLiabilities(modelLiabs), nil
}

// DeleteLiability removes a liability scoped to its owner.
func (r *PgxLiabilityRepository) DeleteLiability(ctx context.Context, userID, liabilityID string) error {
	query := `
		DELETE FROM liabilities
		WHERE liability_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, liabilityID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete liability %s: %w", liabilityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
