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
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for holding ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, asset_key, direction, quantity, unit_price, occurred_on, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.CollectableRow) (models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.AssetKey,
		&txn.Direction,
		&txn.Quantity,
		&txn.UnitPrice,
		&txn.OccurredOn,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}

// SaveTransaction inserts a new ledger entry. Entries are immutable.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.AssetKey,
		modelTxn.Direction,
		modelTxn.Quantity,
		modelTxn.UnitPrice,
		modelTxn.OccurredOn,
		modelTxn.Notes,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}

	modelTxn, err := pgx.CollectOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactionsByUser retrieves a user's ledger entries ordered by occurred_on.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY occurred_on, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	modelTxns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactions(modelTxns), nil
}

// ListTransactionsByUserUntil retrieves a user's ledger entries with
// occurred_on on or before the given date.
func (r *PgxTransactionRepository) ListTransactionsByUserUntil(ctx context.Context, userID string, until time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND occurred_on <= $2
		ORDER BY occurred_on, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID, until)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	modelTxns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactions(modelTxns), nil
}

// DeleteTransaction removes a ledger entry scoped to its owner.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
