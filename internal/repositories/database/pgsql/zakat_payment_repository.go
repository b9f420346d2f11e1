package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/models"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/mapping"
)

type PgxZakatPaymentRepository struct {
	BaseRepository
}

// newPgxZakatPaymentRepository creates a new repository for zakat payments.
func newPgxZakatPaymentRepository(pool *pgxpool.Pool) portsrepo.ZakatPaymentRepositoryFacade {
	return &PgxZakatPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ZakatPaymentRepositoryFacade = (*PgxZakatPaymentRepository)(nil)

const zakatPaymentColumns = `payment_id, user_id, amount, date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanZakatPayment(row pgx.CollectableRow) (models.ZakatPayment, error) {
	var p models.ZakatPayment
	err := row.Scan(
		&p.PaymentID,
		&p.UserID,
		&p.Amount,
		&p.Date,
		&p.Notes,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SavePayment persists a new payment. Payments are append-only.
func (r *PgxZakatPaymentRepository) SavePayment(ctx context.Context, payment domain.ZakatPayment) error {
	modelPayment := mapping.ToModelZakatPayment(payment)

	query := `
		INSERT INTO zakat_payments (` + zakatPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.UserID,
		modelPayment.Amount,
		modelPayment.Date,
		modelPayment.Notes,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", modelPayment.PaymentID, err)
	}
	return nil
}

// ListPaymentsByUser retrieves all of a user's payments ordered by date.
func (r *PgxZakatPaymentRepository) ListPaymentsByUser(ctx context.Context, userID string) ([]domain.ZakatPayment, error) {
	query := `
		SELECT ` + zakatPaymentColumns + `
		FROM zakat_payments
		WHERE user_id = $1
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}

	modelPayments, err := pgx.CollectRows(rows, scanZakatPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainZakatPayments(modelPayments), nil
}
