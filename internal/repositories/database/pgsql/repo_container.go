package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	liabilityRepo := newPgxLiabilityRepository(dbPool)
	rateRepo := newPgxRateRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	zakatConfigRepo := newPgxZakatConfigRepository(dbPool)
	zakatCycleRepo := newPgxZakatCycleRepository(dbPool)
	zakatPaymentRepo := newPgxZakatPaymentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo:  transactionRepo,
		LiabilityRepo:    liabilityRepo,
		RateRepo:         rateRepo,
		UserRepo:         userRepo,
		ZakatConfigRepo:  zakatConfigRepo,
		ZakatCycleRepo:   zakatCycleRepo,
		ZakatPaymentRepo: zakatPaymentRepo,
	}
}
