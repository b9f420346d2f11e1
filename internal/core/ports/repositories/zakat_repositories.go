package repositories

import (
	"context"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ZakatConfigReader defines read operations for zakat configuration
type ZakatConfigReader interface {
	// FindConfigByUser retrieves a user's zakat configuration.
	FindConfigByUser(ctx context.Context, userID string) (*domain.ZakatConfig, error)

	// ListConfiguredUsers retrieves every config with an anniversary rule
	// present, for the periodic sweep.
	ListConfiguredUsers(ctx context.Context) ([]domain.ZakatConfig, error)
}

// ZakatConfigWriter defines write operations for zakat configuration
type ZakatConfigWriter interface {
	// SaveConfig inserts or updates a user's zakat configuration.
	SaveConfig(ctx context.Context, config domain.ZakatConfig) error
}

// ZakatConfigRepositoryFacade combines all config repository interfaces
type ZakatConfigRepositoryFacade interface {
	ZakatConfigReader
	ZakatConfigWriter
}

// ZakatCycleReader defines read operations for zakat cycles
type ZakatCycleReader interface {
	// FindCycleByID retrieves a cycle by its id.
	FindCycleByID(ctx context.Context, cycleID string) (*domain.ZakatCycle, error)

	// FindCycleByUserAndYear retrieves the cycle keyed by (userID, hijriYear).
	FindCycleByUserAndYear(ctx context.Context, userID, hijriYear string) (*domain.ZakatCycle, error)

	// FindCycleForDate retrieves the cycle whose valuation window contains the given date.
	FindCycleForDate(ctx context.Context, userID string, date time.Time) (*domain.ZakatCycle, error)

	// ListCyclesByUser retrieves a user's cycles, most recent anniversary first.
	ListCyclesByUser(ctx context.Context, userID string) ([]domain.ZakatCycle, error)
}

// ZakatCycleWriter defines write operations for zakat cycles
type ZakatCycleWriter interface {
	// CreateCycle inserts a new cycle. The (user_id, hijri_year)
	// uniqueness constraint maps a conflict to apperrors.ErrDuplicate so
	// callers can treat concurrent creation as "already exists".
	CreateCycle(ctx context.Context, cycle domain.ZakatCycle) error

	// UpdateCycleFigures writes the recomputed valuation figures onto a cycle.
	UpdateCycleFigures(ctx context.Context, cycleID string, totalAssets, totalLiabilities, zakatDue decimal.Decimal, updatedBy string) error

	// UpdateCycleStatus transitions a cycle's status, also persisting the
	// paid amount cached at transition time.
	UpdateCycleStatus(ctx context.Context, cycleID string, status domain.CycleStatus, amountPaid decimal.Decimal, updatedBy string) error
}

// ZakatCycleRepositoryFacade combines all cycle repository interfaces
type ZakatCycleRepositoryFacade interface {
	ZakatCycleReader
	ZakatCycleWriter
}

// ZakatPaymentReader defines read operations for zakat payments
type ZakatPaymentReader interface {
	// ListPaymentsByUser retrieves all of a user's payments ordered by date.
	ListPaymentsByUser(ctx context.Context, userID string) ([]domain.ZakatPayment, error)
}

// ZakatPaymentWriter defines write operations for zakat payments.
// Payments are append-only.
type ZakatPaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.ZakatPayment) error
}

// ZakatPaymentRepositoryFacade combines all payment repository interfaces
type ZakatPaymentRepositoryFacade interface {
	ZakatPaymentReader
	ZakatPaymentWriter
}
