package services

import (
	"context"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
)

// ZakatConfigSvcFacade defines operations on a user's zakat settings.
type ZakatConfigSvcFacade interface {
	// GetConfig retrieves a user's zakat configuration.
	GetConfig(ctx context.Context, userID string) (*domain.ZakatConfig, error)

	// SaveConfig stores a user's zakat configuration.
	SaveConfig(ctx context.Context, req dto.SaveZakatConfigRequest, userID string) (*domain.ZakatConfig, error)
}

// ZakatCycleSvcFacade is the cycle manager: the state machine creating,
// recomputing and advancing zakat cycles.
type ZakatCycleSvcFacade interface {
	// EnsureCycleForCurrentAnniversary resolves the user's next anniversary
	// and creates the cycle for that Hijri year if absent. Idempotent; the
	// second return reports whether this call created the cycle. Returns
	// apperrors.ErrNotConfigured when no anniversary rule is set.
	EnsureCycleForCurrentAnniversary(ctx context.Context, userID string) (*domain.ZakatCycle, bool, error)

	// RecomputeCycle re-derives the cycle's valuation figures from the
	// ledger, rates and liabilities and persists them. AmountPaid is not
	// touched; payment totals are derived live.
	RecomputeCycle(ctx context.Context, cycle domain.ZakatCycle) (*domain.ZakatCycle, error)

	// GenerateNextCycle is the on-demand variant triggered by a user
	// action; it ensures a cycle exists and returns the most recent one.
	GenerateNextCycle(ctx context.Context, userID string) (*domain.ZakatCycle, bool, error)

	// SweepPendingCycles processes every configured user: ensures the
	// current cycle exists and transitions cycles whose anniversary has
	// passed into DUE, notifying once per transition. Per-user failures
	// are logged and do not abort the batch.
	SweepPendingCycles(ctx context.Context) (dto.SweepResult, error)

	// Snapshot computes the live obligation view for a user without
	// mutating cycle state. When the live computation fails but persisted
	// figures exist, a stale snapshot built from them is returned.
	Snapshot(ctx context.Context, userID string, asOf time.Time) (*domain.ZakatSnapshot, error)

	// ListCycles returns a user's cycles, most recent first.
	ListCycles(ctx context.Context, userID string) ([]domain.ZakatCycle, error)
}

// ZakatPaymentSvcFacade defines operations on zakat payments.
type ZakatPaymentSvcFacade interface {
	// RecordPayment appends a payment, attributes it to the cycle whose
	// window contains its date and applies the DUE->PAID transition when
	// cumulative in-window payments reach the due amount.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, userID string) (*domain.ZakatPayment, error)

	// ListPayments returns a user's payments ordered by date.
	ListPayments(ctx context.Context, userID string) ([]domain.ZakatPayment, error)
}

// ZakatSvcFacade combines the zakat-facing service interfaces.
type ZakatSvcFacade interface {
	ZakatConfigSvcFacade
	ZakatCycleSvcFacade
	ZakatPaymentSvcFacade
}

// DueNotifier is the outbound port for due notifications. Delivery
// mechanics (push, email) live entirely behind it; it is invoked exactly
// once per OPEN->DUE transition.
type DueNotifier interface {
	NotifyDue(ctx context.Context, userID string, summary domain.CycleSummary) error
}
