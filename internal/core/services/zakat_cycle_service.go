package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/hijri"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/zakatcalc"
	"github.com/shopspring/decimal"
)

// resolveAnniversary turns a user's anniversary rule into the next
// concrete solar date and its Hijri year label.
func (s *zakatService) resolveAnniversary(config *domain.ZakatConfig) (time.Time, string, error) {
	rule, ok := config.Rule()
	if !ok {
		return time.Time{}, "", apperrors.ErrNotConfigured
	}

	ref := s.now().UTC()
	switch rule.Kind {
	case domain.AnniversaryLunar:
		anniversary, hijriYear, err := hijri.ResolveNextAnniversary(rule.HijriDay, rule.HijriMonth, ref)
		if err != nil {
			return time.Time{}, "", err
		}
		return anniversary, strconv.Itoa(hijriYear), nil
	default:
		anniversary, hijriYear := hijri.ResolveNextSolarAnniversary(rule.SolarDate, ref)
		return anniversary, strconv.Itoa(hijriYear), nil
	}
}

// cycleFigures is one full valuation pass over a user's ledger,
// liabilities and rates as of a window end.
type cycleFigures struct {
	current    zakatcalc.ValuationResult
	qualifying zakatcalc.ValuationResult
	deductible decimal.Decimal
	netBase    decimal.Decimal
	nisab      domain.NisabEvaluation
}

// computeFigures derives the obligation figures for a user as of the
// given date. Assets without a configured rate are valued at zero and
// logged; the computation never fails on a missing rate.
func (s *zakatService) computeFigures(ctx context.Context, userID string, asOf time.Time) (*cycleFigures, error) {
	rates, err := s.rateSvc.ResolveRateTable(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rates: %w", err)
	}

	ledger, err := s.txnRepo.ListTransactionsByUserUntil(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	liabilities, err := s.liabilityRepo.ListLiabilitiesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load liabilities: %w", err)
	}

	figures := &cycleFigures{
		current:    zakatcalc.CurrentHoldingsValue(ledger, rates),
		qualifying: zakatcalc.QualifyingValue(ledger, rates, asOf, domain.LunarYearDays),
		deductible: zakatcalc.DeductibleTotal(liabilities, asOf),
	}
	for _, assetKey := range figures.qualifying.MissingRates {
		s.LogWarn(ctx, "No rate configured for held asset; valued at zero",
			slog.String("user_id", userID),
			slog.String("asset_key", assetKey))
	}

	figures.netBase = zakatcalc.NetBase(figures.qualifying.Total, figures.deductible)
	figures.nisab = zakatcalc.EvaluateNisab(figures.netBase, rates[domain.AssetKeyGold], rates[domain.AssetKeySilver])
	return figures, nil
}

// EnsureCycleForCurrentAnniversary resolves the user's next anniversary
// and creates the cycle for that Hijri year if absent. Concurrent
// creation is resolved by the (user_id, hijri_year) constraint: a
// duplicate insert is re-read and reported as already existing.
func (s *zakatService) EnsureCycleForCurrentAnniversary(ctx context.Context, userID string) (*domain.ZakatCycle, bool, error) {
	config, err := s.configRepo.FindConfigByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, apperrors.ErrNotConfigured
		}
		return nil, false, fmt.Errorf("failed to load zakat config: %w", err)
	}

	anniversary, hijriYear, err := s.resolveAnniversary(config)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.cycleRepo.FindCycleByUserAndYear(ctx, userID, hijriYear)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up cycle: %w", err)
	}

	figures, err := s.computeFigures(ctx, userID, anniversary)
	if err != nil {
		return nil, false, err
	}

	now := s.now().UTC()
	cycle := domain.ZakatCycle{
		CycleID:              uuid.NewString(),
		UserID:               userID,
		HijriYear:            hijriYear,
		SolarAnniversaryDate: anniversary,
		TotalAssets:          figures.qualifying.Total,
		TotalLiabilities:     figures.deductible,
		ZakatDue:             figures.nisab.DueAmount,
		AmountPaid:           decimal.Zero,
		Status:               domain.CycleOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cycleRepo.CreateCycle(ctx, cycle); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race; someone else created this year's cycle.
			existing, ferr := s.cycleRepo.FindCycleByUserAndYear(ctx, userID, hijriYear)
			if ferr != nil {
				return nil, false, fmt.Errorf("failed to re-read cycle after duplicate: %w", ferr)
			}
			return existing, false, nil
		}
		s.LogError(ctx, err, "Failed to create cycle", slog.String("hijri_year", hijriYear))
		return nil, false, fmt.Errorf("failed to create cycle: %w", err)
	}

	s.LogInfo(ctx, "Zakat cycle created",
		slog.String("user_id", userID),
		slog.String("hijri_year", hijriYear),
		slog.Time("anniversary", anniversary))
	return &cycle, true, nil
}

// RecomputeCycle re-derives the cycle's valuation figures from the
// ledger, rates and liabilities and persists them.
func (s *zakatService) RecomputeCycle(ctx context.Context, cycle domain.ZakatCycle) (*domain.ZakatCycle, error) {
	figures, err := s.computeFigures(ctx, cycle.UserID, cycle.SolarAnniversaryDate)
	if err != nil {
		return nil, err
	}

	if err := s.cycleRepo.UpdateCycleFigures(ctx, cycle.CycleID,
		figures.qualifying.Total, figures.deductible, figures.nisab.DueAmount, cycle.UserID); err != nil {
		return nil, fmt.Errorf("failed to persist recomputed figures: %w", err)
	}

	cycle.TotalAssets = figures.qualifying.Total
	cycle.TotalLiabilities = figures.deductible
	cycle.ZakatDue = figures.nisab.DueAmount
	return &cycle, nil
}

// GenerateNextCycle is the on-demand variant triggered by a user action.
// An existing cycle gets its figures refreshed so the caller always sees
// current numbers.
func (s *zakatService) GenerateNextCycle(ctx context.Context, userID string) (*domain.ZakatCycle, bool, error) {
	cycle, created, err := s.EnsureCycleForCurrentAnniversary(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !created && cycle.Status == domain.CycleOpen {
		refreshed, err := s.RecomputeCycle(ctx, *cycle)
		if err != nil {
			return nil, false, err
		}
		cycle = refreshed
	}
	return cycle, created, nil
}

// ListCycles returns a user's cycles, most recent first.
func (s *zakatService) ListCycles(ctx context.Context, userID string) ([]domain.ZakatCycle, error) {
	cycles, err := s.cycleRepo.ListCyclesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}
	return cycles, nil
}

// SweepPendingCycles processes every configured user: ensures the
// current cycle exists and transitions cycles whose anniversary has
// passed into DUE. Each user gets a bounded slice of time; one user's
// failure never aborts the batch.
func (s *zakatService) SweepPendingCycles(ctx context.Context) (dto.SweepResult, error) {
	var result dto.SweepResult

	configs, err := s.configRepo.ListConfiguredUsers(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list configured users: %w", err)
	}

	for _, config := range configs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.UsersProcessed++
		userCtx, cancel := context.WithTimeout(ctx, s.sweepUserTimeout)
		created, markedDue, err := s.sweepUser(userCtx, config)
		cancel()
		if err != nil {
			result.Failures++
			s.LogError(ctx, err, "Sweep failed for user", slog.String("user_id", config.UserID))
			continue
		}
		if created {
			result.CyclesCreated++
		}
		if markedDue {
			result.CyclesMarkedDue++
		}
	}

	s.LogInfo(ctx, "Sweep completed",
		slog.Int("users_processed", result.UsersProcessed),
		slog.Int("cycles_created", result.CyclesCreated),
		slog.Int("cycles_marked_due", result.CyclesMarkedDue),
		slog.Int("failures", result.Failures))
	return result, nil
}

// sweepUser runs the state machine for one user.
func (s *zakatService) sweepUser(ctx context.Context, config domain.ZakatConfig) (created bool, markedDue bool, err error) {
	cycle, created, err := s.EnsureCycleForCurrentAnniversary(ctx, config.UserID)
	if err != nil {
		return false, false, err
	}

	if cycle.Status != domain.CycleOpen || s.now().UTC().Before(cycle.SolarAnniversaryDate) {
		return created, false, nil
	}

	// Anniversary reached with the cycle still OPEN: refresh the figures
	// off the final window, then transition.
	cycle, err = s.RecomputeCycle(ctx, *cycle)
	if err != nil {
		return created, false, err
	}

	net, err := s.netPaymentsForCycle(ctx, *cycle)
	if err != nil {
		return created, false, err
	}

	// In-window payments may already cover the full obligation, e.g. a
	// user paying ahead of the anniversary; that cycle settles directly
	// and no reminder goes out.
	target := domain.CycleDue
	if cycle.ZakatDue.GreaterThan(decimal.Zero) && net.RemainingDue.IsZero() {
		target = domain.CyclePaid
	}

	if err := s.cycleRepo.UpdateCycleStatus(ctx, cycle.CycleID, target, net.TotalPaid, config.UserID); err != nil {
		return created, false, fmt.Errorf("failed to transition cycle: %w", err)
	}
	cycle.Status = target
	cycle.AmountPaid = net.TotalPaid

	if target == domain.CyclePaid {
		s.LogInfo(ctx, "Zakat cycle settled at anniversary",
			slog.String("user_id", config.UserID),
			slog.String("hijri_year", cycle.HijriYear),
			slog.String("amount_paid", net.TotalPaid.String()))
		return created, false, nil
	}

	s.LogInfo(ctx, "Zakat cycle due",
		slog.String("user_id", config.UserID),
		slog.String("hijri_year", cycle.HijriYear),
		slog.String("zakat_due", cycle.ZakatDue.String()))

	// The transition is persisted before notification; a failed delivery
	// is logged but never repeated, since the cycle is no longer OPEN.
	if s.notifier != nil && config.ReminderEnabled {
		summary := domain.CycleSummary{
			CycleID:              cycle.CycleID,
			HijriYear:            cycle.HijriYear,
			SolarAnniversaryDate: cycle.SolarAnniversaryDate,
			TotalAssets:          cycle.TotalAssets,
			TotalLiabilities:     cycle.TotalLiabilities,
			ZakatDue:             cycle.ZakatDue,
			BaseCurrency:         config.BaseCurrency,
		}
		if err := s.notifier.NotifyDue(ctx, config.UserID, summary); err != nil {
			s.LogWarn(ctx, "Due notification failed",
				slog.String("user_id", config.UserID),
				slog.String("error", err.Error()))
		}
	}

	return created, true, nil
}

// netPaymentsForCycle nets the user's payments falling inside the
// cycle's window against its due amount.
func (s *zakatService) netPaymentsForCycle(ctx context.Context, cycle domain.ZakatCycle) (zakatcalc.PaymentNet, error) {
	payments, err := s.paymentRepo.ListPaymentsByUser(ctx, cycle.UserID)
	if err != nil {
		return zakatcalc.PaymentNet{}, fmt.Errorf("failed to load payments: %w", err)
	}
	return zakatcalc.NetPayments(payments, cycle.WindowStart(), cycle.SolarAnniversaryDate, cycle.ZakatDue), nil
}

// Snapshot computes the live obligation view for a user without mutating
// cycle state. When the live computation fails but persisted figures
// exist, those figures are served marked stale.
func (s *zakatService) Snapshot(ctx context.Context, userID string, asOf time.Time) (*domain.ZakatSnapshot, error) {
	config, err := s.configRepo.FindConfigByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to load zakat config: %w", err)
	}

	anniversary, hijriYear, err := s.resolveAnniversary(config)
	if err != nil {
		return nil, err
	}

	var cycle domain.ZakatCycle
	persisted, err := s.cycleRepo.FindCycleByUserAndYear(ctx, userID, hijriYear)
	switch {
	case err == nil:
		cycle = *persisted
	case errors.Is(err, apperrors.ErrNotFound):
		// No persisted cycle yet; the snapshot is built over a transient one.
		cycle = domain.ZakatCycle{
			UserID:               userID,
			HijriYear:            hijriYear,
			SolarAnniversaryDate: anniversary,
			TotalAssets:          decimal.Zero,
			TotalLiabilities:     decimal.Zero,
			ZakatDue:             decimal.Zero,
			AmountPaid:           decimal.Zero,
			Status:               domain.CycleOpen,
		}
		persisted = nil
	default:
		return nil, fmt.Errorf("failed to look up cycle: %w", err)
	}

	asOf = hijri.Midnight(asOf)
	figures, err := s.computeFigures(ctx, userID, asOf)
	if err != nil {
		if persisted == nil {
			return nil, err
		}
		s.LogError(ctx, err, "Live snapshot failed; serving persisted figures",
			slog.String("user_id", userID))
		return s.staleSnapshot(ctx, *persisted, asOf), nil
	}

	net, err := s.netPaymentsForCycle(ctx, domain.ZakatCycle{
		UserID:               userID,
		SolarAnniversaryDate: anniversary,
		ZakatDue:             figures.nisab.DueAmount,
	})
	if err != nil {
		if persisted == nil {
			return nil, err
		}
		s.LogError(ctx, err, "Live snapshot failed; serving persisted figures",
			slog.String("user_id", userID))
		return s.staleSnapshot(ctx, *persisted, asOf), nil
	}

	return &domain.ZakatSnapshot{
		Cycle:                 cycle,
		AsOf:                  asOf,
		CurrentHoldingsValue:  figures.current.Total,
		QualifyingAssets:      figures.qualifying.Total,
		DeductibleLiabilities: figures.deductible,
		NetBase:               figures.netBase,
		Nisab:                 figures.nisab,
		TotalPaid:             net.TotalPaid,
		RemainingDue:          net.RemainingDue,
	}, nil
}

// staleSnapshot builds a snapshot from the last persisted cycle figures.
func (s *zakatService) staleSnapshot(ctx context.Context, cycle domain.ZakatCycle, asOf time.Time) *domain.ZakatSnapshot {
	snapshot := &domain.ZakatSnapshot{
		Cycle:                 cycle,
		AsOf:                  asOf,
		CurrentHoldingsValue:  cycle.TotalAssets,
		QualifyingAssets:      cycle.TotalAssets,
		DeductibleLiabilities: cycle.TotalLiabilities,
		NetBase:               zakatcalc.NetBase(cycle.TotalAssets, cycle.TotalLiabilities),
		Nisab: domain.NisabEvaluation{
			IsEligible: cycle.ZakatDue.GreaterThan(decimal.Zero),
			DueAmount:  cycle.ZakatDue,
		},
		TotalPaid:    cycle.AmountPaid,
		RemainingDue: zakatcalc.NetBase(cycle.ZakatDue, cycle.AmountPaid),
		Stale:        true,
	}
	return snapshot
}
