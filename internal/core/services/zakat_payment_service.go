package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/hijri"
	"github.com/shopspring/decimal"
)

// RecordPayment appends a payment and attributes it to the cycle whose
// window contains its date. When cumulative in-window payments reach the
// due amount of a DUE cycle, the cycle transitions to PAID. Payments
// outside any window are kept unattributed.
func (s *zakatService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, userID string) (*domain.ZakatPayment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return nil, apperrors.NewValidationError("payment date is required")
	}

	now := s.now().UTC()
	payment := domain.ZakatPayment{
		PaymentID: uuid.NewString(),
		UserID:    userID,
		Amount:    req.Amount,
		Date:      hijri.Midnight(req.Date),
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment")
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	cycle, err := s.cycleRepo.FindCycleForDate(ctx, userID, payment.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Payment recorded outside any cycle window",
				slog.String("payment_id", payment.PaymentID))
			return &payment, nil
		}
		return nil, fmt.Errorf("failed to attribute payment: %w", err)
	}

	if cycle.Status == domain.CyclePaid {
		return &payment, nil
	}

	net, err := s.netPaymentsForCycle(ctx, *cycle)
	if err != nil {
		return nil, err
	}

	status := cycle.Status
	if cycle.Status == domain.CycleDue && net.RemainingDue.IsZero() {
		status = domain.CyclePaid
	}
	if err := s.cycleRepo.UpdateCycleStatus(ctx, cycle.CycleID, status, net.TotalPaid, userID); err != nil {
		return nil, fmt.Errorf("failed to update cycle after payment: %w", err)
	}
	if status == domain.CyclePaid {
		s.LogInfo(ctx, "Zakat cycle fully paid",
			slog.String("cycle_id", cycle.CycleID),
			slog.String("hijri_year", cycle.HijriYear))
	}

	return &payment, nil
}

// ListPayments returns a user's payments ordered by date.
func (s *zakatService) ListPayments(ctx context.Context, userID string) ([]domain.ZakatPayment, error) {
	payments, err := s.paymentRepo.ListPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
