package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/hijri"
	"github.com/shopspring/decimal"
)

// liabilityService implements the LiabilitySvcFacade interface
type liabilityService struct {
	BaseService
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

// NewLiabilityService creates a new liability service
func NewLiabilityService(liabilityRepo portsrepo.LiabilityRepositoryFacade) portssvc.LiabilitySvcFacade {
	return &liabilityService{liabilityRepo: liabilityRepo}
}

var _ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)

// CreateLiability validates and persists a new liability.
func (s *liabilityService) CreateLiability(ctx context.Context, req dto.CreateLiabilityRequest, userID string) (*domain.Liability, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: liability amount must be positive", apperrors.ErrValidation)
	}

	var dueOn *time.Time
	if req.DueOn != nil {
		d := hijri.Midnight(*req.DueOn)
		dueOn = &d
	}

	now := time.Now().UTC()
	liability := domain.Liability{
		LiabilityID:  uuid.NewString(),
		UserID:       userID,
		Title:        req.Title,
		Amount:       req.Amount,
		DueOn:        dueOn,
		IsDeductible: req.IsDeductible,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.liabilityRepo.SaveLiability(ctx, liability); err != nil {
		s.LogError(ctx, err, "Failed to save liability", slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to create liability: %w", err)
	}

	s.LogInfo(ctx, "Liability created", slog.String("liability_id", liability.LiabilityID))
	return &liability, nil
}

// GetLiability retrieves a single liability, enforcing ownership.
func (s *liabilityService) GetLiability(ctx context.Context, userID, liabilityID string) (*domain.Liability, error) {
	liability, err := s.liabilityRepo.FindLiabilityByID(ctx, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get liability: %w", err)
	}
	if liability.UserID != userID {
		return nil, apperrors.NewNotFoundError("liability not found")
	}
	return liability, nil
}

// ListLiabilities returns all of a user's liabilities.
func (s *liabilityService) ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	liabilities, err := s.liabilityRepo.ListLiabilitiesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	return liabilities, nil
}

// UpdateLiability changes a liability's descriptive fields. The amount is
// only ever changed through settlement.
func (s *liabilityService) UpdateLiability(ctx context.Context, req dto.UpdateLiabilityRequest, userID, liabilityID string) (*domain.Liability, error) {
	liability, err := s.GetLiability(ctx, userID, liabilityID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		liability.Title = *req.Title
	}
	if req.DueOn != nil {
		d := hijri.Midnight(*req.DueOn)
		liability.DueOn = &d
	}
	if req.IsDeductible != nil {
		liability.IsDeductible = *req.IsDeductible
	}
	liability.LastUpdatedAt = time.Now().UTC()
	liability.LastUpdatedBy = userID

	if err := s.liabilityRepo.SaveLiability(ctx, *liability); err != nil {
		return nil, fmt.Errorf("failed to update liability: %w", err)
	}
	return liability, nil
}

// SettleLiability decrements the remaining amount by the settled portion.
// A liability settled to zero or below is deleted rather than stored as
// zero; nil is returned for the liability in that case.
func (s *liabilityService) SettleLiability(ctx context.Context, userID, liabilityID string, amount decimal.Decimal) (*domain.Liability, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: settlement amount must be positive", apperrors.ErrValidation)
	}

	liability, err := s.GetLiability(ctx, userID, liabilityID)
	if err != nil {
		return nil, err
	}

	remaining := liability.Amount.Sub(amount)
	if remaining.LessThanOrEqual(decimal.Zero) {
		if err := s.liabilityRepo.DeleteLiability(ctx, userID, liabilityID); err != nil {
			return nil, fmt.Errorf("failed to remove settled liability: %w", err)
		}
		s.LogInfo(ctx, "Liability fully settled and removed", slog.String("liability_id", liabilityID))
		return nil, nil
	}

	liability.Amount = remaining
	liability.LastUpdatedAt = time.Now().UTC()
	liability.LastUpdatedBy = userID
	if err := s.liabilityRepo.SaveLiability(ctx, *liability); err != nil {
		return nil, fmt.Errorf("failed to settle liability: %w", err)
	}

	s.LogInfo(ctx, "Liability partially settled",
		slog.String("liability_id", liabilityID),
		slog.String("remaining", remaining.String()))
	return liability, nil
}

// DeleteLiability removes a liability outright.
func (s *liabilityService) DeleteLiability(ctx context.Context, userID, liabilityID string) error {
	if err := s.liabilityRepo.DeleteLiability(ctx, userID, liabilityID); err != nil {
		return fmt.Errorf("failed to delete liability: %w", err)
	}
	s.LogInfo(ctx, "Liability deleted", slog.String("liability_id", liabilityID))
	return nil
}
