package services

import (
	"context"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/shopspring/decimal"
)

// LiabilitySvcFacade defines operations on user liabilities.
type LiabilitySvcFacade interface {
	// CreateLiability validates and persists a new liability.
	CreateLiability(ctx context.Context, req dto.CreateLiabilityRequest, userID string) (*domain.Liability, error)

	// GetLiability retrieves one of the user's liabilities.
	GetLiability(ctx context.Context, userID, liabilityID string) (*domain.Liability, error)

	// ListLiabilities returns all of the user's liabilities.
	ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error)

	// UpdateLiability changes a liability's descriptive fields.
	UpdateLiability(ctx context.Context, req dto.UpdateLiabilityRequest, userID, liabilityID string) (*domain.Liability, error)

	// SettleLiability decrements the remaining amount. Settling to zero or
	// below deletes the row; the returned liability is nil in that case.
	SettleLiability(ctx context.Context, userID, liabilityID string, amount decimal.Decimal) (*domain.Liability, error)

	// DeleteLiability removes a liability outright.
	DeleteLiability(ctx context.Context, userID, liabilityID string) error
}
