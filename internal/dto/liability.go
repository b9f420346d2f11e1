package dto

import (
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLiabilityRequest defines the structure for creating a new liability.
type CreateLiabilityRequest struct {
	Title        string          `json:"title" binding:"required,max=100"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DueOn        *time.Time      `json:"dueOn"`
	IsDeductible bool            `json:"isDeductible"`
}

// UpdateLiabilityRequest defines the updatable fields of a liability.
type UpdateLiabilityRequest struct {
	Title        *string    `json:"title" binding:"omitempty,max=100"`
	DueOn        *time.Time `json:"dueOn"`
	IsDeductible *bool      `json:"isDeductible"`
}

// SettleLiabilityRequest records a partial or full settlement.
type SettleLiabilityRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// LiabilityResponse defines the structure for API responses containing liability details.
type LiabilityResponse struct {
	LiabilityID  string          `json:"liabilityID"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	DueOn        *time.Time      `json:"dueOn"`
	IsDeductible bool            `json:"isDeductible"`
	CreatedAt    time.Time       `json:"createdAt"`
	// Settled is true when a settlement removed the liability entirely.
	Settled bool `json:"settled,omitempty"`
}

// ToLiabilityResponse converts a domain.Liability to LiabilityResponse DTO
func ToLiabilityResponse(l *domain.Liability) LiabilityResponse {
	return LiabilityResponse{
		LiabilityID:  l.LiabilityID,
		Title:        l.Title,
		Amount:       l.Amount,
		DueOn:        l.DueOn,
		IsDeductible: l.IsDeductible,
		CreatedAt:    l.CreatedAt,
	}
}

// ToListLiabilityResponse converts a slice of domain Liabilities to response DTOs.
func ToListLiabilityResponse(liabilities []domain.Liability) []LiabilityResponse {
	responses := make([]LiabilityResponse, len(liabilities))
	for i := range liabilities {
		responses[i] = ToLiabilityResponse(&liabilities[i])
	}
	return responses
}
