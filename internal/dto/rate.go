package dto

import (
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertRateRequest defines the structure for creating or refreshing a rate.
type UpsertRateRequest struct {
	AssetKey string          `json:"assetKey" binding:"required,max=32"`
	Value    decimal.Decimal `json:"value" binding:"required"`
	// Global saves the rate as the shared default instead of a user override.
	Global bool `json:"global"`
}

// RateResponse defines the structure for API responses containing rate details.
type RateResponse struct {
	RateID      string          `json:"rateID"`
	AssetKey    string          `json:"assetKey"`
	Value       decimal.Decimal `json:"value"`
	IsGlobal    bool            `json:"isGlobal"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(rate *domain.Rate) RateResponse {
	return RateResponse{
		RateID:      rate.RateID,
		AssetKey:    rate.AssetKey,
		Value:       rate.Value,
		IsGlobal:    rate.IsGlobal(),
		LastUpdated: rate.LastUpdated,
	}
}

// ToListRateResponse converts a slice of domain Rates to response DTOs.
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	responses := make([]RateResponse, len(rates))
	for i := range rates {
		responses[i] = ToRateResponse(&rates[i])
	}
	return responses
}
