package dto

import (
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the structure for creating a new holding ledger entry.
type CreateTransactionRequest struct {
	AssetKey   string          `json:"assetKey" binding:"required,max=32"`
	Direction  string          `json:"direction" binding:"required,oneof=BUY SELL"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required"`
	OccurredOn time.Time       `json:"occurredOn" binding:"required"`
	Notes      string          `json:"notes" binding:"max=500"`
}

// TransactionResponse defines the structure for API responses containing ledger entry details.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AssetKey      string          `json:"assetKey"`
	Direction     string          `json:"direction"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	OccurredOn    time.Time       `json:"occurredOn"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AssetKey:      txn.AssetKey,
		Direction:     string(txn.Direction),
		Quantity:      txn.Quantity,
		UnitPrice:     txn.UnitPrice,
		OccurredOn:    txn.OccurredOn,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain Transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
