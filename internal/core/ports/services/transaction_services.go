package services

import (
	"context"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
)

// TransactionSvcFacade defines operations on holding ledger entries.
// Entries are immutable records; there is no update operation.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new ledger entry.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// GetTransaction retrieves one of the user's ledger entries.
	GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the user's ledger ordered by occurred date.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// DeleteTransaction removes a ledger entry by explicit user action.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
