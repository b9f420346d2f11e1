package repositories

import (
	"context"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
)

// TransactionReader defines read operations for holding ledger entries
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a user's ledger entries ordered by occurred_on.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactionsByUserUntil retrieves a user's ledger entries with
	// occurred_on on or before the given date, ordered by occurred_on.
	ListTransactionsByUserUntil(ctx context.Context, userID string, until time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for holding ledger entries.
// Entries are immutable: there is no update operation.
type TransactionWriter interface {
	// SaveTransaction persists a new ledger entry.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a ledger entry by explicit user action.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all ledger-entry repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
