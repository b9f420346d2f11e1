package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new holding ledger entry.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
	}
	direction := domain.TransactionDirection(strings.ToUpper(req.Direction))
	if direction != domain.Buy && direction != domain.Sell {
		return nil, fmt.Errorf("%w: direction must be BUY or SELL", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AssetKey:      strings.ToUpper(strings.TrimSpace(req.AssetKey)),
		Direction:     direction,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		OccurredOn:    hijri.Midnight(req.OccurredOn),
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("asset_key", txn.AssetKey))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("asset_key", txn.AssetKey),
		slog.String("direction", string(txn.Direction)))
	return &txn, nil
}

// GetTransaction retrieves a single ledger entry, enforcing ownership.
func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn.UserID != userID {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return txn, nil
}

// ListTransactions returns the user's ledger ordered by occurred date.
func (s *transactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// DeleteTransaction removes a ledger entry by explicit user action.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
