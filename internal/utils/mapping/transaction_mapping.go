package mapping

import (
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		AssetKey:      d.AssetKey,
		Direction:     string(d.Direction),
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		OccurredOn:    d.OccurredOn,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		AssetKey:      m.AssetKey,
		Direction:     domain.TransactionDirection(m.Direction),
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		OccurredOn:    m.OccurredOn,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactions converts a slice of model Transactions to domain Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
