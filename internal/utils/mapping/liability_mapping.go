package mapping

import (
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/models"
)

// ToModelLiability converts a domain Liability to a model Liability
func ToModelLiability(d domain.Liability) models.Liability {
	return models.Liability{
		LiabilityID:  d.LiabilityID,
		UserID:       d.UserID,
		Title:        d.Title,
		Amount:       d.Amount,
		DueOn:        d.DueOn,
		IsDeductible: d.IsDeductible,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLiability converts a model Liability to a domain Liability
func ToDomainLiability(m models.Liability) domain.Liability {
	return domain.Liability{
		LiabilityID:  m.LiabilityID,
		UserID:       m.UserID,
		Title:        m.Title,
		Amount:       m.Amount,
		DueOn:        m.DueOn,
		IsDeductible: m.IsDeductible,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLiabilities converts a slice of model Liabilities to domain Liabilities
func ToDomainLiabilities(ms []models.Liability) []domain.Liability {
	ds := make([]domain.Liability, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiability(m)
	}
	return ds
}
