package mapping

import (
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		RateID:      d.RateID,
		OwnerUserID: d.OwnerUserID,
		AssetKey:    d.AssetKey,
		Value:       d.Value,
		LastUpdated: d.LastUpdated,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		RateID:      m.RateID,
		OwnerUserID: m.OwnerUserID,
		AssetKey:    m.AssetKey,
		Value:       m.Value,
		LastUpdated: m.LastUpdated,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRates converts a slice of model Rates to domain Rates
func ToDomainRates(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
