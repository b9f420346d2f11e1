package mapping

import (
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/models"
)

// ToModelZakatConfig converts a domain ZakatConfig to a model ZakatConfig
func ToModelZakatConfig(d domain.ZakatConfig) models.ZakatConfig {
	return models.ZakatConfig{
		UserID:           d.UserID,
		AnniversaryDay:   d.AnniversaryDay,
		AnniversaryMonth: d.AnniversaryMonth,
		FixedSolarDate:   d.FixedSolarDate,
		BaseCurrency:     d.BaseCurrency,
		ReminderEnabled:  d.ReminderEnabled,
		ContactEmail:     d.ContactEmail,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainZakatConfig converts a model ZakatConfig to a domain ZakatConfig
func ToDomainZakatConfig(m models.ZakatConfig) domain.ZakatConfig {
	return domain.ZakatConfig{
		UserID:           m.UserID,
		AnniversaryDay:   m.AnniversaryDay,
		AnniversaryMonth: m.AnniversaryMonth,
		FixedSolarDate:   m.FixedSolarDate,
		BaseCurrency:     m.BaseCurrency,
		ReminderEnabled:  m.ReminderEnabled,
		ContactEmail:     m.ContactEmail,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelZakatCycle converts a domain ZakatCycle to a model ZakatCycle
func ToModelZakatCycle(d domain.ZakatCycle) models.ZakatCycle {
	return models.ZakatCycle{
		CycleID:              d.CycleID,
		UserID:               d.UserID,
		HijriYear:            d.HijriYear,
		SolarAnniversaryDate: d.SolarAnniversaryDate,
		TotalAssets:          d.TotalAssets,
		TotalLiabilities:     d.TotalLiabilities,
		ZakatDue:             d.ZakatDue,
		AmountPaid:           d.AmountPaid,
		Status:               string(d.Status),
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainZakatCycle converts a model ZakatCycle to a domain ZakatCycle
func ToDomainZakatCycle(m models.ZakatCycle) domain.ZakatCycle {
	return domain.ZakatCycle{
		CycleID:              m.CycleID,
		UserID:               m.UserID,
		HijriYear:            m.HijriYear,
		SolarAnniversaryDate: m.SolarAnniversaryDate,
		TotalAssets:          m.TotalAssets,
		TotalLiabilities:     m.TotalLiabilities,
		ZakatDue:             m.ZakatDue,
		AmountPaid:           m.AmountPaid,
		Status:               domain.CycleStatus(m.Status),
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainZakatCycles converts a slice of model ZakatCycles to domain ZakatCycles
func ToDomainZakatCycles(ms []models.ZakatCycle) []domain.ZakatCycle {
	ds := make([]domain.ZakatCycle, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainZakatCycle(m)
	}
	return ds
}

// ToModelZakatPayment converts a domain ZakatPayment to a model ZakatPayment
func ToModelZakatPayment(d domain.ZakatPayment) models.ZakatPayment {
	return models.ZakatPayment{
		PaymentID:   d.PaymentID,
		UserID:      d.UserID,
		Amount:      d.Amount,
		Date:        d.Date,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainZakatPayment converts a model ZakatPayment to a domain ZakatPayment
func ToDomainZakatPayment(m models.ZakatPayment) domain.ZakatPayment {
	return domain.ZakatPayment{
		PaymentID:   m.PaymentID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Date:        m.Date,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainZakatPayments converts a slice of model ZakatPayments to domain ZakatPayments
func ToDomainZakatPayments(ms []models.ZakatPayment) []domain.ZakatPayment {
	ds := make([]domain.ZakatPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainZakatPayment(m)
	}
	return ds
}
