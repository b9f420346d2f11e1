package dto

import (
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveZakatConfigRequest defines the structure for storing a user's zakat settings.
// The hijriday/hijrimonth validators are registered at router setup.
type SaveZakatConfigRequest struct {
	AnniversaryDay   *int       `json:"anniversaryDay" binding:"omitempty,hijriday"`
	AnniversaryMonth *int       `json:"anniversaryMonth" binding:"omitempty,hijrimonth"`
	FixedSolarDate   *time.Time `json:"fixedSolarDate"`
	BaseCurrency     string     `json:"baseCurrency" binding:"required,len=3,uppercase"`
	ReminderEnabled  bool       `json:"reminderEnabled"`
	ContactEmail     string     `json:"contactEmail" binding:"omitempty,email"`
}

// ZakatConfigResponse defines the structure for API responses containing zakat settings.
type ZakatConfigResponse struct {
	AnniversaryDay   *int       `json:"anniversaryDay"`
	AnniversaryMonth *int       `json:"anniversaryMonth"`
	FixedSolarDate   *time.Time `json:"fixedSolarDate"`
	BaseCurrency     string     `json:"baseCurrency"`
	ReminderEnabled  bool       `json:"reminderEnabled"`
	ContactEmail     string     `json:"contactEmail"`
}

// ToZakatConfigResponse converts a domain.ZakatConfig to ZakatConfigResponse DTO
func ToZakatConfigResponse(cfg *domain.ZakatConfig) ZakatConfigResponse {
	return ZakatConfigResponse{
		AnniversaryDay:   cfg.AnniversaryDay,
		AnniversaryMonth: cfg.AnniversaryMonth,
		FixedSolarDate:   cfg.FixedSolarDate,
		BaseCurrency:     cfg.BaseCurrency,
		ReminderEnabled:  cfg.ReminderEnabled,
		ContactEmail:     cfg.ContactEmail,
	}
}

// ZakatCycleResponse defines the structure for API responses containing cycle details.
type ZakatCycleResponse struct {
	CycleID              string          `json:"cycleID"`
	HijriYear            string          `json:"hijriYear"`
	SolarAnniversaryDate time.Time       `json:"solarAnniversaryDate"`
	WindowStart          time.Time       `json:"windowStart"`
	TotalAssets          decimal.Decimal `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal `json:"totalLiabilities"`
	ZakatDue             decimal.Decimal `json:"zakatDue"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	Status               string          `json:"status"`
}

// ToZakatCycleResponse converts a domain.ZakatCycle to ZakatCycleResponse DTO
func ToZakatCycleResponse(cycle *domain.ZakatCycle) ZakatCycleResponse {
	return ZakatCycleResponse{
		CycleID:              cycle.CycleID,
		HijriYear:            cycle.HijriYear,
		SolarAnniversaryDate: cycle.SolarAnniversaryDate,
		WindowStart:          cycle.WindowStart(),
		TotalAssets:          cycle.TotalAssets,
		TotalLiabilities:     cycle.TotalLiabilities,
		ZakatDue:             cycle.ZakatDue,
		AmountPaid:           cycle.AmountPaid,
		Status:               string(cycle.Status),
	}
}

// ToListZakatCycleResponse converts a slice of domain ZakatCycles to response DTOs.
func ToListZakatCycleResponse(cycles []domain.ZakatCycle) []ZakatCycleResponse {
	responses := make([]ZakatCycleResponse, len(cycles))
	for i := range cycles {
		responses[i] = ToZakatCycleResponse(&cycles[i])
	}
	return responses
}

// GenerateCycleResponse reports the cycle returned by an on-demand generation
// and whether the call created it.
type GenerateCycleResponse struct {
	Cycle   ZakatCycleResponse `json:"cycle"`
	Created bool               `json:"created"`
}

// ZakatSnapshotResponse is the live dashboard view of a user's obligation.
type ZakatSnapshotResponse struct {
	Cycle                 ZakatCycleResponse     `json:"cycle"`
	AsOf                  time.Time              `json:"asOf"`
	CurrentHoldingsValue  decimal.Decimal        `json:"currentHoldingsValue"`
	QualifyingAssets      decimal.Decimal        `json:"qualifyingAssets"`
	DeductibleLiabilities decimal.Decimal        `json:"deductibleLiabilities"`
	NetBase               decimal.Decimal        `json:"netBase"`
	Nisab                 domain.NisabEvaluation `json:"nisab"`
	TotalPaid             decimal.Decimal        `json:"totalPaid"`
	RemainingDue          decimal.Decimal        `json:"remainingDue"`
	Stale                 bool                   `json:"stale"`
}

// ToZakatSnapshotResponse converts a domain.ZakatSnapshot to ZakatSnapshotResponse DTO
func ToZakatSnapshotResponse(s *domain.ZakatSnapshot) ZakatSnapshotResponse {
	return ZakatSnapshotResponse{
		Cycle:                 ToZakatCycleResponse(&s.Cycle),
		AsOf:                  s.AsOf,
		CurrentHoldingsValue:  s.CurrentHoldingsValue,
		QualifyingAssets:      s.QualifyingAssets,
		DeductibleLiabilities: s.DeductibleLiabilities,
		NetBase:               s.NetBase,
		Nisab:                 s.Nisab,
		TotalPaid:             s.TotalPaid,
		RemainingDue:          s.RemainingDue,
		Stale:                 s.Stale,
	}
}

// RecordPaymentRequest defines the structure for recording a zakat payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
	Notes  string          `json:"notes" binding:"max=500"`
}

// ZakatPaymentResponse defines the structure for API responses containing payment details.
type ZakatPaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToZakatPaymentResponse converts a domain.ZakatPayment to ZakatPaymentResponse DTO
func ToZakatPaymentResponse(p *domain.ZakatPayment) ZakatPaymentResponse {
	return ZakatPaymentResponse{
		PaymentID: p.PaymentID,
		Amount:    p.Amount,
		Date:      p.Date,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// ToListZakatPaymentResponse converts a slice of domain ZakatPayments to response DTOs.
func ToListZakatPaymentResponse(payments []domain.ZakatPayment) []ZakatPaymentResponse {
	responses := make([]ZakatPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToZakatPaymentResponse(&payments[i])
	}
	return responses
}

// SweepResult reports the outcome of one pending-cycles sweep.
type SweepResult struct {
	UsersProcessed  int `json:"usersProcessed"`
	CyclesCreated   int `json:"cyclesCreated"`
	CyclesMarkedDue int `json:"cyclesMarkedDue"`
	Failures        int `json:"failures"`
}
