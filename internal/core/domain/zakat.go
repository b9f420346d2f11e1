package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleStatus indicates the state of a zakat cycle.
// Transitions are OPEN -> DUE -> PAID with no reverse transitions.
type CycleStatus string

const (
	CycleOpen CycleStatus = "OPEN"
	CycleDue  CycleStatus = "DUE"
	CyclePaid CycleStatus = "PAID"
)

// LunarYearDays approximates one Hijri year in days. It bounds the
// valuation window and the minimum holding age for qualifying assets.
const LunarYearDays = 355

// AnniversaryRuleKind discriminates the two ways an anniversary can be anchored.
type AnniversaryRuleKind string

const (
	AnniversaryLunar      AnniversaryRuleKind = "LUNAR_RECURRING"
	AnniversaryFixedSolar AnniversaryRuleKind = "FIXED_SOLAR"
)

// AnniversaryRule is the tagged variant driving cycle resolution.
// Exactly one of the two shapes is active, indicated by Kind.
type AnniversaryRule struct {
	Kind AnniversaryRuleKind

	// Lunar recurring anniversary, valid when Kind == AnniversaryLunar.
	HijriDay   int
	HijriMonth int

	// Fixed solar anniversary, valid when Kind == AnniversaryFixedSolar.
	// Only the month and day components recur; the year is ignored.
	SolarDate time.Time
}

// ZakatConfig holds a user's zakat settings. Both anniversary shapes may be
// stored, but the lunar pair takes precedence whenever present.
type ZakatConfig struct {
	UserID           string     `json:"userID"`           // Primary Key, one config per user
	AnniversaryDay   *int       `json:"anniversaryDay"`   // Hijri day 1-30, nullable
	AnniversaryMonth *int       `json:"anniversaryMonth"` // Hijri month 1-12, nullable
	FixedSolarDate   *time.Time `json:"fixedSolarDate"`   // Alternative anchor, nullable
	BaseCurrency     string     `json:"baseCurrency"`
	ReminderEnabled  bool       `json:"reminderEnabled"`
	ContactEmail     string     `json:"contactEmail"`
	AuditFields
}

// Rule resolves the active anniversary rule from the stored fields.
// The lunar pair wins when both shapes are present. The second return is
// false when neither shape is configured.
func (c ZakatConfig) Rule() (AnniversaryRule, bool) {
	if c.AnniversaryDay != nil && c.AnniversaryMonth != nil {
		return AnniversaryRule{
			Kind:       AnniversaryLunar,
			HijriDay:   *c.AnniversaryDay,
			HijriMonth: *c.AnniversaryMonth,
		}, true
	}
	if c.FixedSolarDate != nil {
		return AnniversaryRule{
			Kind:      AnniversaryFixedSolar,
			SolarDate: *c.FixedSolarDate,
		}, true
	}
	return AnniversaryRule{}, false
}

// ZakatCycle is one obligation-assessment period for a user, keyed by
// Hijri year. At most one cycle exists per (UserID, HijriYear).
type ZakatCycle struct {
	CycleID              string          `json:"cycleID"` // Primary Key (UUID)
	UserID               string          `json:"userID"`
	HijriYear            string          `json:"hijriYear"` // e.g. "1447", unique per user
	SolarAnniversaryDate time.Time       `json:"solarAnniversaryDate"`
	TotalAssets          decimal.Decimal `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal `json:"totalLiabilities"`
	ZakatDue             decimal.Decimal `json:"zakatDue"`
	AmountPaid           decimal.Decimal `json:"amountPaid"` // Cached at payment time; read paths derive live totals
	Status               CycleStatus     `json:"status"`
	AuditFields
}

// WindowStart returns the start of the cycle's valuation window,
// one approximate lunar year before the anniversary.
func (z ZakatCycle) WindowStart() time.Time {
	return z.SolarAnniversaryDate.AddDate(0, 0, -LunarYearDays)
}

// ZakatPayment is an append-only payment record, attributed to whichever
// cycle's window contains its date.
type ZakatPayment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"` // Calendar date, UTC midnight
	Notes     string          `json:"notes"`
	AuditFields
}

// NisabEvaluation is the outcome of comparing a net zakat base against
// the gold- and silver-weight thresholds. Both thresholds are always
// populated for display even when not met.
type NisabEvaluation struct {
	GoldThreshold   decimal.Decimal `json:"goldThreshold"`
	SilverThreshold decimal.Decimal `json:"silverThreshold"`
	IsEligible      bool            `json:"isEligible"`
	DueAmount       decimal.Decimal `json:"dueAmount"`
}

// ZakatSnapshot is the live, read-only view of a user's obligation,
// re-derived from the ledger and rates without mutating the cycle.
type ZakatSnapshot struct {
	Cycle                 ZakatCycle      `json:"cycle"`
	AsOf                  time.Time       `json:"asOf"`
	CurrentHoldingsValue  decimal.Decimal `json:"currentHoldingsValue"`
	QualifyingAssets      decimal.Decimal `json:"qualifyingAssets"`
	DeductibleLiabilities decimal.Decimal `json:"deductibleLiabilities"`
	NetBase               decimal.Decimal `json:"netBase"`
	Nisab                 NisabEvaluation `json:"nisab"`
	TotalPaid             decimal.Decimal `json:"totalPaid"`
	RemainingDue          decimal.Decimal `json:"remainingDue"`
	// Stale marks a snapshot served from the last persisted cycle figures
	// because the live recompute failed.
	Stale bool `json:"stale"`
}

// CycleSummary is the figure set handed to the notification sink when a
// cycle transitions into DUE.
type CycleSummary struct {
	CycleID              string          `json:"cycleID"`
	HijriYear            string          `json:"hijriYear"`
	SolarAnniversaryDate time.Time       `json:"solarAnniversaryDate"`
	TotalAssets          decimal.Decimal `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal `json:"totalLiabilities"`
	ZakatDue             decimal.Decimal `json:"zakatDue"`
	BaseCurrency         string          `json:"baseCurrency"`
}
