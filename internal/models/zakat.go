package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ZakatConfig is the database shape of a user's zakat settings.
type ZakatConfig struct {
	UserID           string     `db:"user_id"`
	AnniversaryDay   *int       `db:"anniversary_day"`
	AnniversaryMonth *int       `db:"anniversary_month"`
	FixedSolarDate   *time.Time `db:"fixed_solar_date"`
	BaseCurrency     string     `db:"base_currency"`
	ReminderEnabled  bool       `db:"reminder_enabled"`
	ContactEmail     string     `db:"contact_email"`
	AuditFields
}

// ZakatCycle is the database shape of a zakat cycle row.
// (user_id, hijri_year) carries a uniqueness constraint.
type ZakatCycle struct {
	CycleID              string          `db:"cycle_id"`
	UserID               string          `db:"user_id"`
	HijriYear            string          `db:"hijri_year"`
	SolarAnniversaryDate time.Time       `db:"solar_anniversary_date"`
	TotalAssets          decimal.Decimal `db:"total_assets"`
	TotalLiabilities     decimal.Decimal `db:"total_liabilities"`
	ZakatDue             decimal.Decimal `db:"zakat_due"`
	AmountPaid           decimal.Decimal `db:"amount_paid"`
	Status               string          `db:"status"`
	AuditFields
}

// ZakatPayment is the database shape of a zakat payment row.
type ZakatPayment struct {
	PaymentID string          `db:"payment_id"`
	UserID    string          `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	Date      time.Time       `db:"date"`
	Notes     string          `db:"notes"`
	AuditFields
}
