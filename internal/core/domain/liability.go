package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Liability is a debt owed by the user. Amount only ever decreases via
// partial settlement; a liability settled to zero or below is deleted
// rather than stored with a zero amount.
type Liability struct {
	LiabilityID  string          `json:"liabilityID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`       // Remaining amount, always positive while the row exists
	DueOn        *time.Time      `json:"dueOn"`        // Nullable; nil means "always due"
	IsDeductible bool            `json:"isDeductible"` // Whether it reduces the zakat base
	AuditFields
}
