package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Liability is the database shape of a user liability.
type Liability struct {
	LiabilityID  string          `db:"liability_id"`
	UserID       string          `db:"user_id"`
	Title        string          `db:"title"`
	Amount       decimal.Decimal `db:"amount"`
	DueOn        *time.Time      `db:"due_on"`
	IsDeductible bool            `db:"is_deductible"`
	AuditFields
}
