package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database shape of a holding ledger entry.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	AssetKey      string          `db:"asset_key"`
	Direction     string          `db:"direction"` // BUY or SELL
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	OccurredOn    time.Time       `db:"occurred_on"`
	Notes         string          `db:"notes"`
	AuditFields
}
