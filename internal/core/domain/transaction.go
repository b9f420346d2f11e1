package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether a holding ledger entry adds to or removes from a holding.
type TransactionDirection string

const (
	Buy  TransactionDirection = "BUY"
	Sell TransactionDirection = "SELL"
)

// Well-known asset keys used for nisab threshold rates. Holdings may use
// any free-form asset key; these two are only special for the comparator.
const (
	AssetKeyGold   = "GOLD"
	AssetKeySilver = "SILVER"
)

// Transaction is an immutable holding ledger entry. Entries are created by
// the user and deleted only by explicit user action, never mutated.
// Ordering by OccurredOn drives holding-age computations.
type Transaction struct {
	TransactionID string               `json:"transactionID"` // Primary Key (UUID)
	UserID        string               `json:"userID"`
	AssetKey      string               `json:"assetKey"`  // Free-form asset identifier (metal or currency code)
	Direction     TransactionDirection `json:"direction"` // BUY or SELL (Not Null)
	Quantity      decimal.Decimal      `json:"quantity"`  // Positive value
	UnitPrice     decimal.Decimal      `json:"unitPrice"` // Monetary units per unit quantity, snapshot at entry time
	OccurredOn    time.Time            `json:"occurredOn"` // Calendar date, UTC midnight
	Notes         string               `json:"notes"`      // Nullable
	AuditFields
}
